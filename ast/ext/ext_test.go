package ext_test

import (
	"testing"

	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/ast/ext"
	"github.com/t14raptor/jsdce/generator"
	"github.com/t14raptor/jsdce/parser"
)

func parseExpr(t *testing.T, src string) *ast.Expression {
	t.Helper()
	p, err := parser.ParseFile("(" + src + ");")
	if err != nil {
		t.Fatalf("parse '%s': %v", src, err)
	}
	return p.Body[0].Stmt.(*ast.ExpressionStatement).Expression
}

// constants maps constant names to whether their value is primitive.
type constants map[string]bool

func (c constants) ConstantRef(id *ast.Identifier) bool {
	_, ok := c[id.Name]
	return ok
}

func (c constants) PrimitiveRef(id *ast.Identifier) bool {
	return c[id.Name]
}

func TestIsPureConstant(t *testing.T) {
	facts := constants{"k": false, "p": true}
	tests := []struct {
		in   string
		want bool
	}{
		{`1`, true},
		{`"a" + "b"`, true},
		{`-1 * 2`, true},
		{`!true`, true},
		{"`a${1}`", true},
		{"tag`a`", false},
		{`[1, "a", null]`, true},
		{`[...a]`, false},
		{`{ a: 1, [p]: 2 }`, true},
		{`{ [k]: 1 }`, false},
		{`class { [k]() {} }`, false},
		{`{ [x]: 1 }`, false},
		{`{ __proto__: null }`, false},
		{`function () {}`, true},
		{`() => f()`, true},
		{`class { m() {} }`, true},
		{`class extends f() {}`, false},
		{`class { static x = f(); }`, false},
		{`k`, true},
		{`x`, false},
		{`undefined`, true},
		{`f()`, false},
		{`a.b`, false},
		{`"a" in o`, false},
		{`k ? 1 : 2`, true},
		{`(1, k)`, true},
		{`p + 1`, true},
		{`k + 1`, false},
		{`-k`, false},
		{`k < 1`, false},
		{`k == 1`, false},
		{"`${k}`", false},
		{"`${p}`", true},
		{`typeof k`, true},
		{`void k`, true},
		{`!k`, true},
		{`k === 1`, true},
		{`k || 1`, true},
		{`(k || p) + 1`, false},
		{`(1 ? p : 2) * 2`, true},
		{`(k, p) - 1`, true},
	}
	for _, tt := range tests {
		if got := ext.IsPureConstant(parseExpr(t, tt.in), facts); got != tt.want {
			t.Errorf("IsPureConstant(%s) = %v; want %v", tt.in, got, tt.want)
		}
	}
	if !ext.IsPureConstant(nil, nil) {
		t.Error("a missing initializer is undefined")
	}
}

func TestMayHaveSideEffects(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{`1 + 2`, false},
		{`a`, true},
		{`typeof a`, false},
		{`f()`, true},
		{`a = 1`, true},
		{`a++`, true},
		{`new F()`, true},
		{`[1, f()]`, true},
		{`{ a: 1 }`, false},
		{`function () { f(); }`, false},
	}
	for _, tt := range tests {
		if got := ext.MayHaveSideEffects(parseExpr(t, tt.in)); got != tt.want {
			t.Errorf("MayHaveSideEffects(%s) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestAsPureBool(t *testing.T) {
	tests := []struct {
		in   string
		want ext.BoolValue
	}{
		{`0`, ext.False},
		{`"x"`, ext.True},
		{`null`, ext.False},
		{`void 0`, ext.False},
		{`!1`, ext.False},
		{`[]`, ext.True},
		{`/a/`, ext.True},
		{`typeof x`, ext.True},
		{`x`, ext.Unknown[bool]()},
		{`f() || true`, ext.Unknown[bool]()},
		{`true || f()`, ext.True},
	}
	for _, tt := range tests {
		got := ext.AsPureBool(parseExpr(t, tt.in))
		if got.Unknown() != tt.want.Unknown() || (!got.Unknown() && got.Value() != tt.want.Value()) {
			t.Errorf("AsPureBool(%s) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestNegate(t *testing.T) {
	tests := []struct{ in, want string }{
		{`a`, `!a`},
		{`!a`, `a`},
		{`a && b`, `!(a && b)`},
		{`!!a`, `!a`},
	}
	for _, tt := range tests {
		if got := generator.Generate(ext.Negate(parseExpr(t, tt.in))); got != tt.want {
			t.Errorf("Negate(%s) = %s; want %s", tt.in, got, tt.want)
		}
	}
}

func TestBoolValue(t *testing.T) {
	unknown := ext.Unknown[bool]()
	tests := []struct {
		v           ext.BoolValue
		isTrue, isFalse bool
	}{
		{ext.True, true, false},
		{ext.False, false, true},
		{ext.Not(ext.True), false, true},
		{ext.Not(ext.False), true, false},
		{unknown, false, false},
		{ext.Not(unknown), false, false},
	}
	for i, tt := range tests {
		if ext.IsTrue(tt.v) != tt.isTrue || ext.IsFalse(tt.v) != tt.isFalse {
			t.Errorf("%d: IsTrue = %v, IsFalse = %v; want %v, %v", i, ext.IsTrue(tt.v), ext.IsFalse(tt.v), tt.isTrue, tt.isFalse)
		}
	}
}
