package evaluator_test

import (
	"testing"

	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/ast/ext"
	"github.com/t14raptor/jsdce/evaluator"
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

func TestEval(t *testing.T) {
	tests := []struct{ in, want string }{
		{`1 + 2`, `3`},
		{`"a" + 1`, `"a1"`},
		{`2 ** 10`, `1024`},
		{`1 / 0`, `Infinity`},
		{`-1 / 0`, `-Infinity`},
		{`0 / 0`, `NaN`},
		{`-(1 + 1)`, `-2`},
		{`typeof "s"`, `"string"`},
		{`typeof function () {}`, `"function"`},
		{`"abc".length`, `3`},
		{`1 < 2`, `true`},
		{`"10" == 10`, `true`},
		{`null === undefined`, `false`},
		{`~5`, `-6`},
		{`1 << 3`, `8`},
		{`void 0`, `void 0`},
		{`null ?? "d"`, `"d"`},
		{"`a${1 + 1}b`", `"a2b"`},
		{`true ? 1 : x`, `1`},
		{`(0, 5)`, `5`},
	}
	for _, tt := range tests {
		got, ok := evaluator.Eval(parseExpr(t, tt.in))
		if !ok {
			t.Errorf("Eval(%s) failed", tt.in)
			continue
		}
		if s := generator.Generate(got); s != tt.want {
			t.Errorf("Eval(%s) = %s; want %s", tt.in, s, tt.want)
		}
	}
}

func TestEvalUnknown(t *testing.T) {
	for _, in := range []string{`x + 1`, `f()`, `(f(), 1)`, `void f()`, `a.length`, "tag`x`"} {
		if got, ok := evaluator.Eval(parseExpr(t, in)); ok {
			t.Errorf("Eval(%s) = %s; want failure", in, generator.Generate(got))
		}
	}
}

func TestEvaluateTruthy(t *testing.T) {
	tests := []struct {
		in     string
		known  bool
		truthy bool
	}{
		{`1`, true, true},
		{`""`, true, false},
		{`0 / 0`, true, false},
		{`"a" == "a"`, true, true},
		{`{}`, true, true},
		{`function () {}`, true, true},
		{`x`, false, false},
		{`f()`, false, false},
		{`x && false`, false, false},
		{`false && x`, true, false},
		{`!undefined`, true, true},
	}
	for _, tt := range tests {
		v := evaluator.EvaluateTruthy(parseExpr(t, tt.in))
		if v.Unknown() == tt.known || (tt.known && ext.IsTrue(v) != tt.truthy) {
			t.Errorf("EvaluateTruthy(%s) = %v; want known %v truthy %v", tt.in, v, tt.known, tt.truthy)
		}
	}
}
