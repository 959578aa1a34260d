package resolver_test

import (
	"slices"
	"testing"

	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/parser"
	"github.com/t14raptor/jsdce/resolver"
)

func resolve(t *testing.T, src string) (*ast.Program, *resolver.Info) {
	t.Helper()
	p, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("parse '%s': %v", src, err)
	}
	return p, resolver.Resolve(p)
}

func TestProgramBindings(t *testing.T) {
	_, info := resolve(t, `
		var a = 1;
		function f(b) { let c = a + b; return c; }
		f(a);
		export const e = 1;
		import m from "m";
		class K {}
	`)

	if got := info.Program.Names(); !slices.Equal(got, []string{"K", "a", "e", "f", "m"}) {
		t.Errorf("Names() = %v", got)
	}
	tests := []struct {
		name       string
		kind       resolver.BindingKind
		references int
		exported   bool
	}{
		{"a", resolver.KindVar, 2, false},
		{"f", resolver.KindFunction, 1, false},
		{"e", resolver.KindConst, 0, true},
		{"m", resolver.KindModule, 0, false},
		{"K", resolver.KindClass, 0, false},
	}
	for _, tt := range tests {
		b := info.Program.Bindings[tt.name]
		if b == nil {
			t.Errorf("%s is not bound", tt.name)
			continue
		}
		if b.Kind != tt.kind || b.References != tt.references || b.Exported != tt.exported {
			t.Errorf("%s = kind %v, %d references, exported %v", tt.name, b.Kind, b.References, b.Exported)
		}
		if !b.Constant {
			t.Errorf("%s is not constant", tt.name)
		}
	}
}

func TestHoisting(t *testing.T) {
	_, info := resolve(t, `function f() { { var a = 1; let b = 2; } return a; }`)
	f := info.Program.Bindings["f"]
	if f == nil {
		t.Fatal("f is not bound")
	}
	a := info.Declaration(f.Ident)
	if a != f {
		t.Fatalf("Declaration(f) = %v", a)
	}

	var va *resolver.Binding
	decl := f.Node.(*ast.FunctionDeclaration)
	fnScope := info.ScopeOfNode(decl.Function)
	for scope := fnScope; scope != nil && va == nil; scope = scope.Parent {
		va = scope.Bindings["a"]
	}
	if va == nil || va.Scope != fnScope {
		t.Fatalf("a is not hoisted to the function scope")
	}
	if va.DeclScope == va.Scope {
		t.Error("DeclScope of a should be the inner block")
	}
	if va.References != 1 {
		t.Errorf("a has %d references; want 1", va.References)
	}
	if _, ok := fnScope.Bindings["b"]; ok {
		t.Error("let b leaked into the function scope")
	}
}

func TestConstantAndForwardReferences(t *testing.T) {
	_, info := resolve(t, `
		use(x);
		let x = 1;
		let y = 1; y = 2;
		var z = 1; var z = 2;
		for (const k in o) {}
		function h() {} h();
	`)
	p := info.Program
	if !p.Bindings["x"].ForwardReferenced {
		t.Error("x should be forward referenced")
	}
	if p.Bindings["y"].Constant {
		t.Error("y is reassigned")
	}
	if p.Bindings["z"].Constant {
		t.Error("z is declared twice")
	}
	if p.Bindings["h"].ForwardReferenced {
		t.Error("h is hoisted")
	}
}

func TestReferences(t *testing.T) {
	prog, info := resolve(t, `const a = 1; use(a, b);`)
	call := prog.Body[1].Stmt.(*ast.ExpressionStatement).Expression.Expr.(*ast.CallExpression)
	ref := call.ArgumentList[0].Expr.(*ast.Identifier)
	global := call.ArgumentList[1].Expr.(*ast.Identifier)

	if b := info.BindingOf(ref); b == nil || b.Name != "a" {
		t.Errorf("BindingOf(a) = %v", b)
	}
	if info.ScopeOf(ref) != info.Program {
		t.Error("a is referenced from the program scope")
	}
	if b := info.BindingOf(global); b != nil {
		t.Errorf("BindingOf(b) = %v; want nil", b)
	}
	if global.ScopeContext != resolver.UnresolvedMark || ref.ScopeContext != resolver.TopLevelMark {
		t.Errorf("marks = %v, %v", ref.ScopeContext, global.ScopeContext)
	}

	info.Program.Remove("a")
	if info.Program.Lookup("a") != nil {
		t.Error("a still bound after Remove")
	}
}

func TestDirectEval(t *testing.T) {
	_, info := resolve(t, `function f() { eval("x"); } function g() { var eval = h; eval("x"); }`)
	if !info.Program.DirectEval {
		t.Error("program scope should be visible to eval in f")
	}
	g := info.Program.Bindings["g"].Node.(*ast.FunctionDeclaration)
	if info.ScopeOfNode(g.Function).DirectEval {
		t.Error("a local eval is not a direct eval")
	}
}

func TestExportSpecifier(t *testing.T) {
	_, info := resolve(t, `function f() {} export { f as g };`)
	f := info.Program.Bindings["f"]
	if !f.Exported || f.References != 1 {
		t.Errorf("f = exported %v, %d references", f.Exported, f.References)
	}
}
