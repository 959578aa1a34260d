package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/generator"
	"github.com/t14raptor/jsdce/parser"
	"github.com/t14raptor/jsdce/token"
)

func TestForInMemberTarget(t *testing.T) {
	code := `const a = {}
const c = { a: 1 }
for (a.b in c) {
  console.log(a.b)
}`
	_, err := parser.ParseFile(code)
	if err != nil {
		t.Fatalf("Failed to parse code: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// mustFail parses code and fails the test unless the error mentions want.
func mustFail(t *testing.T, code, want string) {
	t.Helper()
	_, err := parser.ParseFile(code)
	if err == nil {
		t.Fatalf("ParseFile(%q) succeeded; want error containing %q", code, want)
	}
	if !strings.Contains(err.Error(), want) {
		t.Errorf("ParseFile(%q) error = %q; want it to contain %q", code, err, want)
	}
}

// roundTrip parses code, regenerates it, and returns the output.
func roundTrip(t *testing.T, code string) string {
	t.Helper()
	p := mustParse(t, code)
	return strings.TrimSpace(generator.Generate(p))
}

// assertRoundTrip parses code, regenerates it, and checks that the output
// matches the expected string.
func assertRoundTrip(t *testing.T, code, want string) {
	t.Helper()
	got := roundTrip(t, code)
	if got != want {
		t.Errorf("roundTrip(%q)\n  got:  %s\n  want: %s", code, got, want)
	}
}

// firstStmt returns the concrete statement node from the i-th top-level statement.
func firstStmt(p *ast.Program, i int) ast.Stmt {
	return p.Body[i].Stmt
}

// exprOf extracts the inner concrete expression from an ExpressionStatement.
func exprOf(s ast.Stmt) ast.Expr {
	return s.(*ast.ExpressionStatement).Expression.Expr
}

// initializerExpr extracts the initializer expression from the first
// VariableDeclarator of a VariableDeclaration statement.
func initializerExpr(s ast.Stmt) ast.Expr {
	init := s.(*ast.VariableDeclaration).List[0].Initializer
	if init == nil {
		return nil
	}
	return init.Expr
}

// bodyOf extracts the BlockStatement body from a FunctionDeclaration.
func bodyOf(s ast.Stmt) *ast.BlockStatement {
	return s.(*ast.FunctionDeclaration).Function.Body
}

// ===========================================================================
// AST STRUCTURE VERIFICATION TESTS
// ===========================================================================

func TestArrayLiteralAST(t *testing.T) {
	p := mustParse(t, "var a = [1, 'two', true, null]")
	arr := initializerExpr(firstStmt(p, 0)).(*ast.ArrayLiteral)

	if got := len(arr.Value); got != 4 {
		t.Fatalf("array length = %d; want 4", got)
	}
	if n, ok := arr.Value[0].Expr.(*ast.NumberLiteral); !ok || n.Value != 1 {
		t.Errorf("arr[0] = %#v; want number 1", arr.Value[0].Expr)
	}
	if s, ok := arr.Value[1].Expr.(*ast.StringLiteral); !ok || s.Value != "two" {
		t.Errorf("arr[1] = %#v; want string \"two\"", arr.Value[1].Expr)
	}
	if b, ok := arr.Value[2].Expr.(*ast.BooleanLiteral); !ok || !b.Value {
		t.Errorf("arr[2] = %#v; want true", arr.Value[2].Expr)
	}
	if _, ok := arr.Value[3].Expr.(*ast.NullLiteral); !ok {
		t.Errorf("arr[3] = %T; want NullLiteral", arr.Value[3].Expr)
	}
}

func TestArrayLiteralElisionsAST(t *testing.T) {
	p := mustParse(t, "var a = [1,,2,,3]")
	arr := initializerExpr(firstStmt(p, 0)).(*ast.ArrayLiteral)

	if got := len(arr.Value); got != 5 {
		t.Fatalf("array length = %d; want 5", got)
	}
	// Positions 1 and 3 should be elisions (Expression with nil Expr).
	for _, i := range []int{1, 3} {
		if arr.Value[i].Expr != nil {
			t.Errorf("arr[%d] = %T; want hole", i, arr.Value[i].Expr)
		}
	}
	for _, i := range []int{0, 2, 4} {
		if _, ok := arr.Value[i].Expr.(*ast.NumberLiteral); !ok {
			t.Errorf("arr[%d] = %T; want NumberLiteral", i, arr.Value[i].Expr)
		}
	}
}

func TestArrayLiteralTrailingCommaAST(t *testing.T) {
	p := mustParse(t, "var a = [1,]; var b = [1,,]")
	if got := len(initializerExpr(firstStmt(p, 0)).(*ast.ArrayLiteral).Value); got != 1 {
		t.Errorf("[1,] length = %d; want 1", got)
	}
	if got := len(initializerExpr(firstStmt(p, 1)).(*ast.ArrayLiteral).Value); got != 2 {
		t.Errorf("[1,,] length = %d; want 2", got)
	}
}

func TestArrayLiteralSpreadAST(t *testing.T) {
	p := mustParse(t, "var a = [1, ...b, 2]")
	arr := initializerExpr(firstStmt(p, 0)).(*ast.ArrayLiteral)

	if got := len(arr.Value); got != 3 {
		t.Fatalf("array length = %d; want 3", got)
	}
	spread, ok := arr.Value[1].Expr.(*ast.SpreadElement)
	if !ok {
		t.Fatalf("arr[1] = %T; want SpreadElement", arr.Value[1].Expr)
	}
	if id, ok := spread.Expression.Expr.(*ast.Identifier); !ok || id.Name != "b" {
		t.Errorf("spread target = %#v; want identifier 'b'", spread.Expression.Expr)
	}
}

func TestArrayLiteralLargeAST(t *testing.T) {
	n := 200
	var elems []string
	for i := 0; i < n; i++ {
		elems = append(elems, fmt.Sprintf("%d", i))
	}
	p := mustParse(t, "var a = ["+strings.Join(elems, ",")+"]")
	arr := initializerExpr(firstStmt(p, 0)).(*ast.ArrayLiteral)

	if got := len(arr.Value); got != n {
		t.Fatalf("array length = %d; want %d", got, n)
	}
	for _, idx := range []int{0, n / 2, n - 1} {
		num, ok := arr.Value[idx].Expr.(*ast.NumberLiteral)
		if !ok {
			t.Errorf("arr[%d] = %T; want NumberLiteral", idx, arr.Value[idx].Expr)
			continue
		}
		if num.Value != float64(idx) {
			t.Errorf("arr[%d] value = %v; want %d", idx, num.Value, idx)
		}
	}
}

func TestArgumentListAST(t *testing.T) {
	p := mustParse(t, "f(1, ...args)")
	call := exprOf(firstStmt(p, 0)).(*ast.CallExpression)

	if got := len(call.ArgumentList); got != 2 {
		t.Fatalf("arg count = %d; want 2", got)
	}
	if _, ok := call.ArgumentList[1].Expr.(*ast.SpreadElement); !ok {
		t.Errorf("arg[1] = %T; want SpreadElement", call.ArgumentList[1].Expr)
	}
}

func TestSequenceExpressionAST(t *testing.T) {
	p := mustParse(t, "(1, 2, 3)")
	seq := exprOf(firstStmt(p, 0)).(*ast.SequenceExpression)

	if got := len(seq.Sequence); got != 3 {
		t.Fatalf("sequence length = %d; want 3", got)
	}
	for i, e := range seq.Sequence {
		if n := e.Expr.(*ast.NumberLiteral); n.Value != float64(i+1) {
			t.Errorf("seq[%d] = %v; want %d", i, n.Value, i+1)
		}
	}
}

func TestTemplateLiteralAST(t *testing.T) {
	p := mustParse(t, "tag`a\\n${b}c${d}`")
	tpl := exprOf(firstStmt(p, 0)).(*ast.TemplateLiteral)

	if tpl.Tag == nil {
		t.Fatal("template tag = nil; want identifier")
	}
	if got := len(tpl.Elements); got != 3 {
		t.Fatalf("element count = %d; want 3", got)
	}
	if got := len(tpl.Expressions); got != 2 {
		t.Fatalf("expression count = %d; want 2", got)
	}
	if got := tpl.Elements[0].Literal; got != `a\n` {
		t.Errorf("elements[0].Literal = %q; want %q", got, `a\n`)
	}
	if got := tpl.Elements[0].Cooked; got != "a\n" {
		t.Errorf("elements[0].Cooked = %q; want %q", got, "a\n")
	}
	if got := tpl.Elements[2].Literal; got != "" {
		t.Errorf("elements[2].Literal = %q; want empty", got)
	}
}

func TestNestedTemplateAST(t *testing.T) {
	p := mustParse(t, "x = `a${`b${c}`}d`")
	assign := exprOf(firstStmt(p, 0)).(*ast.AssignExpression)
	outer := assign.Right.Expr.(*ast.TemplateLiteral)
	inner, ok := outer.Expressions[0].Expr.(*ast.TemplateLiteral)
	if !ok {
		t.Fatalf("outer expression = %T; want TemplateLiteral", outer.Expressions[0].Expr)
	}
	if got := len(inner.Elements); got != 2 {
		t.Errorf("inner element count = %d; want 2", got)
	}
	if got := outer.Elements[1].Literal; got != "d" {
		t.Errorf("outer tail = %q; want \"d\"", got)
	}
}

func TestRegExpLiteralAST(t *testing.T) {
	p := mustParse(t, "var r = /[/]\\d+/gi")
	re := initializerExpr(firstStmt(p, 0)).(*ast.RegExpLiteral)
	if re.Pattern != `[/]\d+` {
		t.Errorf("pattern = %q; want %q", re.Pattern, `[/]\d+`)
	}
	if re.Flags != "gi" {
		t.Errorf("flags = %q; want \"gi\"", re.Flags)
	}
}

func TestDivisionIsNotRegExp(t *testing.T) {
	p := mustParse(t, "a = b / c / d")
	assign := exprOf(firstStmt(p, 0)).(*ast.AssignExpression)
	bin := assign.Right.Expr.(*ast.BinaryExpression)
	if bin.Operator != token.Slash {
		t.Errorf("operator = %v; want /", bin.Operator)
	}
	if _, ok := bin.Left.Expr.(*ast.BinaryExpression); !ok {
		t.Errorf("left = %T; want BinaryExpression (left associative)", bin.Left.Expr)
	}
}

func TestStringEscapesAST(t *testing.T) {
	p := mustParse(t, `var s = "\x41B\u{43}\n\'\0"`)
	s := initializerExpr(firstStmt(p, 0)).(*ast.StringLiteral)
	if want := "ABC\n'\x00"; s.Value != want {
		t.Errorf("value = %q; want %q", s.Value, want)
	}
}

func TestNumberLiteralsAST(t *testing.T) {
	tests := []struct {
		code string
		want float64
	}{
		{"0x1F", 31},
		{"0o17", 15},
		{"0b101", 5},
		{"017", 15},
		{"1_000", 1000},
		{".5", 0.5},
		{"1e3", 1000},
		{"2.5E-1", 0.25},
	}
	for _, tt := range tests {
		p := mustParse(t, "x = "+tt.code)
		assign := exprOf(firstStmt(p, 0)).(*ast.AssignExpression)
		n := assign.Right.Expr.(*ast.NumberLiteral)
		if n.Value != tt.want {
			t.Errorf("%s = %v; want %v", tt.code, n.Value, tt.want)
		}
	}
}

func TestStatementListAST(t *testing.T) {
	p := mustParse(t, `function f() { var a = 1; let b = 2; return a + b; }`)
	body := bodyOf(firstStmt(p, 0))

	if got := len(body.List); got != 3 {
		t.Fatalf("body length = %d; want 3", got)
	}
	if d := body.List[1].Stmt.(*ast.VariableDeclaration); d.Token != token.Let {
		t.Errorf("body[1] token = %v; want let", d.Token)
	}
	if _, ok := body.List[2].Stmt.(*ast.ReturnStatement); !ok {
		t.Errorf("body[2] = %T; want ReturnStatement", body.List[2].Stmt)
	}
}

func TestLetAsIdentifier(t *testing.T) {
	p := mustParse(t, "var let = 1; let = 2")
	if _, ok := exprOf(firstStmt(p, 1)).(*ast.AssignExpression); !ok {
		t.Errorf("stmt[1] = %T; want assignment to let", firstStmt(p, 1))
	}
}

func TestSwitchAST(t *testing.T) {
	p := mustParse(t, `switch (x) { case 1: a(); b(); case 2: default: c(); }`)
	sw := firstStmt(p, 0).(*ast.SwitchStatement)

	if got := len(sw.Body); got != 3 {
		t.Fatalf("case count = %d; want 3", got)
	}
	if got := len(sw.Body[0].Consequent); got != 2 {
		t.Errorf("case 1 consequent length = %d; want 2", got)
	}
	if got := len(sw.Body[1].Consequent); got != 0 {
		t.Errorf("case 2 consequent length = %d; want 0", got)
	}
	if sw.Body[2].Test != nil {
		t.Errorf("default test = %#v; want nil", sw.Body[2].Test)
	}
}

func TestObjectLiteralAST(t *testing.T) {
	p := mustParse(t, `var o = { a: 1, b, [c]: 2, d() {}, get e() { return 1; }, ...f, "g": 3, if: 4 }`)
	obj := initializerExpr(firstStmt(p, 0)).(*ast.ObjectLiteral)

	if got := len(obj.Value); got != 8 {
		t.Fatalf("property count = %d; want 8", got)
	}
	if _, ok := obj.Value[1].Prop.(*ast.PropertyShort); !ok {
		t.Errorf("prop[1] = %T; want PropertyShort", obj.Value[1].Prop)
	}
	if k := obj.Value[2].Prop.(*ast.PropertyKeyed); !k.Computed {
		t.Error("prop[2] not computed")
	}
	if k := obj.Value[3].Prop.(*ast.PropertyKeyed); k.Kind != ast.PropertyKindMethod {
		t.Errorf("prop[3] kind = %v; want method", k.Kind)
	}
	if k := obj.Value[4].Prop.(*ast.PropertyKeyed); k.Kind != ast.PropertyKindGet {
		t.Errorf("prop[4] kind = %v; want get", k.Kind)
	}
	if _, ok := obj.Value[5].Prop.(*ast.SpreadElement); !ok {
		t.Errorf("prop[5] = %T; want SpreadElement", obj.Value[5].Prop)
	}
	if k := obj.Value[7].Prop.(*ast.PropertyKeyed); k.Key.Expr.(*ast.Identifier).Name != "if" {
		t.Errorf("prop[7] key = %#v; want if", k.Key.Expr)
	}
}

func TestContextualPropertyNames(t *testing.T) {
	p := mustParse(t, `var o = { get: 1, set() {}, async: 2, static: 3 }`)
	obj := initializerExpr(firstStmt(p, 0)).(*ast.ObjectLiteral)
	if got := len(obj.Value); got != 4 {
		t.Fatalf("property count = %d; want 4", got)
	}
	if k := obj.Value[1].Prop.(*ast.PropertyKeyed); k.Kind != ast.PropertyKindMethod {
		t.Errorf("set() kind = %v; want method", k.Kind)
	}
}

func TestForLoopAST(t *testing.T) {
	p := mustParse(t, "for (let i = 0; i < 10; i++) {} for (;;) {}")
	loop := firstStmt(p, 0).(*ast.ForStatement)
	if _, ok := loop.Initializer.Initializer.(*ast.VariableDeclaration); !ok {
		t.Errorf("initializer = %T; want VariableDeclaration", loop.Initializer.Initializer)
	}
	if loop.Test == nil || loop.Update == nil {
		t.Error("test or update = nil")
	}
	empty := firstStmt(p, 1).(*ast.ForStatement)
	if empty.Initializer != nil || empty.Test != nil || empty.Update != nil {
		t.Error("for (;;) has a header part")
	}
}

func TestForInOfAST(t *testing.T) {
	p := mustParse(t, "for (const k in o) {} for (var [a, b] of pairs) {} for (x of xs) {}")
	if _, ok := firstStmt(p, 0).(*ast.ForInStatement); !ok {
		t.Errorf("stmt[0] = %T; want ForInStatement", firstStmt(p, 0))
	}
	of := firstStmt(p, 1).(*ast.ForOfStatement)
	decl := of.Into.Into.(*ast.VariableDeclaration)
	if _, ok := decl.List[0].Target.Target.(*ast.ArrayPattern); !ok {
		t.Errorf("for-of target = %T; want ArrayPattern", decl.List[0].Target.Target)
	}
	if _, ok := firstStmt(p, 2).(*ast.ForOfStatement).Into.Into.(*ast.Expression); !ok {
		t.Error("for (x of xs) target is not an expression")
	}
}

func TestForInitializerWithIn(t *testing.T) {
	p := mustParse(t, "for (var i = (a in b); i; ) {}")
	if _, ok := firstStmt(p, 0).(*ast.ForStatement); !ok {
		t.Errorf("stmt = %T; want ForStatement", firstStmt(p, 0))
	}
}

func TestArrowFunctionAST(t *testing.T) {
	p := mustParse(t, "f = (a, { b }, ...c) => a; g = x => { return x; }; h = async () => 1")

	arrow := exprOf(firstStmt(p, 0)).(*ast.AssignExpression).Right.Expr.(*ast.ArrowFunctionLiteral)
	if got := len(arrow.ParameterList.List); got != 2 {
		t.Errorf("param count = %d; want 2", got)
	}
	if arrow.ParameterList.Rest == nil {
		t.Error("rest parameter = nil")
	}
	if _, ok := arrow.Body.Body.(*ast.Expression); !ok {
		t.Errorf("body = %T; want Expression", arrow.Body.Body)
	}

	block := exprOf(firstStmt(p, 1)).(*ast.AssignExpression).Right.Expr.(*ast.ArrowFunctionLiteral)
	if _, ok := block.Body.Body.(*ast.BlockStatement); !ok {
		t.Errorf("body = %T; want BlockStatement", block.Body.Body)
	}

	async := exprOf(firstStmt(p, 2)).(*ast.AssignExpression).Right.Expr.(*ast.ArrowFunctionLiteral)
	if !async.Async {
		t.Error("async arrow not async")
	}
}

func TestParenthesizedIsNotArrow(t *testing.T) {
	p := mustParse(t, "(a, b); async(c)")
	if _, ok := exprOf(firstStmt(p, 0)).(*ast.SequenceExpression); !ok {
		t.Errorf("stmt[0] = %T; want SequenceExpression", exprOf(firstStmt(p, 0)))
	}
	call := exprOf(firstStmt(p, 1)).(*ast.CallExpression)
	if id := call.Callee.Expr.(*ast.Identifier); id.Name != "async" {
		t.Errorf("callee = %q; want async", id.Name)
	}
}

func TestClassAST(t *testing.T) {
	p := mustParse(t, `@dec class A extends B {
  static x = 1;
  #y;
  constructor() { super(); }
  get z() { return this.#y; }
  static { init(); }
}`)
	class := firstStmt(p, 0).(*ast.ClassDeclaration).Class

	if got := len(class.Decorators); got != 1 {
		t.Errorf("decorator count = %d; want 1", got)
	}
	if class.SuperClass == nil {
		t.Error("superclass = nil")
	}
	if got := len(class.Body); got != 5 {
		t.Fatalf("element count = %d; want 5", got)
	}
	if f := class.Body[0].Element.(*ast.FieldDefinition); !f.Static || f.Initializer == nil {
		t.Errorf("x = %#v; want static field with initializer", f)
	}
	if f := class.Body[1].Element.(*ast.FieldDefinition); f.Key.Expr.(*ast.Identifier).Name != "#y" {
		t.Errorf("private field key = %#v", f.Key.Expr)
	}
	if m := class.Body[3].Element.(*ast.MethodDefinition); m.Kind != ast.PropertyKindGet {
		t.Errorf("z kind = %v; want get", m.Kind)
	}
	if _, ok := class.Body[4].Element.(*ast.ClassStaticBlock); !ok {
		t.Errorf("element[4] = %T; want ClassStaticBlock", class.Body[4].Element)
	}
}

func TestConditionalAST(t *testing.T) {
	p := mustParse(t, "a ? b : c ? d : e")
	cond := exprOf(firstStmt(p, 0)).(*ast.ConditionalExpression)
	if _, ok := cond.Alternate.Expr.(*ast.ConditionalExpression); !ok {
		t.Errorf("alternate = %T; want nested ConditionalExpression", cond.Alternate.Expr)
	}
}

func TestImportAST(t *testing.T) {
	p := mustParse(t, `import def, { a as b, c, "d-e" as f } from "mod"; import * as ns from "ns"; import "side"`)

	imp := firstStmt(p, 0).(*ast.ImportDeclaration)
	want := []ast.ImportSpecifier{
		{Imported: "default", Local: &ast.Identifier{Name: "def"}},
		{Imported: "a", Local: &ast.Identifier{Name: "b"}},
		{Imported: "c", Local: &ast.Identifier{Name: "c"}},
		{Imported: "d-e", Local: &ast.Identifier{Name: "f"}},
	}
	if len(imp.Specifiers) != len(want) {
		t.Fatalf("specifier count = %d; want %d", len(imp.Specifiers), len(want))
	}
	for i, w := range want {
		got := imp.Specifiers[i]
		if got.Imported != w.Imported || got.Local.Name != w.Local.Name {
			t.Errorf("specifier[%d] = %s as %s; want %s as %s", i, got.Imported, got.Local.Name, w.Imported, w.Local.Name)
		}
	}
	if imp.Source.Value != "mod" {
		t.Errorf("source = %q; want mod", imp.Source.Value)
	}

	ns := firstStmt(p, 1).(*ast.ImportDeclaration)
	if ns.Specifiers[0].Imported != "*" {
		t.Errorf("namespace import = %q; want *", ns.Specifiers[0].Imported)
	}
	if side := firstStmt(p, 2).(*ast.ImportDeclaration); len(side.Specifiers) != 0 {
		t.Errorf("side effect import has %d specifiers", len(side.Specifiers))
	}
}

func TestExportAST(t *testing.T) {
	p := mustParse(t, `export const a = 1;
export function f() {}
export { a as b, f };
export * from "x";
export * as y from "y";
export default class {}`)

	decl := firstStmt(p, 0).(*ast.ExportDeclaration)
	if _, ok := decl.Declaration.Stmt.(*ast.VariableDeclaration); !ok {
		t.Errorf("export const = %T", decl.Declaration.Stmt)
	}
	specs := firstStmt(p, 2).(*ast.ExportDeclaration)
	if got := specs.Specifiers[0]; got.Local.Name != "a" || got.Exported != "b" {
		t.Errorf("specifier = %s as %s; want a as b", got.Local.Name, got.Exported)
	}
	if star := firstStmt(p, 3).(*ast.ExportDeclaration); !star.Namespace || star.Source == nil {
		t.Error("export * is not a namespace re-export")
	}
	if named := firstStmt(p, 4).(*ast.ExportDeclaration); named.Specifiers[0].Local != nil || named.Specifiers[0].Exported != "y" {
		t.Errorf("export * as y = %#v", named.Specifiers[0])
	}
	def := firstStmt(p, 5).(*ast.ExportDefaultDeclaration)
	if class := def.Declaration.Stmt.(*ast.ClassDeclaration).Class; class.Name != nil {
		t.Errorf("default class name = %v; want nil", class.Name.Name)
	}
}

func TestOptionalChainAST(t *testing.T) {
	p := mustParse(t, "a?.b.c")
	outer := exprOf(firstStmt(p, 0)).(*ast.MemberExpression)
	if outer.Optional {
		t.Error(".c marked optional")
	}
	if inner := outer.Object.Expr.(*ast.MemberExpression); !inner.Optional {
		t.Error("?.b not optional")
	}
}

func TestConditionalWithOptionalNumber(t *testing.T) {
	p := mustParse(t, "x = a?.5:b")
	cond := exprOf(firstStmt(p, 0)).(*ast.AssignExpression).Right.Expr.(*ast.ConditionalExpression)
	if n := cond.Consequent.Expr.(*ast.NumberLiteral); n.Value != 0.5 {
		t.Errorf("consequent = %v; want 0.5", n.Value)
	}
}

// ===========================================================================
// AUTOMATIC SEMICOLON INSERTION
// ===========================================================================

func TestAutomaticSemicolonInsertion(t *testing.T) {
	p := mustParse(t, "a\nb\n++c")
	if got := len(p.Body); got != 3 {
		t.Fatalf("statement count = %d; want 3", got)
	}
	if u := exprOf(firstStmt(p, 2)).(*ast.UpdateExpression); u.Postfix {
		t.Error("++c parsed as postfix")
	}
}

func TestReturnNewline(t *testing.T) {
	p := mustParse(t, "function f() { return\n1 }")
	body := bodyOf(firstStmt(p, 0))
	if ret := body.List[0].Stmt.(*ast.ReturnStatement); ret.Argument != nil {
		t.Error("return swallowed the next line")
	}
	if got := len(body.List); got != 2 {
		t.Errorf("body length = %d; want 2", got)
	}
}

// ===========================================================================
// ROUND TRIP TESTS
// ===========================================================================

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		code, want string
	}{
		{"var a = 1", "var a = 1;"},
		{"a = b ? c : d", "a = b ? c : d;"},
		{"x = (1 + 2) * 3", "x = (1 + 2) * 3;"},
		{"x = 2 ** 3 ** 2", "x = 2 ** 3 ** 2;"},
		{"x = (-2) ** 2", "x = (-2) ** 2;"},
		{"x = 0x1F", "x = 0x1F;"},
		{"x = 'single'", "x = 'single';"},
		{"a?.b?.[c]?.(d)", "a?.b?.[c]?.(d);"},
		{"x = `a${b}c`", "x = `a${b}c`;"},
		{"x = /ab+c/gi", "x = /ab+c/gi;"},
		{"a = b / c / d", "a = b / c / d;"},
		{"f = async (a, b) => a + b", "f = async (a, b) => a + b;"},
		{"f = x => ({})", "f = (x) => ({});"},
		{"let { a, b: [c, d = 1], ...rest } = obj", "let { a, b: [c, d = 1], ...rest } = obj;"},
		{"[a, b] = [b, a]", "[a, b] = [b, a];"},
		{"({ a = 1 } = obj)", "({\n    a = 1\n} = obj);"},
		{"new Foo", "new Foo();"},
		{"new (f())()", "new (f())();"},
		{"x = a ?? (b || c)", "x = a ?? (b || c);"},
		{"typeof x === 'undefined'", "typeof x === 'undefined';"},
		{"import def, { a as b, c } from \"mod\"", "import def, { a as b, c } from \"mod\";"},
		{"export { a as b }", "export { a as b };"},
		{"export * from 'x'", "export * from 'x';"},
		{"export default function () {}", "export default function() {}"},
		{"export default a + b", "export default a + b;"},
		{"if (a) b(); else c()", "if (a) {\n    b();\n} else {\n    c();\n}"},
		{"if (a) {} else if (b) {}", "if (a) {} else if (b) {}"},
		{"label: for (;;) { break label; }", "label: for (;;) {\n    break label;\n}"},
		{"do x++; while (x < 3)", "do {\n    x++;\n} while (x < 3);"},
		{"try { a(); } catch { b(); } finally { c(); }", "try {\n    a();\n} catch {\n    b();\n} finally {\n    c();\n}"},
		{"function* g() { yield* h(); }", "function* g() {\n    yield* h();\n}"},
		{"async function f() { await g(); }", "async function f() {\n    await g();\n}"},
	}
	for _, tt := range tests {
		assertRoundTrip(t, tt.code, tt.want)
	}
}

func TestRoundTripIsStable(t *testing.T) {
	code := `class A extends B {
  static x = 1;
  #y = 2;
  get y() { return this.#y; }
  static { init(); }
}
const o = { a, b: 1, [c]: 2, m() {} };
for (const [k, v] of Object.entries(o)) { console.log(k, v); }
switch (x) { case 1: a(); break; default: b(); }`
	first := roundTrip(t, code)
	second := roundTrip(t, first)
	if first != second {
		t.Errorf("regenerated output is not stable\n first: %s\nsecond: %s", first, second)
	}
}

// ===========================================================================
// ERROR TESTS
// ===========================================================================

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		code, want string
	}{
		{"var = 1", "Unexpected token ="},
		{"a +", "Unexpected end of input"},
		{"with (a) {}", "with statement is not supported"},
		{"x = 1n", "BigInt literals are not supported"},
		{"return 1", "Illegal return statement"},
		{"break", "Illegal break statement"},
		{"while (a) { continue foo; }", "Undefined label 'foo'"},
		{"({ a = 1 })", "Invalid shorthand property initializer"},
		{"1 = a", "Invalid left-hand side in assignment"},
		{"const a", "Missing initializer in const declaration"},
		{"if (a) let b = 1", "Lexical declaration cannot appear in a single-statement context"},
		{"try {}", "Missing catch or finally after try"},
		{"x = 'unterminated", "Invalid or unexpected token"},
		{"throw\nerr", "Illegal newline after throw"},
		{"-a ** 2", "Unary operator used immediately before exponentiation expression"},
	}
	for _, tt := range tests {
		mustFail(t, tt.code, tt.want)
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := parser.ParseFile("a;\nb +;")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "Line 2:4 ") {
		t.Errorf("error = %q; want it to start with Line 2:4", err)
	}
}
