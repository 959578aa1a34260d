package generator

import (
	"math"
	"strings"
	"testing"

	"github.com/t14raptor/jsdce/ast"
	"github.com/t14raptor/jsdce/parser"
	"github.com/t14raptor/jsdce/token"
)

func parseSource(src string) (ast.VisitableNode, error) {
	ast, err := parser.ParseFile(src)
	if err != nil {
		return nil, err
	}
	return ast, nil
}

func generateASTNoIndent(program ast.VisitableNode) string {
	output := Generate(program)
	return strings.ReplaceAll(strings.ReplaceAll(strings.ReplaceAll(output, "\n", ""), "    ", ""), "'", "\"")
}

func runCases(t *testing.T, tests []struct{ name, input, expected string }) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := parseSource(tt.input)
			if err != nil {
				t.Fatalf("Failed to parse input: %v", err)
			}
			if got := generateASTNoIndent(ctx); got != tt.expected {
				t.Errorf("\nInput:    %s\nExpected: %s\nGot:      %s", tt.input, tt.expected, got)
			}
		})
	}
}

func TestSequenceExpressionInArguments(t *testing.T) {
	runCases(t, []struct{ name, input, expected string }{
		{
			name:     "sequence as single argument to new",
			input:    "new F6(((a = 1), 2));",
			expected: "new F6((a = 1, 2));",
		},
		{
			name:     "sequence as second argument to new",
			input:    "new F6(x, ((b = 2), 3));",
			expected: "new F6(x, (b = 2, 3));",
		},
		{
			name:     "sequence with function literal in new",
			input:    "new F6(h, ((r = R), function (W) { return r++; }));",
			expected: "new F6(h, (r = R, function(W) {return r++;}));",
		},
		{
			name:     "sequence in regular function call",
			input:    "f(((d = 4), 5));",
			expected: "f((d = 4, 5));",
		},
		{
			name:     "sequence in throw statement",
			input:    "throw ((a = 1), 2);",
			expected: "throw a = 1, 2;",
		},
		{
			name:     "sequence in await expression",
			input:    "async function f() { await ((b = 2), 3); }",
			expected: "async function f() {await (b = 2, 3);}",
		},
		{
			name:     "sequence in array element",
			input:    "x = [(a, b), c];",
			expected: "x = [(a, b), c];",
		},
	})
}

func TestOperatorPrecedence(t *testing.T) {
	runCases(t, []struct{ name, input, expected string }{
		{"redundant parens dropped", "x = ((a * b)) + c;", "x = a * b + c;"},
		{"lower precedence on the left", "x = (a + b) * c;", "x = (a + b) * c;"},
		{"left associative right operand", "x = a - (b - c);", "x = a - (b - c);"},
		{"exponent right associative", "x = (a ** b) ** c;", "x = (a ** b) ** c;"},
		{"conditional in test", "x = (a ? b : c) ? d : e;", "x = (a ? b : c) ? d : e;"},
		{"assignment in conditional branch", "x = a ? b = 1 : c;", "x = a ? b = 1 : c;"},
		{"arrow as callee", "((a) => a)(1);", "((a) => a)(1);"},
		{"function expression statement", "(function () {})();", "(function() {}());"},
		{"object literal statement", "({}).toString();", "({}.toString());"},
		{"unary on unary", "x = - -a;", "x = - -a;"},
		{"unary on prefix update", "x = + ++a;", "x = + ++a;"},
		{"typeof spacing", "x = typeof a;", "x = typeof a;"},
		{"number member", "x = 1..toString();", "x = 1..toString();"},
		{"integer member", "x = (1).toString();", "x = (1).toString();"},
		{"mixed coalesce", "x = (a || b) ?? c;", "x = (a || b) ?? c;"},
		{"in inside for init", "for (var i = (a in b); i < 1; i++) {}", "for (var i = (a in b); i < 1; i++) {}"},
		{"new with member call callee", "new (a.b())();", "new (a.b())();"},
		{"optional call", "a?.b(c);", "a?.b(c);"},
	})
}

func TestStatements(t *testing.T) {
	runCases(t, []struct{ name, input, expected string }{
		{"if braces", "if (a) b();", "if (a) {b();}"},
		{"else if chain", "if (a) b(); else if (c) d(); else e();", "if (a) {b();} else if (c) {d();} else {e();}"},
		{"empty block", "{}", "{}"},
		{"empty statement body", "while (a);", "while (a) ;"},
		{"switch", "switch (a) { case 1: b(); default: c(); }", "switch (a) {case 1:b();default:c();}"},
		{"labelled continue", "outer: for (;;) { continue outer; }", "outer: for (;;) {continue outer;}"},
		{"for of await", "async function f() { for await (const x of xs) {} }", "async function f() {for await (const x of xs) {}}"},
		{"catch binding", "try {} catch ({ message }) {}", "try {} catch ({ message }) {}"},
		{"class members", "class A { static #x = 1; static m() {} set v(a) {} }", "class A {static #x = 1;static m() {}set v(a) {}}"},
		{"decorated class", "@a.b(1) class C {}", "@a.b(1) class C {}"},
		{"object methods", "x = { get a() { return 1; }, async *b() {} };", "x = {get a() {return 1;},async *b() {}};"},
		{"export named", "const a = 1; export { a as \"b c\" };", "const a = 1;export { a as \"b c\" };"},
		{"export namespace", "export * as ns from \"m\";", "export * as ns from \"m\";"},
		{"export default object", "export default {};", "export default ({});"},
		{"import namespace", "import d, * as ns from \"m\";", "import d, * as ns from \"m\";"},
		{"side effect import", "import \"m\";", "import \"m\";"},
	})
}

func TestGenerateConstructedNodes(t *testing.T) {
	num := func(v float64) *ast.Expression {
		return &ast.Expression{Expr: &ast.NumberLiteral{Value: v}}
	}
	str := func(v string) *ast.Expression {
		return &ast.Expression{Expr: &ast.StringLiteral{Value: v}}
	}
	id := func(name string) *ast.Expression {
		return &ast.Expression{Expr: &ast.Identifier{Name: name}}
	}

	tests := []struct {
		name     string
		node     ast.VisitableNode
		expected string
	}{
		{"integer", num(42), "42"},
		{"fraction", num(0.5), "0.5"},
		{"large", num(1e21), "1e+21"},
		{"small", num(1e-7), "1e-7"},
		{"negative zero prints as zero", num(math.Copysign(0, -1)), "0"},
		{"quoted string", str("a\"b\n"), `"a\"b\n"`},
		{"line separator escaped", str("\u2028"), `"\u2028"`},
		{
			name: "negative number operand",
			node: &ast.Expression{Expr: &ast.BinaryExpression{
				Operator: token.Exponent,
				Left:     &ast.Expression{Expr: &ast.UnaryExpression{Operator: token.Minus, Operand: num(2)}},
				Right:    num(2),
			}},
			expected: "(-2) ** 2",
		},
		{
			name: "sequence in binary",
			node: &ast.Expression{Expr: &ast.BinaryExpression{
				Operator: token.Plus,
				Left:     &ast.Expression{Expr: &ast.SequenceExpression{Sequence: ast.Expressions{*id("a"), *id("b")}}},
				Right:    id("c"),
			}},
			expected: "(a, b) + c",
		},
		{
			name: "negated binary",
			node: &ast.Expression{Expr: &ast.UnaryExpression{
				Operator: token.Not,
				Operand: &ast.Expression{Expr: &ast.BinaryExpression{
					Operator: token.LogicalAnd, Left: id("a"), Right: id("b"),
				}},
			}},
			expected: "!(a && b)",
		},
		{
			name: "void zero",
			node: &ast.Expression{Expr: &ast.UnaryExpression{Operator: token.Void, Operand: num(0)}},
			expected: "void 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.node); got != tt.expected {
				t.Errorf("Generate() = %s; want %s", got, tt.expected)
			}
		})
	}
}

func TestGenerateIndentation(t *testing.T) {
	ctx, err := parseSource("function f() { if (a) { return 1; } }")
	if err != nil {
		t.Fatal(err)
	}
	want := "function f() {\n    if (a) {\n        return 1;\n    }\n}\n"
	if got := Generate(ctx); got != want {
		t.Errorf("Generate() =\n%s\nwant:\n%s", got, want)
	}
}
