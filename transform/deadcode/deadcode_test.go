package deadcode_test

import (
	"bytes"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/t14raptor/jsdce/generator"
	"github.com/t14raptor/jsdce/parser"
	"github.com/t14raptor/jsdce/transform/deadcode"
)

var whitespace = regexp.MustCompile(`\s+`)

func dce(in string, opts deadcode.Options) (string, deadcode.Stats, error) {
	p, err := parser.ParseFile(in)
	if err != nil {
		return "", deadcode.Stats{}, err
	}
	stats := deadcode.Eliminate(p, opts)
	return generator.Generate(p), stats, nil
}

func normalize(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

func test(in, want string, t *testing.T) {
	t.Helper()
	got, _, err := dce(in, deadcode.DefaultOptions())
	if err != nil {
		t.Errorf("dce('%s') failed: %v", in, err)
		return
	}
	if got = normalize(got); got != want {
		t.Errorf("dce('%s') = '%s'; want '%s'", in, got, want)
	}
}

func TestIfFolding(t *testing.T) {
	test(`if (true) { a(); b(); }`, `a(); b();`, t)
	test(`if (1) a();`, `a();`, t)
	test(`if (false) { a(); } else { b(); }`, `b();`, t)
	test(`if (false) { a(); }`, ``, t)
	test(`if ("") a(); else if (c) b();`, `if (c) { b(); }`, t)
	test(`if (!0) { a(); } else { b(); }`, `a();`, t)
	test(`if (void 0) { a(); }`, ``, t)
}

func TestIfFoldingKeepsBlockScope(t *testing.T) {
	test(`if (true) { let a = f(); use(a); }`, `{ let a = f(); use(a); }`, t)
	test(`if (true) { class A {} use(A, A); }`, `{ class A {} use(A, A); }`, t)
	test(`if (true) { var a = f(); use(a); }`, `var a = f(); use(a);`, t)
	test(`function g() { if (1) return f(); } g(); g();`, `function g() { return f(); } g(); g();`, t)
}

func TestConditionalFolding(t *testing.T) {
	test(`x = true ? a : b;`, `x = a;`, t)
	test(`x = 0 ? a : b;`, `x = b;`, t)
	test(`x = cond ? a : b;`, `x = cond ? a : b;`, t)
	test(`x = "s" ? (null ? a : b) : c;`, `x = b;`, t)
}

func TestConditionalFoldingKeepsThis(t *testing.T) {
	test(`(1 ? a.b : c)();`, `(0, a.b)();`, t)
	test(`(1 ? a : c.d)();`, `a();`, t)
	test(`x = 1 ? a.b : c;`, `x = a.b;`, t)
	test("(1 ? a.b : c)`t`;", "(0, a.b)`t`;", t)
	test(`(1 ? eval : f)("s");`, `(0, eval)("s");`, t)
}

func TestConditionalFoldingKeepsReferences(t *testing.T) {
	test(`x = delete (1 ? a.b : c);`, `x = delete (0, a.b);`, t)
	test(`x = delete (1 ? a : c);`, `x = delete (0, a);`, t)
	test(`x = typeof (1 ? a : c);`, `x = typeof (0, a);`, t)
	test(`x = typeof (1 ? a.b : c);`, `x = typeof a.b;`, t)
}

func TestNormalize(t *testing.T) {
	test(`if (cond) {} else { b(); }`, `if (!cond) { b(); }`, t)
	test(`if (!cond) {} else { b(); }`, `if (cond) { b(); }`, t)
	test(`if (cond) { a(); } else {}`, `if (cond) { a(); }`, t)
	test(`if (a && b) {} else { c(); }`, `if (!(a && b)) { c(); }`, t)
	test(`if (cond) {} else {}`, `if (cond) {}`, t)
}

func TestUnreachable(t *testing.T) {
	test(`function g() { return x; y; z(); } g(); g();`, `function g() { return x; } g(); g();`, t)
	test(`function g() { throw e; y(); } g(); g();`, `function g() { throw e; } g(); g();`, t)
	test(`for (;;) { if (a) { break; b(); } c(); }`, `for (;;) { if (a) { break; } c(); }`, t)
	test(`while (a) { continue; b(); }`, `while (a) { continue; }`, t)
	test(`function g() { switch (x) { case 1: return; y(); case 2: z(); } } g(); g();`,
		`function g() { switch (x) { case 1: return; case 2: z(); } } g(); g();`, t)
}

func TestUnreachableKeepsHoisted(t *testing.T) {
	test(`function g() { return f() + f(); function f() { return 1; } } g(); g();`,
		`function g() { return f() + f(); function f() { return 1; } } g(); g();`, t)
	test(`function g() { return a; var a = 1; } g(); g();`, `function g() { return a; var a; } g(); g();`, t)
	test(`function g() { return; var a = 1; } g(); g();`, `function g() { return; } g(); g();`, t)
}

func TestInline(t *testing.T) {
	test(`let x = 1; use(x);`, `use(1);`, t)
	test(`const x = "a" + "b"; use(x);`, `use("a" + "b");`, t)
	test(`const a = 1; const b = a; use(b);`, `use(1);`, t)
	test(`const a = 1; use({ a });`, `use({ a: 1 });`, t)
	test(`const debug = false; if (debug) { log(); }`, ``, t)
	test(`const debug = false; x = debug ? a : b;`, `x = b;`, t)
}

func TestInlineSkipped(t *testing.T) {
	test(`let x = 1; use(x, x);`, `let x = 1; use(x, x);`, t)
	test(`let x = 1; x = 2; use(x);`, `let x = 1; x = 2; use(x);`, t)
	test(`let x = f(); use(x);`, `let x = f(); use(x);`, t)
	test(`function g(a) { return a; } g(1); g(2);`, `function g(a) { return a; } g(1); g(2);`, t)
	test(`import a from "m"; use(a);`, `import a from "m"; use(a);`, t)
	test(`use(x); var x = 1;`, `use(x); var x = 1;`, t)
	test(`const o = {}; for (;;) { use(o); }`, `const o = {}; for (;;) { use(o); }`, t)
	test(`function g() { return x; } use(g(), g()); const x = 1;`,
		`function g() { return x; } use(g(), g()); const x = 1;`, t)
}

func TestDeclarationRemoval(t *testing.T) {
	test(`function f() {}`, ``, t)
	test(`class A {}`, ``, t)
	test(`var a = 1, b = "b";`, ``, t)
	test(`var a = 1, b = f();`, `var b = f();`, t)
	test(`function a() { return "a"; } function b() { return a(); } b(); b();`,
		`function a() { return "a"; } function b() { return a(); } b(); b();`, t)
	test(`function a() { return "a"; } a();`, `(function a() { return "a"; }());`, t)
}

func TestDeclarationRemovalKeepsEffects(t *testing.T) {
	test(`@dec class A {}`, `@dec class A {}`, t)
	test(`class A { static x = f(); }`, `class A { static x = f(); }`, t)
	test(`class A extends f() {}`, `class A extends f() {}`, t)
	test(`var a = f();`, `var a = f();`, t)
}

func TestDeclarationRemovalKeepsConversions(t *testing.T) {
	test(`const o = {}; const x = o + 1; use(o);`, `const o = {}; const x = o + 1; use(o);`, t)
	test(`const o = {}; const x = -o; use(o);`, `const o = {}; const x = -o; use(o);`, t)
	test(`const o = {}; const x = o < 1; use(o);`, `const o = {}; const x = o < 1; use(o);`, t)
	test("const o = {}; const x = `${o}`; use(o);", "const o = {}; const x = `${o}`; use(o);", t)
	test(`const o = {}; const x = typeof o; use(o, o);`, `const o = {}; use(o, o);`, t)
	test(`const o = {}; const x = o === 1; use(o, o);`, `const o = {}; use(o, o);`, t)
	test(`const n = 1; const x = n + 1; use(n, n);`, `const n = 1; use(n, n);`, t)
}

func TestExports(t *testing.T) {
	test(`export function f() {}`, `export function f() {}`, t)
	test(`export class A {}`, `export class A {}`, t)
	test(`export const a = 1; use(a);`, `export const a = 1; use(a);`, t)
	test(`const a = 1; export { a };`, `const a = 1; export { a };`, t)
	test(`export default function f() {}`, `export default function f() {}`, t)
}

func TestSurvivingVars(t *testing.T) {
	test(`if (false) { var a = 1; } use(a);`, `var a; use(a);`, t)
	test(`if (true) {} else { var a = 1, b = 2; } use(a, a);`, `var a; use(a, a);`, t)
	test(`if (false) { function f() { var a; } }`, ``, t)
}

func TestCycles(t *testing.T) {
	test(`function f() { f(); }`, ``, t)
	test(`function a() { return b(); } function b() { return a(); }`, ``, t)
	test(`class A { b() { new B(); } } class B { a() { new A(); } }`, ``, t)
	test(`function a() { return b(); } function b() { return a(); } a();`,
		`function a() { return b(); } function b() { return a(); } a();`, t)
	test(`function f() { f(); } export { f };`, `function f() { f(); } export { f };`, t)
}

func TestDirectEval(t *testing.T) {
	test(`function g() { var a = 1; eval("a"); } g(); g();`, `function g() { var a = 1; eval("a"); } g(); g();`, t)
	test(`function g() { let a = 1; eval(a); } g(); g();`, `function g() { let a = 1; eval(a); } g(); g();`, t)
	test(`function g() { var a = 1; } function h() { eval(""); } g(); g(); h(); h();`,
		`function g() {} function h() { eval(""); } g(); g(); h(); h();`, t)
}

func TestIdempotent(t *testing.T) {
	inputs := []string{
		`let x = 1; use(x); if (false) { a(); } else { b(); }`,
		`function g() { return a; var a = 1; b(); } g(); g();`,
		`if (c) {} else { const d = 1; use(d); }`,
		`function a() { return b(); } function b() { return a(); } x = 0 ? a : b;`,
	}
	for _, in := range inputs {
		p, err := parser.ParseFile(in)
		if err != nil {
			t.Fatalf("parse '%s': %v", in, err)
		}
		deadcode.Eliminate(p, deadcode.DefaultOptions())
		once := generator.Generate(p)
		stats := deadcode.Eliminate(p, deadcode.DefaultOptions())
		if twice := generator.Generate(p); twice != once {
			t.Errorf("second run changed '%s': '%s' -> '%s'", in, normalize(once), normalize(twice))
		}
		if stats.Changes() != 0 || stats.Iterations != 1 {
			t.Errorf("second run on '%s' = %+v; want no changes in one iteration", in, stats)
		}
	}
}

func TestStats(t *testing.T) {
	_, stats, err := dce(`let x = 1; use(x); if (false) { a(); } function f() {}`, deadcode.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := deadcode.Stats{Inlined: 1, ConditionsFolded: 1, DeclarationsRemoved: 1, Iterations: 2}
	if stats != want {
		t.Errorf("stats = %+v; want %+v", stats, want)
	}
	if stats.Changes() != 3 {
		t.Errorf("Changes() = %d; want 3", stats.Changes())
	}

	var total deadcode.Stats
	total.Add(stats)
	total.Add(stats)
	if total.Inlined != 2 || total.Iterations != 4 {
		t.Errorf("Add() = %+v", total)
	}
}

func TestMaxIterations(t *testing.T) {
	in := `function a() {} function b() { a(); }`

	got, stats, err := dce(in, deadcode.Options{MaxIterations: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got = normalize(got); got != `function a() {}` || stats.Iterations != 1 {
		t.Errorf("limited run = '%s' after %d iterations", got, stats.Iterations)
	}

	got, stats, err = dce(in, deadcode.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if got = normalize(got); got != `` || stats.Iterations != 3 {
		t.Errorf("full run = '%s' after %d iterations", got, stats.Iterations)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, _, err := dce(`let x = 1; use(x);`, deadcode.Options{Logger: logger}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"rule=inline", "binding=x", "iteration=1", "dead code eliminated"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestPass(t *testing.T) {
	if deadcode.Pass.Name != "dead-code-elimination" || deadcode.Pass.Group != "builtin-pre" || !deadcode.Pass.Experimental {
		t.Errorf("Pass = %+v", deadcode.Pass)
	}
}
