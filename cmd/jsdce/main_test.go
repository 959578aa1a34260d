package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runArgs(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(append([]string{"-no-config"}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestStdin(t *testing.T) {
	out, _, err := runArgs(t, `let x = 1; use(x); if (false) { a(); }`)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "use(1);" {
		t.Errorf("stdout = %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := runArgs(t, "", "-version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "jsdce "+version+"\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestStats(t *testing.T) {
	_, errOut, err := runArgs(t, `let x = 1; use(x);`, "-stats")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut, "<stdin>: 1 inlined, 0 removed") || !strings.Contains(errOut, "in 2 iterations") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestVerbose(t *testing.T) {
	_, errOut, err := runArgs(t, `function f() {}`, "-v")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut, "rule=remove") || !strings.Contains(errOut, "file=<stdin>") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestFilesInPlace(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.js": "if (true) { a(); }",
		"b.js": "x = 0 ? a : b;",
	}
	want := map[string]string{
		"a.js": "a();",
		"b.js": "x = b;",
	}
	var args []string
	for name, src := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		args = append(args, path)
	}

	out, _, err := runArgs(t, "", append([]string{"-w"}, args...)...)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("stdout = %q; want nothing", out)
	}
	for name := range files {
		got, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if strings.TrimSpace(string(got)) != want[name] {
			t.Errorf("%s = %q; want %q", name, got, want[name])
		}
	}
}

func TestFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	var args []string
	for i, src := range []string{"first();", "if (1) second();", "third();"} {
		path := filepath.Join(dir, string(rune('a'+i))+".js")
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		args = append(args, path)
	}
	out, _, err := runArgs(t, "", args...)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(strings.Fields(out), " "); got != "first(); second(); third();" {
		t.Errorf("stdout = %q", out)
	}
}

func TestOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.js")
	out := filepath.Join(dir, "out.js")
	if err := os.WriteFile(in, []byte("const a = 1; use(a);"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := runArgs(t, "", "-o", out, in); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(got)) != "use(1);" {
		t.Errorf("output = %q", got)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jsdce.json")
	if err := os.WriteFile(path, []byte(`{"maxIterations": 1, "stats": true}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", path}, strings.NewReader(`function a() {} function b() { a(); }`), &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(stdout.String()) != "function a() {}" {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "in 1 iterations") {
		t.Errorf("stderr = %q", stderr.String())
	}

	if err := os.WriteFile(path, []byte(`{"requires": ">= 99"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	err = run([]string{"-config", path}, strings.NewReader(""), &stdout, &stderr)
	if err == nil || !strings.Contains(err.Error(), "requires jsdce") {
		t.Errorf("run() with unmet requires = %v", err)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		errText string
	}{
		{"parse error", "if (", nil, "parse <stdin>"},
		{"output needs one file", "", []string{"-o", "x.js"}, "exactly one input"},
		{"write needs files", "", []string{"-w"}, "need input files"},
		{"output and write", "", []string{"-o", "x.js", "-w", "a.js"}, "mutually exclusive"},
		{"negative limit", "", []string{"-max-iter", "-1"}, "must not be negative"},
		{"missing file", "", []string{filepath.Join(t.TempDir(), "missing.js")}, "no such file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runArgs(t, tt.stdin, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("run() error = %v; want %q", err, tt.errText)
			}
		})
	}
}
