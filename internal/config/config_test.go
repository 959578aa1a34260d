package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/t14raptor/jsdce/internal/config"
	"github.com/t14raptor/jsdce/transform/deadcode"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "jsdce.json")
	write(t, want, `{}`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := config.Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Find() = %s; want %s", got, want)
	}
}

func TestFindPrefersNearest(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "jsdce.json"), `{}`)
	want := filepath.Join(root, "sub", ".jsdcerc.json")
	write(t, want, `{}`)

	got, err := config.Find(filepath.Join(root, "sub"))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Find() = %s; want %s", got, want)
	}
}

func TestDiscoverWithoutFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := config.Find(dir); err != nil && !errors.Is(err, config.ErrNotFound) {
		t.Skipf("a config file above %s interferes: %v", dir, err)
	}
	c, err := config.Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.Path != "" || c.MaxIterations != nil {
		t.Errorf("Discover() = %+v; want empty config", c)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"valid", `{"maxIterations": 4, "stats": true, "requires": ">= 0.1"}`, ""},
		{"unknown field", `{"maxIter": 4}`, "unknown field"},
		{"negative limit", `{"maxIterations": -1}`, "must not be negative"},
		{"bad constraint", `{"requires": "not a version"}`, "requires"},
		{"malformed", `{`, "unexpected EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "jsdce.json")
			write(t, path, tt.content)
			c, err := config.Load(path)
			if tt.errText == "" {
				if err != nil {
					t.Fatalf("Load() failed: %v", err)
				}
				if c.Path != path || *c.MaxIterations != 4 || !*c.Stats {
					t.Errorf("Load() = %+v", c)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("Load() error = %v; want %q", err, tt.errText)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	constraint := func(s string) *config.Config {
		return &config.Config{Path: "jsdce.json", Requires: &s}
	}
	tests := []struct {
		config  *config.Config
		version string
		ok      bool
	}{
		{&config.Config{}, "0.1.0", true},
		{constraint(">= 0.1"), "0.1.0", true},
		{constraint("^1.2"), "1.4.0", true},
		{constraint("^1.2"), "2.0.0", false},
		{constraint(">= 0.1"), "dev", false},
	}
	for _, tt := range tests {
		if err := tt.config.Check(tt.version); (err == nil) != tt.ok {
			t.Errorf("Check(%s) with %+v = %v", tt.version, tt.config.Requires, err)
		}
	}
}

func TestToOptions(t *testing.T) {
	base := deadcode.DefaultOptions()
	if got := (&config.Config{}).ToOptions(base); got.MaxIterations != base.MaxIterations {
		t.Errorf("empty config changed options: %+v", got)
	}
	n := 3
	if got := (&config.Config{MaxIterations: &n}).ToOptions(base); got.MaxIterations != 3 {
		t.Errorf("MaxIterations = %d; want 3", got.MaxIterations)
	}
}
