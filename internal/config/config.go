// Package config loads the jsdce configuration file.
//
// A configuration is looked up by walking from a directory towards the
// filesystem root and taking the first jsdce.json or .jsdcerc.json found.
// Every field is optional; unset fields keep the library defaults and
// command line flags take precedence over both.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	semver "github.com/Masterminds/semver/v3"

	"github.com/t14raptor/jsdce/transform/deadcode"
)

// FileNames are the names looked up in each directory, in order.
var FileNames = []string{"jsdce.json", ".jsdcerc.json"}

// ErrNotFound is returned by Find when no directory holds a config file.
var ErrNotFound = errors.New("config: no config file found")

// Config mirrors the config file.
type Config struct {
	// Path is the file the config was loaded from, empty for defaults.
	Path string `json:"-"`

	// Requires is a semantic version constraint on the tool, e.g. ">= 1.2".
	Requires      *string `json:"requires,omitempty"`
	MaxIterations *int    `json:"maxIterations,omitempty"`
	Stats         *bool   `json:"stats,omitempty"`
	Verbose       *bool   `json:"verbose,omitempty"`
}

// Find returns the path of the nearest config file at or above dir.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	c := &Config{}
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Path = path

	if c.MaxIterations != nil && *c.MaxIterations < 0 {
		return nil, fmt.Errorf("%s: maxIterations must not be negative", path)
	}
	if c.Requires != nil {
		if _, err := semver.NewConstraint(*c.Requires); err != nil {
			return nil, fmt.Errorf("%s: requires: %w", path, err)
		}
	}
	return c, nil
}

// Discover loads the nearest config file at or above dir. Without one it
// returns an empty config.
func Discover(dir string) (*Config, error) {
	path, err := Find(dir)
	if errors.Is(err, ErrNotFound) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Check verifies that version satisfies the requires constraint.
func (c *Config) Check(version string) error {
	if c.Requires == nil {
		return nil
	}
	con, err := semver.NewConstraint(*c.Requires)
	if err != nil {
		return err
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid tool version %q: %w", version, err)
	}
	if !con.Check(v) {
		return fmt.Errorf("%s requires jsdce %s, running %s", c.Path, con, v)
	}
	return nil
}

// ToOptions applies the fields set in c on top of base.
func (c *Config) ToOptions(base deadcode.Options) deadcode.Options {
	if c.MaxIterations != nil {
		base.MaxIterations = *c.MaxIterations
	}
	return base
}
