// Package testutil provides test helpers for newcrate tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of a file relative to dir.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(b)
}

// ManifestPackage decodes the [package] table of dir/Cargo.toml.
func ManifestPackage(t *testing.T, dir string) map[string]string {
	t.Helper()
	var m struct {
		Package map[string]string `toml:"package"`
	}
	if err := toml.Unmarshal([]byte(ReadFile(t, dir, "Cargo.toml")), &m); err != nil {
		t.Fatalf("failed to decode Cargo.toml in %s: %v", dir, err)
	}
	return m.Package
}

// Entries returns the names in dir, failing the test on error.
func Entries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
