// Package testsupport provides shared fixtures for docshelf tests: corpus
// writers, test configs, a canned registry, and a scripted classifier stub.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDoc writes a document with the given content, creating parent
// directories as needed.
func WriteDoc(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadDoc reads a document, failing the test on error.
func ReadDoc(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
