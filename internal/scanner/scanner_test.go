package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanFiltersAndSorts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "zeta.md"))
	writeFile(t, filepath.Join(root, "alpha.md"))
	writeFile(t, filepath.Join(root, "script.sh"))
	writeFile(t, filepath.Join(root, "docs", "plan.md"))
	writeFile(t, filepath.Join(root, ".git", "config.md"))
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "readme.md"))

	docs, err := Scan(Options{
		Paths:      []string{root},
		SkipDirs:   []string{".git", "node_modules"},
		Extensions: []string{".md"},
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []string{
		filepath.Join(root, "alpha.md"),
		filepath.Join(root, "docs", "plan.md"),
		filepath.Join(root, "zeta.md"),
	}
	if len(docs) != len(want) {
		t.Fatalf("got %v, want %v", docs, want)
	}
	for i := range want {
		if docs[i] != want[i] {
			t.Errorf("docs[%d] = %q, want %q", i, docs[i], want[i])
		}
	}
}

func TestScanDeduplicatesOverlappingPaths(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "plan.md"))

	docs, err := Scan(Options{
		Paths:      []string{root, filepath.Join(root, "docs")},
		Extensions: []string{".md"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %v", docs)
	}
}

func TestScanRestrict(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "plan.md"))
	writeFile(t, filepath.Join(root, "notes", "note.md"))

	docs, err := Scan(Options{
		Paths:      []string{root},
		Extensions: []string{".md"},
		Restrict:   filepath.Join(root, "docs"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || filepath.Base(docs[0]) != "plan.md" {
		t.Fatalf("restrict failed: %v", docs)
	}
}

func TestScanMissingPathSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"))

	docs, err := Scan(Options{
		Paths:      []string{filepath.Join(root, "absent"), root},
		Extensions: []string{".md"},
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %v", docs)
	}
}
