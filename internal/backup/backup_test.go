package backup_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"docshelf/internal/backup"
	"docshelf/internal/document"
	"docshelf/internal/logging"
	"docshelf/internal/services"
	"docshelf/internal/testsupport"
)

func TestSnapshotPreservesRelativeLayout(t *testing.T) {
	root := t.TempDir()
	docA := filepath.Join(root, "plan.md")
	docB := filepath.Join(root, "notes", "session.md")
	testsupport.WriteDoc(t, docA, "# Plan body")
	testsupport.WriteDoc(t, docB, "## Session body")

	mgr := backup.NewManager(root, filepath.Join(root, ".docshelf", "backups"), logging.NewNop())
	result, err := mgr.Snapshot("0123456789abcdef", []document.Analysis{
		{Path: docA, Size: 11},
		{Path: docB, Size: 15},
	})
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if result.Copied != 2 {
		t.Fatalf("copied = %d, want 2", result.Copied)
	}

	// Byte-identical copies at the pre-move relative paths.
	if got := testsupport.ReadDoc(t, filepath.Join(result.Dir, "plan.md")); got != "# Plan body" {
		t.Fatalf("plan copy = %q", got)
	}
	if got := testsupport.ReadDoc(t, filepath.Join(result.Dir, "notes", "session.md")); got != "## Session body" {
		t.Fatalf("session copy = %q", got)
	}
}

func TestSnapshotNameCarriesRunID(t *testing.T) {
	root := t.TempDir()
	doc := filepath.Join(root, "a.md")
	testsupport.WriteDoc(t, doc, "x")

	mgr := backup.NewManager(root, filepath.Join(root, "backups"), logging.NewNop())
	result, err := mgr.Snapshot("feedc0de1234", []document.Analysis{{Path: doc, Size: 1}})
	if err != nil {
		t.Fatal(err)
	}
	base := filepath.Base(result.Dir)
	if want := "feedc0de"; !hasSuffix(base, want) {
		t.Fatalf("snapshot dir %q missing run id suffix %q", base, want)
	}
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

func TestSnapshotFailureIsFatal(t *testing.T) {
	root := t.TempDir()
	present := filepath.Join(root, "present.md")
	testsupport.WriteDoc(t, present, "x")
	missing := filepath.Join(root, "missing.md")

	mgr := backup.NewManager(root, filepath.Join(root, "backups"), logging.NewNop())
	_, err := mgr.Snapshot("run", []document.Analysis{
		{Path: present, Size: 1},
		{Path: missing, Size: 1},
	})
	if err == nil {
		t.Fatal("expected error for unreadable document")
	}
	if !errors.Is(err, services.ErrBackup) {
		t.Fatalf("expected ErrBackup, got %v", err)
	}
	if !services.IsFatal(err) {
		t.Fatal("backup failure must halt the run")
	}
}

func TestSnapshotEmptyMoveSet(t *testing.T) {
	root := t.TempDir()
	mgr := backup.NewManager(root, filepath.Join(root, "backups"), logging.NewNop())
	result, err := mgr.Snapshot("run", nil)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if result.Copied != 0 {
		t.Fatalf("copied = %d", result.Copied)
	}
	if _, statErr := os.Stat(result.Dir); statErr != nil {
		t.Fatalf("snapshot dir missing: %v", statErr)
	}
}
