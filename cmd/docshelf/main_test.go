package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProjectDoc(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestOrganizeDryRunShowsPlan(t *testing.T) {
	env := setupCLITestEnv(t)
	writeProjectDoc(t, env.root, "project-test-plan.md", "# Test Plan\n\ntest cases\n")

	out, err := runCLI(t, []string{"organize", "--dry-run", "--persona", "qa"})
	if err != nil {
		t.Fatalf("organize --dry-run: %v\n%s", err, out)
	}

	requireContains(t, out, "Dry run; no documents were moved.")
	requireContains(t, out, "Automatic moves")
	requireContains(t, out, "TEST-PLAN.md")
	requireContains(t, out, "test_plan")

	if _, err := os.Stat(filepath.Join(env.root, "project-test-plan.md")); err != nil {
		t.Fatalf("dry run moved the document: %v", err)
	}
}

func TestOrganizeAppliesAutoMoves(t *testing.T) {
	env := setupCLITestEnv(t)
	writeProjectDoc(t, env.root, "project-test-plan.md", "# Test Plan\n\ntest cases\n")

	out, err := runCLI(t, []string{"organize", "--persona", "qa"})
	if err != nil {
		t.Fatalf("organize: %v\n%s", err, out)
	}

	moved := filepath.Join(env.root, "docs", "qa", "test-plans", "TEST-PLAN.md")
	if _, err := os.Stat(moved); err != nil {
		t.Fatalf("expected document at canonical path: %v", err)
	}
	requireContains(t, out, "Backup: ")
}

func TestDetectClassifiesWithoutMoving(t *testing.T) {
	env := setupCLITestEnv(t)
	doc := writeProjectDoc(t, env.root, "weekly-session.md", "## Session\n\nnotes\n")

	out, err := runCLI(t, []string{"detect", doc})
	if err != nil {
		t.Fatalf("detect: %v\n%s", err, out)
	}

	requireContains(t, out, "session_note")
	if _, err := os.Stat(doc); err != nil {
		t.Fatalf("detect moved the document: %v", err)
	}
}

func TestReportSummarizesCorpus(t *testing.T) {
	env := setupCLITestEnv(t)
	writeProjectDoc(t, env.root, "project-test-plan.md", "# Test Plan\n\ntest cases\n")
	writeProjectDoc(t, env.root, "random.md", "nothing recognizable\n")

	out, err := runCLI(t, []string{"report"})
	if err != nil {
		t.Fatalf("report: %v\n%s", err, out)
	}

	requireContains(t, out, "Scanned")
	requireContains(t, out, "Detection accuracy")
	requireContains(t, out, "Suggested moves")
}

func TestDetectNoArgsScansConfiguredCorpus(t *testing.T) {
	env := setupCLITestEnv(t)
	writeProjectDoc(t, env.root, "weekly-session.md", "## Session\n\nnotes\n")
	writeProjectDoc(t, env.root, "project-test-plan.md", "# Test Plan\n\ntest cases\n")

	out, err := runCLI(t, []string{"detect"})
	if err != nil {
		t.Fatalf("detect: %v\n%s", err, out)
	}

	requireContains(t, out, "session_note")
	requireContains(t, out, "test_plan")
}

func TestDetectRestrictedToPath(t *testing.T) {
	env := setupCLITestEnv(t)
	writeProjectDoc(t, env.root, "notes/weekly-session.md", "## Session\n\nnotes\n")
	writeProjectDoc(t, env.root, "project-test-plan.md", "# Test Plan\n\ntest cases\n")

	out, err := runCLI(t, []string{"detect", "--path", filepath.Join(env.root, "notes")})
	if err != nil {
		t.Fatalf("detect --path: %v\n%s", err, out)
	}

	requireContains(t, out, "session_note")
	if strings.Contains(out, "test_plan") {
		t.Fatalf("expected only documents under notes/, got:\n%s", out)
	}
}

func TestRegistryBareCommandPrintsSummary(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, []string{"registry"})
	if err != nil {
		t.Fatalf("registry: %v\n%s", err, out)
	}

	requireContains(t, out, "test_plan")
	requireContains(t, out, "strict")
}

func TestRegistryShowListsTypes(t *testing.T) {
	env := setupCLITestEnv(t)
	_ = env

	out, err := runCLI(t, []string{"registry", "show"})
	if err != nil {
		t.Fatalf("registry show: %v\n%s", err, out)
	}

	requireContains(t, out, "test_plan")
	requireContains(t, out, "session_note")
	requireContains(t, out, "strict")
}

func TestConfigInitAndValidate(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, []string{"config", "validate"})
	if err != nil {
		t.Fatalf("config validate: %v\n%s", err, out)
	}
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, err = runCLI(t, []string{"config", "init", "--path", target})
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, err := runCLI(t, []string{"config", "init", "--path", target}); err == nil {
		t.Fatal("expected error when config already exists")
	}
}
