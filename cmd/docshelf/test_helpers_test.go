package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	root       string
	configPath string
}

// setupCLITestEnv points HOME at a temp directory, writes a config there,
// and seeds a project root with a registry. Config discovery then finds the
// test config instead of the developer's.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	root := filepath.Join(base, "project")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir root: %v", err)
	}

	configPath := filepath.Join(homeDir, ".config", "docshelf", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	configBody := "[paths]\nroot = \"" + root + "\"\n"
	if err := os.WriteFile(configPath, []byte(configBody), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	writeTestRegistry(t, filepath.Join(root, "document-registry.json"))

	return &cliTestEnv{root: root, configPath: configPath}
}

func writeTestRegistry(t *testing.T, path string) {
	t.Helper()
	registryBody := `{
  "version": "1.0",
  "document_types": {
    "test_plan": {
      "location": "docs/qa/test-plans",
      "naming_pattern": "TEST-PLAN.md",
      "detection": {
        "filename_patterns": ["*test*plan*"],
        "content_markers": ["# Test Plan", "test cases"],
        "agent_hints": ["qa"]
      }
    },
    "session_note": {
      "location": "docs/session-notes",
      "detection": {
        "filename_patterns": ["*session*"],
        "content_markers": ["## Session"]
      }
    }
  },
  "enforcement": {"level": "strict", "allow_override": true, "override_flag": "--force"},
  "uncertain_handling": {"default_location": "docs/unsorted"}
}`
	if err := os.WriteFile(path, []byte(registryBody), 0o644); err != nil {
		t.Fatalf("write registry: %v", err)
	}
}

func runCLI(t *testing.T, args []string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
