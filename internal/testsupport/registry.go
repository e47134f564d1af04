package testsupport

import (
	"path/filepath"
	"testing"

	"docshelf/internal/registry"
)

// NewRegistry returns an in-memory registry with a test_plan and a
// session_note type, matching the shapes used across the stage tests.
func NewRegistry(t testing.TB) *registry.Registry {
	t.Helper()
	return &registry.Registry{
		Version: "test",
		DocumentTypes: map[string]registry.DocType{
			"test_plan": {
				Location:      filepath.Join("project_docs", "qa", "test-plans"),
				NamingPattern: "TEST-PLAN.md",
				Detection: registry.Detection{
					FilenamePatterns: []string{"*test*plan*"},
					ContentMarkers:   []string{"# Test Plan", "test cases"},
					AgentHints:       []string{"qa"},
				},
			},
			"session_note": {
				Location: filepath.Join("project_docs", "session-notes"),
				Detection: registry.Detection{
					FilenamePatterns: []string{"*session*"},
					ContentMarkers:   []string{"## Session"},
				},
			},
		},
		Enforcement: registry.Enforcement{Level: "strict"},
		UncertainHandling: registry.UncertainHandling{
			DefaultLocation: filepath.Join("project_docs", "unsorted"),
		},
	}
}
