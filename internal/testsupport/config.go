package testsupport

import (
	"testing"

	"docshelf/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a normalized config rooted at a unique temp directory.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.Root = t.TempDir()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("normalize test config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate test config: %v", err)
	}
	return &cfg
}

// WithScanPaths overrides the scan paths (relative to the test root).
func WithScanPaths(paths ...string) ConfigOption {
	return func(c *config.Config) {
		c.Scan.Paths = paths
	}
}

// WithDuplicates overrides the duplicate-detection tuning.
func WithDuplicates(slack int, ratio float64) ConfigOption {
	return func(c *config.Config) {
		c.Duplicates.LengthSlack = slack
		c.Duplicates.MatchRatio = ratio
	}
}
