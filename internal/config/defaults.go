package config

const (
	defaultRegistryFile = "document-registry.json"
	defaultBackupDir    = ".docshelf/backups"
	defaultExtension    = ".md"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"

	defaultDuplicateLengthSlack = 2
	defaultDuplicateMatchRatio  = 0.7
)

var defaultSkipDirs = []string{".git", "node_modules", ".docshelf"}

// Default returns a Config populated with repository defaults. Paths are left
// unexpanded; Normalize resolves them.
func Default() Config {
	return Config{
		Paths: Paths{
			Root:      ".",
			Registry:  defaultRegistryFile,
			BackupDir: defaultBackupDir,
		},
		Scan: Scan{
			Paths:      []string{"."},
			SkipDirs:   append([]string(nil), defaultSkipDirs...),
			Extensions: []string{defaultExtension},
		},
		Duplicates: Duplicates{
			Enabled:     true,
			LengthSlack: defaultDuplicateLengthSlack,
			MatchRatio:  defaultDuplicateMatchRatio,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
