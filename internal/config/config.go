package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the project root and the tool's working directories.
type Paths struct {
	Root      string `toml:"root"`
	Registry  string `toml:"registry"`
	BackupDir string `toml:"backup_dir"`
	LogDir    string `toml:"log_dir"`
}

// Scan controls which documents are considered for organization.
type Scan struct {
	Paths      []string `toml:"paths"`
	SkipDirs   []string `toml:"skip_dirs"`
	Extensions []string `toml:"extensions"`
}

// Duplicates tunes the filename-similarity heuristic. The defaults mirror
// the accepted tradeoff of a loose first-pass check: length_slack bytes of
// length difference and an aligned-character ratio above match_ratio.
type Duplicates struct {
	Enabled     bool    `toml:"enabled"`
	LengthSlack int     `toml:"length_slack"`
	MatchRatio  float64 `toml:"match_ratio"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for docshelf.
type Config struct {
	Paths      Paths      `toml:"paths"`
	Scan       Scan       `toml:"scan"`
	Duplicates Duplicates `toml:"duplicates"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/docshelf/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded to absolute form.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	projectPath, err := filepath.Abs("docshelf.toml")
	if err != nil {
		return "", false, err
	}
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// Normalize expands the root, resolves the registry/backup/log paths against
// it, and fills defaulted scan settings. Exposed so tests can build configs
// without a file on disk.
func (c *Config) Normalize() error {
	var err error
	if strings.TrimSpace(c.Paths.Root) == "" {
		c.Paths.Root = "."
	}
	if c.Paths.Root, err = expandPath(c.Paths.Root); err != nil {
		return fmt.Errorf("paths.root: %w", err)
	}
	if strings.TrimSpace(c.Paths.Registry) == "" {
		c.Paths.Registry = defaultRegistryFile
	}
	c.Paths.Registry = c.resolveAgainstRoot(c.Paths.Registry)
	if strings.TrimSpace(c.Paths.BackupDir) == "" {
		c.Paths.BackupDir = defaultBackupDir
	}
	c.Paths.BackupDir = c.resolveAgainstRoot(c.Paths.BackupDir)
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		c.Paths.LogDir = c.resolveAgainstRoot(c.Paths.LogDir)
	}

	if len(c.Scan.Paths) == 0 {
		c.Scan.Paths = []string{"."}
	}
	for i, p := range c.Scan.Paths {
		c.Scan.Paths[i] = c.resolveAgainstRoot(p)
	}
	if len(c.Scan.Extensions) == 0 {
		c.Scan.Extensions = []string{defaultExtension}
	}
	for i, ext := range c.Scan.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Scan.Extensions[i] = ext
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

func (c *Config) resolveAgainstRoot(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == "." {
		return c.Paths.Root
	}
	if strings.HasPrefix(path, "~") {
		if expanded, err := expandPath(path); err == nil {
			return expanded
		}
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.Paths.Root, path)
}

// EnsureDirectories creates the directories a run writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.BackupDir}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		dirs = append(dirs, c.Paths.LogDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// LockPath returns the path of the run lock file guarding against concurrent
// organize runs over the same corpus.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.BackupDir, "docshelf.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
