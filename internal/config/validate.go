package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateDuplicates(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.Root) == "" {
		return errors.New("paths.root must be set")
	}
	if strings.TrimSpace(c.Paths.Registry) == "" {
		return errors.New("paths.registry must be set")
	}
	if strings.TrimSpace(c.Paths.BackupDir) == "" {
		return errors.New("paths.backup_dir must be set")
	}
	return nil
}

func (c *Config) validateScan() error {
	if len(c.Scan.Paths) == 0 {
		return errors.New("scan.paths must list at least one directory")
	}
	for _, ext := range c.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("scan.extensions entry %q must start with a dot", ext)
		}
	}
	return nil
}

func (c *Config) validateDuplicates() error {
	if c.Duplicates.LengthSlack < 0 {
		return errors.New("duplicates.length_slack must not be negative")
	}
	if c.Duplicates.MatchRatio <= 0 || c.Duplicates.MatchRatio >= 1 {
		return errors.New("duplicates.match_ratio must be between 0 and 1 exclusive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
