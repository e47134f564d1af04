package main

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"docshelf/internal/config"
	"docshelf/internal/logging"
	"docshelf/internal/registry"
	"docshelf/internal/services/classifier"
)

type commandContext struct {
	configFlag  *string
	personaFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	stackOnce  sync.Once
	registry   *registry.Registry
	classifier classifier.Classifier
	logger     *slog.Logger
	stackErr   error
}

func newCommandContext(configFlag, personaFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		personaFlag: personaFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureStack loads the registry, builds the classifier, and opens the
// logger. The three share a lifetime and fail together.
func (c *commandContext) ensureStack() (*registry.Registry, classifier.Classifier, *slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	c.stackOnce.Do(func() {
		reg, err := registry.Load(cfg.Paths.Registry)
		if err != nil {
			c.stackErr = err
			return
		}
		cls, err := classifier.New(reg, cfg.Paths.Root)
		if err != nil {
			c.stackErr = err
			return
		}
		outputs := []string{"stderr"}
		if strings.TrimSpace(cfg.Paths.LogDir) != "" {
			outputs = append(outputs, filepath.Join(cfg.Paths.LogDir, "docshelf.log"))
		}
		logger, err := logging.New(logging.Options{
			Level:       cfg.Logging.Level,
			Format:      cfg.Logging.Format,
			OutputPaths: outputs,
		})
		if err != nil {
			c.stackErr = err
			return
		}
		c.registry = reg
		c.classifier = cls
		c.logger = logger
	})
	return c.registry, c.classifier, c.logger, c.stackErr
}

func (c *commandContext) persona() string {
	if c.personaFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.personaFlag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
