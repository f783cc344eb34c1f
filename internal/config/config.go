// Package config handles loading and saving tidyfiles configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/tidyfiles/internal/analyzer"
	"github.com/fenilsonani/tidyfiles/internal/category"
	"github.com/fenilsonani/tidyfiles/internal/location"
	"github.com/fenilsonani/tidyfiles/pkg/utils"
)

// Config is the application configuration.
type Config struct {
	Display    DisplayConfig       `yaml:"display"`
	LargeFiles LargeFilesConfig    `yaml:"large_files"`
	Locations  map[string]string   `yaml:"locations,omitempty"`
	Extensions map[string][]string `yaml:"extensions,omitempty"`
}

// DisplayConfig caps how many items reports list.
type DisplayConfig struct {
	DuplicateGroups  int `yaml:"duplicate_groups"`
	GroupMembers     int `yaml:"group_members"`
	LargeFiles       int `yaml:"large_files"`
	TopCategories    int `yaml:"top_categories"`
	TopExtensions    int `yaml:"top_extensions"`
	PreviewPerBucket int `yaml:"preview_per_bucket"`
}

// LargeFilesConfig tunes the large-file search.
type LargeFilesConfig struct {
	MinSize string `yaml:"min_size"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	limits := analyzer.DefaultLimits()
	return &Config{
		Display: DisplayConfig{
			DuplicateGroups:  limits.DuplicateGroups,
			GroupMembers:     limits.GroupMembers,
			LargeFiles:       limits.LargeFiles,
			TopCategories:    5,
			TopExtensions:    5,
			PreviewPerBucket: 5,
		},
		LargeFiles: LargeFilesConfig{MinSize: "100MB"},
	}
}

// LoadConfig reads configuration from path. A missing file yields the
// defaults without error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes the configuration to path, creating parent
// directories as needed.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// GetConfigPath returns the default config file location.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home dir: %w", err)
	}
	return filepath.Join(home, ".config", "tidyfiles", "config.yaml"), nil
}

// EnsureConfigExists writes the default config to the standard location
// if no file is there yet, and returns that location.
func EnsureConfigExists() (string, error) {
	path, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := SaveConfig(DefaultConfig(), path); err != nil {
		return "", err
	}
	return path, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	for name, v := range map[string]int{
		"display.duplicate_groups":   c.Display.DuplicateGroups,
		"display.group_members":      c.Display.GroupMembers,
		"display.large_files":        c.Display.LargeFiles,
		"display.top_categories":     c.Display.TopCategories,
		"display.top_extensions":     c.Display.TopExtensions,
		"display.preview_per_bucket": c.Display.PreviewPerBucket,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}

	if _, err := utils.ParseSize(c.LargeFiles.MinSize); err != nil {
		return fmt.Errorf("large_files.min_size: %w", err)
	}

	for cat, exts := range c.Extensions {
		if !category.Valid(cat) {
			return fmt.Errorf("extensions: unknown category %q", cat)
		}
		for _, ext := range exts {
			if !strings.HasPrefix(ext, ".") {
				return fmt.Errorf("extensions.%s: %q must start with a dot", cat, ext)
			}
		}
	}

	return nil
}

// MinLargeFileSize returns the configured large-file threshold in bytes.
func (c *Config) MinLargeFileSize() (int64, error) {
	return utils.ParseSize(c.LargeFiles.MinSize)
}

// Limits builds analyzer caps from the display settings.
func (c *Config) Limits() analyzer.Limits {
	return analyzer.Limits{
		DuplicateGroups: c.Display.DuplicateGroups,
		GroupMembers:    c.Display.GroupMembers,
		LargeFiles:      c.Display.LargeFiles,
	}
}

// Table builds the category table, with configured extensions layered
// on top of the built-ins.
func (c *Config) Table() *category.Table {
	if len(c.Extensions) == 0 {
		return category.NewTable()
	}
	extras := map[category.Category][]string{}
	for cat, exts := range c.Extensions {
		extras[category.Category(cat)] = exts
	}
	return category.NewTableWithExtras(extras)
}

// Resolver builds the location resolver, with configured overrides
// applied over the standard home folders.
func (c *Config) Resolver() (*location.Resolver, error) {
	r, err := location.NewResolver()
	if err != nil {
		return nil, err
	}
	for name, dir := range c.Locations {
		r.Override(name, dir)
	}
	return r, nil
}
