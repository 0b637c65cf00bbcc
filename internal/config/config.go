// Package config loads grepnav's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/grepnav/internal/logger"
)

// EditorConfig describes how files are opened at a line.
type EditorConfig struct {
	// Command is the executable to start (e.g. "code").
	Command string `yaml:"command"`

	// Args is the argument template. {file}, {line} and {workspace} are
	// substituted before the command starts.
	Args []string `yaml:"args"`
}

// Config represents grepnav configuration options.
type Config struct {
	// RipgrepPath is the ripgrep executable name or path.
	RipgrepPath string `yaml:"ripgrep_path"`

	// Extensions is the default comma separated extension filter.
	Extensions string `yaml:"extensions"`

	// CaseSensitive makes searches case sensitive by default.
	CaseSensitive bool `yaml:"case_sensitive"`

	// ExtraArgs is appended verbatim (whitespace split) to each search.
	ExtraArgs string `yaml:"extra_args"`

	// Editor configures the editor opener.
	Editor EditorConfig `yaml:"editor"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// LogFile receives log output. Empty means stderr for plain commands and
	// no logging for the interactive UI.
	LogFile string `yaml:"log_file"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		RipgrepPath:   "rg",
		Extensions:    "",
		CaseSensitive: false,
		ExtraArgs:     "",
		Editor: EditorConfig{
			Command: "code",
			Args:    []string{"{workspace}", "-g", "{file}:{line}"},
		},
		LogLevel: "info",
		LogFile:  "",
	}
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "grepnav", "config.yaml")
}

// LoadConfig loads configuration from path. A missing file (or an empty
// path) yields the defaults; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.RipgrepPath) == "" {
		return fmt.Errorf("ripgrep_path must not be empty")
	}

	if strings.TrimSpace(c.Editor.Command) == "" {
		return fmt.Errorf("editor.command must not be empty")
	}

	if c.LogLevel != "" && !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	return nil
}
