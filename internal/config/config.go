// Package config loads the YAML settings shared by the binaries in
// this repo and watches them for live reloads.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/adapters/stdio"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kiterrs"
)

// Config holds the tool settings. Keys are kebab-case in the file.
type Config struct {
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log-level"`
	// LoggingToFile redirects logs to a rotating file under LogDir.
	LoggingToFile bool `yaml:"logging-to-file"`
	// LogDir is the directory for rotated log files.
	LogDir string `yaml:"log-dir"`
	// LogsMaxSizeMB is the rotate threshold per log file.
	LogsMaxSizeMB int `yaml:"logs-max-size-mb"`
	// MaxLineSize bounds a single protocol record in bytes.
	MaxLineSize int `yaml:"max-line-size"`
	// Strict makes decode tools fail on the first undecodable record
	// instead of skipping it.
	Strict bool `yaml:"strict"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		LogDir:        "logs",
		LogsMaxSizeMB: 10,
		MaxLineSize:   stdio.DefaultMaxLineSize,
	}
}

// Load reads and validates the config file at path. Fields absent from
// the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kiterrs.NewConfigError(
			kiterrs.ErrCodeConfigRead,
			"reading config file",
			err,
		).WithPath(path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, kiterrs.NewConfigError(
			kiterrs.ErrCodeConfigInvalid,
			"parsing config file",
			err,
		).WithPath(path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOptional behaves like Load, except a missing file yields the
// defaults when optional is true.
func LoadOptional(path string, optional bool) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && optional && errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Validate checks field bounds.
func (c *Config) Validate() error {
	if c.MaxLineSize <= 0 {
		return kiterrs.NewConfigError(
			kiterrs.ErrCodeConfigInvalid,
			fmt.Sprintf("max-line-size must be positive, got %d", c.MaxLineSize),
			nil,
		)
	}
	if c.LogsMaxSizeMB < 0 {
		return kiterrs.NewConfigError(
			kiterrs.ErrCodeConfigInvalid,
			fmt.Sprintf("logs-max-size-mb must not be negative, got %d", c.LogsMaxSizeMB),
			nil,
		)
	}

	return nil
}
