// Package config loads presentation settings from the environment.
// The estimate's business constants are fixed and never read from here.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Prefix is prepended to every environment variable name
const Prefix = "ESTIMATOR"

// Output formats
const (
	FormatPlain = "plain"
	FormatTable = "table"
)

// Config holds output and logging settings
type Config struct {
	Format   string `envconfig:"FORMAT" default:"plain"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	NoColor  bool   `envconfig:"NO_COLOR" default:"false"`
}

// Load reads ESTIMATOR_* variables and validates the result
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown formats and log levels
func (c *Config) Validate() error {
	switch c.Format {
	case FormatPlain, FormatTable:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, FormatPlain, FormatTable)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// Level returns the parsed log level; call Validate first
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}
