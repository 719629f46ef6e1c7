// Package config manages application configuration.
package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Environment variables that override the configuration file.
const (
	EnvLogLevel  = "DOCXSEQ_LOG_LEVEL"
	EnvLogFormat = "DOCXSEQ_LOG_FORMAT"
	EnvVerbose   = "DOCXSEQ_VERBOSE"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config represents the application configuration.
type Config struct {
	Log LogConfig `yaml:"log"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `yaml:"level"`  // zerolog level name
	Format string `yaml:"format"` // console or json
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  zerolog.WarnLevel.String(),
			Format: LogFormatConsole,
		},
	}
}

// ApplyEnv overrides configuration values from the environment.
func (c *Config) ApplyEnv() {
	c.Log.Level = GetEnvOrDefault(EnvLogLevel, c.Log.Level)
	c.Log.Format = GetEnvOrDefault(EnvLogFormat, c.Log.Format)
	if GetEnvBool(EnvVerbose) {
		c.Log.Level = zerolog.DebugLevel.String()
	}
}

// Set assigns a single key in dotted form, e.g. "log.level".
func (c *Config) Set(key, value string) error {
	switch key {
	case "log.level":
		if _, err := zerolog.ParseLevel(value); err != nil {
			return fmt.Errorf("invalid log level %q: %w", value, err)
		}
		c.Log.Level = value
	case "log.format":
		if err := validateFormat(value); err != nil {
			return err
		}
		c.Log.Format = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return validateFormat(c.Log.Format)
}

func validateFormat(format string) error {
	switch format {
	case LogFormatConsole, LogFormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid log format %q (expected %s or %s)", format, LogFormatConsole, LogFormatJSON)
	}
}
