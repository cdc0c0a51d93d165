package config

import (
	"fmt"

	"github.com/Roneo412/httpsync/internal/domain"
)

// Config represents the complete configuration for httpsync.
// CLI flags override anything loaded from a file.
type Config struct {
	// URL is the remote listing root
	URL string `mapstructure:"url"`

	// Path is the local mirror root
	Path string `mapstructure:"path"`

	// Loop is the polling interval in seconds; 0 runs a single pass
	Loop int `mapstructure:"loop"`

	// Ignore lists case-insensitive substrings to exclude
	Ignore []string `mapstructure:"ignore"`

	// Timeout is the per-request HTTP timeout in seconds; 0 disables it
	Timeout int `mapstructure:"timeout"`

	// Log configures logging
	Log LogConfig `mapstructure:"log"`
}

// LogConfig configures the logger
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`

	// File enables an additional rotating log file when non-empty
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// Validate checks if the configuration is consistent
func (c *Config) Validate() error {
	if c.Loop < 0 {
		return fmt.Errorf("%w: loop must not be negative", domain.ErrConfigInvalid)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", domain.ErrConfigInvalid)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", domain.ErrConfigInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", domain.ErrConfigInvalid, c.Log.Format)
	}
	return nil
}
