package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Roneo412/httpsync/internal/domain"
	"github.com/Roneo412/httpsync/internal/ignore"
)

// DefaultConfigPaths returns the default paths to search for config files
func DefaultConfigPaths() []string {
	paths := []string{"."}

	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "httpsync"))
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".httpsync"))
	}

	return paths
}

// setDefaults registers defaults shared by every loader
func setDefaults(v *viper.Viper) {
	v.SetDefault("path", ".")
	v.SetDefault("loop", 0)
	v.SetDefault("timeout", 0)
	v.SetDefault("ignore", ignore.DefaultPatterns)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_age_days", 7)
	v.SetDefault("log.max_backups", 3)
}

// Load reads and parses a configuration file.
// If path is empty, default locations are searched and a missing file
// yields domain.ErrConfigNotFound.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, p := range DefaultConfigPaths() {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, domain.ErrConfigNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromString parses configuration from a YAML string
func LoadFromString(yamlContent string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	if err := v.ReadConfig(strings.NewReader(yamlContent)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a Config holding only the built-in defaults
func Default() *Config {
	return &Config{
		Path:   ".",
		Ignore: append([]string(nil), ignore.DefaultPatterns...),
		Log:    LogConfig{Level: "info", Format: "text", MaxSizeMB: 10, MaxAgeDays: 7, MaxBackups: 3},
	}
}
