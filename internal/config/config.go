package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.bug.st/libfetch"
)

// EnvPrefix is the prefix of the environment variables read by Load
const EnvPrefix = "LIBFETCH"

// Config represents the entire application configuration
type Config struct {
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FetchConfig contains the download settings. These are fixed and can't
// be changed from the environment.
type FetchConfig struct {
	Dir     string `mapstructure:"dir"`
	Timeout string `mapstructure:"timeout"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load builds the configuration from the built-in defaults, letting
// LIBFETCH_LOGGING_LEVEL and LIBFETCH_LOGGING_FORMAT override the logging
// settings.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("fetch.dir", libfetch.DefaultDir)
	v.SetDefault("fetch.timeout", libfetch.DefaultTimeout.String())
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")

	for key, env := range map[string]string{
		"logging.level":  EnvPrefix + "_LOGGING_LEVEL",
		"logging.format": EnvPrefix + "_LOGGING_FORMAT",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Fetch.Dir == "" {
		return fmt.Errorf("fetch.dir is required")
	}
	if d, err := time.ParseDuration(c.Fetch.Timeout); err != nil {
		return fmt.Errorf("invalid fetch.timeout: %w", err)
	} else if d < 0 {
		return fmt.Errorf("fetch.timeout must not be negative")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// Valid levels
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
		// Valid formats
	default:
		return fmt.Errorf("invalid logging.format: %s", c.Logging.Format)
	}

	return nil
}

// GetTimeout returns the request timeout as time.Duration
func (c *FetchConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return libfetch.DefaultTimeout
	}
	return d
}
