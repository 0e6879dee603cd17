package config

import (
	"os"
	"strconv"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configFile string
}

// NewLoader creates a new configuration loader.
// The config file path defaults to TASKS_CONFIG.
func NewLoader() *Loader {
	return &Loader{
		config:     NewConfig(),
		configFile: os.Getenv("TASKS_CONFIG"),
	}
}

// WithConfigFile sets the TOML file read before the environment
func (l *Loader) WithConfigFile(path string) *Loader {
	if path != "" {
		l.configFile = path
	}
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, when one is set
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if l.configFile != "" {
		if err := LoadFile(l.config, l.configFile); err != nil {
			return nil, err
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides; nil fields are not set
type ConfigOverrides struct {
	Host       *string
	Port       *int
	Backend    *string
	IDStrategy *string
	Seed       *bool
	Debug      *bool
	LogFormat  *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Host != nil {
		config.Server.Host = *overrides.Host
	}
	if overrides.Port != nil {
		config.Server.Port = *overrides.Port
	}
	if overrides.Backend != nil {
		config.Store.Backend = *overrides.Backend
	}
	if overrides.IDStrategy != nil {
		config.Store.IDStrategy = *overrides.IDStrategy
	}
	if overrides.Seed != nil {
		config.Store.Seed = *overrides.Seed
	}
	if overrides.Debug != nil {
		config.Application.Debug = *overrides.Debug
	}
	if overrides.LogFormat != nil {
		config.Application.LogFormat = *overrides.LogFormat
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
