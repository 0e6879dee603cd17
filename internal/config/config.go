package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// Store backends
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Id strategies
const (
	// IDStrategyLength assigns the current store size plus one
	IDStrategyLength = "length"
	// IDStrategySequence assigns the highest id ever seen plus one
	IDStrategySequence = "sequence"
)

// Log formats
const (
	LogFormatText   = "text"
	LogFormatJSON   = "json"
	LogFormatLogfmt = "logfmt"
)

// Config holds all configuration options for the tasks service
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Store       StoreConfig       `toml:"store"`
	Validation  ValidationConfig  `toml:"validation"`
	Application ApplicationConfig `toml:"application"`
}

// ServerConfig holds HTTP listener configuration
type ServerConfig struct {
	Host            string        `toml:"host" env:"TASKS_HOST"`
	Port            int           `toml:"port" env:"PORT,TASKS_PORT"`
	ReadTimeout     time.Duration `toml:"read_timeout" env:"TASKS_READ_TIMEOUT"`
	WriteTimeout    time.Duration `toml:"write_timeout" env:"TASKS_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" env:"TASKS_SHUTDOWN_TIMEOUT"`
}

// StoreConfig holds task store configuration
type StoreConfig struct {
	Backend    string `toml:"backend" env:"TASKS_STORE"`
	IDStrategy string `toml:"id_strategy" env:"TASKS_ID_STRATEGY"`
	Seed       bool   `toml:"seed" env:"TASKS_SEED"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	NameMinLength int `toml:"name_min_length" env:"TASKS_NAME_MIN_LENGTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Debug     bool   `toml:"debug" env:"TASKS_DEBUG"`
	LogFormat string `toml:"log_format" env:"TASKS_LOG_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3000,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Store: StoreConfig{
			Backend:    BackendMemory,
			IDStrategy: IDStrategyLength,
			Seed:       true,
		},
		Validation: ValidationConfig{
			NameMinLength: 3,
		},
		Application: ApplicationConfig{
			LogFormat: LogFormatText,
		},
	}
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and the previous value is kept.
func (c *Config) LoadFromEnvironment() error {
	// Server configuration; TASKS_PORT wins over the conventional PORT
	for _, key := range []string{"PORT", "TASKS_PORT"} {
		if port := os.Getenv(key); port != "" {
			c.Server.Port = ParseIntWithFallback(port, c.Server.Port)
		}
	}
	if host := os.Getenv("TASKS_HOST"); host != "" {
		c.Server.Host = host
	}
	if timeout := os.Getenv("TASKS_READ_TIMEOUT"); timeout != "" {
		c.Server.ReadTimeout = ParseDurationWithFallback(timeout, c.Server.ReadTimeout)
	}
	if timeout := os.Getenv("TASKS_WRITE_TIMEOUT"); timeout != "" {
		c.Server.WriteTimeout = ParseDurationWithFallback(timeout, c.Server.WriteTimeout)
	}
	if timeout := os.Getenv("TASKS_SHUTDOWN_TIMEOUT"); timeout != "" {
		c.Server.ShutdownTimeout = ParseDurationWithFallback(timeout, c.Server.ShutdownTimeout)
	}

	// Store configuration
	if backend := os.Getenv("TASKS_STORE"); backend != "" {
		c.Store.Backend = backend
	}
	if strategy := os.Getenv("TASKS_ID_STRATEGY"); strategy != "" {
		c.Store.IDStrategy = strategy
	}
	if seed := os.Getenv("TASKS_SEED"); seed != "" {
		c.Store.Seed = ParseBoolWithFallback(seed, c.Store.Seed)
	}

	// Validation configuration
	if minLen := os.Getenv("TASKS_NAME_MIN_LENGTH"); minLen != "" {
		c.Validation.NameMinLength = ParseIntWithFallback(minLen, c.Validation.NameMinLength)
	}

	// Application configuration
	if debug := os.Getenv("TASKS_DEBUG"); debug != "" {
		c.Application.Debug = ParseBoolWithFallback(debug, true)
	}
	if format := os.Getenv("TASKS_LOG_FORMAT"); format != "" {
		c.Application.LogFormat = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: fmt.Sprintf("port %d is out of range", c.Server.Port)}
	}
	if c.Server.ReadTimeout <= 0 {
		return &ConfigError{Field: "server.read_timeout", Message: "read timeout must be positive"}
	}
	if c.Server.WriteTimeout <= 0 {
		return &ConfigError{Field: "server.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	switch c.Store.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return &ConfigError{Field: "store.backend", Message: fmt.Sprintf("unknown backend %q (want memory or sqlite)", c.Store.Backend)}
	}
	switch c.Store.IDStrategy {
	case IDStrategyLength, IDStrategySequence:
	default:
		return &ConfigError{Field: "store.id_strategy", Message: fmt.Sprintf("unknown id strategy %q (want length or sequence)", c.Store.IDStrategy)}
	}

	if c.Validation.NameMinLength < 1 {
		return &ConfigError{Field: "validation.name_min_length", Message: "name minimum length must be at least 1"}
	}

	switch c.Application.LogFormat {
	case LogFormatText, LogFormatJSON, LogFormatLogfmt:
	default:
		return &ConfigError{Field: "application.log_format", Message: fmt.Sprintf("unknown log format %q", c.Application.LogFormat)}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
