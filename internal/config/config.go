package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the application
type Config struct {
	Storage     StorageConfig
	Timer       TimerConfig
	Application ApplicationConfig
}

// StorageConfig holds credential-storage configuration
type StorageConfig struct {
	DataDir  string `env:"HIROTRACK_DATA_DIR"`
	Filename string `env:"HIROTRACK_CREDENTIALS_FILENAME"`
}

// TimerConfig holds timer engine configuration
type TimerConfig struct {
	TickInterval time.Duration `env:"HIROTRACK_TICK_INTERVAL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"HIROTRACK_APP_TIMEOUT"`
	Verbose bool          `env:"HIROTRACK_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDataDir := filepath.Join(homeDir, ".hirotrack")

	return &Config{
		Storage: StorageConfig{
			DataDir:  defaultDataDir,
			Filename: "credentials.db",
		},
		Timer: TimerConfig{
			TickInterval: time.Second,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetCredentialsPath returns the full path to the fallback credential store
func (c *Config) GetCredentialsPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.Filename)
}

// EnsureDataDir creates the data directory if it does not exist
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.Storage.DataDir, 0700)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("HIROTRACK_DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}
	if filename := os.Getenv("HIROTRACK_CREDENTIALS_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if interval := os.Getenv("HIROTRACK_TICK_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Timer.TickInterval = d
		}
	}
	if timeout := os.Getenv("HIROTRACK_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("HIROTRACK_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return &ConfigError{Field: "storage.data_dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "credentials filename cannot be empty"}
	}
	if c.Timer.TickInterval <= 0 {
		return &ConfigError{Field: "timer.tick_interval", Message: "tick interval must be positive"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
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
