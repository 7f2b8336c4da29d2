// Package config handles resolving configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Log levels accepted by [Config.LogLevel].
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Duration is a [time.Duration] that unmarshals from YAML duration strings
// like "24h" or "90m".
type Duration time.Duration

// MarshalYAML satisfies [yaml.Marshaler].
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML satisfies [yaml.Unmarshaler].
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config is the application configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// WebAddress is the host:port the web app listens on.
	WebAddress string `yaml:"web_address"`
	// DBFilepath locates the SQLite database file.
	DBFilepath string `yaml:"db_filepath"`
	// DevMode enables request logging, disables CSRF protection, and seeds
	// the store with demo data.
	DevMode bool `yaml:"dev_mode"`
	// CookieSecure marks session cookies Secure. Enable behind TLS.
	CookieSecure bool `yaml:"cookie_secure"`
	// SessionTTL bounds the lifetime of login sessions. Zero means sessions
	// last until logout or process restart.
	SessionTTL Duration `yaml:"session_ttl"`
}

// Default returns a configuration with all default values populated.
func Default() *Config {
	return &Config{
		LogLevel:   LevelInfo,
		WebAddress: "localhost:8080",
		DBFilepath: filepath.Join(xdg.DataHome, "potluck", "db.sqlite"),
	}
}

// Load reads a YAML configuration file from a path, merges it over the
// defaults, and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // allow the config file to be loaded from anywhere
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file at %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for completeness.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	if c.WebAddress == "" {
		return fmt.Errorf("web_address must be set")
	}
	if c.DBFilepath == "" {
		return fmt.Errorf("db_filepath must be set")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("session_ttl must not be negative")
	}
	return nil
}
