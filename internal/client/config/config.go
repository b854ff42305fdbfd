package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the catalog client.
//
// Fields:
//   - APIBaseURL: base URL of the remote catalog/auth API.
//   - DatabaseDSN: SQLite file (relative names live in DataDir) or ":memory:".
//   - DataDir: directory for local data files.
//   - CourseListLimit: page size requested from the course list endpoint.
//   - TokenTTLMinutes: session lifetime requested at login.
//   - RequestTimeout: per-request HTTP timeout; zero disables it.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - LogLevel: debug, info, warn or error.
//   - RejectExpiredSession: drop a cached session whose token has expired.
type Config struct {
	APIBaseURL           string
	DatabaseDSN          string
	DataDir              string
	CourseListLimit      int
	TokenTTLMinutes      int
	RequestTimeout       time.Duration
	OnlineCheckInterval  time.Duration
	LogLevel             string
	RejectExpiredSession bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://dummyjson.com"
	c.DatabaseDSN = "catalog.db"
	c.DataDir = "data"
	c.CourseListLimit = 30
	c.TokenTTLMinutes = 60
	c.RequestTimeout = 0
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "info"
	c.RejectExpiredSession = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file), JSON (if present) and
// command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseJson(cfg); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	switch {
	case c.APIBaseURL == "":
		return fmt.Errorf("api base url is empty")
	case c.DatabaseDSN == "":
		return fmt.Errorf("database dsn is empty")
	case c.CourseListLimit <= 0:
		return fmt.Errorf("course list limit must be positive, got %d", c.CourseListLimit)
	case c.TokenTTLMinutes <= 0:
		return fmt.Errorf("token ttl must be positive, got %d", c.TokenTTLMinutes)
	case c.OnlineCheckInterval <= 0:
		return fmt.Errorf("online check interval must be positive, got %s", c.OnlineCheckInterval)
	case c.RequestTimeout < 0:
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	return nil
}
