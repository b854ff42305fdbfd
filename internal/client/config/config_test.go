package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://dummyjson.com", c.APIBaseURL)
	assert.Equal(t, "catalog.db", c.DatabaseDSN)
	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, 30, c.CourseListLimit)
	assert.Equal(t, 60, c.TokenTTLMinutes)
	assert.Zero(t, c.RequestTimeout)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.RejectExpiredSession)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg, err := LoadConfig()

	require.NoError(t, err)
	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, 60, cfg.TokenTTLMinutes)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv(EnvAPIURL, "http://env.example")
	t.Setenv(EnvLogLevel, "warn")
	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url": "http://json.example",
		"database_dsn": ":memory:",
	})
	os.Args = []string{"testbin", "-c", path, "-a", "http://flag.example"}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://flag.example", cfg.APIBaseURL)
	assert.Equal(t, ":memory:", cfg.DatabaseDSN)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_InvalidFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-l", "0"}

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{}
	base.LoadDefaults()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty url", func(c *Config) { c.APIBaseURL = "" }},
		{"empty dsn", func(c *Config) { c.DatabaseDSN = "" }},
		{"zero limit", func(c *Config) { c.CourseListLimit = 0 }},
		{"zero ttl", func(c *Config) { c.TokenTTLMinutes = 0 }},
		{"zero interval", func(c *Config) { c.OnlineCheckInterval = 0 }},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
