package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/vin-lookup/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://vpic.nhtsa.dot.gov/api", cfg.Decoder.BaseURL)
	assert.Equal(t, 24, cfg.Decoder.CacheTTLHours)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
logging:
  level: debug
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Keys missing from the file keep their defaults.
	assert.Equal(t, 24, cfg.Decoder.CacheTTLHours)
}

func TestLoadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"decoder":{"timeoutSeconds":3}}`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Decoder.TimeoutSeconds)
	assert.Equal(t, 3*time.Second, cfg.Decoder.ToDecoderConfig().Timeout)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := config.Load("config.toml")
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("VINLOOKUP_SERVER__PORT", "7070")
	t.Setenv("VINLOOKUP_LOGGING__LEVEL", "debug")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600))
	t.Setenv("VINLOOKUP_SERVER__PORT", "7070")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port, "env layer wins over the file layer")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad port", func(c *config.Config) { c.Server.Port = 0 }},
		{"empty base url", func(c *config.Config) { c.Decoder.BaseURL = "" }},
		{"zero timeout", func(c *config.Config) { c.Decoder.TimeoutSeconds = 0 }},
		{"zero ttl", func(c *config.Config) { c.Decoder.CacheTTLHours = 0 }},
		{"zero rate", func(c *config.Config) { c.Decoder.RequestsPerSecond = 0 }},
		{"zero burst", func(c *config.Config) { c.Decoder.Burst = 0 }},
		{"unknown level", func(c *config.Config) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSlogLevels(t *testing.T) {
	assert.Equal(t, "DEBUG", config.LoggingConfig{Level: "debug"}.SlogLevel().String())
	assert.Equal(t, "WARN", config.LoggingConfig{Level: "warn"}.SlogLevel().String())
	assert.Equal(t, "ERROR", config.LoggingConfig{Level: "error"}.SlogLevel().String())
	assert.Equal(t, "INFO", config.LoggingConfig{Level: "info"}.SlogLevel().String())
}
