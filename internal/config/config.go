// Package config loads the application configuration.
//
// LAYERED SOURCES:
// Configuration is assembled from three layers, later ones winning:
//
//  1. Compiled-in defaults (Default)
//  2. An optional YAML or JSON file
//  3. Environment variables prefixed VINLOOKUP_, with __ as the nesting
//     separator (VINLOOKUP_SERVER__PORT=9090 sets server.port)
//
// The file is optional on purpose: the defaults are a complete, runnable
// configuration, so `go run ./cmd/server` works with no setup at all.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/sakif/vin-lookup/internal/decoder"
)

// envPrefix is stripped from environment variable names before they are
// mapped onto config keys.
const envPrefix = "VINLOOKUP_"

type Config struct {
	Server  ServerConfig  `json:"server"`
	Decoder DecoderConfig `json:"decoder"`
	Web     WebConfig     `json:"web"`
	Logging LoggingConfig `json:"logging"`
}

type ServerConfig struct {
	Port int `json:"port"`
}

// DecoderConfig mirrors decoder.Config with file-friendly scalar units.
type DecoderConfig struct {
	BaseURL           string  `json:"baseUrl"`
	TimeoutSeconds    int     `json:"timeoutSeconds"`
	CacheTTLHours     int     `json:"cacheTtlHours"`
	RequestsPerSecond float64 `json:"requestsPerSecond"`
	Burst             int     `json:"burst"`
}

// ToDecoderConfig converts the scalar units into the decoder's durations.
func (d DecoderConfig) ToDecoderConfig() decoder.Config {
	return decoder.Config{
		BaseURL:           d.BaseURL,
		Timeout:           time.Duration(d.TimeoutSeconds) * time.Second,
		CacheTTL:          time.Duration(d.CacheTTLHours) * time.Hour,
		RequestsPerSecond: d.RequestsPerSecond,
		Burst:             d.Burst,
	}
}

type WebConfig struct {
	TemplateDir string `json:"templateDir"`
	StaticDir   string `json:"staticDir"`
}

type LoggingConfig struct {
	Level string `json:"level"` // debug, info, warn or error
}

// SlogLevel maps the configured level name to a slog level. Validate has
// already rejected unknown names by the time this is called.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default returns the compiled-in configuration.
func Default() Config {
	dec := decoder.DefaultConfig()
	return Config{
		Server: ServerConfig{Port: 8080},
		Decoder: DecoderConfig{
			BaseURL:           dec.BaseURL,
			TimeoutSeconds:    int(dec.Timeout / time.Second),
			CacheTTLHours:     int(dec.CacheTTL / time.Hour),
			RequestsPerSecond: dec.RequestsPerSecond,
			Burst:             dec.Burst,
		},
		Web: WebConfig{
			TemplateDir: "web/templates",
			StaticDir:   "web/static",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load assembles the configuration. path may be "" to skip the file layer.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = kjson.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", path)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	// Environment overrides: VINLOOKUP_SERVER__PORT → server.port. The
	// callback emits dot-delimited keys, so the provider's delimiter must be
	// "." for the keys to nest.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// Unmarshal over the defaults: keys absent from every source keep their
	// default value.
	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Decoder.BaseURL == "" {
		return fmt.Errorf("decoder.baseUrl must not be empty")
	}
	if c.Decoder.TimeoutSeconds <= 0 {
		return fmt.Errorf("decoder.timeoutSeconds must be positive: %d", c.Decoder.TimeoutSeconds)
	}
	if c.Decoder.CacheTTLHours <= 0 {
		return fmt.Errorf("decoder.cacheTtlHours must be positive: %d", c.Decoder.CacheTTLHours)
	}
	if c.Decoder.RequestsPerSecond <= 0 {
		return fmt.Errorf("decoder.requestsPerSecond must be positive: %v", c.Decoder.RequestsPerSecond)
	}
	if c.Decoder.Burst < 1 {
		return fmt.Errorf("decoder.burst must be at least 1: %d", c.Decoder.Burst)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level: %q", c.Logging.Level)
	}
	return nil
}
