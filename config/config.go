// Package config provides configuration loading for profind.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Modes for the record store adapter.
const (
	ModeLocal  = "local"
	ModeRemote = "remote"
)

var (
	// ErrInvalidMode is returned when the mode is neither local nor remote.
	ErrInvalidMode = errors.New("mode must be \"local\" or \"remote\"")

	// ErrBaseURLRequired is returned when remote mode lacks a base URL.
	ErrBaseURLRequired = errors.New("remote mode requires api_base_url")
)

// Config holds the engine's runtime configuration.
type Config struct {
	// Mode selects the record store adapter: local or remote.
	Mode string `koanf:"mode"`

	// APIBaseURL is the remote search service, e.g. "http://localhost:8000".
	// Required in remote mode, ignored in local mode.
	APIBaseURL string `koanf:"api_base_url"`

	// DBPath is the local BadgerDB directory. Empty runs an in-memory
	// store seeded with the reference corpus.
	DBPath string `koanf:"db_path"`

	// TopK is the result page size.
	TopK int `koanf:"top_k"`

	// HTTPTimeout bounds remote requests. Zero means no timeout.
	HTTPTimeout time.Duration `koanf:"http_timeout"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsListen is the address for the Prometheus endpoint.
	// Empty disables metrics serving.
	MetricsListen string `koanf:"metrics_listen"`
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if c.Mode != ModeLocal && c.Mode != ModeRemote {
		return fmt.Errorf("%w: got %q", ErrInvalidMode, c.Mode)
	}
	if c.Mode == ModeRemote && c.APIBaseURL == "" {
		return ErrBaseURLRequired
	}
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be positive, got %d", c.TopK)
	}
	return nil
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Mode == "" {
		cfg.Mode = ModeLocal
	}
	if cfg.TopK == 0 {
		cfg.TopK = 10
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
