// Package config loads console configuration. Values are resolved in
// order: built-in defaults, an optional YAML config file, then
// environment variables (a .env file in the working directory is
// honored, mirroring the service's own startup). The API base URL has
// no default: starting without one is a configuration error, not a
// runtime failure.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	consoleerrors "github.com/eidora/mythos/pkg/errors"
)

const (
	// EnvAPIURL names the required environment variable holding the
	// mythology service base URL.
	EnvAPIURL = "MYTHOS_API_URL"

	DefaultTimeout        = 30 * time.Second
	DefaultNarrativeLimit = 10
	DefaultDreamLimit     = 5
)

// Config represents the complete console configuration.
type Config struct {
	API     APIConfig     `yaml:"api" validate:"required"`
	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

// APIConfig configures the remote data gateway.
type APIConfig struct {
	// BaseURL is the service root; the gateway appends the /api prefix.
	BaseURL string `yaml:"base_url" validate:"required,url"`
	// Timeout bounds each request at the transport level. The core
	// itself enforces no timeouts.
	Timeout        time.Duration `yaml:"timeout" validate:"min=1s"`
	NarrativeLimit int           `yaml:"narrative_limit" validate:"min=1"`
	DreamLimit     int           `yaml:"dream_limit" validate:"min=1"`
	// NetworkLogs enables JSONL request/response logging.
	NetworkLogs bool `yaml:"network_logs"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// UIConfig configures the renderer.
type UIConfig struct {
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns the built-in defaults. The API base URL is
// deliberately left empty.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Timeout:        DefaultTimeout,
			NarrativeLimit: DefaultNarrativeLimit,
			DreamLimit:     DefaultDreamLimit,
		},
		Logging: LoggingConfig{
			Dir:   defaultStateDir(),
			Level: "info",
		},
	}
}

// Overrides carries flag-level settings. They are applied after file
// and environment resolution, before validation, so a flag beats both.
type Overrides struct {
	BaseURL  string
	LogLevel string
}

// Load resolves the configuration. path may be empty, in which case
// ~/.mythos/config.yaml is used when present.
func Load(path string) (*Config, error) {
	return LoadWithOverrides(path, Overrides{})
}

// LoadWithOverrides resolves the configuration and applies overrides.
func LoadWithOverrides(path string, ov Overrides) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path == "" {
		path = filepath.Join(defaultStateDir(), "config.yaml")
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, consoleerrors.Wrap(err, consoleerrors.ErrCodeConfigLoad, "reading config file").
				WithContext("path", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, consoleerrors.Wrap(err, consoleerrors.ErrCodeConfigLoad, "parsing config file").
				WithContext("path", path)
		}
	}

	applyEnv(cfg)

	if ov.BaseURL != "" {
		cfg.API.BaseURL = ov.BaseURL
	}
	if ov.LogLevel != "" {
		cfg.Logging.Level = ov.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return consoleerrors.New(consoleerrors.ErrCodeConfigInvalid, "mythology service URL is not set").
			WithContext("env", EnvAPIURL)
	}
	if err := validator.New().Struct(c); err != nil {
		return consoleerrors.Wrap(err, consoleerrors.ErrCodeConfigInvalid, "invalid configuration")
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("MYTHOS_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.API.Timeout = d
		}
	}
	if v := os.Getenv("MYTHOS_NETWORK_LOGS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.API.NetworkLogs = b
		}
	}
	if v := os.Getenv("MYTHOS_LOG_DIR"); v != "" {
		cfg.Logging.Dir = v
	}
	if v := os.Getenv("MYTHOS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.UI.NoColor = true
	}
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mythos"
	}
	return filepath.Join(home, ".mythos")
}
