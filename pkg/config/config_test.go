package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	consoleerrors "github.com/eidora/mythos/pkg/errors"
)

func TestLoadRequiresBaseURL(t *testing.T) {
	t.Setenv(EnvAPIURL, "")

	_, err := Load("")
	if err == nil {
		t.Fatal("Load succeeded without a base URL")
	}
	if got := consoleerrors.GetCode(err); got != consoleerrors.ErrCodeConfigInvalid {
		t.Errorf("error code = %q, want CONFIG_INVALID", got)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://localhost:8000")
	t.Setenv("MYTHOS_API_TIMEOUT", "5s")
	t.Setenv("MYTHOS_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.API.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
	if cfg.API.NarrativeLimit != DefaultNarrativeLimit {
		t.Errorf("narrative limit = %d", cfg.API.NarrativeLimit)
	}
}

func TestLoadYAMLFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("api:\n  base_url: http://file-host:9999\n  narrative_limit: 25\nui:\n  no_color: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvAPIURL, "http://env-host:8000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Environment wins over the file.
	if cfg.API.BaseURL != "http://env-host:8000" {
		t.Errorf("base url = %q, want env value", cfg.API.BaseURL)
	}
	if cfg.API.NarrativeLimit != 25 {
		t.Errorf("narrative limit = %d, want 25 from file", cfg.API.NarrativeLimit)
	}
	if !cfg.UI.NoColor {
		t.Error("no_color from file not applied")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv(EnvAPIURL, "not a url")

	_, err := Load("")
	if err == nil {
		t.Fatal("Load accepted a malformed URL")
	}
	if got := consoleerrors.GetCode(err); got != consoleerrors.ErrCodeConfigInvalid {
		t.Errorf("error code = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://localhost:8000")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load succeeded with a missing explicit config file")
	}
	if got := consoleerrors.GetCode(err); got != consoleerrors.ErrCodeConfigLoad {
		t.Errorf("error code = %q, want CONFIG_LOAD", got)
	}
}

func TestOverridesBeatEnvironment(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://env-host:8000")
	t.Setenv("MYTHOS_LOG_LEVEL", "info")

	cfg, err := LoadWithOverrides("", Overrides{
		BaseURL:  "http://flag-host:9000",
		LogLevel: "debug",
	})
	if err != nil {
		t.Fatalf("LoadWithOverrides: %v", err)
	}
	if cfg.API.BaseURL != "http://flag-host:9000" {
		t.Errorf("base url = %q, want flag value", cfg.API.BaseURL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want flag value", cfg.Logging.Level)
	}
}

func TestOverrideSuppliesMissingURL(t *testing.T) {
	t.Setenv(EnvAPIURL, "")

	cfg, err := LoadWithOverrides("", Overrides{BaseURL: "http://localhost:8000"})
	if err != nil {
		t.Fatalf("LoadWithOverrides: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("base url = %q", cfg.API.BaseURL)
	}
}
