package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("base URL = %q, want default", cfg.BaseURL)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", cfg.Timeout())
	}
	if cfg.DBPath == "" || cfg.LogPath == "" {
		t.Error("defaults should set db and log paths")
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "base_url: http://localhost:8099\ntimeout_seconds: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "http://localhost:8099" {
		t.Errorf("base URL = %q", cfg.BaseURL)
	}
	if cfg.Timeout() != 3*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout())
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timeout_seconds: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{BaseURL: "", TimeoutSeconds: 10}
	if err := cfg.Validate(); err == nil {
		t.Error("empty base URL should be invalid")
	}
}
