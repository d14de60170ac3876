// Package config loads the agent configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config corresponds to config.yaml.
type Config struct {
	// BaseURL is the pet store API base URL.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// TimeoutSeconds bounds each API request. Single attempt, no retries.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	// DBPath is the prompt history database location.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`
	// LogPath is the structured log file location.
	LogPath string `mapstructure:"log_path" yaml:"log_path"`
	// RulesPath is an optional routing rules override file.
	RulesPath string `mapstructure:"rules_path" yaml:"rules_path"`
}

// DefaultBaseURL is the hosted pet store API.
const DefaultBaseURL = "https://apim-apiops-dev-eastus2-basic.azure-api.net/pet-shop-mcp"

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(homeDir(), "config.yaml")
}

// Load reads configuration from path, falling back to defaults when the file
// does not exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(expandPath(path))
	v.SetConfigType("yaml")

	home := homeDir()
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout_seconds", 10)
	v.SetDefault("db_path", filepath.Join(home, "history.db"))
	v.SetDefault("log_path", filepath.Join(home, "petagent.log"))
	v.SetDefault("rules_path", filepath.Join(home, "rules.yaml"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url cannot be empty")
	}
	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("timeout_seconds must be at least 1")
	}
	return nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".petagent"
	}
	return filepath.Join(home, ".petagent")
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
