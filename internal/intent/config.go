package intent

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/fentz26/petstore-agent/internal/petstore"
)

// Rule is a single ordered routing rule. A rule matches when every entry in
// Requires is present in the prompt and at least one of Keywords or Pattern
// matches. Matching is substring containment over the lowercased prompt.
type Rule struct {
	// Intent selected when this rule matches.
	Intent Intent `yaml:"intent"`
	// Keywords trigger this rule when any is contained in the prompt.
	Keywords []string `yaml:"keywords,omitempty"`
	// Requires must all be contained in the prompt for the rule to apply.
	Requires []string `yaml:"requires,omitempty"`
	// Pattern is an optional regex alternative to Keywords.
	Pattern string `yaml:"pattern,omitempty"`
	// Status is the adoption status for by-status rules.
	Status string `yaml:"status,omitempty"`
}

// Config holds the ordered routing rules. Order is significant: the first
// matching rule wins.
type Config struct {
	Rules []Rule `yaml:"rules"`
}

// DefaultConfig returns the built-in routing rules. The order mirrors the
// store's documented routing table; reordering changes which intent wins for
// prompts that contain several trigger words.
func DefaultConfig() *Config {
	return &Config{
		Rules: []Rule{
			{
				Intent:   IntentListAll,
				Keywords: []string{"all pets", "list pets"},
			},
			{
				Intent:   IntentPetByID,
				Requires: []string{"pet"},
				Keywords: []string{"id"},
				Pattern:  `[0-9]`,
			},
			{
				Intent:   IntentByStatus,
				Keywords: []string{"pending"},
				Status:   string(petstore.StatusPending),
			},
			{
				Intent:   IntentByStatus,
				Keywords: []string{"available", "adoption"},
				Status:   string(petstore.StatusAvailable),
			},
			{
				Intent:   IntentByStatus,
				Keywords: []string{"sold"},
				Status:   string(petstore.StatusSold),
			},
			{
				Intent:   IntentDogs,
				Keywords: []string{"dog"},
			},
			{
				Intent:   IntentCats,
				Keywords: []string{"cat"},
			},
		},
	}
}

// LoadConfig loads routing rules from a YAML file. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	if len(cfg.Rules) == 0 {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves routing rules to a YAML file, creating parent directories
// if needed.
func SaveConfig(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating rules dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing rules file: %w", err)
	}
	return nil
}

// Validate checks that every rule is well-formed.
func (c *Config) Validate() error {
	for i, rule := range c.Rules {
		if !rule.Intent.Valid() {
			return fmt.Errorf("rule %d: unknown intent %q", i, rule.Intent)
		}
		if rule.Intent == IntentHelp {
			return fmt.Errorf("rule %d: help is the implicit fallback, not a rule", i)
		}
		if len(rule.Keywords) == 0 && rule.Pattern == "" {
			return fmt.Errorf("rule %d: needs keywords or a pattern", i)
		}
		if rule.Pattern != "" {
			if _, err := regexp.Compile(rule.Pattern); err != nil {
				return fmt.Errorf("rule %d: bad pattern: %w", i, err)
			}
		}
		if rule.Intent == IntentByStatus {
			if !petstore.Status(rule.Status).Valid() {
				return fmt.Errorf("rule %d: by-status rule needs a valid status, got %q", i, rule.Status)
			}
		} else if rule.Status != "" {
			return fmt.Errorf("rule %d: status only applies to by-status rules", i)
		}
	}
	return nil
}
