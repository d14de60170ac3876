package intent

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/fentz26/petstore-agent/internal/petstore"
)

// digitRun matches the first run of digits in a prompt.
var digitRun = regexp.MustCompile(`[0-9]+`)

// Router routes a prompt to a store query intent.
type Router interface {
	Route(ctx context.Context, prompt string) (*Decision, error)
}

// KeywordRouter implements ordered keyword-based routing.
type KeywordRouter struct {
	config   *Config
	patterns map[int]*regexp.Regexp
}

// NewRouter creates a keyword router from the given rules. A nil config uses
// the defaults.
func NewRouter(cfg *Config) *KeywordRouter {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	patterns := make(map[int]*regexp.Regexp)
	for i, rule := range cfg.Rules {
		if rule.Pattern != "" {
			if re, err := regexp.Compile(rule.Pattern); err == nil {
				patterns[i] = re
			}
		}
	}

	return &KeywordRouter{config: cfg, patterns: patterns}
}

// Route evaluates the rules in order against the lowercased prompt and
// returns the first match. Prompts matching no rule get IntentHelp.
func (r *KeywordRouter) Route(ctx context.Context, prompt string) (*Decision, error) {
	text := strings.ToLower(prompt)

	for i, rule := range r.config.Rules {
		matched, keywords := r.matchesRule(text, i, rule)
		if !matched {
			continue
		}

		decision := &Decision{
			Prompt:          prompt,
			Intent:          rule.Intent,
			MatchedKeywords: keywords,
		}

		switch rule.Intent {
		case IntentPetByID:
			if id, ok := ExtractPetID(prompt); ok {
				decision.PetID = id
				decision.HasPetID = true
			}
		case IntentByStatus:
			decision.Status = petstore.Status(rule.Status)
		}

		return decision, nil
	}

	return &Decision{Prompt: prompt, Intent: IntentHelp}, nil
}

// matchesRule checks whether text satisfies a rule and returns the keywords
// that triggered it.
func (r *KeywordRouter) matchesRule(text string, idx int, rule Rule) (bool, []string) {
	for _, req := range rule.Requires {
		if !strings.Contains(text, strings.ToLower(req)) {
			return false, nil
		}
	}

	var matched []string
	for _, keyword := range rule.Keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			matched = append(matched, keyword)
		}
	}
	if len(matched) > 0 {
		return true, append(matched, rule.Requires...)
	}

	if re, ok := r.patterns[idx]; ok && re.MatchString(text) {
		return true, append([]string{rule.Pattern}, rule.Requires...)
	}

	return false, nil
}

// ExtractPetID returns the first run of digits in the prompt as a pet ID.
func ExtractPetID(prompt string) (int64, bool) {
	match := digitRun.FindString(prompt)
	if match == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Config returns the router's rule set.
func (r *KeywordRouter) Config() *Config {
	return r.config
}
