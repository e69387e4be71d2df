package review

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules represents a rules pack loaded from --rules.
type Rules struct {
	Extended          bool                  `yaml:"extended"`
	Disable           []string              `yaml:"disable,omitempty"`
	SeverityOverrides map[Category]Severity `yaml:"severityOverrides,omitempty"`
}

// LoadRules loads a YAML rules file from disk. Returns nil Rules and nil error if path is empty.
func LoadRules(path string) (*Rules, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	return ParseRules(data)
}

// ParseRules decodes and validates a YAML rules pack.
func ParseRules(data []byte) (*Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &rules, nil
}

// Validate rejects unknown check IDs, categories, and severities.
func (r *Rules) Validate() error {
	for _, id := range r.Disable {
		if _, ok := lookupCheck(id); !ok {
			return fmt.Errorf("rules: unknown check %q in disable", id)
		}
	}
	for cat, sev := range r.SeverityOverrides {
		switch cat {
		case CategoryIssue, CategorySecurity, CategorySuggestion:
		default:
			return fmt.Errorf("rules: unknown category %q in severityOverrides", cat)
		}
		if _, err := ParseSeverity(string(sev)); err != nil {
			return fmt.Errorf("rules: override for %s: %w", cat, err)
		}
	}
	return nil
}

func (r *Rules) disabled(id string) bool {
	if r == nil {
		return false
	}
	for _, d := range r.Disable {
		if d == id {
			return true
		}
	}
	return false
}

// applySeverityOverride returns the overridden severity for a category, if any.
func (r *Rules) applySeverityOverride(cat Category, sev Severity) Severity {
	if r == nil || len(r.SeverityOverrides) == 0 {
		return sev
	}
	if override, ok := r.SeverityOverrides[cat]; ok {
		return override
	}
	return sev
}
