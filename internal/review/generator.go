package review

import (
	"crypto/sha256"
	"fmt"
)

// Options configures a Generator.
type Options struct {
	// Extended enables the opt-in checks in addition to the default battery.
	Extended bool
	// Rules may disable checks, enable extended checks, and override severities.
	Rules *Rules
}

// Generator runs a fixed battery of substring checks. It holds no state
// between runs and is safe for concurrent use.
type Generator struct {
	checks []Check
	rules  *Rules
}

var defaultGenerator = NewGenerator(Options{})

// NewGenerator builds a generator for the given options.
func NewGenerator(opts Options) *Generator {
	extended := opts.Extended || (opts.Rules != nil && opts.Rules.Extended)

	var checks []Check
	for _, c := range AllChecks() {
		if c.Extended && !extended {
			continue
		}
		if opts.Rules.disabled(c.ID) {
			continue
		}
		checks = append(checks, c)
	}
	return &Generator{checks: checks, rules: opts.Rules}
}

// Checks returns the active battery in evaluation order.
func (g *Generator) Checks() []Check {
	out := make([]Check, len(g.checks))
	copy(out, g.checks)
	return out
}

// EffectiveSeverity returns the severity c reports under the generator's
// rules, after any category override.
func (g *Generator) EffectiveSeverity(c Check) Severity {
	return g.rules.applySeverityOverride(c.Category, c.Severity)
}

// Generate runs every active check against source and returns the grouped
// findings: issues first, then security findings, then suggestions.
func (g *Generator) Generate(source, language string) Result {
	family := FamilyOf(language)

	var issues, security, suggestions []Finding
	for _, c := range g.checks {
		line, ok := c.Match(source, family)
		if !ok {
			continue
		}
		f := Finding{
			Check:      c.ID,
			Category:   c.Category,
			Severity:   g.EffectiveSeverity(c),
			Message:    c.Message,
			LineHint:   line,
			Suggestion: c.Suggestion,
		}
		f.ID = generateFindingID(f)

		switch c.Category {
		case CategoryIssue:
			issues = append(issues, f)
		case CategorySecurity:
			security = append(security, f)
		case CategorySuggestion:
			suggestions = append(suggestions, f)
		}
	}

	findings := make([]Finding, 0, len(issues)+len(security)+len(suggestions))
	findings = append(findings, issues...)
	findings = append(findings, security...)
	findings = append(findings, suggestions...)

	return Result{
		Findings: findings,
		Counts:   ComputeCounts(findings),
	}
}

// Generate runs the default battery.
func Generate(source, language string) Result {
	return defaultGenerator.Generate(source, language)
}

func generateFindingID(f Finding) string {
	data := fmt.Sprintf("%s:%s:%d", f.Check, f.Category, f.LineHint)
	h := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", h[:8])
}
