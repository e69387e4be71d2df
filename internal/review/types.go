package review

import "fmt"

// Severity represents the severity level of a finding.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityRank returns a numeric rank for sorting (higher = more severe).
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// ParseSeverity validates s and returns it as a Severity.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if SeverityRank(sev) == 0 {
		return "", fmt.Errorf("invalid severity: %q", s)
	}
	return sev, nil
}

// MeetsThreshold returns true if severity is at or above the threshold.
func MeetsThreshold(s Severity, threshold string) bool {
	if threshold == "none" || threshold == "" {
		return false
	}
	return SeverityRank(s) >= SeverityRank(Severity(threshold))
}

// Category represents the grouping of a finding.
type Category string

const (
	CategoryIssue      Category = "issue"
	CategorySecurity   Category = "security"
	CategorySuggestion Category = "suggestion"
)

// Finding is a single simulated review result.
type Finding struct {
	ID         string   `json:"id"`
	Check      string   `json:"check"`
	Category   Category `json:"category"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	LineHint   int      `json:"line"`
	Suggestion string   `json:"suggestion"`
}

// Counts tallies findings per category.
type Counts struct {
	Total       int `json:"total"`
	Security    int `json:"security"`
	Suggestions int `json:"suggestions"`
	Issues      int `json:"issues"`
}

// Result is the output of one generator run. Findings are ordered issues,
// security, suggestions; Counts is always derived from Findings.
type Result struct {
	Findings []Finding `json:"findings"`
	Counts   Counts    `json:"counts"`
}

// Input is what the user supplied for a single review.
type Input struct {
	Source   string
	Language string
}

// InputInfo describes what was reviewed.
type InputInfo struct {
	Language string `json:"language"`
	Family   Family `json:"family"`
	Bytes    int    `json:"bytes"`
	Lines    int    `json:"lines"`
}

// Timing contains performance metrics.
type Timing struct {
	DelayMs int64 `json:"delayMs"`
	TotalMs int64 `json:"totalMs"`
}

// Report is the top-level output structure.
type Report struct {
	Tool    string    `json:"tool"`
	Version string    `json:"version"`
	RunID   string    `json:"runId"`
	Input   InputInfo `json:"input"`
	Result  Result    `json:"result"`
	Timing  Timing    `json:"timing"`
}

// ComputeCounts calculates the per-category tallies from findings.
func ComputeCounts(findings []Finding) Counts {
	var c Counts
	for _, f := range findings {
		switch f.Category {
		case CategoryIssue:
			c.Issues++
		case CategorySecurity:
			c.Security++
		case CategorySuggestion:
			c.Suggestions++
		}
	}
	c.Total = c.Issues + c.Security + c.Suggestions
	return c
}

// HighestSeverity returns the most severe severity present, or "" for none.
func HighestSeverity(findings []Finding) Severity {
	var top Severity
	for _, f := range findings {
		if SeverityRank(f.Severity) > SeverityRank(top) {
			top = f.Severity
		}
	}
	return top
}
