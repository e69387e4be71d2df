package output

import "github.com/dshills/glint/internal/review"

// SeverityClass maps a severity to its result-item style class.
func SeverityClass(s review.Severity) string {
	switch s {
	case review.SeverityCritical:
		return "severity-critical"
	case review.SeverityHigh:
		return "severity-high"
	case review.SeverityMedium:
		return "severity-medium"
	case review.SeverityLow:
		return "severity-low"
	default:
		// Unknown severities render like low ones.
		return "severity-low"
	}
}

// CategoryIcon maps a category to its icon class.
func CategoryIcon(c review.Category) string {
	switch c {
	case review.CategorySecurity:
		return "fas fa-shield-alt"
	case review.CategorySuggestion:
		return "fas fa-lightbulb"
	case review.CategoryIssue:
		return "fas fa-exclamation-triangle"
	default:
		return "fas fa-info-circle"
	}
}

// CategoryGlyph is the terminal counterpart of CategoryIcon.
func CategoryGlyph(c review.Category) string {
	switch c {
	case review.CategorySecurity:
		return "🛡"
	case review.CategorySuggestion:
		return "💡"
	case review.CategoryIssue:
		return "⚠"
	default:
		return "ℹ"
	}
}

// SeverityEmoji returns the markdown badge for a severity.
func SeverityEmoji(s review.Severity) string {
	switch s {
	case review.SeverityCritical:
		return "🔴"
	case review.SeverityHigh:
		return "🟠"
	case review.SeverityMedium:
		return "🟡"
	case review.SeverityLow:
		return "🟢"
	default:
		return "🔵"
	}
}

// SeverityColor returns the accent color used for a severity's style class.
func SeverityColor(s review.Severity) string {
	switch SeverityClass(s) {
	case "severity-critical":
		return "#dc3545"
	case "severity-high":
		return "#fd7e14"
	case "severity-medium":
		return "#ffc107"
	default:
		return "#17a2b8"
	}
}
