package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/glint/internal/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLWriter_Results(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&HTMLWriter{}).Write(&buf, sampleReport(t)))

	out := buf.String()
	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, ".severity-critical")
	assert.Contains(t, out, `<span id="issues-count">1</span>`)
	assert.Contains(t, out, `<span id="security-count">1</span>`)
	assert.Contains(t, out, `<span id="suggestions-count">1</span>`)
	assert.Contains(t, out, `<div class="result-item severity-high">`)
	assert.Contains(t, out, `<i class="fas fa-shield-alt"></i>`)
	assert.Contains(t, out, `<span class="result-severity">MEDIUM</span>`)
	assert.Contains(t, out, `<span class="result-type">SUGGESTION</span>`)
	assert.Contains(t, out, "Line 2")
	assert.Equal(t, 3, strings.Count(out, `class="result-item `))
	assert.NotContains(t, out, "no-results")
}

func TestHTMLWriter_NoFindings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&HTMLWriter{}).Write(&buf, emptyReport()))

	out := buf.String()
	assert.Contains(t, out, `<div class="no-results">`)
	assert.Contains(t, out, "Great! No issues found in your code.")
	assert.Contains(t, out, ".results-list")
	assert.NotContains(t, out, `<div class="results-list">`)
	assert.Contains(t, out, `<span id="issues-count">0</span>`)
}

func TestHTMLWriter_EscapesText(t *testing.T) {
	findings := []review.Finding{{
		Check:      "custom",
		Category:   review.CategoryIssue,
		Severity:   review.SeverityLow,
		Message:    `<script>alert("x")</script>`,
		Suggestion: "a & b",
		LineHint:   1,
	}}
	report := review.BuildReport(review.Input{Source: "x"}, review.Result{
		Findings: findings,
		Counts:   review.ComputeCounts(findings),
	}, 0, 0)

	var buf bytes.Buffer
	require.NoError(t, (&HTMLWriter{}).Write(&buf, report))

	out := buf.String()
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "a &amp; b")
}

func TestHTMLWriter_UnknownSeverityFallsBack(t *testing.T) {
	findings := []review.Finding{{
		Category: review.Category("lint"),
		Severity: review.Severity("blocker"),
		Message:  "odd",
	}}
	report := review.BuildReport(review.Input{Source: "x"}, review.Result{Findings: findings}, 0, 0)

	var buf bytes.Buffer
	require.NoError(t, (&HTMLWriter{}).Write(&buf, report))

	out := buf.String()
	assert.Contains(t, out, `<div class="result-item severity-low">`)
	assert.Contains(t, out, `<i class="fas fa-info-circle"></i>`)
	assert.Contains(t, out, "BLOCKER")
}

func TestStyleMappings(t *testing.T) {
	tests := []struct {
		severity review.Severity
		class    string
		emoji    string
		color    string
	}{
		{review.SeverityCritical, "severity-critical", "🔴", "#dc3545"},
		{review.SeverityHigh, "severity-high", "🟠", "#fd7e14"},
		{review.SeverityMedium, "severity-medium", "🟡", "#ffc107"},
		{review.SeverityLow, "severity-low", "🟢", "#17a2b8"},
		{review.Severity("unknown"), "severity-low", "🔵", "#17a2b8"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.class, SeverityClass(tt.severity))
		assert.Equal(t, tt.emoji, SeverityEmoji(tt.severity))
		assert.Equal(t, tt.color, SeverityColor(tt.severity))
	}

	assert.Equal(t, "fas fa-shield-alt", CategoryIcon(review.CategorySecurity))
	assert.Equal(t, "fas fa-lightbulb", CategoryIcon(review.CategorySuggestion))
	assert.Equal(t, "fas fa-exclamation-triangle", CategoryIcon(review.CategoryIssue))
	assert.Equal(t, "fas fa-info-circle", CategoryIcon(review.Category("other")))
	assert.Equal(t, "ℹ", CategoryGlyph(review.Category("other")))
}
