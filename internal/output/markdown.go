package output

import (
	"io"
	"strings"

	"github.com/dshills/glint/internal/review"
)

// MarkdownWriter outputs a summary table followed by numbered findings.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *review.Report) error {
	ew := &errWriter{w: w}
	counts := report.Result.Counts

	ew.printf("## Code Review Summary\n\n")
	ew.printf("**Total Issues Found:** %d\n\n", counts.Total)
	ew.printf("| Category | Count |\n")
	ew.printf("|----------|-------|\n")
	ew.printf("| Issues | %d |\n", counts.Issues)
	ew.printf("| Security | %d |\n", counts.Security)
	ew.printf("| Suggestions | %d |\n\n", counts.Suggestions)

	if len(report.Result.Findings) == 0 {
		ew.println("✅ **Great job!** No issues found in your code.")
		return ew.err
	}

	ew.printf("## Detailed Analysis\n\n")
	for i, f := range report.Result.Findings {
		ew.printf("### %d. %s %s (%s)\n\n", i+1, SeverityEmoji(f.Severity),
			titleCase(string(f.Category)), titleCase(string(f.Severity)))
		ew.printf("**Line %d:** %s\n\n", f.LineHint, f.Message)
		if f.Suggestion != "" {
			ew.printf("**Suggestion:** %s\n\n", f.Suggestion)
		}
		ew.printf("---\n\n")
	}

	return ew.err
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
