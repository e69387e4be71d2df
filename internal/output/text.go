package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/glint/internal/review"
)

// TextWriter outputs a human-readable text report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *review.Report) error {
	ew := &errWriter{w: w}
	counts := report.Result.Counts

	ew.printf("Glint Code Review: %s\n", languageLabel(report.Input.Language))
	ew.println(strings.Repeat("─", 60))
	ew.printf("Findings: %d total", counts.Total)
	if counts.Total > 0 {
		ew.printf(" (%d issues, %d security, %d suggestions)",
			counts.Issues, counts.Security, counts.Suggestions)
	}
	ew.println("")
	ew.println(strings.Repeat("─", 60))

	if len(report.Result.Findings) == 0 {
		ew.println("\nGreat! No issues found in your code.")
		return ew.err
	}

	for i, f := range report.Result.Findings {
		ew.printf("\n%2d. %s %s %s  Line %d\n",
			i+1, severityIcon(f.Severity),
			strings.ToUpper(string(f.Severity)), strings.ToUpper(string(f.Category)), f.LineHint)

		for _, line := range wrapText(f.Message, 70) {
			ew.printf("    %s\n", line)
		}
		if f.Suggestion != "" {
			ew.println("    Suggestion:")
			for _, line := range wrapText(f.Suggestion, 66) {
				ew.printf("      %s\n", line)
			}
		}
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	ew.printf("Completed in %dms (simulated delay: %dms)\n",
		report.Timing.TotalMs, report.Timing.DelayMs)

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func languageLabel(lang string) string {
	if lang == "" {
		return "unspecified language"
	}
	return lang
}

func severityIcon(s review.Severity) string {
	switch s {
	case review.SeverityCritical:
		return "[!!!]"
	case review.SeverityHigh:
		return "[!!]"
	case review.SeverityMedium:
		return "[!]"
	case review.SeverityLow:
		return "[-]"
	default:
		return "[?]"
	}
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
