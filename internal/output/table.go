package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/glint/internal/review"
	"github.com/pterm/pterm"
)

// TableWriter renders findings as a pterm table.
type TableWriter struct{}

func (t *TableWriter) Write(w io.Writer, report *review.Report) error {
	counts := report.Result.Counts
	if len(report.Result.Findings) == 0 {
		_, err := io.WriteString(w, pterm.Success.Sprintln("Great! No issues found in your code."))
		return err
	}

	header := pterm.Info.Sprintf("Found %d findings: %d issues, %d security, %d suggestions\n\n",
		counts.Total, counts.Issues, counts.Security, counts.Suggestions)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	data := [][]string{
		{"Severity", "Category", "Line", "Message", "Suggestion"},
	}
	for _, f := range report.Result.Findings {
		data = append(data, []string{
			severityCell(f.Severity),
			pterm.FgCyan.Sprint(string(f.Category)),
			strconv.Itoa(f.LineHint),
			f.Message,
			f.Suggestion,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

func severityCell(s review.Severity) string {
	label := strings.ToUpper(string(s))
	switch s {
	case review.SeverityCritical, review.SeverityHigh:
		return pterm.FgRed.Sprint(label)
	case review.SeverityMedium:
		return pterm.FgYellow.Sprint(label)
	default:
		return pterm.FgBlue.Sprint(label)
	}
}
