package output

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/dshills/glint/internal/review"
)

//go:embed styles.css
var styleRules string

// StyleRules returns the injected style rules for result and notification markup.
func StyleRules() string {
	return styleRules
}

// HTMLWriter renders the results fragment: injected styles, the three count
// slots, and the results container. All text is escaped.
type HTMLWriter struct{}

var htmlTemplate = template.Must(template.New("results").Funcs(template.FuncMap{
	"severityClass": SeverityClass,
	"categoryIcon":  CategoryIcon,
	"upper":         func(v any) string { return strings.ToUpper(fmt.Sprint(v)) },
}).Parse(`<style>
{{.Styles}}</style>
<div class="results-summary">
  <span id="issues-count">{{.Counts.Issues}}</span>
  <span id="security-count">{{.Counts.Security}}</span>
  <span id="suggestions-count">{{.Counts.Suggestions}}</span>
</div>
<div id="results-content">
{{- if not .Findings}}
  <div class="no-results">
    <i class="fas fa-check-circle" style="color: #10b981;"></i>
    <p>Great! No issues found in your code.</p>
  </div>
{{- else}}
  <div class="results-list">
{{- range .Findings}}
    <div class="result-item {{severityClass .Severity}}">
      <div class="result-header">
        <div class="result-icon"><i class="{{categoryIcon .Category}}"></i></div>
        <div class="result-info">
          <span class="result-severity">{{upper .Severity}}</span>
          <span class="result-type">{{upper .Category}}</span>
        </div>
        <div class="result-line">Line {{.LineHint}}</div>
      </div>
      <div class="result-message">{{.Message}}</div>
      <div class="result-suggestion"><strong>Suggestion:</strong> {{.Suggestion}}</div>
    </div>
{{- end}}
  </div>
{{- end}}
</div>
`))

type htmlView struct {
	Styles   template.CSS
	Counts   review.Counts
	Findings []review.Finding
}

func (h *HTMLWriter) Write(w io.Writer, report *review.Report) error {
	view := htmlView{
		Styles:   template.CSS(styleRules),
		Counts:   report.Result.Counts,
		Findings: report.Result.Findings,
	}
	if err := htmlTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}
