package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/glint/internal/output"
	"github.com/dshills/glint/internal/review"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Glint: simulated code review"))
	b.WriteString("\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.tabs.ActivePanel() {
	case panelDemo:
		b.WriteString(m.demoView())
	case panelExamples:
		b.WriteString(m.examplesView())
	default:
		b.WriteString(overviewView())
	}

	if toasts := m.toasts.View(m.width); toasts != "" {
		b.WriteString("\n")
		b.WriteString(toasts)
	}

	b.WriteString("\n\n")
	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) tabBar() string {
	var cells []string
	for _, t := range m.tabs.Triggers() {
		if m.tabs.IsActive(t.ID) {
			cells = append(cells, activeTabStyle.Render(t.Label))
		} else {
			cells = append(cells, tabStyle.Render(t.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func overviewView() string {
	lines := []string{
		"Paste code on the Demo tab and press ctrl+r to get an instant review.",
		"",
		"Glint flags:",
		"  " + output.CategoryGlyph(review.CategorySecurity) + "  security risks such as SQL built by concatenation or eval()",
		"  " + output.CategoryGlyph(review.CategoryIssue) + "  quality issues such as overlong bodies",
		"  " + output.CategoryGlyph(review.CategorySuggestion) + "  style suggestions such as missing comments",
		"",
		subtitleStyle.Render("Reviews are simulated. No code leaves your machine."),
	}
	return strings.Join(lines, "\n")
}

func (m Model) demoView() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Language: %s  ", selectedStyle.Render(m.language())))
	if m.busy {
		b.WriteString(busyStyle.Render(m.spinner.View() + " Analyzing..."))
	} else {
		b.WriteString(buttonStyle.Render("Review Code"))
	}
	b.WriteString("\n\n")

	var counts review.Counts
	if m.result != nil {
		counts = m.result.Counts
	}
	b.WriteString(fmt.Sprintf("Issues: %s   Security: %s   Suggestions: %s\n\n",
		countStyle.Render(fmt.Sprint(counts.Issues)),
		countStyle.Render(fmt.Sprint(counts.Security)),
		countStyle.Render(fmt.Sprint(counts.Suggestions))))

	b.WriteString(resultsView(m.result))
	return b.String()
}

func resultsView(res *review.Result) string {
	if res == nil {
		return subtitleStyle.Render("Submit code above to see review results.")
	}
	if len(res.Findings) == 0 {
		return successStyle.Render("✔ Great! No issues found in your code.")
	}

	blocks := make([]string, 0, len(res.Findings))
	for _, f := range res.Findings {
		header := fmt.Sprintf("%s %s  %s  Line %d",
			output.CategoryGlyph(f.Category),
			strings.ToUpper(string(f.Severity)),
			strings.ToUpper(string(f.Category)),
			f.LineHint)
		body := header + "\n" + f.Message
		if f.Suggestion != "" {
			body += "\n" + subtitleStyle.Render("Suggestion: "+f.Suggestion)
		}
		blocks = append(blocks, findingStyle(output.SeverityColor(f.Severity)).Render(body))
	}
	return strings.Join(blocks, "\n")
}

func (m Model) examplesView() string {
	var b strings.Builder
	b.WriteString("Try these examples:\n\n")
	for i, ex := range examples {
		label := fmt.Sprintf("%s (%s)", ex.Title, ex.Language)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(codeStyle.Render(examples[m.selected].Source))
	return b.String()
}

func (m Model) helpView() string {
	bindings := m.keys.helpFor(m.tabs.ActivePanel())
	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
