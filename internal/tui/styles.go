package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorBrand   lipgloss.Color = "#6366f1"
	colorMuted   lipgloss.Color = "#6b7280"
	colorSuccess lipgloss.Color = "#10b981"
	colorText    lipgloss.Color = "#e5e7eb"
	colorSurface lipgloss.Color = "#1f2937"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	subtitleStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(colorMuted)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(colorText).Background(colorBrand)
	buttonStyle    = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(colorText).Background(colorBrand)
	busyStyle      = lipgloss.NewStyle().Padding(0, 2).Foreground(colorMuted).Background(colorSurface)
	countStyle     = lipgloss.NewStyle().Bold(true)
	successStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	helpStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	codeStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
)

// findingStyle draws a finding block with a left rule in the severity color.
func findingStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(color)).
		PaddingLeft(1).
		MarginBottom(1)
}
