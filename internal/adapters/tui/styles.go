package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#8B5CF6")
	accentColor  = lipgloss.Color("#22C55E")
	warnColor    = lipgloss.Color("#F59E0B")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#64748B")
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1)

	positionStyle = lipgloss.NewStyle().Bold(true)

	urlStyle = lipgloss.NewStyle().Underline(true)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			MarginRight(1)

	statusStyle = lipgloss.NewStyle().Foreground(accentColor).MarginTop(1)
	warnStyle   = lipgloss.NewStyle().Foreground(warnColor).MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor).MarginTop(1)
)
