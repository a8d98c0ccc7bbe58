package tui

import "github.com/charmbracelet/lipgloss"

type theme struct {
	title    lipgloss.Style
	header   lipgloss.Style
	row      lipgloss.Style
	selected lipgloss.Style
	status   lipgloss.Style
	warning  lipgloss.Style
	errText  lipgloss.Style
	modal    lipgloss.Style
	label    lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		title: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("244")),
		row: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		errText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
	}
}
