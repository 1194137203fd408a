package tui

import "github.com/charmbracelet/lipgloss"

// One style per role: cyan for titles and dividers, green for the
// in-progress event, yellow for upcoming alerts, magenta for the
// remaining-time digits and blue when fewer than fifteen minutes remain.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	inProgressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	inProgressHeadStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("2"))

	upcomingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))

	upcomingHeadStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("3"))

	nextHeadStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("7"))

	remainingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5"))

	remainingSoonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("4"))
)
