package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	allowColor   = lipgloss.Color("#10B981") // Green
	blockColor   = lipgloss.Color("#EF4444") // Red
	mutedColor   = lipgloss.Color("#6B7280") // Gray
	textColor    = lipgloss.Color("#F9FAFB") // Light

	// Container styles
	AppStyle = lipgloss.NewStyle().
			Padding(1, 2)

	// Header
	HeaderStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			MarginBottom(1)

	// Verdict badges
	AllowStyle = lipgloss.NewStyle().
			Foreground(allowColor).
			Bold(true)

	BlockStyle = lipgloss.NewStyle().
			Foreground(blockColor).
			Bold(true)

	// List rows
	RowStyle = lipgloss.NewStyle().
			Foreground(textColor)

	RowSelectedStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Background(primaryColor).
				Bold(true)

	// Timestamps and secondary text
	MutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Detail box
	DetailStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Padding(1).
			MarginTop(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
