package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#E8A87C") // warm orange
	secondaryColor = lipgloss.Color("#85DCB0") // mint green
	errorColor     = lipgloss.Color("#E85D75") // soft red
	mutedColor     = lipgloss.Color("#6B7280") // gray
	textColor      = lipgloss.Color("#F3F4F6") // light text
	dimTextColor   = lipgloss.Color("#9CA3AF") // dim text

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	fileNameStyle = lipgloss.NewStyle().
			Foreground(textColor)

	countStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			MarginTop(1)

	// Summary table
	labelStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	valueStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	okValueStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	errorValueStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	iconArrow  = "→"
	iconFolder = "📁"
)
