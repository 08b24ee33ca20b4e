package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette - cool, terminal-night inspired
	primaryColor   = lipgloss.Color("#7AA2F7") // soft blue
	secondaryColor = lipgloss.Color("#9ECE6A") // leaf green
	warningColor   = lipgloss.Color("#E0AF68") // amber warning
	errorColor     = lipgloss.Color("#F7768E") // soft red
	mutedColor     = lipgloss.Color("#565F89") // gray
	textColor      = lipgloss.Color("#C0CAF5") // light text
	dimTextColor   = lipgloss.Color("#9AA5CE") // dim text

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(dimTextColor).
			Italic(true)

	// Section header
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			MarginTop(1).
			MarginBottom(1)

	// File display styles
	fileNameStyle = lipgloss.NewStyle().
			Foreground(textColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	countStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// Status indicators
	successStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// Box styles
	highlightBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Padding(1, 2).
				MarginTop(1)

	// Summary stat styles
	statLabelStyle = lipgloss.NewStyle().
			Foreground(dimTextColor).
			Width(14)

	statValueStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	// Spinner style
	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			MarginTop(2)

	// Icon characters
	iconCopied      = "✓"
	iconOverwritten = "↻"
	iconSkipped     = "○"
	iconFailed      = "✗"
	iconWarning     = "⚠"
	iconArrow       = "→"
	iconFolder      = "📁"
)
