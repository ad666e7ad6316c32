package tui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorRose   = lipgloss.Color("#F43F5E")
	ColorIndigo = lipgloss.Color("#6366F1")
	ColorBlue   = lipgloss.Color("#3B82F6")
	ColorRed    = lipgloss.Color("#EF4444")
	ColorGreen  = lipgloss.Color("#22C55E")
	ColorGray   = lipgloss.Color("#6B7280")
	ColorWhite  = lipgloss.Color("#F9FAFB")
	ColorNavy   = lipgloss.Color("#1E1B4B")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRose)

	subtleStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorIndigo).
			Padding(1, 4).
			Align(lipgloss.Center)

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	answerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRose)

	missHintStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	perfectStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorWhite).
				Background(ColorIndigo).
				Bold(true)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorIndigo).
				MarginTop(1)
)

// buttonStyle renders a clickable action with the given background.
func buttonStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(bg).
		Bold(true).
		Padding(0, 2).
		MarginRight(2)
}
