package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

func newSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorRose)),
	)
}

// renderLoadingPlaceholder renders the spinner with a label centered in
// the given area.
func renderLoadingPlaceholder(s spinner.Model, label string, width, height int) string {
	text := s.View() + " " + subtleStyle.Italic(true).Render(label)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

// renderErrorPlaceholder renders a load failure with a hint on how to
// leave the page.
func renderErrorPlaceholder(err error, hint string, width, height int) string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		errorStyle.Render(err.Error()),
		"",
		helpStyle.Render(hint),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
