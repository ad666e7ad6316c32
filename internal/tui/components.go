package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderBranding renders "nihonki" with a rose to indigo gradient.
func renderBranding() string {
	colors := []string{
		"#F43F5E", // n
		"#E9467A", // i
		"#DD4D96", // h
		"#C654B3", // o
		"#A65BCF", // n
		"#8661E0", // k
		"#6366F1", // i
	}

	var b strings.Builder
	for i, char := range "nihonki" {
		style := lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(lipgloss.Color(colors[i])).
			Bold(true)
		b.WriteString(style.Render(string(char)))
	}
	return b.String()
}

// renderHeader renders the top bar: a title on the left and status on the
// right.
func renderHeader(width int, title, status string) string {
	base := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	left := base.Bold(true).Padding(0, 1).Render(title)
	right := base.Padding(0, 1).Render(status)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		// Too narrow: drop the status rather than wrap.
		return base.Width(width).Render(title)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, base.Width(gap).Render(""), right)
}

// renderStatusLine renders the bottom help line with the branding on the
// right when there is room.
func renderStatusLine(h help.Model, width int, bindings []key.Binding) string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	brand := ""
	if width >= 40 {
		brand = renderBranding()
	}

	h.Width = max(0, width-lipgloss.Width(brand)-2)
	helpText := h.ShortHelpView(bindings)

	left := baseStyle.Padding(0, 1).Width(max(0, width-lipgloss.Width(brand)-1)).Render(helpText)
	if brand == "" {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, brand, baseStyle.Render(" "))
}

// layout stacks header, body and status line, giving the body whatever
// height is left.
func layout(width, height int, header, body, status string) string {
	bodyHeight := max(0, height-lipgloss.Height(header)-lipgloss.Height(status))
	bodyBlock := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, bodyBlock, status)
}

// bodyHeight is the height available between the header and status line.
func bodyHeight(height int) int {
	return max(0, height-2)
}

// truncate shortens s to at most width cells, marking the cut with "…".
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
