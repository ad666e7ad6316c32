package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/jovid18/nihonki/internal/drill"
)

const (
	chartHeight    = 6
	maxLegendWords = 5
)

// newReportTable lists every completed card, most-missed first.
func newReportTable(r drill.Report, width, height int) table.Model {
	promptW, answerW := 8, 8
	for _, c := range r.Rows {
		promptW = max(promptW, lipgloss.Width(c.Item.Prompt))
		answerW = max(answerW, lipgloss.Width(c.Item.Answer))
	}
	// The wrong column is fixed; prompt and answer share what is left.
	avail := max(16, width-14)
	if promptW+answerW > avail {
		promptW = max(8, avail/2)
		answerW = max(8, avail-promptW)
	}

	rows := make([]table.Row, 0, len(r.Rows))
	for _, c := range r.Rows {
		wrong := "✓"
		if !c.Perfect() {
			wrong = strconv.Itoa(c.WrongCount)
		}
		rows = append(rows, table.Row{c.Item.Prompt, c.Item.Answer, wrong})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		BorderBottom(true).
		Bold(true)
	styles.Selected = selectedRowStyle

	return table.New(
		table.WithColumns([]table.Column{
			{Title: "Word", Width: promptW},
			{Title: "Answer", Width: answerW},
			{Title: "Wrong", Width: 6},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(1, height)),
		table.WithStyles(styles),
	)
}

// renderReportSummary renders the totals line.
func renderReportSummary(r drill.Report) string {
	return fmt.Sprintf("%s  %s  %s",
		promptStyle.Render(fmt.Sprintf("%d words", r.Total)),
		perfectStyle.Render(fmt.Sprintf("%d perfect", r.Perfect)),
		missHintStyle.Render(fmt.Sprintf("%d missed", r.Missed)),
	)
}

// renderMissedChart draws one bar per missed word, in report order, with a
// legend naming the worst ones. It returns "" when nothing was missed.
func renderMissedChart(r drill.Report, width int) string {
	missed := r.MissedRows()
	if len(missed) == 0 || width < 10 {
		return ""
	}

	chartWidth := min(width, max(10, len(missed)*2+1))
	maxBars := chartWidth / 2
	if len(missed) > maxBars {
		missed = missed[:maxBars]
	}

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)

	barStyle := lipgloss.NewStyle().Foreground(ColorRed).Background(ColorRed)
	for _, c := range missed {
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: c.Item.Prompt, Value: float64(c.WrongCount), Style: barStyle},
			},
		})
	}
	bc.Draw()

	var legend []string
	for i, c := range missed {
		if i == maxLegendWords {
			legend = append(legend, subtleStyle.Render(fmt.Sprintf("+%d more", len(missed)-i)))
			break
		}
		legend = append(legend, fmt.Sprintf("%s %s", c.Item.Prompt, missHintStyle.Render(fmt.Sprintf("×%d", c.WrongCount))))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render("Missed words"),
		bc.View(),
		strings.Join(legend, "  "),
	)
}
