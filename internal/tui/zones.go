package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jovid18/nihonki/internal/drill"
)

// Clickable zone IDs.
const (
	zoneBack       = "back"
	zoneReveal     = "drill-reveal"
	zoneWrong      = "drill-wrong"
	zoneCorrect    = "drill-correct"
	zoneRestart    = "drill-restart"
	zoneStartDrill = "lesson-start"
	zoneLessonRow  = "lesson-row-"
)

// intentZones ties each drill button to the intent it dispatches.
var intentZones = []struct {
	id     string
	intent drill.Intent
}{
	{zoneReveal, drill.IntentReveal},
	{zoneWrong, drill.IntentWrong},
	{zoneCorrect, drill.IntentCorrect},
}

// mark wraps s in zone id. A nil manager disables mouse support.
func mark(z *zone.Manager, id, s string) string {
	if z == nil {
		return s
	}
	return z.Mark(id, s)
}

// clicked reports whether msg is a left click inside zone id.
func clicked(z *zone.Manager, id string, msg tea.MouseMsg) bool {
	if z == nil || !isLeftClick(msg) {
		return false
	}
	info := z.Get(id)
	return info != nil && info.InBounds(msg)
}

func isLeftClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// clickedIntent returns the intent of the drill button under msg.
func clickedIntent(z *zone.Manager, msg tea.MouseMsg) drill.Intent {
	for _, iz := range intentZones {
		if clicked(z, iz.id, msg) {
			return iz.intent
		}
	}
	return drill.IntentNone
}
