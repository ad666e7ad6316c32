package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jovid18/nihonki/internal/drill"
)

// KeyMap defines the navigation key bindings with built-in help text.
// Drill answers are resolved by drill.KeyBindings; Reveal, Wrong and
// Correct here only describe them in the help line.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Back      key.Binding

	// Lists
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Reload   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Lesson and drill
	StartDrill key.Binding
	Restart    key.Binding
	Reveal     key.Binding
	Wrong      key.Binding
	Correct    key.Binding
}

// NewKeyMap returns the key map for the given drill bindings.
func NewKeyMap(b drill.KeyBindings) KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),

		StartDrill: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "drill"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "drill again"),
		),
		Reveal:  intentBinding(b.Reveal, "reveal"),
		Wrong:   intentBinding(b.Wrong, "wrong"),
		Correct: intentBinding(b.Correct, "correct"),
	}
}

func intentBinding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keysLabel(keys), desc),
	)
}

// keysLabel renders key names for help text: "enter/space", "1/←".
func keysLabel(keys []string) string {
	var labels []string
	seen := make(map[string]bool)
	for _, k := range keys {
		l := keyLabel(k)
		if seen[l] {
			continue
		}
		seen[l] = true
		labels = append(labels, l)
	}
	return strings.Join(labels, "/")
}

func keyLabel(k string) string {
	switch k {
	case " ", "space":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	default:
		return k
	}
}
