package tui

import tea "github.com/charmbracelet/bubbletea"

// Page represents a top-level screen in the TUI (lesson list, lesson
// viewer, drill).
type Page interface {
	ID() string
	// Enter is called each time the page becomes active, with the params
	// of the PageNav that led to it.
	Enter(params any) tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// PageNav is returned from Update to request a page switch.
type PageNav struct {
	PageID string
	Params any
}

func navTo(pageID string, params any) *PageNav {
	return &PageNav{PageID: pageID, Params: params}
}
