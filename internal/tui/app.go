package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// App is the top-level Bubble Tea model that routes between pages.
type App struct {
	pages      map[string]Page
	activePage string
	start      PageNav
	width      int
	height     int
	zones      *zone.Manager
	forceQuit  key.Binding
}

// NewApp creates a new App with the given pages. The first page is the default.
func NewApp(zones *zone.Manager, pages ...Page) *App {
	pageMap := make(map[string]Page, len(pages))
	var firstID string
	for i, p := range pages {
		pageMap[p.ID()] = p
		if i == 0 {
			firstID = p.ID()
		}
	}
	return &App{
		pages:      pageMap,
		activePage: firstID,
		start:      PageNav{PageID: firstID},
		zones:      zones,
		forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// StartAt makes the app open on pageID with params instead of the first page.
func (a *App) StartAt(pageID string, params any) *App {
	if _, ok := a.pages[pageID]; ok {
		a.start = PageNav{PageID: pageID, Params: params}
		a.activePage = pageID
	}
	return a
}

// ActivePage returns the ID of the page currently shown.
func (a *App) ActivePage() string { return a.activePage }

func (a *App) Init() tea.Cmd {
	if p, ok := a.pages[a.activePage]; ok {
		return p.Enter(a.start.Params)
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	case tea.KeyMsg:
		if key.Matches(msg, a.forceQuit) {
			return a, tea.Quit
		}
	}

	p, ok := a.pages[a.activePage]
	if !ok {
		return a, nil
	}

	cmd, nav := p.Update(msg)

	if nav != nil {
		if next, exists := a.pages[nav.PageID]; exists {
			a.activePage = nav.PageID
			return a, tea.Batch(cmd, next.Enter(nav.Params))
		}
	}

	return a, cmd
}

func (a *App) View() string {
	p, ok := a.pages[a.activePage]
	if !ok {
		return "No active page"
	}
	if a.width <= 0 || a.height <= 0 {
		return "Initializing..."
	}

	view := p.View(a.width, a.height)
	if a.zones != nil {
		return a.zones.Scan(view)
	}
	return view
}

// New builds the nihonki app. A non-empty lessonID opens straight into a
// drill of that lesson.
func New(deps Deps, lessonID string) *App {
	app := NewApp(deps.Zones,
		NewLessonsPage(deps),
		NewLessonPage(deps),
		NewDrillPage(deps),
	)
	if lessonID != "" {
		app.StartAt(PageDrill, lessonID)
	}
	return app
}
