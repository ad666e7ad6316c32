package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jovid18/nihonki/internal/lesson"
)

type lessonsLoadedMsg struct {
	lessons []lesson.Summary
	err     error
}

// LessonsPage lists the available lessons.
type LessonsPage struct {
	deps    Deps
	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	loading bool
	err     error
	lessons []lesson.Summary
	cursor  int
}

// NewLessonsPage creates the lesson list page.
func NewLessonsPage(deps Deps) *LessonsPage {
	return &LessonsPage{
		deps:    deps,
		keys:    deps.keyMap(),
		help:    help.New(),
		spinner: newSpinner(),
	}
}

func (p *LessonsPage) ID() string { return PageLessons }

func (p *LessonsPage) Enter(_ any) tea.Cmd {
	p.loading = true
	p.err = nil
	return tea.Batch(p.spinner.Tick, p.loadLessonsCmd())
}

func (p *LessonsPage) loadLessonsCmd() tea.Cmd {
	source := p.deps.Source
	log := p.deps.logger()
	ctx, cancel := p.deps.fetchContext()
	return func() tea.Msg {
		defer cancel()
		lessons, err := source.List(ctx)
		if err != nil {
			log.Warn("listing lessons failed", zap.Error(err))
		}
		return lessonsLoadedMsg{lessons: lessons, err: err}
	}
}

func (p *LessonsPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case lessonsLoadedMsg:
		p.loading = false
		p.err = msg.err
		p.lessons = msg.lessons
		p.cursor = min(p.cursor, max(0, len(p.lessons)-1))
		return nil, nil

	case spinner.TickMsg:
		if !p.loading {
			return nil, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd, nil

	case tea.KeyMsg:
		return p.handleKey(msg)

	case tea.MouseMsg:
		return p.handleMouse(msg)
	}
	return nil, nil
}

func (p *LessonsPage) handleKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	switch {
	case key.Matches(msg, p.keys.Quit):
		return tea.Quit, nil
	case key.Matches(msg, p.keys.Reload):
		if p.loading {
			return nil, nil
		}
		return p.Enter(nil), nil
	}

	if p.loading || len(p.lessons) == 0 {
		return nil, nil
	}

	switch {
	case key.Matches(msg, p.keys.Up):
		p.moveCursor(-1)
	case key.Matches(msg, p.keys.Down):
		p.moveCursor(1)
	case key.Matches(msg, p.keys.Open):
		return nil, navTo(PageLesson, p.lessons[p.cursor].ID)
	case key.Matches(msg, p.keys.StartDrill):
		return nil, navTo(PageDrill, p.lessons[p.cursor].ID)
	}
	return nil, nil
}

func (p *LessonsPage) handleMouse(msg tea.MouseMsg) (tea.Cmd, *PageNav) {
	if msg.Action != tea.MouseActionPress {
		return nil, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		p.moveCursor(1)
	case tea.MouseButtonLeft:
		for i, l := range p.lessons {
			if clicked(p.deps.Zones, zoneLessonRow+l.ID, msg) {
				p.cursor = i
				return nil, navTo(PageLesson, l.ID)
			}
		}
	}
	return nil, nil
}

func (p *LessonsPage) moveCursor(delta int) {
	if len(p.lessons) == 0 {
		return
	}
	p.cursor = max(0, min(len(p.lessons)-1, p.cursor+delta))
}

// Selected returns the highlighted lesson.
func (p *LessonsPage) Selected() (lesson.Summary, bool) {
	if p.cursor < 0 || p.cursor >= len(p.lessons) {
		return lesson.Summary{}, false
	}
	return p.lessons[p.cursor], true
}

func (p *LessonsPage) View(width, height int) string {
	header := renderHeader(width, "日本語 単語", fmt.Sprintf("%d lessons", len(p.lessons)))
	status := renderStatusLine(p.help, width, []key.Binding{
		p.keys.Up, p.keys.Down, p.keys.Open, p.keys.StartDrill, p.keys.Reload, p.keys.Quit,
	})
	bh := bodyHeight(height)

	var body string
	switch {
	case p.loading:
		body = renderLoadingPlaceholder(p.spinner, "Loading lessons...", width, bh)
	case p.err != nil:
		body = renderErrorPlaceholder(p.err, "r: retry • q: quit", width, bh)
	case len(p.lessons) == 0:
		body = lipgloss.Place(width, bh, lipgloss.Center, lipgloss.Center,
			subtleStyle.Render("No lessons found"))
	default:
		body = p.renderList(width, bh)
	}

	return layout(width, height, header, body, status)
}

func (p *LessonsPage) renderList(width, height int) string {
	visible := max(1, height-2)

	// Keep the cursor on screen.
	offset := 0
	if p.cursor >= visible {
		offset = p.cursor - visible + 1
	}
	end := min(len(p.lessons), offset+visible)

	titleWidth := max(10, width-36)

	var rows []string
	rows = append(rows, titleStyle.Render("Lessons"), "")
	for i := offset; i < end; i++ {
		l := p.lessons[i]
		line := fmt.Sprintf(" %-4s %-*s %4d words  (%d kanji · %d katakana) ",
			l.ID, titleWidth, truncate(l.DisplayTitle(), titleWidth), l.Total(), l.KanjiCount, l.KatakanaCount)
		if i == p.cursor {
			line = selectedRowStyle.Render(line)
		}
		rows = append(rows, mark(p.deps.Zones, zoneLessonRow+l.ID, line))
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(rows, "\n"))
}
