package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jovid18/nihonki/internal/lesson"
)

// lessonLoadedMsg carries the result of a lesson fetch. id identifies the
// request so a page can drop results for a lesson it has since left.
type lessonLoadedMsg struct {
	page   string
	id     string
	lesson *lesson.Lesson
	err    error
}

func loadLessonCmd(deps Deps, page, id string) tea.Cmd {
	source := deps.Source
	log := deps.logger()
	ctx, cancel := deps.fetchContext()
	return func() tea.Msg {
		defer cancel()
		l, err := source.Load(ctx, id)
		if err != nil {
			log.Warn("loading lesson failed", zap.String("id", id), zap.Error(err))
		}
		return lessonLoadedMsg{page: page, id: id, lesson: l, err: err}
	}
}

// LessonPage shows every word of one lesson.
type LessonPage struct {
	deps     Deps
	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model

	id      string
	loading bool
	err     error
	lesson  *lesson.Lesson
}

// NewLessonPage creates the lesson viewer.
func NewLessonPage(deps Deps) *LessonPage {
	return &LessonPage{
		deps:     deps,
		keys:     deps.keyMap(),
		help:     help.New(),
		spinner:  newSpinner(),
		viewport: viewport.New(80, 20),
	}
}

func (p *LessonPage) ID() string { return PageLesson }

// Enter expects the lesson ID as params.
func (p *LessonPage) Enter(params any) tea.Cmd {
	id, _ := params.(string)
	if id == "" {
		id = p.id
	}
	if id == p.id && p.lesson != nil {
		return nil
	}

	p.id = id
	p.lesson = nil
	p.err = nil
	p.loading = true
	p.viewport.GotoTop()
	return tea.Batch(p.spinner.Tick, loadLessonCmd(p.deps, PageLesson, id))
}

func (p *LessonPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case lessonLoadedMsg:
		if msg.page != PageLesson || msg.id != p.id {
			return nil, nil
		}
		p.loading = false
		p.err = msg.err
		p.lesson = msg.lesson
		return nil, nil

	case spinner.TickMsg:
		if !p.loading {
			return nil, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			return tea.Quit, nil
		case key.Matches(msg, p.keys.Back):
			return nil, navTo(PageLessons, nil)
		case key.Matches(msg, p.keys.StartDrill), key.Matches(msg, p.keys.Open):
			if p.lesson == nil {
				return nil, nil
			}
			return nil, navTo(PageDrill, p.id)
		case key.Matches(msg, p.keys.Up):
			p.viewport.ScrollUp(1)
		case key.Matches(msg, p.keys.Down):
			p.viewport.ScrollDown(1)
		case key.Matches(msg, p.keys.PageUp):
			p.viewport.HalfPageUp()
		case key.Matches(msg, p.keys.PageDown):
			p.viewport.HalfPageDown()
		}
		return nil, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return nil, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			p.viewport.ScrollUp(1)
		case tea.MouseButtonWheelDown:
			p.viewport.ScrollDown(1)
		case tea.MouseButtonLeft:
			if clicked(p.deps.Zones, zoneBack, msg) {
				return nil, navTo(PageLessons, nil)
			}
			if p.lesson != nil && clicked(p.deps.Zones, zoneStartDrill, msg) {
				return nil, navTo(PageDrill, p.id)
			}
		}
	}
	return nil, nil
}

func (p *LessonPage) View(width, height int) string {
	title := "Lesson " + p.id
	status := ""
	if p.lesson != nil {
		title = p.lesson.DisplayTitle()
		status = fmt.Sprintf("%d words", len(p.lesson.Kanji)+len(p.lesson.Katakana))
	}
	header := renderHeader(width, title, status)
	footer := renderStatusLine(p.help, width, []key.Binding{
		p.keys.Up, p.keys.Down, p.keys.StartDrill, p.keys.Back, p.keys.Quit,
	})
	bh := bodyHeight(height)

	var body string
	switch {
	case p.loading:
		body = renderLoadingPlaceholder(p.spinner, "Loading lesson...", width, bh)
	case p.err != nil:
		body = renderErrorPlaceholder(p.err, "esc: back • q: quit", width, bh)
	case p.lesson != nil:
		body = p.renderLesson(width, bh)
	}

	return layout(width, height, header, body, footer)
}

func (p *LessonPage) renderLesson(width, height int) string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		mark(p.deps.Zones, zoneStartDrill, buttonStyle(ColorRose).Render("Start drill")),
		mark(p.deps.Zones, zoneBack, buttonStyle(ColorGray).Render("Back")),
	)

	p.viewport.Width = max(0, width-4)
	p.viewport.Height = max(1, height-lipgloss.Height(buttons)-1)
	p.viewport.SetContent(renderWordList(p.lesson))

	return lipgloss.NewStyle().Padding(0, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, p.viewport.View(), "", buttons),
	)
}

func renderWordList(l *lesson.Lesson) string {
	var b strings.Builder
	writeSection := func(name string, entries []lesson.Entry) {
		b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("%s (%d)", name, len(entries))))
		b.WriteString("\n")
		if len(entries) == 0 {
			b.WriteString(subtleStyle.Render("  none"))
			b.WriteString("\n")
			return
		}

		w := 0
		for _, e := range entries {
			w = max(w, lipgloss.Width(e.Prob))
		}
		for _, e := range entries {
			pad := strings.Repeat(" ", w-lipgloss.Width(e.Prob))
			fmt.Fprintf(&b, "  %s%s  %s\n", promptStyle.Render(e.Prob), pad, subtleStyle.Render(e.Ans))
		}
	}

	writeSection("Kanji", l.Kanji)
	writeSection("Katakana", l.Katakana)
	return strings.TrimRight(b.String(), "\n")
}
