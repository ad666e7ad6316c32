package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jovid18/nihonki/internal/drill"
	"github.com/jovid18/nihonki/internal/lesson"
)

// DrillPage runs one drill session over a lesson's words.
type DrillPage struct {
	deps    Deps
	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	id       string
	loading  bool
	err      error
	lesson   *lesson.Lesson
	dispatch *drill.Dispatcher

	// set once the session completes
	report      *drill.Report
	reportTable table.Model
}

// NewDrillPage creates the drill page.
func NewDrillPage(deps Deps) *DrillPage {
	return &DrillPage{
		deps:    deps,
		keys:    deps.keyMap(),
		help:    help.New(),
		spinner: newSpinner(),
	}
}

func (p *DrillPage) ID() string { return PageDrill }

// Enter expects the lesson ID as params. The lesson is always fetched
// again so each visit starts a fresh session.
func (p *DrillPage) Enter(params any) tea.Cmd {
	id, _ := params.(string)
	if id == "" {
		id = p.id
	}

	p.id = id
	p.lesson = nil
	p.dispatch = nil
	p.report = nil
	p.err = nil
	p.loading = true
	return tea.Batch(p.spinner.Tick, loadLessonCmd(p.deps, PageDrill, id))
}

// Queue returns the running session, or nil while loading.
func (p *DrillPage) Queue() *drill.Queue {
	if p.dispatch == nil {
		return nil
	}
	return p.dispatch.Queue()
}

func (p *DrillPage) start() {
	log := p.deps.logger().With(zap.String("lesson", p.id))
	q := drill.New(p.lesson.Items(), p.deps.sessionRand(), drill.WithLogger(log))
	p.dispatch = drill.NewDispatcher(q, p.deps.drillKeys(), log)
	p.report = nil
	p.checkComplete()
}

// checkComplete builds the report the first time the queue completes.
func (p *DrillPage) checkComplete() {
	q := p.Queue()
	if q == nil || !q.IsComplete() || p.report != nil {
		return
	}
	r := q.Report()
	p.report = &r
	p.reportTable = newReportTable(r, 60, 10)
	p.deps.logger().Info("drill finished",
		zap.String("lesson", p.id),
		zap.Int("words", r.Total),
		zap.Int("perfect", r.Perfect),
		zap.Int("missed", r.Missed),
	)
}

func (p *DrillPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case lessonLoadedMsg:
		if msg.page != PageDrill || msg.id != p.id || !p.loading {
			return nil, nil
		}
		p.loading = false
		p.err = msg.err
		p.lesson = msg.lesson
		if p.err == nil {
			p.start()
		}
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

func (p *DrillPage) handleKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	if p.report != nil {
		return p.handleReportKey(msg)
	}

	if p.dispatch != nil && p.dispatch.HandleKey(msg.String()) {
		p.checkComplete()
		return nil, nil
	}

	switch {
	case key.Matches(msg, p.keys.Back):
		return nil, p.leave()
	case key.Matches(msg, p.keys.Quit):
		return tea.Quit, nil
	}
	return nil, nil
}

func (p *DrillPage) handleReportKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	switch {
	case key.Matches(msg, p.keys.Restart):
		p.start()
		return nil, nil
	case key.Matches(msg, p.keys.Back), key.Matches(msg, p.keys.Open):
		return nil, p.leave()
	case key.Matches(msg, p.keys.Quit):
		return tea.Quit, nil
	}

	var cmd tea.Cmd
	p.reportTable, cmd = p.reportTable.Update(msg)
	return cmd, nil
}

func (p *DrillPage) handleMouse(msg tea.MouseMsg) (tea.Cmd, *PageNav) {
	if clicked(p.deps.Zones, zoneBack, msg) {
		return nil, p.leave()
	}
	if p.report != nil {
		if clicked(p.deps.Zones, zoneRestart, msg) {
			p.start()
		}
		return nil, nil
	}
	if p.dispatch != nil && p.dispatch.Dispatch(clickedIntent(p.deps.Zones, msg)) {
		p.checkComplete()
	}
	return nil, nil
}

// leave drops the session and returns to the lesson viewer.
func (p *DrillPage) leave() *PageNav {
	if q := p.Queue(); q != nil && !q.IsComplete() {
		p.deps.logger().Debug("drill abandoned",
			zap.String("lesson", p.id),
			zap.Int("remaining", q.Remaining()),
		)
	}
	p.loading = false
	p.dispatch = nil
	p.report = nil
	return navTo(PageLesson, p.id)
}

func (p *DrillPage) View(width, height int) string {
	title := "Drill " + p.id
	if p.lesson != nil {
		title = "Drill · " + p.lesson.DisplayTitle()
	}

	var status string
	if q := p.Queue(); q != nil {
		status = fmt.Sprintf("Remaining: %d / %d", q.Remaining(), q.Total())
	}
	header := renderHeader(width, title, status)
	bh := bodyHeight(height)

	var body string
	var bindings []key.Binding
	switch {
	case p.loading:
		body = renderLoadingPlaceholder(p.spinner, "Loading lesson...", width, bh)
		bindings = []key.Binding{p.keys.Back, p.keys.Quit}
	case p.err != nil:
		body = renderErrorPlaceholder(p.err, "esc: back • q: quit", width, bh)
		bindings = []key.Binding{p.keys.Back, p.keys.Quit}
	case p.report != nil:
		body = p.renderReport(width, bh)
		bindings = []key.Binding{p.keys.Up, p.keys.Down, p.keys.Restart, p.keys.Back, p.keys.Quit}
	case p.dispatch != nil:
		body = p.renderCard(width, bh)
		if p.dispatch.Queue().Revealed() {
			bindings = []key.Binding{p.keys.Wrong, p.keys.Correct, p.keys.Back}
		} else {
			bindings = []key.Binding{p.keys.Reveal, p.keys.Back}
		}
	}

	footer := renderStatusLine(p.help, width, bindings)
	return layout(width, height, header, body, footer)
}

func (p *DrillPage) renderCard(width, height int) string {
	q := p.dispatch.Queue()
	card, ok := q.Current()
	if !ok {
		return ""
	}

	lines := []string{promptStyle.Render(card.Item.Prompt)}
	if card.WrongCount > 0 {
		times := "times"
		if card.WrongCount == 1 {
			times = "time"
		}
		lines = append(lines, missHintStyle.Render(fmt.Sprintf("missed %d %s", card.WrongCount, times)))
	}
	if q.Revealed() {
		lines = append(lines, "", answerStyle.Render(card.Item.Answer))
	} else {
		lines = append(lines, "", subtleStyle.Render("?"))
	}

	cardWidth := min(max(24, width/2), max(0, width-4))
	cardView := cardStyle.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	var buttons string
	if q.Revealed() {
		buttons = lipgloss.JoinHorizontal(lipgloss.Top,
			mark(p.deps.Zones, zoneWrong, buttonStyle(ColorRed).Render("Wrong "+keysLabel(p.deps.drillKeys().Wrong))),
			mark(p.deps.Zones, zoneCorrect, buttonStyle(ColorGreen).Render("Correct "+keysLabel(p.deps.drillKeys().Correct))),
		)
	} else {
		buttons = mark(p.deps.Zones, zoneReveal, buttonStyle(ColorIndigo).Render("Show answer "+keysLabel(p.deps.drillKeys().Reveal)))
	}

	block := lipgloss.JoinVertical(lipgloss.Center, cardView, "", buttons)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

func (p *DrillPage) renderReport(width, height int) string {
	r := *p.report

	heading := perfectStyle.Render("お疲れさま! Lesson complete.")
	if r.Total == 0 {
		heading = subtleStyle.Render("This lesson has no words.")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		mark(p.deps.Zones, zoneRestart, buttonStyle(ColorRose).Render("Drill again")),
		mark(p.deps.Zones, zoneBack, buttonStyle(ColorGray).Render("Back")),
	)

	contentWidth := max(0, width-4)
	chart := renderMissedChart(r, contentWidth)

	fixed := lipgloss.Height(heading) + 1 + 1 + lipgloss.Height(buttons) + 1
	if chart != "" {
		fixed += lipgloss.Height(chart) + 1
	}
	// Table height includes its header row and border.
	p.reportTable.SetWidth(contentWidth)
	p.reportTable.SetHeight(max(3, height-fixed-2))

	parts := []string{heading, renderReportSummary(r), ""}
	if r.Total > 0 {
		parts = append(parts, p.reportTable.View())
	}
	if chart != "" {
		parts = append(parts, chart)
	}
	parts = append(parts, "", buttons)

	return lipgloss.NewStyle().Padding(0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
