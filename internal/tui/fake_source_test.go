package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jovid18/nihonki/internal/lesson"
)

// memSource is an in-memory lesson.Source.
type memSource struct {
	mu      sync.Mutex
	lessons map[string]*lesson.Lesson
	order   []string
	err     error
	loads   int
}

func newMemSource(lessons ...*lesson.Lesson) *memSource {
	s := &memSource{lessons: make(map[string]*lesson.Lesson)}
	for _, l := range lessons {
		s.lessons[l.ID] = l
		s.order = append(s.order, l.ID)
	}
	return s
}

func (s *memSource) List(_ context.Context) ([]lesson.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]lesson.Summary, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.lessons[id].Summary())
	}
	return out, nil
}

func (s *memSource) Load(_ context.Context, id string) (*lesson.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	l, ok := s.lessons[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", lesson.ErrNotFound, id)
	}
	cp := *l
	return &cp, nil
}

var errSourceDown = errors.New("source down")

func natureLesson() *lesson.Lesson {
	return &lesson.Lesson{
		ID:       "1",
		Title:    "Nature",
		Kanji:    []lesson.Entry{{Prob: "山", Ans: "やま"}},
		Katakana: []lesson.Entry{{Prob: "キャンプ", Ans: "camp"}},
	}
}

func riverLesson() *lesson.Lesson {
	return &lesson.Lesson{
		ID:       "2",
		Kanji:    []lesson.Entry{{Prob: "川", Ans: "かわ"}},
		Katakana: []lesson.Entry{},
	}
}

func testDeps(src lesson.Source) Deps {
	return Deps{Source: src, Seed: 7}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)
