// Package lesson loads lesson word lists from a directory or over HTTP.
//
// A lesson document has two word lists, kanji and katakana. Each entry is a
// prompt ("prob") and its answer ("ans"):
//
//	{
//	  "title": "Greetings",
//	  "kanji":    [{"prob": "こんにちは", "ans": "hello"}],
//	  "katakana": [{"prob": "コーヒー", "ans": "coffee"}]
//	}
package lesson

import (
	"context"
	"errors"

	"github.com/jovid18/nihonki/internal/drill"
)

var (
	ErrNotFound          = errors.New("lesson: not found")
	ErrInvalidID         = errors.New("lesson: invalid id")
	ErrInvalid           = errors.New("lesson: invalid document")
	ErrUnsupportedFormat = errors.New("lesson: unsupported format")
	ErrUnexpectedStatus  = errors.New("lesson: unexpected http status")
)

// Entry is one word as stored in a lesson file.
type Entry struct {
	Prob string `json:"prob" yaml:"prob" validate:"required"`
	Ans  string `json:"ans" yaml:"ans" validate:"required"`
}

// Lesson is a parsed lesson document.
type Lesson struct {
	ID       string  `json:"-" yaml:"-"`
	Title    string  `json:"title,omitempty" yaml:"title,omitempty"`
	Kanji    []Entry `json:"kanji" yaml:"kanji" validate:"dive"`
	Katakana []Entry `json:"katakana" yaml:"katakana" validate:"dive"`
}

// Items returns the drill items of the lesson, kanji first.
func (l *Lesson) Items() []drill.VocabItem {
	items := make([]drill.VocabItem, 0, len(l.Kanji)+len(l.Katakana))
	for _, e := range l.Kanji {
		items = append(items, drill.VocabItem{Prompt: e.Prob, Answer: e.Ans})
	}
	for _, e := range l.Katakana {
		items = append(items, drill.VocabItem{Prompt: e.Prob, Answer: e.Ans})
	}
	return items
}

// Summary describes a lesson without its words.
func (l *Lesson) Summary() Summary {
	return Summary{
		ID:            l.ID,
		Title:         l.Title,
		KanjiCount:    len(l.Kanji),
		KatakanaCount: len(l.Katakana),
	}
}

// DisplayTitle returns the title, or a generic one built from the ID.
func (l *Lesson) DisplayTitle() string {
	return displayTitle(l.ID, l.Title)
}

// Summary is the list entry for a lesson.
type Summary struct {
	ID            string `json:"id"`
	Title         string `json:"title,omitempty"`
	KanjiCount    int    `json:"kanji"`
	KatakanaCount int    `json:"katakana"`
}

// Total is the number of words in the lesson.
func (s Summary) Total() int { return s.KanjiCount + s.KatakanaCount }

// DisplayTitle returns the title, or a generic one built from the ID.
func (s Summary) DisplayTitle() string {
	return displayTitle(s.ID, s.Title)
}

func displayTitle(id, title string) string {
	if title != "" {
		return title
	}
	return "Lesson " + id
}

// Source provides lessons by ID.
type Source interface {
	List(ctx context.Context) ([]Summary, error)
	Load(ctx context.Context, id string) (*Lesson, error)
}
