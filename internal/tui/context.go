package tui

import (
	"context"
	"math/rand/v2"
	"time"

	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/jovid18/nihonki/internal/drill"
	"github.com/jovid18/nihonki/internal/lesson"
	"github.com/jovid18/nihonki/internal/model"
)

// Page IDs.
const (
	PageLessons = "lessons"
	PageLesson  = "lesson"
	PageDrill   = "drill"
)

// Deps provides the collaborators shared by all pages.
type Deps struct {
	Source lesson.Source
	Keys   drill.KeyBindings
	Log    *zap.Logger
	// Zones enables mouse support. Nil disables it.
	Zones *zone.Manager
	// Seed makes every drill session use the same shuffle. Zero seeds each
	// session from the clock.
	Seed uint64
	// Timeout bounds each lesson fetch.
	Timeout time.Duration
}

func (d Deps) logger() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}

// sessionRand returns the generator for a new drill session, or nil to let
// the drill package seed one from the clock.
func (d Deps) sessionRand() *rand.Rand {
	if d.Seed == 0 {
		return nil
	}
	return drill.NewRand(d.Seed)
}

// fetchContext returns a context bounded by the configured timeout.
func (d Deps) fetchContext() (context.Context, context.CancelFunc) {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = model.DefaultRequestTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (d Deps) keyMap() KeyMap { return NewKeyMap(d.drillKeys()) }

// drillKeys returns the configured answer keys, or the defaults when none
// are set.
func (d Deps) drillKeys() drill.KeyBindings {
	if d.Keys.Reveal == nil && d.Keys.Wrong == nil && d.Keys.Correct == nil {
		return drill.DefaultKeyBindings()
	}
	return d.Keys
}
