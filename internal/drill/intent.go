package drill

import (
	"slices"

	"go.uber.org/zap"
)

// Intent is a learner action, independent of whether it came from a key
// press or a click.
type Intent int

const (
	IntentNone Intent = iota
	IntentReveal
	IntentWrong
	IntentCorrect
)

func (i Intent) String() string {
	switch i {
	case IntentReveal:
		return "reveal"
	case IntentWrong:
		return "wrong"
	case IntentCorrect:
		return "correct"
	default:
		return "none"
	}
}

// KeyBindings maps key names to intents. Key names use the terminal
// convention: "enter", " " for space, "left", "right", or a literal rune.
type KeyBindings struct {
	Reveal  []string `mapstructure:"reveal" validate:"min=1,dive,required"`
	Wrong   []string `mapstructure:"wrong" validate:"min=1,dive,required"`
	Correct []string `mapstructure:"correct" validate:"min=1,dive,required"`
}

// DefaultKeyBindings returns Enter/Space to reveal, 1/Left for wrong and
// 2/Right for correct.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Reveal:  []string{"enter", " ", "space"},
		Wrong:   []string{"1", "left"},
		Correct: []string{"2", "right"},
	}
}

// Resolve returns the intent bound to key in the given phase. Reveal keys
// only count while the answer is hidden and mark keys only while it is
// shown, so a key bound to both resolves by phase. Nothing resolves once
// the session is complete.
func (b KeyBindings) Resolve(key string, phase Phase) Intent {
	switch phase {
	case PhaseAsking:
		if slices.Contains(b.Reveal, key) {
			return IntentReveal
		}
	case PhaseRevealed:
		if slices.Contains(b.Wrong, key) {
			return IntentWrong
		}
		if slices.Contains(b.Correct, key) {
			return IntentCorrect
		}
	}
	return IntentNone
}

// Dispatcher is the single entry point for learner input. Keyboard and
// pointer handlers both end up in Dispatch.
type Dispatcher struct {
	queue *Queue
	keys  KeyBindings
	log   *zap.Logger
}

// NewDispatcher returns a dispatcher driving queue.
func NewDispatcher(queue *Queue, keys KeyBindings, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{queue: queue, keys: keys, log: log}
}

// Queue returns the queue the dispatcher drives.
func (d *Dispatcher) Queue() *Queue { return d.queue }

// Keys returns the active key bindings.
func (d *Dispatcher) Keys() KeyBindings { return d.keys }

// Dispatch applies intent if the current phase allows it and reports
// whether the queue changed. Intents that do not fit the phase are dropped.
func (d *Dispatcher) Dispatch(intent Intent) bool {
	phase := d.queue.Phase()
	if !allowed(intent, phase) {
		if intent != IntentNone {
			d.log.Debug("dropped intent",
				zap.Stringer("intent", intent),
				zap.Stringer("phase", phase),
			)
		}
		return false
	}

	switch intent {
	case IntentReveal:
		return d.queue.Reveal()
	case IntentWrong:
		return d.queue.MarkWrong()
	case IntentCorrect:
		return d.queue.MarkCorrect()
	}
	return false
}

// HandleKey resolves key against the bindings and dispatches the result.
func (d *Dispatcher) HandleKey(key string) bool {
	return d.Dispatch(d.keys.Resolve(key, d.queue.Phase()))
}

func allowed(intent Intent, phase Phase) bool {
	switch intent {
	case IntentReveal:
		return phase == PhaseAsking
	case IntentWrong, IntentCorrect:
		return phase == PhaseRevealed
	default:
		return false
	}
}
