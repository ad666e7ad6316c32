package drill

import (
	"math/rand/v2"
	"slices"

	"go.uber.org/zap"
)

// Phase is the state of the card in flight.
type Phase int

const (
	PhaseAsking   Phase = iota // current card shown, answer hidden
	PhaseRevealed              // current card shown, answer visible
	PhaseComplete              // no card in flight; every card was answered correctly
)

func (p Phase) String() string {
	switch p {
	case PhaseAsking:
		return "asking"
	case PhaseRevealed:
		return "revealed"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Queue holds the state of one drill session. The current card, the
// reveal flag, pending and completed change together and only through
// Reveal, MarkCorrect and MarkWrong.
type Queue struct {
	phase     Phase
	current   Card // meaningful unless phase == PhaseComplete
	pending   []Card
	completed []Card
	total     int

	log *zap.Logger
}

// Option configures a Queue.
type Option func(*Queue)

// WithLogger sets the logger used to record rejected transitions.
func WithLogger(log *zap.Logger) Option {
	return func(q *Queue) {
		if log != nil {
			q.log = log
		}
	}
}

// New starts a session over items. Cards are shuffled with rng; a nil rng
// falls back to a time-seeded generator. An empty item list yields a queue
// that is already complete.
func New(items []VocabItem, rng *rand.Rand, opts ...Option) *Queue {
	if rng == nil {
		rng = timeSeededRand()
	}

	q := &Queue{
		total:     len(items),
		completed: make([]Card, 0, len(items)),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(q)
	}

	cards := Shuffle(rng, newCards(items))
	if len(cards) == 0 {
		q.phase = PhaseComplete
		return q
	}

	q.current = cards[0]
	q.pending = cards[1:]
	q.phase = PhaseAsking

	q.log.Debug("drill session started", zap.Int("cards", q.total))
	return q
}

// Reveal shows the answer of the current card.
func (q *Queue) Reveal() bool {
	if q.phase != PhaseAsking {
		q.reject("reveal")
		return false
	}
	q.phase = PhaseRevealed
	return true
}

// MarkCorrect moves the current card to the completed ledger and advances
// to the next pending card. When nothing is pending the session completes.
func (q *Queue) MarkCorrect() bool {
	if q.phase != PhaseRevealed {
		q.reject("mark correct")
		return false
	}

	q.completed = append(q.completed, q.current)

	if len(q.pending) == 0 {
		q.current = Card{}
		q.phase = PhaseComplete
		q.log.Debug("drill session complete", zap.Int("cards", q.total))
		return true
	}

	q.advance()
	return true
}

// MarkWrong sends the current card to the tail of the pending queue with its
// wrong count incremented and advances to the pending head. If the current
// card was the only one left, it comes straight back as the next card.
func (q *Queue) MarkWrong() bool {
	if q.phase != PhaseRevealed {
		q.reject("mark wrong")
		return false
	}

	missed := q.current
	missed.WrongCount++
	q.pending = append(q.pending, missed)

	q.advance()
	return true
}

// advance pops the pending head into the current slot. pending must be
// non-empty.
func (q *Queue) advance() {
	q.current = q.pending[0]
	q.pending = q.pending[1:]
	q.phase = PhaseAsking
}

func (q *Queue) reject(op string) {
	q.log.Debug("ignored drill transition",
		zap.String("op", op),
		zap.Stringer("phase", q.phase),
	)
}

// IsComplete reports whether every card has been answered correctly.
func (q *Queue) IsComplete() bool { return q.phase == PhaseComplete }

// Phase returns the current phase.
func (q *Queue) Phase() Phase { return q.phase }

// Revealed reports whether the answer of the current card is visible.
func (q *Queue) Revealed() bool { return q.phase == PhaseRevealed }

// Current returns the card in flight. ok is false once the session is
// complete.
func (q *Queue) Current() (card Card, ok bool) {
	if q.phase == PhaseComplete {
		return Card{}, false
	}
	return q.current, true
}

// Remaining is the number of cards not yet answered correctly, including
// the one in flight.
func (q *Queue) Remaining() int {
	if q.phase == PhaseComplete {
		return len(q.pending)
	}
	return len(q.pending) + 1
}

// Total is the number of cards the session started with.
func (q *Queue) Total() int { return q.total }

// Pending returns a copy of the cards waiting behind the current one, in
// the order they will be shown.
func (q *Queue) Pending() []Card { return slices.Clone(q.pending) }

// Completed returns a copy of the completed ledger in completion order.
func (q *Queue) Completed() []Card { return slices.Clone(q.completed) }

// Report builds the ranked summary of the completed ledger.
func (q *Queue) Report() Report { return BuildReport(q.completed) }
