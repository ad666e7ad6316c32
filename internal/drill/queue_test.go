package drill

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(n int) []VocabItem {
	out := make([]VocabItem, n)
	for i := range out {
		out[i] = VocabItem{Prompt: fmt.Sprintf("p%d", i), Answer: fmt.Sprintf("a%d", i)}
	}
	return out
}

// checkConservation asserts that every card is accounted for exactly once.
func checkConservation(t *testing.T, q *Queue) {
	t.Helper()

	seen := make(map[int]int)
	for _, c := range q.Pending() {
		seen[c.ID]++
	}
	for _, c := range q.Completed() {
		seen[c.ID]++
	}
	if cur, ok := q.Current(); ok {
		seen[cur.ID]++
	}

	require.Len(t, seen, q.Total(), "every card must be present")
	for id, n := range seen {
		require.Equal(t, 1, n, "card %d present %d times", id, n)
	}
	require.Equal(t, q.Total()-len(q.Completed()), q.Remaining())
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	q := New(nil, NewRand(1))

	assert.True(t, q.IsComplete())
	assert.Equal(t, PhaseComplete, q.Phase())
	assert.Equal(t, 0, q.Remaining())
	assert.Empty(t, q.Pending())
	assert.Empty(t, q.Completed())

	_, ok := q.Current()
	assert.False(t, ok)

	assert.False(t, q.Reveal())
	assert.False(t, q.MarkCorrect())
	assert.False(t, q.MarkWrong())

	r := q.Report()
	assert.Equal(t, 0, r.Total)
	assert.Equal(t, 0, r.Perfect)
	assert.Equal(t, 0, r.Missed)
}

func TestNew_InitialState(t *testing.T) {
	t.Parallel()

	q := New(items(5), NewRand(7))

	assert.False(t, q.IsComplete())
	assert.Equal(t, PhaseAsking, q.Phase())
	assert.False(t, q.Revealed())
	assert.Equal(t, 5, q.Total())
	assert.Equal(t, 5, q.Remaining())
	assert.Len(t, q.Pending(), 4)
	assert.Empty(t, q.Completed())

	cur, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, 0, cur.WrongCount)
	for _, c := range q.Pending() {
		assert.Equal(t, 0, c.WrongCount)
	}
	checkConservation(t, q)
}

func TestNew_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	in := items(6)
	before := append([]VocabItem(nil), in...)

	New(in, NewRand(3))

	assert.Equal(t, before, in)
}

func TestNew_SameSeedSameOrder(t *testing.T) {
	t.Parallel()

	a := New(items(10), NewRand(42))
	b := New(items(10), NewRand(42))

	ca, _ := a.Current()
	cb, _ := b.Current()
	assert.Equal(t, ca, cb)
	assert.Equal(t, a.Pending(), b.Pending())
}

func TestTwoCardScenario(t *testing.T) {
	t.Parallel()

	in := []VocabItem{{Prompt: "A", Answer: "1"}, {Prompt: "B", Answer: "2"}}

	// Find a seed that shows A first so the scenario reads A, B, A.
	var q *Queue
	for seed := uint64(0); seed < 64; seed++ {
		candidate := New(in, NewRand(seed))
		if cur, _ := candidate.Current(); cur.Item.Prompt == "A" {
			q = candidate
			break
		}
	}
	require.NotNil(t, q, "no seed put A first")

	require.True(t, q.Reveal())
	require.True(t, q.MarkWrong())

	cur, ok := q.Current()
	require.True(t, ok)
	assert.Equal(t, "B", cur.Item.Prompt)

	require.True(t, q.Reveal())
	require.True(t, q.MarkCorrect())

	cur, ok = q.Current()
	require.True(t, ok)
	assert.Equal(t, "A", cur.Item.Prompt)
	assert.Equal(t, 1, cur.WrongCount)

	require.True(t, q.Reveal())
	require.True(t, q.MarkCorrect())

	assert.True(t, q.IsComplete())
	completed := q.Completed()
	require.Len(t, completed, 2)
	assert.Equal(t, "B", completed[0].Item.Prompt)
	assert.Equal(t, 0, completed[0].WrongCount)
	assert.Equal(t, "A", completed[1].Item.Prompt)
	assert.Equal(t, 1, completed[1].WrongCount)
}

func TestMarkWrong_SingleCardComesStraightBack(t *testing.T) {
	t.Parallel()

	q := New([]VocabItem{{Prompt: "only", Answer: "one"}}, NewRand(1))

	for i := 1; i <= 3; i++ {
		require.True(t, q.Reveal())
		require.True(t, q.MarkWrong())

		cur, ok := q.Current()
		require.True(t, ok, "card must stay in flight")
		assert.Equal(t, "only", cur.Item.Prompt)
		assert.Equal(t, i, cur.WrongCount)
		assert.Equal(t, PhaseAsking, q.Phase(), "answer must be hidden again")
		assert.Empty(t, q.Pending())
		assert.Equal(t, 1, q.Remaining())
		assert.False(t, q.IsComplete())
	}

	require.True(t, q.Reveal())
	require.True(t, q.MarkCorrect())
	assert.True(t, q.IsComplete())

	completed := q.Completed()
	require.Len(t, completed, 1)
	assert.Equal(t, 3, completed[0].WrongCount)
}

func TestMarkWrong_GoesToTail(t *testing.T) {
	t.Parallel()

	q := New(items(4), NewRand(11))
	first, _ := q.Current()
	order := q.Pending()

	require.True(t, q.Reveal())
	require.True(t, q.MarkWrong())

	cur, _ := q.Current()
	assert.Equal(t, order[0].ID, cur.ID, "pending head becomes current")

	pending := q.Pending()
	require.Len(t, pending, 3)
	assert.Equal(t, order[1].ID, pending[0].ID)
	assert.Equal(t, order[2].ID, pending[1].ID)
	assert.Equal(t, first.ID, pending[2].ID, "missed card waits at the tail")
	assert.Equal(t, 1, pending[2].WrongCount)
}

func TestInvalidTransitionsAreNoOps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(q *Queue)
		op    func(q *Queue) bool
	}{
		{"correct before reveal", func(q *Queue) {}, (*Queue).MarkCorrect},
		{"wrong before reveal", func(q *Queue) {}, (*Queue).MarkWrong},
		{"reveal twice", func(q *Queue) { q.Reveal() }, (*Queue).Reveal},
		{"correct twice", func(q *Queue) { q.Reveal(); q.MarkCorrect() }, (*Queue).MarkCorrect},
		{"wrong after wrong", func(q *Queue) { q.Reveal(); q.MarkWrong() }, (*Queue).MarkWrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := New(items(3), NewRand(5))
			tt.setup(q)

			phase := q.Phase()
			cur, _ := q.Current()
			pending := q.Pending()
			completed := q.Completed()

			assert.False(t, tt.op(q))

			after, _ := q.Current()
			assert.Equal(t, phase, q.Phase())
			assert.Equal(t, cur, after)
			assert.Equal(t, pending, q.Pending())
			assert.Equal(t, completed, q.Completed())
		})
	}
}

func TestSessionProperties(t *testing.T) {
	t.Parallel()

	const n = 8

	for seed := uint64(0); seed < 20; seed++ {
		q := New(items(n), NewRand(seed))
		pattern := NewRand(seed + 1000)
		lastWrong := make(map[int]int)
		steps := 0

		for !q.IsComplete() {
			steps++
			require.Less(t, steps, 10_000, "session did not terminate")
			require.Less(t, len(q.Completed()), n)

			cur, ok := q.Current()
			require.True(t, ok)
			require.GreaterOrEqual(t, cur.WrongCount, lastWrong[cur.ID], "wrong count decreased")
			lastWrong[cur.ID] = cur.WrongCount

			require.True(t, q.Reveal())

			// Mark wrong about a third of the time; correct otherwise.
			if pattern.IntN(3) == 0 {
				before := q.Remaining()
				require.True(t, q.MarkWrong())
				assert.Equal(t, before, q.Remaining())

				// The missed card is at the tail, or back in flight when
				// it was the last one left.
				tail, _ := q.Current()
				if p := q.Pending(); len(p) > 0 {
					tail = p[len(p)-1]
				}
				assert.Equal(t, cur.ID, tail.ID)
				assert.Equal(t, cur.WrongCount+1, tail.WrongCount)
			} else {
				before := q.Remaining()
				require.True(t, q.MarkCorrect())
				assert.Equal(t, before-1, q.Remaining())
			}
			checkConservation(t, q)
		}

		assert.Len(t, q.Completed(), n)
		assert.Equal(t, 0, q.Remaining())
	}
}
