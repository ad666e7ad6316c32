package drill

import (
	"math/rand/v2"
	"slices"
	"time"
)

// Shuffle returns a uniformly random permutation of items using the
// Fisher-Yates algorithm. The input slice is not modified.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := slices.Clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NewRand returns a generator whose sequence is fully determined by seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func timeSeededRand() *rand.Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}
