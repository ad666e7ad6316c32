package drill

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShuffle_EdgeCases(t *testing.T) {
	t.Parallel()

	rng := NewRand(1)

	assert.Empty(t, Shuffle(rng, []int{}))
	assert.Nil(t, Shuffle[int](rng, nil))
	assert.Equal(t, []string{"x"}, Shuffle(rng, []string{"x"}))
}

func TestShuffle_IsPermutation(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	before := append([]int(nil), in...)

	out := Shuffle(NewRand(99), in)

	assert.Equal(t, before, in, "input must not be modified")
	assert.ElementsMatch(t, in, out)
}

func TestShuffle_Uniform(t *testing.T) {
	t.Parallel()

	const trials = 60_000
	rng := NewRand(2024)
	counts := make(map[string]int)

	for i := 0; i < trials; i++ {
		counts[fmt.Sprint(Shuffle(rng, []int{1, 2, 3}))]++
	}

	if len(counts) != 6 {
		t.Fatalf("got %d distinct permutations, want 6: %v", len(counts), counts)
	}

	// Chi-square with 5 degrees of freedom; 20.52 is the p=0.001 critical value.
	expected := float64(trials) / 6
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	if chi2 > 20.52 {
		t.Errorf("chi-square = %.2f, permutations not uniform: %v", chi2, counts)
	}
}
