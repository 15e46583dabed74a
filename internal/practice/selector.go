package practice

import (
	"math/rand/v2"

	"github.com/vytor/lexiflash/internal/models"
)

// Selection weight tunables.
const (
	// RateScale minus a word's rate is its base weight: rate 0 weighs 6, rate 5 weighs 1.
	RateScale = 6
	// UnreviewedBoost multiplies the base weight of words never reviewed.
	UnreviewedBoost = 3
	// MinWeight keeps every word selectable even with an out-of-range rate.
	MinWeight = 1
)

// Weight is the relative chance of w being drawn for practice.
func Weight(w models.Word) int {
	weight := RateScale - w.Rate
	if w.ReviewCount == 0 {
		weight *= UnreviewedBoost
	}
	return max(weight, MinWeight)
}

// Select draws up to n words from pool without replacement, each draw
// proportional to Weight among the words still left. The result is in draw
// order. Asking for the whole pool or more returns a shuffle of it.
func Select(pool []models.Word, n int, rng *rand.Rand) []models.Word {
	if n <= 0 || len(pool) == 0 {
		return []models.Word{}
	}
	if n >= len(pool) {
		return Shuffle(pool, rng)
	}

	remaining := make([]models.Word, len(pool))
	weights := make([]int, len(pool))
	total := 0
	for i, w := range pool {
		remaining[i] = w
		weights[i] = Weight(w)
		total += weights[i]
	}

	out := make([]models.Word, 0, n)
	for len(out) < n {
		pick := pickIndex(weights, total, rng)
		out = append(out, remaining[pick])
		total -= weights[pick]
		remaining = append(remaining[:pick], remaining[pick+1:]...)
		weights = append(weights[:pick], weights[pick+1:]...)
	}
	return out
}

// pickIndex returns the first index whose cumulative weight exceeds a uniform
// draw in [0, total).
func pickIndex(weights []int, total int, rng *rand.Rand) int {
	r := intN(rng, total)
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}
