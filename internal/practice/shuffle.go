// Package practice builds practice sessions: weighted word selection,
// shuffling, review updates and multiple-choice questions.
package practice

import (
	"math/rand/v2"
	"slices"
)

// intN draws from rng, or from the global source when rng is nil.
func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}

// Shuffle returns a uniformly random permutation of items. items is not
// modified.
func Shuffle[T any](items []T, rng *rand.Rand) []T {
	out := slices.Clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := intN(rng, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
