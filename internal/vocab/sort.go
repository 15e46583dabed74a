// Package vocab orders and narrows word collections. Every function returns a
// new slice and leaves its input untouched.
package vocab

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vytor/lexiflash/internal/models"
)

// SortByDifficulty orders words from A1 to C2. Words of equal level keep
// their relative order.
func SortByDifficulty(words []models.Word) []models.Word {
	out := slices.Clone(words)
	slices.SortStableFunc(out, func(a, b models.Word) int {
		return cmp.Compare(a.Level.Rank(), b.Level.Rank())
	})
	return out
}

// SortByProgress puts the least mastered words first, breaking ties by the
// smaller review count.
func SortByProgress(words []models.Word) []models.Word {
	out := slices.Clone(words)
	slices.SortStableFunc(out, func(a, b models.Word) int {
		if c := cmp.Compare(a.Rate, b.Rate); c != 0 {
			return c
		}
		return cmp.Compare(a.ReviewCount, b.ReviewCount)
	})
	return out
}

// SortByAlphabet orders words by headword using the collation rules of tag.
func SortByAlphabet(words []models.Word, tag language.Tag) []models.Word {
	out := slices.Clone(words)
	// Collators keep internal buffers; one per call.
	c := collate.New(tag, collate.IgnoreCase)
	slices.SortStableFunc(out, func(a, b models.Word) int {
		return c.CompareString(a.Text, b.Text)
	})
	return out
}
