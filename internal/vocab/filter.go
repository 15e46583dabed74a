package vocab

import (
	"strings"

	"github.com/vytor/lexiflash/internal/models"
)

// DefaultDifficultMaxRate is the highest rate still counted as difficult.
const DefaultDifficultMaxRate = 2

func filter(words []models.Word, keep func(models.Word) bool) []models.Word {
	out := make([]models.Word, 0, len(words))
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

// FilterByLevels keeps words whose level is one of levels.
func FilterByLevels(words []models.Word, levels ...models.Level) []models.Word {
	set := make(map[models.Level]struct{}, len(levels))
	for _, l := range levels {
		set[l] = struct{}{}
	}
	return filter(words, func(w models.Word) bool {
		_, ok := set[w.Level]
		return ok
	})
}

// FilterByPartsOfSpeech keeps words whose part of speech is one of pos.
func FilterByPartsOfSpeech(words []models.Word, pos ...models.PartOfSpeech) []models.Word {
	set := make(map[models.PartOfSpeech]struct{}, len(pos))
	for _, p := range pos {
		set[p] = struct{}{}
	}
	return filter(words, func(w models.Word) bool {
		_, ok := set[w.PartOfSpeech]
		return ok
	})
}

// FilterUnreviewed keeps words with no reviews or no review date.
func FilterUnreviewed(words []models.Word) []models.Word {
	return filter(words, func(w models.Word) bool {
		return w.ReviewCount == 0 || w.LastReviewDate == nil
	})
}

// FilterDifficult keeps reviewed words rated at most maxRate. Words that were
// never reviewed are unreviewed, not difficult.
func FilterDifficult(words []models.Word, maxRate int) []models.Word {
	return filter(words, func(w models.Word) bool {
		return w.Rate <= maxRate && w.ReviewCount > 0
	})
}

// Search keeps words whose text or translation contains query, ignoring case.
// An empty query keeps everything.
func Search(words []models.Word, query string) []models.Word {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return filter(words, func(models.Word) bool { return true })
	}
	return filter(words, func(w models.Word) bool {
		return strings.Contains(strings.ToLower(w.Text), q) ||
			strings.Contains(strings.ToLower(w.Translation), q)
	})
}
