package practice

import (
	"time"

	"github.com/vytor/lexiflash/internal/models"
)

// ApplyReview records one review of word with the given rate (0=not
// mastered, 5=fully mastered) and returns the updated copy.
func ApplyReview(word models.Word, rate int, now time.Time) models.Word {
	rate = min(max(rate, 0), models.MaxRate)

	word.Rate = rate
	word.ReviewCount++
	reviewed := now
	word.LastReviewDate = &reviewed
	return word
}
