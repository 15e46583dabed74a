// Package progress computes learning statistics from word and daily activity
// snapshots.
package progress

import (
	"math"

	"github.com/vytor/lexiflash/internal/models"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AverageRate is the mean rate of words rounded to two decimals, or 0 when
// there are none.
func AverageRate(words []models.Word) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += w.Rate
	}
	return round2(float64(total) / float64(len(words)))
}

// LevelDistribution counts words per level. All levels are present.
func LevelDistribution(words []models.Word) map[models.Level]int {
	dist := make(map[models.Level]int, len(models.Levels))
	for _, l := range models.Levels {
		dist[l] = 0
	}
	for _, w := range words {
		if _, ok := dist[w.Level]; ok {
			dist[w.Level]++
		}
	}
	return dist
}

// PartOfSpeechDistribution counts words per part of speech. All parts of
// speech are present; values outside the closed set are not counted.
func PartOfSpeechDistribution(words []models.Word) map[models.PartOfSpeech]int {
	dist := make(map[models.PartOfSpeech]int, len(models.PartsOfSpeech))
	for _, p := range models.PartsOfSpeech {
		dist[p] = 0
	}
	for _, w := range words {
		if _, ok := dist[w.PartOfSpeech]; ok {
			dist[w.PartOfSpeech]++
		}
	}
	return dist
}

// Summarize builds the collection overview. maxRate is the difficult
// threshold.
func Summarize(words []models.Word, maxRate int) models.Overview {
	o := models.Overview{
		TotalWords:               len(words),
		AverageRate:              AverageRate(words),
		LevelDistribution:        LevelDistribution(words),
		PartOfSpeechDistribution: PartOfSpeechDistribution(words),
	}
	for _, w := range words {
		if w.ReviewCount == 0 || w.LastReviewDate == nil {
			o.UnreviewedWords++
		}
		if !w.Reviewed() {
			continue
		}
		o.ReviewedWords++
		if w.Rate <= maxRate {
			o.DifficultWords++
		}
		if w.Rate >= models.MaxRate {
			o.MasteredWords++
		}
	}
	return o
}
