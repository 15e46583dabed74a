package progress

import "github.com/vytor/lexiflash/internal/models"

// Rollup averages records per record, not per calendar day: five records give
// a divisor of five regardless of the span they cover.
func Rollup(records []models.DailyActivity) models.Rollup {
	var r models.Rollup
	if len(records) == 0 {
		return r
	}

	var accuracy float64
	for i, rec := range records {
		r.TotalWords += rec.WordsStudied
		r.TotalTests += rec.TestsCompleted
		r.TotalMinutes += rec.TimeSpent
		accuracy += rec.Accuracy
		if i == 0 || rec.Date < r.From {
			r.From = rec.Date
		}
		if rec.Date > r.To {
			r.To = rec.Date
		}
	}

	n := float64(len(records))
	r.Days = len(records)
	r.AvgWordsPerDay = float64(r.TotalWords) / n
	r.AvgTestsPerDay = float64(r.TotalTests) / n
	r.AvgMinutesPerDay = float64(r.TotalMinutes) / n
	r.AvgAccuracy = round2(accuracy / n)
	return r
}
