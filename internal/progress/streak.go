package progress

import (
	"slices"
	"time"

	"github.com/vytor/lexiflash/internal/models"
)

const day = 24 * time.Hour

// civilDate drops the clock and zone of t, keeping its calendar date.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type datedActivity struct {
	date time.Time
	rec  models.DailyActivity
}

// CalculateStreak counts consecutive active days ending today. Records are
// walked newest first; each must fall on the cursor day or the day before it
// and show activity, otherwise the walk stops. Records after today or with
// malformed dates are ignored.
func CalculateStreak(records []models.DailyActivity, today time.Time) int {
	if len(records) == 0 {
		return 0
	}
	cursor := civilDate(today)

	dated := make([]datedActivity, 0, len(records))
	for _, r := range records {
		d, err := time.Parse(models.DateLayout, r.Date)
		if err != nil || d.After(cursor) {
			continue
		}
		dated = append(dated, datedActivity{date: d, rec: r})
	}
	slices.SortFunc(dated, func(a, b datedActivity) int {
		return b.date.Compare(a.date)
	})

	streak := 0
	for _, d := range dated {
		gap := int(cursor.Sub(d.date) / day)
		if gap > 1 || !d.rec.Active() {
			break
		}
		streak++
		cursor = d.date
	}
	return streak
}

// WeekDates returns the first and last date keys of the seven days ending on
// today.
func WeekDates(today time.Time) (from, to string) {
	end := civilDate(today)
	return end.AddDate(0, 0, -6).Format(models.DateLayout), end.Format(models.DateLayout)
}
