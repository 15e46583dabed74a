package models

// DateLayout is the key format of DailyActivity.Date.
const DateLayout = "2006-01-02"

// DailyActivity aggregates one calendar day of study. There is at most one
// record per Date.
type DailyActivity struct {
	Date           string  `json:"date"`
	WordsStudied   int     `json:"words_studied"`
	TestsCompleted int     `json:"tests_completed"`
	TimeSpent      int     `json:"time_spent"`
	Accuracy       float64 `json:"accuracy"`
}

// Active reports whether anything was studied that day.
func (a DailyActivity) Active() bool {
	return a.WordsStudied > 0 || a.TestsCompleted > 0
}
