package models

type Overview struct {
	TotalWords               int                  `json:"total_words"`
	ReviewedWords            int                  `json:"reviewed_words"`
	UnreviewedWords          int                  `json:"unreviewed_words"`
	DifficultWords           int                  `json:"difficult_words"`
	MasteredWords            int                  `json:"mastered_words"`
	AverageRate              float64              `json:"average_rate"`
	LevelDistribution        map[Level]int        `json:"level_distribution"`
	PartOfSpeechDistribution map[PartOfSpeech]int `json:"part_of_speech_distribution"`
}

type Streak struct {
	Days  int    `json:"days"`
	Today string `json:"today"`
}

// Rollup holds per-day averages over a set of activity records. Averages are
// taken over the number of records, not calendar days.
type Rollup struct {
	Days             int     `json:"days"`
	TotalWords       int     `json:"total_words"`
	TotalTests       int     `json:"total_tests"`
	TotalMinutes     int     `json:"total_minutes"`
	AvgWordsPerDay   float64 `json:"avg_words_per_day"`
	AvgTestsPerDay   float64 `json:"avg_tests_per_day"`
	AvgMinutesPerDay float64 `json:"avg_minutes_per_day"`
	AvgAccuracy      float64 `json:"avg_accuracy"`
	From             string  `json:"from,omitempty"`
	To               string  `json:"to,omitempty"`
}

type QuizQuestion struct {
	WordID       int64    `json:"word_id"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}
