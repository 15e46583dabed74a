package services

import "golang.org/x/text/language"

// PracticeConfig holds the tunables shared by word and stats services.
type PracticeConfig struct {
	DefaultSize      int
	MaxSize          int
	DifficultMaxRate int
	Collation        language.Tag
}
