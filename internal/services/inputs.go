package services

import (
	"github.com/vytor/lexiflash/internal/models"
	"github.com/vytor/lexiflash/internal/vocab"
)

type CreateDictionaryInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Language string `json:"language" validate:"required,bcp47_language_tag"`
}

type CreateSetInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CreateWordInput struct {
	DictionaryID  int64  `json:"dictionary_id" validate:"required,gt=0"`
	Text          string `json:"text" validate:"required,max=200"`
	Transcription string `json:"transcription" validate:"max=200"`
	Translation   string `json:"translation" validate:"max=500"`
	Definition    string `json:"definition" validate:"max=2000"`
	PartOfSpeech  string `json:"part_of_speech" validate:"required,pos"`
	Level         string `json:"level" validate:"required,level"`
}

type ReviewInput struct {
	Rate int `json:"rate" validate:"min=0,max=5"`
}

type ActivityInput struct {
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"`
	WordsStudied   int     `json:"words_studied" validate:"min=0"`
	TestsCompleted int     `json:"tests_completed" validate:"min=0"`
	TimeSpent      int     `json:"time_spent" validate:"min=0"`
	Accuracy       float64 `json:"accuracy" validate:"min=0,max=100"`
}

type DateRange struct {
	From string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// WordQuery combines the repository prefilter with the in-memory pipeline.
// A nil MaxRate means the configured difficulty threshold.
type WordQuery struct {
	DictionaryID  int64                 `json:"dictionary_id" validate:"gte=0"`
	SetID         int64                 `json:"set_id" validate:"gte=0"`
	Language      string                `json:"language" validate:"omitempty,bcp47_language_tag"`
	Search        string                `json:"q" validate:"max=200"`
	Levels        []models.Level        `json:"level" validate:"omitempty,dive,level"`
	PartsOfSpeech []models.PartOfSpeech `json:"pos" validate:"omitempty,dive,pos"`
	Status        vocab.Status          `json:"status" validate:"omitempty,oneof=unreviewed difficult"`
	MaxRate       *int                  `json:"max_rate" validate:"omitempty,min=0,max=5"`
	Sort          vocab.SortOrder       `json:"sort" validate:"omitempty,oneof=difficulty progress alphabet"`
	Limit         int                   `json:"limit" validate:"min=0"`
	Offset        int                   `json:"offset" validate:"min=0"`
}
