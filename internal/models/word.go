package models

import "time"

// Level is a CEFR-style proficiency level.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels lists every level from easiest to hardest.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// Rank returns the position of the level in Levels. Unknown levels rank after C2.
func (l Level) Rank() int {
	for i, lv := range Levels {
		if lv == l {
			return i
		}
	}
	return len(Levels)
}

// Valid reports whether l is one of Levels.
func (l Level) Valid() bool {
	return l.Rank() < len(Levels)
}

type PartOfSpeech string

const (
	Noun         PartOfSpeech = "noun"
	Verb         PartOfSpeech = "verb"
	Adjective    PartOfSpeech = "adjective"
	Adverb       PartOfSpeech = "adverb"
	Pronoun      PartOfSpeech = "pronoun"
	Preposition  PartOfSpeech = "preposition"
	Conjunction  PartOfSpeech = "conjunction"
	Interjection PartOfSpeech = "interjection"
	Phrase       PartOfSpeech = "phrase"
)

var PartsOfSpeech = []PartOfSpeech{
	Noun, Verb, Adjective, Adverb, Pronoun, Preposition, Conjunction, Interjection, Phrase,
}

func (p PartOfSpeech) Valid() bool {
	for _, v := range PartsOfSpeech {
		if v == p {
			return true
		}
	}
	return false
}

// MaxRate is the top of the mastery scale.
const MaxRate = 5

type Word struct {
	ID             int64        `json:"id"`
	GUID           string       `json:"guid"`
	DictionaryID   int64        `json:"dictionary_id"`
	Text           string       `json:"text"`
	Transcription  string       `json:"transcription,omitempty"`
	Translation    string       `json:"translation,omitempty"`
	Definition     string       `json:"definition,omitempty"`
	PartOfSpeech   PartOfSpeech `json:"part_of_speech"`
	Level          Level        `json:"level"`
	Language       string       `json:"language"`
	ReviewCount    int          `json:"review_count"`
	Rate           int          `json:"rate"`
	LastReviewDate *time.Time   `json:"last_review_date"`
	CreatedAt      time.Time    `json:"created_at"`
}

// Reviewed reports whether the word has been through at least one review.
func (w Word) Reviewed() bool {
	return w.ReviewCount > 0
}

// WordFilter narrows a repository listing. Zero fields are ignored.
type WordFilter struct {
	DictionaryID int64
	SetID        int64
	Language     string
	Levels       []Level
}
