package vocab

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/vytor/lexiflash/internal/models"
)

// SortOrder names the ordering Apply uses after filtering.
type SortOrder string

const (
	SortNone       SortOrder = ""
	SortDifficulty SortOrder = "difficulty"
	SortProgress   SortOrder = "progress"
	SortAlphabet   SortOrder = "alphabet"
)

// ParseSortOrder accepts the wire names of the sort orders.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case SortNone, SortDifficulty, SortProgress, SortAlphabet:
		return SortOrder(s), nil
	}
	return SortNone, fmt.Errorf("unknown sort order %q", s)
}

// Status restricts a listing by review state.
type Status string

const (
	StatusAny        Status = ""
	StatusUnreviewed Status = "unreviewed"
	StatusDifficult  Status = "difficult"
)

// ParseStatus accepts the wire names of the review states.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAny, StatusUnreviewed, StatusDifficult:
		return Status(s), nil
	}
	return StatusAny, fmt.Errorf("unknown status %q", s)
}

// Query describes an in-memory filter and sort pipeline. A nil Levels or
// PartsOfSpeech slice means no restriction; a non-nil empty one matches
// nothing.
type Query struct {
	Search        string
	Levels        []models.Level
	PartsOfSpeech []models.PartOfSpeech
	Status        Status
	MaxRate       int
	Sort          SortOrder
	Collation     language.Tag
}

// Apply runs the filters of q in a fixed order and then sorts once.
func Apply(words []models.Word, q Query) []models.Word {
	out := Search(words, q.Search)
	if q.Levels != nil {
		out = FilterByLevels(out, q.Levels...)
	}
	if q.PartsOfSpeech != nil {
		out = FilterByPartsOfSpeech(out, q.PartsOfSpeech...)
	}
	switch q.Status {
	case StatusUnreviewed:
		out = FilterUnreviewed(out)
	case StatusDifficult:
		out = FilterDifficult(out, q.MaxRate)
	}

	switch q.Sort {
	case SortDifficulty:
		out = SortByDifficulty(out)
	case SortProgress:
		out = SortByProgress(out)
	case SortAlphabet:
		out = SortByAlphabet(out, q.Collation)
	}
	return out
}
