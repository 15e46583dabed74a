package vocab_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/vytor/lexiflash/internal/models"
	"github.com/vytor/lexiflash/internal/vocab"
)

func reviewed(t time.Time) *time.Time { return &t }

func sampleWords() []models.Word {
	last := reviewed(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	return []models.Word{
		{ID: 1, Text: "zebra", Translation: "cebra", Level: models.LevelB2, PartOfSpeech: models.Noun, Rate: 4, ReviewCount: 3, LastReviewDate: last},
		{ID: 2, Text: "apple", Translation: "manzana", Level: models.LevelA1, PartOfSpeech: models.Noun, Rate: 1, ReviewCount: 5, LastReviewDate: last},
		{ID: 3, Text: "Run", Translation: "correr", Level: models.LevelA2, PartOfSpeech: models.Verb, Rate: 1, ReviewCount: 2, LastReviewDate: last},
		{ID: 4, Text: "ubiquitous", Translation: "ubicuo", Level: models.LevelC2, PartOfSpeech: models.Adjective},
		{ID: 5, Text: "quickly", Translation: "rapidamente", Level: models.LevelA2, PartOfSpeech: models.Adverb, Rate: 2, ReviewCount: 1},
		{ID: 6, Text: "ephemeral", Translation: "efimero", Level: models.LevelC1, PartOfSpeech: models.Adjective, Rate: 5, ReviewCount: 0},
	}
}

func ids(words []models.Word) []int64 {
	out := make([]int64, len(words))
	for i, w := range words {
		out[i] = w.ID
	}
	return out
}

func TestSortByDifficulty(t *testing.T) {
	words := sampleWords()
	sorted := vocab.SortByDifficulty(words)

	assert.Equal(t, []int64{2, 3, 5, 1, 6, 4}, ids(sorted), "equal levels keep input order")
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, ids(words), "input must not be reordered")
}

func TestSortByProgress_Ordering(t *testing.T) {
	sorted := vocab.SortByProgress(sampleWords())

	require.Len(t, sorted, 6)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			a, b := sorted[i], sorted[j]
			ok := a.Rate < b.Rate || (a.Rate == b.Rate && a.ReviewCount <= b.ReviewCount)
			assert.True(t, ok, "word %d must not precede word %d", a.ID, b.ID)
		}
	}
	assert.Equal(t, int64(4), sorted[0].ID)
	assert.Equal(t, []int64{3, 2}, ids(sorted[1:3]), "ties broken by fewer reviews")
}

func TestSortByAlphabet(t *testing.T) {
	words := []models.Word{
		{ID: 1, Text: "éclair"},
		{ID: 2, Text: "Zebra"},
		{ID: 3, Text: "apple"},
		{ID: 4, Text: "eclipse"},
	}

	sorted := vocab.SortByAlphabet(words, language.English)

	assert.Equal(t, []int64{3, 1, 4, 2}, ids(sorted))
}

func TestFilterByLevels(t *testing.T) {
	words := sampleWords()

	got := vocab.FilterByLevels(words, models.LevelA2, models.LevelC2)
	assert.ElementsMatch(t, []int64{3, 4, 5}, ids(got))

	assert.Empty(t, vocab.FilterByLevels(words))
	assert.Empty(t, vocab.FilterByLevels(nil, models.LevelA1))
}

func TestFilterByPartsOfSpeech(t *testing.T) {
	words := sampleWords()

	got := vocab.FilterByPartsOfSpeech(words, models.Adjective)
	assert.Equal(t, []int64{4, 6}, ids(got))
	assert.Empty(t, vocab.FilterByPartsOfSpeech(words))
}

func TestFilterUnreviewed(t *testing.T) {
	got := vocab.FilterUnreviewed(sampleWords())

	// 5 has a review count but no date; either condition qualifies.
	assert.Equal(t, []int64{4, 5, 6}, ids(got))
}

func TestFilterDifficult(t *testing.T) {
	got := vocab.FilterDifficult(sampleWords(), vocab.DefaultDifficultMaxRate)

	assert.Equal(t, []int64{2, 3, 5}, ids(got))
}

func TestFilterDifficult_ExcludesUnreviewed(t *testing.T) {
	fresh := models.Word{ID: 9, Rate: 0, ReviewCount: 0}

	assert.Empty(t, vocab.FilterDifficult([]models.Word{fresh}, vocab.DefaultDifficultMaxRate))
	assert.Len(t, vocab.FilterUnreviewed([]models.Word{fresh}), 1)
}

func TestFilters_Idempotent(t *testing.T) {
	words := sampleWords()
	filters := map[string]func([]models.Word) []models.Word{
		"levels":     func(w []models.Word) []models.Word { return vocab.FilterByLevels(w, models.LevelA2) },
		"pos":        func(w []models.Word) []models.Word { return vocab.FilterByPartsOfSpeech(w, models.Noun) },
		"unreviewed": vocab.FilterUnreviewed,
		"difficult":  func(w []models.Word) []models.Word { return vocab.FilterDifficult(w, 2) },
		"search":     func(w []models.Word) []models.Word { return vocab.Search(w, "e") },
	}

	for name, f := range filters {
		t.Run(name, func(t *testing.T) {
			once := f(words)
			assert.Equal(t, once, f(once))
		})
	}
}

func TestSearch(t *testing.T) {
	words := sampleWords()

	assert.Equal(t, []int64{3}, ids(vocab.Search(words, "run")))
	assert.Equal(t, []int64{2}, ids(vocab.Search(words, "MANZ")))
	assert.Len(t, vocab.Search(words, "  "), len(words))
}

func TestApply(t *testing.T) {
	words := sampleWords()

	got := vocab.Apply(words, vocab.Query{
		Status:  vocab.StatusDifficult,
		MaxRate: 2,
		Levels:  []models.Level{models.LevelA1, models.LevelA2},
		Sort:    vocab.SortProgress,
	})
	assert.Equal(t, []int64{3, 2, 5}, ids(got))

	none := vocab.Apply(words, vocab.Query{Levels: []models.Level{}})
	assert.Empty(t, none)

	all := vocab.Apply(words, vocab.Query{})
	assert.Equal(t, ids(words), ids(all))
}

func TestParseSortOrder(t *testing.T) {
	for _, s := range []string{"", "difficulty", "progress", "alphabet"} {
		_, err := vocab.ParseSortOrder(s)
		assert.NoError(t, err, s)
	}
	_, err := vocab.ParseSortOrder("random")
	assert.Error(t, err)

	_, err = vocab.ParseStatus("difficult")
	assert.NoError(t, err)
	_, err = vocab.ParseStatus("new")
	assert.Error(t, err)
}
