package repository

import (
	"context"

	"github.com/vytor/lexiflash/internal/models"
)

// DictionaryRepository handles dictionary and word set data access.
type DictionaryRepository interface {
	Insert(ctx context.Context, d models.Dictionary) (int64, error)
	Get(ctx context.Context, id int64) (*models.Dictionary, error)
	List(ctx context.Context) ([]models.Dictionary, error)
	InsertSet(ctx context.Context, set models.WordSet) (int64, error)
	GetSet(ctx context.Context, id int64) (*models.WordSet, error)
	ListSets(ctx context.Context, dictionaryID int64) ([]models.WordSet, error)
}

// WordRepository handles word data access. Get returns nil, nil for a
// missing word.
type WordRepository interface {
	Insert(ctx context.Context, w models.Word) (int64, error)
	InsertBatch(ctx context.Context, words []models.Word) ([]int64, error)
	Get(ctx context.Context, id int64) (*models.Word, error)
	List(ctx context.Context, filter models.WordFilter) ([]models.Word, error)
	UpdateProgress(ctx context.Context, w models.Word) error
	AddToSet(ctx context.Context, setID, wordID int64) error
}

// ActivityRepository handles daily activity records keyed by date.
type ActivityRepository interface {
	Upsert(ctx context.Context, a models.DailyActivity) error
	AddWordsStudied(ctx context.Context, date string, n int) error
	List(ctx context.Context, from, to string) ([]models.DailyActivity, error)
}
