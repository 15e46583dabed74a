package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/vytor/lexiflash/internal/db"
	"github.com/vytor/lexiflash/internal/models"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The pool is pinned to one connection so every query sees the same memory
// database.
func NewTestDB(t *testing.T) *sql.DB {
	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(context.Background(), sqlDB))
	return sqlDB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// MustCreateDictionary inserts a dictionary and returns its id.
func MustCreateDictionary(t *testing.T, sqlDB *sql.DB, name string) int64 {
	res, err := sqlDB.Exec(`INSERT INTO dictionaries (name, language) VALUES (?, 'en')`, name)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

// Word returns a word fixture with sensible defaults.
func Word(dictionaryID int64, text string, level models.Level, rate, reviews int) models.Word {
	w := models.Word{
		GUID:         text + "-" + string(level),
		DictionaryID: dictionaryID,
		Text:         text,
		Translation:  text + "-tr",
		PartOfSpeech: models.Noun,
		Level:        level,
		Language:     "en",
		Rate:         rate,
		ReviewCount:  reviews,
	}
	if reviews > 0 {
		last := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		w.LastReviewDate = &last
	}
	return w
}
