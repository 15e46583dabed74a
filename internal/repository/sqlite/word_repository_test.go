package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/vytor/lexiflash/internal/models"
	"github.com/vytor/lexiflash/internal/repository"
	"github.com/vytor/lexiflash/internal/repository/sqlite"
	"github.com/vytor/lexiflash/internal/testutil"
)

type WordRepositorySuite struct {
	suite.Suite
	db    *sql.DB
	repo  repository.WordRepository
	dicts repository.DictionaryRepository
}

func (s *WordRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewWordRepository(s.db)
	s.dicts = sqlite.NewDictionaryRepository(s.db)
}

func (s *WordRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *WordRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	dictID := testutil.MustCreateDictionary(s.T(), s.db, "English")

	w := testutil.Word(dictID, "apple", models.LevelA1, 0, 0)
	w.Transcription = "ˈæp.əl"
	w.Definition = "a round fruit"
	id, err := s.repo.Insert(ctx, w)
	s.Require().NoError(err)
	s.Require().NotZero(id)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(id, got.ID)
	s.Equal("apple", got.Text)
	s.Equal("ˈæp.əl", got.Transcription)
	s.Equal(models.LevelA1, got.Level)
	s.Equal(models.Noun, got.PartOfSpeech)
	s.Nil(got.LastReviewDate)
	s.False(got.CreatedAt.IsZero())
}

func (s *WordRepositorySuite) TestGetMissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), 999)
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *WordRepositorySuite) TestInsertRejectsDuplicateGUID() {
	ctx := context.Background()
	dictID := testutil.MustCreateDictionary(s.T(), s.db, "English")

	w := testutil.Word(dictID, "apple", models.LevelA1, 0, 0)
	_, err := s.repo.Insert(ctx, w)
	s.Require().NoError(err)
	_, err = s.repo.Insert(ctx, w)
	s.Error(err)
}

func (s *WordRepositorySuite) TestInsertBatchIsAtomic() {
	ctx := context.Background()
	dictID := testutil.MustCreateDictionary(s.T(), s.db, "English")

	ok := []models.Word{
		testutil.Word(dictID, "one", models.LevelA1, 0, 0),
		testutil.Word(dictID, "two", models.LevelA2, 0, 0),
	}
	ids, err := s.repo.InsertBatch(ctx, ok)
	s.Require().NoError(err)
	s.Len(ids, 2)

	// The second row collides with "one" and rolls back "three".
	bad := []models.Word{
		testutil.Word(dictID, "three", models.LevelB1, 0, 0),
		testutil.Word(dictID, "one", models.LevelA1, 0, 0),
	}
	_, err = s.repo.InsertBatch(ctx, bad)
	s.Require().Error(err)

	words, err := s.repo.List(ctx, models.WordFilter{DictionaryID: dictID})
	s.Require().NoError(err)
	s.Len(words, 2)
}

func (s *WordRepositorySuite) TestListFilters() {
	ctx := context.Background()
	en := testutil.MustCreateDictionary(s.T(), s.db, "English")
	de := testutil.MustCreateDictionary(s.T(), s.db, "German")

	fixtures := []models.Word{
		testutil.Word(en, "apple", models.LevelA1, 0, 0),
		testutil.Word(en, "abandon", models.LevelB2, 2, 3),
		testutil.Word(en, "zeal", models.LevelC1, 5, 4),
		testutil.Word(de, "Apfel", models.LevelA1, 1, 1),
	}
	fixtures[3].Language = "de"
	_, err := s.repo.InsertBatch(ctx, fixtures)
	s.Require().NoError(err)

	words, err := s.repo.List(ctx, models.WordFilter{DictionaryID: en})
	s.Require().NoError(err)
	s.Len(words, 3)

	words, err = s.repo.List(ctx, models.WordFilter{Language: "de"})
	s.Require().NoError(err)
	s.Require().Len(words, 1)
	s.Equal("Apfel", words[0].Text)

	words, err = s.repo.List(ctx, models.WordFilter{Levels: []models.Level{models.LevelA1, models.LevelC1}})
	s.Require().NoError(err)
	s.Len(words, 3)

	words, err = s.repo.List(ctx, models.WordFilter{Levels: []models.Level{}})
	s.Require().NoError(err)
	s.Empty(words)

	words, err = s.repo.List(ctx, models.WordFilter{DictionaryID: en, Levels: []models.Level{models.LevelA1}})
	s.Require().NoError(err)
	s.Require().Len(words, 1)
	s.Equal("apple", words[0].Text)
}

func (s *WordRepositorySuite) TestListBySet() {
	ctx := context.Background()
	dictID := testutil.MustCreateDictionary(s.T(), s.db, "English")
	setID, err := s.dicts.InsertSet(ctx, models.WordSet{DictionaryID: dictID, Name: "fruit"})
	s.Require().NoError(err)

	ids, err := s.repo.InsertBatch(ctx, []models.Word{
		testutil.Word(dictID, "apple", models.LevelA1, 0, 0),
		testutil.Word(dictID, "table", models.LevelA1, 0, 0),
	})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.AddToSet(ctx, setID, ids[0]))
	// Adding twice is a no-op.
	s.Require().NoError(s.repo.AddToSet(ctx, setID, ids[0]))

	words, err := s.repo.List(ctx, models.WordFilter{SetID: setID})
	s.Require().NoError(err)
	s.Require().Len(words, 1)
	s.Equal("apple", words[0].Text)
}

func (s *WordRepositorySuite) TestUpdateProgress() {
	ctx := context.Background()
	dictID := testutil.MustCreateDictionary(s.T(), s.db, "English")
	id, err := s.repo.Insert(ctx, testutil.Word(dictID, "apple", models.LevelA1, 0, 0))
	s.Require().NoError(err)

	reviewed := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	err = s.repo.UpdateProgress(ctx, models.Word{ID: id, Rate: 4, ReviewCount: 1, LastReviewDate: &reviewed})
	s.Require().NoError(err)

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal(4, got.Rate)
	s.Equal(1, got.ReviewCount)
	s.Require().NotNil(got.LastReviewDate)
	s.True(reviewed.Equal(*got.LastReviewDate))
}

func (s *WordRepositorySuite) TestUpdateProgressMissingWord() {
	err := s.repo.UpdateProgress(context.Background(), models.Word{ID: 42, Rate: 1})
	s.ErrorIs(err, sql.ErrNoRows)
}

func (s *WordRepositorySuite) TestDeletingDictionaryCascades() {
	ctx := context.Background()
	dictID := testutil.MustCreateDictionary(s.T(), s.db, "English")
	_, err := s.repo.Insert(ctx, testutil.Word(dictID, "apple", models.LevelA1, 0, 0))
	s.Require().NoError(err)

	_, err = s.db.ExecContext(ctx, `DELETE FROM dictionaries WHERE id = ?`, dictID)
	s.Require().NoError(err)

	words, err := s.repo.List(ctx, models.WordFilter{})
	s.Require().NoError(err)
	s.Empty(words)
}

func TestWordRepositorySuite(t *testing.T) {
	suite.Run(t, new(WordRepositorySuite))
}
