package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	"github.com/vytor/lexiflash/internal/models"
	"github.com/vytor/lexiflash/internal/repository/sqlite"
	"github.com/vytor/lexiflash/internal/services"
	"github.com/vytor/lexiflash/internal/testutil"
	"github.com/vytor/lexiflash/internal/worker"
)

type queuedImport struct {
	dictionaryID int64
	path         string
}

type fakeQueue struct {
	queued []queuedImport
	err    error
}

func (q *fakeQueue) EnqueueImport(dictionaryID int64, path string) error {
	if q.err != nil {
		return q.err
	}
	q.queued = append(q.queued, queuedImport{dictionaryID: dictionaryID, path: path})
	return nil
}

type failingPinger struct{}

func (failingPinger) PingContext(context.Context) error { return stderrors.New("down") }

type APISuite struct {
	suite.Suite
	db      *sql.DB
	queue   *fakeQueue
	handler http.Handler
	server  *Server
}

func (s *APISuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	dicts := sqlite.NewDictionaryRepository(s.db)
	words := sqlite.NewWordRepository(s.db)
	activity := sqlite.NewActivityRepository(s.db)

	now := func() time.Time { return time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC) }
	cfg := services.PracticeConfig{
		DefaultSize:      20,
		MaxSize:          50,
		DifficultMaxRate: 2,
		Collation:        language.English,
	}

	s.queue = &fakeQueue{}
	s.server = &Server{
		Dictionaries: services.NewDictionaryService(dicts, words),
		Words:        services.NewWordService(words, dicts, activity, cfg, services.WithClock(now)),
		Stats:        services.NewStatsService(words, activity, 2),
		Jobs:         s.queue,
		DB:           s.db,
		UploadDir:    s.T().TempDir(),
		Now:          now,
	}
	s.handler = s.server.Routes()
}

func (s *APISuite) TearDownTest() {
	for _, q := range s.queue.queued {
		_ = os.Remove(q.path)
	}
	testutil.MustClose(s.T(), s.db)
}

func (s *APISuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *APISuite) decode(rec *httptest.ResponseRecorder, dst any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func (s *APISuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body errorBody
	s.decode(rec, &body)
	return body.Error.Code
}

func (s *APISuite) createDictionary() models.Dictionary {
	rec := s.do(http.MethodPost, "/dictionaries", map[string]string{"name": "English", "language": "en"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var d models.Dictionary
	s.decode(rec, &d)
	return d
}

func (s *APISuite) createWord(dictID int64, text, level, pos string) models.Word {
	rec := s.do(http.MethodPost, "/words", map[string]any{
		"dictionary_id":  dictID,
		"text":           text,
		"translation":    text + "-tr",
		"level":          level,
		"part_of_speech": pos,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var w models.Word
	s.decode(rec, &w)
	return w
}

func (s *APISuite) TestHealthAndReady() {
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/health", nil).Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/ready", nil).Code)

	s.server.DB = failingPinger{}
	s.Equal(http.StatusServiceUnavailable, s.do(http.MethodGet, "/ready", nil).Code)
}

func (s *APISuite) TestRequestIDHeader() {
	rec := s.do(http.MethodGet, "/health", nil)
	s.NotEmpty(rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	s.Equal("abc", rec.Header().Get("X-Request-ID"))
}

func (s *APISuite) TestCORS() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	s.Empty(rec.Header().Get("Access-Control-Allow-Origin"), "CORS is off without origins")

	s.server.AllowedOrigins = []string{"https://app.example"}
	handler := s.server.Routes()

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	s.Equal("https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	s.Empty(rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *APISuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/nope", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("NOT_FOUND", s.errorCode(rec))
}

func (s *APISuite) TestDictionariesAndSets() {
	d := s.createDictionary()
	s.Equal("English", d.Name)

	rec := s.do(http.MethodGet, "/dictionaries", nil)
	s.Equal(http.StatusOK, rec.Code)
	var dicts []models.Dictionary
	s.decode(rec, &dicts)
	s.Len(dicts, 1)

	rec = s.do(http.MethodPost, "/dictionaries", map[string]string{"name": ""})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_ERROR", s.errorCode(rec))

	rec = s.do(http.MethodPost, "/dictionaries", map[string]string{"name": "x", "language": "en", "extra": "y"})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("BAD_REQUEST", s.errorCode(rec))

	rec = s.do(http.MethodPost, "/dictionaries/"+itoa(d.ID)+"/sets", map[string]string{"name": "fruit"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var set models.WordSet
	s.decode(rec, &set)

	apple := s.createWord(d.ID, "apple", "A1", "noun")
	s.createWord(d.ID, "run", "A1", "verb")

	rec = s.do(http.MethodPost, "/sets/"+itoa(set.ID)+"/words/"+itoa(apple.ID), nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/words?set_id="+itoa(set.ID), nil)
	var words []models.Word
	s.decode(rec, &words)
	s.Require().Len(words, 1)
	s.Equal("apple", words[0].Text)

	rec = s.do(http.MethodGet, "/dictionaries/999/sets", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/dictionaries/abc", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APISuite) TestWordLifecycle() {
	d := s.createDictionary()
	w := s.createWord(d.ID, "apple", "A1", "noun")
	s.NotEmpty(w.GUID)
	s.Equal("en", w.Language)
	s.Zero(w.ReviewCount)

	rec := s.do(http.MethodGet, "/words/"+itoa(w.ID), nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/words/"+itoa(w.ID)+"/review", map[string]int{"rate": 2})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var reviewed models.Word
	s.decode(rec, &reviewed)
	s.Equal(2, reviewed.Rate)
	s.Equal(1, reviewed.ReviewCount)
	s.NotNil(reviewed.LastReviewDate)

	rec = s.do(http.MethodPost, "/words/"+itoa(w.ID)+"/review", map[string]int{"rate": 6})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/words/12345", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	// The review counted toward today's activity.
	rec = s.do(http.MethodGet, "/activity?from=2024-06-10&to=2024-06-10", nil)
	var activity []models.DailyActivity
	s.decode(rec, &activity)
	s.Require().Len(activity, 1)
	s.Equal(1, activity[0].WordsStudied)

	rec = s.do(http.MethodGet, "/stats/streak", nil)
	var streak models.Streak
	s.decode(rec, &streak)
	s.Equal(models.Streak{Days: 1, Today: "2024-06-10"}, streak)
}

func (s *APISuite) TestListWordsFiltersAndSorts() {
	d := s.createDictionary()
	s.createWord(d.ID, "zeal", "C1", "noun")
	apple := s.createWord(d.ID, "apple", "A1", "noun")
	s.createWord(d.ID, "Mango", "B1", "noun")
	s.createWord(d.ID, "run", "A2", "verb")

	rec := s.do(http.MethodPost, "/words/"+itoa(apple.ID)+"/review", map[string]int{"rate": 1})
	s.Require().Equal(http.StatusOK, rec.Code)

	var words []models.Word
	s.decode(s.do(http.MethodGet, "/words?sort=alphabet", nil), &words)
	s.Equal([]string{"apple", "Mango", "run", "zeal"}, texts(words))

	s.decode(s.do(http.MethodGet, "/words?sort=difficulty&pos=noun", nil), &words)
	s.Equal([]string{"apple", "Mango", "zeal"}, texts(words))

	s.decode(s.do(http.MethodGet, "/words?level=a1&level=C1", nil), &words)
	s.Equal([]string{"zeal", "apple"}, texts(words))

	s.decode(s.do(http.MethodGet, "/words?status=difficult", nil), &words)
	s.Equal([]string{"apple"}, texts(words))

	s.decode(s.do(http.MethodGet, "/words?status=difficult&max_rate=0", nil), &words)
	s.Empty(words)

	s.decode(s.do(http.MethodGet, "/words?status=unreviewed&sort=alphabet", nil), &words)
	s.Equal([]string{"Mango", "run", "zeal"}, texts(words))

	rec = s.do(http.MethodGet, "/words?sort=shuffle", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	rec = s.do(http.MethodGet, "/words?level=Z1", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APISuite) TestListWordsSearchFoldsNonASCIICase() {
	d := s.createDictionary()
	s.createWord(d.ID, "Привіт", "A1", "noun")
	s.createWord(d.ID, "hello", "A1", "noun")

	var words []models.Word
	s.decode(s.do(http.MethodGet, "/words?q="+url.QueryEscape("привіт"), nil), &words)
	s.Equal([]string{"Привіт"}, texts(words))

	s.decode(s.do(http.MethodGet, "/words?q="+url.QueryEscape("ПРИВІТ-TR"), nil), &words)
	s.Equal([]string{"Привіт"}, texts(words))

	s.decode(s.do(http.MethodGet, "/practice?q="+url.QueryEscape("ПРИВІТ"), nil), &words)
	s.Equal([]string{"Привіт"}, texts(words))
}

func (s *APISuite) TestListWordsPaging() {
	d := s.createDictionary()
	for _, text := range []string{"delta", "alpha", "charlie", "bravo"} {
		s.createWord(d.ID, text, "A1", "noun")
	}

	var words []models.Word
	s.decode(s.do(http.MethodGet, "/words?sort=alphabet&limit=2&offset=1", nil), &words)
	s.Equal([]string{"bravo", "charlie"}, texts(words))

	s.decode(s.do(http.MethodGet, "/words?sort=alphabet&offset=3", nil), &words)
	s.Equal([]string{"delta"}, texts(words))

	s.decode(s.do(http.MethodGet, "/words?offset=10", nil), &words)
	s.Empty(words)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/words?limit=-1", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/words?offset=x", nil).Code)
}

func (s *APISuite) TestPracticeAndQuiz() {
	d := s.createDictionary()
	for _, text := range []string{"one", "two", "three", "four", "five"} {
		s.createWord(d.ID, text, "A1", "noun")
	}

	var words []models.Word
	s.decode(s.do(http.MethodGet, "/practice?count=3", nil), &words)
	s.Len(words, 3)

	s.decode(s.do(http.MethodGet, "/practice?count=100", nil), &words)
	s.Len(words, 5)

	rec := s.do(http.MethodGet, "/practice?count=x", nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/words/"+itoa(words[0].ID)+"/quiz?options=3", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var quiz models.QuizQuestion
	s.decode(rec, &quiz)
	s.Len(quiz.Options, 3)
	s.Equal(words[0].Translation, quiz.Options[quiz.CorrectIndex])
}

func (s *APISuite) TestStats() {
	d := s.createDictionary()
	s.createWord(d.ID, "one", "A1", "noun")
	s.createWord(d.ID, "two", "B2", "verb")

	var overview models.Overview
	s.decode(s.do(http.MethodGet, "/stats/overview?dictionary_id="+itoa(d.ID), nil), &overview)
	s.Equal(2, overview.TotalWords)
	s.Equal(2, overview.UnreviewedWords)
	s.Equal(1, overview.LevelDistribution[models.LevelB2])
	s.Equal(0, overview.LevelDistribution[models.LevelC2])

	rec := s.do(http.MethodPost, "/activity", map[string]any{
		"date": "2024-06-09", "words_studied": 10, "tests_completed": 1, "time_spent": 20, "accuracy": 80,
	})
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	rec = s.do(http.MethodPost, "/activity", map[string]any{
		"date": "2024-06-01", "words_studied": 99,
	})
	s.Require().Equal(http.StatusNoContent, rec.Code)

	var rollup models.Rollup
	s.decode(s.do(http.MethodGet, "/stats/weekly", nil), &rollup)
	s.Equal(1, rollup.Days)
	s.Equal(10, rollup.TotalWords)
	s.Equal(80.0, rollup.AvgAccuracy)

	rec = s.do(http.MethodPost, "/activity", map[string]any{"date": "yesterday"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APISuite) upload(path, filename, content string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	s.Require().NoError(err)
	_, err = part.Write([]byte(content))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *APISuite) TestImportQueuesUpload() {
	d := s.createDictionary()

	rec := s.upload("/dictionaries/"+itoa(d.ID)+"/import", "words.csv", "text\nhello\n")
	s.Require().Equal(http.StatusAccepted, rec.Code, rec.Body.String())
	s.Require().Len(s.queue.queued, 1)
	s.Equal(d.ID, s.queue.queued[0].dictionaryID)

	content, err := os.ReadFile(s.queue.queued[0].path)
	s.Require().NoError(err)
	s.Equal("text\nhello\n", string(content))

	rec = s.upload("/dictionaries/"+itoa(d.ID)+"/import", "words.txt", "text\n")
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.upload("/dictionaries/999/import", "words.csv", "text\n")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *APISuite) TestImportQueueFull() {
	d := s.createDictionary()
	s.queue.err = worker.ErrQueueFull

	rec := s.upload("/dictionaries/"+itoa(d.ID)+"/import", "words.csv", "text\nhello\n")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("BUSY", s.errorCode(rec))

	entries, err := os.ReadDir(s.server.UploadDir)
	s.Require().NoError(err)
	s.Empty(entries)
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}
