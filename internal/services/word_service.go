package services

import (
	"context"
	"database/sql"
	stderrors "errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/vytor/lexiflash/internal/errors"
	"github.com/vytor/lexiflash/internal/logger"
	"github.com/vytor/lexiflash/internal/models"
	"github.com/vytor/lexiflash/internal/practice"
	"github.com/vytor/lexiflash/internal/repository"
	"github.com/vytor/lexiflash/internal/vocab"
)

const (
	minQuizOptions = 2
	maxQuizOptions = 10
)

// WordService handles words, practice sessions and reviews
type WordService interface {
	CreateWord(ctx context.Context, in CreateWordInput) (*models.Word, error)
	GetWord(ctx context.Context, id int64) (*models.Word, error)
	ListWords(ctx context.Context, q WordQuery) ([]models.Word, error)
	PracticeSession(ctx context.Context, q WordQuery, count int) ([]models.Word, error)
	ReviewWord(ctx context.Context, id int64, in ReviewInput) (*models.Word, error)
	Quiz(ctx context.Context, id int64, options int) (*models.QuizQuestion, error)
}

type wordService struct {
	words    repository.WordRepository
	dicts    repository.DictionaryRepository
	activity repository.ActivityRepository
	cfg      PracticeConfig
	now      func() time.Time
	// rng is nil outside tests; the global source is safe for concurrent use.
	rng *rand.Rand
}

// WordServiceOption configures a WordService.
type WordServiceOption func(*wordService)

// WithClock replaces time.Now as the source of review timestamps.
func WithClock(now func() time.Time) WordServiceOption {
	return func(s *wordService) { s.now = now }
}

// WithRand makes practice draws and quizzes reproducible. The source is not
// safe for concurrent use.
func WithRand(rng *rand.Rand) WordServiceOption {
	return func(s *wordService) { s.rng = rng }
}

// NewWordService creates a new WordService
func NewWordService(
	words repository.WordRepository,
	dicts repository.DictionaryRepository,
	activity repository.ActivityRepository,
	cfg PracticeConfig,
	opts ...WordServiceOption,
) WordService {
	s := &wordService{
		words:    words,
		dicts:    dicts,
		activity: activity,
		cfg:      cfg,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *wordService) CreateWord(ctx context.Context, in CreateWordInput) (*models.Word, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating word: dictionary_id=%d, text=%s", in.DictionaryID, in.Text)

	if err := validateInput(in); err != nil {
		return nil, err
	}

	dict, err := s.dicts.Get(ctx, in.DictionaryID)
	if err != nil {
		log.Error("failed to get dictionary: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if dict == nil {
		return nil, errors.NewNotFoundError("dictionary", in.DictionaryID)
	}

	w := models.Word{
		GUID:          uuid.NewString(),
		DictionaryID:  dict.ID,
		Text:          in.Text,
		Transcription: in.Transcription,
		Translation:   in.Translation,
		Definition:    in.Definition,
		PartOfSpeech:  models.PartOfSpeech(in.PartOfSpeech),
		Level:         models.Level(in.Level),
		Language:      dict.Language,
	}
	id, err := s.words.Insert(ctx, w)
	if err != nil {
		log.Error("failed to insert word: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return s.GetWord(ctx, id)
}

func (s *wordService) GetWord(ctx context.Context, id int64) (*models.Word, error) {
	w, err := s.words.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get word: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if w == nil {
		return nil, errors.NewNotFoundError("word", id)
	}
	return w, nil
}

// ListWords loads the words matching the persisted fields of q and runs the
// rest of q in memory. Search stays in memory since SQLite only folds ASCII
// case. Limit and Offset page the sorted result.
func (s *wordService) ListWords(ctx context.Context, q WordQuery) ([]models.Word, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing words: dictionary_id=%d, set_id=%d, status=%s, sort=%s", q.DictionaryID, q.SetID, q.Status, q.Sort)

	if err := validateInput(q); err != nil {
		return nil, err
	}

	words, err := s.words.List(ctx, models.WordFilter{
		DictionaryID: q.DictionaryID,
		SetID:        q.SetID,
		Language:     q.Language,
		Levels:       q.Levels,
	})
	if err != nil {
		log.Error("failed to list words: %v", err)
		return nil, errors.NewInternalError(err)
	}

	out := page(vocab.Apply(words, s.pipeline(q)), q.Limit, q.Offset)
	if out == nil {
		out = []models.Word{}
	}
	return out, nil
}

func page(words []models.Word, limit, offset int) []models.Word {
	if offset >= len(words) {
		return nil
	}
	words = words[offset:]
	if limit > 0 && limit < len(words) {
		words = words[:limit]
	}
	return words
}

func (s *wordService) pipeline(q WordQuery) vocab.Query {
	maxRate := s.cfg.DifficultMaxRate
	if q.MaxRate != nil {
		maxRate = *q.MaxRate
	}
	collation := s.cfg.Collation
	if q.Language != "" {
		if tag, err := language.Parse(q.Language); err == nil {
			collation = tag
		}
	}
	return vocab.Query{
		Search:        q.Search,
		Levels:        q.Levels,
		PartsOfSpeech: q.PartsOfSpeech,
		Status:        q.Status,
		MaxRate:       maxRate,
		Sort:          q.Sort,
		Collation:     collation,
	}
}

// PracticeSession draws up to count words from the matching pool, favoring
// low rates and unreviewed words. A zero count means the configured default.
func (s *wordService) PracticeSession(ctx context.Context, q WordQuery, count int) ([]models.Word, error) {
	log := logger.FromContext(ctx)

	if count < 0 {
		return nil, errors.NewValidationError("count", "must not be negative")
	}
	if count == 0 {
		count = s.cfg.DefaultSize
	}
	if s.cfg.MaxSize > 0 && count > s.cfg.MaxSize {
		log.Debug("clamping practice size %d to %d", count, s.cfg.MaxSize)
		count = s.cfg.MaxSize
	}

	q.Limit, q.Offset = 0, 0
	pool, err := s.ListWords(ctx, q)
	if err != nil {
		return nil, err
	}
	selected := practice.Select(pool, count, s.rng)
	log.Debug("practice session: pool=%d, selected=%d", len(pool), len(selected))
	return selected, nil
}

// ReviewWord records a review of the word and counts it toward today's
// activity.
func (s *wordService) ReviewWord(ctx context.Context, id int64, in ReviewInput) (*models.Word, error) {
	log := logger.FromContext(ctx)
	log.Debug("reviewing word: id=%d, rate=%d", id, in.Rate)

	if err := validateInput(in); err != nil {
		return nil, err
	}

	w, err := s.GetWord(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	updated := practice.ApplyReview(*w, in.Rate, now)
	if err := s.words.UpdateProgress(ctx, updated); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFoundError("word", id)
		}
		log.Error("failed to update word progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// The review stands even if the activity counter cannot be bumped.
	if err := s.activity.AddWordsStudied(ctx, now.Format(models.DateLayout), 1); err != nil {
		log.Warn("failed to record activity: %v", err)
	}
	return &updated, nil
}

func (s *wordService) Quiz(ctx context.Context, id int64, options int) (*models.QuizQuestion, error) {
	if options == 0 {
		options = practice.DefaultQuizOptions
	}
	if options < minQuizOptions || options > maxQuizOptions {
		return nil, errors.NewValidationError("options", "must be between 2 and 10")
	}

	w, err := s.GetWord(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.Translation == "" {
		return nil, errors.NewBadRequestError("word has no translation to quiz on")
	}

	pool, err := s.words.List(ctx, models.WordFilter{DictionaryID: w.DictionaryID})
	if err != nil {
		logger.FromContext(ctx).Error("failed to list quiz pool: %v", err)
		return nil, errors.NewInternalError(err)
	}
	q := practice.BuildQuiz(*w, pool, options, s.rng)
	return &q, nil
}
