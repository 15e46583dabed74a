package services

import (
	"context"
	"time"

	"github.com/vytor/lexiflash/internal/errors"
	"github.com/vytor/lexiflash/internal/logger"
	"github.com/vytor/lexiflash/internal/models"
	"github.com/vytor/lexiflash/internal/progress"
	"github.com/vytor/lexiflash/internal/repository"
)

// StatsService handles statistics-related business logic
type StatsService interface {
	Overview(ctx context.Context, dictionaryID int64) (*models.Overview, error)
	Streak(ctx context.Context, today time.Time) (*models.Streak, error)
	Weekly(ctx context.Context, today time.Time) (*models.Rollup, error)
	RecordActivity(ctx context.Context, in ActivityInput) error
	ListActivity(ctx context.Context, r DateRange) ([]models.DailyActivity, error)
}

type statsService struct {
	words            repository.WordRepository
	activity         repository.ActivityRepository
	difficultMaxRate int
}

// NewStatsService creates a new StatsService
func NewStatsService(words repository.WordRepository, activity repository.ActivityRepository, difficultMaxRate int) StatsService {
	return &statsService{words: words, activity: activity, difficultMaxRate: difficultMaxRate}
}

// Overview summarizes the words of one dictionary, or of all dictionaries
// when dictionaryID is zero.
func (s *statsService) Overview(ctx context.Context, dictionaryID int64) (*models.Overview, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting overview: dictionary_id=%d", dictionaryID)

	if dictionaryID < 0 {
		return nil, errors.NewValidationError("dictionary_id", "must not be negative")
	}
	words, err := s.words.List(ctx, models.WordFilter{DictionaryID: dictionaryID})
	if err != nil {
		log.Error("failed to list words: %v", err)
		return nil, errors.NewInternalError(err)
	}
	overview := progress.Summarize(words, s.difficultMaxRate)
	return &overview, nil
}

func (s *statsService) Streak(ctx context.Context, today time.Time) (*models.Streak, error) {
	todayKey := today.Format(models.DateLayout)
	records, err := s.activity.List(ctx, "", todayKey)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list activity: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &models.Streak{Days: progress.CalculateStreak(records, today), Today: todayKey}, nil
}

// Weekly rolls up the seven days ending today. Days without a record do not
// count toward the averages.
func (s *statsService) Weekly(ctx context.Context, today time.Time) (*models.Rollup, error) {
	from, to := progress.WeekDates(today)
	records, err := s.activity.List(ctx, from, to)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list activity: %v", err)
		return nil, errors.NewInternalError(err)
	}
	rollup := progress.Rollup(records)
	return &rollup, nil
}

func (s *statsService) RecordActivity(ctx context.Context, in ActivityInput) error {
	log := logger.FromContext(ctx)
	log.Debug("recording activity: date=%s", in.Date)

	if err := validateInput(in); err != nil {
		return err
	}
	err := s.activity.Upsert(ctx, models.DailyActivity{
		Date:           in.Date,
		WordsStudied:   in.WordsStudied,
		TestsCompleted: in.TestsCompleted,
		TimeSpent:      in.TimeSpent,
		Accuracy:       in.Accuracy,
	})
	if err != nil {
		log.Error("failed to upsert activity: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *statsService) ListActivity(ctx context.Context, r DateRange) ([]models.DailyActivity, error) {
	if err := validateInput(r); err != nil {
		return nil, err
	}
	if r.From != "" && r.To != "" && r.From > r.To {
		return nil, errors.NewValidationError("from", "must not be after to")
	}
	records, err := s.activity.List(ctx, r.From, r.To)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list activity: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if records == nil {
		records = []models.DailyActivity{}
	}
	return records, nil
}
