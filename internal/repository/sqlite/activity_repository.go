package sqlite

import (
	"context"
	"database/sql"

	"github.com/vytor/lexiflash/internal/logger"
	"github.com/vytor/lexiflash/internal/models"
	"github.com/vytor/lexiflash/internal/repository"
)

type activityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new ActivityRepository implementation
func NewActivityRepository(db *sql.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Upsert replaces the record for a.Date.
func (r *activityRepository) Upsert(ctx context.Context, a models.DailyActivity) error {
	log := logger.FromContext(ctx).WithPrefix("activity_repo")
	log.Debug("upserting activity: date=%s, words=%d, tests=%d", a.Date, a.WordsStudied, a.TestsCompleted)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO daily_activity (date, words_studied, tests_completed, time_spent, accuracy)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(date) DO UPDATE SET
    words_studied = excluded.words_studied,
    tests_completed = excluded.tests_completed,
    time_spent = excluded.time_spent,
    accuracy = excluded.accuracy
`, a.Date, a.WordsStudied, a.TestsCompleted, a.TimeSpent, a.Accuracy)
	if err != nil {
		log.Error("failed to upsert activity: %v", err)
	}
	return err
}

// AddWordsStudied increments the words studied on date, creating the record
// when needed.
func (r *activityRepository) AddWordsStudied(ctx context.Context, date string, n int) error {
	log := logger.FromContext(ctx).WithPrefix("activity_repo")
	log.Debug("adding words studied: date=%s, n=%d", date, n)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO daily_activity (date, words_studied) VALUES (?, ?)
ON CONFLICT(date) DO UPDATE SET words_studied = words_studied + excluded.words_studied
`, date, n)
	if err != nil {
		log.Error("failed to add words studied: %v", err)
	}
	return err
}

// List returns records between from and to inclusive, newest first. Empty
// bounds are open.
func (r *activityRepository) List(ctx context.Context, from, to string) ([]models.DailyActivity, error) {
	log := logger.FromContext(ctx).WithPrefix("activity_repo")
	log.Debug("listing activity: from=%s, to=%s", from, to)

	query := sqlBuilder.
		Select("date", "words_studied", "tests_completed", "time_spent", "accuracy").
		From("daily_activity").
		OrderBy("date DESC")
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list activity: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.DailyActivity
	for rows.Next() {
		var a models.DailyActivity
		if err := rows.Scan(&a.Date, &a.WordsStudied, &a.TestsCompleted, &a.TimeSpent, &a.Accuracy); err != nil {
			log.Error("failed to scan activity row: %v", err)
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
