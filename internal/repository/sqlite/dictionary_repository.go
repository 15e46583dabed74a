package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vytor/lexiflash/internal/logger"
	"github.com/vytor/lexiflash/internal/models"
	"github.com/vytor/lexiflash/internal/repository"
)

type dictionaryRepository struct {
	db *sql.DB
}

// NewDictionaryRepository creates a new DictionaryRepository implementation
func NewDictionaryRepository(db *sql.DB) repository.DictionaryRepository {
	return &dictionaryRepository{db: db}
}

func (r *dictionaryRepository) Insert(ctx context.Context, d models.Dictionary) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("dictionary_repo")
	log.Debug("inserting dictionary: name=%s", d.Name)

	res, err := r.db.ExecContext(ctx, `INSERT INTO dictionaries (name, language) VALUES (?, ?)`, d.Name, d.Language)
	if err != nil {
		log.Error("failed to insert dictionary: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *dictionaryRepository) Get(ctx context.Context, id int64) (*models.Dictionary, error) {
	log := logger.FromContext(ctx).WithPrefix("dictionary_repo")

	var d models.Dictionary
	err := r.db.QueryRowContext(ctx, `SELECT id, name, language, created_at FROM dictionaries WHERE id = ?`, id).
		Scan(&d.ID, &d.Name, &d.Language, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("dictionary not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get dictionary: %v", err)
		return nil, err
	}
	return &d, nil
}

func (r *dictionaryRepository) List(ctx context.Context) ([]models.Dictionary, error) {
	log := logger.FromContext(ctx).WithPrefix("dictionary_repo")

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, language, created_at FROM dictionaries ORDER BY name`)
	if err != nil {
		log.Error("failed to list dictionaries: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.Dictionary
	for rows.Next() {
		var d models.Dictionary
		if err := rows.Scan(&d.ID, &d.Name, &d.Language, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *dictionaryRepository) InsertSet(ctx context.Context, set models.WordSet) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("dictionary_repo")
	log.Debug("inserting word set: dictionary_id=%d, name=%s", set.DictionaryID, set.Name)

	res, err := r.db.ExecContext(ctx, `INSERT INTO word_sets (dictionary_id, name) VALUES (?, ?)`, set.DictionaryID, set.Name)
	if err != nil {
		log.Error("failed to insert word set: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *dictionaryRepository) GetSet(ctx context.Context, id int64) (*models.WordSet, error) {
	var s models.WordSet
	err := r.db.QueryRowContext(ctx, `SELECT id, dictionary_id, name, created_at FROM word_sets WHERE id = ?`, id).
		Scan(&s.ID, &s.DictionaryID, &s.Name, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).WithPrefix("dictionary_repo").Error("failed to get word set: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *dictionaryRepository) ListSets(ctx context.Context, dictionaryID int64) ([]models.WordSet, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, dictionary_id, name, created_at
FROM word_sets
WHERE dictionary_id = ?
ORDER BY name
`, dictionaryID)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("dictionary_repo").Error("failed to list word sets: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.WordSet
	for rows.Next() {
		var s models.WordSet
		if err := rows.Scan(&s.ID, &s.DictionaryID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
