package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/vytor/lexiflash/internal/logger"
	"github.com/vytor/lexiflash/internal/models"
	"github.com/vytor/lexiflash/internal/repository"
)

var wordColumns = []string{
	"w.id", "w.guid", "w.dictionary_id", "w.text", "w.transcription", "w.translation",
	"w.definition", "w.part_of_speech", "w.level", "w.language", "w.review_count",
	"w.rate", "w.last_review_date", "w.created_at",
}

const insertWordSQL = `
INSERT INTO words (guid, dictionary_id, text, transcription, translation, definition,
                   part_of_speech, level, language, review_count, rate, last_review_date)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type wordRepository struct {
	db *sql.DB
}

// NewWordRepository creates a new WordRepository implementation
func NewWordRepository(db *sql.DB) repository.WordRepository {
	return &wordRepository{db: db}
}

func wordArgs(w models.Word) []any {
	var last sql.NullTime
	if w.LastReviewDate != nil {
		last = sql.NullTime{Time: *w.LastReviewDate, Valid: true}
	}
	return []any{
		w.GUID, w.DictionaryID, w.Text, w.Transcription, w.Translation, w.Definition,
		string(w.PartOfSpeech), string(w.Level), w.Language, w.ReviewCount, w.Rate, last,
	}
}

func scanWord(s rowScanner) (models.Word, error) {
	var (
		w        models.Word
		pos, lvl string
		last     sql.NullTime
	)
	err := s.Scan(&w.ID, &w.GUID, &w.DictionaryID, &w.Text, &w.Transcription, &w.Translation,
		&w.Definition, &pos, &lvl, &w.Language, &w.ReviewCount, &w.Rate, &last, &w.CreatedAt)
	if err != nil {
		return w, err
	}
	w.PartOfSpeech = models.PartOfSpeech(pos)
	w.Level = models.Level(lvl)
	if last.Valid {
		t := last.Time
		w.LastReviewDate = &t
	}
	return w, nil
}

func (r *wordRepository) Insert(ctx context.Context, w models.Word) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("inserting word: dictionary_id=%d, text=%s", w.DictionaryID, w.Text)

	res, err := r.db.ExecContext(ctx, insertWordSQL, wordArgs(w)...)
	if err != nil {
		log.Error("failed to insert word: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get word id: %v", err)
		return 0, err
	}
	log.Debug("word inserted: id=%d", id)
	return id, nil
}

func (r *wordRepository) InsertBatch(ctx context.Context, words []models.Word) ([]int64, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("inserting %d words", len(words))

	ids := make([]int64, 0, len(words))
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, insertWordSQL)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, w := range words {
			res, err := stmt.ExecContext(ctx, wordArgs(w)...)
			if err != nil {
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to insert word batch: %v", err)
		return nil, err
	}
	return ids, nil
}

func (r *wordRepository) Get(ctx context.Context, id int64) (*models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("getting word: id=%d", id)

	query, args, err := sqlBuilder.Select(wordColumns...).From("words w").Where(squirrel.Eq{"w.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	w, err := scanWord(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("word not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get word: %v", err)
		return nil, err
	}
	return &w, nil
}

func (r *wordRepository) List(ctx context.Context, filter models.WordFilter) ([]models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("listing words with filter: dictionary_id=%d, set_id=%d, language=%s, levels=%v",
		filter.DictionaryID, filter.SetID, filter.Language, filter.Levels)

	query := sqlBuilder.Select(wordColumns...).From("words w")

	if filter.SetID != 0 {
		query = query.Join("set_words sw ON sw.word_id = w.id").Where(squirrel.Eq{"sw.set_id": filter.SetID})
	}
	if filter.DictionaryID != 0 {
		query = query.Where(squirrel.Eq{"w.dictionary_id": filter.DictionaryID})
	}
	if filter.Language != "" {
		query = query.Where(squirrel.Eq{"w.language": filter.Language})
	}
	if filter.Levels != nil {
		levels := make([]string, len(filter.Levels))
		for i, l := range filter.Levels {
			levels[i] = string(l)
		}
		query = query.Where(squirrel.Eq{"w.level": levels})
	}

	query = query.OrderBy("w.id ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list words: %v", err)
		return nil, err
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			log.Error("failed to scan word row: %v", err)
			return nil, err
		}
		words = append(words, w)
	}
	log.Debug("found %d words", len(words))
	return words, rows.Err()
}

func (r *wordRepository) UpdateProgress(ctx context.Context, w models.Word) error {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("updating word progress: id=%d, rate=%d, review_count=%d", w.ID, w.Rate, w.ReviewCount)

	var last sql.NullTime
	if w.LastReviewDate != nil {
		last = sql.NullTime{Time: *w.LastReviewDate, Valid: true}
	}
	res, err := r.db.ExecContext(ctx, `
UPDATE words
SET rate = ?, review_count = ?, last_review_date = ?
WHERE id = ?
`, w.Rate, w.ReviewCount, last, w.ID)
	if err != nil {
		log.Error("failed to update word progress: %v", err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *wordRepository) AddToSet(ctx context.Context, setID, wordID int64) error {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("adding word to set: set_id=%d, word_id=%d", setID, wordID)

	_, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO set_words (set_id, word_id) VALUES (?, ?)`, setID, wordID)
	if err != nil {
		log.Error("failed to add word to set: %v", err)
	}
	return err
}
