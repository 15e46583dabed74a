package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/vytor/lexiflash/internal/errors"
	"github.com/vytor/lexiflash/internal/importer"
	"github.com/vytor/lexiflash/internal/logger"
	"github.com/vytor/lexiflash/internal/models"
	"github.com/vytor/lexiflash/internal/repository"
)

// ImportService handles word file imports
type ImportService interface {
	ImportFile(ctx context.Context, dictionaryID int64, path string) (*models.ImportReport, error)
}

type importService struct {
	dicts repository.DictionaryRepository
	words repository.WordRepository
}

// NewImportService creates a new ImportService
func NewImportService(dicts repository.DictionaryRepository, words repository.WordRepository) ImportService {
	return &importService{dicts: dicts, words: words}
}

// ImportFile parses path and inserts its words in one batch. Invalid rows are
// reported and skipped; a storage failure imports nothing.
func (s *importService) ImportFile(ctx context.Context, dictionaryID int64, path string) (*models.ImportReport, error) {
	log := logger.FromContext(ctx)
	log.Info("importing file: dictionary_id=%d, path=%s", dictionaryID, path)

	dict, err := s.dicts.Get(ctx, dictionaryID)
	if err != nil {
		log.Error("failed to get dictionary: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if dict == nil {
		return nil, errors.NewNotFoundError("dictionary", dictionaryID)
	}

	parsed, err := importer.ReadFile(path)
	if err != nil {
		log.Warn("failed to read import file: %v", err)
		return nil, errors.NewBadRequestError(err.Error())
	}

	words := make([]models.Word, len(parsed.Words))
	for i, w := range parsed.Words {
		w.GUID = uuid.NewString()
		w.DictionaryID = dict.ID
		w.Language = dict.Language
		words[i] = w
	}

	report := &models.ImportReport{
		DictionaryID: dict.ID,
		Imported:     len(words),
		Skipped:      len(parsed.Skipped),
	}
	for _, rowErr := range parsed.Skipped {
		report.Errors = append(report.Errors, rowErr.String())
	}

	if len(words) > 0 {
		if _, err := s.words.InsertBatch(ctx, words); err != nil {
			log.Error("failed to insert imported words: %v", err)
			return nil, errors.NewInternalError(err)
		}
	}
	log.Info("import complete: imported=%d, skipped=%d", report.Imported, report.Skipped)
	return report, nil
}
