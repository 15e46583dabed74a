package worker

import (
	"context"
	"os"

	"github.com/vytor/lexiflash/internal/logger"
	"github.com/vytor/lexiflash/internal/models"
)

// FileImporter loads a word file into a dictionary. It is satisfied by the
// import service and keeps this package free of a services dependency.
type FileImporter interface {
	ImportFile(ctx context.Context, dictionaryID int64, path string) (*models.ImportReport, error)
}

// ImportWordsJob imports an uploaded file and removes it afterwards.
type ImportWordsJob struct {
	Importer     FileImporter
	DictionaryID int64
	Path         string
}

func (j *ImportWordsJob) Name() string { return "import_words" }

func (j *ImportWordsJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"dictionary_id": j.DictionaryID,
		"path":          j.Path,
	})
	defer func() {
		if err := os.Remove(j.Path); err != nil && !os.IsNotExist(err) {
			log.Warn("failed to remove import file: %v", err)
		}
	}()

	log.Info("starting background import")
	report, err := j.Importer.ImportFile(logger.NewContext(ctx, log), j.DictionaryID, j.Path)
	if err != nil {
		return err
	}
	log.Info("import finished: imported=%d, skipped=%d", report.Imported, report.Skipped)
	for _, e := range report.Errors {
		log.Debug("skipped %s", e)
	}
	return nil
}
