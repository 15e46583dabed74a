package jobs

import (
	"github.com/vytor/lexiflash/internal/worker"
)

// WorkerQueue implements JobQueue using worker pools
type WorkerQueue struct {
	importPool *worker.Pool
	importer   worker.FileImporter
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(importPool *worker.Pool, importer worker.FileImporter) JobQueue {
	return &WorkerQueue{
		importPool: importPool,
		importer:   importer,
	}
}

func (q *WorkerQueue) EnqueueImport(dictionaryID int64, path string) error {
	return q.importPool.Submit(&worker.ImportWordsJob{
		Importer:     q.importer,
		DictionaryID: dictionaryID,
		Path:         path,
	})
}
