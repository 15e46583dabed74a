package jobs

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	// EnqueueImport schedules the file at path for import into a dictionary.
	// The job takes ownership of the file and removes it when done.
	EnqueueImport(dictionaryID int64, path string) error
}
