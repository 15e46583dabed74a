package worker

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vytor/lexiflash/internal/logger"
	"github.com/vytor/lexiflash/internal/models"
)

type funcJob struct {
	name string
	fn   func(context.Context) error
}

func (j funcJob) Name() string {
	return j.name
}

func (j funcJob) Run(ctx context.Context) error {
	return j.fn(ctx)
}

func TestPoolRunsJobs(t *testing.T) {
	p := NewPool(3, 10)
	p.Start(context.Background())

	var count atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		require.NoError(t, p.Submit(funcJob{name: "count", fn: func(context.Context) error {
			defer wg.Done()
			count.Add(1)
			return nil
		}}))
	}
	wg.Wait()
	p.Stop()

	assert.Equal(t, int32(10), count.Load())
}

func TestPoolSubmitQueueFull(t *testing.T) {
	// Not started, so nothing drains the queue.
	p := NewPool(1, 2)
	noop := funcJob{name: "noop", fn: func(context.Context) error { return nil }}

	require.NoError(t, p.Submit(noop))
	require.NoError(t, p.Submit(noop))
	assert.ErrorIs(t, p.Submit(noop), ErrQueueFull)
	assert.Equal(t, 2, p.QueueSize())
	assert.Equal(t, 2, p.Capacity())
}

func TestPoolLogsQueueDepthAndJobErrors(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.Default()
	logger.SetDefault(logger.New(logger.WithOutput(&buf), logger.WithColors(false), logger.WithLevel(logger.DEBUG)))
	defer logger.SetDefault(prev)

	p := NewPool(1, 1)
	require.NoError(t, p.Submit(funcJob{name: "first", fn: func(context.Context) error { return errors.New("boom") }}))
	assert.ErrorIs(t, p.Submit(funcJob{name: "second", fn: func(context.Context) error { return nil }}), ErrQueueFull)

	p.Start(context.Background())
	require.Eventually(t, func() bool { return p.QueueSize() == 0 }, time.Second, 10*time.Millisecond)
	p.Stop()

	out := buf.String()
	assert.Contains(t, out, "submitted job: first (1/1 queued)")
	assert.Contains(t, out, "queue full (1/1), rejecting job: second")
	assert.Contains(t, out, "error=boom")
}

func TestPoolSubmitAfterStop(t *testing.T) {
	p := NewPool(1, 1)
	p.Start(context.Background())
	p.Stop()
	p.Stop()

	err := p.Submit(funcJob{name: "late", fn: func(context.Context) error { return nil }})
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestPoolSurvivesFailingJobs(t *testing.T) {
	p := NewPool(1, 4)
	p.Start(context.Background())
	defer p.Stop()

	done := make(chan struct{})
	require.NoError(t, p.Submit(funcJob{name: "fail", fn: func(context.Context) error { return errors.New("boom") }}))
	require.NoError(t, p.Submit(funcJob{name: "panic", fn: func(context.Context) error { panic("boom") }}))
	require.NoError(t, p.Submit(funcJob{name: "ok", fn: func(context.Context) error { close(done); return nil }}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not survive failing jobs")
	}
}

type stubImporter struct {
	dictionaryID int64
	path         string
	err          error
}

func (s *stubImporter) ImportFile(_ context.Context, dictionaryID int64, path string) (*models.ImportReport, error) {
	s.dictionaryID = dictionaryID
	s.path = path
	if s.err != nil {
		return nil, s.err
	}
	return &models.ImportReport{DictionaryID: dictionaryID, Imported: 1}, nil
}

func TestImportWordsJobRemovesFile(t *testing.T) {
	for _, importErr := range []error{nil, errors.New("bad file")} {
		path := filepath.Join(t.TempDir(), "upload.csv")
		require.NoError(t, os.WriteFile(path, []byte("text\nhello\n"), 0o600))

		imp := &stubImporter{err: importErr}
		job := &ImportWordsJob{Importer: imp, DictionaryID: 7, Path: path}
		err := job.Run(context.Background())

		if importErr != nil {
			assert.ErrorIs(t, err, importErr)
		} else {
			assert.NoError(t, err)
		}
		assert.Equal(t, int64(7), imp.dictionaryID)
		assert.Equal(t, path, imp.path)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	}
	assert.Equal(t, "import_words", (&ImportWordsJob{}).Name())
}
