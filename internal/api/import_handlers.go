package api

import (
	stderrors "errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/vytor/lexiflash/internal/errors"
	"github.com/vytor/lexiflash/internal/logger"
	"github.com/vytor/lexiflash/internal/worker"
)

var importExtensions = map[string]bool{".csv": true, ".xlsx": true}

// handleImport stores the uploaded "file" form field and queues it for
// import. The response is sent before the words are inserted.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if _, err := s.Dictionaries.GetDictionary(ctx, id); err != nil {
		handleError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes())
	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("missing or oversized file upload: "+err.Error()))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !importExtensions[ext] {
		handleError(w, r, errors.NewValidationError("file", "must be a .csv or .xlsx file"))
		return
	}

	tmp, err := os.CreateTemp(s.UploadDir, "import-*"+ext)
	if err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}
	_, copyErr := io.Copy(tmp, file)
	closeErr := tmp.Close()
	if err := stderrors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(tmp.Name())
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	if err := s.Jobs.EnqueueImport(id, tmp.Name()); err != nil {
		_ = os.Remove(tmp.Name())
		if stderrors.Is(err, worker.ErrQueueFull) || stderrors.Is(err, worker.ErrPoolStopped) {
			handleError(w, r, errors.NewBusyError(err))
			return
		}
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	log.Info("queued import: dictionary_id=%d, file=%s", id, header.Filename)
	writeJSON(w, r, http.StatusAccepted, map[string]any{
		"status":        "queued",
		"dictionary_id": id,
		"file":          header.Filename,
	})
}
