package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vytor/lexiflash/internal/errors"
	"github.com/vytor/lexiflash/internal/logger"
	"github.com/vytor/lexiflash/internal/models"
	"github.com/vytor/lexiflash/internal/services"
	"github.com/vytor/lexiflash/internal/vocab"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// decodeJSON reads a single JSON object into dst, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.NewBadRequestError("invalid JSON body: " + err.Error())
	}
	return nil
}

func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewBadRequestError("invalid " + name + ": " + raw)
	}
	return id, nil
}

func queryInt(q url.Values, key string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid " + key + ": " + raw)
	}
	return v, nil
}

func queryInt64(q url.Values, key string) (int64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid " + key + ": " + raw)
	}
	return v, nil
}

// queryList collects a repeatable parameter, also splitting comma separated
// values. It returns nil when no value is given.
func queryList(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// parseWordQuery reads the filters shared by word listing and practice.
func parseWordQuery(r *http.Request) (services.WordQuery, error) {
	q := r.URL.Query()
	var (
		wq  services.WordQuery
		err error
	)
	if wq.DictionaryID, err = queryInt64(q, "dictionary_id"); err != nil {
		return wq, err
	}
	if wq.SetID, err = queryInt64(q, "set_id"); err != nil {
		return wq, err
	}
	wq.Language = strings.TrimSpace(q.Get("language"))
	wq.Search = strings.TrimSpace(q.Get("q"))

	for _, v := range queryList(q, "level") {
		wq.Levels = append(wq.Levels, models.Level(strings.ToUpper(v)))
	}
	for _, v := range queryList(q, "pos") {
		wq.PartsOfSpeech = append(wq.PartsOfSpeech, models.PartOfSpeech(strings.ToLower(v)))
	}

	if wq.Status, err = vocab.ParseStatus(q.Get("status")); err != nil {
		return wq, errors.NewValidationError("status", err.Error())
	}
	if wq.Sort, err = vocab.ParseSortOrder(q.Get("sort")); err != nil {
		return wq, errors.NewValidationError("sort", err.Error())
	}
	if q.Has("max_rate") {
		v, err := queryInt(q, "max_rate", 0)
		if err != nil {
			return wq, err
		}
		wq.MaxRate = &v
	}
	if wq.Limit, err = queryInt(q, "limit", 0); err != nil {
		return wq, err
	}
	if wq.Offset, err = queryInt(q, "offset", 0); err != nil {
		return wq, err
	}
	return wq, nil
}
