package api

import (
	"net/http"

	"github.com/vytor/lexiflash/internal/services"
)

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	dictionaryID, err := queryInt64(r.URL.Query(), "dictionary_id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	overview, err := s.Stats.Overview(r.Context(), dictionaryID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, overview)
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	streak, err := s.Stats.Streak(r.Context(), s.now())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, streak)
}

func (s *Server) handleWeekly(w http.ResponseWriter, r *http.Request) {
	rollup, err := s.Stats.Weekly(r.Context(), s.now())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, rollup)
}

func (s *Server) handleListActivity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records, err := s.Stats.ListActivity(r.Context(), services.DateRange{From: q.Get("from"), To: q.Get("to")})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, records)
}

func (s *Server) handleRecordActivity(w http.ResponseWriter, r *http.Request) {
	var in services.ActivityInput
	if err := decodeJSON(w, r, &in); err != nil {
		handleError(w, r, err)
		return
	}
	if err := s.Stats.RecordActivity(r.Context(), in); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
