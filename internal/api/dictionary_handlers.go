package api

import (
	"net/http"

	"github.com/vytor/lexiflash/internal/services"
)

func (s *Server) handleListDictionaries(w http.ResponseWriter, r *http.Request) {
	dicts, err := s.Dictionaries.ListDictionaries(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dicts)
}

func (s *Server) handleCreateDictionary(w http.ResponseWriter, r *http.Request) {
	var in services.CreateDictionaryInput
	if err := decodeJSON(w, r, &in); err != nil {
		handleError(w, r, err)
		return
	}
	d, err := s.Dictionaries.CreateDictionary(r.Context(), in)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, d)
}

func (s *Server) handleGetDictionary(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	d, err := s.Dictionaries.GetDictionary(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, d)
}

func (s *Server) handleListSets(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	sets, err := s.Dictionaries.ListSets(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sets)
}

func (s *Server) handleCreateSet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var in services.CreateSetInput
	if err := decodeJSON(w, r, &in); err != nil {
		handleError(w, r, err)
		return
	}
	set, err := s.Dictionaries.CreateSet(r.Context(), id, in)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, set)
}

func (s *Server) handleAddWordToSet(w http.ResponseWriter, r *http.Request) {
	setID, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	wordID, err := idParam(r, "wordID")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := s.Dictionaries.AddWordToSet(r.Context(), setID, wordID); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
