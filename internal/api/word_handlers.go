package api

import (
	"net/http"

	"github.com/vytor/lexiflash/internal/services"
)

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	q, err := parseWordQuery(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	words, err := s.Words.ListWords(r.Context(), q)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, words)
}

func (s *Server) handleCreateWord(w http.ResponseWriter, r *http.Request) {
	var in services.CreateWordInput
	if err := decodeJSON(w, r, &in); err != nil {
		handleError(w, r, err)
		return
	}
	word, err := s.Words.CreateWord(r.Context(), in)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, word)
}

func (s *Server) handleGetWord(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	word, err := s.Words.GetWord(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, word)
}

func (s *Server) handleReviewWord(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var in services.ReviewInput
	if err := decodeJSON(w, r, &in); err != nil {
		handleError(w, r, err)
		return
	}
	word, err := s.Words.ReviewWord(r.Context(), id, in)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, word)
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	options, err := queryInt(r.URL.Query(), "options", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}
	quiz, err := s.Words.Quiz(r.Context(), id, options)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, quiz)
}

func (s *Server) handlePractice(w http.ResponseWriter, r *http.Request) {
	q, err := parseWordQuery(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	count, err := queryInt(r.URL.Query(), "count", 0)
	if err != nil {
		handleError(w, r, err)
		return
	}
	words, err := s.Words.PracticeSession(r.Context(), q, count)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, words)
}
