package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	if len(s.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: s.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}).Handler)
	}

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/dictionaries", func(r chi.Router) {
		r.Get("/", s.handleListDictionaries)
		r.Post("/", s.handleCreateDictionary)
		r.Get("/{id}", s.handleGetDictionary)
		r.Get("/{id}/sets", s.handleListSets)
		r.Post("/{id}/sets", s.handleCreateSet)
		r.Post("/{id}/import", s.handleImport)
	})
	r.Post("/sets/{id}/words/{wordID}", s.handleAddWordToSet)

	r.Route("/words", func(r chi.Router) {
		r.Get("/", s.handleListWords)
		r.Post("/", s.handleCreateWord)
		r.Get("/{id}", s.handleGetWord)
		r.Post("/{id}/review", s.handleReviewWord)
		r.Get("/{id}/quiz", s.handleQuiz)
	})
	r.Get("/practice", s.handlePractice)

	r.Route("/stats", func(r chi.Router) {
		r.Get("/overview", s.handleOverview)
		r.Get("/streak", s.handleStreak)
		r.Get("/weekly", s.handleWeekly)
	})
	r.Get("/activity", s.handleListActivity)
	r.Post("/activity", s.handleRecordActivity)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errNotFoundRoute(r))
	})
	return r
}
