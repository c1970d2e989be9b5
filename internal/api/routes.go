package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Post("/users", s.handleRegister)
	r.Get("/users", s.handleListUsers)
	r.Post("/login", s.handleLogin)
	r.Get("/users/{id}", s.handleGetUser)

	r.Get("/users/{id}/progress", s.handleGetProgress)
	r.Post("/users/{id}/activities", s.handleRecordActivity)
	r.Post("/users/{id}/checkin", s.handleCheckin)
	r.Post("/users/{id}/goals", s.handleGoalProgress)
	r.Post("/users/{id}/coins/spend", s.handleSpendCoins)

	r.Get("/leaderboard", s.handleLeaderboard)
	r.Post("/assistant", s.handleAssistant)

	r.Post("/admin/reindex", s.handleReindex)

	return r
}
