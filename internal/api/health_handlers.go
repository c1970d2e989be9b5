package api

import (
	"net/http"

	"github.com/cogniflow/cogniflow/internal/errors"
	"github.com/cogniflow/cogniflow/internal/logger"
	"github.com/cogniflow/cogniflow/internal/worker"
)

// handleHealth is a liveness probe: the process is up.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReady is a readiness probe: the database answers a ping.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	if err := s.DB.PingContext(ctx); err != nil {
		log.Warn("readiness check failed: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Database unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}

// handleReindex queues a background reindex of the leaderboard columns.
func (s *Server) handleReindex(w http.ResponseWriter, r *http.Request) {
	job := &worker.ReindexJob{ProgressRepo: s.ProgressRepo}
	if !s.MaintenancePool.TrySubmit(job) {
		handleError(w, r, errors.NewBadRequestError("maintenance queue full, try again later"))
		return
	}
	respondJSON(w, r, http.StatusAccepted, map[string]any{
		"status": "queued",
		"queued": s.MaintenancePool.QueueSize(),
	})
}
