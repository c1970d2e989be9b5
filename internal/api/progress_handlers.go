package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cogniflow/cogniflow/internal/models"
	"github.com/cogniflow/cogniflow/internal/progress"
)

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	rec, err := s.ProgressService.GetProgress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, rec)
}

type activityRequest struct {
	Type           string `json:"type"`
	Subject        string `json:"subject"`
	TimeSpent      int    `json:"timeSpent"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	CardsStudied   int    `json:"cardsStudied"`
	KnownCards     int    `json:"knownCards"`
	GameType       string `json:"gameType"`
}

func (s *Server) handleRecordActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	rec, out, err := s.ProgressService.RecordActivity(r.Context(), chi.URLParam(r, "id"), progress.ActivityInput{
		Type:           models.ActivityType(req.Type),
		Subject:        req.Subject,
		TimeSpent:      req.TimeSpent,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		CardsStudied:   req.CardsStudied,
		KnownCards:     req.KnownCards,
		GameType:       req.GameType,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"xpEarned":    out.XPEarned,
		"coinsEarned": out.CoinsEarned,
		"leveledUp":   out.LeveledUp,
		"level":       out.NewLevel,
		"progress":    rec,
	})
}

func (s *Server) handleCheckin(w http.ResponseWriter, r *http.Request) {
	checkin, created, err := s.ProgressService.RecordCheckin(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	respondJSON(w, r, status, map[string]any{
		"checkin":          checkin,
		"alreadyCheckedIn": !created,
	})
}

type goalProgressRequest struct {
	Goal   string `json:"goal"`
	Amount int    `json:"amount"`
}

func (s *Server) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	var req goalProgressRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Amount == 0 {
		req.Amount = 1
	}

	rec, err := s.ProgressService.RecordGoalProgress(r.Context(), chi.URLParam(r, "id"), models.GoalKind(req.Goal), req.Amount)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, rec.DailyGoals)
}

type spendRequest struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

func (s *Server) handleSpendCoins(w http.ResponseWriter, r *http.Request) {
	var req spendRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	rec, err := s.ProgressService.SpendCoins(r.Context(), chi.URLParam(r, "id"), req.Amount, req.Reason)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, rec.Coins)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := s.ProgressService.Leaderboard(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{"leaderboard": entries})
}
