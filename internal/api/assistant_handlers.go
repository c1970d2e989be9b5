package api

import (
	"net/http"
	"strings"

	"github.com/cogniflow/cogniflow/internal/errors"
)

type assistantRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		handleError(w, r, errors.NewValidationError("message", "cannot be empty"))
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"reply": s.Assistant.Answer(req.Message),
	})
}
