package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nravi/optionpulse/internal/history"
	"github.com/nravi/optionpulse/internal/marketdata"
	"github.com/nravi/optionpulse/internal/pipeline"
	"github.com/nravi/optionpulse/pkg/logger"
)

// Broadcaster pushes a scoring outcome to connected dashboard clients
type Broadcaster interface {
	Broadcast(v interface{})
}

// ScoreHandler handles scoring and session history endpoints
type ScoreHandler struct {
	runner      *pipeline.Runner
	session     *history.Session
	broadcaster Broadcaster
	logger      *logger.Logger
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(runner *pipeline.Runner, session *history.Session, broadcaster Broadcaster, log *logger.Logger) *ScoreHandler {
	return &ScoreHandler{
		runner:      runner,
		session:     session,
		broadcaster: broadcaster,
		logger:      log,
	}
}

// Score executes one scoring run with optional manual overrides
// POST /api/score
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var overrides marketdata.Overrides
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	if err := overrides.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := h.runner.Run(ctx, overrides)
	if err != nil {
		h.logger.WithError(err).Error("Scoring run failed")
		respondError(w, http.StatusInternalServerError, "Scoring run failed")
		return
	}

	if h.broadcaster != nil {
		h.broadcaster.Broadcast(outcome)
	}

	respondJSON(w, http.StatusOK, outcome)
}

// GetHistory returns all scoring runs recorded this session
// GET /api/history
func (h *ScoreHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	rows := h.session.Rows()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(rows),
		"rows":  rows,
	})
}

// ClearHistory empties the session log
// DELETE /api/history
func (h *ScoreHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.session.Clear()

	respondJSON(w, http.StatusOK, map[string]string{
		"status": "cleared",
	})
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
