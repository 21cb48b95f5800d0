package handler

import (
	"encoding/json"
	"net/http"

	"github.com/floopybird/backend/internal/api/apierr"
	"github.com/floopybird/backend/internal/api/middleware"
	"github.com/floopybird/backend/internal/api/request"
	"github.com/floopybird/backend/internal/api/response"
	"github.com/floopybird/backend/internal/services/leaderboard"
)

// LeaderboardHandler handles score submission and the leaderboard view
type LeaderboardHandler struct {
	leaderboard *leaderboard.Service
}

// NewLeaderboardHandler creates a new LeaderboardHandler
func NewLeaderboardHandler(lb *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboard: lb,
	}
}

// Submit handles POST /submit-score. The username comes from the
// session, never from the request body.
func (h *LeaderboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustGetSession(r.Context())

	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Score == nil {
		apierr.WriteError(w, apierr.NewValidationError("Invalid data"))
		return
	}

	if err := h.leaderboard.Submit(r.Context(), session.Username, *req.Score); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Score saved successfully!"})
}

// Top handles GET /leaderboard
func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	scores, err := h.leaderboard.Top(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(scores))
}
