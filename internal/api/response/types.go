package response

import "github.com/floopybird/backend/internal/model"

// MessageResponse is a simple success message
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the response for a successful login
type LoginResponse struct {
	Message     string `json:"message"`
	RedirectURL string `json:"redirect_url"`
}

// LeaderboardEntry is one row of the leaderboard view
type LeaderboardEntry struct {
	Username string  `json:"username"`
	Score    float64 `json:"score"`
}

// LeaderboardFromModel converts score records to leaderboard entries
func LeaderboardFromModel(scores []model.Score) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, len(scores))
	for i, s := range scores {
		entries[i] = LeaderboardEntry{
			Username: s.Username,
			Score:    s.Score,
		}
	}
	return entries
}

// HealthResponse reports store connectivity
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
