package model

// Score is a user's current best score.
//
// At most one Score exists per username, and its value only ever
// increases across successful submissions.
type Score struct {
	Username string  `json:"username"`
	Score    float64 `json:"score"`
}
