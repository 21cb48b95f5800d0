package request

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SubmitScoreRequest is the request body for submitting a score.
// Score is a pointer so a missing field can be told apart from zero;
// a non-numeric JSON value fails decoding and is rejected as invalid.
type SubmitScoreRequest struct {
	Score *float64 `json:"score"`
}
