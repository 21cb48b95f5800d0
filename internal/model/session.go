package model

import "time"

// Session represents an authenticated session. The token is the only
// credential a client holds; it is carried via the session cookie (or a
// Bearer header for non-browser clients).
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
