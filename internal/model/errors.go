package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Score errors
	ErrScoreNotFound = errors.New("score not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)
