package storage

import (
	"context"

	"github.com/floopybird/backend/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, username string) (*model.User, error)

	// Score operations.
	// SubmitScore applies "set to max(current, submitted)" atomically:
	// a missing record is created, a higher score replaces the stored
	// one, and a lower or equal score leaves it untouched.
	SubmitScore(ctx context.Context, username string, score float64) error
	GetScore(ctx context.Context, username string) (*model.Score, error)
	TopScores(ctx context.Context, limit int) ([]model.Score, error)

	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error

	// Ping verifies connectivity to the backing store
	Ping(ctx context.Context) error
}
