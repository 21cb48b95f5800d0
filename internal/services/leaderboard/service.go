package leaderboard

import (
	"context"
	"log/slog"

	"github.com/floopybird/backend/internal/model"
	"github.com/floopybird/backend/internal/storage"
)

// DefaultLimit is the number of entries the leaderboard view returns
const DefaultLimit = 20

// Service maintains per-user best scores and serves the ranked view
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
	limit   int
}

// New creates a new leaderboard Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		limit:   DefaultLimit,
	}
}

// Submit records a score for a user. The stored value only moves
// upward: the storage layer applies max(current, submitted) atomically,
// so a lower or equal submission is silently discarded and concurrent
// submissions cannot overwrite a higher score with a lower one.
func (s *Service) Submit(ctx context.Context, username string, score float64) error {
	return s.storage.SubmitScore(ctx, username, score)
}

// Top returns the leaderboard: the best scores across all users,
// ordered by score descending with ties broken by username ascending.
func (s *Service) Top(ctx context.Context) ([]model.Score, error) {
	return s.storage.TopScores(ctx, s.limit)
}

// Best returns the current best score for a user
func (s *Service) Best(ctx context.Context, username string) (*model.Score, error) {
	return s.storage.GetScore(ctx, username)
}
