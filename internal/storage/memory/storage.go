package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/floopybird/backend/internal/model"
	"github.com/floopybird/backend/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users    map[string]*model.User
	scores   map[string]float64
	sessions map[string]*model.Session
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:    make(map[string]*model.User),
		scores:   make(map[string]float64),
		sessions: make(map[string]*model.Session),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.users[user.Username] = &u
	return nil
}

func (s *Storage) GetUser(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

// Score operations

// SubmitScore keeps the maximum of the stored and submitted scores.
// The write lock covers the compare and the set, so concurrent
// submissions for the same user cannot lose the larger value.
func (s *Storage) SubmitScore(ctx context.Context, username string, score float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.scores[username]; !ok || score > current {
		s.scores[username] = score
	}
	return nil
}

func (s *Storage) GetScore(ctx context.Context, username string) (*model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	score, ok := s.scores[username]
	if !ok {
		return nil, model.ErrScoreNotFound
	}
	return &model.Score{Username: username, Score: score}, nil
}

func (s *Storage) TopScores(ctx context.Context, limit int) ([]model.Score, error) {
	if limit <= 0 {
		return []model.Score{}, nil
	}

	s.mu.RLock()
	scores := make([]model.Score, 0, len(s.scores))
	for username, score := range s.scores {
		scores = append(scores, model.Score{Username: username, Score: score})
	}
	s.mu.RUnlock()

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Username < scores[j].Username
	})

	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := *session
	s.sessions[session.Token] = &sess
	return nil
}

func (s *Storage) GetSession(ctx context.Context, token string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Expiry is enforced by the auth service; Redis handles it with key
	// TTLs, so the in-memory store just returns whatever it holds.
	session, ok := s.sessions[token]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	sess := *session
	return &sess, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Ping always succeeds for in-memory storage

func (s *Storage) Ping(ctx context.Context) error {
	return nil
}
