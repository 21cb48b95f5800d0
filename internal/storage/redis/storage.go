package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/floopybird/backend/internal/model"
	"github.com/floopybird/backend/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, userKey(user.Username), data, 0).Err()
}

func (s *Storage) GetUser(ctx context.Context, username string) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Score operations

// SubmitScore records the score only if it exceeds the stored best.
// ZADD GT makes the compare-and-set a single server-side operation, so
// concurrent submissions for the same user cannot lose the larger value.
func (s *Storage) SubmitScore(ctx context.Context, username string, score float64) error {
	return s.client.ZAddGT(ctx, scoresKey(), redis.Z{
		Score:  score,
		Member: username,
	}).Err()
}

func (s *Storage) GetScore(ctx context.Context, username string) (*model.Score, error) {
	score, err := s.client.ZScore(ctx, scoresKey(), username).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrScoreNotFound
		}
		return nil, err
	}

	return &model.Score{Username: username, Score: score}, nil
}

func (s *Storage) TopScores(ctx context.Context, limit int) ([]model.Score, error) {
	if limit <= 0 {
		return []model.Score{}, nil
	}

	members, err := s.client.ZRevRangeWithScores(ctx, scoresKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]model.Score, 0, len(members))
	for _, m := range members {
		username, ok := m.Member.(string)
		if !ok {
			continue
		}
		scores = append(scores, model.Score{Username: username, Score: m.Score})
	}

	// Redis breaks score ties by member descending here; re-sort ties
	// to username ascending for a stable ordering.
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Username < scores[j].Username
	})

	return scores, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(session.Token), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSession(ctx context.Context, token string) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

// Ping verifies connectivity to Redis

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
