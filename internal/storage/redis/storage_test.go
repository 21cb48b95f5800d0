package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/floopybird/backend/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		Username: "alice",
		Password: "hunter",
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.Username, retrieved.Username)
	s.Equal(user.Password, retrieved.Password)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Score tests

func (s *StorageSuite) TestSubmitScoreCreatesRecord() {
	err := s.storage.SubmitScore(s.ctx, "alice", 10)
	s.Require().NoError(err)

	score, err := s.storage.GetScore(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(float64(10), score.Score)
}

func (s *StorageSuite) TestSubmitScoreKeepsMax() {
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "alice", 10))

	// Lower submission is discarded
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "alice", 7))
	score, err := s.storage.GetScore(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(float64(10), score.Score)

	// Equal submission is discarded
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "alice", 10))
	score, err = s.storage.GetScore(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(float64(10), score.Score)

	// Higher submission replaces
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "alice", 15))
	score, err = s.storage.GetScore(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(float64(15), score.Score)
}

func (s *StorageSuite) TestSubmitScoreConcurrent() {
	var wg sync.WaitGroup
	for _, score := range []float64{20, 30} {
		wg.Add(1)
		go func(sc float64) {
			defer wg.Done()
			_ = s.storage.SubmitScore(s.ctx, "alice", sc)
		}(score)
	}
	wg.Wait()

	score, err := s.storage.GetScore(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(float64(30), score.Score)
}

func (s *StorageSuite) TestGetScoreNotFound() {
	_, err := s.storage.GetScore(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrScoreNotFound)
}

func (s *StorageSuite) TestTopScoresOrdering() {
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "a", 5))
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "b", 9))
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "c", 3))

	scores, err := s.storage.TopScores(s.ctx, 20)
	s.Require().NoError(err)
	s.Require().Len(scores, 3)
	s.Equal("b", scores[0].Username)
	s.Equal("a", scores[1].Username)
	s.Equal("c", scores[2].Username)
}

func (s *StorageSuite) TestTopScoresTieBreak() {
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "zoe", 5))
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "amy", 5))
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "mia", 9))

	scores, err := s.storage.TopScores(s.ctx, 20)
	s.Require().NoError(err)
	s.Require().Len(scores, 3)
	s.Equal("mia", scores[0].Username)
	s.Equal("amy", scores[1].Username)
	s.Equal("zoe", scores[2].Username)
}

func (s *StorageSuite) TestTopScoresLimit() {
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "a", 1))
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "b", 2))
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "c", 3))

	scores, err := s.storage.TopScores(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(scores, 2)
	s.Equal("c", scores[0].Username)
	s.Equal("b", scores[1].Username)
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.Session{
		Token:     "sess_abc",
		Username:  "alice",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "sess_abc")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "sess_nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	session := &model.Session{Token: "sess_abc", Username: "alice"}
	_ = s.storage.SaveSession(s.ctx, session)

	err := s.storage.DeleteSession(s.ctx, "sess_abc")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "sess_abc")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionTTL() {
	session := &model.Session{Token: "sess_abc", Username: "alice"}
	_ = s.storage.SaveSession(s.ctx, session)

	ttl := s.mini.TTL(sessionKey("sess_abc"))
	s.True(ttl > 0, "Session should have TTL")

	s.mini.FastForward(2 * time.Hour)
	_, err := s.storage.GetSession(s.ctx, "sess_abc")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestPing() {
	s.NoError(s.storage.Ping(s.ctx))
}
