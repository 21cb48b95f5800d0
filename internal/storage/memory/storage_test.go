package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/floopybird/backend/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{Username: "alice", Password: "hunter"}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("hunter", retrieved.Password)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestSubmitScoreKeepsMax() {
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "alice", 10))
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "alice", 7))

	score, err := s.storage.GetScore(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(float64(10), score.Score)

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

func (s *StorageSuite) TestTopScoresTieBreakAndLimit() {
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "zoe", 5))
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "amy", 5))
	s.Require().NoError(s.storage.SubmitScore(s.ctx, "mia", 9))

	scores, err := s.storage.TopScores(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(scores, 2)
	s.Equal("mia", scores[0].Username)
	s.Equal("amy", scores[1].Username)
}

func (s *StorageSuite) TestSessions() {
	session := &model.Session{
		Token:     "sess_abc",
		Username:  "alice",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	retrieved, err := s.storage.GetSession(s.ctx, "sess_abc")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)

	s.Require().NoError(s.storage.DeleteSession(s.ctx, "sess_abc"))

	_, err = s.storage.GetSession(s.ctx, "sess_abc")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestPing() {
	s.NoError(s.storage.Ping(s.ctx))
}
