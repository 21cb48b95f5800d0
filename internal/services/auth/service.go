package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/floopybird/backend/internal/model"
	"github.com/floopybird/backend/internal/storage"
)

// Errors
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameInvalid  = errors.New("username must contain only letters")
	ErrWrongPassword    = errors.New("wrong password")
	ErrInvalidSession   = errors.New("invalid or expired session")
)

// Service handles registration, login and session management.
// Sessions are persisted via the storage layer so that every server
// instance sees the same session set.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	now             func() time.Time
	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(storage storage.Storage, logger *slog.Logger, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		logger:          logger,
		now:             time.Now,
		sessionDuration: cfg.SessionDuration,
	}
}

// Register creates a user account and a session for it.
//
// Registering a username that already exists is not an error: the
// existing account is silently reused and only a fresh session is
// created. Usernames must be non-empty and letters only.
func (s *Service) Register(ctx context.Context, username, password string) (*model.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if !isAlpha(username) {
		return nil, ErrUsernameInvalid
	}

	_, err := s.storage.GetUser(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		user := &model.User{
			Username: username,
			Password: password,
		}
		if err := s.storage.SaveUser(ctx, user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return s.createSession(ctx, username)
}

// Login authenticates a user and creates a session
func (s *Service) Login(ctx context.Context, username, password string) (*model.Session, error) {
	user, err := s.storage.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if password != user.Password {
		return nil, ErrWrongPassword
	}

	session, err := s.createSession(ctx, username)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login successful", slog.String("username", username))
	return session, nil
}

// Logout destroys the session for the given token. Logging out with no
// session (or an unknown token) is a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.storage.DeleteSession(ctx, token)
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(ctx context.Context, token string) (*model.Session, error) {
	session, err := s.storage.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	if session.Expired(s.now()) {
		_ = s.storage.DeleteSession(ctx, token)
		return nil, ErrInvalidSession
	}

	return session, nil
}

// createSession creates and persists a new session for a username
func (s *Service) createSession(ctx context.Context, username string) (*model.Session, error) {
	now := s.now()

	session := &model.Session{
		Token:     generateToken(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// generateToken generates an opaque session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}

// isAlpha reports whether the string consists solely of letters
func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
