package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hackseek-app/hackseek/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidInput       = errors.New("username, email, and password are required")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

const DefaultSessionTTL = 24 * time.Hour

// Service wraps the store with password hashing and credential checks.
// Password hashes never leave this package.
type Service struct {
	store      store.API
	sessionTTL time.Duration
}

func NewService(st store.API) *Service {
	return &Service{store: st, sessionTTL: DefaultSessionTTL}
}

// WithSessionTTL overrides the lifetime of sessions opened by Authenticate.
// Non-positive values keep the default.
func (s *Service) WithSessionTTL(ttl time.Duration) *Service {
	if ttl > 0 {
		s.sessionTTL = ttl
	}
	return s
}

func (s *Service) Register(ctx context.Context, username, email, password string) (store.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return store.User{}, ErrInvalidInput
	}
	if len(password) < 8 {
		return store.User{}, ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return store.User{}, fmt.Errorf("hash password: %w", err)
	}
	return s.store.CreateUser(ctx, username, email, string(hash))
}

// Authenticate verifies the credentials and opens a session.
func (s *Service) Authenticate(ctx context.Context, username, password string) (store.User, store.Session, error) {
	u, err := s.store.UserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, store.ErrNotFound) {
		return store.User{}, store.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return store.User{}, store.Session{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return store.User{}, store.Session{}, ErrInvalidCredentials
	}
	sess, err := s.store.CreateSession(ctx, u.ID, s.sessionTTL)
	if err != nil {
		return store.User{}, store.Session{}, err
	}
	return u, sess, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.store.DeleteSession(ctx, token)
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, upd store.ProfileUpdate) (store.User, error) {
	return s.store.UpdateProfile(ctx, userID, upd)
}

// UpdatePassword replaces the password after verifying the current one.
func (s *Service) UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	u, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.store.UpdatePasswordHash(ctx, userID, string(hash))
}

// ResetPassword is the forgot-password path: the caller proves identity by
// knowing both the username and the registered email.
func (s *Service) ResetPassword(ctx context.Context, username, email, newPassword string) error {
	u, err := s.store.UserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}
	if !strings.EqualFold(u.Email, strings.TrimSpace(email)) {
		return ErrInvalidCredentials
	}
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.store.UpdatePasswordHash(ctx, u.ID, string(hash))
}

// DeleteAccount verifies the password, then removes the user and all
// dependent rows.
func (s *Service) DeleteAccount(ctx context.Context, userID, password string) error {
	u, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return s.store.DeleteUser(ctx, userID)
}
