package service

import (
	"context"
	"strings"
	"time"

	"github.com/hector17rock/SeatServe/internal/repositories"
	"github.com/hector17rock/SeatServe/pkg/logger"
)

// DefaultLoginDelay simulates the round trip a real identity provider would
// take. The demo accepts any non-empty credentials.
const DefaultLoginDelay = 400 * time.Millisecond

// AuthServiceInterface is the demo sign-in collaborator. It performs no real
// identity verification: any non-empty email and password succeed.
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context) error
	LoggedIn(ctx context.Context) (bool, error)
	Identity(ctx context.Context) (string, error)
}

// AuthService writes the identity and logged-in keys into session state.
type AuthService struct {
	session repositories.SessionRepositoryInterface
	logger  *logger.Logger
	delay   time.Duration
}

// NewAuthService creates an AuthService with the default simulated delay.
func NewAuthService(session repositories.SessionRepositoryInterface, log *logger.Logger) *AuthService {
	return &AuthService{
		session: session,
		logger:  log.WithComponent("auth_service"),
		delay:   DefaultLoginDelay,
	}
}

// SetLoginDelay overrides the simulated sign-in delay; tests set it to zero.
func (s *AuthService) SetLoginDelay(delay time.Duration) {
	s.delay = delay
}

// Login validates that both fields are non-empty, waits the simulated delay
// and records the identity. Blank fields produce a validation error and no
// state change. The stored display name is the email, as the demo shows it.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		s.logger.Warn("Login rejected: blank credentials")
		return "", ErrMissingCredentials
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err := s.session.SetIdentity(ctx, email); err != nil {
		return "", err
	}
	s.logger.Info("User logged in", "user", email)
	return email, nil
}

// Logout removes the identity and logged-in keys.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.session.ClearIdentity(ctx); err != nil {
		return err
	}
	s.logger.Info("User logged out")
	return nil
}

// LoggedIn reports whether the ordering UI should be shown.
func (s *AuthService) LoggedIn(ctx context.Context) (bool, error) {
	return s.session.LoggedIn(ctx)
}

// Identity returns the stored display name.
func (s *AuthService) Identity(ctx context.Context) (string, error) {
	return s.session.Identity(ctx)
}
