package repositories

import (
	"context"
	"fmt"

	"github.com/hector17rock/SeatServe/pkg/logger"
)

// SessionRepositoryInterface holds the signed-in identity, the logged-in
// gate and the vendor picked in the concession-selection step.
type SessionRepositoryInterface interface {
	SetIdentity(ctx context.Context, displayName string) error
	Identity(ctx context.Context) (string, error)
	LoggedIn(ctx context.Context) (bool, error)
	ClearIdentity(ctx context.Context) error
	SetVendor(ctx context.Context, name string) error
	Vendor(ctx context.Context) (string, error)
}

// SessionRepository keeps session state in the shared key/value store.
type SessionRepository struct {
	store  Store
	logger *logger.Logger
}

// NewSessionRepository creates a SessionRepository on top of the given store.
func NewSessionRepository(store Store, log *logger.Logger) *SessionRepository {
	return &SessionRepository{
		store:  store,
		logger: log.WithComponent("session_repository"),
	}
}

// SetIdentity records the display name and flips the logged-in gate.
func (r *SessionRepository) SetIdentity(ctx context.Context, displayName string) error {
	if err := r.store.Set(ctx, KeyUser, displayName); err != nil {
		return fmt.Errorf("failed to store identity: %w", err)
	}
	if err := r.store.Set(ctx, KeyLoggedIn, "true"); err != nil {
		return fmt.Errorf("failed to store login flag: %w", err)
	}
	r.logger.Info("Identity stored", "user", displayName)
	return nil
}

// Identity returns the stored display name, empty when nobody is signed in.
func (r *SessionRepository) Identity(ctx context.Context) (string, error) {
	name, _, err := r.store.Get(ctx, KeyUser)
	if err != nil {
		return "", fmt.Errorf("failed to read identity: %w", err)
	}
	return name, nil
}

// LoggedIn reports whether the logged-in flag is set. Anything but the
// literal "true" counts as logged out.
func (r *SessionRepository) LoggedIn(ctx context.Context) (bool, error) {
	value, ok, err := r.store.Get(ctx, KeyLoggedIn)
	if err != nil {
		return false, fmt.Errorf("failed to read login flag: %w", err)
	}
	return ok && value == "true", nil
}

// ClearIdentity removes the identity and the logged-in flag.
func (r *SessionRepository) ClearIdentity(ctx context.Context) error {
	if err := r.store.Delete(ctx, KeyLoggedIn); err != nil {
		return fmt.Errorf("failed to clear login flag: %w", err)
	}
	if err := r.store.Delete(ctx, KeyUser); err != nil {
		return fmt.Errorf("failed to clear identity: %w", err)
	}
	r.logger.Info("Identity cleared")
	return nil
}

// SetVendor records the concession chosen upstream of the menu.
func (r *SessionRepository) SetVendor(ctx context.Context, name string) error {
	if err := r.store.Set(ctx, KeyConcession, name); err != nil {
		return fmt.Errorf("failed to store vendor selection: %w", err)
	}
	r.logger.Info("Vendor selected", "vendor", name)
	return nil
}

// Vendor returns the selected concession name, empty when none was chosen.
func (r *SessionRepository) Vendor(ctx context.Context) (string, error) {
	name, _, err := r.store.Get(ctx, KeyConcession)
	if err != nil {
		return "", fmt.Errorf("failed to read vendor selection: %w", err)
	}
	return name, nil
}
