package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector17rock/SeatServe/internal/repositories"
)

func newAuthFixture(t *testing.T) (*AuthService, *repositories.SessionRepository) {
	t.Helper()
	log := newTestLogger()
	session := repositories.NewSessionRepository(repositories.NewMemoryStore(), log)
	auth := NewAuthService(session, log)
	auth.SetLoginDelay(0)
	return auth, session
}

func TestLoginRejectsBlankCredentials(t *testing.T) {
	auth, session := newAuthFixture(t)
	ctx := context.Background()

	cases := []struct{ email, password string }{
		{"", ""},
		{"fan@example.com", ""},
		{"", "hunter2"},
		{"   ", "hunter2"},
		{"fan@example.com", "   "},
	}
	for _, tc := range cases {
		_, err := auth.Login(ctx, tc.email, tc.password)
		assert.ErrorIs(t, err, ErrMissingCredentials)
	}

	loggedIn, err := session.LoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)
}

func TestLoginAcceptsAnyNonEmptyCredentials(t *testing.T) {
	auth, session := newAuthFixture(t)
	ctx := context.Background()

	user, err := auth.Login(ctx, "  fan@example.com ", "anything")
	require.NoError(t, err)
	assert.Equal(t, "fan@example.com", user)

	loggedIn, err := session.LoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)

	identity, err := session.Identity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fan@example.com", identity)
}

func TestLogoutClearsIdentityAndFlag(t *testing.T) {
	auth, session := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Login(ctx, "fan@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx))

	loggedIn, err := session.LoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)

	identity, err := session.Identity(ctx)
	require.NoError(t, err)
	assert.Empty(t, identity)
}
