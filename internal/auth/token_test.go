package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/workdesk/workdesk/internal/shared"
)

func TestTokenManagerIssueAndVerify(t *testing.T) {
	manager := NewTokenManager("secret", time.Hour)

	token, err := manager.Issue("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := manager.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestTokenManagerRejectsGarbage(t *testing.T) {
	manager := NewTokenManager("secret", time.Hour)

	_, err := manager.Verify("not-a-token")
	require.True(t, errors.Is(err, shared.ErrTokenInvalid))
}

func TestTokenManagerRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.True(t, errors.Is(err, shared.ErrTokenInvalid))
}

func TestTokenManagerExpiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	manager := NewTokenManager("secret", time.Hour).WithClock(func() time.Time { return now })

	token, err := manager.Issue("user-1")
	require.NoError(t, err)

	_, err = manager.Verify(token)
	require.NoError(t, err)

	now = now.Add(time.Hour + time.Minute)
	_, err = manager.Verify(token)
	require.True(t, errors.Is(err, shared.ErrTokenExpired))
}
