package reset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/workdesk/workdesk/internal/shared"
)

func TestMemoryStoreIssueAndResolve(t *testing.T) {
	store := NewMemoryStore(15 * time.Minute)
	ctx := context.Background()

	token, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(15 * time.Minute)

	_, err := store.Resolve(context.Background(), "no-such-token")
	require.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestMemoryStoreSingleLiveTokenPerUser(t *testing.T) {
	store := NewMemoryStore(15 * time.Minute)
	ctx := context.Background()

	first, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)
	second, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, err = store.Resolve(ctx, first)
	require.True(t, errors.Is(err, shared.ErrNotFound))

	userID, err := store.Resolve(ctx, second)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestMemoryStoreConsume(t *testing.T) {
	store := NewMemoryStore(15 * time.Minute)
	ctx := context.Background()

	token, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, store.Consume(ctx, "user-1"))
	_, err = store.Resolve(ctx, token)
	require.True(t, errors.Is(err, shared.ErrNotFound))

	// Consuming with nothing outstanding is a no-op.
	require.NoError(t, store.Consume(ctx, "user-1"))
}

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(15 * time.Minute).WithClock(func() time.Time { return now })
	ctx := context.Background()

	token, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)

	now = now.Add(14 * time.Minute)
	_, err = store.Resolve(ctx, token)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = store.Resolve(ctx, token)
	require.True(t, errors.Is(err, shared.ErrNotFound))
}
