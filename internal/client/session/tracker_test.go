package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTrackerSetAuthAndToken(t *testing.T) {
	tracker := NewTracker(NewMemoryStorage(), 5*time.Minute)

	require.NoError(t, tracker.SetAuth("jwt-token"))
	require.True(t, tracker.IsAuthenticated())

	token, ok := tracker.Token()
	require.True(t, ok)
	require.Equal(t, "jwt-token", token)
}

func TestTrackerExpiryClearsSession(t *testing.T) {
	storage := NewMemoryStorage()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewTracker(storage, 5*time.Minute).WithClock(func() time.Time { return now })

	require.NoError(t, tracker.SetAuth("jwt-token"))

	now = now.Add(4 * time.Minute)
	require.True(t, tracker.IsAuthenticated())

	now = now.Add(2 * time.Minute)
	require.False(t, tracker.IsAuthenticated())

	// Expiry wipes the stored keys, not just the answer.
	_, ok := storage.Get("token")
	require.False(t, ok)
	_, ok = storage.Get("loginTime")
	require.False(t, ok)
}

func TestTrackerRemainingTimeFloorsMinutes(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewTracker(NewMemoryStorage(), 5*time.Minute).WithClock(func() time.Time { return now })

	require.NoError(t, tracker.SetAuth("jwt-token"))

	minutes, ok := tracker.RemainingTime()
	require.True(t, ok)
	require.Equal(t, 5, minutes)

	now = now.Add(90 * time.Second)
	minutes, ok = tracker.RemainingTime()
	require.True(t, ok)
	require.Equal(t, 3, minutes)

	now = now.Add(4 * time.Minute)
	_, ok = tracker.RemainingTime()
	require.False(t, ok)
}

func TestTrackerLogout(t *testing.T) {
	tracker := NewTracker(NewMemoryStorage(), 5*time.Minute)

	require.NoError(t, tracker.SetAuth("jwt-token"))
	tracker.Logout()
	require.False(t, tracker.IsAuthenticated())
	_, ok := tracker.Token()
	require.False(t, ok)
}

func TestTrackerMalformedLoginTime(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set("token", "jwt-token"))
	require.NoError(t, storage.Set("loginTime", "not-a-number"))

	tracker := NewTracker(storage, 5*time.Minute)
	require.False(t, tracker.IsAuthenticated())
}

func TestTrackerStoresEpochMillis(t *testing.T) {
	storage := NewMemoryStorage()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker := NewTracker(storage, 5*time.Minute).WithClock(func() time.Time { return now })

	require.NoError(t, tracker.SetAuth("jwt-token"))
	raw, ok := storage.Get("loginTime")
	require.True(t, ok)
	require.Equal(t, "1709294400000", raw)
}
