package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLockoutTriggersAfterMaxAttempts(t *testing.T) {
	lockout := NewLockout(NewMemoryStorage(), 5, 5*time.Minute)

	for i := 1; i <= 4; i++ {
		attempts, err := lockout.RecordFailure()
		require.NoError(t, err)
		require.Equal(t, i, attempts)
		require.False(t, lockout.IsLocked())
	}

	attempts, err := lockout.RecordFailure()
	require.NoError(t, err)
	require.Equal(t, 5, attempts)
	require.True(t, lockout.IsLocked())
	require.Greater(t, lockout.Remaining(), time.Duration(0))
}

func TestLockoutExpiresAfterWindow(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	storage := NewMemoryStorage()
	lockout := NewLockout(storage, 5, 5*time.Minute).WithClock(func() time.Time { return now })

	for i := 0; i < 5; i++ {
		_, err := lockout.RecordFailure()
		require.NoError(t, err)
	}
	require.True(t, lockout.IsLocked())

	now = now.Add(5*time.Minute + time.Second)
	require.False(t, lockout.IsLocked())

	// The lapsed lockout cleared the persisted state.
	_, ok := storage.Get("lockoutUntil")
	require.False(t, ok)
	_, ok = storage.Get("failedLoginAttempts")
	require.False(t, ok)
}

func TestLockoutReset(t *testing.T) {
	lockout := NewLockout(NewMemoryStorage(), 5, 5*time.Minute)

	for i := 0; i < 5; i++ {
		_, err := lockout.RecordFailure()
		require.NoError(t, err)
	}
	require.True(t, lockout.IsLocked())

	lockout.Reset()
	require.False(t, lockout.IsLocked())

	attempts, err := lockout.RecordFailure()
	require.NoError(t, err)
	require.Equal(t, 1, attempts)
}

func TestLockoutPersistsAcrossInstances(t *testing.T) {
	storage := NewMemoryStorage()
	first := NewLockout(storage, 5, 5*time.Minute)
	for i := 0; i < 5; i++ {
		_, err := first.RecordFailure()
		require.NoError(t, err)
	}

	second := NewLockout(storage, 5, 5*time.Minute)
	require.True(t, second.IsLocked())
}
