package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStorageRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	storage := NewFileStorage(path)

	_, ok := storage.Get("token")
	require.False(t, ok)

	require.NoError(t, storage.Set("token", "abc"))
	require.NoError(t, storage.Set("loginTime", "123"))

	// A fresh instance reads the same file.
	reopened := NewFileStorage(path)
	v, ok := reopened.Get("token")
	require.True(t, ok)
	require.Equal(t, "abc", v)

	require.NoError(t, reopened.Delete("token"))
	_, ok = storage.Get("token")
	require.False(t, ok)
	v, ok = storage.Get("loginTime")
	require.True(t, ok)
	require.Equal(t, "123", v)
}
