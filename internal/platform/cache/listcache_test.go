package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T) (*ListCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewListCache(client, time.Minute), mr
}

func TestFetchJSONPopulatesAndServesFromCache(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return []widget{{ID: "1", Name: "first"}}, nil
	}

	var got []widget
	require.NoError(t, cache.FetchJSON(ctx, "widgets", &got, loader))
	require.Equal(t, 1, calls)
	require.Equal(t, []widget{{ID: "1", Name: "first"}}, got)

	got = nil
	require.NoError(t, cache.FetchJSON(ctx, "widgets", &got, loader))
	require.Equal(t, 1, calls)
	require.Equal(t, []widget{{ID: "1", Name: "first"}}, got)
}

func TestFetchJSONLoaderError(t *testing.T) {
	cache, _ := newTestCache(t)

	boom := errors.New("boom")
	var got []widget
	err := cache.FetchJSON(context.Background(), "widgets", &got, func(context.Context) (any, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
}

func TestInvalidateForcesReload(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return []widget{{ID: "1"}}, nil
	}

	var got []widget
	require.NoError(t, cache.FetchJSON(ctx, "widgets", &got, loader))
	require.NoError(t, cache.Invalidate(ctx, "widgets"))
	require.NoError(t, cache.FetchJSON(ctx, "widgets", &got, loader))
	require.Equal(t, 2, calls)
}

func TestFetchJSONExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return []widget{{ID: "1"}}, nil
	}

	var got []widget
	require.NoError(t, cache.FetchJSON(ctx, "widgets", &got, loader))

	mr.FastForward(2 * time.Minute)
	require.NoError(t, cache.FetchJSON(ctx, "widgets", &got, loader))
	require.Equal(t, 2, calls)
}

func TestNilClientBypassesCache(t *testing.T) {
	cache := NewListCache(nil, time.Minute)

	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return []widget{{ID: "1"}}, nil
	}

	var got []widget
	require.NoError(t, cache.FetchJSON(context.Background(), "widgets", &got, loader))
	require.NoError(t, cache.FetchJSON(context.Background(), "widgets", &got, loader))
	require.Equal(t, 2, calls)
	require.Len(t, got, 1)
}
