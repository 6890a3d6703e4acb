package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFresh(t *testing.T) {
	now := time.Now().UTC()
	ttl := 6 * time.Hour

	assert.True(t, isFresh(now.Add(-time.Hour), ttl, now))
	assert.True(t, isFresh(now, ttl, now))
	assert.False(t, isFresh(now.Add(-ttl), ttl, now), "record exactly at the TTL boundary is expired")
	assert.False(t, isFresh(now.Add(-7*time.Hour), ttl, now))
}

func TestResolveCached_FreshHit(t *testing.T) {
	fetchCalled := false

	got, origin, err := resolveCached(context.Background(), "weather", time.Hour,
		true, "cached-value", time.Now().UTC().Add(-time.Minute),
		func(ctx context.Context) (string, error) {
			fetchCalled = true
			return "live-value", nil
		},
		func(ctx context.Context, v string) error { return nil },
	)

	require.NoError(t, err)
	assert.Equal(t, "cached-value", got)
	assert.Equal(t, OriginFresh, origin)
	assert.False(t, fetchCalled, "fresh hit must not reach the upstream")
}

func TestResolveCached_MissFetchesAndStores(t *testing.T) {
	var stored string

	got, origin, err := resolveCached(context.Background(), "weather", time.Hour,
		false, "", time.Time{},
		func(ctx context.Context) (string, error) { return "live-value", nil },
		func(ctx context.Context, v string) error {
			stored = v
			return nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, "live-value", got)
	assert.Equal(t, OriginLive, origin)
	assert.Equal(t, "live-value", stored)
}

func TestResolveCached_ExpiredRefetches(t *testing.T) {
	got, origin, err := resolveCached(context.Background(), "price", time.Hour,
		true, "old-value", time.Now().UTC().Add(-2*time.Hour),
		func(ctx context.Context) (string, error) { return "new-value", nil },
		func(ctx context.Context, v string) error { return nil },
	)

	require.NoError(t, err)
	assert.Equal(t, "new-value", got)
	assert.Equal(t, OriginLive, origin)
}

func TestResolveCached_StaleFallback(t *testing.T) {
	got, origin, err := resolveCached(context.Background(), "price", time.Hour,
		true, "old-value", time.Now().UTC().Add(-2*time.Hour),
		func(ctx context.Context) (string, error) { return "", errors.New("upstream down") },
		func(ctx context.Context, v string) error {
			t.Fatal("store must not run on a failed fetch")
			return nil
		},
	)

	require.NoError(t, err, "stale fallback hides the fetch error")
	assert.Equal(t, "old-value", got)
	assert.Equal(t, OriginStale, origin)
}

func TestResolveCached_FetchFailureWithoutCache(t *testing.T) {
	fetchErr := errors.New("upstream down")

	got, origin, err := resolveCached(context.Background(), "weather", time.Hour,
		false, "", time.Time{},
		func(ctx context.Context) (string, error) { return "", fetchErr },
		func(ctx context.Context, v string) error { return nil },
	)

	assert.ErrorIs(t, err, fetchErr)
	assert.Empty(t, got)
	assert.Equal(t, OriginLive, origin)
}

func TestResolveCached_StoreFailureStillServes(t *testing.T) {
	got, origin, err := resolveCached(context.Background(), "weather", time.Hour,
		false, "", time.Time{},
		func(ctx context.Context) (string, error) { return "live-value", nil },
		func(ctx context.Context, v string) error { return errors.New("db write failed") },
	)

	require.NoError(t, err)
	assert.Equal(t, "live-value", got)
	assert.Equal(t, OriginLive, origin)
}

func TestOrigin_Flags(t *testing.T) {
	assert.False(t, OriginLive.Cached())
	assert.False(t, OriginLive.Stale())
	assert.True(t, OriginFresh.Cached())
	assert.False(t, OriginFresh.Stale())
	assert.True(t, OriginStale.Cached())
	assert.True(t, OriginStale.Stale())

	assert.Equal(t, "live", OriginLive.String())
	assert.Equal(t, "fresh", OriginFresh.String())
	assert.Equal(t, "stale", OriginStale.String())
}
