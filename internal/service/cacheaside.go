// Package service contains the business logic for the kisan service.
//
// The external-data services (weather, forecast, price) all follow the same
// cache-aside policy: serve a fresh cache hit directly, fetch from the
// upstream on a miss or expiry, and fall back to the stale cached value when
// the fetch fails. Only when both the fetch fails and no cached value exists
// does the caller see an error.
package service

import (
	"context"
	"time"

	"github.com/kisanmitra/kisan-service/internal/logger"
	"github.com/kisanmitra/kisan-service/internal/metrics"
)

// Origin describes where a served record came from.
type Origin int

const (
	// OriginLive means the record was fetched from the upstream just now.
	OriginLive Origin = iota
	// OriginFresh means the record came from the cache within its TTL.
	OriginFresh
	// OriginStale means an expired cached record was served because the
	// upstream fetch failed. The record keeps its original cache timestamp.
	OriginStale
)

// String returns the metrics label for the origin.
func (o Origin) String() string {
	switch o {
	case OriginLive:
		return "live"
	case OriginFresh:
		return "fresh"
	case OriginStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Cached reports whether the record was served from the cache.
func (o Origin) Cached() bool {
	return o != OriginLive
}

// Stale reports whether the record was served past its TTL.
func (o Origin) Stale() bool {
	return o == OriginStale
}

// isFresh reports whether a cached record is still within its TTL.
// A record exactly at the TTL boundary counts as expired.
func isFresh(cachedAt time.Time, ttl time.Duration, now time.Time) bool {
	return now.Sub(cachedAt) < ttl
}

// resolveCached applies the cache-aside policy for one resource lookup.
// hasCached and cachedAt describe the current cache state; fetch performs the
// upstream call and store writes the result back. A store failure is logged
// but does not fail the request, since the fetched value is already in hand.
func resolveCached[T any](
	ctx context.Context,
	resource string,
	ttl time.Duration,
	hasCached bool,
	cached T,
	cachedAt time.Time,
	fetch func(context.Context) (T, error),
	store func(context.Context, T) error,
) (T, Origin, error) {
	if hasCached && isFresh(cachedAt, ttl, time.Now().UTC()) {
		metrics.RecordCacheLookup(resource, OriginFresh.String())
		return cached, OriginFresh, nil
	}

	live, err := fetch(ctx)
	if err != nil {
		if hasCached {
			lg := logger.Logger()
			lg.Warn().
				Str("resource", resource).
				Str("error", err.Error()).
				Msg("Upstream fetch failed, serving stale cache")
			metrics.RecordCacheLookup(resource, OriginStale.String())
			return cached, OriginStale, nil
		}
		metrics.RecordCacheLookup(resource, "error")
		var zero T
		return zero, OriginLive, err
	}

	if storeErr := store(ctx, live); storeErr != nil {
		lg := logger.Logger()
		lg.Warn().
			Str("resource", resource).
			Str("error", storeErr.Error()).
			Msg("Failed to update cache")
	}
	metrics.RecordCacheLookup(resource, OriginLive.String())
	return live, OriginLive, nil
}
