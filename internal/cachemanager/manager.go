// Package cachemanager provides generic in-memory caching.
// The composition layer uses it to memoize derived cell profiles, which are
// deterministic functions of the cell id and catalog; status summaries are
// intentionally never cached.
package cachemanager

import (
	"context"
	"time"
)

type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
