// Package ttlcache provides an in-memory key-value cache that
// combines two simultaneous eviction policies: per-entry TTL
// expiration and exact least-recently-used capacity eviction.
//
// # Overview
//
// Every entry carries an absolute expiry deadline (write time + TTL)
// and a position in a recency list ordered from least to most
// recently used. Expiry is lazy: no background timer runs, and an
// expired entry is removed only when Get, Cleanup, or iteration
// discovers it. Capacity eviction is exact LRU, triggered when an
// insertion would exceed the configured maximum or when Resize
// shrinks it.
//
// # Quick Start
//
//	cache, err := ttlcache.New[string](ttlcache.Config{
//		TTL: 30 * time.Second,
//		Max: 1000,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cache.Set("session", "token")
//	value, ok := cache.Get("session")
//
// # Events
//
// The cache announces state transitions synchronously to registered
// handlers:
//
//	cache.OnEvict(func(key string, value string) { ... }) // expiry or capacity pressure
//	cache.OnFull(func() { ... })                          // size reached capacity
//	cache.OnEmpty(func() { ... })                         // size dropped to zero (not via Clear)
//
// Handlers run on the caller's goroutine after the triggering
// mutation has completed, so a handler that reads or mutates the
// cache observes consistent post-mutation state.
//
// # Observability
//
// Statistics (hits, misses, evictions, peak size) are always
// collected and available via Stats(). They can additionally be
// exported as Prometheus metrics:
//
//	cache, err := ttlcache.New[[]byte](cfg,
//		ttlcache.WithMetrics[[]byte](prometheus.DefaultRegisterer, "api_cache"),
//		ttlcache.WithLogger[[]byte](logger),
//	)
//
// # Concurrency
//
// The cache is deliberately not thread-safe: every operation is a
// synchronous, non-blocking, in-memory state transition, and callers
// that share an instance across goroutines must synchronize
// externally.
package ttlcache
