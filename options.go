package ttlcache

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures cache behavior using the functional options
// pattern.
type Option[V any] func(*cacheOptions[V])

// cacheOptions holds internal configuration for cache instances.
// Statistics are always collected; Prometheus export is opt-in via
// WithMetrics.
type cacheOptions[V any] struct {
	// registerer is optional - if provided, cache statistics are
	// also exposed as Prometheus metrics under the given name
	registerer prometheus.Registerer
	name       string

	logger *slog.Logger

	// clock overrides time.Now, e.g. in tests
	clock func() time.Time
}

// WithMetrics enables Prometheus metrics export for cache activity.
// The name is attached as the "cache" label so several caches can
// share one registerer. If registerer is nil, this option is ignored.
func WithMetrics[V any](registerer prometheus.Registerer, name string) Option[V] {
	return func(opts *cacheOptions[V]) {
		if registerer != nil && name != "" {
			opts.registerer = registerer
			opts.name = name
		}
	}
}

// WithLogger sets the structured logger used for debug-level
// operational logs (eviction sweeps, resizes). Defaults to
// slog.Default().
func WithLogger[V any](logger *slog.Logger) Option[V] {
	return func(opts *cacheOptions[V]) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithClock overrides the time source used for expiry decisions.
// Intended for tests that need deterministic TTL behavior.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(opts *cacheOptions[V]) {
		if now != nil {
			opts.clock = now
		}
	}
}

// applyOptions applies functional options to create the final cache
// configuration.
func applyOptions[V any](options ...Option[V]) *cacheOptions[V] {
	opts := &cacheOptions[V]{
		logger: slog.Default(),
		clock:  time.Now,
	}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
