package ttlcache

import (
	"fmt"
	"iter"
	"log/slog"
	"time"
)

// Cache is an in-memory key-value cache combining two eviction
// policies: per-entry TTL expiration and least-recently-used capacity
// eviction. Expiry is lazy: an expired entry is only removed when Get,
// Cleanup, or iteration discovers it. Eviction, whatever its trigger,
// fires the evict event; explicit Delete and Clear do not.
//
// The cache is single-threaded by design: it takes no locks and
// callers must not share one instance across goroutines without
// external synchronization. Event handlers run synchronously on the
// caller's goroutine and may call back into the cache.
type Cache[V any] struct {
	ttl time.Duration
	max int // Unbounded (0) disables capacity eviction

	index map[string]*entry[V] // source of truth for existence
	list  recencyList[V]       // source of truth for ordering

	notifier notifier[V]
	stats    *Statistics
	metrics  *cacheMetrics
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a cache with the given configuration. Statistics are
// always collected; use WithMetrics to also export them as Prometheus
// metrics. Returns ErrInvalidConfig if the TTL is negative or the
// capacity is bounded but not greater than 1.
func New[V any](config Config, options ...Option[V]) (*Cache[V], error) {
	if err := config.Validate(); err != nil {
		return nil, wrapErr(err, "New", "config validation")
	}

	opts := applyOptions(options...)

	var metrics *cacheMetrics
	if opts.registerer != nil {
		var err error
		metrics, err = newCacheMetrics(opts.registerer, opts.name)
		if err != nil {
			return nil, err
		}
	}

	c := &Cache[V]{
		ttl:     config.TTL,
		max:     config.Max,
		index:   make(map[string]*entry[V]),
		stats:   newStatistics(),
		metrics: metrics,
		logger:  opts.logger,
		now:     opts.clock,
	}

	if c.metrics != nil {
		c.metrics.updateCapacity(c.max)
		c.metrics.updateSize(0)
	}

	return c, nil
}

// OnEvict registers a handler called once per entry removed under
// expiry or capacity pressure, with the evicted key and value.
func (c *Cache[V]) OnEvict(handler EvictHandler[V]) {
	if handler != nil {
		c.notifier.evict = append(c.notifier.evict, handler)
	}
}

// OnFull registers a handler called after a mutation brings the cache
// up to exactly its capacity.
func (c *Cache[V]) OnFull(handler Handler) {
	if handler != nil {
		c.notifier.full = append(c.notifier.full, handler)
	}
}

// OnEmpty registers a handler called after a mutation other than
// Clear brings the cache from non-empty to empty.
func (c *Cache[V]) OnEmpty(handler Handler) {
	if handler != nil {
		c.notifier.empty = append(c.notifier.empty, handler)
	}
}

// Has reports whether key is present in the cache. It checks
// membership only: it does not consult the entry's expiry and does
// not refresh its recency, so an expired-but-undiscovered entry still
// counts.
func (c *Cache[V]) Has(key string) bool {
	_, exists := c.index[key]
	return exists
}

// Get retrieves the value for key, marking the entry as most recently
// used. An entry whose TTL has passed is evicted on discovery and
// reported as a miss. Lookups never extend an entry's expiry.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	e, exists := c.index[key]
	if !exists {
		c.stats.miss()
		if c.metrics != nil {
			c.metrics.recordMiss()
		}
		return zero, false
	}

	if e.expired(c.now()) {
		c.stats.miss()
		if c.metrics != nil {
			c.metrics.recordMiss()
		}
		c.evictEntry(e, true)
		return zero, false
	}

	c.list.pushNewest(e)
	c.stats.hit()
	if c.metrics != nil {
		c.metrics.recordHit()
	}
	return e.value, true
}

// Set stores value under key and returns true if a new entry was
// created, false if an existing one was refreshed. A refresh
// overwrites the value, restarts the TTL from now, and moves the
// entry to most recently used; it never evicts, even when the entry
// had already expired undiscovered. Inserting into a full cache
// evicts the least recently used entry first.
func (c *Cache[V]) Set(key string, value V) bool {
	now := c.now()

	if c.refresh(key, value, now) {
		return false
	}

	// Make room before inserting. Evict handlers may call back into
	// the cache, so the condition is re-checked after every removal.
	for c.max != Unbounded && len(c.index) >= c.max {
		oldest := c.list.peekOldest()
		if oldest == nil {
			break
		}
		c.evictEntry(oldest, false)
	}

	// An evict handler may have inserted this key itself.
	if c.refresh(key, value, now) {
		return false
	}

	e := &entry[V]{
		key:       key,
		value:     value,
		expiresAt: now.Add(c.ttl),
	}
	c.index[key] = e
	c.list.pushNewest(e)

	c.stats.set()
	c.stats.observeSize(len(c.index))
	if c.metrics != nil {
		c.metrics.recordSet()
		c.metrics.updateSize(len(c.index))
	}

	if c.max != Unbounded && len(c.index) == c.max {
		c.notifier.fireFull()
	}
	return true
}

// refresh updates an existing entry in place. Returns false when the
// key is absent.
func (c *Cache[V]) refresh(key string, value V, now time.Time) bool {
	e, exists := c.index[key]
	if !exists {
		return false
	}

	e.value = value
	e.expiresAt = now.Add(c.ttl)
	c.list.pushNewest(e)

	c.stats.set()
	if c.metrics != nil {
		c.metrics.recordSet()
	}
	return true
}

// Delete removes the entry for key and reports whether it existed.
// Deletion is not an eviction: no evict event fires, but empty does
// if the cache became empty as a result.
func (c *Cache[V]) Delete(key string) bool {
	e, exists := c.index[key]
	if !exists {
		return false
	}

	delete(c.index, key)
	c.list.detach(e)

	c.stats.delete()
	if c.metrics != nil {
		c.metrics.recordDelete()
		c.metrics.updateSize(len(c.index))
	}

	if len(c.index) == 0 {
		c.notifier.fireEmpty()
	}
	return true
}

// Cleanup sweeps expired entries from the least recently used end of
// the cache, firing evict for each, and returns the number removed.
// The sweep stops at the first live entry: entries are recency-ordered,
// not expiry-ordered, so an expired entry sitting behind a live one
// survives until its own discovery.
func (c *Cache[V]) Cleanup() int {
	now := c.now()

	evicted := 0
	for {
		oldest := c.list.peekOldest()
		if oldest == nil || !oldest.expired(now) {
			break
		}
		c.evictEntry(oldest, true)
		evicted++
	}

	if evicted > 0 {
		c.logger.Debug("cache cleanup swept expired entries",
			"evicted", evicted,
			"size", len(c.index))
	}
	return evicted
}

// Resize changes the entry capacity and returns the number of entries
// evicted. Shrinking below the current size evicts least recently
// used entries until the cache fits; growing never evicts. Returns
// ErrInvalidConfig when newMax is not greater than 1.
func (c *Cache[V]) Resize(newMax int) (int, error) {
	if newMax <= 1 {
		return 0, wrapInvalid("Resize", "max must be greater than 1, got %d", newMax)
	}

	oldMax := c.max
	c.max = newMax
	if c.metrics != nil {
		c.metrics.updateCapacity(newMax)
	}

	evicted := 0
	for len(c.index) > c.max {
		oldest := c.list.peekOldest()
		if oldest == nil {
			break
		}
		c.evictEntry(oldest, false)
		evicted++
	}

	if len(c.index) == c.max {
		c.notifier.fireFull()
	}

	c.logger.Debug("cache resized",
		"old_max", oldMax,
		"new_max", newMax,
		"evicted", evicted,
		"size", len(c.index))
	return evicted, nil
}

// Clear drops every entry unconditionally. Unlike Delete-driven
// emptying, no event fires.
func (c *Cache[V]) Clear() {
	clear(c.index)
	c.list.reset()

	if c.metrics != nil {
		c.metrics.updateSize(0)
	}
}

// Len returns the current number of entries, including any that have
// expired but not yet been discovered.
func (c *Cache[V]) Len() int {
	return len(c.index)
}

// TTL returns the configured time-to-live.
func (c *Cache[V]) TTL() time.Duration {
	return c.ttl
}

// Max returns the configured capacity, Unbounded (0) if none.
func (c *Cache[V]) Max() int {
	return c.max
}

// Stats returns the cache's activity counters.
func (c *Cache[V]) Stats() *Statistics {
	return c.stats
}

// Entries returns a lazy iterator over live entries, most recently
// used first. An entry found expired during the walk is evicted and
// skipped instead of yielded. Each call re-walks from the current
// newest entry. Mutating entries other than the one being visited
// from inside the loop body is unsupported.
func (c *Cache[V]) Entries() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for e := c.list.newest; e != nil; {
			older := e.prev
			if e.expired(c.now()) {
				c.evictEntry(e, true)
			} else if !yield(e.key, e.value) {
				return
			}
			e = older
		}
	}
}

// Keys returns a lazy iterator over live keys, most recently used
// first, with the same expiry semantics as Entries.
func (c *Cache[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for key := range c.Entries() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values returns a lazy iterator over live values, most recently used
// first, with the same expiry semantics as Entries.
func (c *Cache[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range c.Entries() {
			if !yield(value) {
				return
			}
		}
	}
}

// String returns a one-line inspection summary.
func (c *Cache[V]) String() string {
	return fmt.Sprintf("ttlcache(size=%d max=%d ttl=%v)", len(c.index), c.max, c.ttl)
}

// evictEntry removes e under expiry or capacity pressure: index
// first, then list, then notifications, in that order, so a handler
// querying the cache sees consistent post-mutation state.
func (c *Cache[V]) evictEntry(e *entry[V], expired bool) {
	delete(c.index, e.key)
	c.list.detach(e)

	c.stats.eviction(expired)
	if c.metrics != nil {
		c.metrics.recordEviction(expired)
		c.metrics.updateSize(len(c.index))
	}

	c.notifier.fireEvict(e.key, e.value)
	if len(c.index) == 0 {
		c.notifier.fireEmpty()
	}
}
