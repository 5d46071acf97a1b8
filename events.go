package ttlcache

// EvictHandler is called once per entry removed under expiry or
// capacity pressure. It receives the key and value of the evicted
// entry. Explicit Delete and Clear never trigger it.
type EvictHandler[V any] func(key string, value V)

// Handler is called for payload-free cache transitions (full, empty).
type Handler func()

// notifier owns the observer lists for the cache's three outbound
// events. Delivery is synchronous: handlers run on the caller's
// goroutine after the triggering mutation has fully settled, so a
// handler that calls back into the cache observes post-mutation
// state and may itself mutate the cache.
type notifier[V any] struct {
	evict []EvictHandler[V]
	full  []Handler
	empty []Handler
}

// fireEvict delivers an evict event to every registered handler.
// The handler slice is snapshotted first so a handler registering
// further handlers mid-delivery cannot skew the walk.
func (n *notifier[V]) fireEvict(key string, value V) {
	handlers := n.evict[:len(n.evict):len(n.evict)]
	for _, h := range handlers {
		h(key, value)
	}
}

// fireFull delivers a full event to every registered handler.
func (n *notifier[V]) fireFull() {
	handlers := n.full[:len(n.full):len(n.full)]
	for _, h := range handlers {
		h()
	}
}

// fireEmpty delivers an empty event to every registered handler.
func (n *notifier[V]) fireEmpty() {
	handlers := n.empty[:len(n.empty):len(n.empty)]
	for _, h := range handlers {
		h()
	}
}
