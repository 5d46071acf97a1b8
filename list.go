package ttlcache

import "time"

// entry is a single cached key-value pair, threaded into the recency
// list. Entries are owned by the cache index; the list links are
// positional only.
type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	prev      *entry[V] // toward oldest
	next      *entry[V] // toward newest
}

// expired reports whether the entry's deadline has passed at now.
func (e *entry[V]) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// recencyList threads entries from least recently used (oldest) to
// most recently used (newest). All operations are O(1). The zero
// value is an empty list.
type recencyList[V any] struct {
	oldest *entry[V]
	newest *entry[V]
	length int
}

// pushNewest appends e as the most recently used entry. If e is
// already linked it is detached first, so this doubles as
// move-to-newest.
func (l *recencyList[V]) pushNewest(e *entry[V]) {
	if l.newest == e {
		return
	}
	l.detach(e)
	e.prev = l.newest
	if l.newest != nil {
		l.newest.next = e
	}
	l.newest = e
	if l.oldest == nil {
		l.oldest = e
	}
	l.length++
}

// detach unlinks e from the list, patching neighbor links and the
// oldest/newest boundaries. Detaching an unlinked entry is a no-op.
func (l *recencyList[V]) detach(e *entry[V]) {
	if e.prev == nil && e.next == nil && l.oldest != e {
		return
	}
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.oldest = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.newest = e.prev
	}
	e.prev = nil
	e.next = nil
	l.length--
}

// peekOldest returns the least recently used entry without unlinking
// it, or nil when the list is empty.
func (l *recencyList[V]) peekOldest() *entry[V] {
	return l.oldest
}

// reset drops every link and empties the list in one step.
func (l *recencyList[V]) reset() {
	l.oldest = nil
	l.newest = nil
	l.length = 0
}

// len returns the number of linked entries.
func (l *recencyList[V]) len() int {
	return l.length
}
