package ttlcache

import "time"

// Statistics tracks cache activity. It is always collected.
//
// Like the cache itself, Statistics assumes single-goroutine access:
// counters are plain integers, not atomics.
type Statistics struct {
	hits        int64
	misses      int64
	sets        int64
	deletes     int64
	evictions   int64
	expirations int64

	startTime time.Time
	peakSize  int64
}

func newStatistics() *Statistics {
	return &Statistics{startTime: time.Now()}
}

func (s *Statistics) hit()    { s.hits++ }
func (s *Statistics) miss()   { s.misses++ }
func (s *Statistics) set()    { s.sets++ }
func (s *Statistics) delete() { s.deletes++ }

// eviction records an entry removed under pressure; expired marks it
// as a TTL eviction rather than a capacity one.
func (s *Statistics) eviction(expired bool) {
	s.evictions++
	if expired {
		s.expirations++
	}
}

// observeSize tracks the high-water mark of the cache size.
func (s *Statistics) observeSize(size int) {
	if int64(size) > s.peakSize {
		s.peakSize = int64(size)
	}
}

// Hits returns the number of Get calls that returned a live value.
func (s *Statistics) Hits() int64 { return s.hits }

// Misses returns the number of Get calls that found no live value.
func (s *Statistics) Misses() int64 { return s.misses }

// Sets returns the number of Set calls.
func (s *Statistics) Sets() int64 { return s.sets }

// Deletes returns the number of Delete calls that removed an entry.
func (s *Statistics) Deletes() int64 { return s.deletes }

// Evictions returns the number of entries removed under expiry or
// capacity pressure.
func (s *Statistics) Evictions() int64 { return s.evictions }

// Expirations returns the subset of evictions caused by TTL expiry.
func (s *Statistics) Expirations() int64 { return s.expirations }

// PeakSize returns the largest number of entries the cache has held.
func (s *Statistics) PeakSize() int64 { return s.peakSize }

// HitRatio returns the fraction of Get calls that hit, 0.0 to 1.0.
func (s *Statistics) HitRatio() float64 {
	total := s.hits + s.misses
	if total == 0 {
		return 0.0
	}
	return float64(s.hits) / float64(total)
}

// Uptime returns how long the cache has existed.
func (s *Statistics) Uptime() time.Duration {
	return time.Since(s.startTime)
}

// Reset zeroes all counters and restarts the uptime clock.
func (s *Statistics) Reset() {
	*s = Statistics{startTime: time.Now()}
}

// StatsSummary is a point-in-time snapshot of all statistics.
type StatsSummary struct {
	Hits        int64         `json:"hits"`
	Misses      int64         `json:"misses"`
	Sets        int64         `json:"sets"`
	Deletes     int64         `json:"deletes"`
	Evictions   int64         `json:"evictions"`
	Expirations int64         `json:"expirations"`
	PeakSize    int64         `json:"peak_size"`
	HitRatio    float64       `json:"hit_ratio"`
	Uptime      time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Hits:        s.hits,
		Misses:      s.misses,
		Sets:        s.sets,
		Deletes:     s.deletes,
		Evictions:   s.evictions,
		Expirations: s.expirations,
		PeakSize:    s.peakSize,
		HitRatio:    s.HitRatio(),
		Uptime:      s.Uptime(),
	}
}
