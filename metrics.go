package ttlcache

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// cacheMetrics holds Prometheus metrics mirroring cache activity.
type cacheMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	sets      prometheus.Counter
	deletes   prometheus.Counter
	evictions prometheus.Counter
	expired   prometheus.Counter

	size     prometheus.Gauge
	capacity prometheus.Gauge
}

// newCacheMetrics creates and registers cache metrics with the
// provided registerer. The cache name is attached as a const label so
// multiple caches can share a registerer.
func newCacheMetrics(registerer prometheus.Registerer, name string) (*cacheMetrics, error) {
	labels := prometheus.Labels{"cache": name}

	m := &cacheMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ttlcache",
			Name:        "hits_total",
			ConstLabels: labels,
			Help:        "Total number of cache hits",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ttlcache",
			Name:        "misses_total",
			ConstLabels: labels,
			Help:        "Total number of cache misses",
		}),
		sets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ttlcache",
			Name:        "sets_total",
			ConstLabels: labels,
			Help:        "Total number of cache set operations",
		}),
		deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ttlcache",
			Name:        "deletes_total",
			ConstLabels: labels,
			Help:        "Total number of cache delete operations",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ttlcache",
			Name:        "evictions_total",
			ConstLabels: labels,
			Help:        "Total number of cache evictions (expiry and capacity)",
		}),
		expired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ttlcache",
			Name:        "expired_total",
			ConstLabels: labels,
			Help:        "Total number of evictions caused by TTL expiry",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ttlcache",
			Name:        "size",
			ConstLabels: labels,
			Help:        "Current number of entries in the cache",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ttlcache",
			Name:        "capacity",
			ConstLabels: labels,
			Help:        "Configured entry capacity (0 means unbounded)",
		}),
	}

	collectors := []prometheus.Collector{
		m.hits, m.misses, m.sets, m.deletes, m.evictions, m.expired, m.size, m.capacity,
	}
	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				return nil, wrapErr(err, "newCacheMetrics", "duplicate metric registration")
			}
			return nil, wrapErr(err, "newCacheMetrics", "metric registration")
		}
	}

	return m, nil
}

func (m *cacheMetrics) recordHit()    { m.hits.Inc() }
func (m *cacheMetrics) recordMiss()   { m.misses.Inc() }
func (m *cacheMetrics) recordSet()    { m.sets.Inc() }
func (m *cacheMetrics) recordDelete() { m.deletes.Inc() }

func (m *cacheMetrics) recordEviction(expired bool) {
	m.evictions.Inc()
	if expired {
		m.expired.Inc()
	}
}

func (m *cacheMetrics) updateSize(size int) {
	m.size.Set(float64(size))
}

func (m *cacheMetrics) updateCapacity(max int) {
	m.capacity.Set(float64(max))
}
