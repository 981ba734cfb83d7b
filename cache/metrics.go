package cache

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
	size      prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer, name string) (*metrics, error) {
	labels := prometheus.Labels{"cache": name}
	m := &metrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ees_dashboard",
			Subsystem:   "cache",
			Name:        "hits_total",
			ConstLabels: labels,
			Help:        "Total number of cache hits",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ees_dashboard",
			Subsystem:   "cache",
			Name:        "misses_total",
			ConstLabels: labels,
			Help:        "Total number of cache misses",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ees_dashboard",
			Subsystem:   "cache",
			Name:        "evictions_total",
			ConstLabels: labels,
			Help:        "Total number of cache evictions",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ees_dashboard",
			Subsystem:   "cache",
			Name:        "size",
			ConstLabels: labels,
			Help:        "Current number of entries in cache",
		}),
	}

	for _, c := range []prometheus.Collector{m.hits, m.misses, m.evictions, m.size} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrapf(err, "failed to register metrics for cache %s", name)
		}
	}
	return m, nil
}

func (m *metrics) recordHit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *metrics) recordMiss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *metrics) recordEviction() {
	if m != nil {
		m.evictions.Inc()
	}
}

func (m *metrics) updateSize(size int) {
	if m != nil {
		m.size.Set(float64(size))
	}
}
