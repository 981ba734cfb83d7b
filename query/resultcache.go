package query

import (
	"github.com/ONSdigital/dp-frontend-ees-dashboard/cache"
	"github.com/prometheus/client_golang/prometheus"
)

// ResultCache holds query results keyed by the canonical form of their criteria.
// It evicts the oldest inserted result when full and never shares a table with
// its callers.
type ResultCache struct {
	fifo *cache.FIFO[*Table]
}

// NewResultCache creates a result cache holding at most capacity tables
func NewResultCache(capacity int, reg prometheus.Registerer) (*ResultCache, error) {
	fifo, err := cache.NewFIFO[*Table](capacity,
		cache.WithCopy[*Table]((*Table).Copy),
		cache.WithMetrics[*Table](reg, "query"),
	)
	if err != nil {
		return nil, err
	}
	return &ResultCache{fifo: fifo}, nil
}

// Get returns a copy of the table cached for c
func (r *ResultCache) Get(c Criteria) (*Table, bool) {
	return r.fifo.Get(c.Key())
}

// Put caches a copy of t for c
func (r *ResultCache) Put(c Criteria, t *Table) {
	r.fifo.Put(c.Key(), t)
}

// Len returns the number of cached results
func (r *ResultCache) Len() int {
	return r.fifo.Len()
}
