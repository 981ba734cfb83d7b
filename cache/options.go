package cache

import "github.com/prometheus/client_golang/prometheus"

// CopyFunc returns an independent copy of a cached value
type CopyFunc[V any] func(V) V

// Option configures a cache
type Option[V any] func(*options[V])

type options[V any] struct {
	copyFn  CopyFunc[V]
	reg     prometheus.Registerer
	name    string
	onEvict func(key string, value V)
}

// WithCopy makes the cache store and hand out copies produced by fn, so callers
// can never mutate what the cache holds.
func WithCopy[V any](fn CopyFunc[V]) Option[V] {
	return func(o *options[V]) {
		o.copyFn = fn
	}
}

// WithMetrics registers hit, miss, eviction and size metrics labelled with name.
// A nil registerer disables metrics.
func WithMetrics[V any](reg prometheus.Registerer, name string) Option[V] {
	return func(o *options[V]) {
		if reg != nil && name != "" {
			o.reg = reg
			o.name = name
		}
	}
}

// withEvictionCallback is called, outside the cache lock, with every evicted entry
func withEvictionCallback[V any](fn func(key string, value V)) Option[V] {
	return func(o *options[V]) {
		o.onEvict = fn
	}
}

func applyOptions[V any](opts ...Option[V]) *options[V] {
	o := &options[V]{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options[V]) copy(v V) V {
	if o.copyFn == nil {
		return v
	}
	return o.copyFn(v)
}
