package cache

import (
	"container/list"
	"sync"

	"github.com/pkg/errors"
)

// LRU is a bounded cache that evicts the least recently used entry once full
type LRU[V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List // front is the most recently used
	opts     *options[V]
	metrics  *metrics
}

// NewLRU creates an LRU cache holding at most capacity entries
func NewLRU[V any](capacity int, opts ...Option[V]) (*LRU[V], error) {
	if capacity <= 0 {
		return nil, errors.Errorf("cache capacity must be positive, got %d", capacity)
	}
	o := applyOptions(opts...)

	var m *metrics
	if o.reg != nil {
		var err error
		if m, err = newMetrics(o.reg, o.name); err != nil {
			return nil, err
		}
	}

	return &LRU[V]{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
		opts:     o,
		metrics:  m,
	}, nil
}

// Get returns the value stored under key and marks it as recently used
func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	el, ok := c.items[key]
	var v V
	if ok {
		c.order.MoveToFront(el)
		v = el.Value.(*entry[V]).value
	}
	c.mu.Unlock()

	if !ok {
		c.metrics.recordMiss()
		return v, false
	}
	c.metrics.recordHit()
	return c.opts.copy(v), true
}

// Put stores value under key as the most recently used entry
func (c *LRU[V]) Put(key string, value V) {
	value = c.opts.copy(value)

	c.mu.Lock()
	if el, ok := c.items[key]; ok {
		el.Value.(*entry[V]).value = value
		c.order.MoveToFront(el)
		c.mu.Unlock()
		return
	}

	c.items[key] = c.order.PushFront(&entry[V]{key: key, value: value})
	var evicted *entry[V]
	if len(c.items) > c.capacity {
		evicted = c.order.Remove(c.order.Back()).(*entry[V])
		delete(c.items, evicted.key)
	}
	size := len(c.items)
	c.mu.Unlock()

	c.metrics.updateSize(size)
	if evicted != nil {
		c.metrics.recordEviction()
		if c.opts.onEvict != nil {
			c.opts.onEvict(evicted.key, evicted.value)
		}
	}
}

// Len returns the number of entries in the cache
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
