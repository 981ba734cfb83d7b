package cache

import (
	"container/list"
	"sync"

	"github.com/pkg/errors"
)

type entry[V any] struct {
	key   string
	value V
}

// FIFO is a bounded cache that evicts the oldest inserted entry once full.
// Reads do not affect eviction order.
type FIFO[V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List // front is the oldest insert
	opts     *options[V]
	metrics  *metrics
}

// NewFIFO creates a FIFO cache holding at most capacity entries
func NewFIFO[V any](capacity int, opts ...Option[V]) (*FIFO[V], error) {
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

	return &FIFO[V]{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
		opts:     o,
		metrics:  m,
	}, nil
}

// Get returns a copy of the value stored under key
func (c *FIFO[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	el, ok := c.items[key]
	var v V
	if ok {
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

// Put stores a copy of value under key. When the cache is full the oldest
// inserted entry is evicted first. Replacing an existing key keeps its
// original insertion position.
func (c *FIFO[V]) Put(key string, value V) {
	value = c.opts.copy(value)

	c.mu.Lock()
	if el, ok := c.items[key]; ok {
		el.Value.(*entry[V]).value = value
		c.mu.Unlock()
		return
	}

	var evicted *entry[V]
	if len(c.items) >= c.capacity {
		oldest := c.order.Front()
		evicted = c.order.Remove(oldest).(*entry[V])
		delete(c.items, evicted.key)
	}
	c.items[key] = c.order.PushBack(&entry[V]{key: key, value: value})
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
func (c *FIFO[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// keys returns the cached keys from oldest to newest insert
func (c *FIFO[V]) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.items))
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*entry[V]).key)
	}
	return keys
}

func (c *FIFO[V]) clear() {
	c.mu.Lock()
	c.items = make(map[string]*list.Element)
	c.order.Init()
	c.mu.Unlock()
	c.metrics.updateSize(0)
}
