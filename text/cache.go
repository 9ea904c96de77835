package text

import (
	"container/list"
	"sync"
)

// Cache is a generic LRU cache with a soft limit. Once it holds more than
// softLimit entries it drops the least recently used ones until a quarter
// of the limit is free again, so a burst of new glyphs does not evict on
// every insertion.
//
// Cache is safe for concurrent use. It must not be copied.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	softLimit int

	// order holds *cacheItem values, most recently used at the front.
	order *list.List
	index map[K]*list.Element

	hits, misses uint64
}

type cacheItem[K comparable, V any] struct {
	key   K
	value V
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Len          int
	Hits, Misses uint64
}

// NewCache creates a cache. A softLimit of 0 means unlimited.
func NewCache[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		softLimit: softLimit,
		order:     list.New(),
		index:     make(map[K]*list.Element),
	}
}

// Get returns the value for key and marks it recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookup(key)
}

// Set stores value under key.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, value)
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// Errors from create are returned and nothing is cached.
// create runs under the cache lock and must not use the cache.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.lookup(key); ok {
		return v, nil
	}
	v, err := create()
	if err != nil {
		return v, err
	}
	c.store(key, v)
	return v, nil
}

// Clear removes every entry. The hit and miss counters are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	clear(c.index)
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Len: c.order.Len(), Hits: c.hits, Misses: c.misses}
}

func (c *Cache[K, V]) lookup(key K) (V, bool) {
	el, ok := c.index[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.MoveToFront(el)
	return el.Value.(*cacheItem[K, V]).value, true
}

func (c *Cache[K, V]) store(key K, value V) {
	if el, ok := c.index[key]; ok {
		el.Value.(*cacheItem[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	c.index[key] = c.order.PushFront(&cacheItem[K, V]{key: key, value: value})

	if c.softLimit <= 0 || c.order.Len() <= c.softLimit {
		return
	}
	keep := max(c.softLimit*3/4, 1)
	for c.order.Len() > keep {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.index, oldest.Value.(*cacheItem[K, V]).key)
	}
}
