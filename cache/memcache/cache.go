package memcache

import (
	"container/list"
	"sync"
	"time"

	agingcache "github.com/karupanerura/aging-cache"
)

// entry is the value stored in the LRU list elements.
// The key is kept here because capacity eviction starts from list nodes.
type entry[K agingcache.KeyConstraint, V agingcache.ValueConstraint] struct {
	key   K
	value V
}

// Cache is a concurrency-safe in-memory cache with optional LRU capacity
// eviction. A map gives O(1) key lookup and a doubly-linked list maintains
// recency ordering: front is the most recently used entry, back the least.
type Cache[K agingcache.KeyConstraint, V agingcache.ValueConstraint] struct {
	mu         sync.Mutex
	maxEntries int
	items      map[K]*list.Element
	lru        *list.List
	cloner     agingcache.ValueCloner[V]
	closed     bool
}

var _ agingcache.MemoryCache[uint8, struct{}] = (*Cache[uint8, struct{}])(nil)

// New creates a new in-memory cache.
// The cache is unbounded unless WithMaxEntries is given.
func New[K agingcache.KeyConstraint, V agingcache.ValueConstraint](opts ...Option[K, V]) *Cache[K, V] {
	options := defaultOptions[K, V]()
	for _, opt := range opts {
		opt.apply(&options)
	}

	return &Cache[K, V]{
		maxEntries: options.maxEntries,
		items:      map[K]*list.Element{},
		lru:        list.New(),
		cloner:     options.cloner,
	}
}

// Put stores the value under the given key, overwriting any existing entry
// and marking the key most recently used. It reports false after Close.
func (c *Cache[K, V]) Put(key K, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.lru.MoveToFront(el)
		return true
	}

	c.items[key] = c.lru.PushFront(&entry[K, V]{key: key, value: value})
	c.evictDown()
	return true
}

// PutWithLifetime stores the value as Put does and ignores the lifetime hint.
// This cache tracks no lifetimes; wrap it in an AgingCache for expiration.
func (c *Cache[K, V]) PutWithLifetime(key K, value V, _ time.Duration) bool {
	return c.Put(key, value)
}

// Get retrieves the current value for the key and marks it most recently used.
// The returned value goes through the cache's cloner, so callers cannot
// mutate cached state.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok || c.closed {
		var zero V
		return zero, false
	}
	c.lru.MoveToFront(el)
	return c.cloner.CloneValue(el.Value.(*entry[K, V]).value), true
}

// Remove deletes the entry for the key, reporting whether an entry was removed.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return false
	}
	c.lru.Remove(el)
	delete(c.items, key)
	return true
}

// Keys returns the current key set in unspecified order.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.items))
	for key := range c.items {
		keys = append(keys, key)
	}
	return keys
}

// Snapshot returns a copy of the current contents.
// Values go through the cache's cloner.
func (c *Cache[K, V]) Snapshot() map[K]V {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make(map[K]V, len(c.items))
	for key, el := range c.items {
		snapshot[key] = c.cloner.CloneValue(el.Value.(*entry[K, V]).value)
	}
	return snapshot
}

// Resize adjusts the capacity bound and evicts least recently used entries
// until the cache fits. maxSize <= 0 makes the cache unbounded.
func (c *Cache[K, V]) Resize(maxSize int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.maxEntries = maxSize
	c.evictDown()
}

// Clear empties all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = map[K]*list.Element{}
	c.lru.Init()
}

// Close empties the cache and marks it unusable.
// Subsequent Put calls report false and Get calls report absent.
func (c *Cache[K, V]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = map[K]*list.Element{}
	c.lru.Init()
	c.closed = true
}

// evictDown removes least recently used entries while over capacity.
// Callers must hold the mutex.
func (c *Cache[K, V]) evictDown() {
	if c.maxEntries <= 0 {
		return
	}
	for len(c.items) > c.maxEntries {
		el := c.lru.Back()
		if el == nil {
			return
		}
		c.lru.Remove(el)
		delete(c.items, el.Value.(*entry[K, V]).key)
	}
}
