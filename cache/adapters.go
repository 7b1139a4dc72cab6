package cache

import (
	"time"

	agingcache "github.com/karupanerura/aging-cache"
)

var _ agingcache.MemoryCache[uint8, struct{}] = (*FunctionsCache[uint8, struct{}])(nil)

// FunctionsCache is a MemoryCache implementation that uses functions to perform the cache operations.
// It is useful to stub a collaborator in tests or to bridge an existing cache
// without writing a named adapter type.
type FunctionsCache[K agingcache.KeyConstraint, V agingcache.ValueConstraint] struct {
	// PutFunc stores a value under the given key and reports whether the store succeeded.
	PutFunc func(key K, value V) bool

	// PutWithLifetimeFunc stores a value tagged with a lifetime hint.
	// The hint may be ignored by the backing cache.
	PutWithLifetimeFunc func(key K, value V, lifetime time.Duration) bool

	// GetFunc retrieves the current value for the key.
	GetFunc func(key K) (V, bool)

	// RemoveFunc deletes the entry for the key and reports whether an entry was removed.
	RemoveFunc func(key K) bool

	// KeysFunc returns the current key set.
	KeysFunc func() []K

	// SnapshotFunc returns a read-only copy of the current contents.
	SnapshotFunc func() map[K]V

	// ResizeFunc adjusts the capacity-driven eviction policy.
	ResizeFunc func(maxSize int)

	// ClearFunc empties all entries.
	ClearFunc func()

	// CloseFunc releases all resources.
	CloseFunc func()
}

// Put calls the PutFunc function to store the given key-value pair.
func (c *FunctionsCache[K, V]) Put(key K, value V) bool {
	return c.PutFunc(key, value)
}

// PutWithLifetime calls the PutWithLifetimeFunc function to store the given key-value pair.
func (c *FunctionsCache[K, V]) PutWithLifetime(key K, value V, lifetime time.Duration) bool {
	return c.PutWithLifetimeFunc(key, value, lifetime)
}

// Get calls the GetFunc function to retrieve the value associated with the given key.
func (c *FunctionsCache[K, V]) Get(key K) (V, bool) {
	return c.GetFunc(key)
}

// Remove calls the RemoveFunc function to delete the entry for the key.
func (c *FunctionsCache[K, V]) Remove(key K) bool {
	return c.RemoveFunc(key)
}

// Keys calls the KeysFunc function to list the current key set.
func (c *FunctionsCache[K, V]) Keys() []K {
	return c.KeysFunc()
}

// Snapshot calls the SnapshotFunc function to copy the current contents.
func (c *FunctionsCache[K, V]) Snapshot() map[K]V {
	return c.SnapshotFunc()
}

// Resize calls the ResizeFunc function to adjust the capacity policy.
func (c *FunctionsCache[K, V]) Resize(maxSize int) {
	c.ResizeFunc(maxSize)
}

// Clear calls the ClearFunc function to empty all entries.
func (c *FunctionsCache[K, V]) Clear() {
	c.ClearFunc()
}

// Close calls the CloseFunc function to release all resources.
func (c *FunctionsCache[K, V]) Close() {
	c.CloseFunc()
}
