package agingcache

import (
	"time"
)

// KeyConstraint is an interface for key constraints.
//
// The aging registry shards records by a per-type key hash, which supports
// string, integer (except uintptr) and float key types. Constructing an
// AgingCache with any other key type panics.
type KeyConstraint interface {
	comparable
}

// ValueConstraint is an interface for value constraints.
type ValueConstraint interface {
	any
}

// MemoryCache is the capability set shared by every cache in this module.
// Implementations must be safe for concurrent use by multiple goroutines.
//
// AgingCache both consumes and implements this interface, so callers can
// substitute decorated and undecorated caches transparently.
type MemoryCache[K KeyConstraint, V ValueConstraint] interface {
	// Put stores a value under the given key.
	// If the key already exists, it should overwrite the existing value.
	// It reports whether the store succeeded.
	Put(key K, value V) bool

	// PutWithLifetime stores a value tagged with an implementation-specific
	// lifetime hint. Implementations that track no lifetimes of their own are
	// free to ignore the hint and store the value as Put does.
	PutWithLifetime(key K, value V, lifetime time.Duration) bool

	// Get retrieves the current value for the key.
	// The second return value reports whether an entry was present.
	Get(key K) (V, bool)

	// Remove deletes the entry for the key.
	// It reports whether an entry was removed.
	Remove(key K) bool

	// Keys returns the current key set.
	Keys() []K

	// Snapshot returns a read-only copy of the current contents.
	Snapshot() map[K]V

	// Resize adjusts the capacity-driven eviction policy.
	Resize(maxSize int)

	// Clear empties all entries.
	Clear()

	// Close releases all resources. The cache is unusable afterward.
	Close()
}
