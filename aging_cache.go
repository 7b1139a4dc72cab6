package agingcache

import (
	"errors"
	"time"

	"github.com/karupanerura/aging-cache/expiration"
)

// ErrNoUnderlyingCache is returned by New when no underlying cache is bound.
var ErrNoUnderlyingCache = errors.New("agingcache: no underlying cache is bound")

// AgingCache is a decorator for a MemoryCache that limits how long cached
// objects stay valid. If a cached object's age exceeds its allowed lifetime,
// the object is removed from the underlying cache on its next read and
// reported as absent, so the caller reloads it.
//
// Expiration is lazy: there is no background reaping unless WithSweepInterval
// is given. The cost of detecting expiration is paid when a key is next read;
// keys past their lifetime that are never re-read stay in the underlying
// cache and in the aging registry until touched.
//
// Storage, capacity and eviction-by-size stay with the underlying cache.
// The underlying cache must be safe for concurrent use; AgingCache holds no
// locks across calls into it.
type AgingCache[K KeyConstraint, V ValueConstraint] struct {
	cache    MemoryCache[K, V]
	maxAge   time.Duration
	registry *ageRegistry[K]
	clock    Clock
	policy   expiration.ExpirationPolicy
	janitor  *janitor
}

var _ MemoryCache[uint8, struct{}] = (*AgingCache[uint8, struct{}])(nil)

// Option is the interface for the options of an AgingCache.
type Option[K KeyConstraint, V ValueConstraint] interface {
	apply(*config)
}

type optionFunc[K KeyConstraint, V ValueConstraint] func(*config)

func (f optionFunc[K, V]) apply(c *config) {
	f(c)
}

type config struct {
	clock           Clock
	policy          expiration.ExpirationPolicy
	registryBuckets int
	sweepInterval   time.Duration
	onSweepError    func(error)
}

// WithClock sets the clock used to timestamp aging records and to observe expiration.
func WithClock[K KeyConstraint, V ValueConstraint](clock Clock) Option[K, V] {
	return optionFunc[K, V](func(c *config) {
		c.clock = clock
	})
}

// WithExpirationPolicy sets the policy that decides when an aging record is expired.
func WithExpirationPolicy[K KeyConstraint, V ValueConstraint](policy expiration.ExpirationPolicy) Option[K, V] {
	return optionFunc[K, V](func(c *config) {
		c.policy = policy
	})
}

// WithRegistryBuckets sets the number of shards in the aging registry.
// The number of buckets must be a natural number.
func WithRegistryBuckets[K KeyConstraint, V ValueConstraint](bucketsSize int) Option[K, V] {
	if bucketsSize <= 0 {
		panic("bucketsSize must be natural number")
	}
	return optionFunc[K, V](func(c *config) {
		c.registryBuckets = bucketsSize
	})
}

// WithSweepInterval starts a background janitor that evicts expired entries
// every interval, instead of only on read. Without this option expiration
// stays strictly lazy, which can leave stale records behind for keys that
// are written once and never read again.
func WithSweepInterval[K KeyConstraint, V ValueConstraint](interval time.Duration) Option[K, V] {
	if interval <= 0 {
		panic("interval must be positive")
	}
	return optionFunc[K, V](func(c *config) {
		c.sweepInterval = interval
	})
}

// WithSweepErrorHandler sets a function that is called when a sweep panics.
// The recovered panic is passed to the function as an error. Without a
// handler, recovered sweep panics are dropped silently.
// It has no effect unless WithSweepInterval is also given.
func WithSweepErrorHandler[K KeyConstraint, V ValueConstraint](onError func(error)) Option[K, V] {
	return optionFunc[K, V](func(c *config) {
		c.onSweepError = onError
	})
}

// New creates an AgingCache wrapping the given underlying cache.
//
// maxAge is the default allowed lifetime for entries written with Put.
// Entries written with PutWithLifetime carry their own lifetime instead.
// It returns ErrNoUnderlyingCache when cache is nil; the binding is validated
// here once, not re-checked on every call.
func New[K KeyConstraint, V ValueConstraint](cache MemoryCache[K, V], maxAge time.Duration, opts ...Option[K, V]) (*AgingCache[K, V], error) {
	if cache == nil {
		return nil, ErrNoUnderlyingCache
	}

	cfg := config{
		clock:           SystemClock,
		policy:          expiration.GeneralExpirationPolicy{},
		registryBuckets: DefaultRegistryBuckets,
	}
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	c := &AgingCache[K, V]{
		cache:    cache,
		maxAge:   maxAge,
		registry: newAgeRegistry[K](cfg.registryBuckets),
		clock:    cfg.clock,
		policy:   cfg.policy,
	}
	if cfg.sweepInterval > 0 {
		c.janitor = newJanitor(cfg.sweepInterval, cfg.onSweepError)
		go c.janitor.run(c.sweep)
	}
	return c, nil
}

// Put stores the value in the underlying cache and, on success, records an
// aging entry with the default lifetime. On failure no aging record is
// created, keeping registry and storage consistent.
func (c *AgingCache[K, V]) Put(key K, value V) bool {
	ok := c.cache.Put(key, value)
	if ok {
		c.registry.record(key, c.clock.Now(), c.maxAge)
	}
	return ok
}

// PutWithLifetime is identical to Put but uses the caller-supplied lifetime
// for this key only, overriding the default. The lifetime hint is also passed
// through to the underlying cache, which may use or ignore it; the decorator
// relies solely on its own registry.
func (c *AgingCache[K, V]) PutWithLifetime(key K, value V, lifetime time.Duration) bool {
	ok := c.cache.PutWithLifetime(key, value, lifetime)
	if ok {
		c.registry.record(key, c.clock.Now(), lifetime)
	}
	return ok
}

// Get retrieves the current value for the key.
//
// When the key's aging record is expired, the entry is evicted from the
// underlying cache, the record is forgotten and the key is reported absent
// without consulting the underlying value. Keys without a record (written
// around the decorator) carry no lifetime constraint and delegate as-is;
// the underlying cache may still report them absent by its own policy.
func (c *AgingCache[K, V]) Get(key K) (V, bool) {
	if rec, ok := c.registry.lookup(key); ok && c.policy.IsExpired(c.clock.Now(), rec.expiresAt()) {
		// Remove-then-forget is idempotent: concurrent readers of the same
		// expired key may both get here, and the loser's removal of an
		// already-absent entry is a harmless no-op.
		c.cache.Remove(key)
		c.registry.forget(key)
		var zero V
		return zero, false
	}
	return c.cache.Get(key)
}

// Remove forgets the key's aging record and delegates removal to the
// underlying cache, reporting the underlying cache's result.
func (c *AgingCache[K, V]) Remove(key K) bool {
	c.registry.forget(key)
	return c.cache.Remove(key)
}

// Keys returns the underlying cache's current key set as-is. It does not
// filter out keys that are logically expired but not yet purged: a key may
// appear here and still yield absent from a subsequent Get.
func (c *AgingCache[K, V]) Keys() []K {
	return c.cache.Keys()
}

// Snapshot returns the underlying cache's current contents as-is, with the
// same non-filtering caveat as Keys.
func (c *AgingCache[K, V]) Snapshot() map[K]V {
	return c.cache.Snapshot()
}

// Resize delegates to the underlying cache's capacity policy. Entries the
// underlying cache evicts for capacity leave their aging records behind until
// the key is next touched by Get, Remove or Clear.
func (c *AgingCache[K, V]) Resize(maxSize int) {
	c.cache.Resize(maxSize)
}

// Clear removes all aging records, then delegates to the underlying cache's clear.
func (c *AgingCache[K, V]) Clear() {
	c.registry.clear()
	c.cache.Clear()
}

// Close stops the janitor if one is running, drops all aging records and
// closes the underlying cache. The decorator is unusable afterward.
func (c *AgingCache[K, V]) Close() {
	if c.janitor != nil {
		c.janitor.close()
	}
	c.registry.clear()
	c.cache.Close()
}

// sweep evicts every key whose aging record is expired. It uses the same
// remove-then-forget steps as Get, so racing with concurrent readers is harmless.
func (c *AgingCache[K, V]) sweep() {
	now := c.clock.Now()
	for _, key := range c.registry.expiredKeys(now, c.policy) {
		c.cache.Remove(key)
		c.registry.forget(key)
	}
}
