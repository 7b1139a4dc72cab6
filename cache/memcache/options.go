package memcache

import (
	agingcache "github.com/karupanerura/aging-cache"
)

// Option is the interface for the options of the in-memory cache.
type Option[K agingcache.KeyConstraint, V agingcache.ValueConstraint] interface {
	apply(*options[K, V])
}

type optionFunc[K agingcache.KeyConstraint, V agingcache.ValueConstraint] func(*options[K, V])

func (f optionFunc[K, V]) apply(o *options[K, V]) {
	f(o)
}

// WithMaxEntries bounds the cache to the given number of entries; the least
// recently used entry is evicted when a write would exceed the bound.
// maxEntries <= 0 means unbounded.
func WithMaxEntries[K agingcache.KeyConstraint, V agingcache.ValueConstraint](maxEntries int) Option[K, V] {
	return optionFunc[K, V](func(o *options[K, V]) {
		o.maxEntries = maxEntries
	})
}

// WithCloner sets the value cloner applied on reads.
func WithCloner[K agingcache.KeyConstraint, V agingcache.ValueConstraint](cloner agingcache.ValueCloner[V]) Option[K, V] {
	return optionFunc[K, V](func(o *options[K, V]) {
		o.cloner = cloner
	})
}

type options[K agingcache.KeyConstraint, V agingcache.ValueConstraint] struct {
	maxEntries int
	cloner     agingcache.ValueCloner[V]
}

func defaultOptions[K agingcache.KeyConstraint, V agingcache.ValueConstraint]() options[K, V] {
	return options[K, V]{
		maxEntries: 0,
		cloner:     agingcache.DefaultValueCloner[V](),
	}
}
