package agingcache

import (
	"sync"
	"time"

	"github.com/karupanerura/aging-cache/expiration"
	"github.com/karupanerura/aging-cache/internal/keyhash"
)

// DefaultRegistryBuckets is the default number of shards in the aging registry.
var DefaultRegistryBuckets = 64

// ageRecord tracks when a key was written through the decorator and how long
// the entry is allowed to live.
type ageRecord struct {
	insertedAt time.Time
	lifetime   time.Duration
}

// expiresAt returns the instant the record stops being fresh.
func (r ageRecord) expiresAt() time.Time {
	return r.insertedAt.Add(r.lifetime)
}

type registryBucket[K KeyConstraint] struct {
	m  map[K]ageRecord
	mu sync.RWMutex
}

// ageRegistry is a sharded map from key to its aging record.
// It holds no cache values. Every single-key operation is atomic under its
// shard lock; there is no ordering guarantee across keys.
type ageRegistry[K KeyConstraint] struct {
	buckets []*registryBucket[K]
	hashKey func(any) int
}

func newAgeRegistry[K KeyConstraint](bucketsSize int) *ageRegistry[K] {
	buckets := make([]*registryBucket[K], bucketsSize)
	for i := range buckets {
		buckets[i] = &registryBucket[K]{m: map[K]ageRecord{}}
	}
	return &ageRegistry[K]{
		buckets: buckets,
		hashKey: keyhash.GetOrCreateKeyHash[K](),
	}
}

// resolveBucket returns the bucket that corresponds to the given key.
func (r *ageRegistry[K]) resolveBucket(key K) *registryBucket[K] {
	index := r.hashKey(key) % len(r.buckets)
	if index < 0 {
		index *= -1
	}
	return r.buckets[index]
}

// record stores {insertedAt, lifetime} for the key, overwriting any prior record.
func (r *ageRegistry[K]) record(key K, insertedAt time.Time, lifetime time.Duration) {
	bucket := r.resolveBucket(key)
	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	bucket.m[key] = ageRecord{insertedAt: insertedAt, lifetime: lifetime}
}

// lookup returns the aging record for the key, if any.
// Absence of a record means the decorator places no lifetime constraint on the key.
func (r *ageRegistry[K]) lookup(key K) (ageRecord, bool) {
	bucket := r.resolveBucket(key)
	bucket.mu.RLock()
	defer bucket.mu.RUnlock()

	rec, ok := bucket.m[key]
	return rec, ok
}

// forget removes the record for the key. It is a no-op when no record exists.
func (r *ageRegistry[K]) forget(key K) {
	bucket := r.resolveBucket(key)
	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	delete(bucket.m, key)
}

// clear removes all records.
func (r *ageRegistry[K]) clear() {
	for _, bucket := range r.buckets {
		bucket.mu.Lock()
		bucket.m = map[K]ageRecord{}
		bucket.mu.Unlock()
	}
}

// expiredKeys returns the keys whose records are expired at now per the policy.
func (r *ageRegistry[K]) expiredKeys(now time.Time, policy expiration.ExpirationPolicy) []K {
	var keys []K
	for _, bucket := range r.buckets {
		bucket.mu.RLock()
		for key, rec := range bucket.m {
			if policy.IsExpired(now, rec.expiresAt()) {
				keys = append(keys, key)
			}
		}
		bucket.mu.RUnlock()
	}
	return keys
}
