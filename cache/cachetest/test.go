// Package cachetest provides generic test cases for MemoryCache implementations.
package cachetest

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	agingcache "github.com/karupanerura/aging-cache"
	"golang.org/x/sync/errgroup"
)

// FixedClock is a clock that returns a time set by the test.
type FixedClock struct {
	Time time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.Time
}

// BenchmarkPut benchmarks the Put method of the cache.
func BenchmarkPut[K agingcache.KeyConstraint, V agingcache.ValueConstraint](b *testing.B, cache agingcache.MemoryCache[K, V], keys []K) {
	var zero V
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Put(keys[i%len(keys)], zero)
	}
}

// TestBasicOperations exercises the single-key operations of the capability set.
func TestBasicOperations(t *testing.T, provider func() (agingcache.MemoryCache[uint8, int8], func())) {
	t.Run("BasicOperations", func(t *testing.T) {
		t.Parallel()

		t.Run("PutAndGet", func(t *testing.T) {
			t.Parallel()

			cache, release := provider()
			defer release()

			if _, ok := cache.Get(1); ok {
				t.Error("should not exist before any put")
			}

			if !cache.Put(1, 10) {
				t.Fatal("put should succeed")
			}
			if got, ok := cache.Get(1); !ok || got != 10 {
				t.Errorf("Get(1) = (%d, %v), want (10, true)", got, ok)
			}

			// Overwrite
			if !cache.Put(1, 20) {
				t.Fatal("overwriting put should succeed")
			}
			if got, ok := cache.Get(1); !ok || got != 20 {
				t.Errorf("Get(1) = (%d, %v), want (20, true)", got, ok)
			}
		})

		t.Run("PutWithLifetime", func(t *testing.T) {
			t.Parallel()

			cache, release := provider()
			defer release()

			if !cache.PutWithLifetime(1, 10, time.Hour) {
				t.Fatal("put should succeed")
			}
			if got, ok := cache.Get(1); !ok || got != 10 {
				t.Errorf("Get(1) = (%d, %v), want (10, true)", got, ok)
			}
		})

		t.Run("Remove", func(t *testing.T) {
			t.Parallel()

			cache, release := provider()
			defer release()

			if cache.Remove(1) {
				t.Error("removing an absent key should report false")
			}

			cache.Put(1, 10)
			if !cache.Remove(1) {
				t.Error("removing a present key should report true")
			}
			if _, ok := cache.Get(1); ok {
				t.Error("should not exist after remove")
			}
		})

		t.Run("KeysAndSnapshot", func(t *testing.T) {
			t.Parallel()

			cache, release := provider()
			defer release()

			entries := map[uint8]int8{1: 10, 2: 20, 3: 30}
			for key, value := range entries {
				cache.Put(key, value)
			}

			keys := cache.Keys()
			sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
			if df := cmp.Diff([]uint8{1, 2, 3}, keys); df != "" {
				t.Errorf("keys diff=%s", df)
			}

			if df := cmp.Diff(entries, cache.Snapshot()); df != "" {
				t.Errorf("snapshot diff=%s", df)
			}
		})

		t.Run("Clear", func(t *testing.T) {
			t.Parallel()

			cache, release := provider()
			defer release()

			cache.Put(1, 10)
			cache.Put(2, 20)
			cache.Clear()

			if _, ok := cache.Get(1); ok {
				t.Error("should not exist after clear")
			}
			if got := len(cache.Keys()); got != 0 {
				t.Errorf("len(Keys()) = %d, want 0", got)
			}

			// A fresh put/get cycle behaves as on an empty cache.
			cache.Put(1, 11)
			if got, ok := cache.Get(1); !ok || got != 11 {
				t.Errorf("Get(1) = (%d, %v), want (11, true)", got, ok)
			}
		})
	})
}

// TestConcurrency exercises the cache under arbitrary concurrent invocation.
func TestConcurrency(t *testing.T, provider func() (agingcache.MemoryCache[uint8, int8], func())) {
	t.Run("Concurrency", func(t *testing.T) {
		t.Parallel()

		cache, release := provider()
		defer release()

		patterns := []struct {
			key   uint8
			value int8
		}{
			{0, 1},
			{1, 2},
			{2, 3},
			{3, 4},
			{4, 5},
			{251, 124},
			{252, 125},
			{253, 126},
			{254, 127},
			{255, -128},
		}
		rand.Shuffle(len(patterns), func(i, j int) {
			patterns[i], patterns[j] = patterns[j], patterns[i]
		})

		var eg errgroup.Group
		for _, pattern := range patterns {
			pattern := pattern
			eg.Go(func() error {
				if _, ok := cache.Get(pattern.key); ok {
					return fmt.Errorf("unexpected exists value for key %d", pattern.key)
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			t.Fatal(err)
		}

		eg = errgroup.Group{}
		for _, pattern := range patterns {
			pattern := pattern
			eg.Go(func() error {
				if !cache.Put(pattern.key, pattern.value) {
					return fmt.Errorf("put failed for key %d", pattern.key)
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			t.Fatal(err)
		}

		eg = errgroup.Group{}
		values := make([]int8, len(patterns))
		for i, pattern := range patterns {
			i := i
			pattern := pattern
			eg.Go(func() error {
				value, ok := cache.Get(pattern.key)
				if !ok {
					return fmt.Errorf("missing value for key %d", pattern.key)
				}
				values[i] = value
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			t.Fatal(err)
		}

		for i, pattern := range patterns {
			if values[i] != pattern.value {
				t.Errorf("pattern[%d] key=%d value=%d, want %d", i, pattern.key, values[i], pattern.value)
			}
		}
	})
}

// TestClose verifies that a closed cache is unusable.
func TestClose(t *testing.T, provider func() (agingcache.MemoryCache[uint8, int8], func())) {
	t.Run("Close", func(t *testing.T) {
		t.Parallel()

		cache, _ := provider()
		cache.Put(1, 10)
		cache.Close()

		if cache.Put(2, 20) {
			t.Error("put should report false after close")
		}
		if _, ok := cache.Get(1); ok {
			t.Error("should not exist after close")
		}
	})
}
