package cache_test

import (
	"testing"

	agingcache "github.com/karupanerura/aging-cache"
	"github.com/karupanerura/aging-cache/cache"
	"github.com/karupanerura/aging-cache/cache/cachetest"
	"github.com/karupanerura/aging-cache/cache/memcache"
)

func TestFunctionsCache(t *testing.T) {
	t.Parallel()

	// A FunctionsCache delegating to a real cache must satisfy the whole
	// capability set, so the generic suite runs against it unchanged.
	provider := func() (agingcache.MemoryCache[uint8, int8], func()) {
		backing := memcache.New[uint8, int8]()
		functions := &cache.FunctionsCache[uint8, int8]{
			PutFunc:             backing.Put,
			PutWithLifetimeFunc: backing.PutWithLifetime,
			GetFunc:             backing.Get,
			RemoveFunc:          backing.Remove,
			KeysFunc:            backing.Keys,
			SnapshotFunc:        backing.Snapshot,
			ResizeFunc:          backing.Resize,
			ClearFunc:           backing.Clear,
			CloseFunc:           backing.Close,
		}
		return functions, backing.Close
	}
	cachetest.TestBasicOperations(t, provider)
	cachetest.TestConcurrency(t, provider)
	cachetest.TestClose(t, provider)
}
