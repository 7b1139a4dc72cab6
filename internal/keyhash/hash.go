// Package keyhash provides per-type hash functions used to pick a shard for a key.
package keyhash

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"sync"

	"github.com/goccy/go-reflect"
)

var (
	// keyHashMapMutex is a mutex for the keyHashMap.
	keyHashMapMutex = sync.RWMutex{}

	// keyHashMap stores hash functions for different key types.
	keyHashMap = map[string]func(any) int{}
)

// GetOrCreateKeyHash returns a hash function for the given key type.
// Hash functions are cached per type name.
func GetOrCreateKeyHash[K comparable]() func(any) int {
	var zero K
	return getOrCreateKeyHashAny(zero)
}

func getOrCreateKeyHashAny(t any) func(any) int {
	name := reflect.TypeOf(t).String()

	keyHashMapMutex.RLock()
	if f, ok := keyHashMap[name]; ok {
		keyHashMapMutex.RUnlock()
		return f
	}

	keyHashMapMutex.RUnlock()
	keyHashMapMutex.Lock()
	defer keyHashMapMutex.Unlock()
	if f, ok := keyHashMap[name]; ok {
		return f
	}

	f := createKeyHashAny(t)
	keyHashMap[name] = f
	return f
}

// createKeyHashAny creates a hash function for the given type.
// It uses the FNV-1a hash algorithm and supports primitive key types.
func createKeyHashAny(t any) func(any) int {
	switch t.(type) {
	case int:
		return uint64KeyHash(func(v any) uint64 { return uint64(v.(int)) })
	case int8:
		return uint64KeyHash(func(v any) uint64 { return uint64(v.(int8)) })
	case int16:
		return uint64KeyHash(func(v any) uint64 { return uint64(v.(int16)) })
	case int32:
		return uint64KeyHash(func(v any) uint64 { return uint64(v.(int32)) })
	case int64:
		return uint64KeyHash(func(v any) uint64 { return uint64(v.(int64)) })
	case uint:
		return uint64KeyHash(func(v any) uint64 { return uint64(v.(uint)) })
	case uint8:
		return uint64KeyHash(func(v any) uint64 { return uint64(v.(uint8)) })
	case uint16:
		return uint64KeyHash(func(v any) uint64 { return uint64(v.(uint16)) })
	case uint32:
		return uint64KeyHash(func(v any) uint64 { return uint64(v.(uint32)) })
	case uint64:
		return uint64KeyHash(func(v any) uint64 { return v.(uint64) })
	case float32:
		return uint64KeyHash(func(v any) uint64 { return uint64(math.Float32bits(v.(float32))) })
	case float64:
		return uint64KeyHash(func(v any) uint64 { return math.Float64bits(v.(float64)) })
	case string:
		return func(v any) int {
			return hashBytes([]byte(v.(string)))
		}
	case uintptr:
		panic("uintptr cannot be hash key")
	default:
		panic(fmt.Sprintf("unknown type: %T", t))
	}
}

// uint64KeyHash builds a hash function for a fixed-width key from its uint64 representation.
func uint64KeyHash(conv func(any) uint64) func(any) int {
	return func(v any) int {
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], conv(v))
		return hashBytes(b[:])
	}
}

// hashBytes computes a 64-bit FNV-1a hash of the given byte slice.
func hashBytes(b []byte) int {
	h := fnv.New64a()
	_, _ = h.Write(b)
	return int(h.Sum64())
}
