// Package memcache provides an in-memory implementation of the MemoryCache
// capability set with optional LRU capacity eviction.
//
// It is the collaborator an AgingCache is typically bound to. It keeps no
// lifetimes of its own: PutWithLifetime stores the value and ignores the
// lifetime hint, since the decorator keeps its own aging registry.
package memcache
