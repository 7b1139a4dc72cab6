// Package cache provides adapter implementations of the MemoryCache capability set.
package cache
