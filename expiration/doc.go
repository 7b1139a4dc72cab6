// Package expiration provides policies for deciding when an aged cache entry is expired.
//
// This package defines the ExpirationPolicy interface and several implementations.
// The aging-cache decorator computes an entry's expiration instant from its aging
// record (insertion time plus allowed lifetime) and delegates the comparison
// against the current time to a policy, so expiration behavior can be customized
// without touching the eviction logic.
package expiration
