// Package cache stores derived data between runs.
//
// Person detection is the slowest step of a crawl, and its result depends
// only on a document's text and the names known at that point. Caching it
// under a content hash makes re-mapping an unchanged wiki nearly free.
//
// Two implementations are provided:
//   - [FileCache]: one JSON file per entry below a directory
//   - [NullCache]: never stores anything, the default when caching is off
//
// Keys are free-form strings; [Key] builds stable ones from typed parts.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found. A corrupt or
	// expired entry is reported as a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
