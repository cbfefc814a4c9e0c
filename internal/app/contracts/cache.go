package contracts

import (
	"context"
)

// RequestCache stores serialized responses by cache key. Entries never
// expire on their own.
type RequestCache interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	// ClearMatchingPrefixes removes every entry whose key starts with one of
	// the given prefixes.
	ClearMatchingPrefixes(ctx context.Context, prefixes []string) error
}
