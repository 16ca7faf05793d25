package ports

import "context"

// SessionCache is a process-wide key-value store of serialized text.
// Entries never expire and carry no version.
type SessionCache interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error
}
