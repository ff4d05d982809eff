// Package metadata is a small durable key-value store backed by the client's
// local SQLite database. The persistence adapter keeps the serialized auth
// slice here.
package metadata

import "context"

type Repository interface {
	// Get returns the stored value, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
