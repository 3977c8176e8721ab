package storage

import "context"

// KV is the durable local-storage surface the cart persists through. A value
// is one JSON document under one key; writes are last-write-wins with no
// coordination between writers.
type KV interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Close() error
}
