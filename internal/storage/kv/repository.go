// Package kv holds the durable key/value backends the store adapter writes
// through to. Every backend stores opaque byte values under string keys.
package kv

import (
	"context"
)

// Repository is the contract every backend honours.
//
//   - Get returns (nil, nil) when the key is absent.
//   - Set is an upsert.
//   - Delete removes all given keys atomically; missing keys are not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
