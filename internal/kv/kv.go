// Package kv provides the local key-value store that stands in for the
// browser's persistent storage: a handful of string keys, each holding a
// JSON blob or a plain value.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is the port implemented by the sqlite and memory adapters.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
