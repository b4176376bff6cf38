package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("kv: key not found")

// Store is a small string key-value contract used for resume artifacts
// (feedback, HR reviews, improved drafts) serialized as JSON blobs.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// List returns keys matching prefix. An empty prefix returns all keys.
	List(ctx context.Context, prefix string) ([]string, error)
}
