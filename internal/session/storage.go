// Package session owns "who is logged in". A Store holds one browser
// session's auth state over a pluggable durable Storage backend, replacing
// the browser localStorage the product originally relied on.
package session

import (
	"context"
	"errors"
)

// Storage keys persisted per session. Nothing else is ever stored.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyAuthBlob     = "auth-storage"
)

// ErrNotFound is returned by Storage.Get for an absent key.
var ErrNotFound = errors.New("session: key not found")

// Storage is the durable key/value backend behind a Store. Implementations:
// MemoryStorage (tests), FileStorage (encrypted files), RedisStorage and
// GormStorage (server deployments).
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
