package session

import (
	"context"

	"github.com/google/uuid"
)

// Manager hands out per-session Stores over a shared storage backend. The
// original client had exactly one session per process; the server has one
// per signed session cookie, each with its own Store and mutex.
type Manager struct {
	storage Storage
}

// NewManager builds a Manager over the given backend.
func NewManager(storage Storage) *Manager {
	return &Manager{storage: storage}
}

// NewSessionID issues a fresh session identifier.
func (m *Manager) NewSessionID() uuid.UUID {
	return uuid.New()
}

// Store returns the Store for a session id, rehydrated from storage. Stores
// are cheap; one is built per request rather than cached, so state always
// reflects the backend and no cross-request locking is needed here.
func (m *Manager) Store(ctx context.Context, sid string) (*Store, error) {
	store := NewStore(m.storage, sid)
	if err := store.Initialize(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
