package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pointnow/web/internal/models"
)

// authBlob is the serialized session record kept under the auth-storage key.
// The field names match the original client's persisted shape.
type authBlob struct {
	User            *models.AuthUser `json:"user"`
	IsAuthenticated bool             `json:"isAuthenticated"`
}

// Store is one session's auth state. All operations hold the mutex for their
// whole duration so the authenticated flag and the user pointer can never be
// observed out of step, and storage and memory are updated inside the same
// critical section.
//
// Store implements pointnow.TokenSource.
type Store struct {
	mu      sync.Mutex
	storage Storage
	sid     string

	user          *models.AuthUser
	authenticated bool
}

// NewStore binds a session id to a storage backend. Call Initialize to
// rehydrate a previously persisted session.
func NewStore(storage Storage, sid string) *Store {
	return &Store{storage: storage, sid: sid}
}

func (s *Store) key(name string) string {
	return s.sid + ":" + name
}

// SetAuth derives the session projection from a raw user and token pair,
// persists it, and updates in-memory state. Nothing is mutated if a
// persistence write fails.
func (s *Store) SetAuth(ctx context.Context, user models.User, tokens models.BackendTokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	au := models.DeriveAuthUser(user, tokens)
	if err := s.persistLocked(ctx, &au); err != nil {
		return err
	}

	s.user = &au
	s.authenticated = true
	return nil
}

// SetAuthFromPhone converts the OTP login payload into the canonical user
// shape and delegates to the same derivation as SetAuth. A payload missing
// its minimal fields fails loudly; silently corrupting the session is worse
// than failing the login.
func (s *Store) SetAuthFromPhone(ctx context.Context, phoneUser models.PhoneUser, token, refreshToken string) error {
	user, err := models.CanonicalizePhoneUser(phoneUser)
	if err != nil {
		return err
	}

	tokens := models.BackendTokens{AccessToken: token, RefreshToken: refreshToken}
	return s.SetAuth(ctx, user, tokens)
}

// ClearAuth removes all persisted session keys and resets in-memory state.
// Safe to call when already logged out.
func (s *Store) ClearAuth(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(ctx, s.key(keyAccessToken), s.key(keyRefreshToken), s.key(keyAuthBlob)); err != nil {
		return err
	}

	s.user = nil
	s.authenticated = false
	return nil
}

// Initialize rehydrates in-memory state from storage. A missing or corrupt
// persisted record falls back to the unauthenticated baseline; it is never
// an error.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.storage.Get(ctx, s.key(keyAuthBlob))
	if err != nil {
		s.user = nil
		s.authenticated = false
		return nil
	}

	var blob authBlob
	if err := json.Unmarshal([]byte(raw), &blob); err != nil || blob.User == nil {
		s.user = nil
		s.authenticated = false
		return nil
	}

	s.user = blob.User
	s.authenticated = blob.IsAuthenticated && blob.User != nil
	return nil
}

// User returns the session projection, nil when logged out.
func (s *Store) User() *models.AuthUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Authenticated reports whether a user is logged in. True implies User()
// is non-nil.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// AccessToken returns the bearer token for outbound calls. It never fails:
// an empty string means unauthenticated.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		return s.user.Tokens.AccessToken
	}
	if raw, err := s.storage.Get(context.Background(), s.key(keyAccessToken)); err == nil {
		return raw
	}
	return ""
}

// RefreshToken returns the stored refresh token, empty when absent.
func (s *Store) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		return s.user.Tokens.RefreshToken
	}
	if raw, err := s.storage.Get(context.Background(), s.key(keyRefreshToken)); err == nil {
		return raw
	}
	return ""
}

// UpdateTokens replaces the persisted token pair after a refresh.
func (s *Store) UpdateTokens(access, refresh string, expiresIn int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return fmt.Errorf("session: cannot update tokens without an authenticated user")
	}

	updated := *s.user
	updated.Tokens = models.BackendTokens{AccessToken: access, RefreshToken: refresh, ExpiresIn: expiresIn}
	if err := s.persistLocked(context.Background(), &updated); err != nil {
		return err
	}

	s.user = &updated
	return nil
}

// Invalidate drops the session after an unrecoverable 401. Errors are
// swallowed: there is nothing useful to do with a failed logout.
func (s *Store) Invalidate() {
	_ = s.ClearAuth(context.Background())
}

func (s *Store) persistLocked(ctx context.Context, au *models.AuthUser) error {
	blob, err := json.Marshal(authBlob{User: au, IsAuthenticated: true})
	if err != nil {
		return fmt.Errorf("serialize session: %w", err)
	}

	if err := s.storage.Set(ctx, s.key(keyAccessToken), au.Tokens.AccessToken); err != nil {
		return err
	}
	if err := s.storage.Set(ctx, s.key(keyRefreshToken), au.Tokens.RefreshToken); err != nil {
		return err
	}
	return s.storage.Set(ctx, s.key(keyAuthBlob), string(blob))
}
