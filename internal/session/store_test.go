package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointnow/web/internal/models"
)

func adminUser() models.User {
	return models.User{
		ID:        "u1",
		Email:     "owner@cafe.my",
		Name:      "Owner",
		IsActive:  true,
		UserRoles: []string{models.RoleAdmin},
		Admin:     &models.AdminLink{ID: "a1", BusinessID: "b1"},
	}
}

func testTokens() models.BackendTokens {
	return models.BackendTokens{AccessToken: "acc-1", RefreshToken: "ref-1", ExpiresIn: 3600}
}

func TestStoreSetAuth(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage, "sid-1")
	ctx := context.Background()

	require.NoError(t, store.SetAuth(ctx, adminUser(), testTokens()))

	assert.True(t, store.Authenticated())
	require.NotNil(t, store.User())
	assert.True(t, store.User().IsAdmin)
	assert.Equal(t, "b1", store.User().BusinessID)

	// All three keys are persisted under the session prefix.
	access, err := storage.Get(ctx, "sid-1:access_token")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", access)
	refresh, err := storage.Get(ctx, "sid-1:refresh_token")
	require.NoError(t, err)
	assert.Equal(t, "ref-1", refresh)
	_, err = storage.Get(ctx, "sid-1:auth-storage")
	require.NoError(t, err)
}

func TestStoreClearAuthIsIdempotent(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage, "sid-1")
	ctx := context.Background()

	require.NoError(t, store.SetAuth(ctx, adminUser(), testTokens()))
	require.NoError(t, store.ClearAuth(ctx))

	assert.False(t, store.Authenticated())
	assert.Nil(t, store.User())
	_, err := storage.Get(ctx, "sid-1:access_token")
	assert.ErrorIs(t, err, ErrNotFound)

	// Clearing an already-cleared session is not an error.
	require.NoError(t, store.ClearAuth(ctx))
}

func TestStoreInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("RehydratesPersistedSession", func(t *testing.T) {
		storage := NewMemoryStorage()
		first := NewStore(storage, "sid-1")
		require.NoError(t, first.SetAuth(ctx, adminUser(), testTokens()))

		second := NewStore(storage, "sid-1")
		require.NoError(t, second.Initialize(ctx))
		assert.True(t, second.Authenticated())
		require.NotNil(t, second.User())
		assert.Equal(t, "u1", second.User().User.ID)
		assert.Equal(t, "acc-1", second.AccessToken())
	})

	t.Run("MissingRecordMeansLoggedOut", func(t *testing.T) {
		store := NewStore(NewMemoryStorage(), "sid-2")
		require.NoError(t, store.Initialize(ctx))
		assert.False(t, store.Authenticated())
		assert.Nil(t, store.User())
	})

	t.Run("CorruptRecordFallsBackSilently", func(t *testing.T) {
		storage := NewMemoryStorage()
		require.NoError(t, storage.Set(ctx, "sid-3:auth-storage", "{not json"))

		store := NewStore(storage, "sid-3")
		require.NoError(t, store.Initialize(ctx))
		assert.False(t, store.Authenticated())
		assert.Nil(t, store.User())
	})

	t.Run("BlobWithoutUserMeansLoggedOut", func(t *testing.T) {
		storage := NewMemoryStorage()
		require.NoError(t, storage.Set(ctx, "sid-4:auth-storage", `{"user":null,"isAuthenticated":true}`))

		store := NewStore(storage, "sid-4")
		require.NoError(t, store.Initialize(ctx))
		assert.False(t, store.Authenticated())
	})
}

func TestStoreSetAuthFromPhone(t *testing.T) {
	ctx := context.Background()

	t.Run("SynthesizesCustomerSession", func(t *testing.T) {
		store := NewStore(NewMemoryStorage(), "sid-1")
		phone := models.PhoneUser{ID: "u9", PhoneNumber: "+60123456789"}
		require.NoError(t, store.SetAuthFromPhone(ctx, phone, "acc-9", "ref-9"))

		require.NotNil(t, store.User())
		assert.True(t, store.User().IsCustomer)
		assert.False(t, store.User().IsAdmin)
		assert.Equal(t, "acc-9", store.AccessToken())
		assert.Equal(t, "+60123456789", store.User().User.Name)
	})

	t.Run("IncompletePayloadLeavesStateUntouched", func(t *testing.T) {
		store := NewStore(NewMemoryStorage(), "sid-1")
		err := store.SetAuthFromPhone(ctx, models.PhoneUser{PhoneNumber: "+60123456789"}, "a", "r")
		assert.ErrorIs(t, err, models.ErrIncompletePhoneUser)
		assert.False(t, store.Authenticated())
		assert.Nil(t, store.User())
	})
}

func TestStoreAccessTokenNeverErrors(t *testing.T) {
	store := NewStore(NewMemoryStorage(), "sid-1")
	assert.Equal(t, "", store.AccessToken())
	assert.Equal(t, "", store.RefreshToken())
}

func TestStoreUpdateTokens(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage, "sid-1")
	ctx := context.Background()

	require.NoError(t, store.SetAuth(ctx, adminUser(), testTokens()))
	require.NoError(t, store.UpdateTokens("acc-2", "ref-2", 7200))

	assert.Equal(t, "acc-2", store.AccessToken())
	assert.Equal(t, "ref-2", store.RefreshToken())

	persisted, err := storage.Get(ctx, "sid-1:access_token")
	require.NoError(t, err)
	assert.Equal(t, "acc-2", persisted)

	// A rehydrated store sees the refreshed pair.
	replica := NewStore(storage, "sid-1")
	require.NoError(t, replica.Initialize(ctx))
	assert.Equal(t, "acc-2", replica.AccessToken())
}

func TestStoreUpdateTokensRequiresSession(t *testing.T) {
	store := NewStore(NewMemoryStorage(), "sid-1")
	err := store.UpdateTokens("a", "r", 60)
	require.Error(t, err)
}

// failingStorage rejects every write.
type failingStorage struct{}

func (failingStorage) Get(context.Context, string) (string, error) { return "", ErrNotFound }
func (failingStorage) Set(context.Context, string, string) error {
	return errors.New("disk full")
}
func (failingStorage) Delete(context.Context, ...string) error { return nil }

func TestStoreSetAuthRollsBackOnPersistFailure(t *testing.T) {
	store := NewStore(failingStorage{}, "sid-1")
	err := store.SetAuth(context.Background(), adminUser(), testTokens())
	require.Error(t, err)
	assert.False(t, store.Authenticated())
	assert.Nil(t, store.User())
}

func TestStoreInvalidateClearsSession(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage, "sid-1")
	require.NoError(t, store.SetAuth(context.Background(), adminUser(), testTokens()))

	store.Invalidate()

	assert.False(t, store.Authenticated())
	_, err := storage.Get(context.Background(), "sid-1:auth-storage")
	assert.ErrorIs(t, err, ErrNotFound)
}
