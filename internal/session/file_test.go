package session

import (
	"context"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFileKey() string {
	return hex.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
}

func TestFileStorageRoundTrip(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir(), testFileKey())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Set(ctx, "sid-1:access_token", "acc-1"))
	got, err := fs.Get(ctx, "sid-1:access_token")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", got)

	require.NoError(t, fs.Set(ctx, "sid-1:access_token", "acc-2"))
	got, err = fs.Get(ctx, "sid-1:access_token")
	require.NoError(t, err)
	assert.Equal(t, "acc-2", got)
}

func TestFileStorageMissingKey(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir(), testFileKey())
	require.NoError(t, err)

	_, err = fs.Get(context.Background(), "sid-1:auth-storage")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStorageDelete(t *testing.T) {
	fs, err := NewFileStorage(t.TempDir(), testFileKey())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Set(ctx, "sid-1:access_token", "acc"))
	require.NoError(t, fs.Delete(ctx, "sid-1:access_token", "sid-1:never-written"))

	_, err = fs.Get(ctx, "sid-1:access_token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStorageWrongKeyFailsDecryption(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	writer, err := NewFileStorage(dir, testFileKey())
	require.NoError(t, err)
	require.NoError(t, writer.Set(ctx, "sid-1:auth-storage", `{"user":null}`))

	otherKey := hex.EncodeToString([]byte(strings.Repeat("z", 32)))
	reader, err := NewFileStorage(dir, otherKey)
	require.NoError(t, err)

	_, err = reader.Get(ctx, "sid-1:auth-storage")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNewFileStorageRejectsBadKeys(t *testing.T) {
	_, err := NewFileStorage(t.TempDir(), "not-hex")
	require.Error(t, err)

	_, err = NewFileStorage(t.TempDir(), hex.EncodeToString([]byte("short")))
	require.Error(t, err)
}
