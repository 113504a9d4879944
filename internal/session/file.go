package session

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

// FileStorage keeps one secretbox-encrypted file per storage key under a
// directory. It is the "encrypted keychain" swap of the Storage interface,
// for single-host deployments without redis or postgres.
type FileStorage struct {
	dir string
	key [32]byte
}

// NewFileStorage builds a file backend. hexKey must decode to exactly 32
// bytes; the directory is created if missing.
func NewFileStorage(dir, hexKey string) (*FileStorage, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil {
		return nil, fmt.Errorf("decode session file key: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("session file key must be 32 bytes, got %d", len(raw))
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	fs := &FileStorage{dir: dir}
	copy(fs.key[:], raw)
	return fs, nil
}

// filename maps an arbitrary storage key to a safe file name. Keys contain
// session IDs and colons, so they are base32-encoded rather than sanitized.
func (f *FileStorage) filename(key string) string {
	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString([]byte(key))
	return filepath.Join(f.dir, encoded+".bin")
}

func (f *FileStorage) Get(_ context.Context, key string) (string, error) {
	sealed, err := os.ReadFile(f.filename(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read session file: %w", err)
	}

	if len(sealed) < 24 {
		return "", fmt.Errorf("session file for %q is truncated", key)
	}

	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	plain, ok := secretbox.Open(nil, sealed[24:], &nonce, &f.key)
	if !ok {
		return "", fmt.Errorf("session file for %q failed decryption", key)
	}
	return string(plain), nil
}

func (f *FileStorage) Set(_ context.Context, key, value string) error {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(value), &nonce, &f.key)
	if err := os.WriteFile(f.filename(key), sealed, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (f *FileStorage) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		if err := os.Remove(f.filename(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove session file: %w", err)
		}
	}
	return nil
}
