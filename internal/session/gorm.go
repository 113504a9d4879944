package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// AuthSession is the key/value row backing GormStorage.
type AuthSession struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time
}

// GormStorage persists session keys in an auth_sessions table, for
// deployments that already run postgres and want sessions to survive both
// restarts and redis flushes.
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage migrates the auth_sessions table and returns the backend.
func NewGormStorage(db *gorm.DB) (*GormStorage, error) {
	if err := db.AutoMigrate(&AuthSession{}); err != nil {
		return nil, fmt.Errorf("migrate auth_sessions: %w", err)
	}
	return &GormStorage{db: db}, nil
}

func (g *GormStorage) Get(ctx context.Context, key string) (string, error) {
	var row AuthSession
	err := g.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load session key: %w", err)
	}
	return row.Value, nil
}

func (g *GormStorage) Set(ctx context.Context, key, value string) error {
	row := AuthSession{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := g.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("store session key: %w", err)
	}
	return nil
}

func (g *GormStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := g.db.WithContext(ctx).Delete(&AuthSession{}, "key IN ?", keys).Error; err != nil {
		return fmt.Errorf("delete session keys: %w", err)
	}
	return nil
}
