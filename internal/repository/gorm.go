package repository

import (
	"context"
	"errors"
	"time"

	"github.com/windoze95/servicehub-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is a KeyValueStore backed by the kv_entries table.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore creates a GormStore. The table must already be migrated.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Get reads a row by key.
func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.KVEntry
	err := s.DB.WithContext(ctx).First(&entry, &models.KVEntry{Key: key}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set upserts a row.
func (s *GormStore) Set(ctx context.Context, key, value string) error {
	entry := &models.KVEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entry).Error
}
