package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the row layout for the SQL drivers.
type KVEntry struct {
	Key       string `gorm:"column:kv_key;primaryKey;size:100"`
	Payload   string `gorm:"not null"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_store"
}

// SQLBackend stores keys in a GORM-managed table. It works with any dialect
// GORM supports; postgres and mysql are wired in config.
type SQLBackend struct {
	db *gorm.DB
}

func NewSQLBackend(db *gorm.DB) (*SQLBackend, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv_store: %w", err)
	}
	return &SQLBackend{db: db}, nil
}

func (s *SQLBackend) Get(ctx context.Context, key string) (string, bool, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).Where("kv_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Payload, true, nil
}

func (s *SQLBackend) Set(ctx context.Context, key, value string) error {
	entry := KVEntry{Key: key, Payload: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&entry).Error
}

func (s *SQLBackend) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
