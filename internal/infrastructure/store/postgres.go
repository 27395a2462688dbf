package store

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvEntry struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value []byte `gorm:"type:jsonb;not null"`
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// PostgresStore persists entries in a two-column jsonb table.
type PostgresStore struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPostgresStore(db *gorm.DB, log *zap.Logger) (*PostgresStore, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db, log: log}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string, dest any) bool {
	var entry kvEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Error("error reading from storage", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(entry.Value, dest); err != nil {
		s.log.Error("error reading from storage", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *PostgresStore) Set(ctx context.Context, key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error("error writing to storage", zap.String("key", key), zap.Error(err))
		return false
	}
	entry := kvEntry{Key: key, Value: raw}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&entry).Error
	if err != nil {
		s.log.Error("error writing to storage", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *PostgresStore) Remove(ctx context.Context, key string) bool {
	err := s.db.WithContext(ctx).Delete(&kvEntry{}, "key = ?", key).Error
	if err != nil {
		s.log.Error("error removing from storage", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}
