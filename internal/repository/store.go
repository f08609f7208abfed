// Package repository implements PostgreSQL persistence for emotion state,
// the event dedup ledger, and the life-path event log.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a character has no persisted record.
var ErrNotFound = errors.New("repository: record not found")

// ErrAlreadyExists is returned by Create when the character already has a record.
var ErrAlreadyExists = errors.New("repository: record already exists")

// Store holds the DB pool and repositories.
type Store struct {
	db        *gorm.DB
	Emotions  *EmotionRepo
	Dedup     *DedupRepo
	LifePaths *LifePathRepo
}

// NewStore initializes the PostgreSQL pool, runs migrations, and wires the
// repositories.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&emotionModel{}, &dedupModel{}, &lifePathModel{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	store := &Store{
		db:        db,
		Emotions:  NewEmotionRepo(db),
		Dedup:     NewDedupRepo(db),
		LifePaths: NewLifePathRepo(db),
	}
	return store, nil
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Close() {
	if s.db == nil {
		return
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
