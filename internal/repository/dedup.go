package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MemoryHub/soluna/internal/types"
)

// dedupModel maps to the emotion_event_dedup table. The composite key makes
// a duplicate mark a conflict, which every write path swallows.
type dedupModel struct {
	CharacterID string `gorm:"primaryKey"`
	EventID     string `gorm:"primaryKey"`
	EventType   string
	ProcessedAt time.Time `gorm:"index"`
}

func (dedupModel) TableName() string {
	return "emotion_event_dedup"
}

// DedupRepo is the time-windowed idempotency ledger for applied life events.
// Rows older than types.DedupWindow read as unprocessed even before cleanup
// physically removes them.
type DedupRepo struct {
	db *gorm.DB
}

// NewDedupRepo returns a DedupRepo.
func NewDedupRepo(db *gorm.DB) *DedupRepo {
	return &DedupRepo{db: db}
}

// IsProcessed reports whether the pair was applied within the dedup window.
func (r *DedupRepo) IsProcessed(ctx context.Context, characterID, eventID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dedupModel{}).
		Where("character_id = ? AND event_id = ? AND processed_at > ?",
			characterID, eventID, time.Now().Add(-types.DedupWindow)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check event processed state: %w", err)
	}
	return count > 0, nil
}

// BatchCheck reports the in-window processed state for every given pair.
func (r *DedupRepo) BatchCheck(ctx context.Context, keys []types.EventKey) (map[types.EventKey]bool, error) {
	results := make(map[types.EventKey]bool, len(keys))
	if len(keys) == 0 {
		return results, nil
	}

	pairs := make([][]any, len(keys))
	for i, key := range keys {
		pairs[i] = []any{key.CharacterID, key.EventID}
		results[key] = false
	}

	var processed []dedupModel
	err := r.db.WithContext(ctx).
		Where("(character_id, event_id) IN ? AND processed_at > ?",
			pairs, time.Now().Add(-types.DedupWindow)).
		Find(&processed).Error
	if err != nil {
		return nil, fmt.Errorf("failed to batch check events: %w", err)
	}

	for _, row := range processed {
		results[types.EventKey{CharacterID: row.CharacterID, EventID: row.EventID}] = true
	}
	return results, nil
}

// MarkProcessed records the pair as applied. A duplicate mark is a no-op,
// not an error.
func (r *DedupRepo) MarkProcessed(ctx context.Context, characterID, eventID, eventType string) error {
	record := dedupModel{
		CharacterID: characterID,
		EventID:     eventID,
		EventType:   eventType,
		ProcessedAt: time.Now(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to mark event processed: %w", err)
	}
	return nil
}

// BatchMark records many pairs as applied and returns how many rows were
// actually inserted; already-marked pairs are skipped silently.
func (r *DedupRepo) BatchMark(ctx context.Context, records []types.DedupRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	now := time.Now()
	models := make([]dedupModel, len(records))
	for i, record := range records {
		eventType := record.EventType
		if eventType == "" {
			eventType = "unknown"
		}
		models[i] = dedupModel{
			CharacterID: record.CharacterID,
			EventID:     record.EventID,
			EventType:   eventType,
			ProcessedAt: now,
		}
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&models, batchUpsertChunkSize)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to batch mark events: %w", result.Error)
	}
	return int(result.RowsAffected), nil
}

// CleanupExpired deletes ledger rows older than the dedup window and returns
// how many were removed. Safe on an empty table and concurrently with
// readers and writers.
func (r *DedupRepo) CleanupExpired(ctx context.Context) (int, error) {
	result := r.db.WithContext(ctx).
		Where("processed_at < ?", time.Now().Add(-types.DedupWindow)).
		Delete(&dedupModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to cleanup expired dedup records: %w", result.Error)
	}
	return int(result.RowsAffected), nil
}
