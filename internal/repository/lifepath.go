package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MemoryHub/soluna/internal/types"
)

// lifePathModel maps to the life_path_events table. The table is written by
// the external life-path generator; this repo only adapts it into the
// engine's event-source contract (plus inserts for the seed tool).
type lifePathModel struct {
	EventID        string `gorm:"primaryKey"`
	CharacterID    string `gorm:"index"`
	EventType      string
	PleasureScore  int
	ArousalScore   int
	DominanceScore int
	OccurredAt     time.Time `gorm:"index"`
}

func (lifePathModel) TableName() string {
	return "life_path_events"
}

// LifePathRepo reads life-path events for the bulk update flow.
type LifePathRepo struct {
	db *gorm.DB
}

// NewLifePathRepo returns a LifePathRepo.
func NewLifePathRepo(db *gorm.DB) *LifePathRepo {
	return &LifePathRepo{db: db}
}

// EventsInWindow returns all events with timestamps in [start, end].
func (r *LifePathRepo) EventsInWindow(ctx context.Context, start, end time.Time) ([]types.PendingEvent, error) {
	var models []lifePathModel
	err := r.db.WithContext(ctx).
		Where("occurred_at BETWEEN ? AND ?", start, end).
		Order("occurred_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query life path events: %w", err)
	}

	events := make([]types.PendingEvent, 0, len(models))
	for _, model := range models {
		events = append(events, types.PendingEvent{
			CharacterID: model.CharacterID,
			EventID:     model.EventID,
			EventType:   model.EventType,
			OccurredAt:  model.OccurredAt,
			Impact: map[string]any{
				"pleasure":  model.PleasureScore,
				"arousal":   model.ArousalScore,
				"dominance": model.DominanceScore,
			},
		})
	}
	return events, nil
}

// Insert stores events, skipping ids that already exist. Used by the seed
// tool; production events arrive through the external generator.
func (r *LifePathRepo) Insert(ctx context.Context, events []types.PendingEvent) error {
	if len(events) == 0 {
		return nil
	}
	models := make([]lifePathModel, len(events))
	for i, event := range events {
		pleasure, arousal, dominance := event.PADImpact()
		models[i] = lifePathModel{
			EventID:        event.EventID,
			CharacterID:    event.CharacterID,
			EventType:      event.EventType,
			PleasureScore:  pleasure,
			ArousalScore:   arousal,
			DominanceScore: dominance,
			OccurredAt:     event.OccurredAt,
		}
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&models, batchUpsertChunkSize).Error
	if err != nil {
		return fmt.Errorf("failed to insert life path events: %w", err)
	}
	return nil
}
