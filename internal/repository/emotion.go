package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MemoryHub/soluna/internal/affect"
	"github.com/MemoryHub/soluna/internal/types"
)

// emotionModel maps to the emotions table, one row per character.
type emotionModel struct {
	CharacterID    string `gorm:"primaryKey"`
	PleasureScore  int
	ArousalScore   int
	DominanceScore int
	// CompositeScore is the weighted summary, recomputed on every write.
	CompositeScore int `gorm:"column:current_emotion_score"`
	// MoodVector mirrors the three PAD axes for similarity queries.
	MoodVector pgvector.Vector `gorm:"type:vector(3)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (emotionModel) TableName() string {
	return "emotions"
}

// EmotionRepo accesses per-character affect records.
type EmotionRepo struct {
	db *gorm.DB
}

// NewEmotionRepo returns an EmotionRepo.
func NewEmotionRepo(db *gorm.DB) *EmotionRepo {
	return &EmotionRepo{db: db}
}

// Get fetches one character's record. Returns ErrNotFound when the character
// has no row.
func (r *EmotionRepo) Get(ctx context.Context, characterID string) (*types.EmotionRecord, error) {
	var record emotionModel
	err := r.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get emotion record: %w", err)
	}
	result := recordFromModel(record)
	return &result, nil
}

// GetBatch fetches records for the given characters. Characters without a
// row are absent from the returned map.
func (r *EmotionRepo) GetBatch(ctx context.Context, characterIDs []string) (map[string]types.EmotionRecord, error) {
	if len(characterIDs) == 0 {
		return map[string]types.EmotionRecord{}, nil
	}
	var records []emotionModel
	if err := r.db.WithContext(ctx).
		Where("character_id IN ?", characterIDs).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get emotion records: %w", err)
	}
	results := make(map[string]types.EmotionRecord, len(records))
	for _, record := range records {
		results[record.CharacterID] = recordFromModel(record)
	}
	return results, nil
}

// Create inserts a new record. Returns ErrAlreadyExists when the character
// already has one.
func (r *EmotionRepo) Create(ctx context.Context, record types.EmotionRecord) error {
	model := modelFromRecord(record)
	err := r.db.WithContext(ctx).Create(&model).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("failed to insert emotion record: %w", err)
	}
	return nil
}

// UpdateAbsolute overwrites a character's vector with an already-clamped
// absolute value. Returns ErrNotFound when the character has no row.
func (r *EmotionRepo) UpdateAbsolute(ctx context.Context, characterID string, vector affect.Vector) error {
	result := r.db.WithContext(ctx).
		Model(&emotionModel{}).
		Where("character_id = ?", characterID).
		Updates(map[string]any{
			"pleasure_score":        vector.Pleasure,
			"arousal_score":         vector.Arousal,
			"dominance_score":       vector.Dominance,
			"current_emotion_score": int(vector.CompositeScore()),
			"mood_vector":           moodVector(vector),
			"updated_at":            time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update emotion record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// batchUpsertChunkSize bounds the tuple count per upsert statement.
const batchUpsertChunkSize = 100

// BatchUpsert writes absolute records for many characters in chunked upsert
// statements. Partial success is expected: a failed chunk degrades to
// per-record writes and the outcome is reported per character, never as an
// all-or-nothing transaction.
func (r *EmotionRepo) BatchUpsert(ctx context.Context, records []types.EmotionRecord) map[string]error {
	results := make(map[string]error, len(records))
	for start := 0; start < len(records); start += batchUpsertChunkSize {
		end := start + batchUpsertChunkSize
		if end > len(records) {
			end = len(records)
		}
		chunk := records[start:end]

		models := make([]emotionModel, len(chunk))
		for i, record := range chunk {
			models[i] = modelFromRecord(record)
		}
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "character_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"pleasure_score", "arousal_score", "dominance_score",
					"current_emotion_score", "mood_vector", "updated_at",
				}),
			}).
			Create(&models).Error
		if err == nil {
			for _, record := range chunk {
				results[record.CharacterID] = nil
			}
			continue
		}

		// One bad row fails the whole statement; retry the chunk row by
		// row so the rest still lands.
		for _, record := range chunk {
			model := modelFromRecord(record)
			rowErr := r.db.WithContext(ctx).
				Clauses(clause.OnConflict{
					Columns: []clause.Column{{Name: "character_id"}},
					DoUpdates: clause.AssignmentColumns([]string{
						"pleasure_score", "arousal_score", "dominance_score",
						"current_emotion_score", "mood_vector", "updated_at",
					}),
				}).
				Create(&model).Error
			if rowErr != nil {
				results[record.CharacterID] = fmt.Errorf("failed to upsert emotion record: %w", rowErr)
			} else {
				results[record.CharacterID] = nil
			}
		}
	}
	return results
}

// SimilarMoods returns the characters whose current mood vector sits closest
// to the given character's, nearest first.
func (r *EmotionRepo) SimilarMoods(ctx context.Context, characterID string, limit int) ([]types.MoodNeighbor, error) {
	if limit <= 0 {
		return nil, nil
	}
	query := `
		SELECT e.character_id,
		       e.pleasure_score AS pleasure,
		       e.arousal_score AS arousal,
		       e.dominance_score AS dominance,
		       e.mood_vector <-> ref.mood_vector AS distance
		FROM emotions e, emotions ref
		WHERE ref.character_id = $1 AND e.character_id <> $1
		ORDER BY distance ASC
		LIMIT $2`

	var neighbors []types.MoodNeighbor
	if err := r.db.WithContext(ctx).
		Raw(query, characterID, limit).
		Scan(&neighbors).Error; err != nil {
		return nil, fmt.Errorf("failed to query similar moods: %w", err)
	}
	return neighbors, nil
}

// recordFromModel converts database model to domain struct.
func recordFromModel(model emotionModel) types.EmotionRecord {
	return types.EmotionRecord{
		CharacterID: model.CharacterID,
		Vector: affect.Clamp(
			model.PleasureScore,
			model.ArousalScore,
			model.DominanceScore,
		),
		CompositeScore: model.CompositeScore,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func modelFromRecord(record types.EmotionRecord) emotionModel {
	return emotionModel{
		CharacterID:    record.CharacterID,
		PleasureScore:  record.Vector.Pleasure,
		ArousalScore:   record.Vector.Arousal,
		DominanceScore: record.Vector.Dominance,
		CompositeScore: int(record.Vector.CompositeScore()),
		MoodVector:     moodVector(record.Vector),
	}
}

func moodVector(v affect.Vector) pgvector.Vector {
	return pgvector.NewVector([]float32{
		float32(v.Pleasure),
		float32(v.Arousal),
		float32(v.Dominance),
	})
}
