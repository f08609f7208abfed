// Package emotion turns stored PAD vectors into emotion results and applies
// life-event impacts to them.
package emotion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MemoryHub/soluna/internal/affect"
	"github.com/MemoryHub/soluna/internal/repository"
	"github.com/MemoryHub/soluna/internal/types"
)

// RecordRepo defines the persistence behavior the engine needs for affect
// records.
type RecordRepo interface {
	Get(ctx context.Context, characterID string) (*types.EmotionRecord, error)
	GetBatch(ctx context.Context, characterIDs []string) (map[string]types.EmotionRecord, error)
	Create(ctx context.Context, record types.EmotionRecord) error
	UpdateAbsolute(ctx context.Context, characterID string, vector affect.Vector) error
	BatchUpsert(ctx context.Context, records []types.EmotionRecord) map[string]error
	SimilarMoods(ctx context.Context, characterID string, limit int) ([]types.MoodNeighbor, error)
}

// Result is a classified emotion for one character. It is derived on read
// and never persisted.
type Result struct {
	CharacterID string          `json:"character_id"`
	FormalLabel string          `json:"formal_label"`
	CasualLabel string          `json:"casual_label"`
	Glyph       string          `json:"glyph"`
	Color       string          `json:"color"`
	Description string          `json:"description"`
	Category    affect.Category `json:"category"`

	Vector         affect.Vector `json:"vector"`
	CompositeScore float64       `json:"composite_score"`
	Confidence     float64       `json:"confidence"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Service classifies stored affect vectors against the emotion catalog.
type Service struct {
	catalog *affect.Catalog
	records RecordRepo
}

// NewService returns a classification service. The catalog is injected so
// tests can substitute smaller ones; it is never mutated after this call.
func NewService(catalog *affect.Catalog, records RecordRepo) *Service {
	return &Service{catalog: catalog, records: records}
}

// GetEmotion returns the character's current emotion, or nil (no error) when
// the character has no affect record yet.
func (s *Service) GetEmotion(ctx context.Context, characterID string) (*Result, error) {
	record, err := s.records.Get(ctx, characterID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get emotion for character %s: %w", characterID, err)
	}
	result := s.classify(*record)
	return &result, nil
}

// GetEmotionsBatch returns the emotion for every requested character; a
// character without a record maps to nil.
func (s *Service) GetEmotionsBatch(ctx context.Context, characterIDs []string) (map[string]*Result, error) {
	records, err := s.records.GetBatch(ctx, characterIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get emotions batch: %w", err)
	}
	results := make(map[string]*Result, len(characterIDs))
	for _, id := range characterIDs {
		record, ok := records[id]
		if !ok {
			results[id] = nil
			continue
		}
		result := s.classify(record)
		results[id] = &result
	}
	return results, nil
}

// SimilarMoods returns up to limit characters whose stored vector is closest
// to the given character's.
func (s *Service) SimilarMoods(ctx context.Context, characterID string, limit int) ([]types.MoodNeighbor, error) {
	neighbors, err := s.records.SimilarMoods(ctx, characterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get similar moods: %w", err)
	}
	return neighbors, nil
}

func (s *Service) classify(record types.EmotionRecord) Result {
	def := s.catalog.FindMatch(record.Vector)
	return Result{
		CharacterID:    record.CharacterID,
		FormalLabel:    def.FormalLabel,
		CasualLabel:    def.CasualLabel,
		Glyph:          def.Glyph,
		Color:          def.Color,
		Description:    def.Description,
		Category:       def.Category,
		Vector:         record.Vector,
		CompositeScore: record.Vector.CompositeScore(),
		Confidence:     s.catalog.Confidence(record.Vector, def),
		UpdatedAt:      record.UpdatedAt,
	}
}
