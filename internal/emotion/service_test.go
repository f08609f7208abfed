package emotion

import (
	"context"
	"testing"

	"github.com/MemoryHub/soluna/internal/affect"
	"github.com/MemoryHub/soluna/internal/types"
)

func TestGetEmotionClassifiesStoredVector(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.records["c1"] = types.EmotionRecord{
		CharacterID: "c1",
		Vector:      affect.Vector{Pleasure: 70, Arousal: 60, Dominance: 50},
	}
	service := NewService(affect.DefaultCatalog(), repo)

	result, err := service.GetEmotion(context.Background(), "c1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Category != affect.CategoryElation {
		t.Fatalf("expected Elation category, got %s (%s)", result.Category, result.FormalLabel)
	}
	if result.Confidence < 0.3 || result.Confidence > 1.0 {
		t.Fatalf("expected confidence in [0.3, 1.0], got %v", result.Confidence)
	}
	if result.CompositeScore != 61.5 {
		t.Fatalf("expected composite score 61.5, got %v", result.CompositeScore)
	}
}

func TestGetEmotionLowPleasure(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.records["c1"] = types.EmotionRecord{
		CharacterID: "c1",
		Vector:      affect.Vector{Pleasure: -50, Arousal: -30, Dominance: -40},
	}
	service := NewService(affect.DefaultCatalog(), repo)

	result, err := service.GetEmotion(context.Background(), "c1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result == nil || result.Category != affect.CategoryAnxiety {
		t.Fatalf("expected Anxiety category, got %#v", result)
	}
}

func TestGetEmotionAbsentCharacter(t *testing.T) {
	service := NewService(affect.DefaultCatalog(), newFakeRecordRepo())

	result, err := service.GetEmotion(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("expected absence to not be an error, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result for absent character, got %#v", result)
	}
}

func TestGetEmotionsBatchMixed(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.records["c1"] = types.EmotionRecord{
		CharacterID: "c1",
		Vector:      affect.Vector{Pleasure: 30, Arousal: 10, Dominance: 20},
	}
	service := NewService(affect.DefaultCatalog(), repo)

	results, err := service.GetEmotionsBatch(context.Background(), []string{"c1", "c2"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected an entry per requested character, got %#v", results)
	}
	if results["c1"] == nil || results["c1"].FormalLabel == "" {
		t.Fatalf("expected classified result for c1, got %#v", results["c1"])
	}
	if results["c2"] != nil {
		t.Fatalf("expected nil for absent c2, got %#v", results["c2"])
	}
}

func TestSimilarMoodsPassesThrough(t *testing.T) {
	repo := newFakeRecordRepo()
	repo.neighbors = []types.MoodNeighbor{{CharacterID: "c2", Distance: 4.2}}
	service := NewService(affect.DefaultCatalog(), repo)

	neighbors, err := service.SimilarMoods(context.Background(), "c1", 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(neighbors) != 1 || neighbors[0].CharacterID != "c2" {
		t.Fatalf("unexpected neighbors: %#v", neighbors)
	}
}
