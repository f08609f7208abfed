package types

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/MemoryHub/soluna/internal/affect"
)

// DedupWindow is how long an applied (character, event) pair stays marked as
// processed. After the window the pair may legitimately be reprocessed; this
// is the sole idempotency mechanism.
const DedupWindow = 30 * time.Minute

// EmotionRecord is the persisted affect state, one row per character.
type EmotionRecord struct {
	CharacterID    string        `json:"character_id"`
	Vector         affect.Vector `json:"vector"`
	CompositeScore int           `json:"composite_score"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// EventKey identifies a (character, event) pair in ledger lookups.
type EventKey struct {
	CharacterID string
	EventID     string
}

// DedupRecord marks one applied (character, event) pair.
type DedupRecord struct {
	CharacterID string    `json:"character_id"`
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	ProcessedAt time.Time `json:"processed_at"`
}

// PendingEvent is a life-path event awaiting emotional application. Impact
// carries the raw payload from the event source; only the three PAD delta
// fields are read from it.
type PendingEvent struct {
	CharacterID string         `json:"character_id"`
	EventID     string         `json:"event_id"`
	EventType   string         `json:"event_type"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Impact      map[string]any `json:"impact"`
}

// Key returns the event's ledger key.
func (e PendingEvent) Key() EventKey {
	return EventKey{CharacterID: e.CharacterID, EventID: e.EventID}
}

// PADImpact extracts the three named deltas from the raw impact payload.
// Missing or non-numeric values read as zero.
func (e PendingEvent) PADImpact() (pleasure, arousal, dominance int) {
	return impactValue(e.Impact, "pleasure"),
		impactValue(e.Impact, "arousal"),
		impactValue(e.Impact, "dominance")
}

// MoodNeighbor is one result of a mood-similarity lookup.
type MoodNeighbor struct {
	CharacterID string  `json:"character_id"`
	Pleasure    int     `json:"pleasure"`
	Arousal     int     `json:"arousal"`
	Dominance   int     `json:"dominance"`
	Distance    float64 `json:"distance"`
}

func impactValue(impact map[string]any, key string) int {
	raw, ok := impact[key]
	if !ok {
		return 0
	}
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return int(f)
		}
	}
	return 0
}
