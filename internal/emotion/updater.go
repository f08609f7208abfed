package emotion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MemoryHub/soluna/internal/affect"
	"github.com/MemoryHub/soluna/internal/repository"
	"github.com/MemoryHub/soluna/internal/types"
)

// DedupLedger defines the idempotency ledger behavior the bulk flow needs.
type DedupLedger interface {
	BatchCheck(ctx context.Context, keys []types.EventKey) (map[types.EventKey]bool, error)
	BatchMark(ctx context.Context, records []types.DedupRecord) (int, error)
	CleanupExpired(ctx context.Context) (int, error)
}

// EventSource supplies pending life events; it is an external collaborator.
type EventSource interface {
	EventsInWindow(ctx context.Context, start, end time.Time) ([]types.PendingEvent, error)
}

// BulkResult reports one recent-window update run. Characters fail
// independently; a partial run still reports everything that committed.
type BulkResult struct {
	TotalEvents        int             `json:"total_events"`
	SkippedDuplicates  int             `json:"skipped_duplicates"`
	UnprocessedApplied int             `json:"unprocessed_applied"`
	AffectedCharacters int             `json:"affected_characters"`
	Updated            int             `json:"updated"`
	Failed             int             `json:"failed"`
	MarkedEvents       int             `json:"marked_events"`
	PerCharacter       map[string]bool `json:"per_character"`
	Message            string          `json:"message"`
}

const (
	// initAxisSpan bounds each randomized initial axis to [-50, 50].
	initAxisSpan = 50

	defaultWorkers = 4

	// bulkChunkSize is how many characters share one batch statement.
	bulkChunkSize = 100
)

// Updater applies life-event impacts to stored affect vectors. All write
// paths serialize per character through a keyed mutex; cross-character work
// is unrestricted.
type Updater struct {
	records RecordRepo
	ledger  DedupLedger
	events  EventSource
	locks   *keyedMutex
	workers int

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewUpdater returns an Updater. The random source seeds initial vectors and
// is injected so initialization is reproducible in tests; pass nil for a
// time-seeded default. workers bounds bulk-flow concurrency.
func NewUpdater(records RecordRepo, ledger DedupLedger, events EventSource, rng *rand.Rand, workers int) *Updater {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Updater{
		records: records,
		ledger:  ledger,
		events:  events,
		locks:   newKeyedMutex(),
		workers: workers,
		rng:     rng,
	}
}

// InitializeCharacter creates an affect record with each axis randomized in
// [-50, 50]. It reports whether a record was created; an existing record is
// a successful no-op.
func (u *Updater) InitializeCharacter(ctx context.Context, characterID string) (bool, error) {
	u.locks.Lock(characterID)
	defer u.locks.Unlock(characterID)

	_, err := u.records.Get(ctx, characterID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("failed to check emotion record: %w", err)
	}

	record := types.EmotionRecord{
		CharacterID: characterID,
		Vector:      u.randomVector(),
	}
	if err := u.records.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("failed to initialize character emotion: %w", err)
	}
	return true, nil
}

// InitializeCharacters initializes many characters in one round trip pair
// (batch read, batch insert). The result maps every requested character to
// whether it now has a record.
func (u *Updater) InitializeCharacters(ctx context.Context, characterIDs []string) (map[string]bool, error) {
	results := make(map[string]bool, len(characterIDs))
	if len(characterIDs) == 0 {
		return results, nil
	}

	unlock := u.locks.LockAll(characterIDs)
	defer unlock()

	existing, err := u.records.GetBatch(ctx, characterIDs)
	if err != nil {
		for _, id := range characterIDs {
			results[id] = false
		}
		return results, fmt.Errorf("failed to check existing emotion records: %w", err)
	}

	var missing []types.EmotionRecord
	for _, id := range characterIDs {
		if _, ok := existing[id]; ok {
			results[id] = true
			continue
		}
		missing = append(missing, types.EmotionRecord{
			CharacterID: id,
			Vector:      u.randomVector(),
		})
	}
	if len(missing) == 0 {
		return results, nil
	}

	for id, upsertErr := range u.records.BatchUpsert(ctx, missing) {
		results[id] = upsertErr == nil
	}
	return results, nil
}

// UpdateFromEvent applies one caller-attributed delta to a character. The
// delta is clamped against the stored vector, never rejected. There is no
// deduplication on this path; the caller is trusted to invoke it once per
// logical action.
func (u *Updater) UpdateFromEvent(ctx context.Context, characterID string, pleasure, arousal, dominance int) error {
	u.locks.Lock(characterID)
	defer u.locks.Unlock(characterID)
	return u.applyDelta(ctx, characterID, pleasure, arousal, dominance)
}

func (u *Updater) applyDelta(ctx context.Context, characterID string, pleasure, arousal, dominance int) error {
	current, err := u.records.Get(ctx, characterID)
	if errors.Is(err, repository.ErrNotFound) {
		// Zero baseline synthesized from the impact alone; no stale
		// read-modify-write against an absent record.
		record := types.EmotionRecord{
			CharacterID: characterID,
			Vector:      affect.Clamp(pleasure, arousal, dominance),
		}
		err = u.records.Create(ctx, record)
		if errors.Is(err, repository.ErrAlreadyExists) {
			// Lost a cross-process race; re-read and update instead.
			return u.applyDelta(ctx, characterID, pleasure, arousal, dominance)
		}
		if err != nil {
			return fmt.Errorf("failed to create emotion record: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get emotion record: %w", err)
	}

	next := current.Vector.Add(pleasure, arousal, dominance)
	if err := u.records.UpdateAbsolute(ctx, characterID, next); err != nil {
		return fmt.Errorf("failed to update emotion record: %w", err)
	}
	return nil
}

// UpdateFromRecentEvents applies all unprocessed life events from the last
// 30 minutes. Each character's outcome is independent; a failure never
// aborts the rest of the run.
func (u *Updater) UpdateFromRecentEvents(ctx context.Context, now time.Time) (BulkResult, error) {
	windowStart := now.Add(-types.DedupWindow)
	events, err := u.events.EventsInWindow(ctx, windowStart, now)
	if err != nil {
		return BulkResult{}, fmt.Errorf("failed to fetch life events in window: %w", err)
	}

	result := BulkResult{
		TotalEvents:  len(events),
		PerCharacter: make(map[string]bool),
	}
	if len(events) == 0 {
		result.Message = "no life events in window"
		return result, nil
	}

	unprocessed := u.filterUnprocessed(ctx, events)
	result.SkippedDuplicates = len(events) - len(unprocessed)
	if len(unprocessed) == 0 {
		result.Message = "all events already processed, skipping update"
		return result, nil
	}
	result.UnprocessedApplied = len(unprocessed)

	grouped := groupByCharacter(unprocessed)
	result.AffectedCharacters = len(grouped)

	// Net each character's impacts first, then clamp the sum once to the
	// +-80 window cap. Clamping per event instead would change the result.
	impacts := make(map[string][3]int, len(grouped))
	marks := make([]types.DedupRecord, 0, len(unprocessed))
	for characterID, characterEvents := range grouped {
		var p, a, d int
		for _, event := range characterEvents {
			dp, da, dd := event.PADImpact()
			p += dp
			a += da
			d += dd
			marks = append(marks, types.DedupRecord{
				CharacterID: event.CharacterID,
				EventID:     event.EventID,
				EventType:   event.EventType,
			})
		}
		p, a, d = affect.ClampDelta(p, a, d)
		impacts[characterID] = [3]int{p, a, d}
	}

	characterIDs := make([]string, 0, len(impacts))
	for id := range impacts {
		characterIDs = append(characterIDs, id)
	}
	sort.Strings(characterIDs)

	var resultMu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for start := 0; start < len(characterIDs); start += bulkChunkSize {
		end := start + bulkChunkSize
		if end > len(characterIDs) {
			end = len(characterIDs)
		}
		chunk := characterIDs[start:end]
		g.Go(func() error {
			outcomes := u.applyChunk(gctx, chunk, impacts)
			resultMu.Lock()
			for id, ok := range outcomes {
				result.PerCharacter[id] = ok
			}
			resultMu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	for _, ok := range result.PerCharacter {
		if ok {
			result.Updated++
		} else {
			result.Failed++
		}
	}

	// Mark every consumed event, zero-net ones included, so they are never
	// reconsidered inside the window.
	marked, err := u.ledger.BatchMark(ctx, marks)
	if err != nil {
		log.Printf("emotion bulk update: failed to mark processed events: %v", err)
	}
	result.MarkedEvents = marked

	if removed, err := u.ledger.CleanupExpired(ctx); err != nil {
		log.Printf("emotion bulk update: failed to cleanup expired dedup records: %v", err)
	} else if removed > 0 {
		log.Printf("emotion bulk update: removed %d expired dedup records", removed)
	}

	result.Message = fmt.Sprintf("updated %d characters from %d new events", result.Updated, result.UnprocessedApplied)
	return result, nil
}

// applyChunk updates one chunk of characters under their locks and reports
// per-character success.
func (u *Updater) applyChunk(ctx context.Context, chunk []string, impacts map[string][3]int) map[string]bool {
	outcomes := make(map[string]bool, len(chunk))

	unlock := u.locks.LockAll(chunk)
	defer unlock()

	current, err := u.records.GetBatch(ctx, chunk)
	if err != nil {
		log.Printf("emotion bulk update: failed to read current vectors: %v", err)
		for _, id := range chunk {
			outcomes[id] = false
		}
		return outcomes
	}

	targets := make([]types.EmotionRecord, 0, len(chunk))
	for _, id := range chunk {
		impact := impacts[id]
		var next affect.Vector
		if record, ok := current[id]; ok {
			next = record.Vector.Add(impact[0], impact[1], impact[2])
		} else {
			next = affect.Clamp(impact[0], impact[1], impact[2])
		}
		targets = append(targets, types.EmotionRecord{CharacterID: id, Vector: next})
	}

	for id, upsertErr := range u.records.BatchUpsert(ctx, targets) {
		if upsertErr != nil {
			log.Printf("emotion bulk update: character %s failed: %v", id, upsertErr)
		}
		outcomes[id] = upsertErr == nil
	}
	return outcomes
}

// filterUnprocessed drops events already marked in the ledger, plus
// duplicate (character, event) keys within the batch itself so one window
// fetch can never double-apply a pair. A ledger failure fails open:
// processing anyway is bounded by clamping, while failing closed would
// silently drop legitimate emotional updates.
func (u *Updater) filterUnprocessed(ctx context.Context, events []types.PendingEvent) []types.PendingEvent {
	keys := make([]types.EventKey, 0, len(events))
	for _, event := range events {
		keys = append(keys, event.Key())
	}

	processed, err := u.ledger.BatchCheck(ctx, keys)
	if err != nil {
		log.Printf("emotion bulk update: dedup check failed, processing all %d events: %v", len(events), err)
		processed = map[types.EventKey]bool{}
	}

	seen := make(map[types.EventKey]bool, len(events))
	unprocessed := make([]types.PendingEvent, 0, len(events))
	for _, event := range events {
		key := event.Key()
		if processed[key] || seen[key] {
			continue
		}
		seen[key] = true
		unprocessed = append(unprocessed, event)
	}
	return unprocessed
}

func (u *Updater) randomVector() affect.Vector {
	u.rngMu.Lock()
	defer u.rngMu.Unlock()
	return affect.Vector{
		Pleasure:  u.rng.Intn(2*initAxisSpan+1) - initAxisSpan,
		Arousal:   u.rng.Intn(2*initAxisSpan+1) - initAxisSpan,
		Dominance: u.rng.Intn(2*initAxisSpan+1) - initAxisSpan,
	}
}

func groupByCharacter(events []types.PendingEvent) map[string][]types.PendingEvent {
	grouped := make(map[string][]types.PendingEvent)
	for _, event := range events {
		if event.CharacterID == "" {
			continue
		}
		grouped[event.CharacterID] = append(grouped[event.CharacterID], event)
	}
	return grouped
}
