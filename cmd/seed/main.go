// Package main seeds demo characters and life-path events so emotiond has
// data to process during development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/MemoryHub/soluna/internal/config"
	"github.com/MemoryHub/soluna/internal/emotion"
	"github.com/MemoryHub/soluna/internal/repository"
	"github.com/MemoryHub/soluna/internal/types"
)

var eventTypes = []string{"work", "social", "hobby", "family", "health"}

func main() {
	characters := flag.Int("characters", 10, "number of characters to initialize")
	eventsPerCharacter := flag.Int("events", 3, "life events to insert per character")
	seed := flag.Int64("seed", 0, "random seed (0 uses the current time)")
	flag.Parse()

	cfg := config.Load()
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := repository.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close()

	updater := emotion.NewUpdater(store.Emotions, store.Dedup, store.LifePaths, rng, cfg.WorkerCount)

	characterIDs := make([]string, *characters)
	for i := range characterIDs {
		characterIDs[i] = fmt.Sprintf("char-%03d", i+1)
	}

	initialized, err := updater.InitializeCharacters(ctx, characterIDs)
	if err != nil {
		log.Fatalf("failed to initialize characters: %v", err)
	}
	ok := 0
	for _, success := range initialized {
		if success {
			ok++
		}
	}
	log.Printf("initialized %d/%d characters", ok, len(characterIDs))

	now := time.Now()
	var events []types.PendingEvent
	for _, characterID := range characterIDs {
		for i := 0; i < *eventsPerCharacter; i++ {
			events = append(events, types.PendingEvent{
				CharacterID: characterID,
				EventID:     uuid.NewString(),
				EventType:   eventTypes[rng.Intn(len(eventTypes))],
				OccurredAt:  now.Add(-time.Duration(rng.Intn(29)) * time.Minute),
				Impact: map[string]any{
					"pleasure":  rng.Intn(41) - 20,
					"arousal":   rng.Intn(41) - 20,
					"dominance": rng.Intn(41) - 20,
				},
			})
		}
	}
	if err := store.LifePaths.Insert(ctx, events); err != nil {
		log.Fatalf("failed to insert life events: %v", err)
	}
	log.Printf("inserted %d life events (seed %d)", len(events), *seed)
}
