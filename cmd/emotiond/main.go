// Package main runs the scheduled emotion update daemon.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MemoryHub/soluna/internal/config"
	"github.com/MemoryHub/soluna/internal/emotion"
	"github.com/MemoryHub/soluna/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutting down...")
		cancel()
	}()

	store, err := repository.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close()

	updater := emotion.NewUpdater(store.Emotions, store.Dedup, store.LifePaths, nil, cfg.WorkerCount)

	log.Printf("emotiond started, update interval %s", cfg.UpdateInterval)
	ticker := time.NewTicker(cfg.UpdateInterval)
	defer ticker.Stop()

	runOnce(ctx, updater, cfg.RunTimeout)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce(ctx, updater, cfg.RunTimeout)
		}
	}
}

// runOnce executes one bulk update with a per-run deadline. A timed-out run
// still reports characters that committed before the deadline.
func runOnce(ctx context.Context, updater *emotion.Updater, timeout time.Duration) {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := updater.UpdateFromRecentEvents(runCtx, time.Now())
	if err != nil {
		log.Printf("bulk update failed: %v", err)
		return
	}
	log.Printf(
		"bulk update: total_events=%d skipped=%d applied=%d characters=%d updated=%d failed=%d marked=%d",
		result.TotalEvents,
		result.SkippedDuplicates,
		result.UnprocessedApplied,
		result.AffectedCharacters,
		result.Updated,
		result.Failed,
		result.MarkedEvents,
	)
}
