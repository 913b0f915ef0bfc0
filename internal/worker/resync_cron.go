package worker

// resync_cron.go
// Background goroutine that enqueues a periodic sales-summary rebuild as a
// safety net: if a triggered sync was lost (Redis restart, crashed worker),
// the next tick repairs the summary table.

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const resyncTickInterval = 15 * time.Minute

// StartResyncCron launches a background goroutine that enqueues a summary
// sync on every tick. It respects the context for graceful shutdown.
func StartResyncCron(ctx context.Context, dispatcher *Dispatcher) {
	go func() {
		ticker := time.NewTicker(resyncTickInterval)
		defer ticker.Stop()

		log.Info().Msg("resync_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("resync_cron: shutting down")
				return
			case <-ticker.C:
				payload := SummarySyncPayload{Trigger: "cron"}
				if err := dispatcher.EnqueueSummarySync(ctx, payload); err != nil {
					log.Error().Err(err).Msg("resync_cron: failed to enqueue summary sync")
				}
			}
		}
	}()
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			// 1s, 2s … (exponential backoff)
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
