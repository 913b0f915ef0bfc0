package worker

// summary_worker.go
// Processes sales-summary rebuild jobs from QueueSummarySync. The rebuild is
// idempotent, so retrying a failed job can never double-count a sale.

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxSummaryRetries = 3

// SummarySyncPayload carries optional context about what triggered the sync.
type SummarySyncPayload struct {
	Trigger string `json:"trigger,omitempty"` // "cell_edit", "import", "bulk", "cron"
}

// SummaryRebuilder is the slice of the summary service the worker needs.
type SummaryRebuilder interface {
	Rebuild(ctx context.Context) (int, error)
}

type SummaryWorker struct {
	summaries SummaryRebuilder
	rdb       *redis.Client
}

func NewSummaryWorker(summaries SummaryRebuilder, rdb *redis.Client) *SummaryWorker {
	return &SummaryWorker{summaries: summaries, rdb: rdb}
}

// Process rebuilds the summary with exponential backoff; after the last
// failed attempt the job moves to the DLQ for manual inspection.
func (w *SummaryWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload SummarySyncPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("summary_worker: invalid payload")
		return
	}

	err := withRetry(ctx, maxSummaryRetries, func(attempt int) error {
		added, err := w.summaries.Rebuild(ctx)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt+1).Msg("summary_worker: rebuild failed, retrying")
			return err
		}
		log.Info().Int("added", added).Str("trigger", payload.Trigger).Msg("summary_worker: rebuild done")
		return nil
	})
	if err != nil {
		SendToDLQ(ctx, w.rdb, QueueSummarySync, "summary_sync", raw, err.Error(), maxSummaryRetries)
	}
}
