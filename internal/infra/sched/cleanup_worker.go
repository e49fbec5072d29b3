package sched

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"coachpro-coaching/internal/usecase"
)

// CleanupWorker runs the retention cleanup on a fixed cadence (daily in
// production). It only touches rows already past retention, so it never
// contends with in-flight message processing.
type CleanupWorker struct {
	interval time.Duration
	cleanup  usecase.CleanupUseCase
	log      *zerolog.Logger
}

func NewCleanupWorker(interval time.Duration, cleanup usecase.CleanupUseCase, logger *zerolog.Logger) *CleanupWorker {
	l := logger.With().Str("component", "CleanupWorker").Logger()
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &CleanupWorker{interval: interval, cleanup: cleanup, log: &l}
}

func (w *CleanupWorker) Run(ctx context.Context) error {
	w.log.Info().Dur("interval", w.interval).Msg("Starting cleanup worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Stopping cleanup worker")
			return ctx.Err()
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			sessions, recs, err := w.cleanup.Run(runCtx)
			cancel()
			if err != nil {
				w.log.Error().Err(err).Msg("cleanup run failed")
				continue
			}
			if sessions > 0 || recs > 0 {
				w.log.Info().Int64("sessions", sessions).Int64("recommendations", recs).Msg("cleanup removed expired rows")
			}
		}
	}
}
