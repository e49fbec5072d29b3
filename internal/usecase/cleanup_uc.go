// File: internal/usecase/cleanup_uc.go
package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"coachpro-coaching/internal/domain/ports/repository"
	"coachpro-coaching/internal/infra/metrics"
)

// Compile-time check
var _ CleanupUseCase = (*cleanupUC)(nil)

type CleanupUseCase interface {
	// Run removes sessions past the session retention window and
	// recommendations past the recommendation retention window.
	// Idempotent; it only touches rows already past retention, so it is
	// safe to run while sessions are active.
	Run(ctx context.Context) (sessionsDeleted, recsDeleted int64, err error)
}

type cleanupUC struct {
	sessions    repository.SessionRepository
	recs        repository.RecommendationRepository
	sessionDays int
	recDays     int
	log         *zerolog.Logger
}

func NewCleanupUseCase(sessions repository.SessionRepository, recs repository.RecommendationRepository, sessionDays, recDays int, logger *zerolog.Logger) *cleanupUC {
	l := logger.With().Str("component", "CleanupUC").Logger()
	if sessionDays <= 0 {
		sessionDays = 30
	}
	if recDays <= 0 {
		recDays = 60
	}
	return &cleanupUC{sessions: sessions, recs: recs, sessionDays: sessionDays, recDays: recDays, log: &l}
}

func (u *cleanupUC) Run(ctx context.Context) (int64, int64, error) {
	now := time.Now()

	sessionsDeleted, err := u.sessions.DeleteStartedBefore(ctx, now.AddDate(0, 0, -u.sessionDays))
	if err != nil {
		return 0, 0, err
	}
	metrics.AddCleanupDeleted("session", sessionsDeleted)

	recsDeleted, err := u.recs.DeleteCreatedBefore(ctx, now.AddDate(0, 0, -u.recDays))
	if err != nil {
		return sessionsDeleted, 0, err
	}
	metrics.AddCleanupDeleted("recommendation", recsDeleted)

	if sessionsDeleted > 0 || recsDeleted > 0 {
		u.log.Info().Int64("sessions", sessionsDeleted).Int64("recommendations", recsDeleted).Msg("retention cleanup done")
	}
	return sessionsDeleted, recsDeleted, nil
}
