// File: internal/usecase/progress_uc.go
package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"coachpro-coaching/internal/domain"
	"coachpro-coaching/internal/domain/model"
	"coachpro-coaching/internal/domain/ports/repository"
)

// Compile-time check
var _ ProgressUseCase = (*progressUC)(nil)

type ProgressUseCase interface {
	// Record stores one learning-activity progress entry.
	Record(ctx context.Context, entry *model.ProgressEntry) error
	History(ctx context.Context, studentID int64, limit int) ([]*model.ProgressEntry, error)
}

type progressUC struct {
	progress repository.ProgressRepository
	log      *zerolog.Logger
}

func NewProgressUseCase(progress repository.ProgressRepository, logger *zerolog.Logger) *progressUC {
	l := logger.With().Str("component", "ProgressUC").Logger()
	return &progressUC{progress: progress, log: &l}
}

func (u *progressUC) Record(ctx context.Context, entry *model.ProgressEntry) error {
	if entry == nil || entry.StudentID <= 0 {
		return domain.ErrInvalidArgument
	}
	if entry.Percentage < 0 || entry.Percentage > 100 {
		return domain.ErrInvalidArgument
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.ActivityType == "" {
		entry.ActivityType = "lesson"
	}
	return u.progress.Save(ctx, nil, entry)
}

func (u *progressUC) History(ctx context.Context, studentID int64, limit int) ([]*model.ProgressEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return u.progress.FindByStudent(ctx, nil, studentID, limit)
}
