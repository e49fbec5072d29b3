package repository

import (
	"context"
	"time"

	"coachpro-coaching/internal/domain/model"
)

// -----------------------------
// Learning Progress
// -----------------------------

type ProgressRepository interface {
	Save(ctx context.Context, qx any, entry *model.ProgressEntry) error
	// AverageSince returns the mean progress percentage over entries
	// created at or after `since`. ok is false when no entries exist.
	AverageSince(ctx context.Context, qx any, studentID int64, since time.Time) (avg float64, ok bool, err error)
	FindByStudent(ctx context.Context, qx any, studentID int64, limit int) ([]*model.ProgressEntry, error)
}
