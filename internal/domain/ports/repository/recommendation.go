package repository

import (
	"context"
	"time"

	"coachpro-coaching/internal/domain/model"
)

// -----------------------------
// Recommendations
// -----------------------------

type RecommendationRepository interface {
	Save(ctx context.Context, qx any, rec *model.Recommendation) error
	// FindPendingByStudent returns pending rows ordered by priority
	// descending, then created_at descending.
	FindPendingByStudent(ctx context.Context, qx any, studentID int64, limit int) ([]*model.Recommendation, error)
	UpdateStatus(ctx context.Context, qx any, id string, status model.RecommendationStatus) error
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
