package repository

import (
	"context"

	"coachpro-coaching/internal/domain/model"
)

// -----------------------------
// Coaching Profiles
// -----------------------------

type ProfileRepository interface {
	// Save inserts a new profile or updates an existing one.
	Save(ctx context.Context, qx any, p *model.Profile) error
	// Find returns ErrNotFound if no profile exists for the pair.
	Find(ctx context.Context, qx any, studentID, programID int64) (*model.Profile, error)
	FindAllByStudent(ctx context.Context, qx any, studentID int64) ([]*model.Profile, error)
	Delete(ctx context.Context, qx any, id string) error
}
