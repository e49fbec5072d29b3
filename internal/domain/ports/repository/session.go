package repository

import (
	"context"
	"time"

	"coachpro-coaching/internal/domain/model"
)

// -----------------------------
// Coaching Sessions
// -----------------------------

type SessionRepository interface {
	Save(ctx context.Context, qx any, session *model.CoachingSession) error
	// SaveMessage appends one message to the session's persistent log.
	SaveMessage(ctx context.Context, qx any, message *model.Message) error
	FindByID(ctx context.Context, qx any, id string) (*model.CoachingSession, error)
	FindAllByStudent(ctx context.Context, qx any, studentID int64, limit int) ([]*model.CoachingSession, error)
	UpdateStatus(ctx context.Context, qx any, sessionID string, status model.SessionStatus) error
	UpdateDuration(ctx context.Context, qx any, sessionID string, minutes int) error
	// DeleteStartedBefore removes whole sessions (messages included)
	// older than the cutoff. Used by retention cleanup only.
	DeleteStartedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
