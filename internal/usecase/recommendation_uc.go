// File: internal/usecase/recommendation_uc.go
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"coachpro-coaching/internal/domain/model"
	"coachpro-coaching/internal/domain/ports/repository"
	"coachpro-coaching/internal/infra/metrics"
)

// Compile-time check
var _ RecommendationUseCase = (*recommendationUC)(nil)

type RecommendationUseCase interface {
	// Generate scans a student message for trigger keywords and persists
	// one recommendation per matched trigger. Duplicates across messages
	// are expected; there is deliberately no suppression.
	Generate(ctx context.Context, sessionID, studentMessage string) error
	ListPending(ctx context.Context, studentID int64, limit int) ([]*model.Recommendation, error)
	UpdateStatus(ctx context.Context, id string, status model.RecommendationStatus) error
}

// One trigger rule: keyword -> canned recommendation.
type trigger struct {
	keyword  string
	recType  model.RecommendationType
	text     string
	priority int
}

// Trigger table is fixed; every match fires independently.
var triggers = []trigger{
	{"stress", model.RecommendationStressManagement, "Consider trying a short meditation or breathing exercise", model.PriorityMedium},
	{"goal", model.RecommendationGoalSetting, "Break down your goals into smaller, achievable steps", model.PriorityLow},
}

const defaultConfidence = 0.8

type recommendationUC struct {
	recs     repository.RecommendationRepository
	sessions repository.SessionRepository
	log      *zerolog.Logger
}

func NewRecommendationUseCase(recs repository.RecommendationRepository, sessions repository.SessionRepository, logger *zerolog.Logger) *recommendationUC {
	l := logger.With().Str("component", "RecommendationUC").Logger()
	return &recommendationUC{recs: recs, sessions: sessions, log: &l}
}

func (u *recommendationUC) Generate(ctx context.Context, sessionID, studentMessage string) error {
	s, err := u.sessions.FindByID(ctx, nil, sessionID)
	if err != nil {
		return err
	}

	lower := strings.ToLower(studentMessage)
	now := time.Now()
	for _, t := range triggers {
		if !strings.Contains(lower, t.keyword) {
			continue
		}
		rec := &model.Recommendation{
			ID:         ulid.Make().String(),
			StudentID:  s.StudentID,
			Type:       t.recType,
			Text:       t.text,
			Confidence: defaultConfidence,
			Priority:   t.priority,
			Status:     model.RecommendationPending,
			CreatedAt:  now,
		}
		if err := u.recs.Save(ctx, nil, rec); err != nil {
			return err
		}
		metrics.IncRecommendation(string(t.recType))
		u.log.Debug().Str("session_id", sessionID).Str("type", string(t.recType)).Msg("recommendation created")
	}
	return nil
}

func (u *recommendationUC) ListPending(ctx context.Context, studentID int64, limit int) ([]*model.Recommendation, error) {
	if limit <= 0 {
		limit = 10
	}
	return u.recs.FindPendingByStudent(ctx, nil, studentID, limit)
}

func (u *recommendationUC) UpdateStatus(ctx context.Context, id string, status model.RecommendationStatus) error {
	return u.recs.UpdateStatus(ctx, nil, id, status)
}
