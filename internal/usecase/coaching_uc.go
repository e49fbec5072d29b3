// File: internal/usecase/coaching_uc.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"coachpro-coaching/internal/domain"
	"coachpro-coaching/internal/domain/model"
	"coachpro-coaching/internal/domain/ports/adapter"
	"coachpro-coaching/internal/domain/ports/repository"
	"coachpro-coaching/internal/infra/metrics"
)

// Compile-time check
var _ CoachingUseCase = (*coachingUC)(nil)

type CoachingUseCase interface {
	// StartSession creates a session and emits the coach's welcome
	// message. Unknown session types fall back to the general type.
	StartSession(ctx context.Context, studentID, coachID int64, sessionType string) (*model.CoachingSession, error)
	// ProcessMessage runs one full exchange: persist the student
	// message, derive context, obtain a reply (completion or fallback),
	// persist the reply, update metrics, and trigger recommendations.
	ProcessMessage(ctx context.Context, sessionID, studentMessage string) (reply string, err error)
	EndSession(ctx context.Context, sessionID string) error
	ListSessions(ctx context.Context, studentID int64, limit int) ([]*model.CoachingSession, error)
}

// Welcome texts per session type; the general text embeds the coach name.
var welcomeByType = map[model.SessionType]string{
	model.SessionGoalSetting:      "Welcome! I'm here to help you set and achieve your goals. Let's start by discussing what matters most to you right now.",
	model.SessionProgressReview:   "Great to see you again! Let's review your progress and celebrate what you've accomplished. How have things been going?",
	model.SessionChallengeSupport: "I'm here to support you through any challenges you're facing. What's been on your mind lately?",
}

func welcomeMessage(sessionType model.SessionType, coachName string) string {
	if text, ok := welcomeByType[sessionType]; ok {
		return text
	}
	return fmt.Sprintf("Hello! I'm %s. I'm here to help you on your coaching journey. How are you feeling today, and what would you like to work on?", coachName)
}

const progressWindow = 30 * 24 * time.Hour

type coachingUC struct {
	sessions repository.SessionRepository
	cache    repository.ConversationCache
	progress repository.ProgressRepository
	coaches  adapter.CoachMetaProvider
	ai       adapter.CompletionAdapter // nil when no credential is configured
	recs     RecommendationUseCase
	provider string
	modelTag string
	log      *zerolog.Logger
}

func NewCoachingUseCase(
	sessions repository.SessionRepository,
	cache repository.ConversationCache,
	progress repository.ProgressRepository,
	coaches adapter.CoachMetaProvider,
	ai adapter.CompletionAdapter,
	recs RecommendationUseCase,
	provider, modelTag string,
	logger *zerolog.Logger,
) *coachingUC {
	l := logger.With().Str("component", "CoachingUC").Logger()
	return &coachingUC{
		sessions: sessions,
		cache:    cache,
		progress: progress,
		coaches:  coaches,
		ai:       ai,
		recs:     recs,
		provider: provider,
		modelTag: modelTag,
		log:      &l,
	}
}

func (u *coachingUC) StartSession(ctx context.Context, studentID, coachID int64, sessionType string) (*model.CoachingSession, error) {
	if studentID <= 0 || coachID <= 0 {
		return nil, domain.ErrInvalidArgument
	}
	st := model.NormalizeSessionType(sessionType)

	s := model.NewCoachingSession(uuid.NewString(), studentID, coachID, st)
	if err := u.sessions.Save(ctx, nil, s); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	coach := u.resolveCoach(ctx, coachID)
	welcome := welcomeMessage(st, coach.Name)
	msg := s.AddMessage(model.SenderAI, welcome)
	if err := u.sessions.SaveMessage(ctx, nil, msg); err != nil {
		return nil, fmt.Errorf("save welcome message: %w", err)
	}
	if err := u.cache.Append(ctx, s.ID, model.SenderAI, welcome); err != nil {
		u.log.Warn().Err(err).Str("session_id", s.ID).Msg("cache append failed")
	}

	metrics.IncSessionStarted(string(st))
	u.log.Info().Str("session_id", s.ID).Int64("student_id", studentID).Str("type", string(st)).Msg("session started")
	return s, nil
}

func (u *coachingUC) ProcessMessage(ctx context.Context, sessionID, studentMessage string) (string, error) {
	s, err := u.sessions.FindByID(ctx, nil, sessionID)
	if err != nil {
		return "", err
	}
	if s.Status != model.SessionActive {
		return "", domain.ErrSessionClosed
	}
	studentMessage = strings.TrimSpace(studentMessage)
	if studentMessage == "" {
		return "", domain.ErrInvalidArgument
	}

	// Persist the inbound message. This write is critical: failure fails
	// the whole call.
	msg := s.AddMessage(model.SenderStudent, studentMessage)
	if err := u.sessions.SaveMessage(ctx, nil, msg); err != nil {
		return "", fmt.Errorf("save student message: %w", err)
	}
	if err := u.cache.Append(ctx, s.ID, model.SenderStudent, studentMessage); err != nil {
		u.log.Warn().Err(err).Str("session_id", s.ID).Msg("cache append failed")
	}

	cctx, err := u.cache.Context(ctx, s.ID)
	if err != nil {
		u.log.Warn().Err(err).Str("session_id", s.ID).Msg("context derivation failed; using empty context")
		cctx = repository.ConversationContext{}
	}

	reply := u.generateReply(ctx, s, studentMessage, cctx)

	// Persist the reply. Also critical.
	aiMsg := s.AddMessage(model.SenderAI, reply)
	if err := u.sessions.SaveMessage(ctx, nil, aiMsg); err != nil {
		return "", fmt.Errorf("save reply message: %w", err)
	}
	if err := u.cache.Append(ctx, s.ID, model.SenderAI, reply); err != nil {
		u.log.Warn().Err(err).Str("session_id", s.ID).Msg("cache append failed")
	}

	s.RecomputeDuration(time.Now())
	if err := u.sessions.UpdateDuration(ctx, nil, s.ID, s.DurationMinutes); err != nil {
		u.log.Warn().Err(err).Str("session_id", s.ID).Msg("duration update failed")
	}

	// Recommendation generation must never fail the exchange.
	if err := u.recs.Generate(ctx, s.ID, studentMessage); err != nil {
		u.log.Warn().Err(err).Str("session_id", s.ID).Msg("recommendation generation failed")
	}

	return reply, nil
}

// generateReply obtains the reply text via the completion provider when
// one is configured, falling back to the deterministic responder.
func (u *coachingUC) generateReply(ctx context.Context, s *model.CoachingSession, studentMessage string, cctx repository.ConversationContext) string {
	if u.ai == nil {
		metrics.IncFallback("no_credential")
		metrics.IncMessageProcessed("fallback")
		return FallbackReply(studentMessage)
	}

	since := time.Now().Add(-progressWindow)
	avg, ok, err := u.progress.AverageSince(ctx, nil, s.StudentID, since)
	if err != nil {
		u.log.Warn().Err(err).Int64("student_id", s.StudentID).Msg("progress lookup failed")
		ok = false
	}
	coach := u.resolveCoach(ctx, s.CoachID)

	spec := BuildPrompt(s, coach, studentMessage, cctx, FormatProgress(avg, ok), u.modelTag)
	if n := CountPromptTokens(spec); n > 0 {
		metrics.AddPromptTokens(u.provider, spec.Model, n)
	}

	start := time.Now()
	reply, err := u.ai.Complete(ctx, spec)
	latency := int(time.Since(start).Milliseconds())
	if err != nil {
		metrics.ObserveCompletion(u.provider, spec.Model, latency, false)
		if !errors.Is(err, domain.ErrUnavailable) {
			u.log.Error().Err(err).Str("session_id", s.ID).Msg("completion failed with unexpected error")
		}
		metrics.IncFallback("unavailable")
		metrics.IncMessageProcessed("fallback")
		return FallbackReply(studentMessage)
	}
	metrics.ObserveCompletion(u.provider, spec.Model, latency, true)
	metrics.IncMessageProcessed("completion")
	return reply
}

func (u *coachingUC) resolveCoach(ctx context.Context, coachID int64) model.CoachMeta {
	coach, err := u.coaches.CoachMeta(ctx, coachID)
	if err != nil {
		u.log.Warn().Err(err).Int64("coach_id", coachID).Msg("coach lookup failed; using defaults")
		coach = model.CoachMeta{ID: coachID, Name: "your coach"}
	}
	return coach.WithDefaults()
}

func (u *coachingUC) EndSession(ctx context.Context, sessionID string) error {
	s, err := u.sessions.FindByID(ctx, nil, sessionID)
	if err != nil {
		return err
	}
	return u.sessions.UpdateStatus(ctx, nil, s.ID, model.SessionClosed)
}

func (u *coachingUC) ListSessions(ctx context.Context, studentID int64, limit int) ([]*model.CoachingSession, error) {
	if limit <= 0 {
		limit = 20
	}
	return u.sessions.FindAllByStudent(ctx, nil, studentID, limit)
}
