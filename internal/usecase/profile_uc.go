// File: internal/usecase/profile_uc.go
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"coachpro-coaching/internal/domain"
	"coachpro-coaching/internal/domain/model"
	"coachpro-coaching/internal/domain/ports/repository"
)

// Compile-time check
var _ ProfileUseCase = (*profileUC)(nil)

type ProfileUseCase interface {
	// Initialize creates the default profile for a (student, program)
	// pair at enrollment time. Idempotent: if a profile already exists
	// it is returned unchanged.
	Initialize(ctx context.Context, programID, studentID int64) (*model.Profile, error)
	// RecordAssessment merges an assessment analysis into every profile
	// belonging to the student, across all programs.
	RecordAssessment(ctx context.Context, studentID int64, analysis *model.AssessmentAnalysis) error
	Find(ctx context.Context, studentID, programID int64) (*model.Profile, error)
}

type profileUC struct {
	profiles repository.ProfileRepository
	log      *zerolog.Logger
}

func NewProfileUseCase(profiles repository.ProfileRepository, logger *zerolog.Logger) *profileUC {
	l := logger.With().Str("component", "ProfileUC").Logger()
	return &profileUC{profiles: profiles, log: &l}
}

func (u *profileUC) Initialize(ctx context.Context, programID, studentID int64) (*model.Profile, error) {
	if existing, err := u.profiles.Find(ctx, nil, studentID, programID); err == nil {
		return existing, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	p, err := model.NewProfile("", studentID, programID)
	if err != nil {
		return nil, err
	}
	if err := u.profiles.Save(ctx, nil, p); err != nil {
		return nil, err
	}
	u.log.Info().Int64("student_id", studentID).Int64("program_id", programID).Msg("profile initialized")
	return p, nil
}

func (u *profileUC) RecordAssessment(ctx context.Context, studentID int64, analysis *model.AssessmentAnalysis) error {
	if analysis == nil {
		return domain.ErrInvalidArgument
	}
	profiles, err := u.profiles.FindAllByStudent(ctx, nil, studentID)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, p := range profiles {
		p.ApplyAssessment(analysis, now)
		if err := u.profiles.Save(ctx, nil, p); err != nil {
			return err
		}
	}
	u.log.Debug().Int64("student_id", studentID).Int("profiles", len(profiles)).Msg("assessment recorded")
	return nil
}

func (u *profileUC) Find(ctx context.Context, studentID, programID int64) (*model.Profile, error) {
	return u.profiles.Find(ctx, nil, studentID, programID)
}
