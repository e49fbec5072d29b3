// File: internal/infra/db/postgres/postgres_profile_repo.go
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"coachpro-coaching/internal/domain"
	"coachpro-coaching/internal/domain/model"
	"coachpro-coaching/internal/domain/ports/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo persists coaching profiles. The flexible per-student state
// (goals, strengths, history) goes into a JSONB column; the identifying
// pair is kept relational with a unique constraint enforcing the
// one-profile-per-pair invariant.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// profileData is the JSONB payload of a profile row.
type profileData struct {
	LearningStyle       string                   `json:"learning_style"`
	PersonalityType     string                   `json:"personality_type"`
	CommunicationStyle  string                   `json:"preferred_communication_style"`
	Goals               []string                 `json:"goals"`
	Strengths           []string                 `json:"strengths"`
	AreasForImprovement []string                 `json:"areas_for_improvement"`
	ProgressHistory     []model.ProgressSnapshot `json:"progress_history"`
	LastAssessment      *time.Time               `json:"last_assessment,omitempty"`
}

func (r *ProfileRepo) Save(ctx context.Context, qx any, p *model.Profile) error {
	data, err := json.Marshal(profileData{
		LearningStyle:       string(p.LearningStyle),
		PersonalityType:     p.PersonalityType,
		CommunicationStyle:  p.CommunicationStyle,
		Goals:               p.Goals,
		Strengths:           p.Strengths,
		AreasForImprovement: p.AreasForImprovement,
		ProgressHistory:     p.ProgressHistory,
		LastAssessment:      p.LastAssessment,
	})
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	const q = `
INSERT INTO coaching_profiles (id, student_id, program_id, profile_data, created_at, updated_at)
VALUES ($1,$2,$3,$4,COALESCE($5,NOW()),COALESCE($6,NOW()))
ON CONFLICT (student_id, program_id) DO UPDATE SET
  profile_data = EXCLUDED.profile_data,
  updated_at = EXCLUDED.updated_at;`
	if _, err := execQx(ctx, r.pool, qx, q, p.ID, p.StudentID, p.ProgramID, data, p.CreatedAt, p.UpdatedAt); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *ProfileRepo) Find(ctx context.Context, qx any, studentID, programID int64) (*model.Profile, error) {
	const q = `
SELECT id, student_id, program_id, profile_data, created_at, updated_at
FROM coaching_profiles WHERE student_id=$1 AND program_id=$2;`
	return r.scanProfile(pickRow(ctx, r.pool, qx, q, studentID, programID))
}

func (r *ProfileRepo) FindAllByStudent(ctx context.Context, qx any, studentID int64) ([]*model.Profile, error) {
	const q = `
SELECT id, student_id, program_id, profile_data, created_at, updated_at
FROM coaching_profiles WHERE student_id=$1 ORDER BY created_at ASC;`
	rows, err := queryRows(ctx, r.pool, qx, q, studentID)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var out []*model.Profile
	for rows.Next() {
		p, err := r.scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProfileRepo) Delete(ctx context.Context, qx any, id string) error {
	const q = `DELETE FROM coaching_profiles WHERE id=$1;`
	n, err := execQx(ctx, r.pool, qx, q, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProfileRepo) scanProfile(row pgx.Row) (*model.Profile, error) {
	var p model.Profile
	var raw []byte
	if err := row.Scan(&p.ID, &p.StudentID, &p.ProgramID, &raw, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	var d profileData
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("unmarshal profile data: %w", err)
	}
	p.LearningStyle = model.LearningStyle(d.LearningStyle)
	p.PersonalityType = d.PersonalityType
	p.CommunicationStyle = d.CommunicationStyle
	p.Goals = d.Goals
	p.Strengths = d.Strengths
	p.AreasForImprovement = d.AreasForImprovement
	p.ProgressHistory = d.ProgressHistory
	p.LastAssessment = d.LastAssessment
	return &p, nil
}
