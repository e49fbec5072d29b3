package model

import (
	"time"

	"coachpro-coaching/internal/domain"

	"github.com/google/uuid"
)

type LearningStyle string

const (
	LearningStyleAdaptive   LearningStyle = "adaptive"
	LearningStyleActive     LearningStyle = "active"
	LearningStyleReflective LearningStyle = "reflective"
	LearningStyleBalanced   LearningStyle = "balanced"
)

// ProgressSnapshot is one entry of a profile's progress history.
type ProgressSnapshot struct {
	PersonalityScore float64   `json:"personality_score"`
	LearningStyle    string    `json:"learning_style"`
	Strengths        []string  `json:"strengths,omitempty"`
	Improvements     []string  `json:"improvements,omitempty"`
	RecordedAt       time.Time `json:"recorded_at"`
}

// Profile holds the coaching state for one (student, program) pair.
// At most one profile exists per pair; Initialize enforces it.
type Profile struct {
	ID                  string
	StudentID           int64
	ProgramID           int64
	LearningStyle       LearningStyle
	PersonalityType     string
	CommunicationStyle  string
	Goals               []string
	Strengths           []string
	AreasForImprovement []string
	ProgressHistory     []ProgressSnapshot
	LastAssessment      *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewProfile creates the default profile used at enrollment time.
func NewProfile(id string, studentID, programID int64) (*Profile, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if studentID <= 0 || programID <= 0 {
		return nil, domain.ErrInvalidArgument
	}
	return &Profile{
		ID:                  id,
		StudentID:           studentID,
		ProgramID:           programID,
		LearningStyle:       LearningStyleAdaptive,
		PersonalityType:     initialPersonality(),
		CommunicationStyle:  "conversational",
		Goals:               []string{},
		Strengths:           []string{},
		AreasForImprovement: []string{},
		ProgressHistory:     []ProgressSnapshot{},
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}, nil
}

// initialPersonality is the fixed-default analyzer applied at enrollment.
func initialPersonality() string { return "balanced" }

// ApplyAssessment merges an assessment analysis into the profile and
// appends a snapshot to the progress history.
func (p *Profile) ApplyAssessment(a *AssessmentAnalysis, at time.Time) {
	p.PersonalityType = a.LearningStyle
	if len(a.Strengths) > 0 {
		p.Strengths = a.Strengths
	}
	if len(a.AreasForImprovement) > 0 {
		p.AreasForImprovement = a.AreasForImprovement
	}
	p.ProgressHistory = append(p.ProgressHistory, ProgressSnapshot{
		PersonalityScore: a.PersonalityScore,
		LearningStyle:    a.LearningStyle,
		Strengths:        a.Strengths,
		Improvements:     a.AreasForImprovement,
		RecordedAt:       at,
	})
	p.LastAssessment = &at
	p.UpdatedAt = at
}
