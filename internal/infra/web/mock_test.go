// File: internal/infra/web/mock_test.go
package web

import (
	"context"
	"time"

	"coachpro-coaching/internal/domain"
	"coachpro-coaching/internal/domain/model"
	"coachpro-coaching/internal/usecase"
)

// Hand-rolled usecase fakes for handler tests.

var (
	_ usecase.CoachingUseCase       = (*fakeCoachingUC)(nil)
	_ usecase.ProfileUseCase        = (*fakeProfileUC)(nil)
	_ usecase.RecommendationUseCase = (*fakeRecUC)(nil)
	_ usecase.ProgressUseCase       = (*fakeProgressUC)(nil)
)

type fakeCoachingUC struct {
	startErr   error
	processErr error
	lastMsg    string
	sessions   []*model.CoachingSession
}

func (f *fakeCoachingUC) StartSession(ctx context.Context, studentID, coachID int64, sessionType string) (*model.CoachingSession, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	s := model.NewCoachingSession("sess-1", studentID, coachID, model.NormalizeSessionType(sessionType))
	s.AddMessage(model.SenderAI, "Welcome!")
	f.sessions = append(f.sessions, s)
	return s, nil
}

func (f *fakeCoachingUC) ProcessMessage(ctx context.Context, sessionID, studentMessage string) (string, error) {
	if f.processErr != nil {
		return "", f.processErr
	}
	f.lastMsg = studentMessage
	return "a coaching reply", nil
}

func (f *fakeCoachingUC) EndSession(ctx context.Context, sessionID string) error {
	for _, s := range f.sessions {
		if s.ID == sessionID {
			s.Status = model.SessionClosed
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCoachingUC) ListSessions(ctx context.Context, studentID int64, limit int) ([]*model.CoachingSession, error) {
	return f.sessions, nil
}

type fakeProfileUC struct {
	initErr    error
	assessErr  error
	lastAssess *model.AssessmentAnalysis
}

func (f *fakeProfileUC) Initialize(ctx context.Context, programID, studentID int64) (*model.Profile, error) {
	if f.initErr != nil {
		return nil, f.initErr
	}
	return model.NewProfile("prof-1", studentID, programID)
}

func (f *fakeProfileUC) RecordAssessment(ctx context.Context, studentID int64, analysis *model.AssessmentAnalysis) error {
	if f.assessErr != nil {
		return f.assessErr
	}
	f.lastAssess = analysis
	return nil
}

func (f *fakeProfileUC) Find(ctx context.Context, studentID, programID int64) (*model.Profile, error) {
	return nil, domain.ErrNotFound
}

type fakeRecUC struct {
	pending    []*model.Recommendation
	updated    map[string]model.RecommendationStatus
	updateErr  error
	pendingErr error
}

func (f *fakeRecUC) Generate(ctx context.Context, sessionID, studentMessage string) error { return nil }

func (f *fakeRecUC) ListPending(ctx context.Context, studentID int64, limit int) ([]*model.Recommendation, error) {
	if f.pendingErr != nil {
		return nil, f.pendingErr
	}
	return f.pending, nil
}

func (f *fakeRecUC) UpdateStatus(ctx context.Context, id string, status model.RecommendationStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = map[string]model.RecommendationStatus{}
	}
	f.updated[id] = status
	return nil
}

type fakeProgressUC struct {
	recorded []*model.ProgressEntry
}

func (f *fakeProgressUC) Record(ctx context.Context, entry *model.ProgressEntry) error {
	if entry == nil || entry.StudentID <= 0 || entry.Percentage < 0 || entry.Percentage > 100 {
		return domain.ErrInvalidArgument
	}
	entry.ID = "prog-1"
	f.recorded = append(f.recorded, entry)
	return nil
}

func (f *fakeProgressUC) History(ctx context.Context, studentID int64, limit int) ([]*model.ProgressEntry, error) {
	return f.recorded, nil
}

func sampleRec(id string, priority int) *model.Recommendation {
	return &model.Recommendation{
		ID:         id,
		StudentID:  42,
		Type:       model.RecommendationStressManagement,
		Text:       "Consider trying a short meditation or breathing exercise",
		Confidence: 0.8,
		Priority:   priority,
		Status:     model.RecommendationPending,
		CreatedAt:  time.Now(),
	}
}
