// File: internal/usecase/cleanup_uc_test.go
package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"coachpro-coaching/internal/domain/model"
)

func TestCleanupRun_RetentionBoundaries(t *testing.T) {
	log := zerolog.Nop()
	sessions := newMemSessionRepo()
	recs := newMemRecRepo()
	uc := NewCleanupUseCase(sessions, recs, 30, 60, &log)

	now := time.Now()
	mkSession := func(id string, age time.Duration) {
		s := model.NewCoachingSession(id, 42, 7, model.SessionGeneral)
		s.StartedAt = now.Add(-age)
		if err := sessions.Save(context.Background(), nil, s); err != nil {
			t.Fatalf("seed session %s: %v", id, err)
		}
	}
	mkRec := func(id string, age time.Duration) {
		r := &model.Recommendation{
			ID: id, StudentID: 42,
			Type: model.RecommendationStressManagement, Text: "x",
			Confidence: 0.8, Priority: model.PriorityMedium,
			Status: model.RecommendationPending, CreatedAt: now.Add(-age),
		}
		if err := recs.Save(context.Background(), nil, r); err != nil {
			t.Fatalf("seed rec %s: %v", id, err)
		}
	}

	mkSession("old", 31*24*time.Hour)
	mkSession("fresh", 29*24*time.Hour)
	mkRec("old", 61*24*time.Hour)
	mkRec("fresh", 59*24*time.Hour)

	sessionsDeleted, recsDeleted, err := uc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sessionsDeleted != 1 {
		t.Errorf("sessions deleted = %d, want 1", sessionsDeleted)
	}
	if recsDeleted != 1 {
		t.Errorf("recommendations deleted = %d, want 1", recsDeleted)
	}

	if _, err := sessions.FindByID(context.Background(), nil, "fresh"); err != nil {
		t.Errorf("fresh session removed: %v", err)
	}
	if _, err := sessions.FindByID(context.Background(), nil, "old"); err == nil {
		t.Error("old session still present")
	}
	pending, _ := recs.FindPendingByStudent(context.Background(), nil, 42, 10)
	if len(pending) != 1 || pending[0].ID != "fresh" {
		t.Errorf("pending after cleanup = %v", pending)
	}
}

func TestCleanupRun_EmptyStores(t *testing.T) {
	log := zerolog.Nop()
	uc := NewCleanupUseCase(newMemSessionRepo(), newMemRecRepo(), 30, 60, &log)

	s, r, err := uc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s != 0 || r != 0 {
		t.Errorf("deleted = %d/%d, want 0/0", s, r)
	}
}

func TestNewCleanupUseCase_DefaultWindows(t *testing.T) {
	log := zerolog.Nop()
	uc := NewCleanupUseCase(newMemSessionRepo(), newMemRecRepo(), 0, -5, &log)
	if uc.sessionDays != 30 || uc.recDays != 60 {
		t.Errorf("windows = %d/%d, want 30/60", uc.sessionDays, uc.recDays)
	}
}
