//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"coachpro-coaching/internal/domain"
	"coachpro-coaching/internal/domain/model"
)

func TestProfileRepo_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode.")
	}

	ctx := context.Background()
	repo := NewProfileRepo(testPool)

	t.Run("should round-trip the profile payload", func(t *testing.T) {
		cleanup(t)
		p, err := model.NewProfile("", 42, 3)
		if err != nil {
			t.Fatalf("NewProfile: %v", err)
		}
		p.Goals = []string{"finish the course"}
		if err := repo.Save(ctx, nil, p); err != nil {
			t.Fatalf("Save: %v", err)
		}

		found, err := repo.Find(ctx, nil, 42, 3)
		if err != nil {
			t.Fatalf("Find: %v", err)
		}
		if found.ID != p.ID {
			t.Errorf("id = %q, want %q", found.ID, p.ID)
		}
		if found.LearningStyle != model.LearningStyleAdaptive || found.PersonalityType != "balanced" {
			t.Errorf("profile = %+v", found)
		}
		if found.CommunicationStyle != "conversational" {
			t.Errorf("communication style = %q", found.CommunicationStyle)
		}
		if len(found.Goals) != 1 || found.Goals[0] != "finish the course" {
			t.Errorf("goals = %v", found.Goals)
		}
	})

	t.Run("should upsert on the student/program pair", func(t *testing.T) {
		cleanup(t)
		p, _ := model.NewProfile("", 42, 3)
		if err := repo.Save(ctx, nil, p); err != nil {
			t.Fatalf("first Save: %v", err)
		}

		now := time.Now().UTC().Truncate(time.Second)
		p.ApplyAssessment(&model.AssessmentAnalysis{
			PersonalityScore: 0.8,
			LearningStyle:    "active",
			Strengths:        []string{"Strong learning motivation"},
		}, now)
		if err := repo.Save(ctx, nil, p); err != nil {
			t.Fatalf("second Save: %v", err)
		}

		var count int
		if err := testPool.QueryRow(ctx, `SELECT COUNT(*) FROM coaching_profiles WHERE student_id=42`).Scan(&count); err != nil {
			t.Fatalf("count: %v", err)
		}
		if count != 1 {
			t.Fatalf("rows = %d, want 1 (upsert)", count)
		}

		found, _ := repo.Find(ctx, nil, 42, 3)
		if found.PersonalityType != "active" {
			t.Errorf("personality = %q, want active", found.PersonalityType)
		}
		if len(found.ProgressHistory) != 1 {
			t.Errorf("history = %d snapshots, want 1", len(found.ProgressHistory))
		}
		if found.LastAssessment == nil {
			t.Error("last assessment not persisted")
		}
	})

	t.Run("should list all of a student's profiles", func(t *testing.T) {
		cleanup(t)
		for _, programID := range []int64{3, 4} {
			p, _ := model.NewProfile("", 42, programID)
			if err := repo.Save(ctx, nil, p); err != nil {
				t.Fatalf("Save program %d: %v", programID, err)
			}
		}
		other, _ := model.NewProfile("", 99, 3)
		repo.Save(ctx, nil, other)

		out, err := repo.FindAllByStudent(ctx, nil, 42)
		if err != nil {
			t.Fatalf("FindAllByStudent: %v", err)
		}
		if len(out) != 2 {
			t.Errorf("profiles = %d, want 2", len(out))
		}
	})

	t.Run("should return ErrNotFound for missing pairs and ids", func(t *testing.T) {
		cleanup(t)
		if _, err := repo.Find(ctx, nil, 42, 3); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Find: err = %v, want ErrNotFound", err)
		}
		if err := repo.Delete(ctx, nil, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Delete: err = %v, want ErrNotFound", err)
		}
	})
}
