// File: internal/usecase/assessment.go
package usecase

import (
	"coachpro-coaching/internal/domain"
	"coachpro-coaching/internal/domain/model"
)

// AnalyzeAssessment scores a set of assessment responses (each in 0..1)
// into a personality/learning-style analysis. The thresholds are the
// fixed heuristic carried over from the assessment feature this service
// replaces.
func AnalyzeAssessment(responses []float64) (*model.AssessmentAnalysis, error) {
	if len(responses) == 0 {
		return nil, domain.ErrInvalidArgument
	}

	sum := 0.0
	high, low := 0, 0
	for _, r := range responses {
		sum += r
		if r >= 0.8 {
			high++
		}
		if r <= 0.3 {
			low++
		}
	}
	avg := sum / float64(len(responses))

	a := &model.AssessmentAnalysis{
		PersonalityScore: 0.5,
		LearningStyle:    string(model.LearningStyleBalanced),
	}
	switch {
	case avg > 0.7:
		a.PersonalityScore = 0.8
		a.LearningStyle = string(model.LearningStyleActive)
	case avg < 0.3:
		a.PersonalityScore = 0.2
		a.LearningStyle = string(model.LearningStyleReflective)
	}

	if high >= 2 {
		a.Strengths = []string{"Strong learning motivation", "Good self-awareness"}
	}
	if low >= 2 {
		a.AreasForImprovement = []string{"Time management skills", "Goal setting clarity"}
	}
	if len(a.AreasForImprovement) > 0 {
		a.Recommendations = []string{
			"Focus on structured learning approaches",
			"Set specific, measurable goals",
		}
	}
	return a, nil
}
