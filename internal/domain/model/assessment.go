package model

// AssessmentAnalysis is the derived result of scoring a student's
// assessment responses.
type AssessmentAnalysis struct {
	PersonalityScore    float64
	LearningStyle       string
	Strengths           []string
	AreasForImprovement []string
	Recommendations     []string
}
