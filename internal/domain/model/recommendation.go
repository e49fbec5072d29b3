package model

import (
	"time"
)

type RecommendationType string

const (
	RecommendationStressManagement RecommendationType = "stress_management"
	RecommendationGoalSetting      RecommendationType = "goal_setting"
)

type RecommendationStatus string

const (
	RecommendationPending   RecommendationStatus = "pending"
	RecommendationDismissed RecommendationStatus = "dismissed"
	RecommendationApplied   RecommendationStatus = "applied"
)

// Priority levels: 1 = low, 2 = medium, 3 = high.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// Recommendation is a system-generated suggestion surfaced to a student.
// Rows are created once by the engine and afterwards mutated only through
// status transitions.
type Recommendation struct {
	ID         string
	StudentID  int64
	Type       RecommendationType
	Text       string
	Confidence float64
	Priority   int
	Status     RecommendationStatus
	CreatedAt  time.Time
}
