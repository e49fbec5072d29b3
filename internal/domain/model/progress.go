package model

import "time"

// ProgressEntry records one learning activity completed by a student.
// The 30-day average of Percentage feeds the coaching prompt.
type ProgressEntry struct {
	ID               string
	StudentID        int64
	ActivityID       int64
	ActivityType     string
	Percentage       float64
	TimeSpentMinutes int
	CompletionScore  float64
	CreatedAt        time.Time
}
