package model

import (
	"time"
)

type SessionType string

const (
	SessionGeneral          SessionType = "general"
	SessionGoalSetting      SessionType = "goal_setting"
	SessionProgressReview   SessionType = "progress_review"
	SessionChallengeSupport SessionType = "challenge_support"
)

// NormalizeSessionType maps unknown type tags to the general session type.
func NormalizeSessionType(s string) SessionType {
	switch SessionType(s) {
	case SessionGeneral, SessionGoalSetting, SessionProgressReview, SessionChallengeSupport:
		return SessionType(s)
	default:
		return SessionGeneral
	}
}

type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionClosed SessionStatus = "closed"
)

type Sender string

const (
	SenderStudent Sender = "student"
	SenderAI      Sender = "ai"
)

// Message is one turn within a coaching session. The message log is
// append-only; rows are never updated after insert.
type Message struct {
	SessionID string
	Sender    Sender
	Text      string
	Timestamp time.Time
}

// CoachingSession is the aggregate root for one conversation between a
// student and a coach persona.
type CoachingSession struct {
	ID              string
	StudentID       int64
	CoachID         int64
	Type            SessionType
	Status          SessionStatus
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationMinutes int
	SentimentScore  *float64
	Rating          *int
	Messages        []Message
}

func NewCoachingSession(id string, studentID, coachID int64, sessionType SessionType) *CoachingSession {
	return &CoachingSession{
		ID:        id,
		StudentID: studentID,
		CoachID:   coachID,
		Type:      sessionType,
		Status:    SessionActive,
		StartedAt: time.Now(),
		Messages:  make([]Message, 0, 8),
	}
}

func (s *CoachingSession) AddMessage(sender Sender, text string) *Message {
	s.Messages = append(s.Messages, Message{
		SessionID: s.ID,
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	})
	return &s.Messages[len(s.Messages)-1]
}

// RecomputeDuration derives duration_minutes from the session start,
// truncated to whole minutes.
func (s *CoachingSession) RecomputeDuration(now time.Time) {
	d := now.Sub(s.StartedAt)
	if d < 0 {
		d = 0
	}
	s.DurationMinutes = int(d.Minutes())
}
