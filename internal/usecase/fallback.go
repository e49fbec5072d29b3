// File: internal/usecase/fallback.go
package usecase

import "strings"

// Fixed rule-based replies used when no completion provider is
// configured or the provider is unavailable.
const (
	fallbackGratitude = "Thank you for sharing that with me. I appreciate your openness. Can you tell me more about what you'd like to achieve?"
	fallbackProgress  = "Great progress! It sounds like you're on the right track. What challenges are you facing in moving forward?"
	fallbackGoal      = "Setting goals is important for success. Let's work together to make sure they're specific and achievable."
	fallbackGeneral   = "I understand. Let's explore this together. What would you like to focus on in our conversation today?"
)

// FallbackReply selects a deterministic reply by case-insensitive
// substring match, in priority order. It is total: every input maps to
// one of exactly four replies.
func FallbackReply(studentMessage string) string {
	m := strings.ToLower(studentMessage)
	switch {
	case strings.Contains(m, "thank") || strings.Contains(m, "appreciate"):
		return fallbackGratitude
	case strings.Contains(m, "progress") || strings.Contains(m, "achieve"):
		return fallbackProgress
	case strings.Contains(m, "goal") || strings.Contains(m, "objective"):
		return fallbackGoal
	default:
		return fallbackGeneral
	}
}
