package repository

import (
	"context"
	"time"

	"coachpro-coaching/internal/domain/model"
)

// CacheEntry is one message mirrored into the short-lived conversation
// cache. The cache only exists to derive context cheaply; the session
// repository holds the authoritative log.
type CacheEntry struct {
	Sender    model.Sender `json:"sender"`
	Text      string       `json:"text"`
	Timestamp time.Time    `json:"timestamp"`
}

// ConversationContext is derived from the cached tail of a conversation.
type ConversationContext struct {
	Summary   string
	GoalsText string
	Topics    []string
}

// ConversationCache mirrors the most recent messages of a session.
// Implementations keep at most 20 entries per session and expire the
// whole entry set two hours after the FIRST write; later appends do not
// extend the window. That absolute-TTL contract comes from the data
// source this system replaces and is kept deliberately.
type ConversationCache interface {
	Append(ctx context.Context, sessionID string, sender model.Sender, text string) error
	// Context returns the zero value (not an error) when the cache
	// holds nothing for the session.
	Context(ctx context.Context, sessionID string) (ConversationContext, error)
	Clear(ctx context.Context, sessionID string) error
}
