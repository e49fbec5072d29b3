package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"coachpro-coaching/internal/domain/model"
	"coachpro-coaching/internal/domain/ports/repository"
	"coachpro-coaching/internal/infra/metrics"
)

// Compile-time check
var _ repository.ConversationCache = (*ConversationCache)(nil)

const (
	keyPrefix  = "conversation:"
	maxEntries = 20
)

// Topic vocabulary scanned for in student messages.
var topicKeywords = []string{"career", "goal", "progress", "challenge", "stress", "success"}

// ConversationCache keeps the most recent messages of each session as a
// JSON blob under a single key.
//
// The TTL is set when the key is first written and NOT extended by later
// appends (KEEPTTL). A sliding window would arguably suit an active chat
// better, but the absolute window is the documented contract of the
// system this one replaces, so it is reproduced as-is.
type ConversationCache struct {
	client RedisClient
	ttl    time.Duration
}

func NewConversationCache(client RedisClient, ttl time.Duration) *ConversationCache {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &ConversationCache{client: client, ttl: ttl}
}

func (c *ConversationCache) Append(ctx context.Context, sessionID string, sender model.Sender, text string) error {
	key := keyPrefix + sessionID

	entries, found, err := c.load(ctx, key)
	if err != nil {
		return err
	}

	entries = append(entries, repository.CacheEntry{
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	})
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	exp := c.ttl
	if found {
		exp = goredis.KeepTTL
	}
	return c.client.Set(ctx, key, data, exp)
}

func (c *ConversationCache) Context(ctx context.Context, sessionID string) (repository.ConversationContext, error) {
	entries, found, err := c.load(ctx, keyPrefix+sessionID)
	if err != nil {
		return repository.ConversationContext{}, err
	}
	if !found {
		metrics.IncCacheRequest("conversation", "miss")
		return repository.ConversationContext{}, nil
	}
	metrics.IncCacheRequest("conversation", "hit")
	return deriveContext(entries), nil
}

func (c *ConversationCache) Clear(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, keyPrefix+sessionID)
}

func (c *ConversationCache) load(ctx context.Context, key string) ([]repository.CacheEntry, bool, error) {
	data, err := c.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var entries []repository.CacheEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, false, err
	}
	return entries, true, nil
}

// deriveContext computes the summary, goal excerpts, and topic set from
// the cached tail of a conversation. Only student messages contribute.
func deriveContext(entries []repository.CacheEntry) repository.ConversationContext {
	studentCount := 0
	var goals []string
	var topics []string
	seen := map[string]bool{}

	for _, e := range entries {
		if e.Sender != model.SenderStudent {
			continue
		}
		studentCount++
		lower := strings.ToLower(e.Text)
		if strings.Contains(lower, "goal") && len(goals) < 3 {
			goals = append(goals, e.Text)
		}
		for _, kw := range topicKeywords {
			if strings.Contains(lower, kw) && !seen[kw] {
				seen[kw] = true
				topics = append(topics, kw)
			}
		}
	}

	return repository.ConversationContext{
		Summary:   fmt.Sprintf("%d messages exchanged", studentCount),
		GoalsText: strings.Join(goals, ", "),
		Topics:    topics,
	}
}
