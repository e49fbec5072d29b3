// File: internal/infra/adapters/ai/noop_ai.go
package ai

import (
	"context"
	"log"
	"time"

	"coachpro-coaching/internal/domain/ports/adapter"
)

var _ adapter.CompletionAdapter = (*NoopAdapter)(nil)

// NoopAdapter implements adapter.CompletionAdapter for local/dev
// testing. It logs prompts instead of issuing real completion requests.
type NoopAdapter struct{}

func NewNoopAdapter() *NoopAdapter {
	return &NoopAdapter{}
}

func (a *NoopAdapter) Complete(ctx context.Context, spec adapter.PromptSpec) (string, error) {
	// Simulate slight processing time and respect ctx
	select {
	case <-time.After(100 * time.Millisecond):
		// proceed
	case <-ctx.Done():
		return "", ctx.Err()
	}
	log.Printf("[noop-ai] completion for model %s: %d messages\n", spec.Model, len(spec.Messages))
	return "This is a noop coaching reply.", nil
}
