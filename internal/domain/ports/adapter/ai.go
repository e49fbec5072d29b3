package adapter

import "context"

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// PromptSpec is one fully assembled completion request. Temperature and
// MaxTokens are policy constants set by the prompt builder, not caller
// configurable.
type PromptSpec struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// CompletionAdapter is the port for the external text-completion service.
//
// Complete returns the trimmed reply text on success. Every failure mode
// (network error, non-200, malformed payload, timeout) maps to
// domain.ErrUnavailable so callers can fall back without inspecting the
// cause; adapters log the cause themselves.
type CompletionAdapter interface {
	Complete(ctx context.Context, spec PromptSpec) (string, error)
}
