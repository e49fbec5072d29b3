// File: internal/infra/adapters/ai/openai_adapter.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"coachpro-coaching/internal/domain"
	"coachpro-coaching/internal/domain/ports/adapter"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.CompletionAdapter = (*OpenAIAdapter)(nil)

// OpenAIAdapter implements adapter.CompletionAdapter using the Chat
// Completions API. Every failure mode collapses into ErrUnavailable so
// the caller can fall back without inspecting causes; the cause is
// logged here.
type OpenAIAdapter struct {
	apiKey string
	base   string // e.g., https://api.openai.com/v1
	client *http.Client
	log    *zerolog.Logger
}

func NewOpenAIAdapter(apiKey string, timeout time.Duration, logger *zerolog.Logger) (*OpenAIAdapter, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key empty")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	l := logger.With().Str("component", "OpenAIAdapter").Logger()
	return &OpenAIAdapter{
		apiKey: apiKey,
		base:   "https://api.openai.com/v1",
		client: &http.Client{Timeout: timeout},
		log:    &l,
	}, nil
}

func (o *OpenAIAdapter) Complete(ctx context.Context, spec adapter.PromptSpec) (string, error) {
	b, _ := json.Marshal(spec)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, o.base+"/chat/completions", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		o.log.Warn().Err(err).Msg("completion request failed")
		return "", domain.ErrUnavailable
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		o.log.Warn().Int("status", resp.StatusCode).Msg("completion returned non-200")
		return "", domain.ErrUnavailable
	}

	var payload struct {
		Choices []struct {
			Message adapter.Message `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		o.log.Warn().Err(err).Msg("completion payload malformed")
		return "", domain.ErrUnavailable
	}
	for _, c := range payload.Choices {
		if c.Message.Content != "" {
			return CleanReply(c.Message.Content), nil
		}
	}
	o.log.Warn().Msg("completion payload has no choice content")
	return "", domain.ErrUnavailable
}

var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.*?)\*`)
)

// CleanReply trims the raw completion text and strips markdown
// bold/italic markers in a single non-greedy pass. Nested or overlapping
// markers are not handled.
func CleanReply(raw string) string {
	s := strings.TrimSpace(raw)
	s = boldRe.ReplaceAllString(s, "$1")
	s = italicRe.ReplaceAllString(s, "$1")
	return s
}
