// File: internal/infra/adapters/ai/gemini_adapter.go
package ai

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"coachpro-coaching/internal/domain"
	"coachpro-coaching/internal/domain/ports/adapter"
)

var _ adapter.CompletionAdapter = (*GeminiAdapter)(nil)

// GeminiAdapter implements adapter.CompletionAdapter on the official
// genai SDK. It honors the same contract as the OpenAI adapter: trimmed
// and cleaned reply text on success, ErrUnavailable for every failure.
type GeminiAdapter struct {
	client  *genai.Client
	timeout time.Duration
	log     *zerolog.Logger
}

func NewGeminiAdapter(ctx context.Context, apiKey, baseURL string, timeout time.Duration, logger *zerolog.Logger) (*GeminiAdapter, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: empty api key")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: baseURL,
		},
	})
	if err != nil {
		return nil, err
	}
	l := logger.With().Str("component", "GeminiAdapter").Logger()
	return &GeminiAdapter{client: c, timeout: timeout, log: &l}, nil
}

func (g *GeminiAdapter) Complete(ctx context.Context, spec adapter.PromptSpec) (string, error) {
	if len(spec.Messages) == 0 {
		return "", domain.ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	// Gemini has no separate system role in history; the system
	// instruction goes through the config instead.
	var system *genai.Content
	var contents []*genai.Content
	for _, m := range spec.Messages {
		switch m.Role {
		case "system":
			system = &genai.Content{Parts: []*genai.Part{{Text: m.Content}}}
		case "assistant":
			contents = append(contents, &genai.Content{
				Role:  genai.RoleModel,
				Parts: []*genai.Part{{Text: m.Content}},
			})
		default:
			contents = append(contents, &genai.Content{
				Role:  genai.RoleUser,
				Parts: []*genai.Part{{Text: m.Content}},
			})
		}
	}

	temp := float32(spec.Temperature)
	resp, err := g.client.Models.GenerateContent(ctx, spec.Model, contents, &genai.GenerateContentConfig{
		SystemInstruction: system,
		Temperature:       &temp,
		MaxOutputTokens:   int32(spec.MaxTokens),
	})
	if err != nil {
		g.log.Warn().Err(err).Msg("gemini completion failed")
		return "", domain.ErrUnavailable
	}

	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil && len(resp.Candidates[0].Content.Parts) > 0 {
		if t := resp.Candidates[0].Content.Parts[0].Text; t != "" {
			return CleanReply(t), nil
		}
	}
	g.log.Warn().Msg("gemini completion returned no text")
	return "", domain.ErrUnavailable
}
