// File: internal/usecase/prompt.go
package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"coachpro-coaching/internal/domain/model"
	"coachpro-coaching/internal/domain/ports/adapter"
	"coachpro-coaching/internal/domain/ports/repository"

	"github.com/pkoukk/tiktoken-go"
)

// Policy constants for every coaching completion. Not caller configurable.
const (
	promptTemperature = 0.7
	promptMaxTokens   = 200
)

// BuildPrompt assembles the completion request for one student message.
// Pure function of its inputs; coach metadata and progress must already
// be resolved.
func BuildPrompt(
	session *model.CoachingSession,
	coach model.CoachMeta,
	studentMessage string,
	cctx repository.ConversationContext,
	progressPercent string,
	modelTag string,
) adapter.PromptSpec {
	coach = coach.WithDefaults()

	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, an AI coaching specialist in %s.\n\n", coach.Name, coach.Specialty)
	fmt.Fprintf(&b, "Personality traits: %s\n\n", coach.Personality)
	b.WriteString("Student context:\n")
	fmt.Fprintf(&b, "- Learning progress: %s\n", progressPercent)
	fmt.Fprintf(&b, "- Previous conversations: %s\n", cctx.Summary)
	fmt.Fprintf(&b, "- Current goals: %s\n\n", cctx.GoalsText)
	b.WriteString("Guidelines:\n")
	b.WriteString("- Be supportive and encouraging\n")
	b.WriteString("- Ask thoughtful questions\n")
	b.WriteString("- Provide actionable insights\n")
	b.WriteString("- Adapt to student's communication style\n")
	b.WriteString("- Keep responses under 200 words\n")
	fmt.Fprintf(&b, "- Focus on %s coaching\n\n", coach.Specialty)
	fmt.Fprintf(&b, "Student's message: %s", studentMessage)

	return adapter.PromptSpec{
		Model: modelTag,
		Messages: []adapter.Message{
			{Role: "system", Content: b.String()},
			{Role: "user", Content: studentMessage},
		},
		Temperature: promptTemperature,
		MaxTokens:   promptMaxTokens,
	}
}

// FormatProgress renders an average progress percentage for the prompt,
// e.g. "42.5%"; "0%" when no progress data exists.
func FormatProgress(avg float64, ok bool) string {
	if !ok {
		return "0%"
	}
	return strconv.FormatFloat(round1(avg), 'f', -1, 64) + "%"
}

func round1(f float64) float64 {
	if f < 0 {
		return 0
	}
	return float64(int(f*10+0.5)) / 10
}

// CountPromptTokens counts prompt tokens for metrics. Best-effort: any
// encoder failure yields 0.
func CountPromptTokens(spec adapter.PromptSpec) int {
	enc, err := tiktoken.EncodingForModel(spec.Model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return 0
		}
	}
	n := 0
	for _, m := range spec.Messages {
		n += len(enc.Encode(m.Content, nil, nil))
	}
	return n
}
