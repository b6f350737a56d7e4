package llm

import (
	"context"
	"fmt"
	"strings"
)

// PurposeTutorReply and PurposeSessionSummary label requests in the event log.
const (
	PurposeTutorReply     = "tutor-reply"
	PurposeSessionSummary = "session-summary"
)

// SessionSummarySchema is the structured output requested at the end of a
// tutoring session.
var SessionSummarySchema = &Schema{
	Name:        "session-summary",
	Description: "Short recap of a tutoring session from the tutor's point of view",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence recap of what the learner worked on",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 things the learner did well (5-10 words each)",
			},
			"struggles": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 points of difficulty (5-10 words each)",
			},
			"next_steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 suggested next activities",
			},
		},
		"required":             []any{"summary", "strengths", "struggles", "next_steps"},
		"additionalProperties": false,
	},
}

// SessionSummary is the decoded summary response.
type SessionSummary struct {
	Summary   string   `json:"summary" yaml:"summary"`
	Strengths []string `json:"strengths" yaml:"strengths"`
	Struggles []string `json:"struggles" yaml:"struggles"`
	NextSteps []string `json:"next_steps" yaml:"next_steps"`
}

// SummaryInput carries what the tutor observed during a session.
type SummaryInput struct {
	Messages      []Message
	LoadLevel     string
	LearningState string
	LearningStyle string
}

// SummaryMaxTokens bounds the summary response.
const SummaryMaxTokens = 512

const summarySystemPrompt = `You are reviewing a finished tutoring session.
Summarize it for the learner in plain, encouraging language.
Be specific about what was practiced. Do not invent topics that do not appear in the conversation.`

// Summarize asks p for a structured recap of the session.
func Summarize(ctx context.Context, p Provider, in SummaryInput) (*SessionSummary, error) {
	if len(in.Messages) == 0 {
		return nil, fmt.Errorf("session summary: no messages")
	}
	ctx = WithPurpose(ctx, PurposeSessionSummary)

	req := Request{
		System:      summarySystemPrompt,
		Messages:    []Message{{Role: RoleUser, Content: buildSummaryMessage(in)}},
		Schema:      SessionSummarySchema,
		MaxTokens:   SummaryMaxTokens,
		Temperature: 0.3,
	}

	resp, err := p.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("session summary: %w", err)
	}

	var out SessionSummary
	if err := decodeResponse(SessionSummarySchema, resp.Content, &out); err != nil {
		return nil, fmt.Errorf("session summary: %w", err)
	}
	return &out, nil
}

func buildSummaryMessage(in SummaryInput) string {
	var b strings.Builder
	b.WriteString("Observed learner state:\n")
	fmt.Fprintf(&b, "- cognitive load: %s\n", orUnknown(in.LoadLevel))
	fmt.Fprintf(&b, "- learning state: %s\n", orUnknown(in.LearningState))
	fmt.Fprintf(&b, "- learning style: %s\n\n", orUnknown(in.LearningStyle))
	b.WriteString("Conversation:\n")
	for _, m := range in.Messages {
		fmt.Fprintf(&b, "[%s] %s\n", m.Role, m.Content)
	}
	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
