package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
)

func anthropicStub(t *testing.T, status int, body map[string]any) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "test-key", Model: "claude-haiku"}, option.WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func anthropicMessage(stop string, texts ...string) map[string]any {
	blocks := make([]map[string]any, len(texts))
	for i, t := range texts {
		blocks[i] = map[string]any{"type": "text", "text": t}
	}
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     blocks,
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func anthropicError(kind, msg string) map[string]any {
	return map[string]any{"type": "error", "error": map[string]any{"type": kind, "message": msg}}
}

func TestAnthropicProvider_TutorReply(t *testing.T) {
	p := anthropicStub(t, http.StatusOK, anthropicMessage("end_turn",
		"What do you notice about ", "the two sides of the equation?"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a Socratic mathematics tutor.",
		Messages:  []Message{{Role: RoleUser, Content: "how do I solve 2x + 3 = 7?"}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resp.Text(); got != "What do you notice about the two sides of the equation?" {
		t.Fatalf("text blocks not joined: %q", got)
	}
	if resp.Usage.TotalTokens != 80 || resp.StopReason != "end" {
		t.Fatalf("usage %+v stop %q", resp.Usage, resp.StopReason)
	}
}

func TestAnthropicProvider_StructuredSummary(t *testing.T) {
	summary := `{"summary":"Solved one equation.","strengths":[],"struggles":[],"next_steps":[]}`

	p := anthropicStub(t, http.StatusOK, anthropicMessage("end_turn", "```json\n"+summary+"\n```"))
	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "summarize"}},
		Schema:    SessionSummarySchema,
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != summary {
		t.Fatalf("fence not stripped: %s", resp.Content)
	}

	truncated := anthropicStub(t, http.StatusOK, anthropicMessage("max_tokens", `{"summary":"Solv`))
	_, err = truncated.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "summarize"}},
		Schema:    SessionSummarySchema,
		MaxTokens: 8,
	})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
}

func TestAnthropicProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   string
		check  func(error) bool
	}{
		{"rate limit", http.StatusTooManyRequests, "rate_limit_error", func(err error) bool {
			var e *ErrRateLimit
			return errors.As(err, &e)
		}},
		{"server error", http.StatusInternalServerError, "api_error", func(err error) bool {
			var e *ErrProviderUnavailable
			return errors.As(err, &e)
		}},
		{"bad key", http.StatusUnauthorized, "authentication_error", func(err error) bool {
			var e *ErrRequestRejected
			return errors.As(err, &e) && e.Status == http.StatusUnauthorized
		}},
		{"bad request", http.StatusBadRequest, "invalid_request_error", func(err error) bool {
			var e *ErrRequestRejected
			return errors.As(err, &e) && e.Status == http.StatusBadRequest
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := anthropicStub(t, tt.status, anthropicError(tt.kind, tt.name))
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "test"}},
				MaxTokens: 100,
			})
			if err == nil || !tt.check(err) {
				t.Fatalf("unexpected error: %T (%v)", err, err)
			}
		})
	}
}

func TestAnthropicProvider_EmptyContent(t *testing.T) {
	p := anthropicStub(t, http.StatusOK, anthropicMessage("refusal"))
	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "test"}},
		MaxTokens: 100,
	})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-5-20250929"},
		{"Claude-Haiku ", "claude-haiku-4-5-20251001"},
		{"claude-opus", "claude-opus-4-5-20251101"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, anthropicModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
	if got := (&AnthropicProvider{model: "claude-haiku-4-5-20251001"}).ModelID(); got != "claude-haiku-4-5-20251001" {
		t.Errorf("ModelID() = %q", got)
	}
}

func TestAnthropicProvider_NoUserMessage(t *testing.T) {
	p := anthropicStub(t, http.StatusOK, anthropicMessage("end_turn", "unused"))
	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleAssistant, Content: "Welcome back!"}, {Role: RoleUser, Content: "  "}},
	})
	if !errors.Is(err, errNoMessages) {
		t.Fatalf("expected errNoMessages, got %v", err)
	}
}
