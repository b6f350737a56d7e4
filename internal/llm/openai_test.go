package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// openAIStub serves one canned reply and records the last request body.
func openAIStub(t *testing.T, status int, body map[string]any) (*OpenAIProvider, *openai.ChatCompletionRequest) {
	t.Helper()
	var got openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-mini", BaseURL: server.URL + "/v1/"})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p, &got
}

func openAICompletion(content, finish string, extra map[string]any) map[string]any {
	msg := map[string]any{"role": "assistant", "content": content}
	for k, v := range extra {
		msg[k] = v
	}
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4.1-mini",
		"choices": []map[string]any{{"index": 0, "message": msg, "finish_reason": finish}},
		"usage":   map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAIProvider_TutorReply(t *testing.T) {
	p, sent := openAIStub(t, http.StatusOK, openAICompletion("Try subtracting 3 from both sides first.", "stop", nil))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a guided practice tutor for mathematics.",
		Messages:  []Message{{Role: RoleUser, Content: "how do I solve 2x + 3 = 7?"}, {Role: RoleAssistant, Content: "What is x?"}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "Try subtracting 3 from both sides first." || resp.Usage.InputTokens != 40 || resp.StopReason != "end" {
		t.Fatalf("response = %+v", resp)
	}

	if sent.Model != "gpt-4.1-mini" {
		t.Errorf("model sent = %q, want gpt-4.1-mini", sent.Model)
	}
	if len(sent.Messages) != 3 || sent.Messages[0].Role != openai.ChatMessageRoleSystem || sent.Messages[2].Role != openai.ChatMessageRoleAssistant {
		t.Errorf("messages sent = %+v", sent.Messages)
	}
	if sent.ResponseFormat != nil {
		t.Errorf("free-text request asked for %v", sent.ResponseFormat.Type)
	}
}

func TestOpenAIProvider_StructuredSummary(t *testing.T) {
	summary := `{"summary":"s","strengths":[],"struggles":[],"next_steps":["fractions"]}`
	p, sent := openAIStub(t, http.StatusOK, openAICompletion(summary, "stop", nil))

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "summarize"}},
		Schema:    SessionSummarySchema,
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != summary {
		t.Errorf("content = %s", resp.Content)
	}
	if sent.ResponseFormat == nil || sent.ResponseFormat.JSONSchema == nil || sent.ResponseFormat.JSONSchema.Name != SessionSummarySchema.Name {
		t.Fatalf("schema not requested: %+v", sent.ResponseFormat)
	}
}

func TestOpenAIProvider_UnusableReplies(t *testing.T) {
	tests := []struct {
		name  string
		body  map[string]any
		check func(error) bool
	}{
		{"truncated", openAICompletion(`{"summary":"s`, "length", nil), func(err error) bool {
			var e *ErrMaxTokensExceeded
			return errors.As(err, &e)
		}},
		{"refused", openAICompletion("", "stop", map[string]any{"refusal": "cannot help"}), func(err error) bool {
			var e *ErrInvalidResponse
			return errors.As(err, &e)
		}},
		{"schema mismatch", openAICompletion(`{"summary":1}`, "stop", nil), func(err error) bool {
			var e *ErrInvalidResponse
			return errors.As(err, &e)
		}},
		{"no choices", map[string]any{"id": "x", "object": "chat.completion", "choices": []any{}}, func(err error) bool {
			var e *ErrInvalidResponse
			return errors.As(err, &e)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := openAIStub(t, http.StatusOK, tt.body)
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "summarize"}},
				Schema:    SessionSummarySchema,
				MaxTokens: 16,
			})
			if err == nil || !tt.check(err) {
				t.Fatalf("unexpected error: %T (%v)", err, err)
			}
		})
	}
}

func TestOpenAIProvider_HTTPErrors(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool {
			var e *ErrRateLimit
			return errors.As(err, &e)
		}},
		{http.StatusBadGateway, func(err error) bool {
			var e *ErrProviderUnavailable
			return errors.As(err, &e)
		}},
		{http.StatusUnauthorized, func(err error) bool {
			var e *ErrRequestRejected
			return errors.As(err, &e) && e.Status == http.StatusUnauthorized
		}},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			p, _ := openAIStub(t, tt.status, map[string]any{
				"error": map[string]any{"type": "test", "message": http.StatusText(tt.status)},
			})
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

func TestOpenAIModelMapping(t *testing.T) {
	for in, want := range map[string]string{
		"gpt-mini":    "gpt-4.1-mini",
		"GPT":         "gpt-4.1",
		"gpt-4o-mini": "gpt-4o-mini",
	} {
		if got := resolveModel(in, openaiModels); got != want {
			t.Errorf("resolveModel(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt"}); err == nil {
		t.Error("expected error without API key")
	}
}
