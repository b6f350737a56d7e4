package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

// geminiStub serves one canned reply and records the request path and body.
func geminiStub(t *testing.T, status int, body map[string]any) (*GeminiProvider, *string, *map[string]any) {
	t.Helper()
	var path string
	var sent map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &sent)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	p, err := newGeminiProvider(context.Background(), GeminiConfig{APIKey: "test-key", Model: "gemini-flash"},
		genai.HTTPOptions{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p, &path, &sent
}

func geminiReply(text, finish string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{{
			"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": text}}},
			"finishReason": finish,
		}},
		"usageMetadata": map[string]any{"promptTokenCount": 30, "candidatesTokenCount": 12, "totalTokenCount": 42},
		"modelVersion":  "gemini-2.5-flash",
	}
}

func TestGeminiProvider_TutorReply(t *testing.T) {
	p, path, sent := geminiStub(t, http.StatusOK, geminiReply("Picture a balance scale.", "STOP"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a visual tutor.",
		Messages:  []Message{{Role: RoleUser, Content: "what is an equation?"}, {Role: RoleAssistant, Content: "Good question."}},
		MaxTokens: 128,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "Picture a balance scale." || resp.Usage.TotalTokens != 42 || resp.StopReason != "end" {
		t.Fatalf("response = %+v", resp)
	}
	if !strings.Contains(*path, "gemini-2.5-flash:generateContent") {
		t.Errorf("path = %q", *path)
	}
	contents, _ := (*sent)["contents"].([]any)
	if len(contents) != 2 {
		t.Fatalf("contents = %v", (*sent)["contents"])
	}
	if role := contents[1].(map[string]any)["role"]; role != "model" {
		t.Errorf("assistant role sent as %v", role)
	}
	if _, ok := (*sent)["systemInstruction"]; !ok {
		t.Error("system instruction not sent")
	}
}

func TestGeminiProvider_StructuredSummary(t *testing.T) {
	summary := `{"summary":"s","strengths":["diagrams"],"struggles":[],"next_steps":[]}`
	p, _, sent := geminiStub(t, http.StatusOK, geminiReply(summary, "STOP"))

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
	conf, _ := (*sent)["generationConfig"].(map[string]any)
	if conf["responseMimeType"] != "application/json" || conf["responseJsonSchema"] == nil {
		t.Errorf("generation config = %v", conf)
	}
}

func TestGeminiProvider_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   map[string]any
		check  func(error) bool
	}{
		{"truncated", http.StatusOK, geminiReply(`{"summary":`, "MAX_TOKENS"), func(err error) bool {
			var e *ErrMaxTokensExceeded
			return errors.As(err, &e)
		}},
		{"blocked", http.StatusOK, map[string]any{"promptFeedback": map[string]any{"blockReason": "SAFETY"}}, func(err error) bool {
			var e *ErrInvalidResponse
			return errors.As(err, &e)
		}},
		{"rate limited", http.StatusTooManyRequests, map[string]any{"error": map[string]any{"code": 429, "message": "quota"}}, func(err error) bool {
			var e *ErrRateLimit
			return errors.As(err, &e)
		}},
		{"bad key", http.StatusForbidden, map[string]any{"error": map[string]any{"code": 403, "message": "denied"}}, func(err error) bool {
			var e *ErrRequestRejected
			return errors.As(err, &e) && e.Status == http.StatusForbidden
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, _ := geminiStub(t, tt.status, tt.body)
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "summarize"}},
				Schema:    SessionSummarySchema,
				MaxTokens: 8,
			})
			if err == nil || !tt.check(err) {
				t.Fatalf("unexpected error: %T (%v)", err, err)
			}
		})
	}
}

func TestGeminiStopReason(t *testing.T) {
	for in, want := range map[genai.FinishReason]string{
		genai.FinishReasonStop:       "end",
		genai.FinishReasonMaxTokens:  "max_tokens",
		genai.FinishReasonSafety:     "refusal",
		genai.FinishReasonRecitation: "refusal",
		"":                           "end",
	} {
		if got := geminiStopReason(in); got != want {
			t.Errorf("geminiStopReason(%q) = %q, want %q", in, got, want)
		}
	}
	if got := resolveModel("gemini-pro", geminiModels); got != "gemini-2.5-pro" {
		t.Errorf("gemini-pro resolved to %q", got)
	}
}
