package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{
		"summary": "Worked through linear equations.",
		"strengths": ["isolated the variable"],
		"struggles": ["sign errors"],
		"next_steps": ["two-step equations"]
	}`)})

	got, err := Summarize(context.Background(), mock, SummaryInput{
		Messages:      []Message{{Role: RoleUser, Content: "how do I solve 2x + 3 = 7?"}},
		LoadLevel:     "optimal",
		LearningStyle: "visual",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Summary != "Worked through linear equations." || len(got.NextSteps) != 1 {
		t.Errorf("summary = %+v", got)
	}

	req, _ := mock.LastCall()
	if req.Schema != SessionSummarySchema {
		t.Error("expected session summary schema on request")
	}
	body := req.Messages[0].Content
	for _, want := range []string{"cognitive load: optimal", "learning state: unknown", "[user] how do I solve"} {
		if !strings.Contains(body, want) {
			t.Errorf("summary message missing %q:\n%s", want, body)
		}
	}
}

func TestSummarize_NoMessages(t *testing.T) {
	mock := NewMockProvider()
	if _, err := Summarize(context.Background(), mock, SummaryInput{}); err == nil {
		t.Fatal("expected error for empty session")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", mock.CallCount())
	}
}

func TestSummarize_ProviderError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	_, err := Summarize(context.Background(), mock, SummaryInput{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestSessionSummarySchemaValidates(t *testing.T) {
	good := json.RawMessage(`{"summary":"s","strengths":[],"struggles":[],"next_steps":[]}`)
	if err := validateResponse(SessionSummarySchema, good); err != nil {
		t.Fatalf("valid summary rejected: %v", err)
	}
	bad := json.RawMessage(`{"summary":"s"}`)
	var inv *ErrInvalidResponse
	if err := validateResponse(SessionSummarySchema, bad); !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse for missing fields, got %v", err)
	}
}

func TestSummarize_FencedAndInvalidContent(t *testing.T) {
	in := SummaryInput{Messages: []Message{{Role: RoleUser, Content: "hi"}}}

	fenced := NewMockProvider(MockResponse{Content: json.RawMessage("```json\n" +
		`{"summary":"Short chat.","strengths":[],"struggles":[],"next_steps":["practice"]}` + "\n```")})
	got, err := Summarize(context.Background(), fenced, in)
	if err != nil {
		t.Fatalf("fenced summary rejected: %v", err)
	}
	if got.Summary != "Short chat." {
		t.Errorf("summary = %q", got.Summary)
	}

	partial := NewMockProvider(MockResponse{Content: json.RawMessage(`{"summary":"only this"}`)})
	var inv *ErrInvalidResponse
	if _, err := Summarize(context.Background(), partial, in); !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}
