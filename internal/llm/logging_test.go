package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/adaptutor/internal/store"
)

type recordingWriter struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (w *recordingWriter) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = append(w.events, data)
	return w.err
}

func TestLoggingProvider_RecordsEvent(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: []byte("Let's look at it together."),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7, TotalTokens: 19},
	})
	w := &recordingWriter{}
	p := WithLogging(mock, ProviderMock, w, nil)

	ctx := WithSession(WithPurpose(context.Background(), PurposeTutorReply), "learner-7")
	if _, err := p.Generate(ctx, Request{System: "be patient", Messages: []Message{{Role: RoleUser, Content: "help"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(w.events) != 1 {
		t.Fatalf("got %d events, want 1", len(w.events))
	}
	ev := w.events[0]
	if ev.Provider != "mock" || ev.Purpose != PurposeTutorReply || ev.SessionID != "learner-7" || !ev.Success {
		t.Errorf("event = %+v", ev)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 7 {
		t.Errorf("tokens = %d/%d, want 12/7", ev.InputTokens, ev.OutputTokens)
	}
	if !strings.Contains(ev.RequestBody, "[system]\nbe patient") || !strings.Contains(ev.RequestBody, "[user]\nhelp") {
		t.Errorf("request body = %q", ev.RequestBody)
	}
	if ev.ResponseBody != "Let's look at it together." {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
}

func TestLoggingProvider_WriteFailureDoesNotFailRequest(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	mock := NewMockProvider(MockText("ok"))
	w := &recordingWriter{err: errors.New("disk full")}
	p := WithLogging(mock, ProviderMock, w, zap.New(core))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "ok" {
		t.Errorf("text = %q", resp.Text())
	}
	if logs.FilterMessage("failed to record llm request event").Len() != 1 {
		t.Errorf("expected a warning for the failed write, got %v", logs.All())
	}
}

func TestLoggingProvider_FailedRequest(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})
	w := &recordingWriter{}
	p := WithLogging(mock, ProviderMock, w, zap.New(core))

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if len(w.events) != 1 || w.events[0].Success || w.events[0].ErrorMessage == "" {
		t.Errorf("event = %+v", w.events)
	}
	if logs.FilterMessage("llm request failed").Len() != 1 {
		t.Errorf("expected failure warning, got %v", logs.All())
	}
}

func TestLoggingProvider_NilWriter(t *testing.T) {
	p := WithLogging(NewMockProvider(MockText("ok")), ProviderMock, nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hello"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "You said: hello" {
		t.Errorf("echo = %q", resp.Text())
	}

	cfg.Provider = "carrier-pigeon"
	if _, err := NewProvider(context.Background(), cfg, nil, nil); err == nil {
		t.Error("expected error for unknown provider")
	}

	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "sk-or-test"
	if _, err := NewProvider(context.Background(), cfg, nil, nil); err != nil {
		t.Errorf("openrouter: %v", err)
	}
}
