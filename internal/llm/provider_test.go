package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCanedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "tutor-reply")
	if p := PurposeFrom(ctx); p != "tutor-reply" {
		t.Fatalf("expected 'tutor-reply', got %q", p)
	}
	if s := SessionFrom(ctx); s != "" {
		t.Fatalf("expected no session, got %q", s)
	}

	ctx = WithSession(ctx, "learner-1")
	if s := SessionFrom(ctx); s != "learner-1" {
		t.Fatalf("expected 'learner-1', got %q", s)
	}
	if p := PurposeFrom(ctx); p != "tutor-reply" {
		t.Fatalf("session overwrote purpose: %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	with := func(mut func(*Config)) Config {
		c := DefaultConfig()
		mut(&c)
		return c
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", with(func(c *Config) { c.Provider = ProviderAnthropic }), true},
		{"anthropic with key", with(func(c *Config) { c.Anthropic.APIKey = "sk-test" }), false},
		{"openai without key", with(func(c *Config) { c.Provider = ProviderOpenAI }), true},
		{"openai with key", with(func(c *Config) { c.Provider = ProviderOpenAI; c.OpenAI.APIKey = "sk-test" }), false},
		{"openrouter without key", with(func(c *Config) { c.Provider = ProviderOpenRouter }), true},
		{"gemini with key", with(func(c *Config) { c.Provider = ProviderGemini; c.Gemini.APIKey = "g" }), false},
		{"blank key", with(func(c *Config) { c.Anthropic.APIKey = "  " }), true},
		{"mock needs no key", with(func(c *Config) { c.Provider = ProviderMock }), false},
		{"unknown provider", with(func(c *Config) { c.Provider = "unknown" }), true},
		{"zero retry attempts", with(func(c *Config) { c.Provider = ProviderMock; c.Retry.MaxAttempts = 0 }), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ADAPTUTOR_LLM_PROVIDER", "openrouter")
	t.Setenv("ADAPTUTOR_OPENROUTER_API_KEY", "sk-or")
	t.Setenv("ADAPTUTOR_OPENROUTER_MODEL", "meta-llama/llama-3-8b")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderOpenRouter || cfg.OpenRouter.APIKey != "sk-or" || cfg.OpenRouter.Model != "meta-llama/llama-3-8b" {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("defaults lost: anthropic model = %q", cfg.Anthropic.Model)
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}

	if _, ok := DiscoverConfig(DefaultConfig()); ok {
		t.Fatal("expected no discovery without keys")
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	cfg, ok := DiscoverConfig(DefaultConfig())
	if !ok || cfg.Provider != ProviderGemini || cfg.Gemini.APIKey != "g-key" {
		t.Errorf("discovered %+v, %v; want gemini first", cfg.Provider, ok)
	}
}

func TestRequestTurns(t *testing.T) {
	req := Request{Messages: []Message{
		{Role: RoleAssistant, Content: "Hi! What are we studying today?"},
		{Role: RoleUser, Content: "fractions"},
		{Role: RoleUser, Content: "  "},
		{Role: RoleUser, Content: "mostly adding them"},
		{Role: RoleAssistant, Content: "Great."},
	}}
	got, err := req.turns()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Message{
		{Role: RoleUser, Content: "fractions\n\nmostly adding them"},
		{Role: RoleAssistant, Content: "Great."},
	}
	if len(got) != len(want) {
		t.Fatalf("turns = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("turn %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if _, err := (Request{}).turns(); err != errNoMessages {
		t.Errorf("empty request: got %v", err)
	}
	if n := (Request{}).maxTokens(); n != DefaultMaxTokens {
		t.Errorf("default max tokens = %d", n)
	}
}
