package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		input float64
	}{
		{"claude-haiku-4-5-20251001", 1},
		{"claude-sonnet-4-5-20250929", 3},
		{"gpt-4.1-mini", 0.4},
		{"gpt-4.1-mini-2025-04-14", 0.4},
		{"openai/gpt-4o-mini", 0.15},
		{"anthropic/claude-haiku-4.5", 1},
		{"google/gemini-2.5-flash", 0.3},
		{"gemini-2.5-flash", 0.3},
	}
	for _, tt := range tests {
		c := LookupCost(tt.model)
		if c == nil {
			t.Errorf("LookupCost(%q) = nil", tt.model)
			continue
		}
		if c.InputPerMTok != tt.input {
			t.Errorf("LookupCost(%q).InputPerMTok = %v, want %v", tt.model, c.InputPerMTok, tt.input)
		}
	}

	for _, unknown := range []string{"", "mock", "meta-llama/llama-3-8b"} {
		if c := LookupCost(unknown); c != nil {
			t.Errorf("LookupCost(%q) = %+v, want nil", unknown, c)
		}
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}
	if got := c.Cost(2_000, 400); math.Abs(got-0.004) > 1e-12 {
		t.Errorf("Cost = %v, want 0.004", got)
	}
}
