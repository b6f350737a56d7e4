package llm

import (
	"regexp"
	"strings"
)

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of one call.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1_000_000
}

// datedSuffix matches release suffixes like -20251001 or -2025-04-14.
var datedSuffix = regexp.MustCompile(`-(\d{8}|\d{4}-\d{2}-\d{2})$`)

// LookupCost returns pricing for a model ID as recorded in the event log,
// or nil if unknown. OpenRouter IDs ("openai/gpt-4.1-mini") and dated
// releases fall back to the base model's price.
func LookupCost(modelID string) *ModelCost {
	id := strings.ToLower(strings.TrimSpace(modelID))
	if _, rest, ok := strings.Cut(id, "/"); ok {
		id = rest
	}
	id = strings.ReplaceAll(id, ".", "-")
	for _, candidate := range []string{id, datedSuffix.ReplaceAllString(id, "")} {
		if c, ok := modelCosts[candidate]; ok {
			return &c
		}
	}
	return nil
}

// modelCosts lists the models adaptutor is configured with by default and
// their common alternatives. Keys use dashes in place of dots so
// OpenRouter spellings match. Prices as of 2026-02.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5":  {1, 5},
	"claude-sonnet-4":   {3, 15},
	"claude-sonnet-4-5": {3, 15},
	"claude-opus-4-5":   {5, 25},
	"claude-3-5-haiku":  {0.8, 4},

	"gpt-4-1":      {2, 8},
	"gpt-4-1-mini": {0.4, 1.6},
	"gpt-4-1-nano": {0.1, 0.4},
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-5":        {1.25, 10},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},

	"gemini-2-0-flash":      {0.1, 0.4},
	"gemini-2-5-flash":      {0.3, 2.5},
	"gemini-2-5-flash-lite": {0.1, 0.4},
	"gemini-2-5-pro":        {1.25, 10},
}
