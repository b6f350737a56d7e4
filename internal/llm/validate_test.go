package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// checkpointSchema describes a comprehension check a tutor might request.
func checkpointSchema() *Schema {
	return &Schema{
		Name:        "checkpoint",
		Description: "A short comprehension check",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":   map[string]any{"type": "string", "minLength": 1},
				"difficulty": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				"style":      map[string]any{"type": "string", "enum": []any{"visual", "auditory", "kinesthetic", "reading"}},
				"hints": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"question", "difficulty"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"complete", `{"question":"What is 3/4 of 8?","difficulty":2,"style":"visual","hints":["draw 8 dots"]}`, true},
		{"optional fields omitted", `{"question":"Name a prime.","difficulty":1}`, true},
		{"missing required", `{"question":"Name a prime."}`, false},
		{"wrong type", `{"question":"Name a prime.","difficulty":"easy"}`, false},
		{"out of range", `{"question":"Name a prime.","difficulty":9}`, false},
		{"unknown enum", `{"question":"q","difficulty":1,"style":"olfactory"}`, false},
		{"bad array item", `{"question":"q","difficulty":1,"hints":[1,2]}`, false},
		{"malformed", `{question}`, false},
		{"empty", `  `, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(checkpointSchema(), json.RawMessage(tt.raw))
			if tt.valid {
				if err != nil {
					t.Fatalf("expected valid, got: %v", err)
				}
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
			}
		})
	}

	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should accept anything, got %v", err)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := map[string]string{
		"```json\n{\"a\":1}\n```":   `{"a":1}`,
		"```\n[1,2]\n```":           `[1,2]`,
		"  ```{\"a\":1}```  ":       `{"a":1}`,
		`{"a":1}`:                   `{"a":1}`,
		"```json\n{\"a\":1}":        "```json\n{\"a\":1}",
		"Here you go: {\"a\":1}":    "Here you go: {\"a\":1}",
		"``````":                    "",
	}
	for in, want := range tests {
		if got := string(stripCodeFence(json.RawMessage(in))); got != want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecodeResponse(t *testing.T) {
	var out struct {
		Question   string   `json:"question"`
		Difficulty int      `json:"difficulty"`
		Hints      []string `json:"hints"`
	}
	raw := json.RawMessage("```json\n{\"question\":\"Simplify 6/8.\",\"difficulty\":2,\"hints\":[\"common factor\"]}\n```")
	if err := decodeResponse(checkpointSchema(), raw, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Question != "Simplify 6/8." || out.Difficulty != 2 || len(out.Hints) != 1 {
		t.Errorf("decoded = %+v", out)
	}

	var inv *ErrInvalidResponse
	if err := decodeResponse(checkpointSchema(), json.RawMessage(`{"difficulty":2}`), &out); !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestSchemaCacheKeyedByDefinition(t *testing.T) {
	loose := &Schema{Name: "shared", Definition: map[string]any{"type": "object"}}
	strict := &Schema{Name: "shared", Definition: map[string]any{
		"type":     "object",
		"required": []any{"id"},
	}}

	raw := json.RawMessage(`{}`)
	if err := validateResponse(loose, raw); err != nil {
		t.Fatalf("loose schema rejected {}: %v", err)
	}
	if err := validateResponse(strict, raw); err == nil {
		t.Fatal("strict schema with the same name reused the loose compilation")
	}
}
