package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// DefaultMaxTokens is used when a Request leaves MaxTokens unset.
const DefaultMaxTokens = 1024

// Provider generates one model reply. Tutor replies come back as plain
// text; requests with a Schema come back as JSON checked against it.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model, after short-name expansion.
	ModelID() string
}

// Request is one call: the composed tutoring instruction plus the
// conversation so far.
type Request struct {
	System   string
	Messages []Message // oldest first

	// Schema asks for structured JSON output. Nil means free text.
	Schema *Schema

	MaxTokens   int
	Temperature float64 // 0 leaves the provider default
}

// Message is one conversation turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema for structured output.
type Schema struct {
	Name        string // kebab-case, e.g. "session-summary"
	Description string
	Definition  map[string]any
}

// Response is a model reply.
type Response struct {
	// Content is schema-checked JSON when a Schema was requested,
	// otherwise the reply text.
	Content json.RawMessage
	Usage   Usage

	// Model is the model that served the request, which may be a dated
	// release of the configured one.
	Model string

	// StopReason is "end", "max_tokens" or "refusal".
	StopReason string
}

// Text returns Content as a string. It is safe on a nil Response.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Content)
}

// Usage is the token count of one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

var errNoMessages = errors.New("request has no user message")

// turns prepares req.Messages for APIs that require strictly alternating
// roles starting with the user: blank messages are dropped, leading
// assistant messages are skipped and consecutive messages from the same
// role are joined.
func (req Request) turns() ([]Message, error) {
	out := make([]Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		text := strings.TrimSpace(m.Content)
		if text == "" {
			continue
		}
		if len(out) == 0 && m.Role != RoleUser {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Role == m.Role {
			out[n-1].Content += "\n\n" + text
			continue
		}
		out = append(out, Message{Role: m.Role, Content: text})
	}
	if len(out) == 0 {
		return nil, errNoMessages
	}
	return out, nil
}

func (req Request) maxTokens() int {
	if req.MaxTokens <= 0 {
		return DefaultMaxTokens
	}
	return req.MaxTokens
}

// resolveModel expands a short model name. Unknown names are taken to be
// full provider model IDs.
func resolveModel(name string, models map[string]string) string {
	name = strings.TrimSpace(name)
	if id, ok := models[strings.ToLower(name)]; ok {
		return id
	}
	return name
}
