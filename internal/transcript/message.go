// Package transcript holds the chat history supplied by the conversation
// layer. Messages are read-only inputs to the analyzers.
package transcript

import (
	"strings"
	"time"
)

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat turn.
type Message struct {
	Role      Role      `json:"role" yaml:"role"`
	Content   string    `json:"content" yaml:"content"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Valid reports whether the message has a known role, content and a timestamp.
func (m Message) Valid() bool {
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return false
	}
	if strings.TrimSpace(m.Content) == "" {
		return false
	}
	return !m.Timestamp.IsZero()
}

// Clean drops malformed entries, preserving order.
func Clean(msgs []Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Valid() {
			out = append(out, m)
		}
	}
	return out
}

// UserMessages returns the messages sent by the learner.
func UserMessages(msgs []Message) []Message {
	return byRole(msgs, RoleUser)
}

// Contents returns the text of each message.
func Contents(msgs []Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Content
	}
	return out
}

// Latest returns the most recent message with the given role.
func Latest(msgs []Message, role Role) (Message, bool) {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == role {
			return msgs[i], true
		}
	}
	return Message{}, false
}

// Tail returns up to the last n messages. n <= 0 returns all of them.
func Tail(msgs []Message, n int) []Message {
	if n <= 0 || n >= len(msgs) {
		return msgs
	}
	return msgs[len(msgs)-n:]
}

func byRole(msgs []Message, role Role) []Message {
	var out []Message
	for _, m := range msgs {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out
}
