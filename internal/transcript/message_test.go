package transcript

import (
	"testing"
	"time"
)

func TestClean_DropsMalformed(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	msgs := []Message{
		{Role: RoleUser, Content: "hi", Timestamp: now},
		{Role: "system", Content: "ignored", Timestamp: now},
		{Role: RoleAssistant, Content: "   ", Timestamp: now},
		{Role: RoleUser, Content: "no time"},
		{Role: RoleAssistant, Content: "hello", Timestamp: now.Add(time.Second)},
	}

	got := Clean(msgs)
	if len(got) != 2 {
		t.Fatalf("got %d messages, want 2", len(got))
	}
	if got[0].Content != "hi" || got[1].Content != "hello" {
		t.Errorf("unexpected order or content: %+v", got)
	}
}

func TestClean_Empty(t *testing.T) {
	if got := Clean(nil); len(got) != 0 {
		t.Errorf("Clean(nil) = %v, want empty", got)
	}
}

func TestLatestAndTail(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	msgs := []Message{
		{Role: RoleUser, Content: "one", Timestamp: now},
		{Role: RoleAssistant, Content: "two", Timestamp: now},
		{Role: RoleUser, Content: "three", Timestamp: now},
		{Role: RoleAssistant, Content: "four", Timestamp: now},
	}

	m, ok := Latest(msgs, RoleUser)
	if !ok || m.Content != "three" {
		t.Errorf("Latest(user) = %q, %v; want three, true", m.Content, ok)
	}
	if _, ok := Latest(nil, RoleUser); ok {
		t.Error("Latest on empty history should report false")
	}

	if got := Tail(msgs, 2); len(got) != 2 || got[0].Content != "three" {
		t.Errorf("Tail(2) = %+v", got)
	}
	if got := Tail(msgs, 0); len(got) != 4 {
		t.Errorf("Tail(0) len = %d, want 4", len(got))
	}
	if got := UserMessages(msgs); len(got) != 2 {
		t.Errorf("UserMessages len = %d, want 2", len(got))
	}
}
