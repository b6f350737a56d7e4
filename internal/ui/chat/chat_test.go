package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/adaptutor/internal/engine"
	"github.com/abhisek/adaptutor/internal/llm"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(keyPress(r))
		m = next.(Model)
	}
	return m
}

func newModel(t *testing.T, responses ...llm.MockResponse) Model {
	t.Helper()
	eng := engine.New(engine.WithProvider(llm.NewMockProvider(responses...), time.Second))
	m := New(context.Background(), eng, "learner")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func TestSendAndReply(t *testing.T) {
	m := newModel(t, llm.MockText("What do you get if you subtract 3 from both sides?"))
	m = typeText(t, m, "how do I solve 2x + 3 = 7?")

	next, cmd := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.pending)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.render(), "thinking")

	msg := cmd()
	reply, ok := msg.(replyMsg)
	require.True(t, ok)
	require.NoError(t, reply.err)

	next, _ = m.Update(msg)
	m = next.(Model)
	assert.False(t, m.pending)
	require.Len(t, m.entries, 2)
	assert.True(t, m.entries[0].learner)
	assert.Equal(t, "What do you get if you subtract 3 from both sides?", m.entries[1].text)
	assert.NotEmpty(t, m.status.Load)
	assert.NotEmpty(t, m.status.Style)
	assert.Contains(t, m.transcript(), "subtract 3")
}

func TestEnterIgnoresBlankInput(t *testing.T) {
	m := newModel(t)
	m = typeText(t, m, "   ")
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
}

func TestTypingBlockedWhilePending(t *testing.T) {
	m := newModel(t, llm.MockText("ok"))
	m = typeText(t, m, "hi")
	next, _ := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)

	m = typeText(t, m, "more")
	assert.Empty(t, m.input.Value())

	_, cmd := m.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
}

func TestReplyError(t *testing.T) {
	m := newModel(t)
	next, _ := m.Update(replyMsg{err: errors.New("provider down")})
	m = next.(Model)
	assert.Contains(t, m.statusLine(), "provider down")
	assert.False(t, m.input.Disabled())
}

func TestSummary(t *testing.T) {
	m := newModel(t,
		llm.MockText("Try isolating x."),
		llm.MockResponse{Content: []byte(`{"summary":"Worked on linear equations.","strengths":["asks questions"],"struggles":[],"next_steps":["two-step equations"]}`)},
	)

	// Nothing to summarize yet.
	_, cmd := m.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	assert.Nil(t, cmd)

	m = typeText(t, m, "how do I solve for x?")
	next, cmd := m.Update(specialKey(tea.KeyEnter))
	m = next.(Model)
	next, _ = m.Update(cmd())
	m = next.(Model)

	next, cmd = m.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	m = next.(Model)
	require.NotNil(t, cmd)
	next, _ = m.Update(cmd())
	m = next.(Model)

	require.NotNil(t, m.Summary())
	assert.Equal(t, "Worked on linear equations.", m.Summary().Summary)
	assert.Contains(t, m.transcript(), "two-step equations")
}

func TestQuitKeys(t *testing.T) {
	m := newModel(t)
	for _, k := range []tea.KeyPressMsg{specialKey(tea.KeyEscape), {Code: 'c', Mod: tea.ModCtrl}} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
	}
}

func TestTooSmall(t *testing.T) {
	m := newModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, next.(Model).render(), "Terminal too small")
}

func TestSessionOpened(t *testing.T) {
	eng := engine.New()
	m := New(context.Background(), eng, "")
	assert.NotEmpty(t, m.SessionID())
	assert.True(t, eng.Has(m.SessionID()))
}
