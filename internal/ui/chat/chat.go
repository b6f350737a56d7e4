// Package chat is the interactive terminal tutoring session.
package chat

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adaptutor/internal/engine"
	"github.com/abhisek/adaptutor/internal/llm"
	"github.com/abhisek/adaptutor/internal/ui/components"
	"github.com/abhisek/adaptutor/internal/ui/layout"
	"github.com/abhisek/adaptutor/internal/ui/report"
	"github.com/abhisek/adaptutor/internal/ui/theme"
)

// replyMsg carries the tutor's answer back into the update loop.
type replyMsg struct {
	reply *engine.Reply
	err   error
}

// summaryMsg carries the session summary back into the update loop.
type summaryMsg struct {
	summary *llm.SessionSummary
	err     error
}

type entry struct {
	learner bool
	text    string
}

// Model is the chat screen. It owns one engine session.
type Model struct {
	ctx     context.Context
	engine  *engine.Engine
	session string

	input    components.TextInput
	viewport viewport.Model
	entries  []entry

	status  layout.Status
	pending bool
	err     error
	summary *llm.SessionSummary

	width, height int
}

// New creates a chat model bound to an engine session, opening it if
// needed.
func New(ctx context.Context, eng *engine.Engine, sessionID string) Model {
	id := eng.Open(sessionID)
	return Model{
		ctx:      ctx,
		engine:   eng,
		session:  id,
		input:    components.NewTextInput("Ask a question…", 0),
		viewport: viewport.New(),
	}
}

// SessionID returns the session the model drives.
func (m Model) SessionID() string { return m.session }

// Summary returns the summary fetched during the session, if any.
func (m Model) Summary() *llm.SessionSummary { return m.summary }

func (m Model) Init() tea.Cmd {
	return m.input.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case replyMsg:
		m.pending = false
		m.input.SetDisabled(false)
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.entries = append(m.entries, entry{text: msg.reply.Text})
		if c := msg.reply.Cognitive; c != nil {
			m.status.Load = c.Level
			m.status.State = c.State
		}
		if s := msg.reply.LearningStyle; s != nil {
			m.status.Style = string(s.DetectedStyle)
		}
		m.refresh()
		return m, nil

	case summaryMsg:
		m.pending = false
		m.input.SetDisabled(false)
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.summary = msg.summary
		m.refresh()
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.send()
		case "ctrl+s":
			return m.summarize()
		case "pgup", "pgdown", "up", "down":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) send() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}
	text := m.input.Take()
	if text == "" {
		return m, nil
	}
	m.entries = append(m.entries, entry{learner: true, text: text})
	m.pending = true
	m.input.SetDisabled(true)
	m.refresh()

	ctx, eng, id := m.ctx, m.engine, m.session
	return m, func() tea.Msg {
		reply, err := eng.Tutor(ctx, id, text)
		return replyMsg{reply: reply, err: err}
	}
}

func (m Model) summarize() (tea.Model, tea.Cmd) {
	if m.pending || len(m.entries) == 0 {
		return m, nil
	}
	m.pending = true
	m.input.SetDisabled(true)

	ctx, eng, id := m.ctx, m.engine, m.session
	return m, func() tea.Msg {
		s, err := eng.Summarize(ctx, id)
		return summaryMsg{summary: s, err: err}
	}
}

func (m *Model) resize() {
	m.viewport.SetWidth(m.width)
	m.viewport.SetHeight(m.transcriptHeight())
	m.input.SetWidth(m.width - 4)
	m.refresh()
}

// frame is the chrome for the current size and learner status.
func (m Model) frame() layout.Frame {
	return layout.Frame{
		Title:  "Tutor",
		Status: m.status,
		Hints: []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Ctrl+S", Description: "Summary"},
			{Key: "PgUp/PgDn", Description: "Scroll"},
			{Key: "Esc", Description: "Quit"},
		},
		Width:  m.width,
		Height: m.height,
	}
}

// transcriptHeight leaves room for the status line, a spacer and the input.
func (m Model) transcriptHeight() int {
	return max(m.frame().BodyHeight()-3, 1)
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.transcript())
	m.viewport.GotoBottom()
}

func (m Model) transcript() string {
	w := m.width
	if w <= 0 {
		w = layout.MinWidth
	}
	body := theme.Body.Width(w - 2)

	var b strings.Builder
	for _, e := range m.entries {
		if e.learner {
			b.WriteString(theme.Learner.Render("You") + "\n")
		} else {
			b.WriteString(theme.Tutor.Render("Tutor") + "\n")
		}
		b.WriteString(body.Render(e.text) + "\n\n")
	}
	if m.summary != nil {
		b.WriteString(report.Summary(m.summary, w-2) + "\n")
	}
	return b.String()
}

func (m Model) statusLine() string {
	switch {
	case m.pending:
		return theme.Hint.Render("thinking…")
	case m.err != nil:
		return theme.ErrorText.Render("error: " + m.err.Error())
	}
	return theme.Hint.Render(fmt.Sprintf("session %s · %d messages", m.session, len(m.entries)))
}

// render draws the whole screen.
func (m Model) render() string {
	return m.frame().Render(lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.statusLine(),
		"",
		m.input.View(),
	))
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// Run starts the chat program and blocks until the learner quits. It
// returns the final model state.
func Run(ctx context.Context, eng *engine.Engine, sessionID string) (Model, error) {
	p := tea.NewProgram(New(ctx, eng, sessionID), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return Model{}, fmt.Errorf("run chat: %w", err)
	}
	return final.(Model), nil
}
