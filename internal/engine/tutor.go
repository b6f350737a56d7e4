package engine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/adaptutor/internal/interaction"
	"github.com/abhisek/adaptutor/internal/llm"
	"github.com/abhisek/adaptutor/internal/transcript"
)

// Reply is a processed turn together with the tutor's answer.
type Reply struct {
	*Result
	Event interaction.Event `json:"event"`
	Text  string            `json:"reply"`
}

// Tutor records the learner's message, processes the turn and asks the
// language model for a reply using the composed instruction. The reply is
// appended to the transcript. When the model call fails the message stays
// pending, and a retry with the same text reuses it instead of recording
// it again.
func (e *Engine) Tutor(ctx context.Context, sessionID, text string) (*Reply, error) {
	if e.provider == nil {
		return nil, ErrNoProvider
	}
	id := e.Open(sessionID)

	ev, err := e.recordLearnerTurn(id, text)
	if err != nil {
		return nil, err
	}

	res, err := e.Process(ctx, Turn{SessionID: id, UserMessage: text})
	if err != nil {
		return nil, err
	}

	history, err := e.History(id)
	if err != nil {
		return nil, err
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	ctx = llm.WithSession(llm.WithPurpose(ctx, llm.PurposeTutorReply), id)

	resp, err := e.provider.Generate(ctx, llm.Request{
		System:      res.Prompt,
		Messages:    toLLMMessages(transcript.Tail(history, e.cfg.RecentWindow)),
		MaxTokens:   e.cfg.TutorMaxTokens,
		Temperature: e.cfg.TutorTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("tutor reply: %w", err)
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("empty tutor reply")}
	}
	if _, err := e.RecordMessage(id, transcript.Message{Role: transcript.RoleAssistant, Content: answer}); err != nil {
		return nil, err
	}

	e.logger.Debug("tutor replied",
		zap.String("session_id", id),
		zap.String("model", resp.Model),
		zap.Int("output_tokens", resp.Usage.OutputTokens))

	return &Reply{Result: res, Event: ev, Text: answer}, nil
}

// recordLearnerTurn records text as a learner message unless it repeats
// the pending message of a failed Tutor call. The message is pending until
// the next message is recorded.
func (e *Engine) recordLearnerTurn(id, text string) (interaction.Event, error) {
	st, _, err := e.lookup(id)
	if err != nil {
		return interaction.Event{}, err
	}
	text = strings.TrimSpace(text)

	st.mu.Lock()
	if p := st.pending; p != nil && p.text == text {
		st.mu.Unlock()
		e.logger.Debug("reusing unanswered message", zap.String("session_id", id))
		return p.event, nil
	}
	st.mu.Unlock()

	ev, err := e.RecordMessage(id, transcript.Message{Role: transcript.RoleUser, Content: text})
	if err != nil {
		return interaction.Event{}, err
	}
	st.mu.Lock()
	st.pending = &pendingTurn{text: text, event: ev}
	st.mu.Unlock()
	return ev, nil
}

// Summarize asks the language model for a recap of the session.
func (e *Engine) Summarize(ctx context.Context, sessionID string) (*llm.SessionSummary, error) {
	if e.provider == nil {
		return nil, ErrNoProvider
	}
	history, err := e.History(sessionID)
	if err != nil {
		return nil, err
	}

	in := llm.SummaryInput{Messages: toLLMMessages(history)}
	if last, ok := e.Last(sessionID); ok {
		in.LoadLevel = string(last.Cognitive.Level)
		in.LearningState = string(last.Cognitive.State)
		in.LearningStyle = string(last.LearningStyle.DetectedStyle)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	return llm.Summarize(llm.WithSession(ctx, sessionID), e.provider, in)
}

func toLLMMessages(msgs []transcript.Message) []llm.Message {
	out := make([]llm.Message, 0, len(msgs))
	for _, m := range msgs {
		role := llm.RoleUser
		if m.Role == transcript.RoleAssistant {
			role = llm.RoleAssistant
		}
		out = append(out, llm.Message{Role: role, Content: m.Content})
	}
	return out
}
