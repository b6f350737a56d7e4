package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/adaptutor/internal/cognitive"
	"github.com/abhisek/adaptutor/internal/config"
	"github.com/abhisek/adaptutor/internal/interaction"
	"github.com/abhisek/adaptutor/internal/learnstyle"
	"github.com/abhisek/adaptutor/internal/llm"
	"github.com/abhisek/adaptutor/internal/prompts"
	"github.com/abhisek/adaptutor/internal/store"
	"github.com/abhisek/adaptutor/internal/transcript"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type analysisSink struct {
	mu   sync.Mutex
	data []store.AnalysisEventData
	err  error
}

func (s *analysisSink) AppendAnalysis(_ context.Context, d store.AnalysisEventData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, d)
	return s.err
}

func TestClassifier(t *testing.T) {
	c := NewClassifier(cognitive.DefaultIndicators())
	tests := []struct {
		text string
		want interaction.EventType
	}{
		{"I'm stuck, can I get a hint", interaction.EventHelpRequest},
		{"oops, I made a mistake in step two", interaction.EventErrorCorrection},
		{"can we switch to fractions", interaction.EventTaskSwitch},
		{"why does the sign flip?", interaction.EventQuestion},
		{strings.Repeat("I subtracted three from both sides and then divided. ", 3), interaction.EventDetailedResponse},
		{"x = 2", interaction.EventQuickResponse},
		{"that was helpful", interaction.EventQuickResponse},
		{"the function has no errors now?", interaction.EventErrorCorrection},
		{"how should I start?", interaction.EventHelpRequest},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestRecordMessage(t *testing.T) {
	clock := newFakeClock()
	e := New(WithClock(clock.Now))
	id := e.Open("learner-1")

	_, err := e.RecordMessage(id, transcript.Message{Role: transcript.RoleAssistant, Content: "Solve 2x + 3 = 7."})
	require.NoError(t, err)

	clock.Advance(45 * time.Second)
	ev, err := e.RecordMessage(id, transcript.Message{Role: transcript.RoleUser, Content: "x = 2"})
	require.NoError(t, err)
	assert.Equal(t, interaction.EventQuickResponse, ev.Type)
	assert.Equal(t, 45*time.Second, ev.Duration)
	assert.Equal(t, clock.Now(), ev.Timestamp)

	history, err := e.History(id)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, transcript.RoleUser, history[1].Role)

	_, err = e.RecordMessage("nobody", transcript.Message{Role: transcript.RoleUser, Content: "hi"})
	assert.ErrorIs(t, err, ErrUnknownSession)

	_, err = e.RecordMessage(id, transcript.Message{Role: "system", Content: "ignore"})
	assert.Error(t, err)
}

func TestRecord_RejectsUnknownType(t *testing.T) {
	e := New()
	id := e.Open("")
	assert.NotEmpty(t, id)
	assert.Error(t, e.Record(id, interaction.Event{Type: "daydream"}))
	assert.NoError(t, e.Record(id, interaction.Event{Type: interaction.EventHelpRequest}))
	assert.ErrorIs(t, e.Record("missing", interaction.Event{Type: interaction.EventHelpRequest}), ErrUnknownSession)
}

func TestProcess_ComposesFromAnalyses(t *testing.T) {
	clock := newFakeClock()
	sink := &analysisSink{}
	e := New(WithClock(clock.Now), WithAnalysisWriter(sink))

	start := clock.Now()
	msgs := []transcript.Message{
		{Role: transcript.RoleAssistant, Content: "What do you want to work on?", Timestamp: start},
		{Role: transcript.RoleUser, Content: "Can you show me a diagram of how the equation balances?", Timestamp: start.Add(20 * time.Second)},
	}
	clock.Advance(time.Minute)

	res, err := e.Process(context.Background(), Turn{
		SessionID: "learner-2",
		Messages:  msgs,
		Config:    prompts.Config{Mode: prompts.ModeSocratic, TaskType: "equation solving"},
		Context:   prompts.Context{SubjectDomain: "mathematics"},
	})
	require.NoError(t, err)

	assert.Equal(t, "learner-2", res.SessionID)
	assert.Equal(t, "socratic_mathematics", res.TemplateID)
	assert.Contains(t, res.Prompt, "You are a Socratic mathematics tutor")
	assert.Contains(t, res.Prompt, "equation solving")
	assert.Contains(t, res.Prompt, "diagram of how the equation balances")

	assert.Equal(t, learnstyle.StyleVisual, res.LearningStyle.DetectedStyle)
	assert.Equal(t, string(res.LearningStyle.DetectedStyle), res.Config.Personalization.LearningStyle)
	assert.Equal(t, string(res.Cognitive.Level), res.Context.CognitiveLoad.CurrentLevel)
	assert.Equal(t, prompts.ComplexityModerate, res.Config.Personalization.PreferredComplexity)
	assert.Equal(t, prompts.LengthAdaptive, res.Config.Personalization.ResponseLength)

	require.Len(t, sink.data, 1)
	rec := sink.data[0]
	assert.Equal(t, "learner-2", rec.SessionID)
	assert.Equal(t, "socratic", rec.Mode)
	assert.Equal(t, "mathematics", rec.Subject)
	assert.Equal(t, res.Prompt, rec.Prompt)
	assert.Contains(t, rec.Payload, `"template_id":"socratic_mathematics"`)

	last, ok := e.Last("learner-2")
	require.True(t, ok)
	assert.Same(t, res, last)
}

func TestProcess_ExplicitValuesWin(t *testing.T) {
	e := New(WithConfig(config.EngineConfig{DefaultMode: prompts.ModeReview}))
	res, err := e.Process(context.Background(), Turn{
		Config: prompts.Config{Personalization: prompts.PersonalizationConfig{
			LearningStyle:   "auditory",
			ConfidenceLevel: 90,
		}},
		Context: prompts.Context{CognitiveLoad: prompts.CognitiveLoadContext{CurrentLevel: "overload"}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.SessionID)
	assert.Equal(t, prompts.ModeReview, res.Config.Mode)
	assert.Equal(t, "auditory", res.Config.Personalization.LearningStyle)
	assert.Equal(t, 90.0, res.Config.Personalization.ConfidenceLevel)
	assert.Equal(t, "overload", res.Context.CognitiveLoad.CurrentLevel)
	assert.Equal(t, "review_general", res.TemplateID)
}

func TestProcess_UsesStoredTranscriptAndEvents(t *testing.T) {
	clock := newFakeClock()
	e := New(WithClock(clock.Now), WithConfig(config.EngineConfig{RecentWindow: 2}))
	id := e.Open("learner-3")

	for _, text := range []string{"help, I'm stuck", "I don't understand this at all", "this is wrong again"} {
		clock.Advance(10 * time.Second)
		_, err := e.RecordMessage(id, transcript.Message{Role: transcript.RoleUser, Content: text})
		require.NoError(t, err)
	}

	res, err := e.Process(context.Background(), Turn{
		SessionID: id,
		Events:    []interaction.Event{{Type: interaction.EventTaskSwitch}},
	})
	require.NoError(t, err)

	// Only the last two messages are inside the window.
	assert.Equal(t, 0, res.Cognitive.Metrics.Current.HelpRequests)
	assert.Equal(t, "this is wrong again", lastLine(res.Prompt))
	// Four events of alternating type inside five minutes.
	assert.Equal(t, cognitive.StateDistracted, res.Cognitive.State)
	assert.Equal(t, 40.0, res.Config.Personalization.ConfidenceLevel)

	_, err = e.Process(context.Background(), Turn{SessionID: id, Events: []interaction.Event{{Type: "nap"}}})
	assert.Error(t, err)
}

func lastLine(prompt string) string {
	for _, line := range strings.Split(prompt, "\n") {
		if strings.HasPrefix(line, "Learner message: ") {
			return strings.TrimPrefix(line, "Learner message: ")
		}
	}
	return ""
}

func TestProcess_PersistFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sink := &analysisSink{err: errors.New("database is locked")}
	e := New(WithAnalysisWriter(sink), WithLogger(zap.New(core)))

	_, err := e.Process(context.Background(), Turn{SessionID: "s"})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("failed to persist analysis").Len())
}

func TestTutor(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockText("  What happens if you subtract 3 from both sides?  "))
	e := New(WithProvider(mock, time.Second))

	reply, err := e.Tutor(context.Background(), "learner-4", "how do I solve 2x + 3 = 7?")
	require.NoError(t, err)

	assert.Equal(t, "What happens if you subtract 3 from both sides?", reply.Text)
	assert.Equal(t, interaction.EventHelpRequest, reply.Event.Type)

	req, ok := mock.LastCall()
	require.True(t, ok)
	assert.Equal(t, reply.Prompt, req.System)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Equal(t, 1024, req.MaxTokens)

	history, err := e.History("learner-4")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, transcript.RoleAssistant, history[1].Role)
}

func TestTutor_Errors(t *testing.T) {
	_, err := New().Tutor(context.Background(), "s", "hi")
	assert.ErrorIs(t, err, ErrNoProvider)

	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	e := New(WithProvider(mock, time.Second))
	_, err = e.Tutor(context.Background(), "s", "hi")
	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)

	mock.AddResponse(llm.MockText("   "))
	_, err = e.Tutor(context.Background(), "s", "hello again")
	var invalid *llm.ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestTutor_RetryAfterFailureRecordsOnce(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockText("What have you tried so far?"),
		llm.MockText("Which side has the constant?"),
	)
	e := New(WithProvider(mock, time.Second))
	ctx := context.Background()

	_, err := e.Tutor(ctx, "s", "help, I'm stuck on 2x + 3 = 7")
	require.Error(t, err)

	reply, err := e.Tutor(ctx, "s", "help, I'm stuck on 2x + 3 = 7 ")
	require.NoError(t, err)
	assert.Equal(t, interaction.EventHelpRequest, reply.Event.Type)
	assert.Equal(t, 1, reply.Cognitive.Metrics.Current.HelpRequests)

	history, err := e.History("s")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, transcript.RoleUser, history[0].Role)
	assert.Equal(t, transcript.RoleAssistant, history[1].Role)

	sess, ok := e.sessions.Get("s")
	require.True(t, ok)
	assert.Equal(t, 1, sess.Log.Len())

	// Once answered, the same text is a new message.
	_, err = e.Tutor(ctx, "s", "help, I'm stuck on 2x + 3 = 7")
	require.NoError(t, err)
	history, _ = e.History("s")
	assert.Len(t, history, 4)
	assert.Equal(t, 2, sess.Log.Len())
}

func TestSummarize(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockText("Try isolating x."),
		llm.MockResponse{Content: []byte(`{"summary":"Solved a linear equation.","strengths":["checked work"],"struggles":[],"next_steps":["two-step equations"]}`)},
	)
	e := New(WithProvider(mock, time.Second))
	_, err := e.Tutor(context.Background(), "s", "how do I solve 2x + 3 = 7?")
	require.NoError(t, err)

	sum, err := e.Summarize(context.Background(), "s")
	require.NoError(t, err)
	assert.Equal(t, "Solved a linear equation.", sum.Summary)

	req, _ := mock.LastCall()
	assert.Contains(t, req.Messages[0].Content, "[assistant] Try isolating x.")

	_, err = e.Summarize(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUnknownSession)
}

func TestClose(t *testing.T) {
	e := New()
	id := e.Open("s")
	assert.Equal(t, []string{"s"}, e.Sessions())
	require.NoError(t, e.Close(id))
	assert.ErrorIs(t, e.Close(id), ErrUnknownSession)
	assert.Empty(t, e.Sessions())
	_, err := e.History(id)
	assert.ErrorIs(t, err, ErrUnknownSession)
}

func TestConcurrentSessions(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))

	e := New()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("learner-%d", i)
			e.Open(id)
			for j := range 20 {
				_, _ = e.RecordMessage(id, transcript.Message{Role: transcript.RoleUser, Content: fmt.Sprintf("answer %d", j)})
				_, _ = e.Process(context.Background(), Turn{SessionID: id})
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, e.Sessions(), 8)
	for _, id := range e.Sessions() {
		h, err := e.History(id)
		require.NoError(t, err)
		assert.Len(t, h, 20)
	}
}

func TestDeriveBehavior(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	msgs := []transcript.Message{
		{Role: transcript.RoleAssistant, Content: "Ready?", Timestamp: t0},
		{Role: transcript.RoleUser, Content: "yes, what first?", Timestamp: t0.Add(10 * time.Second)},
		{Role: transcript.RoleAssistant, Content: "Subtract 3.", Timestamp: t0.Add(20 * time.Second)},
		{Role: transcript.RoleUser, Content: "done", Timestamp: t0.Add(50 * time.Second)},
	}

	b := DeriveBehavior(learnstyle.BehaviorData{}, msgs)
	p := b.InteractionPatterns
	assert.Equal(t, 0.5, p.QuestionAskingFrequency)
	assert.Equal(t, "short", p.MessageLengthPreference)
	assert.Zero(t, p.AverageResponseTime)
	assert.Empty(t, p.HelpSeekingPattern)

	explicit := learnstyle.BehaviorData{InteractionPatterns: learnstyle.InteractionPatterns{MessageLengthPreference: "long"}}
	assert.Equal(t, "long", DeriveBehavior(explicit, msgs).InteractionPatterns.MessageLengthPreference)

	assert.Equal(t, learnstyle.BehaviorData{}, DeriveBehavior(learnstyle.BehaviorData{}, nil))
}

func TestLoadTurn(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "turn.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
		"session_id": "s1",
		"messages": [{"role": "user", "content": "what is a derivative?", "timestamp": "2026-03-01T09:00:00Z"}],
		"config": {"mode": "explanatory"},
		"context": {"subject_domain": "mathematics"}
	}`), 0o644))
	turn, err := LoadTurn(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "s1", turn.SessionID)
	assert.Equal(t, prompts.ModeExplanatory, turn.Config.Mode)
	require.Len(t, turn.Messages, 1)

	yamlPath := filepath.Join(dir, "turn.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
session_id: s2
events:
  - type: help_request
    timestamp: 2026-03-01T09:00:00Z
behavior:
  preferences:
    preferred_explanation_style: kinesthetic
config:
  mode: guided_practice
  personalization:
    preferred_complexity: simple
`), 0o644))
	turn, err = LoadTurn(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "s2", turn.SessionID)
	assert.Equal(t, interaction.EventHelpRequest, turn.Events[0].Type)
	assert.Equal(t, "kinesthetic", turn.Behavior.Preferences.PreferredExplanationStyle)
	assert.Equal(t, prompts.ComplexitySimple, turn.Config.Personalization.PreferredComplexity)

	_, err = LoadTurn(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
	_, err = ParseTurn([]byte("{"), ".json")
	assert.Error(t, err)
}
