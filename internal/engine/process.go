package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/adaptutor/internal/cognitive"
	"github.com/abhisek/adaptutor/internal/interaction"
	"github.com/abhisek/adaptutor/internal/learnstyle"
	"github.com/abhisek/adaptutor/internal/prompts"
	"github.com/abhisek/adaptutor/internal/store"
	"github.com/abhisek/adaptutor/internal/transcript"
)

// Turn is everything needed to analyze one learner turn and compose the
// next instruction. Empty fields fall back to the session's state and the
// engine defaults.
type Turn struct {
	SessionID string `json:"session_id" yaml:"session_id"`

	// Messages replaces the stored transcript for this analysis when set.
	Messages []transcript.Message `json:"messages,omitempty" yaml:"messages,omitempty"`

	// Events are recorded into the session before analysis.
	Events []interaction.Event `json:"events,omitempty" yaml:"events,omitempty"`

	Behavior    learnstyle.BehaviorData `json:"behavior" yaml:"behavior"`
	Config      prompts.Config          `json:"config" yaml:"config"`
	Context     prompts.Context         `json:"context" yaml:"context"`
	UserMessage string                  `json:"user_message,omitempty" yaml:"user_message,omitempty"`
}

// Result is the outcome of processing a turn.
type Result struct {
	SessionID     string              `json:"session_id"`
	Cognitive     *cognitive.Analysis `json:"cognitive"`
	LearningStyle *learnstyle.Profile `json:"learning_style"`
	TemplateID    string              `json:"template_id"`
	Config        prompts.Config      `json:"config"`
	Context       prompts.Context     `json:"context"`
	Prompt        string              `json:"prompt"`
}

// RecordMessage appends a message to the session transcript. Learner
// messages are also recorded as interaction events; the inferred event is
// returned. A zero timestamp is stamped with the engine clock.
func (e *Engine) RecordMessage(sessionID string, msg transcript.Message) (interaction.Event, error) {
	st, sess, err := e.lookup(sessionID)
	if err != nil {
		return interaction.Event{}, err
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = e.now()
	}
	if !msg.Valid() {
		return interaction.Event{}, fmt.Errorf("invalid message: role %q with %d characters", msg.Role, len(msg.Content))
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.history = append(st.history, msg)
	st.pending = nil
	if msg.Role == transcript.RoleAssistant {
		st.lastAssistant = msg.Timestamp
		return interaction.Event{}, nil
	}

	ev := e.classify.eventFor(msg, st.lastAssistant)
	sess.Record(ev)
	e.logger.Debug("recorded interaction",
		zap.String("session_id", sessionID),
		zap.String("type", string(ev.Type)),
		zap.Duration("duration", ev.Duration))
	return ev, nil
}

// Record appends an explicit interaction event to the session log.
func (e *Engine) Record(sessionID string, ev interaction.Event) error {
	if !ev.Type.Valid() {
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	st, sess, err := e.lookup(sessionID)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	sess.Record(ev)
	return nil
}

// Process analyzes the turn and composes the tutoring instruction. The
// session is opened if needed. Persistence failures are logged and do not
// fail the turn.
func (e *Engine) Process(ctx context.Context, t Turn) (*Result, error) {
	id := e.Open(t.SessionID)
	st, sess, err := e.lookup(id)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	for _, ev := range t.Events {
		if !ev.Type.Valid() {
			return nil, fmt.Errorf("unknown event type %q", ev.Type)
		}
		sess.Record(ev)
	}

	msgs := t.Messages
	if len(msgs) == 0 {
		msgs = st.history
	}
	recent := transcript.Tail(transcript.Clean(msgs), e.cfg.RecentWindow)

	load := e.cognitive.Analyze(sess, recent)
	style := e.styles.Analyze(DeriveBehavior(t.Behavior, recent), recent)

	cfg, pctx := e.personalize(t, load, style)
	userMsg := t.UserMessage
	if userMsg == "" {
		if m, ok := transcript.Latest(recent, transcript.RoleUser); ok {
			userMsg = m.Content
		}
	}

	res := &Result{
		SessionID:     id,
		Cognitive:     load,
		LearningStyle: style,
		TemplateID:    e.composer.Store().Resolve(cfg.Mode, pctx.SubjectDomain).ID,
		Config:        cfg,
		Context:       pctx,
		Prompt:        e.composer.Generate(cfg, pctx, userMsg),
	}
	st.last = res

	e.logger.Info("turn processed",
		zap.String("session_id", id),
		zap.String("load_level", string(load.Level)),
		zap.Int("load_score", load.Score),
		zap.String("learning_state", string(load.State)),
		zap.String("learning_style", string(style.DetectedStyle)),
		zap.String("template", res.TemplateID))

	e.persist(ctx, res)
	return res, nil
}

// personalize fills the unset parts of the turn's configuration from the
// analyses and the engine defaults.
func (e *Engine) personalize(t Turn, load *cognitive.Analysis, style *learnstyle.Profile) (prompts.Config, prompts.Context) {
	cfg, pctx := t.Config, t.Context

	if cfg.Mode == "" {
		cfg.Mode = e.cfg.DefaultMode
	}
	p := &cfg.Personalization
	if p.LearningStyle == "" {
		p.LearningStyle = string(style.DetectedStyle)
	}
	if p.ConfidenceLevel == 0 {
		p.ConfidenceLevel = stateConfidence(load.State)
	}
	if p.PreferredComplexity == "" {
		p.PreferredComplexity = e.cfg.Complexity
	}
	if p.ResponseLength == "" {
		p.ResponseLength = e.cfg.ResponseLength
	}

	if pctx.SubjectDomain == "" {
		pctx.SubjectDomain = e.cfg.DefaultSubject
	}
	if pctx.SessionDuration == 0 {
		pctx.SessionDuration = load.Metrics.Session.SessionDuration
	}
	if pctx.CognitiveLoad.CurrentLevel == "" {
		pctx.CognitiveLoad.CurrentLevel = string(load.Level)
	}
	return cfg, pctx
}

// stateConfidence estimates learner confidence on the 0-100 scale from
// the inferred learning state.
func stateConfidence(s cognitive.State) float64 {
	switch s {
	case cognitive.StateConfident:
		return 85
	case cognitive.StateMotivated:
		return 70
	case cognitive.StateFocused:
		return 50
	case cognitive.StateDistracted:
		return 40
	default:
		return 20
	}
}

func (e *Engine) persist(ctx context.Context, res *Result) {
	if e.analyses == nil {
		return
	}
	payload, err := json.Marshal(res)
	if err != nil {
		e.logger.Warn("failed to encode analysis", zap.Error(err))
		return
	}
	err = e.analyses.AppendAnalysis(ctx, store.AnalysisEventData{
		SessionID:       res.SessionID,
		LoadLevel:       string(res.Cognitive.Level),
		LearningState:   string(res.Cognitive.State),
		LoadScore:       res.Cognitive.Score,
		LoadConfidence:  res.Cognitive.Confidence,
		DetectedStyle:   string(res.LearningStyle.DetectedStyle),
		StyleConfidence: res.LearningStyle.ConfidenceScore,
		Mode:            res.Config.Mode,
		Subject:         strings.ToLower(res.Context.SubjectDomain),
		Prompt:          res.Prompt,
		Payload:         string(payload),
	})
	if err != nil {
		e.logger.Warn("failed to persist analysis", zap.String("session_id", res.SessionID), zap.Error(err))
	}
}
