// Package engine ties the analyzers and the prompt composer together for
// callers that hold a conversation: the CLI, the chat UI and the HTTP
// server. It keeps one session and transcript per learner, records
// inferred events, runs both analyses, composes the tutoring instruction
// and optionally asks a language model for the reply.
package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/adaptutor/internal/cognitive"
	"github.com/abhisek/adaptutor/internal/config"
	"github.com/abhisek/adaptutor/internal/interaction"
	"github.com/abhisek/adaptutor/internal/learnstyle"
	"github.com/abhisek/adaptutor/internal/llm"
	"github.com/abhisek/adaptutor/internal/prompts"
	"github.com/abhisek/adaptutor/internal/store"
	"github.com/abhisek/adaptutor/internal/transcript"
)

var (
	// ErrUnknownSession is returned for operations on a session that was
	// never opened or has been closed.
	ErrUnknownSession = errors.New("unknown session")

	// ErrNoProvider is returned by Tutor and Summarize when the engine has
	// no language model configured.
	ErrNoProvider = errors.New("no language model provider configured")
)

// Engine is safe for concurrent use. Calls for the same session are
// serialized.
type Engine struct {
	sessions  *interaction.Registry
	cognitive *cognitive.Analyzer
	styles    *learnstyle.Analyzer
	composer  *prompts.Composer
	classify  *Classifier
	provider  llm.Provider
	analyses  store.AnalysisWriter
	cfg       config.EngineConfig
	timeout   time.Duration
	logger    *zap.Logger
	now       func() time.Time

	mu     sync.Mutex
	states map[string]*sessionState
}

// sessionState is the per-learner conversation the engine keeps beside the
// interaction log.
type sessionState struct {
	mu            sync.Mutex
	history       []transcript.Message
	lastAssistant time.Time
	last          *Result

	// pending is the learner message of a Tutor call that got no reply.
	pending *pendingTurn
}

type pendingTurn struct {
	text  string
	event interaction.Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the engine tuning. Zero fields keep their defaults.
func WithConfig(cfg config.EngineConfig) Option {
	return func(e *Engine) { e.cfg = mergeConfig(e.cfg, cfg) }
}

// WithComposer replaces the composer built from the embedded templates.
func WithComposer(c *prompts.Composer) Option {
	return func(e *Engine) { e.composer = c }
}

// WithProvider enables Tutor and Summarize.
func WithProvider(p llm.Provider, timeout time.Duration) Option {
	return func(e *Engine) {
		e.provider = p
		e.timeout = timeout
	}
}

// WithAnalysisWriter persists every processed turn.
func WithAnalysisWriter(w store.AnalysisWriter) Option {
	return func(e *Engine) { e.analyses = w }
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock injects the time source used for sessions and analyses.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:    config.DefaultConfig().Engine,
		logger: zap.NewNop(),
		now:    time.Now,
		states: make(map[string]*sessionState),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.composer == nil {
		e.composer = prompts.NewComposer(nil)
	}
	e.sessions = interaction.NewRegistryWithClock(e.now)
	e.cognitive = cognitive.NewAnalyzer(cognitive.WithClock(e.now))
	e.classify = NewClassifier(cognitive.DefaultIndicators())
	e.styles = learnstyle.NewAnalyzer(
		learnstyle.WithMixedGapThreshold(e.cfg.MixedGapThreshold),
		learnstyle.WithMixedBlendWeight(e.cfg.MixedBlendWeight),
	)
	return e
}

// Composer returns the engine's prompt composer.
func (e *Engine) Composer() *prompts.Composer { return e.composer }

// HasProvider reports whether Tutor can be used.
func (e *Engine) HasProvider() bool { return e.provider != nil }

// Open starts a session. An empty id gets a generated one. Opening an
// existing id returns it unchanged.
func (e *Engine) Open(id string) string {
	if id == "" {
		id = uuid.NewString()
	}
	e.sessions.Open(id)

	e.mu.Lock()
	if _, ok := e.states[id]; !ok {
		e.states[id] = &sessionState{}
		e.logger.Debug("session opened", zap.String("session_id", id))
	}
	e.mu.Unlock()
	return id
}

// Close forgets a session and its transcript.
func (e *Engine) Close(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.states[id]; !ok {
		return ErrUnknownSession
	}
	delete(e.states, id)
	e.sessions.Close(id)
	e.logger.Debug("session closed", zap.String("session_id", id))
	return nil
}

// Has reports whether the session is open.
func (e *Engine) Has(id string) bool {
	_, _, err := e.lookup(id)
	return err == nil
}

// Sessions returns the open session IDs in sorted order.
func (e *Engine) Sessions() []string {
	return e.sessions.IDs()
}

// History returns a copy of the session transcript.
func (e *Engine) History(id string) ([]transcript.Message, error) {
	st, _, err := e.lookup(id)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]transcript.Message, len(st.history))
	copy(out, st.history)
	return out, nil
}

// Last returns the most recent processed result for the session, if any.
func (e *Engine) Last(id string) (*Result, bool) {
	st, _, err := e.lookup(id)
	if err != nil {
		return nil, false
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.last, st.last != nil
}

func (e *Engine) lookup(id string) (*sessionState, *interaction.Session, error) {
	e.mu.Lock()
	st, ok := e.states[id]
	e.mu.Unlock()
	if !ok {
		return nil, nil, ErrUnknownSession
	}
	sess, ok := e.sessions.Get(id)
	if !ok {
		return nil, nil, ErrUnknownSession
	}
	return st, sess, nil
}

func mergeConfig(base, over config.EngineConfig) config.EngineConfig {
	if over.RecentWindow > 0 {
		base.RecentWindow = over.RecentWindow
	}
	if over.DefaultMode != "" {
		base.DefaultMode = over.DefaultMode
	}
	if over.DefaultSubject != "" {
		base.DefaultSubject = over.DefaultSubject
	}
	if over.Complexity != "" {
		base.Complexity = over.Complexity
	}
	if over.ResponseLength != "" {
		base.ResponseLength = over.ResponseLength
	}
	if over.MixedGapThreshold > 0 {
		base.MixedGapThreshold = over.MixedGapThreshold
	}
	if over.MixedBlendWeight > 0 {
		base.MixedBlendWeight = over.MixedBlendWeight
	}
	if over.TutorMaxTokens > 0 {
		base.TutorMaxTokens = over.TutorMaxTokens
	}
	if over.TutorTemperature > 0 {
		base.TutorTemperature = over.TutorTemperature
	}
	return base
}
