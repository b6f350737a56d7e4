// Package cognitive estimates a learner's cognitive load and learning
// state from their recent messages and interaction log.
package cognitive

import (
	"time"

	"github.com/abhisek/adaptutor/internal/interaction"
	"github.com/abhisek/adaptutor/internal/transcript"
)

// Confidence bounds for an analysis.
const (
	baseConfidence = 70
	maxConfidence  = 95
)

// Analyzer computes cognitive load analyses. It holds no per-session
// state; everything session-specific arrives through the Session argument.
type Analyzer struct {
	indicators Indicators
	rules      []StateRule
	loadTable  map[interaction.EventType]float64
	now        func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithIndicators replaces the text scorers.
func WithIndicators(ind Indicators) Option {
	return func(a *Analyzer) { a.indicators = ind }
}

// WithLoadTable replaces the per-event estimated load table.
func WithLoadTable(table map[interaction.EventType]float64) Option {
	return func(a *Analyzer) { a.loadTable = table }
}

// WithClock sets the analysis clock.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// NewAnalyzer creates an Analyzer with the default indicators and tables.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		indicators: DefaultIndicators(),
		loadTable:  DefaultLoadTable(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.rules = DefaultStateRules(a.indicators)
	return a
}

// Analyze classifies the learner's current load and state. A nil session
// is treated as an empty one.
func (a *Analyzer) Analyze(sess *interaction.Session, recent []transcript.Message) *Analysis {
	now := a.now()
	if sess == nil {
		sess = interaction.NewSession("", now)
	}
	msgs := transcript.Clean(recent)

	metrics := Metrics{
		Current: a.computeCurrent(msgs, sess.Log, now),
		Session: a.computeSession(sess, now),
	}

	score := Score(metrics)
	level := Classify(score)

	in := &StateInput{Current: metrics.Current}
	if m, ok := transcript.Latest(msgs, transcript.RoleUser); ok {
		in.LatestUserMessage = m.Content
	}
	state := RunStateRules(a.rules, in)

	return &Analysis{
		SessionID:       sess.ID,
		Level:           level,
		State:           state,
		Score:           score,
		Metrics:         metrics,
		Recommendations: Recommend(level, state),
		Confidence:      confidence(metrics.Session, sess.Log.Len()),
		AnalyzedAt:      now,
	}
}

// confidence grows with the amount of evidence behind an analysis.
func confidence(s SessionMetrics, logLen int) int {
	c := baseConfidence
	if s.SessionDuration > 10 {
		c += 10
	}
	if s.InteractionFrequency > 1 {
		c += 10
	}
	if logLen > 20 {
		c += 10
	}
	if c > maxConfidence {
		c = maxConfidence
	}
	return c
}
