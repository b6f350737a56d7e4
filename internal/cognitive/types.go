package cognitive

import "time"

// Level is the classified cognitive load.
type Level string

const (
	LevelLow      Level = "low"
	LevelOptimal  Level = "optimal"
	LevelHigh     Level = "high"
	LevelOverload Level = "overload"
)

// AllLevels returns the load levels from lightest to heaviest.
func AllLevels() []Level {
	return []Level{LevelLow, LevelOptimal, LevelHigh, LevelOverload}
}

// State is the learner's inferred affective/learning state.
type State string

const (
	StateConfused   State = "confused"
	StateFrustrated State = "frustrated"
	StateConfident  State = "confident"
	StateMotivated  State = "motivated"
	StateDistracted State = "distracted"
	StateFocused    State = "focused"
)

// CurrentMetrics describe the learner's recent behaviour.
type CurrentMetrics struct {
	// ResponseDelay is the mean seconds between an assistant message and
	// the learner's reply.
	ResponseDelay float64 `json:"response_delay"`

	// ErrorRate is the fraction of learner messages signalling a mistake.
	ErrorRate float64 `json:"error_rate"`

	HelpRequests int `json:"help_requests"`

	// TaskSwitchingFrequency is the fraction of adjacent interactions in
	// the last five minutes that changed type.
	TaskSwitchingFrequency float64 `json:"task_switching_frequency"`

	// MessageComplexity is in [0, 1].
	MessageComplexity float64 `json:"message_complexity"`

	ConfusionIndicators int `json:"confusion_indicators"`

	// EngagementLevel is in [0, 1].
	EngagementLevel float64 `json:"engagement_level"`
}

// SessionMetrics summarise the whole session log.
type SessionMetrics struct {
	// TotalCognitiveLoad is the mean estimated load on a 0-100 scale.
	TotalCognitiveLoad float64         `json:"total_cognitive_load"`
	PeakLoadPoints     []time.Time     `json:"peak_load_points"`
	RecoveryPeriods    []time.Duration `json:"recovery_periods"`

	// OverallEfficiency is on a 0-100 scale.
	OverallEfficiency float64 `json:"overall_efficiency"`

	// SessionDuration is in minutes.
	SessionDuration float64 `json:"session_duration"`

	// InteractionFrequency is interactions per minute.
	InteractionFrequency float64 `json:"interaction_frequency"`
}

// Metrics bundles current and session metrics.
type Metrics struct {
	Current CurrentMetrics `json:"current"`
	Session SessionMetrics `json:"session"`
}

// Recommendations are advice strings grouped by kind.
type Recommendations struct {
	ImmediateActions     []string `json:"immediate_actions"`
	TeachingAdjustments  []string `json:"teaching_adjustments"`
	ContentModifications []string `json:"content_modifications"`
	BreakSuggestions     []string `json:"break_suggestions"`
}

// Analysis is the result of one cognitive load analysis.
type Analysis struct {
	SessionID       string          `json:"session_id"`
	Level           Level           `json:"load_level"`
	State           State           `json:"learning_state"`
	Score           int             `json:"score"`
	Metrics         Metrics         `json:"metrics"`
	Recommendations Recommendations `json:"recommendations"`
	Confidence      int             `json:"confidence"`
	AnalyzedAt      time.Time       `json:"analyzed_at"`
}
