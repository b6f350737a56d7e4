package learnstyle

// Style is a VARK learning-style category.
type Style string

const (
	StyleVisual         Style = "visual"
	StyleAuditory       Style = "auditory"
	StyleKinesthetic    Style = "kinesthetic"
	StyleReadingWriting Style = "reading_writing"
	StyleMixed          Style = "mixed"
)

// AllStyles returns every style in tie-break order. When two styles score
// the same, the one listed first wins.
func AllStyles() []Style {
	return []Style{StyleVisual, StyleAuditory, StyleKinesthetic, StyleReadingWriting, StyleMixed}
}

// Valid reports whether s is a known style.
func (s Style) Valid() bool {
	for _, v := range AllStyles() {
		if s == v {
			return true
		}
	}
	return false
}

// InteractionPatterns summarise how the learner interacts.
type InteractionPatterns struct {
	// AverageResponseTime is in seconds.
	AverageResponseTime float64 `json:"average_response_time" yaml:"average_response_time"`

	// HelpSeekingPattern is free-form, e.g. "frequent" or "rare".
	HelpSeekingPattern string `json:"help_seeking_pattern" yaml:"help_seeking_pattern"`

	// QuestionAskingFrequency is the fraction of turns that are questions, in [0, 1].
	QuestionAskingFrequency float64 `json:"question_asking_frequency" yaml:"question_asking_frequency"`

	// MessageLengthPreference is "short", "medium" or "long".
	MessageLengthPreference string `json:"message_length_preference" yaml:"message_length_preference"`
}

type PerformanceMetrics struct {
	TaskCompletionRate float64 `json:"task_completion_rate" yaml:"task_completion_rate"`
}

type Preferences struct {
	// PreferredExplanationStyle is a Style name the learner stated, or "".
	PreferredExplanationStyle string `json:"preferred_explanation_style" yaml:"preferred_explanation_style"`
}

// BehaviorData is the behaviour summary supplied by the application.
type BehaviorData struct {
	InteractionPatterns InteractionPatterns `json:"interaction_patterns" yaml:"interaction_patterns"`
	PerformanceMetrics  PerformanceMetrics  `json:"performance_metrics" yaml:"performance_metrics"`
	Preferences         Preferences         `json:"preferences" yaml:"preferences"`
}

// Measurement is one indicator's reading. Value is in [0, 1]; Count is the
// number of learner messages that triggered it (0 for behaviour-based
// indicators).
type Measurement struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Profile is the result of a learning-style analysis.
type Profile struct {
	DetectedStyle     Style                  `json:"detected_style"`
	ConfidenceScore   float64                `json:"confidence_score"`
	StyleDistribution map[Style]float64      `json:"style_distribution"`
	Evidence          []string               `json:"evidence"`
	Indicators        map[string]Measurement `json:"indicators"`
}
