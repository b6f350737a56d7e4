package prompts

// Teaching modes shipped with the embedded templates.
const (
	ModeSocratic       = "socratic"
	ModeExplanatory    = "explanatory"
	ModeGuidedPractice = "guided_practice"
	ModeReview         = "review"
)

// SubjectGeneral is the fallback subject for every mode.
const SubjectGeneral = "general"

// Template is a parameterised tutoring instruction.
type Template struct {
	ID                       string                   `yaml:"id" json:"id"`
	Mode                     string                   `yaml:"mode" json:"mode"`
	Subject                  string                   `yaml:"subject" json:"subject"`
	BaseTemplate             string                   `yaml:"base_template" json:"base_template"`
	PersonalizationVariables PersonalizationVariables `yaml:"personalization_variables" json:"personalization_variables"`
	ConditionalLogic         map[string]string        `yaml:"conditional_logic" json:"conditional_logic,omitempty"`
	Metadata                 Metadata                 `yaml:"metadata" json:"metadata"`
}

// PersonalizationVariables are per-template snippet overrides. Missing
// keys fall back to the composer's built-in snippets.
type PersonalizationVariables struct {
	LearningStyleAdaptations   map[string]string `yaml:"learning_style_adaptations" json:"learning_style_adaptations,omitempty"`
	CognitiveLoadAdaptations   map[string]string `yaml:"cognitive_load_adaptations" json:"cognitive_load_adaptations,omitempty"`
	ConfidenceLevelAdaptations map[string]string `yaml:"confidence_level_adaptations" json:"confidence_level_adaptations,omitempty"`
}

type Metadata struct {
	Description string   `yaml:"description" json:"description"`
	Version     string   `yaml:"version" json:"version"`
	Tags        []string `yaml:"tags" json:"tags,omitempty"`
}

// Complexity values for PersonalizationConfig.PreferredComplexity.
const (
	ComplexitySimple   = "simple"
	ComplexityModerate = "moderate"
	ComplexityComplex  = "complex"
)

// Length values for PersonalizationConfig.ResponseLength.
const (
	LengthBrief    = "brief"
	LengthAdaptive = "adaptive"
	LengthDetailed = "detailed"
)

// Performance values for Context.RecentPerformance.
const (
	PerformancePoor      = "poor"
	PerformanceAverage   = "average"
	PerformanceExcellent = "excellent"
)

// PersonalizationConfig controls style, complexity and length of the
// composed instruction.
type PersonalizationConfig struct {
	LearningStyle       string  `json:"learning_style" yaml:"learning_style"`
	ConfidenceLevel     float64 `json:"confidence_level" yaml:"confidence_level"`
	PreferredComplexity string  `json:"preferred_complexity" yaml:"preferred_complexity"`
	ResponseLength      string  `json:"response_length" yaml:"response_length"`
}

// Config selects a template and personalises it.
type Config struct {
	Mode            string                `json:"mode" yaml:"mode"`
	TaskType        string                `json:"task_type" yaml:"task_type"`
	Personalization PersonalizationConfig `json:"personalization" yaml:"personalization"`
}

type CognitiveLoadContext struct {
	CurrentLevel   string `json:"current_level" yaml:"current_level"`
	AutoAdjustment bool   `json:"auto_adjustment" yaml:"auto_adjustment"`
}

// Context describes the session the instruction is composed for.
type Context struct {
	SubjectDomain string `json:"subject_domain" yaml:"subject_domain"`

	// SessionDuration is in minutes.
	SessionDuration   float64              `json:"session_duration" yaml:"session_duration"`
	RecentPerformance string               `json:"recent_performance" yaml:"recent_performance"`
	CognitiveLoad     CognitiveLoadContext `json:"cognitive_load" yaml:"cognitive_load"`
}
