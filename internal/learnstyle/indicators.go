package learnstyle

import (
	"math"
	"strings"

	"github.com/abhisek/adaptutor/internal/indicator"
)

// Indicator names used by the default set and the evidence rules.
const (
	IndicatorDiagramRequests    = "diagram_requests"
	IndicatorVisualLanguage     = "visual_language"
	IndicatorDiscussionRequests = "discussion_requests"
	IndicatorVerbalLanguage     = "verbal_language"
	IndicatorQuestionFrequency  = "question_frequency"
	IndicatorHandsOnRequests    = "hands_on_requests"
	IndicatorExampleRequests    = "example_requests"
	IndicatorTextRequests       = "text_requests"
	IndicatorNoteTaking         = "note_taking"
	IndicatorMessageLength      = "message_length"
)

// Weight bounds for a single indicator.
const (
	MinWeight = 5
	MaxWeight = 25

	statedPreferenceWeight = 5
)

// Input is what an indicator measures.
type Input struct {
	Behavior  BehaviorData
	UserTexts []string
}

// Indicator contributes Weight × Measure().Value to its style's score.
type Indicator struct {
	Name    string
	Style   Style
	Weight  float64
	Measure func(in *Input) Measurement
}

// KeywordIndicator measures the fraction of learner messages s matches.
func KeywordIndicator(name string, style Style, weight float64, s indicator.Scorer) Indicator {
	return Indicator{
		Name:   name,
		Style:  style,
		Weight: weight,
		Measure: func(in *Input) Measurement {
			return Measurement{
				Value: indicator.Ratio(s, in.UserTexts),
				Count: indicator.Count(s, in.UserTexts),
			}
		},
	}
}

// statedPreference fires when the learner explicitly named style.
func statedPreference(style Style) Indicator {
	return Indicator{
		Name:   "stated_" + string(style),
		Style:  style,
		Weight: statedPreferenceWeight,
		Measure: func(in *Input) Measurement {
			stated := strings.ToLower(strings.TrimSpace(in.Behavior.Preferences.PreferredExplanationStyle))
			if Style(stated) == style {
				return Measurement{Value: 1}
			}
			return Measurement{}
		},
	}
}

func questionFrequency() Indicator {
	return Indicator{
		Name:   IndicatorQuestionFrequency,
		Style:  StyleAuditory,
		Weight: 10,
		Measure: func(in *Input) Measurement {
			f := in.Behavior.InteractionPatterns.QuestionAskingFrequency
			return Measurement{Value: math.Min(math.Max(f, 0), 1)}
		},
	}
}

func messageLength() Indicator {
	return Indicator{
		Name:   IndicatorMessageLength,
		Style:  StyleReadingWriting,
		Weight: 10,
		Measure: func(in *Input) Measurement {
			switch strings.ToLower(in.Behavior.InteractionPatterns.MessageLengthPreference) {
			case "long", "detailed":
				return Measurement{Value: 1}
			case "medium":
				return Measurement{Value: 0.5}
			default:
				return Measurement{}
			}
		},
	}
}

// DefaultIndicators returns the built-in indicator set.
func DefaultIndicators() []Indicator {
	return []Indicator{
		KeywordIndicator(IndicatorDiagramRequests, StyleVisual, 25, indicator.Any(
			indicator.Keywords{"sketch", "flowchart", "map it out"},
			indicator.MustPattern(`\b(diagram|chart|graph)s?\b`),
			indicator.MustPattern(`\b(draw|draws|drawn|drawing)\b`),
		)),
		KeywordIndicator(IndicatorVisualLanguage, StyleVisual, 15, indicator.Any(
			indicator.Keywords{"visualize", "visual", "show me", "illustrate", "look like", "color"},
			indicator.MustPattern(`\b(picture|image)s?\b`),
		)),
		statedPreference(StyleVisual),

		KeywordIndicator(IndicatorDiscussionRequests, StyleAuditory, 20, indicator.Keywords{
			"discuss", "talk through", "talk about", "tell me", "conversation", "explain it out loud",
		}),
		KeywordIndicator(IndicatorVerbalLanguage, StyleAuditory, 15, indicator.Keywords{
			"sounds like", "hear", "listen", "say it", "aloud", "rhythm", "podcast",
		}),
		questionFrequency(),
		statedPreference(StyleAuditory),

		KeywordIndicator(IndicatorHandsOnRequests, StyleKinesthetic, 25, indicator.Any(
			indicator.Keywords{"practice", "exercise", "hands-on", "do it myself", "experiment"},
			indicator.MustPattern(`\b(try|tries|tried|trying|build|building)\b`),
		)),
		KeywordIndicator(IndicatorExampleRequests, StyleKinesthetic, 20, indicator.Any(
			indicator.Keywords{"for instance", "real world", "practical", "apply"},
			indicator.MustPattern(`\bexamples?\b`),
		)),
		statedPreference(StyleKinesthetic),

		KeywordIndicator(IndicatorTextRequests, StyleReadingWriting, 20, indicator.Any(
			indicator.Keywords{"detailed", "written", "article", "documentation", "definition", "step by step"},
			indicator.MustPattern(`\b(read|reading|write|writing)\b`),
		)),
		KeywordIndicator(IndicatorNoteTaking, StyleReadingWriting, 15, indicator.Keywords{
			"notes", "summary", "summarize", "outline", "bullet", "list",
		}),
		messageLength(),
		statedPreference(StyleReadingWriting),
	}
}
