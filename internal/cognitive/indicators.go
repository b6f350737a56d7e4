package cognitive

import (
	"github.com/abhisek/adaptutor/internal/indicator"
	"github.com/abhisek/adaptutor/internal/interaction"
)

// Indicators are the text scorers the analyzer consults. Swap any of them
// to change how a signal is detected without touching scoring.
type Indicators struct {
	Error       indicator.Scorer
	Help        indicator.Scorer
	Confusion   indicator.Scorer
	Frustration indicator.Scorer
	Confidence  indicator.Scorer
	Motivation  indicator.Scorer
}

// DefaultIndicators returns the built-in English scorers. Keywords match
// whole words, so "help" does not fire on "helpful".
func DefaultIndicators() Indicators {
	return Indicators{
		Error: indicator.Any(
			indicator.Keywords{
				"wrong", "incorrect", "not right", "doesn't work", "does not work",
				"not working", "failed", "oops",
			},
			indicator.MustPattern(`\b(mistake|error)s?\b`),
		),
		Help: indicator.Any(
			indicator.Keywords{"help", "stuck", "can you explain", "what should i do", "assist", "hint"},
			indicator.MustPattern(`\bhow (do|can|should) (i|we|you)\b`),
		),
		Confusion: indicator.Keywords{
			"confused", "confusing", "don't understand", "do not understand",
			"don't get", "lost", "unclear", "what do you mean", "makes no sense", "huh",
		},
		Frustration: indicator.Any(
			indicator.Keywords{
				"frustrated", "frustrating", "annoying", "give up", "too hard",
				"this is hard", "hate", "ugh", "pointless",
			},
			indicator.MustPattern(`\bi (can[’']t|cannot|can not)\b`),
		),
		Confidence: indicator.Keywords{
			"got it", "i understand", "understand now", "makes sense",
			"easy", "i know", "confident", "that's clear", "i see",
		},
		Motivation: indicator.Keywords{
			"excited", "interesting", "love", "want to learn", "curious",
			"cool", "awesome", "fun", "tell me more", "can we try",
		},
	}
}

// engagementScores rates how engaged a learner is when they perform an
// interaction of the given type.
var engagementScores = map[interaction.EventType]float64{
	interaction.EventQuestion:         0.8,
	interaction.EventDetailedResponse: 0.9,
	interaction.EventQuickResponse:    0.6,
	interaction.EventHelpRequest:      0.7,
	interaction.EventTaskSwitch:       0.3,
}

const defaultEngagementScore = 0.5

// DefaultLoadTable returns the estimated cognitive load of each interaction type.
func DefaultLoadTable() map[interaction.EventType]float64 {
	return map[interaction.EventType]float64{
		interaction.EventQuestion:         0.6,
		interaction.EventDetailedResponse: 0.8,
		interaction.EventQuickResponse:    0.4,
		interaction.EventHelpRequest:      0.9,
		interaction.EventTaskSwitch:       0.7,
		interaction.EventErrorCorrection:  0.8,
	}
}

const defaultEventLoad = 0.5
