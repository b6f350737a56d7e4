package cognitive

var levelAdvice = map[Level]Recommendations{
	LevelLow: {
		ImmediateActions:     []string{"Raise the challenge with a stretch problem"},
		TeachingAdjustments:  []string{"Introduce the next concept or a harder variation"},
		ContentModifications: []string{"Add depth through edge cases and connections to related topics"},
	},
	LevelOptimal: {
		ImmediateActions:     []string{"Maintain the current pace"},
		TeachingAdjustments:  []string{"Keep the current balance of explanation and practice"},
		ContentModifications: []string{"Continue with material at the current difficulty"},
	},
	LevelHigh: {
		ImmediateActions: []string{"Slow down and check understanding before moving on"},
		TeachingAdjustments: []string{
			"Break the current problem into smaller steps",
			"Lean on worked examples",
		},
		ContentModifications: []string{"Reduce the amount of new information per message"},
		BreakSuggestions:     []string{"Offer a short pause after the current step"},
	},
	LevelOverload: {
		ImmediateActions: []string{
			"Stop introducing new material and restate the core idea simply",
			"Ask the learner which part feels most overwhelming",
		},
		TeachingAdjustments: []string{
			"Return to prerequisite concepts",
			"Cover one idea per message",
		},
		ContentModifications: []string{"Simplify vocabulary and drop optional detail"},
		BreakSuggestions:     []string{"Recommend a 5-10 minute break before continuing"},
	},
}

var stateAdvice = map[State]Recommendations{
	StateConfused: {
		ImmediateActions:     []string{"Re-explain the confusing point from a different angle"},
		TeachingAdjustments:  []string{"Probe for misconceptions with a diagnostic question"},
		ContentModifications: []string{"Offer an analogy or a concrete example"},
	},
	StateFrustrated: {
		ImmediateActions:     []string{"Acknowledge the difficulty and encourage the learner"},
		TeachingAdjustments:  []string{"Switch approach instead of repeating the same explanation"},
		ContentModifications: []string{"Offer an easier problem to rebuild momentum"},
		BreakSuggestions:     []string{"Suggest stepping away briefly if frustration persists"},
	},
	StateConfident: {
		ImmediateActions:     []string{"Affirm the progress made"},
		TeachingAdjustments:  []string{"Ask the learner to explain the idea in their own words"},
		ContentModifications: []string{"Provide a challenge problem"},
	},
	StateMotivated: {
		ImmediateActions:     []string{"Build on the learner's enthusiasm"},
		TeachingAdjustments:  []string{"Let the learner steer toward topics of interest"},
		ContentModifications: []string{"Offer optional enrichment material"},
	},
	StateDistracted: {
		ImmediateActions:     []string{"Re-engage with a short, focused question"},
		TeachingAdjustments:  []string{"Connect the material to the learner's goals"},
		ContentModifications: []string{"Shorten responses and add interactive elements"},
		BreakSuggestions:     []string{"Suggest a short break to reset focus"},
	},
	StateFocused: {
		ImmediateActions:    []string{"Continue without interrupting the learner's flow"},
		TeachingAdjustments: []string{"Keep momentum with steady progression"},
	},
}

// Recommend merges the fixed advice for a level and a state. Level advice
// comes first within each group.
func Recommend(level Level, state State) Recommendations {
	l := levelAdvice[level]
	s := stateAdvice[state]
	return Recommendations{
		ImmediateActions:     concat(l.ImmediateActions, s.ImmediateActions),
		TeachingAdjustments:  concat(l.TeachingAdjustments, s.TeachingAdjustments),
		ContentModifications: concat(l.ContentModifications, s.ContentModifications),
		BreakSuggestions:     concat(l.BreakSuggestions, s.BreakSuggestions),
	}
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
