package cognitive

import "github.com/abhisek/adaptutor/internal/indicator"

// StateInput is what learning-state rules inspect.
type StateInput struct {
	// LatestUserMessage is the learner's most recent message, or "".
	LatestUserMessage string
	Current           CurrentMetrics
}

// StateRule is one step in the learning-state priority chain.
// Match returns true when the rule applies.
type StateRule interface {
	State() State
	Match(in *StateInput) bool
}

type stateRule struct {
	state State
	match func(in *StateInput) bool
}

func (r stateRule) State() State               { return r.state }
func (r stateRule) Match(in *StateInput) bool { return r.match(in) }

// DefaultStateRules returns the rules in priority order. Confusion is
// checked first since an unresolved misunderstanding masks every other
// signal.
func DefaultStateRules(ind Indicators) []StateRule {
	has := func(s indicator.Scorer, in *StateInput) bool {
		return in.LatestUserMessage != "" && indicator.Matches(s, in.LatestUserMessage)
	}

	return []StateRule{
		stateRule{StateConfused, func(in *StateInput) bool {
			return has(ind.Confusion, in) || in.Current.ConfusionIndicators > 2
		}},
		stateRule{StateFrustrated, func(in *StateInput) bool {
			return has(ind.Frustration, in) ||
				(in.Current.ErrorRate > 0.4 && in.Current.HelpRequests > 3)
		}},
		stateRule{StateConfident, func(in *StateInput) bool {
			return has(ind.Confidence, in) &&
				in.Current.ErrorRate < 0.1 &&
				in.Current.EngagementLevel > 0.7
		}},
		stateRule{StateMotivated, func(in *StateInput) bool {
			return has(ind.Motivation, in) || in.Current.EngagementLevel > 0.8
		}},
		stateRule{StateDistracted, func(in *StateInput) bool {
			return in.Current.EngagementLevel < 0.3 || in.Current.TaskSwitchingFrequency > 0.8
		}},
	}
}

// RunStateRules returns the state of the first matching rule, or
// StateFocused when none match.
func RunStateRules(rules []StateRule, in *StateInput) State {
	for _, r := range rules {
		if r.Match(in) {
			return r.State()
		}
	}
	return StateFocused
}
