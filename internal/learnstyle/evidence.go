package learnstyle

import "fmt"

// EvidenceRule emits Text when the named indicator passes the gate.
type EvidenceRule struct {
	Indicator string
	Gate      func(m Measurement) bool
	Text      string
}

// countAbove gates on the number of triggering messages.
func countAbove(n int) func(Measurement) bool {
	return func(m Measurement) bool { return m.Count > n }
}

// valueAtLeast gates on the measured value.
func valueAtLeast(v float64) func(Measurement) bool {
	return func(m Measurement) bool { return m.Value >= v }
}

// DefaultEvidenceRules returns the evidence rules per style, in output order.
func DefaultEvidenceRules() map[Style][]EvidenceRule {
	return map[Style][]EvidenceRule{
		StyleVisual: {
			{IndicatorDiagramRequests, countAbove(2), "frequently requests diagrams or charts"},
			{IndicatorDiagramRequests, countAbove(0), "has asked for a diagram or chart"},
			{IndicatorVisualLanguage, countAbove(1), "uses visual language when describing ideas"},
			{"stated_visual", valueAtLeast(1), "stated a preference for visual explanations"},
		},
		StyleAuditory: {
			{IndicatorDiscussionRequests, countAbove(1), "prefers to talk ideas through"},
			{IndicatorVerbalLanguage, countAbove(1), "uses verbal and sound-based language"},
			{IndicatorQuestionFrequency, valueAtLeast(0.5), "asks questions in most turns"},
			{"stated_auditory", valueAtLeast(1), "stated a preference for verbal explanations"},
		},
		StyleKinesthetic: {
			{IndicatorHandsOnRequests, countAbove(2), "frequently asks to practice hands-on"},
			{IndicatorHandsOnRequests, countAbove(0), "has asked to try things out"},
			{IndicatorExampleRequests, countAbove(1), "regularly asks for practical examples"},
			{"stated_kinesthetic", valueAtLeast(1), "stated a preference for hands-on learning"},
		},
		StyleReadingWriting: {
			{IndicatorTextRequests, countAbove(1), "asks for detailed written explanations"},
			{IndicatorNoteTaking, countAbove(0), "organises material as notes or summaries"},
			{IndicatorMessageLength, valueAtLeast(1), "writes long, detailed messages"},
			{"stated_reading_writing", valueAtLeast(1), "stated a preference for reading and writing"},
		},
	}
}

// evidence lists the reasons behind the detected style. Only the first
// rule for an indicator that fires is kept, so a stronger statement
// supersedes its weaker variant.
func (a *Analyzer) evidence(style Style, dist map[Style]float64, measured map[string]Measurement) []string {
	if style == StyleMixed {
		return mixedEvidence(dist)
	}

	var out []string
	seen := make(map[string]bool)
	for _, r := range a.rules[style] {
		if seen[r.Indicator] {
			continue
		}
		m, ok := measured[r.Indicator]
		if !ok || !r.Gate(m) {
			continue
		}
		seen[r.Indicator] = true
		out = append(out, r.Text)
	}
	if len(out) == 0 {
		return []string{fmt.Sprintf("leans %s, based on limited interaction data", style)}
	}
	return out
}

func mixedEvidence(dist map[Style]float64) []string {
	var first, second Style
	for _, s := range AllStyles() {
		switch {
		case s == StyleMixed || dist[s] == 0:
		case first == "" || dist[s] > dist[first]:
			first, second = s, first
		case second == "" || dist[s] > dist[second]:
			second = s
		}
	}
	if dist[StyleMixed] == 0 || second == "" {
		return []string{"not enough interaction data to identify a preferred learning style"}
	}
	return []string{fmt.Sprintf("responds comparably to %s and %s approaches", first, second)}
}
