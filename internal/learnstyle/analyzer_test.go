package learnstyle

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/adaptutor/internal/indicator"
	"github.com/abhisek/adaptutor/internal/transcript"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func userMessages(texts ...string) []transcript.Message {
	msgs := make([]transcript.Message, 0, len(texts)*2)
	for i, text := range texts {
		at := t0.Add(time.Duration(i) * time.Minute)
		msgs = append(msgs,
			transcript.Message{Role: transcript.RoleAssistant, Content: "Sure, draw on what you know.", Timestamp: at},
			transcript.Message{Role: transcript.RoleUser, Content: text, Timestamp: at.Add(10 * time.Second)},
		)
	}
	return msgs
}

func maxScore(dist map[Style]float64) float64 {
	m := 0.0
	for _, v := range dist {
		m = math.Max(m, v)
	}
	return m
}

func TestAnalyze_NoData(t *testing.T) {
	p := NewAnalyzer().Analyze(BehaviorData{}, nil)

	if p.ConfidenceScore != MinConfidence {
		t.Errorf("confidence = %v, want %v", p.ConfidenceScore, MinConfidence)
	}
	if p.DetectedStyle != StyleMixed {
		t.Errorf("style = %q, want mixed", p.DetectedStyle)
	}
	for _, s := range AllStyles() {
		if v, ok := p.StyleDistribution[s]; !ok || v != 0 {
			t.Errorf("distribution[%s] = %v (present=%v), want 0", s, v, ok)
		}
	}
	if len(p.Evidence) != 1 {
		t.Errorf("evidence = %v, want a single fallback", p.Evidence)
	}
}

func TestAnalyze_VisualLearner(t *testing.T) {
	history := userMessages(
		"can you draw a diagram of this",
		"show me a chart",
		"a graph would help",
	)
	p := NewAnalyzer().Analyze(BehaviorData{}, history)

	if p.DetectedStyle != StyleVisual {
		t.Fatalf("style = %q, want visual (distribution %v)", p.DetectedStyle, p.StyleDistribution)
	}
	if p.StyleDistribution[StyleVisual] != 100 {
		t.Errorf("visual = %v, want 100", p.StyleDistribution[StyleVisual])
	}
	if p.ConfidenceScore != 100 {
		t.Errorf("confidence = %v, want 100", p.ConfidenceScore)
	}
	if got := p.Indicators[IndicatorDiagramRequests].Count; got != 3 {
		t.Errorf("diagram requests = %d, want 3", got)
	}
	want := []string{"frequently requests diagrams or charts"}
	if len(p.Evidence) != len(want) || p.Evidence[0] != want[0] {
		t.Errorf("evidence = %v, want %v", p.Evidence, want)
	}
}

func TestAnalyze_MixedLearner(t *testing.T) {
	p := NewAnalyzer().Analyze(BehaviorData{}, userMessages("draw a diagram", "let me try it"))

	if p.DetectedStyle != StyleMixed {
		t.Fatalf("style = %q, want mixed (distribution %v)", p.DetectedStyle, p.StyleDistribution)
	}
	if got := maxScore(p.StyleDistribution); got != 100 {
		t.Errorf("max score = %v, want 100 after rescaling", got)
	}
	if p.StyleDistribution[StyleVisual] != p.StyleDistribution[StyleKinesthetic] {
		t.Errorf("visual %v != kinesthetic %v", p.StyleDistribution[StyleVisual], p.StyleDistribution[StyleKinesthetic])
	}
	if len(p.Evidence) != 1 || p.Evidence[0] != "responds comparably to visual and kinesthetic approaches" {
		t.Errorf("evidence = %v", p.Evidence)
	}
}

func TestAnalyze_MixedConstantsAreOverridable(t *testing.T) {
	history := userMessages("draw a diagram", "let me try it")
	p := NewAnalyzer(WithMixedGapThreshold(0)).Analyze(BehaviorData{}, history)

	if p.DetectedStyle != StyleVisual {
		t.Errorf("style = %q, want visual by tie-break order", p.DetectedStyle)
	}
	if p.StyleDistribution[StyleMixed] != 0 {
		t.Errorf("mixed = %v, want 0 with the rule disabled", p.StyleDistribution[StyleMixed])
	}

	p = NewAnalyzer(WithMixedBlendWeight(0.4)).Analyze(BehaviorData{}, history)
	if p.StyleDistribution[StyleMixed] != 80 {
		t.Errorf("mixed = %v, want 0.4 x 200 = 80", p.StyleDistribution[StyleMixed])
	}
}

func TestAnalyze_TieBreakOrder(t *testing.T) {
	always := indicator.ScorerFunc(func(string) float64 { return 1 })
	ind := []Indicator{
		KeywordIndicator("r", StyleReadingWriting, 10, always),
		KeywordIndicator("k", StyleKinesthetic, 10, always),
		KeywordIndicator("a", StyleAuditory, 10, always),
	}
	p := NewAnalyzer(WithIndicators(ind), WithMixedGapThreshold(0)).Analyze(BehaviorData{}, userMessages("hi"))

	if p.DetectedStyle != StyleAuditory {
		t.Errorf("style = %q, want auditory (earliest tied style)", p.DetectedStyle)
	}
}

func TestAnalyze_BehaviourSignals(t *testing.T) {
	tests := []struct {
		name     string
		behavior BehaviorData
		want     Style
		evidence string
	}{
		{
			name:     "long messages",
			behavior: BehaviorData{InteractionPatterns: InteractionPatterns{MessageLengthPreference: "long"}},
			want:     StyleReadingWriting,
			evidence: "writes long, detailed messages",
		},
		{
			name:     "frequent questions",
			behavior: BehaviorData{InteractionPatterns: InteractionPatterns{QuestionAskingFrequency: 0.7}},
			want:     StyleAuditory,
			evidence: "asks questions in most turns",
		},
		{
			name:     "stated preference",
			behavior: BehaviorData{Preferences: Preferences{PreferredExplanationStyle: "Kinesthetic"}},
			want:     StyleKinesthetic,
			evidence: "stated a preference for hands-on learning",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewAnalyzer().Analyze(tt.behavior, nil)
			if p.DetectedStyle != tt.want {
				t.Fatalf("style = %q, want %q", p.DetectedStyle, tt.want)
			}
			found := false
			for _, e := range p.Evidence {
				if e == tt.evidence {
					found = true
				}
			}
			if !found {
				t.Errorf("evidence = %v, want to contain %q", p.Evidence, tt.evidence)
			}
		})
	}
}

func TestAnalyze_FallbackEvidence(t *testing.T) {
	// One detailed-text request is enough to win but not to fire a rule.
	p := NewAnalyzer().Analyze(BehaviorData{}, userMessages("I want detailed steps"))
	if p.DetectedStyle != StyleReadingWriting {
		t.Fatalf("style = %q, want reading_writing", p.DetectedStyle)
	}
	if len(p.Evidence) != 1 || p.Evidence[0] != "leans reading_writing, based on limited interaction data" {
		t.Errorf("evidence = %v, want fallback", p.Evidence)
	}
}

func TestAnalyze_DistributionAndConfidenceRanges(t *testing.T) {
	histories := [][]transcript.Message{
		nil,
		userMessages("draw a diagram"),
		userMessages("let me try", "tell me more about it", "summary please"),
		userMessages("show me a picture", "talk through it", "give an example", "write it down"),
		userMessages("hello", "ok", "thanks"),
	}
	behaviors := []BehaviorData{
		{},
		{InteractionPatterns: InteractionPatterns{QuestionAskingFrequency: 2, MessageLengthPreference: "medium"}},
		{Preferences: Preferences{PreferredExplanationStyle: "visual"}},
	}

	a := NewAnalyzer()
	for i, h := range histories {
		for j, b := range behaviors {
			p := a.Analyze(b, h)
			if p.ConfidenceScore < 30 || p.ConfidenceScore > 100 {
				t.Errorf("case %d/%d: confidence %v out of [30,100]", i, j, p.ConfidenceScore)
			}
			nonZero := false
			for _, ind := range p.Indicators {
				if ind.Value > 0 {
					nonZero = true
				}
			}
			if got := maxScore(p.StyleDistribution); nonZero && math.Abs(got-100) > 1e-9 {
				t.Errorf("case %d/%d: max score %v, want 100", i, j, got)
			}
		}
	}
}

func TestDefaultIndicators_WeightsInRange(t *testing.T) {
	for _, ind := range DefaultIndicators() {
		if ind.Weight < MinWeight || ind.Weight > MaxWeight {
			t.Errorf("%s weight %v out of [%d,%d]", ind.Name, ind.Weight, MinWeight, MaxWeight)
		}
	}
}

func TestAnalyze_KeywordsInsideOtherWordsIgnored(t *testing.T) {
	p := NewAnalyzer().Analyze(BehaviorData{}, userMessages(
		"I already did the geometry homework",
		"I imagine this paragraph is fine",
	))
	if got := maxScore(p.StyleDistribution); got != 0 {
		t.Errorf("distribution = %v, want no indicator to fire", p.StyleDistribution)
	}
	if p.ConfidenceScore != MinConfidence {
		t.Errorf("confidence = %v, want %v", p.ConfidenceScore, MinConfidence)
	}

	p = NewAnalyzer().Analyze(BehaviorData{}, userMessages("could you keep drawing graphs"))
	if p.DetectedStyle != StyleVisual {
		t.Errorf("style = %q, want visual (distribution %v)", p.DetectedStyle, p.StyleDistribution)
	}
}
