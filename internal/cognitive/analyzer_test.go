package cognitive

import (
	"testing"
	"time"

	"github.com/abhisek/adaptutor/internal/interaction"
	"github.com/abhisek/adaptutor/internal/transcript"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// exchange builds n assistant/user pairs where each reply arrives delay
// after the prompt.
func exchange(n int, delay time.Duration, userText string) []transcript.Message {
	var msgs []transcript.Message
	at := t0
	for i := 0; i < n; i++ {
		msgs = append(msgs, transcript.Message{Role: transcript.RoleAssistant, Content: "Next step?", Timestamp: at})
		at = at.Add(delay)
		msgs = append(msgs, transcript.Message{Role: transcript.RoleUser, Content: userText, Timestamp: at})
		at = at.Add(time.Second)
	}
	return msgs
}

func TestAnalyze_CalmLearnerIsNotElevated(t *testing.T) {
	a := NewAnalyzer(WithClock(fixedClock(t0.Add(time.Minute))))
	sess := interaction.NewSession("s1", t0)

	got := a.Analyze(sess, exchange(5, 5*time.Second, "I think the answer is 12"))

	if got.Metrics.Current.ResponseDelay != 5 {
		t.Errorf("response delay = %v, want 5", got.Metrics.Current.ResponseDelay)
	}
	for _, c := range Breakdown(got.Metrics) {
		switch c.Signal {
		case "response_delay", "error_rate", "help_requests", "confusion_indicators":
			if c.Points != 0 {
				t.Errorf("%s contributed %d points, want 0", c.Signal, c.Points)
			}
		}
	}
	if got.Level != LevelLow {
		t.Errorf("level = %q, want low", got.Level)
	}
	if got.SessionID != "s1" {
		t.Errorf("session id = %q, want s1", got.SessionID)
	}
}

func TestScore_StrugglingLearner(t *testing.T) {
	m := Metrics{Current: CurrentMetrics{ErrorRate: 0.5, HelpRequests: 6, EngagementLevel: 0.6}}

	score := Score(m)
	if score < 50 {
		t.Fatalf("score = %d, want >= 50", score)
	}
	if lvl := Classify(score); lvl == LevelLow {
		t.Errorf("level = %q, want at least optimal", lvl)
	}
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{-5, LevelLow},
		{0, LevelLow},
		{29, LevelLow},
		{30, LevelOptimal},
		{59, LevelOptimal},
		{60, LevelHigh},
		{79, LevelHigh},
		{80, LevelOverload},
		{150, LevelOverload},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScore_Monotonic(t *testing.T) {
	base := Metrics{Current: CurrentMetrics{EngagementLevel: 0.6}}

	tests := []struct {
		name string
		set  func(m *Metrics, step int)
	}{
		{"response_delay", func(m *Metrics, s int) { m.Current.ResponseDelay = float64(s) }},
		{"error_rate", func(m *Metrics, s int) { m.Current.ErrorRate = float64(s) / 50 }},
		{"help_requests", func(m *Metrics, s int) { m.Current.HelpRequests = s / 5 }},
		{"confusion_indicators", func(m *Metrics, s int) { m.Current.ConfusionIndicators = s / 5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := -1
			for step := 0; step <= 50; step++ {
				m := base
				tt.set(&m, step)
				got := Score(m)
				if got < prev {
					t.Fatalf("score dropped from %d to %d at step %d", prev, got, step)
				}
				prev = got
			}
		})
	}
}

func TestRunStateRules(t *testing.T) {
	rules := DefaultStateRules(DefaultIndicators())

	tests := []struct {
		name string
		in   StateInput
		want State
	}{
		{"confusion keyword", StateInput{LatestUserMessage: "I'm confused", Current: CurrentMetrics{EngagementLevel: 0.9}}, StateConfused},
		{"many confusion messages", StateInput{Current: CurrentMetrics{ConfusionIndicators: 3, EngagementLevel: 0.5}}, StateConfused},
		{"frustration keyword", StateInput{LatestUserMessage: "ugh, this again", Current: CurrentMetrics{EngagementLevel: 0.5}}, StateFrustrated},
		{"errors and help", StateInput{Current: CurrentMetrics{ErrorRate: 0.5, HelpRequests: 4, EngagementLevel: 0.5}}, StateFrustrated},
		{"confident", StateInput{LatestUserMessage: "got it", Current: CurrentMetrics{EngagementLevel: 0.75}}, StateConfident},
		{"confident keyword but errors", StateInput{LatestUserMessage: "got it", Current: CurrentMetrics{ErrorRate: 0.3, EngagementLevel: 0.75}}, StateFocused},
		{"motivated keyword", StateInput{LatestUserMessage: "this is cool", Current: CurrentMetrics{EngagementLevel: 0.5}}, StateMotivated},
		{"highly engaged", StateInput{Current: CurrentMetrics{EngagementLevel: 0.85}}, StateMotivated},
		{"disengaged", StateInput{Current: CurrentMetrics{EngagementLevel: 0.2}}, StateDistracted},
		{"switching tasks", StateInput{Current: CurrentMetrics{EngagementLevel: 0.5, TaskSwitchingFrequency: 0.9}}, StateDistracted},
		{"default", StateInput{Current: CurrentMetrics{EngagementLevel: 0.5}}, StateFocused},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			if got := RunStateRules(rules, &in); got != tt.want {
				t.Errorf("state = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnalyze_StateUsesLatestUserMessage(t *testing.T) {
	a := NewAnalyzer(WithClock(fixedClock(t0.Add(time.Minute))))
	msgs := []transcript.Message{
		{Role: transcript.RoleUser, Content: "I'm so confused", Timestamp: t0},
		{Role: transcript.RoleAssistant, Content: "Let's try again.", Timestamp: t0.Add(time.Second)},
		{Role: transcript.RoleUser, Content: "oh that makes sense, got it", Timestamp: t0.Add(2 * time.Second)},
	}
	sess := interaction.NewSession("s1", t0)
	for i := 0; i < 3; i++ {
		sess.Record(interaction.Event{Type: interaction.EventDetailedResponse, Timestamp: t0.Add(time.Duration(i) * time.Second)})
	}

	got := a.Analyze(sess, msgs)
	if got.State != StateConfident {
		t.Errorf("state = %q, want confident", got.State)
	}
}

func TestAnalyze_NilSessionAndNoMessages(t *testing.T) {
	a := NewAnalyzer(WithClock(fixedClock(t0)))
	got := a.Analyze(nil, nil)

	if got.Score != 0 {
		t.Errorf("score = %d, want 0", got.Score)
	}
	if got.Level != LevelLow {
		t.Errorf("level = %q, want low", got.Level)
	}
	if got.State != StateFocused {
		t.Errorf("state = %q, want focused", got.State)
	}
	if got.Confidence != baseConfidence {
		t.Errorf("confidence = %d, want %d", got.Confidence, baseConfidence)
	}
	if got.Metrics.Current.EngagementLevel != 0.5 {
		t.Errorf("engagement = %v, want neutral 0.5", got.Metrics.Current.EngagementLevel)
	}
}

func TestAnalyze_SkipsMalformedMessages(t *testing.T) {
	a := NewAnalyzer(WithClock(fixedClock(t0)))
	msgs := []transcript.Message{
		{Role: transcript.RoleUser, Content: "wrong again", Timestamp: t0},
		{Role: "system", Content: "ignored", Timestamp: t0},
		{Role: transcript.RoleUser, Content: "   ", Timestamp: t0},
		{Role: transcript.RoleUser, Content: "no timestamp"},
	}
	got := a.Analyze(nil, msgs)
	if got.Metrics.Current.ErrorRate != 1 {
		t.Errorf("error rate = %v, want 1 (only the valid message counts)", got.Metrics.Current.ErrorRate)
	}
}

func TestAnalyze_ConfidenceGrowsWithEvidence(t *testing.T) {
	sess := interaction.NewSession("s1", t0)
	for i := 0; i < 25; i++ {
		sess.Record(interaction.Event{Type: interaction.EventQuestion, Timestamp: t0.Add(time.Duration(i) * 20 * time.Second)})
	}
	a := NewAnalyzer(WithClock(fixedClock(t0.Add(12 * time.Minute))))

	got := a.Analyze(sess, nil)
	if got.Confidence != maxConfidence {
		t.Errorf("confidence = %d, want %d", got.Confidence, maxConfidence)
	}
	if got.Metrics.Session.SessionDuration != 12 {
		t.Errorf("duration = %v, want 12", got.Metrics.Session.SessionDuration)
	}
}

func TestConfidence_Range(t *testing.T) {
	for _, dur := range []float64{0, 5, 11, 120} {
		for _, freq := range []float64{0, 0.5, 1.5, 30} {
			for _, n := range []int{0, 10, 21, 1000} {
				c := confidence(SessionMetrics{SessionDuration: dur, InteractionFrequency: freq}, n)
				if c < 30 || c > 95 {
					t.Errorf("confidence(%v, %v, %d) = %d, out of [30,95]", dur, freq, n, c)
				}
			}
		}
	}
}

func TestSessionMetrics_PeaksAndRecovery(t *testing.T) {
	table := map[interaction.EventType]float64{
		interaction.EventQuickResponse: 0.4,
		interaction.EventHelpRequest:   0.9,
		interaction.EventTaskSwitch:    0.2,
		interaction.EventQuestion:      0.6,
	}
	a := NewAnalyzer(WithLoadTable(table), WithClock(fixedClock(t0.Add(10*time.Minute))))

	types := []interaction.EventType{
		interaction.EventQuickResponse,
		interaction.EventHelpRequest, // peak
		interaction.EventQuickResponse,
		interaction.EventTaskSwitch, // dip starts
		interaction.EventQuickResponse,
		interaction.EventQuestion, // recovered
		interaction.EventHelpRequest, // plateau start, peak
		interaction.EventHelpRequest,
	}
	sess := interaction.NewSession("s1", t0)
	for i, et := range types {
		sess.Record(interaction.Event{Type: et, Timestamp: t0.Add(time.Duration(i) * time.Minute)})
	}

	got := a.Analyze(sess, nil).Metrics.Session

	wantPeaks := []time.Time{t0.Add(time.Minute), t0.Add(6 * time.Minute)}
	if len(got.PeakLoadPoints) != len(wantPeaks) {
		t.Fatalf("peaks = %v, want %v", got.PeakLoadPoints, wantPeaks)
	}
	for i := range wantPeaks {
		if !got.PeakLoadPoints[i].Equal(wantPeaks[i]) {
			t.Errorf("peak[%d] = %v, want %v", i, got.PeakLoadPoints[i], wantPeaks[i])
		}
	}

	if len(got.RecoveryPeriods) != 1 || got.RecoveryPeriods[0] != 2*time.Minute {
		t.Errorf("recovery = %v, want [2m]", got.RecoveryPeriods)
	}
	if got.TotalCognitiveLoad <= 0 || got.TotalCognitiveLoad > 100 {
		t.Errorf("total load = %v, want within (0, 100]", got.TotalCognitiveLoad)
	}
}

func TestCurrentMetrics_TaskSwitchingWindow(t *testing.T) {
	now := t0.Add(20 * time.Minute)
	a := NewAnalyzer(WithClock(fixedClock(now)))
	sess := interaction.NewSession("s1", t0)

	// Old events fall outside the window.
	sess.Record(interaction.Event{Type: interaction.EventHelpRequest, Timestamp: t0})
	sess.Record(interaction.Event{Type: interaction.EventQuestion, Timestamp: t0.Add(time.Minute)})

	recent := []interaction.EventType{
		interaction.EventQuestion,
		interaction.EventTaskSwitch,
		interaction.EventTaskSwitch,
		interaction.EventQuestion,
		interaction.EventQuestion,
	}
	for i, et := range recent {
		sess.Record(interaction.Event{Type: et, Timestamp: now.Add(-4*time.Minute + time.Duration(i)*time.Second)})
	}

	got := a.Analyze(sess, nil).Metrics.Current.TaskSwitchingFrequency
	if got != 0.5 {
		t.Errorf("task switching = %v, want 0.5", got)
	}
}

func TestMessageComplexity(t *testing.T) {
	if got := messageComplexity(nil); got != 0 {
		t.Errorf("empty = %v, want 0", got)
	}
	long := "Understanding polymorphism, encapsulation, inheritance, abstraction, composition."
	if got := messageComplexity([]string{long, long, long, long}); got != 1 {
		t.Errorf("long words = %v, want capped at 1", got)
	}
	if got := messageComplexity([]string{"ok"}); got <= 0 || got >= 0.1 {
		t.Errorf("short = %v, want small positive", got)
	}
}

func TestRecommend_MergesLevelAndState(t *testing.T) {
	r := Recommend(LevelOverload, StateFrustrated)
	if len(r.BreakSuggestions) != 2 {
		t.Errorf("break suggestions = %v, want level and state advice", r.BreakSuggestions)
	}
	if r.ImmediateActions[0] != levelAdvice[LevelOverload].ImmediateActions[0] {
		t.Errorf("level advice should come first, got %q", r.ImmediateActions[0])
	}
	for _, lvl := range AllLevels() {
		if len(Recommend(lvl, StateFocused).ImmediateActions) == 0 {
			t.Errorf("no immediate action for %q", lvl)
		}
	}
}

func TestAnalyze_KeywordsInsideOtherWordsIgnored(t *testing.T) {
	tests := []struct {
		text string
	}{
		{"That was helpful, thanks."},
		{"So this function returns the sum."},
		{"whatever, next one"},
		{"I did terrorism homework in history"},
	}
	for _, tt := range tests {
		a := NewAnalyzer(WithClock(fixedClock(t0.Add(time.Minute))))
		got := a.Analyze(interaction.NewSession("s1", t0), exchange(1, 5*time.Second, tt.text))

		c := got.Metrics.Current
		if c.HelpRequests != 0 || c.ErrorRate != 0 || c.ConfusionIndicators != 0 {
			t.Errorf("%q: help=%d error=%v confusion=%d, want all zero",
				tt.text, c.HelpRequests, c.ErrorRate, c.ConfusionIndicators)
		}
		if got.State != StateFocused {
			t.Errorf("%q: state = %q, want focused", tt.text, got.State)
		}
	}
}
