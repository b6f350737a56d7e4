// Package learnstyle infers a learner's preferred VARK modality from what
// they write and how they interact.
package learnstyle

import (
	"math"

	"github.com/abhisek/adaptutor/internal/transcript"
)

const (
	// DefaultMixedGapThreshold is the largest gap between the top two
	// styles for which the learner is considered mixed.
	DefaultMixedGapThreshold = 15.0

	// DefaultMixedBlendWeight scales the top two scores into the mixed score.
	DefaultMixedBlendWeight = 0.6

	// MinConfidence is the confidence floor.
	MinConfidence = 30.0
)

// Analyzer classifies learning styles. Safe for concurrent use once built.
type Analyzer struct {
	indicators  []Indicator
	rules       map[Style][]EvidenceRule
	mixedGap    float64
	mixedWeight float64
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithIndicators replaces the indicator set.
func WithIndicators(ind []Indicator) Option {
	return func(a *Analyzer) { a.indicators = ind }
}

// WithMixedGapThreshold overrides DefaultMixedGapThreshold.
func WithMixedGapThreshold(gap float64) Option {
	return func(a *Analyzer) { a.mixedGap = gap }
}

// WithMixedBlendWeight overrides DefaultMixedBlendWeight.
func WithMixedBlendWeight(w float64) Option {
	return func(a *Analyzer) { a.mixedWeight = w }
}

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		indicators:  DefaultIndicators(),
		rules:       DefaultEvidenceRules(),
		mixedGap:    DefaultMixedGapThreshold,
		mixedWeight: DefaultMixedBlendWeight,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze builds a profile from behaviour data and message history.
// Empty input yields a mixed profile at the confidence floor.
func (a *Analyzer) Analyze(behavior BehaviorData, history []transcript.Message) *Profile {
	in := &Input{
		Behavior:  behavior,
		UserTexts: transcript.Contents(transcript.UserMessages(transcript.Clean(history))),
	}

	measured := make(map[string]Measurement, len(a.indicators))
	raw := make(map[Style]float64)
	for _, ind := range a.indicators {
		m := ind.Measure(in)
		measured[ind.Name] = m
		raw[ind.Style] += m.Value * ind.Weight
	}

	dist := a.distribution(raw)
	dominant, second := rank(dist)

	return &Profile{
		DetectedStyle:     dominant,
		ConfidenceScore:   confidence(dist[dominant], dist[second]),
		StyleDistribution: dist,
		Evidence:          a.evidence(dominant, dist, measured),
		Indicators:        measured,
	}
}

// distribution normalises raw category scores so the top one is 100 and
// applies the mixed-style rule.
func (a *Analyzer) distribution(raw map[Style]float64) map[Style]float64 {
	dist := make(map[Style]float64, len(AllStyles()))
	peak := 0.0
	for _, s := range AllStyles() {
		if s == StyleMixed {
			continue
		}
		peak = math.Max(peak, raw[s])
	}
	for _, s := range AllStyles() {
		if s == StyleMixed || peak == 0 {
			dist[s] = 0
			continue
		}
		dist[s] = raw[s] / peak * 100
	}
	if peak == 0 {
		return dist
	}

	top, second := topTwo(dist)
	if top-second < a.mixedGap {
		dist[StyleMixed] = a.mixedWeight * (top + second)
	}

	if m := dist[StyleMixed]; m > 100 {
		for s := range dist {
			dist[s] = dist[s] / m * 100
		}
	}
	return dist
}

// topTwo returns the two highest scores among the single styles.
func topTwo(dist map[Style]float64) (float64, float64) {
	var top, second float64
	for _, s := range AllStyles() {
		if s == StyleMixed {
			continue
		}
		v := dist[s]
		switch {
		case v > top:
			top, second = v, top
		case v > second:
			second = v
		}
	}
	return top, second
}

// rank returns the dominant and runner-up styles. Ties go to the style
// listed first in AllStyles. An all-zero distribution is mixed.
func rank(dist map[Style]float64) (Style, Style) {
	order := AllStyles()
	var best, next Style
	for _, s := range order {
		switch {
		case best == "" || dist[s] > dist[best]:
			best, next = s, best
		case next == "" || dist[s] > dist[next]:
			next = s
		}
	}
	if dist[best] == 0 {
		return StyleMixed, StyleVisual
	}
	return best, next
}

func confidence(dominant, second float64) float64 {
	c := math.Min(dominant+0.5*(dominant-second), 100)
	return math.Max(c, MinConfidence)
}
