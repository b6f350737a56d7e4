package cognitive

import (
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/abhisek/adaptutor/internal/indicator"
	"github.com/abhisek/adaptutor/internal/interaction"
	"github.com/abhisek/adaptutor/internal/transcript"
)

const (
	// TaskSwitchWindow bounds the log slice used for task switching.
	TaskSwitchWindow = 5 * time.Minute

	// EngagementWindow is how many recent interactions feed engagement.
	EngagementWindow = 10

	// LongWordLength is the rune count above which a word counts as long.
	LongWordLength = 8

	peakLoadThreshold     = 0.8
	recoveryLowThreshold  = 0.3
	recoveryHighThreshold = 0.5
)

// computeCurrent derives the recent-behaviour metrics.
func (a *Analyzer) computeCurrent(msgs []transcript.Message, log *interaction.Log, now time.Time) CurrentMetrics {
	user := transcript.Contents(transcript.UserMessages(msgs))

	return CurrentMetrics{
		ResponseDelay:          responseDelay(msgs),
		ErrorRate:              indicator.Ratio(a.indicators.Error, user),
		HelpRequests:           indicator.Count(a.indicators.Help, user),
		TaskSwitchingFrequency: taskSwitching(log.Since(now.Add(-TaskSwitchWindow))),
		MessageComplexity:      messageComplexity(user),
		ConfusionIndicators:    indicator.Count(a.indicators.Confusion, user),
		EngagementLevel:        engagement(log.Last(EngagementWindow)),
	}
}

// computeSession derives whole-session metrics from the log.
func (a *Analyzer) computeSession(sess *interaction.Session, now time.Time) SessionMetrics {
	events := sess.Log.Events()
	loads := make([]float64, len(events))
	for i, e := range events {
		loads[i] = a.eventLoad(e.Type)
	}

	m := SessionMetrics{
		TotalCognitiveLoad: totalLoad(loads),
		PeakLoadPoints:     peakLoadPoints(events, loads),
		RecoveryPeriods:    recoveryPeriods(events, loads),
		SessionDuration:    sessionMinutes(sess, now),
	}
	m.InteractionFrequency = float64(len(events)) / math.Max(m.SessionDuration, 1)
	m.OverallEfficiency = math.Min(math.Max(m.InteractionFrequency/2, 0), 1) * 100
	return m
}

func (a *Analyzer) eventLoad(t interaction.EventType) float64 {
	if v, ok := a.loadTable[t]; ok {
		return v
	}
	return defaultEventLoad
}

// responseDelay averages the gap between each assistant message and the
// user message immediately after it.
func responseDelay(msgs []transcript.Message) float64 {
	if len(msgs) < 2 {
		return 0
	}

	var total float64
	var pairs int
	for i := 0; i < len(msgs)-1; i++ {
		if msgs[i].Role != transcript.RoleAssistant || msgs[i+1].Role != transcript.RoleUser {
			continue
		}
		gap := msgs[i+1].Timestamp.Sub(msgs[i].Timestamp).Seconds()
		if gap < 0 {
			continue
		}
		total += gap
		pairs++
	}
	if pairs == 0 {
		return 0
	}
	return total / float64(pairs)
}

func taskSwitching(window []interaction.Event) float64 {
	if len(window) < 2 {
		return 0
	}
	switches := 0
	for i := 1; i < len(window); i++ {
		if window[i].Type != window[i-1].Type {
			switches++
		}
	}
	return float64(switches) / float64(len(window)-1)
}

func messageComplexity(texts []string) float64 {
	if len(texts) == 0 {
		return 0
	}

	var runes, long int
	for _, t := range texts {
		runes += utf8.RuneCountInString(t)
		for _, w := range strings.Fields(t) {
			w = strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
			if utf8.RuneCountInString(w) > LongWordLength {
				long++
			}
		}
	}
	meanLen := float64(runes) / float64(len(texts))
	return math.Min(meanLen/200+float64(long)/20, 1)
}

// engagement averages the per-type engagement score. An empty log is
// treated as neutral rather than disengaged.
func engagement(recent []interaction.Event) float64 {
	if len(recent) == 0 {
		return defaultEngagementScore
	}
	var sum float64
	for _, e := range recent {
		if v, ok := engagementScores[e.Type]; ok {
			sum += v
		} else {
			sum += defaultEngagementScore
		}
	}
	return sum / float64(len(recent))
}

func totalLoad(loads []float64) float64 {
	if len(loads) == 0 {
		return 0
	}
	var sum float64
	for _, l := range loads {
		sum += l
	}
	return math.Min(sum/float64(len(loads))*100, 100)
}

// peakLoadPoints returns the timestamps of local load maxima above the
// peak threshold. A plateau yields a single point at its first entry.
func peakLoadPoints(events []interaction.Event, loads []float64) []time.Time {
	var peaks []time.Time
	for i, l := range loads {
		if l <= peakLoadThreshold {
			continue
		}
		if i > 0 && loads[i-1] >= l {
			continue
		}
		if i < len(loads)-1 && loads[i+1] > l {
			continue
		}
		peaks = append(peaks, events[i].Timestamp)
	}
	return peaks
}

// recoveryPeriods measures how long it took load to climb back above the
// high threshold after dropping below the low threshold.
func recoveryPeriods(events []interaction.Event, loads []float64) []time.Duration {
	var periods []time.Duration
	var start time.Time
	inDip := false
	for i, l := range loads {
		switch {
		case !inDip && l < recoveryLowThreshold:
			start = events[i].Timestamp
			inDip = true
		case inDip && l > recoveryHighThreshold:
			periods = append(periods, events[i].Timestamp.Sub(start))
			inDip = false
		}
	}
	return periods
}

func sessionMinutes(sess *interaction.Session, now time.Time) float64 {
	start := sess.StartedAt
	if first, ok := sess.Log.First(); ok && (start.IsZero() || first.Timestamp.Before(start)) {
		start = first.Timestamp
	}
	if start.IsZero() {
		return 0
	}
	return math.Max(now.Sub(start).Minutes(), 0)
}
