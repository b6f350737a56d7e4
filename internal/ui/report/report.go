// Package report renders engine results for the terminal.
package report

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adaptutor/internal/cognitive"
	"github.com/abhisek/adaptutor/internal/engine"
	"github.com/abhisek/adaptutor/internal/learnstyle"
	"github.com/abhisek/adaptutor/internal/llm"
	"github.com/abhisek/adaptutor/internal/ui/components"
	"github.com/abhisek/adaptutor/internal/ui/theme"
)

// MinWidth is the narrowest width the report lays out for.
const MinWidth = 40

// Options controls what Render includes.
type Options struct {
	Width      int
	ShowPrompt bool
}

// Render renders a processed turn.
func Render(res *engine.Result, opts Options) string {
	width := opts.Width
	if width < MinWidth {
		width = MinWidth
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session "+res.SessionID) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("template %s · mode %s · %s",
		res.TemplateID, res.Config.Mode, res.Context.SubjectDomain)) + "\n\n")

	if res.Cognitive != nil {
		b.WriteString(card("Cognitive load", Cognitive(res.Cognitive, width-4), width) + "\n")
	}
	if res.LearningStyle != nil {
		b.WriteString(card("Learning style", Style(res.LearningStyle, width-4), width) + "\n")
	}
	if opts.ShowPrompt && res.Prompt != "" {
		b.WriteString(card("Prompt", theme.Body.Width(width-4).Render(res.Prompt), width) + "\n")
	}
	return b.String()
}

// Cognitive renders the load analysis body.
func Cognitive(a *cognitive.Analysis, width int) string {
	var lines []string

	gauge := components.NewGauge("Score", float64(a.Score), width)
	gauge.Fill = theme.LevelColor(a.Level)
	lines = append(lines,
		row("Level", theme.LevelStyle(a.Level).Render(string(a.Level))),
		row("State", theme.StateStyle(a.State).Render(string(a.State))),
		gauge.View(),
		row("Confidence", fmt.Sprintf("%d%%", a.Confidence)),
	)

	cur := a.Metrics.Current
	lines = append(lines,
		"",
		row("Response delay", fmt.Sprintf("%.1fs", cur.ResponseDelay)),
		row("Error rate", fmt.Sprintf("%.0f%%", cur.ErrorRate*100)),
		row("Help requests", fmt.Sprintf("%d", cur.HelpRequests)),
		row("Task switching", fmt.Sprintf("%.2f", cur.TaskSwitchingFrequency)),
		row("Complexity", fmt.Sprintf("%.2f", cur.MessageComplexity)),
		row("Confusion signals", fmt.Sprintf("%d", cur.ConfusionIndicators)),
		row("Engagement", fmt.Sprintf("%.2f", cur.EngagementLevel)),
	)

	sess := a.Metrics.Session
	lines = append(lines,
		row("Session", fmt.Sprintf("%.1f min · %.1f/min · efficiency %.0f",
			sess.SessionDuration, sess.InteractionFrequency, sess.OverallEfficiency)),
	)

	rec := a.Recommendations
	lines = appendList(lines, "Do now", rec.ImmediateActions)
	lines = appendList(lines, "Teaching", rec.TeachingAdjustments)
	lines = appendList(lines, "Content", rec.ContentModifications)
	lines = appendList(lines, "Breaks", rec.BreakSuggestions)

	return strings.Join(lines, "\n")
}

// Style renders the learning-style profile body. Distribution bars are
// listed from strongest to weakest.
func Style(p *learnstyle.Profile, width int) string {
	lines := []string{
		row("Detected", lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(string(p.DetectedStyle))),
		row("Confidence", fmt.Sprintf("%.0f%%", p.ConfidenceScore)),
		"",
	}

	styles := make([]learnstyle.Style, 0, len(p.StyleDistribution))
	for s := range p.StyleDistribution {
		styles = append(styles, s)
	}
	order := make(map[learnstyle.Style]int)
	for i, s := range learnstyle.AllStyles() {
		order[s] = i
	}
	sort.Slice(styles, func(i, j int) bool {
		a, b := p.StyleDistribution[styles[i]], p.StyleDistribution[styles[j]]
		if a != b {
			return a > b
		}
		return order[styles[i]] < order[styles[j]]
	})
	for _, s := range styles {
		lines = append(lines, components.NewGauge(string(s), p.StyleDistribution[s], width).View())
	}

	lines = appendList(lines, "Evidence", p.Evidence)
	return strings.Join(lines, "\n")
}

// Summary renders an end-of-session summary.
func Summary(s *llm.SessionSummary, width int) string {
	if width < MinWidth {
		width = MinWidth
	}
	lines := []string{theme.Body.Width(width - 4).Render(s.Summary)}
	lines = appendList(lines, "Strengths", s.Strengths)
	lines = appendList(lines, "Struggles", s.Struggles)
	lines = appendList(lines, "Next steps", s.NextSteps)
	return card("Session summary", strings.Join(lines, "\n"), width)
}

func card(title, body string, width int) string {
	return theme.Card.Width(width).Render(theme.Title.Render(title) + "\n" + body)
}

func row(label, value string) string {
	return theme.Label.Render(label) + value
}

func appendList(lines []string, heading string, items []string) []string {
	if len(items) == 0 {
		return lines
	}
	lines = append(lines, "", theme.Subtitle.Bold(true).Render(heading))
	for _, it := range items {
		lines = append(lines, "  • "+it)
	}
	return lines
}
