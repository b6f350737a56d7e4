package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/adaptutor/internal/engine"
	"github.com/abhisek/adaptutor/internal/learnstyle"
	"github.com/abhisek/adaptutor/internal/llm"
	"github.com/abhisek/adaptutor/internal/prompts"
	"github.com/abhisek/adaptutor/internal/transcript"
)

func process(t *testing.T) *engine.Result {
	t.Helper()
	e := engine.New()
	res, err := e.Process(context.Background(), engine.Turn{
		SessionID: "learner",
		Messages: []transcript.Message{{
			Role:      transcript.RoleUser,
			Content:   "I'm confused, can you draw a diagram?",
			Timestamp: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		}},
		Config:  prompts.Config{Mode: "socratic"},
		Context: prompts.Context{SubjectDomain: "mathematics"},
	})
	require.NoError(t, err)
	return res
}

func TestRender(t *testing.T) {
	res := process(t)
	out := Render(res, Options{Width: 80})

	assert.Contains(t, out, "Session learner")
	assert.Contains(t, out, "socratic_mathematics")
	assert.Contains(t, out, "Cognitive load")
	assert.Contains(t, out, string(res.Cognitive.Level))
	assert.Contains(t, out, "Learning style")
	assert.Contains(t, out, "visual")

	withPrompt := Render(res, Options{Width: 80, ShowPrompt: true})
	assert.Greater(t, len(withPrompt), len(out))
}

func TestRender_NarrowWidthClamped(t *testing.T) {
	res := process(t)
	assert.NotPanics(t, func() { Render(res, Options{Width: 5}) })
}

func TestStyle_OrdersByScore(t *testing.T) {
	out := Style(&learnstyle.Profile{
		DetectedStyle:   learnstyle.StyleAuditory,
		ConfidenceScore: 55,
		StyleDistribution: map[learnstyle.Style]float64{
			learnstyle.StyleVisual:   20,
			learnstyle.StyleAuditory: 55,
		},
	}, 60)

	assert.Less(t, strings.Index(out, "auditory  "), strings.Index(out, "visual"))
}

func TestSummary(t *testing.T) {
	out := Summary(&llm.SessionSummary{
		Summary:   "Worked through fractions.",
		Strengths: []string{"careful checking"},
		NextSteps: []string{"mixed numbers"},
	}, 60)

	assert.Contains(t, out, "Session summary")
	assert.Contains(t, out, "careful checking")
	assert.Contains(t, out, "Next steps")
	assert.NotContains(t, out, "Struggles")
}
