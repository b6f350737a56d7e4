package prompts

import (
	"strconv"
	"strings"
)

// Composer turns a template plus personalisation into a system instruction.
// Generate is deterministic and performs no I/O.
type Composer struct {
	store *Store
}

func NewComposer(store *Store) *Composer {
	if store == nil {
		store = Load()
	}
	return &Composer{store: store}
}

// Store returns the composer's template store.
func (c *Composer) Store() *Store {
	return c.store
}

// ConfidenceBucket maps a 0-100 confidence level to a snippet key.
func ConfidenceBucket(level float64) string {
	switch {
	case level < 30:
		return "low"
	case level < 60:
		return "medium"
	case level < 80:
		return "high"
	default:
		return "very_high"
	}
}

// Generate composes the instruction for one turn. Sections are joined with
// a blank line. Unknown option values contribute nothing.
func (c *Composer) Generate(cfg Config, ctx Context, userMessage string) string {
	t := c.store.Resolve(cfg.Mode, ctx.SubjectDomain)
	p := cfg.Personalization
	vars := t.PersonalizationVariables

	var sections []string
	add := func(s string) {
		if s != "" {
			sections = append(sections, s)
		}
	}

	add(t.BaseTemplate)
	add(pick(vars.LearningStyleAdaptations, learningStyleSnippets, p.LearningStyle))
	add(pick(vars.ConfidenceLevelAdaptations, confidenceSnippets, ConfidenceBucket(p.ConfidenceLevel)))
	add(complexitySnippets[normalize(p.PreferredComplexity)])
	add(lengthSnippets[normalize(p.ResponseLength)])

	// Placeholders are substituted in the template and personalisation
	// text only; later sections are fixed directives.
	body := substitute(strings.Join(sections, "\n\n"), cfg, ctx, userMessage)
	sections = []string{body}

	add(pick(vars.CognitiveLoadAdaptations, loadSnippets, ctx.CognitiveLoad.CurrentLevel))
	if ctx.CognitiveLoad.AutoAdjustment {
		add(monitoringSnippet)
	}
	if ctx.SessionDuration > FatigueMinutes {
		add(pick(t.ConditionalLogic, map[string]string{"fatigue": fatigueSnippet}, "fatigue"))
	}
	if perf := normalize(ctx.RecentPerformance); perf != "" {
		add(pick(t.ConditionalLogic, prefixed("tone_", toneSnippets), "tone_"+perf))
	}
	add(subjectSnippets[normalize(ctx.SubjectDomain)])

	return strings.Join(sections, "\n\n")
}

// pick prefers the template override for key, then the built-in snippet.
func pick(override, builtin map[string]string, key string) string {
	key = normalize(key)
	if key == "" {
		return ""
	}
	if s, ok := override[key]; ok && s != "" {
		return s
	}
	return builtin[key]
}

func prefixed(prefix string, m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[prefix+k] = v
	}
	return out
}

func substitute(text string, cfg Config, ctx Context, userMessage string) string {
	r := strings.NewReplacer(
		"{user_message}", userMessage,
		"{subject_domain}", ctx.SubjectDomain,
		"{task_type}", cfg.TaskType,
		"{session_duration}", strconv.FormatFloat(ctx.SessionDuration, 'f', -1, 64),
		"{performance_level}", ctx.RecentPerformance,
	)
	return r.Replace(text)
}
