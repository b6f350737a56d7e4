package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_EmbeddedTemplates(t *testing.T) {
	s := Load()

	wantModes := []string{ModeExplanatory, ModeGuidedPractice, ModeReview, ModeSocratic}
	got := s.Modes()
	if strings.Join(got, ",") != strings.Join(wantModes, ",") {
		t.Errorf("modes = %v, want %v", got, wantModes)
	}
	for _, mode := range wantModes {
		if tpl := s.Resolve(mode, SubjectGeneral); tpl.ID != mode+"_general" {
			t.Errorf("Resolve(%s, general) = %q", mode, tpl.ID)
		}
	}
}

func TestResolve_FallbackChain(t *testing.T) {
	s := Load()

	tests := []struct {
		mode, subject string
		want          string
	}{
		{"socratic", "mathematics", "socratic_mathematics"},
		{"Socratic", " Mathematics ", "socratic_mathematics"},
		{"socratic", "chemistry", "socratic_general"},
		{"review", "", "review_general"},
		{"lecture", "mathematics", "default"},
		{"", "", "default"},
	}
	for _, tt := range tests {
		if got := s.Resolve(tt.mode, tt.subject); got.ID != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.mode, tt.subject, got.ID, tt.want)
		}
	}
}

func TestResolve_NeverEmpty(t *testing.T) {
	s := Load()
	modes := append(s.Modes(), "", "unknown", "SOCRATIC")
	subjects := []string{"", "general", "mathematics", "science", "writing", "programming", "history", "literature", "astrology"}
	for _, m := range modes {
		for _, subj := range subjects {
			if tpl := s.Resolve(m, subj); tpl == nil || strings.TrimSpace(tpl.BaseTemplate) == "" {
				t.Errorf("Resolve(%q, %q) returned empty template", m, subj)
			}
		}
	}
}

func TestGenerate_MathematicsSocratic(t *testing.T) {
	c := NewComposer(Load())
	out := c.Generate(
		Config{Mode: ModeSocratic, TaskType: "homework"},
		Context{SubjectDomain: "mathematics"},
		"What is 3/4 + 1/8?",
	)

	if !strings.Contains(out, "Socratic mathematics tutor") {
		t.Error("missing socratic_mathematics base template")
	}
	if !strings.Contains(out, subjectSnippets["mathematics"]) {
		t.Error("missing mathematics directive")
	}
	if !strings.Contains(out, "Learner message: What is 3/4 + 1/8?") {
		t.Error("user message not substituted")
	}
	if !strings.Contains(out, "The current task is homework.") {
		t.Error("task type not substituted")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	c := NewComposer(nil)
	cfg := Config{
		Mode:     ModeExplanatory,
		TaskType: "concept",
		Personalization: PersonalizationConfig{
			LearningStyle:       "visual",
			ConfidenceLevel:     45,
			PreferredComplexity: ComplexityModerate,
			ResponseLength:      LengthAdaptive,
		},
	}
	ctx := Context{
		SubjectDomain:     "science",
		SessionDuration:   42,
		RecentPerformance: PerformanceAverage,
		CognitiveLoad:     CognitiveLoadContext{CurrentLevel: "high", AutoAdjustment: true},
	}

	first := c.Generate(cfg, ctx, "why is the sky blue?")
	for i := 0; i < 5; i++ {
		if got := c.Generate(cfg, ctx, "why is the sky blue?"); got != first {
			t.Fatalf("call %d differs from the first", i)
		}
	}
}

func TestGenerate_SectionOrder(t *testing.T) {
	c := NewComposer(nil)
	out := c.Generate(
		Config{
			Mode: ModeExplanatory,
			Personalization: PersonalizationConfig{
				LearningStyle:       "kinesthetic",
				ConfidenceLevel:     90,
				PreferredComplexity: ComplexitySimple,
				ResponseLength:      LengthBrief,
			},
		},
		Context{
			SubjectDomain:     "writing",
			SessionDuration:   31,
			RecentPerformance: PerformanceExcellent,
			CognitiveLoad:     CognitiveLoadContext{CurrentLevel: "overload", AutoAdjustment: true},
		},
		"help me with my essay",
	)

	order := []string{
		"clear, structured tutor for writing",
		learningStyleSnippets["kinesthetic"],
		confidenceSnippets["very_high"],
		complexitySnippets[ComplexitySimple],
		lengthSnippets[LengthBrief],
		loadSnippets["overload"],
		monitoringSnippet,
		fatigueSnippet,
		toneSnippets[PerformanceExcellent],
		subjectSnippets["writing"],
	}
	last := -1
	for _, want := range order {
		idx := strings.Index(out, want)
		if idx < 0 {
			t.Fatalf("missing section %q", want)
		}
		if idx <= last {
			t.Errorf("section %q out of order", want)
		}
		last = idx
	}
}

func TestGenerate_OptionalSections(t *testing.T) {
	c := NewComposer(nil)
	out := c.Generate(
		Config{Mode: ModeReview, Personalization: PersonalizationConfig{ConfidenceLevel: 10, PreferredComplexity: "baroque"}},
		Context{SubjectDomain: "astrology", SessionDuration: 30},
		"quiz me",
	)

	for _, absent := range []string{monitoringSnippet, fatigueSnippet, toneSnippets[PerformanceAverage]} {
		if strings.Contains(out, absent) {
			t.Errorf("unexpected section %q", absent)
		}
	}
	for _, s := range subjectSnippets {
		if strings.Contains(out, s) {
			t.Errorf("unexpected subject directive %q", s)
		}
	}
	if !strings.Contains(out, confidenceSnippets["low"]) {
		t.Error("missing low confidence snippet")
	}
	if strings.Contains(out, "\n\n\n") {
		t.Error("empty sections leaked into output")
	}
}

func TestGenerate_TemplateOverrides(t *testing.T) {
	c := NewComposer(nil)
	out := c.Generate(
		Config{Mode: ModeReview},
		Context{SubjectDomain: "geography", SessionDuration: 45},
		"",
	)
	if !strings.Contains(out, "This has been a long review.") {
		t.Error("template fatigue override not applied")
	}
	if strings.Contains(out, fatigueSnippet) {
		t.Error("default fatigue note should be replaced")
	}

	out = c.Generate(
		Config{Mode: ModeSocratic},
		Context{SubjectDomain: "mathematics", CognitiveLoad: CognitiveLoadContext{CurrentLevel: "overload"}},
		"",
	)
	if !strings.Contains(out, "Work one line of the problem at a time") {
		t.Error("template load override not applied")
	}
	if strings.Contains(out, loadSnippets["overload"]) {
		t.Error("default overload directive should be replaced")
	}
}

func TestGenerate_UnknownPlaceholdersKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := `templates:
  - mode: drill
    base_template: "Drill {subject_domain} for {session_duration} minutes at {performance_level}. {mystery}"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Resolve(ModeSocratic, "mathematics").ID != "socratic_mathematics" {
		t.Error("embedded templates lost after overlay")
	}

	out := NewComposer(s).Generate(
		Config{Mode: "drill"},
		Context{SubjectDomain: "history", SessionDuration: 12.5, RecentPerformance: PerformancePoor},
		"",
	)
	if !strings.HasPrefix(out, "Drill history for 12.5 minutes at poor. {mystery}") {
		t.Errorf("unexpected substitution: %q", strings.SplitN(out, "\n", 2)[0])
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "empty.yaml")
	doc := "templates:\n  - mode: drill\n    base_template: \"  \"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for empty base template")
	}
}

func TestConfidenceBucket(t *testing.T) {
	tests := []struct {
		level float64
		want  string
	}{
		{0, "low"}, {29.9, "low"}, {30, "medium"}, {59, "medium"},
		{60, "high"}, {79.99, "high"}, {80, "very_high"}, {100, "very_high"},
	}
	for _, tt := range tests {
		if got := ConfidenceBucket(tt.level); got != tt.want {
			t.Errorf("ConfidenceBucket(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
