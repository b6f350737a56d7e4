package indicator

import "testing"

func TestKeywords_Score(t *testing.T) {
	kw := Keywords{"diagram", "chart"}

	tests := []struct {
		text string
		want float64
	}{
		{"Can you draw a DIAGRAM?", 1},
		{"a pie chart please", 1},
		{"just tell me", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := kw.Score(tt.text); got != tt.want {
			t.Errorf("Score(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestKeywords_WholeWords(t *testing.T) {
	tests := []struct {
		kw   Keywords
		text string
		want bool
	}{
		{Keywords{"help"}, "That was helpful, thanks.", false},
		{Keywords{"help"}, "Help! I need a hint", true},
		{Keywords{"fun"}, "So this function returns the sum.", false},
		{Keywords{"hate"}, "whatever, next one", false},
		{Keywords{"hate"}, "I hate fractions", true},
		{Keywords{"error"}, "I did terrorism homework in history", false},
		{Keywords{"graph"}, "I imagine this paragraph is fine", false},
		{Keywords{"image"}, "I imagine this paragraph is fine", false},
		{Keywords{"read"}, "I already did the geometry homework", false},
		{Keywords{"try"}, "geometry and chemistry", false},
		{Keywords{"give up"}, "I GIVE UP.", true},
		{Keywords{"give up"}, "give me a minute, I'm up for it", false},
		{Keywords{"don't get"}, "I don’t get it", true},
		{Keywords{"hands-on"}, "something hands on please", true},
		{Keywords{"real world"}, "a real-world example", true},
		{Keywords{""}, "anything", false},
	}
	for _, tt := range tests {
		if got := Matches(tt.kw, tt.text); got != tt.want {
			t.Errorf("%v matches %q = %v, want %v", tt.kw, tt.text, got, tt.want)
		}
	}
}

func TestPattern(t *testing.T) {
	p := MustPattern(`\bwhy\b.*\?`)
	if !Matches(p, "Why does this work?") {
		t.Error("expected match")
	}
	if Matches(p, "whyever not.") {
		t.Error("unexpected match")
	}
	if !Matches(MustPattern(`\bgraphs?\b`), "Two GRAPHS side by side") {
		t.Error("pattern should ignore case")
	}
}

func TestCountAndRatio(t *testing.T) {
	kw := Keywords{"help"}
	texts := []string{"help me", "ok", "HELP", "thanks"}

	if got := Count(kw, texts); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
	if got := Ratio(kw, texts); got != 0.5 {
		t.Errorf("Ratio = %v, want 0.5", got)
	}
	if got := Ratio(kw, nil); got != 0 {
		t.Errorf("Ratio(nil) = %v, want 0", got)
	}
}

func TestAny(t *testing.T) {
	s := Any(Keywords{"stuck"}, ScorerFunc(func(text string) float64 {
		if len(text) > 20 {
			return 0.5
		}
		return 0
	}))

	if got := s.Score("i am stuck"); got != 1 {
		t.Errorf("Score = %v, want 1", got)
	}
	if got := s.Score("a rather long sentence here"); got != 0.5 {
		t.Errorf("Score = %v, want 0.5", got)
	}
	if got := s.Score("fine"); got != 0 {
		t.Errorf("Score = %v, want 0", got)
	}
}
