// Package indicator isolates text-matching heuristics behind a single
// Scorer interface so aggregation and classification logic never depend on
// how a signal is detected.
package indicator

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// Scorer measures how strongly a piece of text exhibits a signal.
// Implementations return a value in [0, 1].
type Scorer interface {
	Score(text string) float64
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(text string) float64

func (f ScorerFunc) Score(text string) float64 { return f(text) }

// Keywords matches whole words and phrases, ignoring case and
// punctuation: "help" matches "Help!" but not "helpful", and "give up"
// matches "I give up." Entries must be lowercase.
type Keywords []string

// Score returns 1 if any keyword occurs in text, else 0.
func (k Keywords) Score(text string) float64 {
	words := splitWords(text)
	for _, kw := range k {
		if containsPhrase(words, splitWords(kw)) {
			return 1
		}
	}
	return 0
}

// splitWords splits text into lowercase words. Letters, digits and apostrophes
// form words; everything else separates them. Curly apostrophes are
// folded to straight ones.
func splitWords(text string) []string {
	text = strings.ToLower(strings.ReplaceAll(text, "’", "'"))
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func containsPhrase(words, phrase []string) bool {
	if len(phrase) == 0 {
		return false
	}
	for i := 0; i+len(phrase) <= len(words); i++ {
		if slices.Equal(words[i:i+len(phrase)], phrase) {
			return true
		}
	}
	return false
}

// Pattern is a regexp-backed scorer.
type Pattern struct {
	re *regexp.Regexp
}

// MustPattern compiles expr into a Pattern, panicking on a bad expression.
// Matching is case-insensitive. Intended for package-level tables.
func MustPattern(expr string) Pattern {
	return Pattern{re: regexp.MustCompile("(?i)" + expr)}
}

// Score returns 1 if the pattern matches text, else 0.
func (p Pattern) Score(text string) float64 {
	if p.re.MatchString(text) {
		return 1
	}
	return 0
}

// Any combines scorers; the result is the strongest individual score.
func Any(scorers ...Scorer) Scorer {
	return ScorerFunc(func(text string) float64 {
		best := 0.0
		for _, s := range scorers {
			if v := s.Score(text); v > best {
				best = v
			}
		}
		return best
	})
}

// Matches reports whether s scores text above zero.
func Matches(s Scorer, text string) bool {
	return s.Score(text) > 0
}

// Count returns how many texts s matches.
func Count(s Scorer, texts []string) int {
	n := 0
	for _, t := range texts {
		if Matches(s, t) {
			n++
		}
	}
	return n
}

// Ratio returns the fraction of texts s matches, or 0 for no texts.
func Ratio(s Scorer, texts []string) float64 {
	if len(texts) == 0 {
		return 0
	}
	return float64(Count(s, texts)) / float64(len(texts))
}
