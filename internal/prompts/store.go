// Package prompts resolves tutoring templates and composes them into the
// system instruction sent to the language model.
package prompts

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

// defaultTemplate is the last link of the resolution chain.
var defaultTemplate = Template{
	ID:      "default",
	Mode:    "default",
	Subject: SubjectGeneral,
	BaseTemplate: "You are a patient, adaptive tutor helping a learner with {subject_domain}. " +
		"Respond to the learner's message, check their understanding as you go, and adjust " +
		"your explanations to what they already know.\n\nLearner message: {user_message}",
	Metadata: Metadata{Description: "Fallback template used when no mode matches", Version: "1"},
}

// Store holds templates keyed by mode and subject.
type Store struct {
	templates map[string]*Template
}

type templateFile struct {
	Templates []Template `yaml:"templates"`
}

// Load returns the store of embedded templates. If the embedded document
// is unreadable the store still resolves to the default template.
func Load() *Store {
	s := &Store{templates: make(map[string]*Template)}
	_ = s.add(templatesYAML)
	return s
}

// LoadFile returns the embedded templates overlaid with those in path.
// Templates in the file replace embedded ones with the same mode and subject.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	s := Load()
	if err := s.add(data); err != nil {
		return nil, fmt.Errorf("parse templates %s: %w", path, err)
	}
	return s, nil
}

func (s *Store) add(data []byte) error {
	var f templateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	for i := range f.Templates {
		t := f.Templates[i]
		if strings.TrimSpace(t.BaseTemplate) == "" {
			return fmt.Errorf("template %q has an empty base_template", t.ID)
		}
		t.Mode = normalize(t.Mode)
		t.Subject = normalize(t.Subject)
		if t.Subject == "" {
			t.Subject = SubjectGeneral
		}
		if t.ID == "" {
			t.ID = key(t.Mode, t.Subject)
		}
		s.templates[key(t.Mode, t.Subject)] = &t
	}
	return nil
}

// Resolve returns the template for mode and subject, falling back to the
// mode's general template and then to the built-in default. It never
// returns nil.
func (s *Store) Resolve(mode, subject string) *Template {
	mode, subject = normalize(mode), normalize(subject)
	if t, ok := s.templates[key(mode, subject)]; ok {
		return t
	}
	if t, ok := s.templates[key(mode, SubjectGeneral)]; ok {
		return t
	}
	return &defaultTemplate
}

// Templates returns every stored template ordered by mode then subject.
func (s *Store) Templates() []*Template {
	out := make([]*Template, 0, len(s.templates))
	for _, t := range s.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mode != out[j].Mode {
			return out[i].Mode < out[j].Mode
		}
		return out[i].Subject < out[j].Subject
	})
	return out
}

// Modes returns the distinct teaching modes in sorted order.
func (s *Store) Modes() []string {
	seen := make(map[string]bool)
	var modes []string
	for _, t := range s.templates {
		if !seen[t.Mode] {
			seen[t.Mode] = true
			modes = append(modes, t.Mode)
		}
	}
	sort.Strings(modes)
	return modes
}

func key(mode, subject string) string {
	return mode + "_" + subject
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
