package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisEvent is the outcome of one processed learner turn: the
// cognitive load and learning style analyses and the composed prompt.
type AnalysisEvent struct {
	ent.Schema
}

func (AnalysisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalysisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("load_level").
			Comment("low, optimal, high or overload"),
		field.String("learning_state"),
		field.Int("load_score"),
		field.Int("load_confidence"),
		field.String("detected_style"),
		field.Float("style_confidence"),
		field.String("mode").
			Default(""),
		field.String("subject").
			Default(""),
		field.Text("prompt").
			Default(""),
		field.Text("payload").
			Default("").
			Comment("Full analysis as JSON"),
	}
}

func (AnalysisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "sequence"),
	}
}
