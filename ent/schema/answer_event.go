package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single submitted answer.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("One lesson sitting"),
		field.String("course_id").
			NotEmpty(),
		field.String("page_id").
			NotEmpty(),
		field.String("test_type").
			NotEmpty(),
		field.JSON("selection_flat", []int{}).
			Optional().
			Comment("Learner selection in the flat integer encoding"),
		field.String("selection_text").
			Default("").
			Comment("Free-response text, empty for option-based pages"),
		field.Bool("correct"),
		field.Int("ai_score").
			Optional().
			Nillable().
			Comment("Oracle score 0-100, absent for locally validated pages"),
		field.Int("time_ms").
			Comment("Milliseconds from page display to submit"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("course_id"),
		index.Fields("page_id"),
		index.Fields("correct"),
	}
}
