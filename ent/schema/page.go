package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Page is one screen of a course: prose, a quiz, or a skippable quiz.
// The correct answer is stored in the flat integer encoding plus an
// optional text form for free-response pages; the interpretation is
// keyed by test_type.
type Page struct {
	ent.Schema
}

func (Page) Fields() []ent.Field {
	return []ent.Field{
		field.String("page_id").
			Unique().
			NotEmpty().
			Comment("Stable external identifier"),
		field.String("course_id").
			NotEmpty().
			Comment("Owning course"),
		field.Int("number").
			Positive().
			Comment("1-based position within the course"),
		field.Int("length").
			Positive().
			Comment("Total pages in the course, denormalized for progress"),
		field.String("page_type").
			NotEmpty().
			Comment("text, test, or test-skippable"),
		field.String("test_type").
			Default("").
			Comment("Default, Multiple, Sequential, Pluggable, or Input"),
		field.String("grid").
			Default("").
			Comment("Option layout hint: column, grid-2, row"),
		field.String("header").Optional(),
		field.Text("body").Optional(),
		field.Text("question").Optional(),
		field.String("subject").Optional(),
		field.String("image").Optional(),
		field.Text("why").
			Optional().
			Comment("Rationale shown after a correct answer"),
		field.JSON("answer_flat", []int{}).
			Optional().
			Comment("Correct answer in the flat integer encoding"),
		field.String("answer_text").
			Optional().
			Comment("Canonical answer for free-response pages"),
		field.Bool("ai_graded").
			Default(false),
		field.Bool("give_feedback").
			Default(false),
		field.Bool("give_point").
			Default(false),
		field.Bool("give_point_by_ai").
			Default(false),
		field.Int("score_threshold").
			Default(0).
			Comment("Branch threshold; 0 means use the default"),
		field.String("low_score_page_id").
			Default(""),
		field.String("high_score_page_id").
			Default(""),
		field.Text("system_prompt").
			Optional().
			Comment("Grading persona for the oracle"),
		field.Text("tip").
			Optional().
			Comment("Remedial hint shown for low-band scores"),
	}
}

func (Page) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("page_id"),
		index.Fields("course_id"),
		index.Fields("course_id", "number").Unique(),
	}
}
