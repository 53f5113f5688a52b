package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Course is a lesson: an ordered sequence of pages the learner works
// through top to bottom.
type Course struct {
	ent.Schema
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").
			Unique().
			NotEmpty().
			Comment("Stable external identifier"),
		field.String("title").
			NotEmpty(),
		field.String("subject").
			Default("").
			Comment("Topic label handed to the grading oracle"),
	}
}

func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
	}
}
