package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PageProgress tracks the furthest page a user has reached in a course,
// so a reopened lesson resumes where they left off.
type PageProgress struct {
	ent.Schema
}

func (PageProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("course_id").
			NotEmpty(),
		field.Int("page_number").
			Positive().
			Comment("Highest 1-based page number reached"),
		field.Bool("completed").
			Default(false),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (PageProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "course_id").Unique(),
	}
}
