package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DailyFlag is the per-user daily-challenge prompt state. Days are
// stored as YYYY-MM-DD strings in the user's local zone so a calendar
// day compares with plain equality.
type DailyFlag struct {
	ent.Schema
}

func (DailyFlag) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty(),
		field.String("last_shown").
			Default("").
			Comment("Day the prompt was last shown, YYYY-MM-DD"),
		field.Time("declined_until").
			Optional().
			Comment("Prompt suppressed until this instant"),
		field.String("completed_day").
			Default("").
			Comment("Day the challenge was last completed, YYYY-MM-DD"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (DailyFlag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
