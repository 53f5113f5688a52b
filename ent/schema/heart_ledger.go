package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HeartLedger is the one-row-per-user lives balance. updated_at anchors
// the regeneration window; rows are created lazily on the first spend.
type HeartLedger struct {
	ent.Schema
}

func (HeartLedger) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty(),
		field.Int("hearts").
			Default(3).
			Min(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (HeartLedger) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
