package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PageOption is a clickable answer choice on a quiz page. option_id is
// the page-local integer the answer encodings refer to.
type PageOption struct {
	ent.Schema
}

func (PageOption) Fields() []ent.Field {
	return []ent.Field{
		field.String("page_id").
			NotEmpty().
			Comment("Owning page"),
		field.Int("option_id").
			Positive().
			Comment("Page-local id referenced by answer encodings"),
		field.Text("text").
			NotEmpty(),
		field.Int("option_order").
			Comment("Display order within the page"),
		field.Bool("correct").
			Default(false).
			Comment("Denormalized correctness flag, informational only"),
		field.String("icon").
			Default(""),
	}
}

func (PageOption) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("page_id"),
		index.Fields("page_id", "option_id").Unique(),
	}
}
