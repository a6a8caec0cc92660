package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Competitor holds the schema definition for the Competitor entity.
// Competitors are created by the external scraping pipeline; the API only
// reads them.
type Competitor struct {
	ent.Schema
}

// Fields of the Competitor.
func (Competitor) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(200).
			Unique().
			Comment("Retailer name. Products reference competitors by this value, not by ID"),
		field.String("category").
			Optional().
			MaxLen(100).
			Comment("Primary market segment of the retailer"),
		field.String("website").
			Optional().
			Nillable().
			Comment("Retailer storefront URL"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Indexes of the Competitor.
func (Competitor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
