package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PriceHistory holds the schema definition for the PriceHistory entity.
// Snapshots are appended by the scraping pipeline and never mutated or
// deleted by the API. The two most recent snapshots of a product define its
// latest price change.
type PriceHistory struct {
	ent.Schema
}

// Fields of the PriceHistory.
func (PriceHistory) Fields() []ent.Field {
	return []ent.Field{
		field.Int("product_id").
			Comment("Product this snapshot belongs to"),
		field.Float("price").
			Min(0).
			Comment("Observed price at snapshot time"),
		field.Float("discount").
			Default(0).
			Comment("Observed discount percentage at snapshot time"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("Observation time"),
	}
}

// Indexes of the PriceHistory.
func (PriceHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("product_id"),
		index.Fields("product_id", "timestamp"),
		index.Fields("timestamp"),
	}
}
