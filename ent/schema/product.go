package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Product holds the schema definition for the Product entity.
//
// A product belongs to exactly one competitor, referenced by the
// competitor_name string rather than a foreign key. The scraping pipeline
// matches catalogs by retailer name, so every aggregation joins on
// Competitor.name equality. Renaming a competitor orphans its products.
type Product struct {
	ent.Schema
}

// Fields of the Product.
func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.String("competitor_name").
			NotEmpty().
			MaxLen(200).
			Comment("Owning retailer, matched against Competitor.name"),
		field.String("product_name").
			NotEmpty().
			Comment("Display name as scraped"),
		field.String("product_url").
			Optional().
			Comment("Source page the product was scraped from"),
		field.Float("price").
			Min(0).
			Comment("Current price. Zero means the scraper could not read a price"),
		field.Float("original_price").
			Optional().
			Nillable().
			Comment("Pre-promotion price when the retailer displays one"),
		field.Float("discount").
			Default(0).
			Comment("Discount percentage. Greater than zero means an active promotion"),
		field.String("category").
			Optional().
			MaxLen(100).
			Comment("Top-level catalog category"),
		field.String("sub_category").
			Optional().
			MaxLen(100).
			Comment("Second-level catalog category"),
		field.String("stock_status").
			Default("in_stock").
			MaxLen(30).
			Comment("Stock state as scraped: in_stock, out_of_stock"),
		field.Time("last_updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last time the scraper refreshed this product"),
	}
}

// Indexes of the Product.
func (Product) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("competitor_name"),
		index.Fields("category"),
		index.Fields("sub_category"),
		index.Fields("category", "stock_status"),
		index.Fields("discount"),
	}
}
