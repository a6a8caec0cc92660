// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Competitor is the predicate function for competitor builders.
type Competitor func(*sql.Selector)

// PriceHistory is the predicate function for pricehistory builders.
type PriceHistory func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
