// Code generated by ent, DO NOT EDIT.

package product

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the product type in the database.
	Label = "product"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompetitorName holds the string denoting the competitor_name field in the database.
	FieldCompetitorName = "competitor_name"
	// FieldProductName holds the string denoting the product_name field in the database.
	FieldProductName = "product_name"
	// FieldProductURL holds the string denoting the product_url field in the database.
	FieldProductURL = "product_url"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldOriginalPrice holds the string denoting the original_price field in the database.
	FieldOriginalPrice = "original_price"
	// FieldDiscount holds the string denoting the discount field in the database.
	FieldDiscount = "discount"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSubCategory holds the string denoting the sub_category field in the database.
	FieldSubCategory = "sub_category"
	// FieldStockStatus holds the string denoting the stock_status field in the database.
	FieldStockStatus = "stock_status"
	// FieldLastUpdatedAt holds the string denoting the last_updated_at field in the database.
	FieldLastUpdatedAt = "last_updated_at"
	// Table holds the table name of the product in the database.
	Table = "products"
)

// Columns holds all SQL columns for product fields.
var Columns = []string{
	FieldID,
	FieldCompetitorName,
	FieldProductName,
	FieldProductURL,
	FieldPrice,
	FieldOriginalPrice,
	FieldDiscount,
	FieldCategory,
	FieldSubCategory,
	FieldStockStatus,
	FieldLastUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CompetitorNameValidator is a validator for the "competitor_name" field. It is called by the builders before save.
	CompetitorNameValidator func(string) error
	// ProductNameValidator is a validator for the "product_name" field. It is called by the builders before save.
	ProductNameValidator func(string) error
	// PriceValidator is a validator for the "price" field. It is called by the builders before save.
	PriceValidator func(float64) error
	// DefaultDiscount holds the default value on creation for the "discount" field.
	DefaultDiscount float64
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// SubCategoryValidator is a validator for the "sub_category" field. It is called by the builders before save.
	SubCategoryValidator func(string) error
	// DefaultStockStatus holds the default value on creation for the "stock_status" field.
	DefaultStockStatus string
	// StockStatusValidator is a validator for the "stock_status" field. It is called by the builders before save.
	StockStatusValidator func(string) error
	// DefaultLastUpdatedAt holds the default value on creation for the "last_updated_at" field.
	DefaultLastUpdatedAt func() time.Time
	// UpdateDefaultLastUpdatedAt holds the default value on update for the "last_updated_at" field.
	UpdateDefaultLastUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Product queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompetitorName orders the results by the competitor_name field.
func ByCompetitorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompetitorName, opts...).ToFunc()
}

// ByProductName orders the results by the product_name field.
func ByProductName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductName, opts...).ToFunc()
}

// ByProductURL orders the results by the product_url field.
func ByProductURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductURL, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByOriginalPrice orders the results by the original_price field.
func ByOriginalPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalPrice, opts...).ToFunc()
}

// ByDiscount orders the results by the discount field.
func ByDiscount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscount, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// BySubCategory orders the results by the sub_category field.
func BySubCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubCategory, opts...).ToFunc()
}

// ByStockStatus orders the results by the stock_status field.
func ByStockStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStockStatus, opts...).ToFunc()
}

// ByLastUpdatedAt orders the results by the last_updated_at field.
func ByLastUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdatedAt, opts...).ToFunc()
}
