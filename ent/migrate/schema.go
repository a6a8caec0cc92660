// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompetitorsColumns holds the columns for the "competitors" table.
	CompetitorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 200},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CompetitorsTable holds the schema information for the "competitors" table.
	CompetitorsTable = &schema.Table{
		Name:       "competitors",
		Columns:    CompetitorsColumns,
		PrimaryKey: []*schema.Column{CompetitorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "competitor_name",
				Unique:  false,
				Columns: []*schema.Column{CompetitorsColumns[1]},
			},
		},
	}
	// PriceHistoriesColumns holds the columns for the "price_histories" table.
	PriceHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "product_id", Type: field.TypeInt},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "discount", Type: field.TypeFloat64, Default: 0},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// PriceHistoriesTable holds the schema information for the "price_histories" table.
	PriceHistoriesTable = &schema.Table{
		Name:       "price_histories",
		Columns:    PriceHistoriesColumns,
		PrimaryKey: []*schema.Column{PriceHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pricehistory_product_id",
				Unique:  false,
				Columns: []*schema.Column{PriceHistoriesColumns[1]},
			},
			{
				Name:    "pricehistory_product_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PriceHistoriesColumns[1], PriceHistoriesColumns[4]},
			},
			{
				Name:    "pricehistory_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PriceHistoriesColumns[4]},
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "competitor_name", Type: field.TypeString, Size: 200},
		{Name: "product_name", Type: field.TypeString},
		{Name: "product_url", Type: field.TypeString, Nullable: true},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "original_price", Type: field.TypeFloat64, Nullable: true},
		{Name: "discount", Type: field.TypeFloat64, Default: 0},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "sub_category", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "stock_status", Type: field.TypeString, Size: 30, Default: "in_stock"},
		{Name: "last_updated_at", Type: field.TypeTime},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "product_competitor_name",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[1]},
			},
			{
				Name:    "product_category",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[7]},
			},
			{
				Name:    "product_sub_category",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[8]},
			},
			{
				Name:    "product_category_stock_status",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[7], ProductsColumns[9]},
			},
			{
				Name:    "product_discount",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "marketing_analyst", "viewer"}, Default: "viewer"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompetitorsTable,
		PriceHistoriesTable,
		ProductsTable,
		UsersTable,
	}
)

func init() {
}
