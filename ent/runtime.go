// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/pricewatch/pricewatch/ent/competitor"
	"github.com/pricewatch/pricewatch/ent/pricehistory"
	"github.com/pricewatch/pricewatch/ent/product"
	"github.com/pricewatch/pricewatch/ent/schema"
	"github.com/pricewatch/pricewatch/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	competitorFields := schema.Competitor{}.Fields()
	_ = competitorFields
	// competitorDescName is the schema descriptor for name field.
	competitorDescName := competitorFields[0].Descriptor()
	// competitor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	competitor.NameValidator = func() func(string) error {
		validators := competitorDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// competitorDescCategory is the schema descriptor for category field.
	competitorDescCategory := competitorFields[1].Descriptor()
	// competitor.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	competitor.CategoryValidator = competitorDescCategory.Validators[0].(func(string) error)
	// competitorDescCreatedAt is the schema descriptor for created_at field.
	competitorDescCreatedAt := competitorFields[3].Descriptor()
	// competitor.DefaultCreatedAt holds the default value on creation for the created_at field.
	competitor.DefaultCreatedAt = competitorDescCreatedAt.Default.(func() time.Time)
	pricehistoryFields := schema.PriceHistory{}.Fields()
	_ = pricehistoryFields
	// pricehistoryDescPrice is the schema descriptor for price field.
	pricehistoryDescPrice := pricehistoryFields[1].Descriptor()
	// pricehistory.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	pricehistory.PriceValidator = pricehistoryDescPrice.Validators[0].(func(float64) error)
	// pricehistoryDescDiscount is the schema descriptor for discount field.
	pricehistoryDescDiscount := pricehistoryFields[2].Descriptor()
	// pricehistory.DefaultDiscount holds the default value on creation for the discount field.
	pricehistory.DefaultDiscount = pricehistoryDescDiscount.Default.(float64)
	// pricehistoryDescTimestamp is the schema descriptor for timestamp field.
	pricehistoryDescTimestamp := pricehistoryFields[3].Descriptor()
	// pricehistory.DefaultTimestamp holds the default value on creation for the timestamp field.
	pricehistory.DefaultTimestamp = pricehistoryDescTimestamp.Default.(func() time.Time)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescCompetitorName is the schema descriptor for competitor_name field.
	productDescCompetitorName := productFields[0].Descriptor()
	// product.CompetitorNameValidator is a validator for the "competitor_name" field. It is called by the builders before save.
	product.CompetitorNameValidator = func() func(string) error {
		validators := productDescCompetitorName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(competitor_name string) error {
			for _, fn := range fns {
				if err := fn(competitor_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// productDescProductName is the schema descriptor for product_name field.
	productDescProductName := productFields[1].Descriptor()
	// product.ProductNameValidator is a validator for the "product_name" field. It is called by the builders before save.
	product.ProductNameValidator = productDescProductName.Validators[0].(func(string) error)
	// productDescPrice is the schema descriptor for price field.
	productDescPrice := productFields[3].Descriptor()
	// product.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	product.PriceValidator = productDescPrice.Validators[0].(func(float64) error)
	// productDescDiscount is the schema descriptor for discount field.
	productDescDiscount := productFields[5].Descriptor()
	// product.DefaultDiscount holds the default value on creation for the discount field.
	product.DefaultDiscount = productDescDiscount.Default.(float64)
	// productDescCategory is the schema descriptor for category field.
	productDescCategory := productFields[6].Descriptor()
	// product.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	product.CategoryValidator = productDescCategory.Validators[0].(func(string) error)
	// productDescSubCategory is the schema descriptor for sub_category field.
	productDescSubCategory := productFields[7].Descriptor()
	// product.SubCategoryValidator is a validator for the "sub_category" field. It is called by the builders before save.
	product.SubCategoryValidator = productDescSubCategory.Validators[0].(func(string) error)
	// productDescStockStatus is the schema descriptor for stock_status field.
	productDescStockStatus := productFields[8].Descriptor()
	// product.DefaultStockStatus holds the default value on creation for the stock_status field.
	product.DefaultStockStatus = productDescStockStatus.Default.(string)
	// product.StockStatusValidator is a validator for the "stock_status" field. It is called by the builders before save.
	product.StockStatusValidator = productDescStockStatus.Validators[0].(func(string) error)
	// productDescLastUpdatedAt is the schema descriptor for last_updated_at field.
	productDescLastUpdatedAt := productFields[9].Descriptor()
	// product.DefaultLastUpdatedAt holds the default value on creation for the last_updated_at field.
	product.DefaultLastUpdatedAt = productDescLastUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultLastUpdatedAt holds the default value on update for the last_updated_at field.
	product.UpdateDefaultLastUpdatedAt = productDescLastUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[4].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
