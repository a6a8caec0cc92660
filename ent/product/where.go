// Code generated by ent, DO NOT EDIT.

package product

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/pricewatch/pricewatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldID, id))
}

// CompetitorName applies equality check predicate on the "competitor_name" field. It's identical to CompetitorNameEQ.
func CompetitorName(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCompetitorName, v))
}

// ProductName applies equality check predicate on the "product_name" field. It's identical to ProductNameEQ.
func ProductName(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldProductName, v))
}

// ProductURL applies equality check predicate on the "product_url" field. It's identical to ProductURLEQ.
func ProductURL(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldProductURL, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldPrice, v))
}

// OriginalPrice applies equality check predicate on the "original_price" field. It's identical to OriginalPriceEQ.
func OriginalPrice(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldOriginalPrice, v))
}

// Discount applies equality check predicate on the "discount" field. It's identical to DiscountEQ.
func Discount(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldDiscount, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCategory, v))
}

// SubCategory applies equality check predicate on the "sub_category" field. It's identical to SubCategoryEQ.
func SubCategory(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSubCategory, v))
}

// StockStatus applies equality check predicate on the "stock_status" field. It's identical to StockStatusEQ.
func StockStatus(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldStockStatus, v))
}

// LastUpdatedAt applies equality check predicate on the "last_updated_at" field. It's identical to LastUpdatedAtEQ.
func LastUpdatedAt(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldLastUpdatedAt, v))
}

// CompetitorNameEQ applies the EQ predicate on the "competitor_name" field.
func CompetitorNameEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCompetitorName, v))
}

// CompetitorNameNEQ applies the NEQ predicate on the "competitor_name" field.
func CompetitorNameNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldCompetitorName, v))
}

// CompetitorNameIn applies the In predicate on the "competitor_name" field.
func CompetitorNameIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldCompetitorName, vs...))
}

// CompetitorNameNotIn applies the NotIn predicate on the "competitor_name" field.
func CompetitorNameNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldCompetitorName, vs...))
}

// CompetitorNameGT applies the GT predicate on the "competitor_name" field.
func CompetitorNameGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldCompetitorName, v))
}

// CompetitorNameGTE applies the GTE predicate on the "competitor_name" field.
func CompetitorNameGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldCompetitorName, v))
}

// CompetitorNameLT applies the LT predicate on the "competitor_name" field.
func CompetitorNameLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldCompetitorName, v))
}

// CompetitorNameLTE applies the LTE predicate on the "competitor_name" field.
func CompetitorNameLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldCompetitorName, v))
}

// CompetitorNameContains applies the Contains predicate on the "competitor_name" field.
func CompetitorNameContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldCompetitorName, v))
}

// CompetitorNameHasPrefix applies the HasPrefix predicate on the "competitor_name" field.
func CompetitorNameHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldCompetitorName, v))
}

// CompetitorNameHasSuffix applies the HasSuffix predicate on the "competitor_name" field.
func CompetitorNameHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldCompetitorName, v))
}

// CompetitorNameEqualFold applies the EqualFold predicate on the "competitor_name" field.
func CompetitorNameEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldCompetitorName, v))
}

// CompetitorNameContainsFold applies the ContainsFold predicate on the "competitor_name" field.
func CompetitorNameContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldCompetitorName, v))
}

// ProductNameEQ applies the EQ predicate on the "product_name" field.
func ProductNameEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldProductName, v))
}

// ProductNameNEQ applies the NEQ predicate on the "product_name" field.
func ProductNameNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldProductName, v))
}

// ProductNameIn applies the In predicate on the "product_name" field.
func ProductNameIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldProductName, vs...))
}

// ProductNameNotIn applies the NotIn predicate on the "product_name" field.
func ProductNameNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldProductName, vs...))
}

// ProductNameGT applies the GT predicate on the "product_name" field.
func ProductNameGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldProductName, v))
}

// ProductNameGTE applies the GTE predicate on the "product_name" field.
func ProductNameGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldProductName, v))
}

// ProductNameLT applies the LT predicate on the "product_name" field.
func ProductNameLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldProductName, v))
}

// ProductNameLTE applies the LTE predicate on the "product_name" field.
func ProductNameLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldProductName, v))
}

// ProductNameContains applies the Contains predicate on the "product_name" field.
func ProductNameContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldProductName, v))
}

// ProductNameHasPrefix applies the HasPrefix predicate on the "product_name" field.
func ProductNameHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldProductName, v))
}

// ProductNameHasSuffix applies the HasSuffix predicate on the "product_name" field.
func ProductNameHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldProductName, v))
}

// ProductNameEqualFold applies the EqualFold predicate on the "product_name" field.
func ProductNameEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldProductName, v))
}

// ProductNameContainsFold applies the ContainsFold predicate on the "product_name" field.
func ProductNameContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldProductName, v))
}

// ProductURLEQ applies the EQ predicate on the "product_url" field.
func ProductURLEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldProductURL, v))
}

// ProductURLNEQ applies the NEQ predicate on the "product_url" field.
func ProductURLNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldProductURL, v))
}

// ProductURLIn applies the In predicate on the "product_url" field.
func ProductURLIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldProductURL, vs...))
}

// ProductURLNotIn applies the NotIn predicate on the "product_url" field.
func ProductURLNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldProductURL, vs...))
}

// ProductURLGT applies the GT predicate on the "product_url" field.
func ProductURLGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldProductURL, v))
}

// ProductURLGTE applies the GTE predicate on the "product_url" field.
func ProductURLGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldProductURL, v))
}

// ProductURLLT applies the LT predicate on the "product_url" field.
func ProductURLLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldProductURL, v))
}

// ProductURLLTE applies the LTE predicate on the "product_url" field.
func ProductURLLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldProductURL, v))
}

// ProductURLContains applies the Contains predicate on the "product_url" field.
func ProductURLContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldProductURL, v))
}

// ProductURLHasPrefix applies the HasPrefix predicate on the "product_url" field.
func ProductURLHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldProductURL, v))
}

// ProductURLHasSuffix applies the HasSuffix predicate on the "product_url" field.
func ProductURLHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldProductURL, v))
}

// ProductURLIsNil applies the IsNil predicate on the "product_url" field.
func ProductURLIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldProductURL))
}

// ProductURLNotNil applies the NotNil predicate on the "product_url" field.
func ProductURLNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldProductURL))
}

// ProductURLEqualFold applies the EqualFold predicate on the "product_url" field.
func ProductURLEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldProductURL, v))
}

// ProductURLContainsFold applies the ContainsFold predicate on the "product_url" field.
func ProductURLContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldProductURL, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldPrice, v))
}

// OriginalPriceEQ applies the EQ predicate on the "original_price" field.
func OriginalPriceEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldOriginalPrice, v))
}

// OriginalPriceNEQ applies the NEQ predicate on the "original_price" field.
func OriginalPriceNEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldOriginalPrice, v))
}

// OriginalPriceIn applies the In predicate on the "original_price" field.
func OriginalPriceIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldOriginalPrice, vs...))
}

// OriginalPriceNotIn applies the NotIn predicate on the "original_price" field.
func OriginalPriceNotIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldOriginalPrice, vs...))
}

// OriginalPriceGT applies the GT predicate on the "original_price" field.
func OriginalPriceGT(v float64) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldOriginalPrice, v))
}

// OriginalPriceGTE applies the GTE predicate on the "original_price" field.
func OriginalPriceGTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldOriginalPrice, v))
}

// OriginalPriceLT applies the LT predicate on the "original_price" field.
func OriginalPriceLT(v float64) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldOriginalPrice, v))
}

// OriginalPriceLTE applies the LTE predicate on the "original_price" field.
func OriginalPriceLTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldOriginalPrice, v))
}

// OriginalPriceIsNil applies the IsNil predicate on the "original_price" field.
func OriginalPriceIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldOriginalPrice))
}

// OriginalPriceNotNil applies the NotNil predicate on the "original_price" field.
func OriginalPriceNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldOriginalPrice))
}

// DiscountEQ applies the EQ predicate on the "discount" field.
func DiscountEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldDiscount, v))
}

// DiscountNEQ applies the NEQ predicate on the "discount" field.
func DiscountNEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldDiscount, v))
}

// DiscountIn applies the In predicate on the "discount" field.
func DiscountIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldDiscount, vs...))
}

// DiscountNotIn applies the NotIn predicate on the "discount" field.
func DiscountNotIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldDiscount, vs...))
}

// DiscountGT applies the GT predicate on the "discount" field.
func DiscountGT(v float64) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldDiscount, v))
}

// DiscountGTE applies the GTE predicate on the "discount" field.
func DiscountGTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldDiscount, v))
}

// DiscountLT applies the LT predicate on the "discount" field.
func DiscountLT(v float64) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldDiscount, v))
}

// DiscountLTE applies the LTE predicate on the "discount" field.
func DiscountLTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldDiscount, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldCategory, v))
}

// SubCategoryEQ applies the EQ predicate on the "sub_category" field.
func SubCategoryEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSubCategory, v))
}

// SubCategoryNEQ applies the NEQ predicate on the "sub_category" field.
func SubCategoryNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldSubCategory, v))
}

// SubCategoryIn applies the In predicate on the "sub_category" field.
func SubCategoryIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldSubCategory, vs...))
}

// SubCategoryNotIn applies the NotIn predicate on the "sub_category" field.
func SubCategoryNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldSubCategory, vs...))
}

// SubCategoryGT applies the GT predicate on the "sub_category" field.
func SubCategoryGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldSubCategory, v))
}

// SubCategoryGTE applies the GTE predicate on the "sub_category" field.
func SubCategoryGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldSubCategory, v))
}

// SubCategoryLT applies the LT predicate on the "sub_category" field.
func SubCategoryLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldSubCategory, v))
}

// SubCategoryLTE applies the LTE predicate on the "sub_category" field.
func SubCategoryLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldSubCategory, v))
}

// SubCategoryContains applies the Contains predicate on the "sub_category" field.
func SubCategoryContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldSubCategory, v))
}

// SubCategoryHasPrefix applies the HasPrefix predicate on the "sub_category" field.
func SubCategoryHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldSubCategory, v))
}

// SubCategoryHasSuffix applies the HasSuffix predicate on the "sub_category" field.
func SubCategoryHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldSubCategory, v))
}

// SubCategoryIsNil applies the IsNil predicate on the "sub_category" field.
func SubCategoryIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldSubCategory))
}

// SubCategoryNotNil applies the NotNil predicate on the "sub_category" field.
func SubCategoryNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldSubCategory))
}

// SubCategoryEqualFold applies the EqualFold predicate on the "sub_category" field.
func SubCategoryEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldSubCategory, v))
}

// SubCategoryContainsFold applies the ContainsFold predicate on the "sub_category" field.
func SubCategoryContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldSubCategory, v))
}

// StockStatusEQ applies the EQ predicate on the "stock_status" field.
func StockStatusEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldStockStatus, v))
}

// StockStatusNEQ applies the NEQ predicate on the "stock_status" field.
func StockStatusNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldStockStatus, v))
}

// StockStatusIn applies the In predicate on the "stock_status" field.
func StockStatusIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldStockStatus, vs...))
}

// StockStatusNotIn applies the NotIn predicate on the "stock_status" field.
func StockStatusNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldStockStatus, vs...))
}

// StockStatusGT applies the GT predicate on the "stock_status" field.
func StockStatusGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldStockStatus, v))
}

// StockStatusGTE applies the GTE predicate on the "stock_status" field.
func StockStatusGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldStockStatus, v))
}

// StockStatusLT applies the LT predicate on the "stock_status" field.
func StockStatusLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldStockStatus, v))
}

// StockStatusLTE applies the LTE predicate on the "stock_status" field.
func StockStatusLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldStockStatus, v))
}

// StockStatusContains applies the Contains predicate on the "stock_status" field.
func StockStatusContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldStockStatus, v))
}

// StockStatusHasPrefix applies the HasPrefix predicate on the "stock_status" field.
func StockStatusHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldStockStatus, v))
}

// StockStatusHasSuffix applies the HasSuffix predicate on the "stock_status" field.
func StockStatusHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldStockStatus, v))
}

// StockStatusEqualFold applies the EqualFold predicate on the "stock_status" field.
func StockStatusEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldStockStatus, v))
}

// StockStatusContainsFold applies the ContainsFold predicate on the "stock_status" field.
func StockStatusContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldStockStatus, v))
}

// LastUpdatedAtEQ applies the EQ predicate on the "last_updated_at" field.
func LastUpdatedAtEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldLastUpdatedAt, v))
}

// LastUpdatedAtNEQ applies the NEQ predicate on the "last_updated_at" field.
func LastUpdatedAtNEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldLastUpdatedAt, v))
}

// LastUpdatedAtIn applies the In predicate on the "last_updated_at" field.
func LastUpdatedAtIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldLastUpdatedAt, vs...))
}

// LastUpdatedAtNotIn applies the NotIn predicate on the "last_updated_at" field.
func LastUpdatedAtNotIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldLastUpdatedAt, vs...))
}

// LastUpdatedAtGT applies the GT predicate on the "last_updated_at" field.
func LastUpdatedAtGT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldLastUpdatedAt, v))
}

// LastUpdatedAtGTE applies the GTE predicate on the "last_updated_at" field.
func LastUpdatedAtGTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldLastUpdatedAt, v))
}

// LastUpdatedAtLT applies the LT predicate on the "last_updated_at" field.
func LastUpdatedAtLT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldLastUpdatedAt, v))
}

// LastUpdatedAtLTE applies the LTE predicate on the "last_updated_at" field.
func LastUpdatedAtLTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldLastUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Product) predicate.Product {
	return predicate.Product(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Product) predicate.Product {
	return predicate.Product(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Product) predicate.Product {
	return predicate.Product(sql.NotPredicates(p))
}
