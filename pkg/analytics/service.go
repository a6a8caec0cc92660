package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pricewatch/pricewatch/ent"
	"github.com/pricewatch/pricewatch/ent/pricehistory"
	"github.com/pricewatch/pricewatch/ent/product"
)

var (
	// ErrNoCompetitors is returned when no competitors are tracked yet
	ErrNoCompetitors = errors.New("no competitors found")
	// ErrCompetitorNotFound is returned when the competitor doesn't exist
	ErrCompetitorNotFound = errors.New("competitor not found")
	// ErrProductNotFound is returned when the product doesn't exist
	ErrProductNotFound = errors.New("product not found")
	// ErrNoProducts is returned when a competitor has no tracked products
	ErrNoProducts = errors.New("no products found for this competitor")
	// ErrNoValidPrices is returned when every price of the set is zero
	ErrNoValidPrices = errors.New("no valid prices found for this competitor")
	// ErrNoHistory is returned when a product has no price snapshots
	ErrNoHistory = errors.New("no price history found for this product")
)

// DefaultRecentChangesLimit bounds the recent price change feed.
const DefaultRecentChangesLimit = 10

// CategoryPriceComparison compares a competitor's category average against
// the market average for that category.
type CategoryPriceComparison struct {
	Category          string  `json:"category"`
	CompetitorAverage float64 `json:"averagePriceCompetitor"`
	MarketAverage     float64 `json:"averagePriceMarket"`
}

// SubCategoryPriceComparison is the sub-category variant of
// CategoryPriceComparison.
type SubCategoryPriceComparison struct {
	SubCategory       string  `json:"subCategory"`
	CompetitorAverage float64 `json:"averagePriceCompetitor"`
	MarketAverage     float64 `json:"averagePriceMarket"`
}

// CategoryDistribution is the share of a competitor's catalog in one category.
type CategoryDistribution struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
}

// SubCategoryDistribution is the sub-category variant of CategoryDistribution.
type SubCategoryDistribution struct {
	SubCategory string  `json:"subCategory"`
	Percentage  float64 `json:"percentage"`
}

// ProductSummary is the catalog overview for one competitor.
type ProductSummary struct {
	Products                []*ent.Product `json:"products"`
	ProductsCount           int            `json:"productsCount"`
	DiscountedProductsCount int            `json:"discountedProductsCount"`
	AveragePrice            float64        `json:"averagePrice"`
	MarketShare             float64        `json:"marketShare"`
}

// PricePrediction carries the naive predicted price for a product.
type PricePrediction struct {
	PredictedPrice float64 `json:"predictedPrice"`
}

// Service resolves analytics queries: it fetches records through ent and
// delegates all arithmetic to the pure engine functions. It holds no state
// beyond the database handle and is safe for concurrent use.
type Service struct {
	db *ent.Client
}

// NewService creates a new analytics service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// CountCompetitors returns the number of tracked competitors.
func (s *Service) CountCompetitors(ctx context.Context) (int, error) {
	count, err := s.db.Competitor.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count competitors: %w", err)
	}
	if count == 0 {
		return 0, ErrNoCompetitors
	}
	return count, nil
}

// ListCompetitors returns all tracked competitors.
func (s *Service) ListCompetitors(ctx context.Context) ([]*ent.Competitor, error) {
	competitors, err := s.db.Competitor.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitors: %w", err)
	}
	if len(competitors) == 0 {
		return nil, ErrNoCompetitors
	}
	return competitors, nil
}

// GetCompetitor returns one competitor by ID.
func (s *Service) GetCompetitor(ctx context.Context, id int) (*ent.Competitor, error) {
	comp, err := s.db.Competitor.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrCompetitorNotFound
		}
		return nil, fmt.Errorf("failed to get competitor: %w", err)
	}
	return comp, nil
}

// PriceVariation computes the price spread of a competitor's catalog over
// its valid (> 0) prices.
func (s *Service) PriceVariation(ctx context.Context, competitorID int) (*PriceVariationSummary, error) {
	products, err := s.competitorProducts(ctx, competitorID)
	if err != nil {
		return nil, err
	}

	prices := ValidPrices(toRecords(products))
	if len(prices) == 0 {
		return nil, ErrNoValidPrices
	}

	summary := ComputePriceVariation(prices)
	return &summary, nil
}

// MarketShare computes every competitor's share of the global product
// count. The denominator is queried once.
func (s *Service) MarketShare(ctx context.Context) ([]MarketShareEntry, error) {
	competitors, err := s.ListCompetitors(ctx)
	if err != nil {
		return nil, err
	}

	total, err := s.db.Product.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	counts := make([]CompetitorCount, len(competitors))
	for i, comp := range competitors {
		n, err := s.db.Product.Query().
			Where(product.CompetitorNameEQ(comp.Name)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count products for %q: %w", comp.Name, err)
		}
		counts[i] = CompetitorCount{Name: comp.Name, Count: n}
	}

	return MarketShares(counts, total), nil
}

// CompetitorProductSummary returns a competitor's products with catalog
// totals, promotion count, mean price and market share.
func (s *Service) CompetitorProductSummary(ctx context.Context, competitorID int) (*ProductSummary, error) {
	products, err := s.competitorProducts(ctx, competitorID)
	if err != nil {
		return nil, err
	}

	total, err := s.db.Product.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	records := toRecords(products)
	return &ProductSummary{
		Products:                products,
		ProductsCount:           len(products),
		DiscountedProductsCount: CountDiscounted(records),
		AveragePrice:            MeanPrice(records),
		MarketShare:             Share(len(products), total),
	}, nil
}

// AveragePriceByCategory compares the competitor's average price per
// category against the market average, for the categories present in the
// competitor's own catalog, in first-encountered order.
func (s *Service) AveragePriceByCategory(ctx context.Context, competitorID int) ([]CategoryPriceComparison, error) {
	competitorRecords, marketRecords, err := s.categoryScope(ctx, competitorID, func(r ProductRecord) string { return r.Category })
	if err != nil {
		return nil, err
	}

	averages := CategoryAverages(competitorRecords, marketRecords, func(r ProductRecord) string { return r.Category })
	result := make([]CategoryPriceComparison, len(averages))
	for i, a := range averages {
		result[i] = CategoryPriceComparison{
			Category:          a.Key,
			CompetitorAverage: a.CompetitorAverage,
			MarketAverage:     a.MarketAverage,
		}
	}
	return result, nil
}

// AveragePriceBySubCategory is the sub-category variant of
// AveragePriceByCategory.
func (s *Service) AveragePriceBySubCategory(ctx context.Context, competitorID int) ([]SubCategoryPriceComparison, error) {
	competitorRecords, marketRecords, err := s.subCategoryScope(ctx, competitorID)
	if err != nil {
		return nil, err
	}

	averages := CategoryAverages(competitorRecords, marketRecords, func(r ProductRecord) string { return r.SubCategory })
	result := make([]SubCategoryPriceComparison, len(averages))
	for i, a := range averages {
		result[i] = SubCategoryPriceComparison{
			SubCategory:       a.Key,
			CompetitorAverage: a.CompetitorAverage,
			MarketAverage:     a.MarketAverage,
		}
	}
	return result, nil
}

// CategoryDistributionFor computes the category repartition of a
// competitor's catalog.
func (s *Service) CategoryDistributionFor(ctx context.Context, competitorID int) ([]CategoryDistribution, error) {
	products, err := s.competitorProducts(ctx, competitorID)
	if err != nil {
		return nil, err
	}

	shares := Distribution(toRecords(products), func(r ProductRecord) string { return r.Category })
	result := make([]CategoryDistribution, len(shares))
	for i, sh := range shares {
		result[i] = CategoryDistribution{Category: sh.Key, Percentage: sh.Percentage}
	}
	return result, nil
}

// SubCategoryDistributionFor computes the sub-category repartition of a
// competitor's catalog.
func (s *Service) SubCategoryDistributionFor(ctx context.Context, competitorID int) ([]SubCategoryDistribution, error) {
	products, err := s.competitorProducts(ctx, competitorID)
	if err != nil {
		return nil, err
	}

	shares := Distribution(toRecords(products), func(r ProductRecord) string { return r.SubCategory })
	result := make([]SubCategoryDistribution, len(shares))
	for i, sh := range shares {
		result[i] = SubCategoryDistribution{SubCategory: sh.Key, Percentage: sh.Percentage}
	}
	return result, nil
}

// RecentPriceChanges returns the latest price movements across all tracked
// products, newest first.
func (s *Service) RecentPriceChanges(ctx context.Context, limit int) ([]RecentPriceChange, error) {
	if limit <= 0 {
		limit = DefaultRecentChangesLimit
	}

	snapshots, err := s.db.PriceHistory.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price history: %w", err)
	}

	names, err := s.productNames(ctx, nil)
	if err != nil {
		return nil, err
	}

	return RecentChanges(toSnapshots(snapshots), names, limit), nil
}

// RecentPriceChangesByCompetitor restricts the recent change feed to one
// competitor's products.
func (s *Service) RecentPriceChangesByCompetitor(ctx context.Context, competitorID, limit int) ([]RecentPriceChange, error) {
	if limit <= 0 {
		limit = DefaultRecentChangesLimit
	}

	products, err := s.competitorProducts(ctx, competitorID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(products))
	names := make(map[int]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
		names[p.ID] = p.ProductName
	}

	snapshots, err := s.db.PriceHistory.Query().
		Where(pricehistory.ProductIDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price history: %w", err)
	}

	return RecentChanges(toSnapshots(snapshots), names, limit), nil
}

// PriceHistoryForProduct returns the full price history of a product as
// chart-ready pairs, oldest to newest.
func (s *Service) PriceHistoryForProduct(ctx context.Context, productID int) ([]PricePoint, error) {
	snapshots, err := s.db.PriceHistory.Query().
		Where(pricehistory.ProductIDEQ(productID)).
		Order(ent.Asc(pricehistory.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price history: %w", err)
	}

	return ChartSeries(toSnapshots(snapshots)), nil
}

// PredictProductPrice computes the naive price prediction for a product.
func (s *Service) PredictProductPrice(ctx context.Context, productID int) (*PricePrediction, error) {
	snapshots, err := s.db.PriceHistory.Query().
		Where(pricehistory.ProductIDEQ(productID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price history: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, ErrNoHistory
	}

	return &PricePrediction{PredictedPrice: PredictPrice(toSnapshots(snapshots))}, nil
}

// CountPromotions counts products with an active promotion.
func (s *Service) CountPromotions(ctx context.Context) (int, error) {
	count, err := s.db.Product.Query().
		Where(product.DiscountGT(0)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count promotions: %w", err)
	}
	return count, nil
}

// ProductsForCompetitor returns the raw product list of one competitor.
func (s *Service) ProductsForCompetitor(ctx context.Context, competitorID int) ([]*ent.Product, error) {
	return s.competitorProducts(ctx, competitorID)
}

// AllProducts returns every tracked product.
func (s *Service) AllProducts(ctx context.Context) ([]*ent.Product, error) {
	products, err := s.db.Product.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	return products, nil
}

// GetProduct returns one product by ID.
func (s *Service) GetProduct(ctx context.Context, productID int) (*ent.Product, error) {
	p, err := s.db.Product.Get(ctx, productID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

// FilteredProducts returns products matching the category and stock status
// exactly, optionally scoped to one competitor. Both filters are mandatory
// by contract; the handler rejects requests before calling this.
func (s *Service) FilteredProducts(ctx context.Context, category, stockStatus string, competitorID *int) ([]*ent.Product, error) {
	query := s.db.Product.Query().
		Where(
			product.CategoryEQ(category),
			product.StockStatusEQ(stockStatus),
		)

	if competitorID != nil {
		comp, err := s.GetCompetitor(ctx, *competitorID)
		if err != nil {
			return nil, err
		}
		query = query.Where(product.CompetitorNameEQ(comp.Name))
	}

	products, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch filtered products: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	return products, nil
}

// competitorProducts resolves a competitor and fetches its products by the
// name match. The join is a string equality on Competitor.name, mirroring
// how the scraping pipeline attaches products to retailers.
func (s *Service) competitorProducts(ctx context.Context, competitorID int) ([]*ent.Product, error) {
	comp, err := s.GetCompetitor(ctx, competitorID)
	if err != nil {
		return nil, err
	}

	products, err := s.db.Product.Query().
		Where(product.CompetitorNameEQ(comp.Name)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products for %q: %w", comp.Name, err)
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	return products, nil
}

// categoryScope fetches the competitor's products plus every market product
// sharing one of the competitor's categories.
func (s *Service) categoryScope(ctx context.Context, competitorID int, key func(ProductRecord) string) ([]ProductRecord, []ProductRecord, error) {
	products, err := s.competitorProducts(ctx, competitorID)
	if err != nil {
		return nil, nil, err
	}
	records := toRecords(products)

	categories := DistinctKeys(records, key)
	market, err := s.db.Product.Query().
		Where(product.CategoryIn(categories...)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch market products: %w", err)
	}

	return records, toRecords(market), nil
}

// subCategoryScope is categoryScope keyed by sub-category.
func (s *Service) subCategoryScope(ctx context.Context, competitorID int) ([]ProductRecord, []ProductRecord, error) {
	products, err := s.competitorProducts(ctx, competitorID)
	if err != nil {
		return nil, nil, err
	}
	records := toRecords(products)

	subCategories := DistinctKeys(records, func(r ProductRecord) string { return r.SubCategory })
	market, err := s.db.Product.Query().
		Where(product.SubCategoryIn(subCategories...)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch market products: %w", err)
	}

	return records, toRecords(market), nil
}

// productNames builds the product_id -> name join map. A nil filter loads
// the whole catalog.
func (s *Service) productNames(ctx context.Context, ids []int) (map[int]string, error) {
	query := s.db.Product.Query()
	if ids != nil {
		query = query.Where(product.IDIn(ids...))
	}
	products, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	names := make(map[int]string, len(products))
	for _, p := range products {
		names[p.ID] = p.ProductName
	}
	return names, nil
}

func toRecords(products []*ent.Product) []ProductRecord {
	records := make([]ProductRecord, len(products))
	for i, p := range products {
		records[i] = ProductRecord{
			ID:             p.ID,
			CompetitorName: p.CompetitorName,
			Name:           p.ProductName,
			Price:          p.Price,
			Discount:       p.Discount,
			Category:       p.Category,
			SubCategory:    p.SubCategory,
			StockStatus:    p.StockStatus,
		}
	}
	return records
}

func toSnapshots(rows []*ent.PriceHistory) []Snapshot {
	snapshots := make([]Snapshot, len(rows))
	for i, r := range rows {
		snapshots[i] = Snapshot{
			ProductID: r.ProductID,
			Price:     r.Price,
			Timestamp: r.Timestamp,
		}
	}
	return snapshots
}

// Stale returns products whose last scrape is older than the cutoff. Used
// by the freshness monitor job.
func (s *Service) Stale(ctx context.Context, olderThan time.Duration) ([]*ent.Product, error) {
	cutoff := time.Now().Add(-olderThan)
	products, err := s.db.Product.Query().
		Where(product.LastUpdatedAtLT(cutoff)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stale products: %w", err)
	}
	return products, nil
}
