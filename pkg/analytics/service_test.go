package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/pricewatch/pricewatch/ent"
	"github.com/pricewatch/pricewatch/ent/enttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// setupServiceTest creates test database and analytics service
func setupServiceTest(t *testing.T) (*ent.Client, *Service, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	service := NewService(client)

	cleanup := func() {
		client.Close()
	}

	return client, service, cleanup
}

func createTestCompetitor(t *testing.T, client *ent.Client, name string) *ent.Competitor {
	comp, err := client.Competitor.Create().
		SetName(name).
		SetCategory("e-commerce").
		Save(context.Background())
	require.NoError(t, err)
	return comp
}

func createTestProduct(t *testing.T, client *ent.Client, competitorName, name, category, subCategory string, price, discount float64) *ent.Product {
	p, err := client.Product.Create().
		SetCompetitorName(competitorName).
		SetProductName(name).
		SetProductURL("https://example.com/" + name).
		SetPrice(price).
		SetDiscount(discount).
		SetCategory(category).
		SetSubCategory(subCategory).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func createTestSnapshot(t *testing.T, client *ent.Client, productID int, price float64, at time.Time) {
	_, err := client.PriceHistory.Create().
		SetProductID(productID).
		SetPrice(price).
		SetTimestamp(at).
		Save(context.Background())
	require.NoError(t, err)
}

func TestCountCompetitors(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()
	ctx := context.Background()

	_, err := service.CountCompetitors(ctx)
	assert.ErrorIs(t, err, ErrNoCompetitors)

	createTestCompetitor(t, client, "Amazon")
	createTestCompetitor(t, client, "Fnac")

	count, err := service.CountCompetitors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGetCompetitor_NotFound(t *testing.T) {
	_, service, cleanup := setupServiceTest(t)
	defer cleanup()

	_, err := service.GetCompetitor(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrCompetitorNotFound)
}

func TestPriceVariation(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()
	ctx := context.Background()

	comp := createTestCompetitor(t, client, "Amazon")
	createTestProduct(t, client, "Amazon", "a", "gaming", "consoles", 100, 0)
	createTestProduct(t, client, "Amazon", "b", "gaming", "consoles", 150, 0)
	createTestProduct(t, client, "Amazon", "c", "gaming", "consoles", 200, 0)
	// Zero-priced rows are scraper noise and must not shift the spread.
	createTestProduct(t, client, "Amazon", "d", "gaming", "consoles", 0, 0)

	summary, err := service.PriceVariation(ctx, comp.ID)
	require.NoError(t, err)

	assert.Equal(t, 100.0, summary.MinPrice)
	assert.Equal(t, 200.0, summary.MaxPrice)
	assert.Equal(t, 150.0, summary.AvgPrice)
	require.NotNil(t, summary.Variation)
	assert.Equal(t, 66.67, *summary.Variation)
}

func TestPriceVariation_NoValidPrices(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()

	comp := createTestCompetitor(t, client, "Amazon")
	createTestProduct(t, client, "Amazon", "a", "gaming", "consoles", 0, 0)

	_, err := service.PriceVariation(context.Background(), comp.ID)
	assert.ErrorIs(t, err, ErrNoValidPrices)
}

func TestPriceVariation_NoProducts(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()

	comp := createTestCompetitor(t, client, "Amazon")

	_, err := service.PriceVariation(context.Background(), comp.ID)
	assert.ErrorIs(t, err, ErrNoProducts)
}

func TestMarketShare(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()
	ctx := context.Background()

	createTestCompetitor(t, client, "Amazon")
	createTestCompetitor(t, client, "Fnac")
	for i := 0; i < 3; i++ {
		createTestProduct(t, client, "Amazon", "a", "gaming", "consoles", 100, 0)
	}
	createTestProduct(t, client, "Fnac", "b", "gaming", "consoles", 100, 0)

	shares, err := service.MarketShare(ctx)
	require.NoError(t, err)

	require.Len(t, shares, 2)
	assert.Equal(t, "Amazon", shares[0].Competitor)
	assert.Equal(t, 75.0, shares[0].MarketShare)
	assert.Equal(t, "Fnac", shares[1].Competitor)
	assert.Equal(t, 25.0, shares[1].MarketShare)
}

func TestCompetitorProductSummary(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()
	ctx := context.Background()

	comp := createTestCompetitor(t, client, "Amazon")
	createTestCompetitor(t, client, "Fnac")
	createTestProduct(t, client, "Amazon", "a", "gaming", "consoles", 100, 20)
	createTestProduct(t, client, "Amazon", "b", "gaming", "consoles", 200, 0)
	createTestProduct(t, client, "Fnac", "c", "gaming", "consoles", 300, 0)
	createTestProduct(t, client, "Fnac", "d", "gaming", "consoles", 400, 0)

	summary, err := service.CompetitorProductSummary(ctx, comp.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ProductsCount)
	assert.Equal(t, 1, summary.DiscountedProductsCount)
	assert.Equal(t, 150.0, summary.AveragePrice)
	assert.Equal(t, 50.0, summary.MarketShare)
	assert.Len(t, summary.Products, 2)
}

func TestAveragePriceByCategory(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()
	ctx := context.Background()

	comp := createTestCompetitor(t, client, "Amazon")
	createTestProduct(t, client, "Amazon", "a", "gaming", "consoles", 100, 0)
	createTestProduct(t, client, "Amazon", "b", "gaming", "consoles", 200, 0)
	// Market row in the same category from another retailer.
	createTestProduct(t, client, "Fnac", "c", "gaming", "consoles", 300, 0)
	// Category absent from Amazon's catalog must not appear.
	createTestProduct(t, client, "Fnac", "d", "home", "lighting", 50, 0)

	comparison, err := service.AveragePriceByCategory(ctx, comp.ID)
	require.NoError(t, err)

	require.Len(t, comparison, 1)
	assert.Equal(t, "gaming", comparison[0].Category)
	assert.Equal(t, 150.0, comparison[0].CompetitorAverage)
	assert.Equal(t, 200.0, comparison[0].MarketAverage)
}

func TestAveragePriceBySubCategory(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()
	ctx := context.Background()

	comp := createTestCompetitor(t, client, "Amazon")
	createTestProduct(t, client, "Amazon", "a", "gaming", "consoles", 400, 0)
	createTestProduct(t, client, "Fnac", "b", "gaming", "consoles", 600, 0)
	createTestProduct(t, client, "Fnac", "c", "gaming", "video_games", 60, 0)

	comparison, err := service.AveragePriceBySubCategory(ctx, comp.ID)
	require.NoError(t, err)

	require.Len(t, comparison, 1)
	assert.Equal(t, "consoles", comparison[0].SubCategory)
	assert.Equal(t, 400.0, comparison[0].CompetitorAverage)
	assert.Equal(t, 500.0, comparison[0].MarketAverage)
}

func TestCategoryDistribution(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()
	ctx := context.Background()

	comp := createTestCompetitor(t, client, "Amazon")
	createTestProduct(t, client, "Amazon", "a", "gaming", "consoles", 100, 0)
	createTestProduct(t, client, "Amazon", "b", "gaming", "consoles", 100, 0)
	createTestProduct(t, client, "Amazon", "c", "home", "lighting", 100, 0)
	createTestProduct(t, client, "Amazon", "d", "electronics", "laptops", 100, 0)

	distribution, err := service.CategoryDistributionFor(ctx, comp.ID)
	require.NoError(t, err)

	require.Len(t, distribution, 3)
	assert.Equal(t, "gaming", distribution[0].Category)
	assert.Equal(t, 50.0, distribution[0].Percentage)

	sum := 0.0
	for _, d := range distribution {
		sum += d.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.01)
}

func TestRecentPriceChanges(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	createTestCompetitor(t, client, "Amazon")
	p1 := createTestProduct(t, client, "Amazon", "tracked", "gaming", "consoles", 120, 0)
	p2 := createTestProduct(t, client, "Amazon", "single", "gaming", "consoles", 99, 0)

	createTestSnapshot(t, client, p1.ID, 100, base)
	createTestSnapshot(t, client, p1.ID, 120, base.AddDate(0, 0, 1))
	// One snapshot only: no change to report.
	createTestSnapshot(t, client, p2.ID, 99, base)

	changes, err := service.RecentPriceChanges(ctx, 10)
	require.NoError(t, err)

	require.Len(t, changes, 1)
	assert.Equal(t, "tracked", changes[0].ProductName)
	assert.Equal(t, 120.0, changes[0].CurrentPrice)
	assert.Equal(t, 100.0, changes[0].AncienPrice)
	require.NotNil(t, changes[0].Variation)
	assert.Equal(t, 20.0, *changes[0].Variation)
}

func TestRecentPriceChangesByCompetitor(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	comp := createTestCompetitor(t, client, "Amazon")
	createTestCompetitor(t, client, "Fnac")
	mine := createTestProduct(t, client, "Amazon", "mine", "gaming", "consoles", 120, 0)
	other := createTestProduct(t, client, "Fnac", "other", "gaming", "consoles", 80, 0)

	createTestSnapshot(t, client, mine.ID, 100, base)
	createTestSnapshot(t, client, mine.ID, 120, base.AddDate(0, 0, 1))
	createTestSnapshot(t, client, other.ID, 70, base)
	createTestSnapshot(t, client, other.ID, 80, base.AddDate(0, 0, 1))

	changes, err := service.RecentPriceChangesByCompetitor(ctx, comp.ID, 10)
	require.NoError(t, err)

	require.Len(t, changes, 1)
	assert.Equal(t, "mine", changes[0].ProductName)
}

func TestPriceHistoryForProduct(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()
	ctx := context.Background()

	createTestCompetitor(t, client, "Amazon")
	p := createTestProduct(t, client, "Amazon", "a", "gaming", "consoles", 110, 0)
	createTestSnapshot(t, client, p.ID, 100, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	createTestSnapshot(t, client, p.ID, 110, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC))

	points, err := service.PriceHistoryForProduct(ctx, p.ID)
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, PricePoint{X: "03/03/2025", Y: 100}, points[0])
	assert.Equal(t, PricePoint{X: "04/03/2025", Y: 110}, points[1])
}

func TestPredictProductPrice(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()
	ctx := context.Background()

	createTestCompetitor(t, client, "Amazon")
	p := createTestProduct(t, client, "Amazon", "a", "gaming", "consoles", 150, 0)
	createTestSnapshot(t, client, p.ID, 100, time.Now().AddDate(0, 0, -2))
	createTestSnapshot(t, client, p.ID, 200, time.Now().AddDate(0, 0, -1))

	prediction, err := service.PredictProductPrice(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, prediction.PredictedPrice)

	_, err = service.PredictProductPrice(ctx, 9999)
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestCountPromotions(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()
	ctx := context.Background()

	count, err := service.CountPromotions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	createTestCompetitor(t, client, "Amazon")
	createTestProduct(t, client, "Amazon", "a", "gaming", "consoles", 100, 15)
	createTestProduct(t, client, "Amazon", "b", "gaming", "consoles", 100, 0)

	count, err = service.CountPromotions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFilteredProducts(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()
	ctx := context.Background()

	comp := createTestCompetitor(t, client, "Amazon")
	createTestCompetitor(t, client, "Fnac")
	createTestProduct(t, client, "Amazon", "match", "gaming", "consoles", 100, 0)
	createTestProduct(t, client, "Fnac", "other-retailer", "gaming", "consoles", 100, 0)
	createTestProduct(t, client, "Amazon", "wrong-category", "home", "lighting", 100, 0)

	// Global filter, no competitor scope.
	products, err := service.FilteredProducts(ctx, "gaming", "in_stock", nil)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	// Scoped to one competitor.
	products, err = service.FilteredProducts(ctx, "gaming", "in_stock", &comp.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "match", products[0].ProductName)

	// No row matches both filters.
	_, err = service.FilteredProducts(ctx, "gaming", "out_of_stock", nil)
	assert.ErrorIs(t, err, ErrNoProducts)
}

func TestStale(t *testing.T) {
	client, service, cleanup := setupServiceTest(t)
	defer cleanup()
	ctx := context.Background()

	createTestCompetitor(t, client, "Amazon")
	fresh := createTestProduct(t, client, "Amazon", "fresh", "gaming", "consoles", 100, 0)
	_ = fresh

	stale, err := client.Product.Create().
		SetCompetitorName("Amazon").
		SetProductName("stale").
		SetProductURL("https://example.com/stale").
		SetPrice(50).
		SetCategory("gaming").
		SetSubCategory("consoles").
		SetLastUpdatedAt(time.Now().Add(-72 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	result, err := service.Stale(ctx, 48*time.Hour)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, stale.ID, result[0].ID)
}
