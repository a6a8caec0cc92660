package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePriceVariation_Spread(t *testing.T) {
	summary := ComputePriceVariation([]float64{100, 150, 200})

	assert.Equal(t, 100.0, summary.MinPrice)
	assert.Equal(t, 200.0, summary.MaxPrice)
	assert.Equal(t, 150.0, summary.AvgPrice)
	require.NotNil(t, summary.Variation)
	assert.Equal(t, 66.67, *summary.Variation)
}

func TestComputePriceVariation_SinglePrice(t *testing.T) {
	summary := ComputePriceVariation([]float64{49.99})

	assert.Equal(t, 49.99, summary.MinPrice)
	assert.Equal(t, 49.99, summary.MaxPrice)
	assert.Equal(t, 49.99, summary.AvgPrice)
	require.NotNil(t, summary.Variation)
	assert.Equal(t, 0.0, *summary.Variation)
}

func TestComputePriceVariation_ZeroMean(t *testing.T) {
	// ValidPrices filters zeros upstream, but the engine must still not
	// produce NaN if handed a degenerate set.
	summary := ComputePriceVariation([]float64{0, 0})

	assert.Nil(t, summary.Variation)
}

func TestValidPrices_FiltersZeroAndNegative(t *testing.T) {
	products := []ProductRecord{
		{Price: 100},
		{Price: 0},
		{Price: 50},
	}

	prices := ValidPrices(products)
	assert.Equal(t, []float64{100, 50}, prices)
}

func TestMarketShares_SingleDenominator(t *testing.T) {
	counts := []CompetitorCount{
		{Name: "Amazon", Count: 75},
		{Name: "Fnac", Count: 25},
	}

	shares := MarketShares(counts, 100)

	require.Len(t, shares, 2)
	assert.Equal(t, "Amazon", shares[0].Competitor)
	assert.Equal(t, 75.0, shares[0].MarketShare)
	assert.Equal(t, "Fnac", shares[1].Competitor)
	assert.Equal(t, 25.0, shares[1].MarketShare)
}

func TestMarketShares_ZeroTotal(t *testing.T) {
	shares := MarketShares([]CompetitorCount{{Name: "Amazon", Count: 0}}, 0)

	require.Len(t, shares, 1)
	assert.Equal(t, 0.0, shares[0].MarketShare)
}

func TestShare_Rounding(t *testing.T) {
	// 1/3 of the market rounds to 33.33, not a long fraction.
	assert.Equal(t, 33.33, Share(1, 3))
	assert.Equal(t, 66.67, Share(2, 3))
	assert.Equal(t, 0.0, Share(5, 0))
}

func TestMeanPrice_IncludesZeroPrices(t *testing.T) {
	products := []ProductRecord{
		{Price: 100},
		{Price: 0},
		{Price: 50},
	}

	assert.Equal(t, 50.0, MeanPrice(products))
	assert.Equal(t, 0.0, MeanPrice(nil))
}

func TestCountDiscounted(t *testing.T) {
	products := []ProductRecord{
		{Discount: 0},
		{Discount: 10},
		{Discount: 25.5},
	}

	assert.Equal(t, 2, CountDiscounted(products))
}

func TestDistinctKeys_FirstEncounteredOrder(t *testing.T) {
	products := []ProductRecord{
		{Category: "gaming"},
		{Category: "electronics"},
		{Category: "gaming"},
		{Category: "home"},
	}

	keys := DistinctKeys(products, func(p ProductRecord) string { return p.Category })
	assert.Equal(t, []string{"gaming", "electronics", "home"}, keys)
}

func TestCategoryAverages_CompetitorVsMarket(t *testing.T) {
	competitor := []ProductRecord{
		{Category: "gaming", Price: 100},
		{Category: "gaming", Price: 200},
		{Category: "home", Price: 50},
	}
	market := append([]ProductRecord{
		{Category: "gaming", Price: 300},
		{Category: "electronics", Price: 999},
	}, competitor...)

	averages := CategoryAverages(competitor, market, func(p ProductRecord) string { return p.Category })

	// Only the competitor's own categories appear, in catalog order.
	require.Len(t, averages, 2)
	assert.Equal(t, "gaming", averages[0].Key)
	assert.Equal(t, 150.0, averages[0].CompetitorAverage)
	assert.Equal(t, 200.0, averages[0].MarketAverage)
	assert.Equal(t, "home", averages[1].Key)
	assert.Equal(t, 50.0, averages[1].CompetitorAverage)
	assert.Equal(t, 50.0, averages[1].MarketAverage)
}

func TestDistribution_SumsToHundred(t *testing.T) {
	products := []ProductRecord{
		{Category: "gaming"},
		{Category: "gaming"},
		{Category: "gaming"},
		{Category: "home"},
		{Category: "electronics"},
		{Category: "electronics"},
	}

	shares := Distribution(products, func(p ProductRecord) string { return p.Category })

	require.Len(t, shares, 3)
	assert.Equal(t, 50.0, shares[0].Percentage)
	assert.Equal(t, 16.67, shares[1].Percentage)
	assert.Equal(t, 33.33, shares[2].Percentage)

	sum := 0.0
	for _, s := range shares {
		sum += s.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.01)
}

func TestRecentChanges_TwoLatestSnapshots(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	snapshots := []Snapshot{
		{ProductID: 1, Price: 90, Timestamp: base},
		{ProductID: 1, Price: 100, Timestamp: base.AddDate(0, 0, 1)},
		{ProductID: 1, Price: 120, Timestamp: base.AddDate(0, 0, 2)},
	}
	names := map[int]string{1: "Samsung Pro 200"}

	changes := RecentChanges(snapshots, names, 10)

	require.Len(t, changes, 1)
	change := changes[0]
	assert.Equal(t, "Samsung Pro 200", change.ProductName)
	assert.Equal(t, 120.0, change.CurrentPrice)
	assert.Equal(t, 100.0, change.AncienPrice)
	assert.Equal(t, base.AddDate(0, 0, 2), change.DateOfChange)
	require.NotNil(t, change.Variation)
	assert.Equal(t, 20.0, *change.Variation)
}

func TestRecentChanges_SingleSnapshotDropped(t *testing.T) {
	snapshots := []Snapshot{
		{ProductID: 1, Price: 100, Timestamp: time.Now()},
	}

	changes := RecentChanges(snapshots, map[int]string{1: "Lonely"}, 10)
	assert.Empty(t, changes)
}

func TestRecentChanges_NilVariationWhenPreviousZero(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	snapshots := []Snapshot{
		{ProductID: 1, Price: 0, Timestamp: base},
		{ProductID: 1, Price: 100, Timestamp: base.AddDate(0, 0, 1)},
	}

	changes := RecentChanges(snapshots, map[int]string{1: "From zero"}, 10)

	require.Len(t, changes, 1)
	assert.Nil(t, changes[0].Variation)
	assert.Equal(t, 100.0, changes[0].CurrentPrice)
	assert.Equal(t, 0.0, changes[0].AncienPrice)
}

func TestRecentChanges_OrderAndTieBreak(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	older := base.AddDate(0, 0, -1)
	snapshots := []Snapshot{
		// Product 3 changed at base, same instant as product 2.
		{ProductID: 3, Price: 10, Timestamp: older},
		{ProductID: 3, Price: 20, Timestamp: base},
		{ProductID: 2, Price: 30, Timestamp: older},
		{ProductID: 2, Price: 40, Timestamp: base},
		// Product 1 changed later, so it comes first.
		{ProductID: 1, Price: 50, Timestamp: older},
		{ProductID: 1, Price: 60, Timestamp: base.AddDate(0, 0, 1)},
	}
	names := map[int]string{1: "a", 2: "b", 3: "c"}

	changes := RecentChanges(snapshots, names, 10)

	require.Len(t, changes, 3)
	assert.Equal(t, 1, changes[0].ProductID)
	assert.Equal(t, 2, changes[1].ProductID)
	assert.Equal(t, 3, changes[2].ProductID)
}

func TestRecentChanges_Limit(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var snapshots []Snapshot
	names := make(map[int]string)
	for id := 1; id <= 15; id++ {
		snapshots = append(snapshots,
			Snapshot{ProductID: id, Price: 10, Timestamp: base},
			Snapshot{ProductID: id, Price: 20, Timestamp: base.Add(time.Duration(id) * time.Hour)},
		)
		names[id] = "p"
	}

	changes := RecentChanges(snapshots, names, 10)
	assert.Len(t, changes, 10)
	// Newest change first.
	assert.Equal(t, 15, changes[0].ProductID)
}

func TestChartSeries_OldestFirstAndDateFormat(t *testing.T) {
	snapshots := []Snapshot{
		{ProductID: 1, Price: 120, Timestamp: time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)},
		{ProductID: 1, Price: 100, Timestamp: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)},
		{ProductID: 1, Price: 110, Timestamp: time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)},
	}

	points := ChartSeries(snapshots)

	require.Len(t, points, 3)
	assert.Equal(t, PricePoint{X: "03/03/2025", Y: 100}, points[0])
	assert.Equal(t, PricePoint{X: "04/03/2025", Y: 110}, points[1])
	assert.Equal(t, PricePoint{X: "05/03/2025", Y: 120}, points[2])
}

func TestPredictPrice_MeanOfHistory(t *testing.T) {
	snapshots := []Snapshot{
		{Price: 100},
		{Price: 200},
		{Price: 150},
	}

	assert.Equal(t, 150.0, PredictPrice(snapshots))
	assert.Equal(t, 0.0, PredictPrice(nil))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, Round2(66.666666))
	assert.Equal(t, 66.66, Round2(66.664))
	assert.Equal(t, -2.5, Round2(-2.5))
}
