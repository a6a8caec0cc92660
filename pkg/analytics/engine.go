package analytics

import (
	"math"
	"sort"
	"time"
)

// ProductRecord is the engine's view of a product. Services map ent rows
// into this before any computation so the aggregation itself stays free of
// persistence concerns.
type ProductRecord struct {
	ID             int
	CompetitorName string
	Name           string
	Price          float64
	Discount       float64
	Category       string
	SubCategory    string
	StockStatus    string
}

// Snapshot is one historical price observation for a product.
type Snapshot struct {
	ProductID int
	Price     float64
	Timestamp time.Time
}

// CompetitorCount pairs a competitor name with its tracked product count.
type CompetitorCount struct {
	Name  string
	Count int
}

// PriceVariationSummary describes the price spread of a product set.
// Variation is nil when the mean price is zero: the spread is undefined and
// must never surface as NaN or Infinity.
type PriceVariationSummary struct {
	MinPrice  float64  `json:"minPrice"`
	MaxPrice  float64  `json:"maxPrice"`
	AvgPrice  float64  `json:"avgPrice"`
	Variation *float64 `json:"variation"`
}

// MarketShareEntry is one competitor's share of the tracked catalog.
type MarketShareEntry struct {
	Competitor  string  `json:"competitor"`
	MarketShare float64 `json:"marketShare"`
}

// KeyedAverage compares a competitor's average price against the market
// average for one category or sub-category value.
type KeyedAverage struct {
	Key               string
	CompetitorAverage float64
	MarketAverage     float64
}

// KeyedShare is the percentage of a competitor's catalog falling into one
// category or sub-category value.
type KeyedShare struct {
	Key        string
	Percentage float64
}

// RecentPriceChange is the latest price movement of one product, derived
// from its two most recent snapshots. Variation is nil when the previous
// price was zero.
type RecentPriceChange struct {
	ProductID    int       `json:"-"`
	ProductName  string    `json:"product_name"`
	CurrentPrice float64   `json:"current_price"`
	AncienPrice  float64   `json:"ancien_price"`
	DateOfChange time.Time `json:"date_of_change"`
	Variation    *float64  `json:"variation"`
}

// PricePoint is a chart-ready {x, y} pair for the price history graph.
type PricePoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// Round2 rounds to two decimal places, the precision used by every
// percentage and price metric in the API.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidPrices returns the product prices strictly greater than zero.
// Zero prices mean the scraper could not read a price and are treated as
// data-entry noise, not valid price points.
func ValidPrices(products []ProductRecord) []float64 {
	prices := make([]float64, 0, len(products))
	for _, p := range products {
		if p.Price > 0 {
			prices = append(prices, p.Price)
		}
	}
	return prices
}

// ComputePriceVariation computes min, max, mean and the relative spread
// ((max-min)/mean)*100 of a non-empty price set.
func ComputePriceVariation(prices []float64) PriceVariationSummary {
	min, max, sum := prices[0], prices[0], 0.0
	for _, p := range prices {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
		sum += p
	}
	avg := sum / float64(len(prices))

	summary := PriceVariationSummary{
		MinPrice: min,
		MaxPrice: max,
		AvgPrice: avg,
	}
	if avg != 0 {
		variation := Round2((max - min) / avg * 100)
		summary.Variation = &variation
	}
	return summary
}

// MarketShares computes each competitor's share of the global product
// count. The denominator is computed once across all competitors. When the
// total is zero every share is reported as 0.00 rather than NaN.
func MarketShares(counts []CompetitorCount, total int) []MarketShareEntry {
	shares := make([]MarketShareEntry, len(counts))
	for i, c := range counts {
		share := 0.0
		if total > 0 {
			share = Round2(float64(c.Count) / float64(total) * 100)
		}
		shares[i] = MarketShareEntry{Competitor: c.Name, MarketShare: share}
	}
	return shares
}

// Share computes one competitor's market share percentage.
func Share(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round2(float64(count) / float64(total) * 100)
}

// MeanPrice is the arithmetic mean over all product prices, including
// zero-priced rows. This mirrors the catalog summary, which averages the
// whole product set rather than only valid price points.
func MeanPrice(products []ProductRecord) float64 {
	if len(products) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range products {
		sum += p.Price
	}
	return sum / float64(len(products))
}

// CountDiscounted counts products with an active promotion (discount > 0).
func CountDiscounted(products []ProductRecord) int {
	n := 0
	for _, p := range products {
		if p.Discount > 0 {
			n++
		}
	}
	return n
}

// DistinctKeys returns the distinct key values of the product set in
// first-encountered order. Output ordering of every category breakdown
// follows this order, never a sort.
func DistinctKeys(products []ProductRecord, key func(ProductRecord) string) []string {
	seen := make(map[string]bool, len(products))
	keys := make([]string, 0, len(products))
	for _, p := range products {
		k := key(p)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

// CategoryAverages partitions the competitor's products by key and compares
// the competitor's average price in each partition against the market
// average over all products sharing that key. Only keys present in the
// competitor's own catalog are reported.
func CategoryAverages(competitorProducts, marketProducts []ProductRecord, key func(ProductRecord) string) []KeyedAverage {
	keys := DistinctKeys(competitorProducts, key)

	averages := make([]KeyedAverage, 0, len(keys))
	for _, k := range keys {
		var compSum, marketSum float64
		var compN, marketN int
		for _, p := range competitorProducts {
			if key(p) == k {
				compSum += p.Price
				compN++
			}
		}
		for _, p := range marketProducts {
			if key(p) == k {
				marketSum += p.Price
				marketN++
			}
		}

		avg := KeyedAverage{Key: k}
		if compN > 0 {
			avg.CompetitorAverage = compSum / float64(compN)
		}
		if marketN > 0 {
			avg.MarketAverage = marketSum / float64(marketN)
		}
		averages = append(averages, avg)
	}
	return averages
}

// Distribution computes the percentage of the competitor's catalog per
// distinct key value, in first-encountered order. Percentages are rounded
// to two decimals and sum to 100 within rounding error.
func Distribution(products []ProductRecord, key func(ProductRecord) string) []KeyedShare {
	keys := DistinctKeys(products, key)
	total := len(products)

	shares := make([]KeyedShare, 0, len(keys))
	for _, k := range keys {
		n := 0
		for _, p := range products {
			if key(p) == k {
				n++
			}
		}
		shares = append(shares, KeyedShare{
			Key:        k,
			Percentage: Round2(float64(n) / float64(total) * 100),
		})
	}
	return shares
}

// RecentChanges derives the latest price movement per product from its two
// most recent snapshots. Products with fewer than two snapshots have no
// change to report and are dropped. The result is ordered by change time
// descending (ties broken by product ID ascending) and truncated to limit.
func RecentChanges(snapshots []Snapshot, productNames map[int]string, limit int) []RecentPriceChange {
	byProduct := make(map[int][]Snapshot)
	for _, s := range snapshots {
		byProduct[s.ProductID] = append(byProduct[s.ProductID], s)
	}

	changes := make([]RecentPriceChange, 0, len(byProduct))
	for productID, snaps := range byProduct {
		if len(snaps) < 2 {
			continue
		}
		sort.Slice(snaps, func(i, j int) bool {
			return snaps[i].Timestamp.After(snaps[j].Timestamp)
		})
		current, previous := snaps[0], snaps[1]

		change := RecentPriceChange{
			ProductID:    productID,
			ProductName:  productNames[productID],
			CurrentPrice: current.Price,
			AncienPrice:  previous.Price,
			DateOfChange: current.Timestamp,
		}
		if previous.Price != 0 {
			variation := Round2((current.Price - previous.Price) / previous.Price * 100)
			change.Variation = &variation
		}
		changes = append(changes, change)
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].DateOfChange.Equal(changes[j].DateOfChange) {
			return changes[i].ProductID < changes[j].ProductID
		}
		return changes[i].DateOfChange.After(changes[j].DateOfChange)
	})

	if limit > 0 && len(changes) > limit {
		changes = changes[:limit]
	}
	return changes
}

// ChartSeries converts a snapshot sequence into chart-ready points, oldest
// to newest, with the date formatted as DD/MM/YYYY the way the dashboard
// renders it.
func ChartSeries(snapshots []Snapshot) []PricePoint {
	ordered := make([]Snapshot, len(snapshots))
	copy(ordered, snapshots)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	points := make([]PricePoint, len(ordered))
	for i, s := range ordered {
		points[i] = PricePoint{
			X: s.Timestamp.Format("02/01/2006"),
			Y: s.Price,
		}
	}
	return points
}

// PredictPrice is the naive prediction model: the arithmetic mean of all
// historical prices. It is a placeholder, not a forecast.
func PredictPrice(snapshots []Snapshot) float64 {
	if len(snapshots) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range snapshots {
		sum += s.Price
	}
	return sum / float64(len(snapshots))
}
