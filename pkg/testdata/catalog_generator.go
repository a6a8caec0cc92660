package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/pricewatch/pricewatch/ent"
)

// CatalogGeneratorConfig configures catalog generation parameters
type CatalogGeneratorConfig struct {
	CompetitorName string
	Count          int
	Category       string
	SubCategory    string
	MinPrice       float64
	MaxPrice       float64
	DiscountChance float64 // 0.0-1.0 (probability of an active promotion)
	OutOfStockRate float64
	HistoryDays    int // snapshots generated per product
}

// Catalog taxonomy used by the generators. Each category maps to its
// sub-categories.
var CategoryData = map[string][]string{
	"electronics": {"smartphones", "laptops", "tablets", "headphones", "monitors"},
	"appliances":  {"refrigerators", "washing_machines", "microwaves", "vacuum_cleaners"},
	"gaming":      {"consoles", "video_games", "accessories", "pc_components"},
	"home":        {"furniture", "lighting", "kitchenware", "bedding"},
	"sports":      {"fitness", "cycling", "running", "outdoor"},
}

// Per-category product name parts
var productNameParts = map[string]struct {
	Brands []string
	Models []string
}{
	"electronics": {
		Brands: []string{"Samsung", "Apple", "Sony", "LG", "Xiaomi", "Huawei", "Asus", "Lenovo", "Dell", "HP"},
		Models: []string{"Pro", "Max", "Ultra", "Air", "Plus", "Lite", "Edge", "Neo", "Prime", "X"},
	},
	"appliances": {
		Brands: []string{"Bosch", "Whirlpool", "Siemens", "Electrolux", "Miele", "Beko", "Candy", "Indesit"},
		Models: []string{"Serie 4", "Serie 6", "Serie 8", "EcoLine", "PerfectCare", "FreshSense", "ProSilence"},
	},
	"gaming": {
		Brands: []string{"PlayStation", "Xbox", "Nintendo", "Razer", "Logitech", "SteelSeries", "Corsair", "MSI"},
		Models: []string{"Elite", "Pro", "Slim", "Wireless", "RGB", "Tournament", "Champion", "Legend"},
	},
	"home": {
		Brands: []string{"Ikea", "Habitat", "Maisons", "Leroy", "Conforama", "But", "Alinea"},
		Models: []string{"Classic", "Nordic", "Modern", "Vintage", "Scandia", "Comfort", "Deluxe"},
	},
	"sports": {
		Brands: []string{"Decathlon", "Nike", "Adidas", "Puma", "Asics", "Salomon", "Garmin", "Polar"},
		Models: []string{"Runner", "Trail", "Performance", "Training", "Endurance", "Speed", "Flex"},
	},
}

// CompetitorNames is the default pool of retailer names used when seeding
var CompetitorNames = []string{
	"Amazon", "Cdiscount", "Fnac", "Darty", "Boulanger",
	"Rue du Commerce", "LDLC", "Electro Depot",
}

// GenerateProductName creates category-specific realistic product names
func GenerateProductName(category string) string {
	parts, ok := productNameParts[category]
	if !ok {
		// Fallback for unknown categories
		return fmt.Sprintf("%s %s", gofakeit.Company(), gofakeit.ProductName())
	}

	brand := parts.Brands[rand.Intn(len(parts.Brands))]
	model := parts.Models[rand.Intn(len(parts.Models))]

	return fmt.Sprintf("%s %s %d", brand, model, 100+rand.Intn(900))
}

// GenerateProduct creates a single product with realistic data
func GenerateProduct(client *ent.Client, config CatalogGeneratorConfig) *ent.ProductCreate {
	name := GenerateProductName(config.Category)
	price := roundCents(config.MinPrice + rand.Float64()*(config.MaxPrice-config.MinPrice))

	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	url := fmt.Sprintf("https://www.%s.example/p/%s",
		strings.ToLower(strings.ReplaceAll(config.CompetitorName, " ", "")), slug)

	stockStatus := "in_stock"
	if rand.Float64() < config.OutOfStockRate {
		stockStatus = "out_of_stock"
	}

	create := client.Product.Create().
		SetCompetitorName(config.CompetitorName).
		SetProductName(name).
		SetProductURL(url).
		SetPrice(price).
		SetCategory(config.Category).
		SetSubCategory(config.SubCategory).
		SetStockStatus(stockStatus).
		SetLastUpdatedAt(time.Now())

	if rand.Float64() < config.DiscountChance {
		discount := float64(5 + rand.Intn(46))
		original := roundCents(price / (1 - discount/100))
		create.SetDiscount(discount).SetOriginalPrice(original)
	}

	return create
}

// GenerateCatalog creates multiple products with the given config
func GenerateCatalog(client *ent.Client, config CatalogGeneratorConfig) []*ent.ProductCreate {
	products := make([]*ent.ProductCreate, config.Count)
	for i := 0; i < config.Count; i++ {
		products[i] = GenerateProduct(client, config)
	}
	return products
}

// GenerateCatalogForCompetitor generates a mixed-category catalog with
// default settings
func GenerateCatalogForCompetitor(client *ent.Client, competitorName string, count int) []*ent.ProductCreate {
	products := make([]*ent.ProductCreate, 0, count)

	for len(products) < count {
		category := pickRandomCategory()
		subCategory := pickRandomSubCategory(category)

		config := CatalogGeneratorConfig{
			CompetitorName: competitorName,
			Count:          1,
			Category:       category,
			SubCategory:    subCategory,
			MinPrice:       9.99,
			MaxPrice:       1499.99,
			DiscountChance: 0.3,
			OutOfStockRate: 0.1,
		}
		products = append(products, GenerateProduct(client, config))
	}

	return products
}

// GeneratePriceHistory creates daily snapshots for a product, oldest first.
// Prices drift around the current price so variation stays realistic.
func GeneratePriceHistory(client *ent.Client, productID int, currentPrice float64, days int) []*ent.PriceHistoryCreate {
	snapshots := make([]*ent.PriceHistoryCreate, 0, days)

	price := currentPrice
	for i := days - 1; i >= 0; i-- {
		// Walk backwards in time, drifting up to 5% per day.
		drift := 1 + (rand.Float64()-0.5)*0.1
		price = roundCents(price * drift)
		if price < 1 {
			price = 1
		}

		timestamp := time.Now().AddDate(0, 0, -i)
		snapshots = append(snapshots, client.PriceHistory.Create().
			SetProductID(productID).
			SetPrice(price).
			SetDiscount(0).
			SetTimestamp(timestamp))
	}

	return snapshots
}

func pickRandomCategory() string {
	categories := make([]string, 0, len(CategoryData))
	for category := range CategoryData {
		categories = append(categories, category)
	}
	return categories[rand.Intn(len(categories))]
}

func pickRandomSubCategory(category string) string {
	subs := CategoryData[category]
	return subs[rand.Intn(len(subs))]
}

func roundCents(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// BulkInsertProducts inserts products in batches for performance
func BulkInsertProducts(ctx context.Context, client *ent.Client, products []*ent.ProductCreate, batchSize int) error {
	for i := 0; i < len(products); i += batchSize {
		end := i + batchSize
		if end > len(products) {
			end = len(products)
		}

		batch := products[i:end]
		if err := client.Product.CreateBulk(batch...).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert batch %d-%d: %w", i, end, err)
		}
	}
	return nil
}

// BulkInsertHistory inserts price snapshots in batches
func BulkInsertHistory(ctx context.Context, client *ent.Client, snapshots []*ent.PriceHistoryCreate, batchSize int) error {
	for i := 0; i < len(snapshots); i += batchSize {
		end := i + batchSize
		if end > len(snapshots) {
			end = len(snapshots)
		}

		batch := snapshots[i:end]
		if err := client.PriceHistory.CreateBulk(batch...).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert batch %d-%d: %w", i, end, err)
		}
	}
	return nil
}
