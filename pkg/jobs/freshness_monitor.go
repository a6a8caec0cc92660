package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pricewatch/pricewatch/ent"
	"github.com/pricewatch/pricewatch/pkg/analytics"
	"github.com/pricewatch/pricewatch/pkg/metrics"
)

// StaleEntry describes a product whose price has not been refreshed recently
type StaleEntry struct {
	ProductID     int       `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Competitor    string    `json:"competitor"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// FreshnessMonitor watches how recently competitor prices were refreshed
type FreshnessMonitor struct {
	db        *ent.Client
	analytics *analytics.Service
	metrics   *metrics.Metrics
	logger    *log.Logger
}

// NewFreshnessMonitor creates a new freshness monitor instance
func NewFreshnessMonitor(db *ent.Client, analyticsService *analytics.Service, m *metrics.Metrics, logger *log.Logger) *FreshnessMonitor {
	if logger == nil {
		logger = log.Default()
	}

	return &FreshnessMonitor{
		db:        db,
		analytics: analyticsService,
		metrics:   m,
		logger:    logger,
	}
}

// DetectStaleProducts finds products not refreshed within the given window
func (m *FreshnessMonitor) DetectStaleProducts(ctx context.Context, olderThan time.Duration) ([]StaleEntry, error) {
	m.logger.Printf("Detecting products not refreshed in the last %v...", olderThan)

	products, err := m.analytics.Stale(ctx, olderThan)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale products: %w", err)
	}

	entries := make([]StaleEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, StaleEntry{
			ProductID:     p.ID,
			ProductName:   p.ProductName,
			Competitor:    p.CompetitorName,
			LastUpdatedAt: p.LastUpdatedAt,
		})
	}

	m.logger.Printf("Found %d stale products", len(entries))
	return entries, nil
}

// RefreshCoverageStats recomputes the tracking gauges exposed on /metrics
func (m *FreshnessMonitor) RefreshCoverageStats(ctx context.Context, olderThan time.Duration) error {
	products, err := m.db.Product.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	competitors, err := m.db.Competitor.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count competitors: %w", err)
	}

	stale, err := m.DetectStaleProducts(ctx, olderThan)
	if err != nil {
		return err
	}

	if m.metrics != nil {
		m.metrics.TrackedProducts.Set(float64(products))
		m.metrics.TrackedCompetitors.Set(float64(competitors))
		m.metrics.StaleProducts.Set(float64(len(stale)))
	}

	m.logger.Printf("📊 Coverage: %d products across %d competitors, %d stale", products, competitors, len(stale))
	return nil
}
