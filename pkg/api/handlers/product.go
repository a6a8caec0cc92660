package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pricewatch/pricewatch/pkg/analytics"
	apierrors "github.com/pricewatch/pricewatch/pkg/api/errors"
	"github.com/pricewatch/pricewatch/pkg/metrics"
)

// ProductHandler handles product analytics endpoints
type ProductHandler struct {
	analytics *analytics.Service
	metrics   *metrics.Metrics
}

// NewProductHandler creates a new product handler
func NewProductHandler(analyticsService *analytics.Service, m *metrics.Metrics) *ProductHandler {
	return &ProductHandler{
		analytics: analyticsService,
		metrics:   m,
	}
}

func (h *ProductHandler) count(operation string) {
	if h.metrics != nil {
		h.metrics.AnalyticsQueries.WithLabelValues(operation).Inc()
	}
}

// CompetitorProducts godoc
// @Summary Raw product list of a competitor
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Competitor ID"
// @Success 200 {array} ent.Product
// @Failure 400 {object} models.ErrorResponse "Invalid competitor ID"
// @Failure 404 {object} models.ErrorResponse "Competitor or products not found"
// @Router /product/competitorProducts/{id} [get]
func (h *ProductHandler) CompetitorProducts(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apierrors.BadRequest(c, "Invalid competitor ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	products, err := h.analytics.ProductsForCompetitor(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrCompetitorNotFound):
			return apierrors.NotFound(c, "Competitor not found")
		case errors.Is(err, analytics.ErrNoProducts):
			return apierrors.NotFound(c, "No products found for this competitor")
		default:
			return apierrors.DatabaseError(c, err)
		}
	}

	h.count("competitor_products_raw")
	return c.JSON(http.StatusOK, products)
}

// ListProducts godoc
// @Summary List every tracked product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ent.Product
// @Failure 404 {object} models.ErrorResponse "No products found"
// @Router /product/products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	products, err := h.analytics.AllProducts(ctx)
	if err != nil {
		if errors.Is(err, analytics.ErrNoProducts) {
			return apierrors.NotFound(c, "No products found")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.count("list_products")
	return c.JSON(http.StatusOK, products)
}

// ProductPricePrediction godoc
// @Summary Naive price prediction for a product
// @Description Mean of the recorded price history, rounded to two decimals
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} analytics.PricePrediction
// @Failure 400 {object} models.ErrorResponse "Invalid product ID"
// @Failure 404 {object} models.ErrorResponse "Product or history not found"
// @Router /product/productPricePrediction/{id} [get]
func (h *ProductHandler) ProductPricePrediction(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apierrors.BadRequest(c, "Invalid product ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	prediction, err := h.analytics.PredictProductPrice(ctx, id)
	if err != nil {
		return h.productError(c, err)
	}

	h.count("price_prediction")
	return c.JSON(http.StatusOK, prediction)
}

// CountPromotions godoc
// @Summary Count products currently discounted
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Failure 404 {object} map[string]int "Zero promotions"
// @Router /product/countPromotions [get]
func (h *ProductHandler) CountPromotions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	count, err := h.analytics.CountPromotions(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	h.count("count_promotions")
	if count == 0 {
		// An empty promotion set is reported as a miss, body included.
		return c.JSON(http.StatusNotFound, map[string]int{"count": 0})
	}
	return c.JSON(http.StatusOK, map[string]int{"count": count})
}

// RecentPriceChanges godoc
// @Summary Most recent price movements across the market
// @Description Latest two snapshots per product, newest changes first
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} analytics.RecentPriceChange
// @Failure 404 {object} models.ErrorResponse "No price changes found"
// @Router /product/getRecentPriceChanges [get]
func (h *ProductHandler) RecentPriceChanges(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	changes, err := h.analytics.RecentPriceChanges(ctx, analytics.DefaultRecentChangesLimit)
	if err != nil {
		if errors.Is(err, analytics.ErrNoHistory) {
			return apierrors.NotFound(c, "No price changes found")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.count("recent_price_changes")
	return c.JSON(http.StatusOK, changes)
}

// RecentPriceChangesByCompetitor godoc
// @Summary Most recent price movements for one competitor
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Competitor ID"
// @Success 200 {array} analytics.RecentPriceChange
// @Failure 400 {object} models.ErrorResponse "Invalid competitor ID"
// @Failure 404 {object} models.ErrorResponse "Competitor, products or changes not found"
// @Router /product/getRecentPriceChanges/{id} [get]
func (h *ProductHandler) RecentPriceChangesByCompetitor(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apierrors.BadRequest(c, "Invalid competitor ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	changes, err := h.analytics.RecentPriceChangesByCompetitor(ctx, id, analytics.DefaultRecentChangesLimit)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrCompetitorNotFound):
			return apierrors.NotFound(c, "Competitor not found")
		case errors.Is(err, analytics.ErrNoProducts):
			return apierrors.NotFound(c, "No products found for this competitor")
		case errors.Is(err, analytics.ErrNoHistory):
			return apierrors.NotFound(c, "No price changes found")
		default:
			return apierrors.DatabaseError(c, err)
		}
	}

	h.count("recent_price_changes_competitor")
	return c.JSON(http.StatusOK, changes)
}

// ProductPriceHistory godoc
// @Summary Chart-ready price history of a product
// @Description Points {x: DD/MM/YYYY, y: price}, oldest first
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {array} analytics.PricePoint
// @Failure 400 {object} models.ErrorResponse "Invalid product ID"
// @Failure 404 {object} models.ErrorResponse "Product or history not found"
// @Router /product/getProductPriceHistory/{id} [get]
func (h *ProductHandler) ProductPriceHistory(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apierrors.BadRequest(c, "Invalid product ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	points, err := h.analytics.PriceHistoryForProduct(ctx, id)
	if err != nil {
		return h.productError(c, err)
	}

	h.count("price_history")
	return c.JSON(http.StatusOK, points)
}

// FilteredProducts godoc
// @Summary Filter products by category and stock status
// @Description Both query parameters are mandatory; an optional competitor ID narrows the scope
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int false "Competitor ID"
// @Param category query string true "Category"
// @Param stock query string true "Stock status"
// @Success 200 {array} ent.Product
// @Failure 400 {object} models.ErrorResponse "Missing filter parameters"
// @Failure 404 {object} models.ErrorResponse "No products match"
// @Router /product/filteredProducts/{id} [get]
func (h *ProductHandler) FilteredProducts(c echo.Context) error {
	category := c.QueryParam("category")
	stock := c.QueryParam("stock")
	if category == "" || stock == "" {
		return apierrors.BadRequest(c, "Both category and stock parameters are required")
	}

	var competitorID *int
	if raw := c.Param("id"); raw != "" {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return apierrors.BadRequest(c, "Invalid competitor ID")
		}
		competitorID = &id
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	products, err := h.analytics.FilteredProducts(ctx, category, stock, competitorID)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrCompetitorNotFound):
			return apierrors.NotFound(c, "Competitor not found")
		case errors.Is(err, analytics.ErrNoProducts):
			return apierrors.NotFound(c, "No products match the given filters")
		default:
			return apierrors.DatabaseError(c, err)
		}
	}

	h.count("filtered_products")
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) productError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, analytics.ErrProductNotFound):
		return apierrors.NotFound(c, "Product not found")
	case errors.Is(err, analytics.ErrNoHistory):
		return apierrors.NotFound(c, "No price history found for this product")
	default:
		return apierrors.DatabaseError(c, err)
	}
}
