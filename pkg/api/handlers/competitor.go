package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pricewatch/pricewatch/pkg/analytics"
	apierrors "github.com/pricewatch/pricewatch/pkg/api/errors"
	"github.com/pricewatch/pricewatch/pkg/metrics"
)

// queryTimeout bounds every analytics read.
const queryTimeout = 5 * time.Second

// CompetitorHandler handles competitor analytics endpoints
type CompetitorHandler struct {
	analytics *analytics.Service
	metrics   *metrics.Metrics
}

// NewCompetitorHandler creates a new competitor handler
func NewCompetitorHandler(analyticsService *analytics.Service, m *metrics.Metrics) *CompetitorHandler {
	return &CompetitorHandler{
		analytics: analyticsService,
		metrics:   m,
	}
}

// parseIDParam parses a numeric path parameter. Non-numeric identifiers are
// a client error, not a lookup miss.
func parseIDParam(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *CompetitorHandler) count(operation string) {
	if h.metrics != nil {
		h.metrics.AnalyticsQueries.WithLabelValues(operation).Inc()
	}
}

// ListCompetitors godoc
// @Summary List all tracked competitors
// @Tags Competitors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ent.Competitor
// @Failure 404 {object} models.ErrorResponse "No competitors found"
// @Router /competitor/competitors [get]
func (h *CompetitorHandler) ListCompetitors(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	competitors, err := h.analytics.ListCompetitors(ctx)
	if err != nil {
		if errors.Is(err, analytics.ErrNoCompetitors) {
			return apierrors.NotFound(c, "No competitors found")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.count("list_competitors")
	return c.JSON(http.StatusOK, competitors)
}

// CountCompetitors godoc
// @Summary Count tracked competitors
// @Tags Competitors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Failure 404 {object} models.ErrorResponse "No competitors found"
// @Router /competitor/countCompetitors [get]
func (h *CompetitorHandler) CountCompetitors(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	count, err := h.analytics.CountCompetitors(ctx)
	if err != nil {
		if errors.Is(err, analytics.ErrNoCompetitors) {
			return apierrors.NotFound(c, "No competitors found")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.count("count_competitors")
	return c.JSON(http.StatusOK, map[string]int{"count": count})
}

// GetCompetitor godoc
// @Summary Get one competitor
// @Tags Competitors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Competitor ID"
// @Success 200 {object} ent.Competitor
// @Failure 400 {object} models.ErrorResponse "Invalid competitor ID"
// @Failure 404 {object} models.ErrorResponse "Competitor not found"
// @Router /competitor/competitor/{id} [get]
func (h *CompetitorHandler) GetCompetitor(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apierrors.BadRequest(c, "Invalid competitor ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	competitor, err := h.analytics.GetCompetitor(ctx, id)
	if err != nil {
		if errors.Is(err, analytics.ErrCompetitorNotFound) {
			return apierrors.NotFound(c, "Competitor not found")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, competitor)
}

// CompetitorProducts godoc
// @Summary Get a competitor's products with catalog summary
// @Description Products plus totals, promotion count, mean price and market share
// @Tags Competitors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Competitor ID"
// @Success 200 {object} analytics.ProductSummary
// @Failure 400 {object} models.ErrorResponse "Invalid competitor ID"
// @Failure 404 {object} models.ErrorResponse "Competitor or products not found"
// @Router /competitor/competitorProducts/{id} [get]
func (h *CompetitorHandler) CompetitorProducts(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apierrors.BadRequest(c, "Invalid competitor ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	summary, err := h.analytics.CompetitorProductSummary(ctx, id)
	if err != nil {
		return h.competitorError(c, err)
	}

	h.count("competitor_products")
	return c.JSON(http.StatusOK, summary)
}

// PrixMoyenCategory godoc
// @Summary Average price per category vs the market
// @Tags Competitors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Competitor ID"
// @Success 200 {array} analytics.CategoryPriceComparison
// @Failure 404 {object} models.ErrorResponse "Competitor or products not found"
// @Router /competitor/prixMoyenCategory/{id} [get]
func (h *CompetitorHandler) PrixMoyenCategory(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apierrors.BadRequest(c, "Invalid competitor ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	comparison, err := h.analytics.AveragePriceByCategory(ctx, id)
	if err != nil {
		return h.competitorError(c, err)
	}

	h.count("prix_moyen_category")
	return c.JSON(http.StatusOK, comparison)
}

// PrixMoyenSubCategory godoc
// @Summary Average price per sub-category vs the market
// @Tags Competitors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Competitor ID"
// @Success 200 {array} analytics.SubCategoryPriceComparison
// @Failure 404 {object} models.ErrorResponse "Competitor or products not found"
// @Router /competitor/prixMoyenSubCategory/{id} [get]
func (h *CompetitorHandler) PrixMoyenSubCategory(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apierrors.BadRequest(c, "Invalid competitor ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	comparison, err := h.analytics.AveragePriceBySubCategory(ctx, id)
	if err != nil {
		return h.competitorError(c, err)
	}

	h.count("prix_moyen_sub_category")
	return c.JSON(http.StatusOK, comparison)
}

// RepartitionCategory godoc
// @Summary Category repartition of a competitor's catalog
// @Tags Competitors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Competitor ID"
// @Success 200 {array} analytics.CategoryDistribution
// @Failure 404 {object} models.ErrorResponse "Competitor or products not found"
// @Router /competitor/repartitionCategory/{id} [get]
func (h *CompetitorHandler) RepartitionCategory(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apierrors.BadRequest(c, "Invalid competitor ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	repartition, err := h.analytics.CategoryDistributionFor(ctx, id)
	if err != nil {
		return h.competitorError(c, err)
	}

	h.count("repartition_category")
	return c.JSON(http.StatusOK, repartition)
}

// RepartitionSubCategory godoc
// @Summary Sub-category repartition of a competitor's catalog
// @Tags Competitors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Competitor ID"
// @Success 200 {array} analytics.SubCategoryDistribution
// @Failure 404 {object} models.ErrorResponse "Competitor or products not found"
// @Router /competitor/repartitionSubCategory/{id} [get]
func (h *CompetitorHandler) RepartitionSubCategory(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apierrors.BadRequest(c, "Invalid competitor ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	repartition, err := h.analytics.SubCategoryDistributionFor(ctx, id)
	if err != nil {
		return h.competitorError(c, err)
	}

	h.count("repartition_sub_category")
	return c.JSON(http.StatusOK, repartition)
}

// VariationPrix godoc
// @Summary Price spread of a competitor's catalog
// @Description Min, max, mean and relative variation over valid (> 0) prices
// @Tags Competitors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Competitor ID"
// @Success 200 {object} analytics.PriceVariationSummary
// @Failure 404 {object} models.ErrorResponse "Competitor, products or valid prices not found"
// @Router /competitor/variationPrix/{id} [get]
func (h *CompetitorHandler) VariationPrix(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apierrors.BadRequest(c, "Invalid competitor ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	summary, err := h.analytics.PriceVariation(ctx, id)
	if err != nil {
		return h.competitorError(c, err)
	}

	h.count("variation_prix")
	return c.JSON(http.StatusOK, summary)
}

// PartMarche godoc
// @Summary Market share of every competitor
// @Description Share of the global tracked product count, denominator computed once
// @Tags Competitors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} analytics.MarketShareEntry
// @Failure 404 {object} models.ErrorResponse "No competitors found"
// @Router /competitor/partMarche [get]
func (h *CompetitorHandler) PartMarche(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	shares, err := h.analytics.MarketShare(ctx)
	if err != nil {
		if errors.Is(err, analytics.ErrNoCompetitors) {
			return apierrors.NotFound(c, "No competitors found")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.count("part_marche")
	return c.JSON(http.StatusOK, shares)
}

// competitorError maps analytics sentinel errors onto API statuses.
func (h *CompetitorHandler) competitorError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, analytics.ErrCompetitorNotFound):
		return apierrors.NotFound(c, "Competitor not found")
	case errors.Is(err, analytics.ErrNoProducts):
		return apierrors.NotFound(c, "No products found for this competitor")
	case errors.Is(err, analytics.ErrNoValidPrices):
		return apierrors.NoData(c, "No valid prices found for this competitor")
	default:
		return apierrors.DatabaseError(c, err)
	}
}
