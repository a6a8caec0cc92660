package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	apierrors "github.com/pricewatch/pricewatch/pkg/api/errors"
	"github.com/pricewatch/pricewatch/pkg/insights"
	"github.com/pricewatch/pricewatch/pkg/metrics"
)

// insightTimeout is looser than the analytics timeout since a language
// model round trip is involved.
const insightTimeout = 45 * time.Second

// InsightHandler handles AI-generated product insight endpoints
type InsightHandler struct {
	insights *insights.Service
	metrics  *metrics.Metrics
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService *insights.Service, m *metrics.Metrics) *InsightHandler {
	return &InsightHandler{
		insights: insightService,
		metrics:  m,
	}
}

func (h *InsightHandler) observe(status string) {
	if h.metrics != nil {
		h.metrics.InsightRequests.WithLabelValues(status).Inc()
	}
}

// ProductInsights godoc
// @Summary AI analysis of a product's price history
// @Description Structured insights derived from the full recorded history of the product
// @Tags Insights
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} insights.Result
// @Failure 400 {object} models.ErrorResponse "Invalid product ID or not enough history"
// @Failure 404 {object} models.ErrorResponse "Product not found"
// @Failure 502 {object} models.ErrorResponse "Analysis provider unavailable"
// @Router /product/{id}/insights [get]
func (h *InsightHandler) ProductInsights(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apierrors.BadRequest(c, "Invalid product ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), insightTimeout)
	defer cancel()

	result, err := h.insights.ProductInsights(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, insights.ErrProductNotFound):
			h.observe("not_found")
			return apierrors.NotFound(c, "Product not found")
		case errors.Is(err, insights.ErrInsufficientHistory):
			h.observe("insufficient_history")
			return apierrors.BadRequest(c, "Not enough price history for analysis, need at least 2 data points")
		case errors.Is(err, insights.ErrUpstream):
			h.observe("upstream_error")
			return apierrors.UpstreamFailure(c, err)
		default:
			h.observe("error")
			return apierrors.DatabaseError(c, err)
		}
	}

	h.observe("success")
	return c.JSON(http.StatusOK, result)
}
