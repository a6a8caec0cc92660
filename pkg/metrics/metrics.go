package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	AnalyticsQueries   *prometheus.CounterVec
	InsightRequests    *prometheus.CounterVec
	StaleProducts      prometheus.Gauge
	TrackedProducts    prometheus.Gauge
	TrackedCompetitors prometheus.Gauge

	// Auth metrics
	LoginAttempts *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		AnalyticsQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_queries_total",
				Help: "Total number of analytics computations served",
			},
			[]string{"operation"}, // market_share, price_variation, ...
		),
		InsightRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_requests_total",
				Help: "Total number of AI insight generations",
			},
			[]string{"status"}, // success, upstream_failure, rejected
		),
		StaleProducts: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "stale_products",
			Help: "Products whose last scrape exceeds the freshness window",
		}),
		TrackedProducts: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "tracked_products",
			Help: "Total number of tracked products",
		}),
		TrackedCompetitors: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "tracked_competitors",
			Help: "Total number of tracked competitors",
		}),

		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),
	}
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /competitor/competitor/:id)

			// Call next handler
			err := next(c)

			// Record metrics
			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}
