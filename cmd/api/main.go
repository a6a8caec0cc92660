package main

// @title PriceWatch API
// @version 1.0
// @description Competitor price monitoring and analysis API for e-commerce dashboards.

// @contact.name API Support
// @contact.email support@pricewatch.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pricewatch/pricewatch/config"
	"github.com/pricewatch/pricewatch/pkg/ai/llm"
	"github.com/pricewatch/pricewatch/pkg/analytics"
	"github.com/pricewatch/pricewatch/pkg/api/errors"
	"github.com/pricewatch/pricewatch/pkg/api/handlers"
	custommw "github.com/pricewatch/pricewatch/pkg/api/middleware"
	"github.com/pricewatch/pricewatch/pkg/auth"
	"github.com/pricewatch/pricewatch/pkg/cache"
	"github.com/pricewatch/pricewatch/pkg/database"
	"github.com/pricewatch/pricewatch/pkg/insights"
	"github.com/pricewatch/pricewatch/pkg/jobs"
	"github.com/pricewatch/pricewatch/pkg/logger"
	"github.com/pricewatch/pricewatch/pkg/metrics"
	custommiddleware "github.com/pricewatch/pricewatch/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	errors.Verbose = cfg.VerboseErrors
	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2) // 5 req/min for login and register

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "PriceWatch API",
			"version":     "1.0.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(ctx).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Initialize JWT blacklist
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Initialize services
	analyticsService := analytics.NewService(db.Ent)

	llmClient := llm.NewOpenAIClient(llm.Config{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.OpenAIModel,
		Temperature: float32(cfg.OpenAITemperature),
	}, nil)
	insightService := insights.NewService(
		db.Ent,
		llmClient,
		time.Duration(cfg.InsightTimeoutSec)*time.Second,
		appLogger,
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, tokenBlacklist, prometheusMetrics)
	competitorHandler := handlers.NewCompetitorHandler(analyticsService, prometheusMetrics)
	productHandler := handlers.NewProductHandler(analyticsService, prometheusMetrics)
	insightHandler := handlers.NewInsightHandler(insightService, prometheusMetrics)

	// Auth routes (public, tighter rate limit)
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register, authRateLimiter.RateLimitMiddleware())
		authGroup.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		authGroup.GET("/me", authHandler.Me, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent))
		authGroup.POST("/logout", authHandler.Logout, custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent))
	}

	// Dashboard routes require a valid token and the analyst (or admin) role
	jwtGuard := custommw.JWTMiddlewareWithBlacklist(cfg.JWTSecret, tokenBlacklist, db.Ent)
	analystGuard := custommiddleware.RequireAnalyst(db.Ent)

	competitorGroup := e.Group("/competitor", jwtGuard, analystGuard)
	{
		competitorGroup.GET("/competitors", competitorHandler.ListCompetitors)
		competitorGroup.GET("/countCompetitors", competitorHandler.CountCompetitors)
		competitorGroup.GET("/competitor/:id", competitorHandler.GetCompetitor)
		competitorGroup.GET("/competitorProducts/:id", competitorHandler.CompetitorProducts)
		competitorGroup.GET("/prixMoyenCategory/:id", competitorHandler.PrixMoyenCategory)
		competitorGroup.GET("/prixMoyenSubCategory/:id", competitorHandler.PrixMoyenSubCategory)
		competitorGroup.GET("/repartitionCategory/:id", competitorHandler.RepartitionCategory)
		competitorGroup.GET("/repartitionSubCategory/:id", competitorHandler.RepartitionSubCategory)
		competitorGroup.GET("/variationPrix/:id", competitorHandler.VariationPrix)
		competitorGroup.GET("/partMarche", competitorHandler.PartMarche)
	}

	productGroup := e.Group("/product", jwtGuard, analystGuard)
	{
		productGroup.GET("/products", productHandler.ListProducts)
		productGroup.GET("/competitorProducts/:id", productHandler.CompetitorProducts)
		productGroup.GET("/productPricePrediction/:id", productHandler.ProductPricePrediction)
		productGroup.GET("/countPromotions", productHandler.CountPromotions)
		productGroup.GET("/getRecentPriceChanges", productHandler.RecentPriceChanges)
		productGroup.GET("/getRecentPriceChanges/:id", productHandler.RecentPriceChangesByCompetitor)
		productGroup.GET("/getProductPriceHistory/:id", productHandler.ProductPriceHistory)
		productGroup.GET("/filteredProducts", productHandler.FilteredProducts)
		productGroup.GET("/filteredProducts/:id", productHandler.FilteredProducts)
		productGroup.GET("/:id/insights", insightHandler.ProductInsights)
	}

	// API Documentation (Swagger UI)
	e.GET("/docs", func(c echo.Context) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>PriceWatch API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-standalone-preset.js"></script>
    <script>
        window.onload = function() {
            SwaggerUIBundle({
                url: '/docs/swagger.yaml',
                dom_id: '#swagger-ui',
                presets: [
                    SwaggerUIBundle.presets.apis,
                    SwaggerUIStandalonePreset
                ],
                layout: "StandaloneLayout",
                deepLinking: true,
                defaultModelsExpandDepth: -1
            });
        };
    </script>
</body>
</html>`
		return c.HTML(http.StatusOK, html)
	})

	// Serve swagger.yaml file
	e.GET("/docs/swagger.yaml", func(c echo.Context) error {
		return c.File("./docs/swagger.yaml")
	})

	// Price freshness cron job
	freshnessMonitor := jobs.NewFreshnessMonitor(db.Ent, analyticsService, prometheusMetrics, nil)
	cronManager := jobs.NewCronManager(freshnessMonitor, nil)
	staleAfter := time.Duration(cfg.StaleAfterHours) * time.Hour
	if err := cronManager.SetupJobs(cfg.FreshnessCronSpec, staleAfter); err != nil {
		log.Fatalf("❌ Failed to set up cron jobs: %v", err)
	}
	cronManager.Start()

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 PriceWatch API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Freshness check: %s (stale after %v)", cfg.FreshnessCronSpec, staleAfter)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
