package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"github.com/gofiber/websocket/v2"

	"github.com/kdeguzman/negosyoplan/internal/pkg/metrics"
)

// SetupRoutes registers all REST, GraphQL, and WebSocket routes.
func SetupRoutes(app *fiber.App, deps *Dependencies) {
	// Prometheus metrics
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Response compression (gzip)
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Request ID
	app.Use(requestid.New())

	// Propagate request ID into slog context
	app.Use(RequestIDLogMiddleware())

	// Access logs (structured HTTP request logging)
	app.Use(AccessLogMiddleware())

	// Rate limiting: 60 requests per minute per IP. Analyses are
	// expensive upstream calls, so the cap is tighter than usual.
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error":   "rate limit exceeded",
				"message": "too many requests, please try again later",
			})
		},
		SkipFailedRequests: false,
	}))

	// Security headers + API version
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("X-API-Version", "1.0.0")
		return c.Next()
	})

	// ETag for conditional caching
	app.Use(ETagMiddleware())

	// Default Cache-Control headers
	app.Use(CachingMiddleware())

	// Health & readiness (no timeout, fast internal checks)
	app.Get("/v1/health", HealthHandler(deps))
	app.Get("/v1/ready", ReadyHandler(deps))

	// REST API v1. Analyses wait on the completion provider, so they get
	// a longer budget than the read endpoints.
	v1 := app.Group("/v1")
	v1.Post("/analyses", timeout.NewWithContext(AnalyzeHandler(deps), 60*time.Second))
	v1.Get("/location/resolve", timeout.NewWithContext(ResolveLocationHandler(deps), 30*time.Second))
	v1.Get("/pois/nearby", timeout.NewWithContext(NearbyPOIsHandler(deps), 15*time.Second))
	v1.Get("/insights/city", timeout.NewWithContext(CityInsightHandler(deps), 15*time.Second))
	v1.Get("/insights/opportunity", timeout.NewWithContext(OpportunityHandler(deps), 15*time.Second))
	v1.Get("/insights/heatmap", timeout.NewWithContext(HeatmapHandler(deps), 15*time.Second))
	v1.Get("/businesses", timeout.NewWithContext(ListBusinessesHandler(deps), 15*time.Second))
	v1.Post("/businesses", timeout.NewWithContext(RegisterBusinessHandler(deps), 15*time.Second))
	v1.Get("/businesses/:id", timeout.NewWithContext(GetBusinessHandler(deps), 15*time.Second))

	// GraphQL
	app.Post("/graphql", GraphQLHandler(deps))

	// API documentation (Swagger UI)
	SetupDocs(app)

	// WebSocket. The relay needs the broker; without it the upgrade is
	// refused here, before the connection is hijacked.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if deps.NATS == nil {
			return errUnavailable(c, "live updates not available")
		}
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(WebSocketHandler(deps.NATS)))
}
