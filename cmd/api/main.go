package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/kdeguzman/negosyoplan/internal/adapters/catalog"
	"github.com/kdeguzman/negosyoplan/internal/adapters/geolocate"
	"github.com/kdeguzman/negosyoplan/internal/adapters/http"
	"github.com/kdeguzman/negosyoplan/internal/adapters/llm"
	natsadapter "github.com/kdeguzman/negosyoplan/internal/adapters/nats"
	"github.com/kdeguzman/negosyoplan/internal/adapters/postgres"
	"github.com/kdeguzman/negosyoplan/internal/adapters/valkey"
	"github.com/kdeguzman/negosyoplan/internal/core/domain"
	"github.com/kdeguzman/negosyoplan/internal/core/ports"
	"github.com/kdeguzman/negosyoplan/internal/core/usecases"
	"github.com/kdeguzman/negosyoplan/internal/pkg/config"
	"github.com/kdeguzman/negosyoplan/internal/pkg/logging"
	"github.com/kdeguzman/negosyoplan/internal/pkg/metrics"
	"github.com/kdeguzman/negosyoplan/internal/pkg/telemetry"
)

func main() {
	// Local dev convenience; absent in containers
	_ = godotenv.Load()

	cfg, err := config.Load("negosyoplan-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logging.Setup("negosyoplan-api", logLevel, "json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.TempoAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown(ctx)
		}
	}

	// Database (business directory). The siting pipeline works without
	// it, so failure only disables the directory endpoints.
	db, err := postgres.New(ctx, cfg.Database.DSN())
	if err != nil {
		slog.Warn("database unavailable, directory endpoints disabled", "error", err)
		db = nil
	} else {
		defer db.Close()

		// Export pool gauges while the process runs
		go func() {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					metrics.UpdateDBPoolMetrics(db.Pool.Stat())
				}
			}
		}()
	}

	// Cache
	cache, err := valkey.New(cfg.Valkey.Addr)
	if err != nil {
		slog.Warn("valkey unavailable", "error", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	// NATS
	publisher, err := natsadapter.NewPublisher(cfg.NATS.URL)
	if err != nil {
		slog.Warn("nats unavailable", "error", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Raw NATS connection for WebSocket relay
	natsConn, err := natsadapter.RawConn(cfg.NATS.URL)
	if err != nil {
		slog.Warn("nats ws conn unavailable", "error", err)
	}

	// Knowledge base and location adapters
	kb := catalog.New()

	var ipLocator ports.IPLocator = geolocate.NewIPAPIClient(cfg.Location.IPAPIURL, nil)
	if cache != nil {
		ipLocator = geolocate.NewCachedIPLocator(ipLocator, cache)
	}

	locOpts := []usecases.LocationServiceOption{
		usecases.WithIPLocator(ipLocator),
		usecases.WithFallbackLocation(
			domain.GeoPoint{Lat: cfg.Location.FallbackLat, Lon: cfg.Location.FallbackLon},
			cfg.Location.FallbackAddress,
		),
	}
	if cfg.Location.GeocodeAPIKey != "" {
		locOpts = append(locOpts, usecases.WithReverseGeocoder(
			geolocate.NewGoogleGeocoder("", cfg.Location.GeocodeAPIKey, nil)))
	}
	if cfg.HasStaticPosition() {
		static, err := geolocate.NewStaticProvider(
			cfg.Location.StaticLat, cfg.Location.StaticLon, cfg.Location.StaticAccuracyM)
		if err != nil {
			log.Fatalf("static position: %v", err)
		}
		locOpts = append(locOpts, usecases.WithPositionProvider(static))
	}
	locationSvc := usecases.NewLocationService(locOpts...)

	// Chat completion client with remote parameter overrides
	modelCfg := llm.FetchModelConfig(ctx, nil, cfg.LLM.ConfigURL)
	completer := llm.New(cfg.LLM.BaseURL, cfg.LLM.APIKey, modelCfg)

	// Use cases
	composer := usecases.NewPromptComposer(locationSvc, kb, kb)

	// A typed nil publisher would defeat the service's nil check, so
	// only pass it when the connection actually came up.
	var analysisSvc *usecases.AnalysisService
	if publisher != nil {
		analysisSvc = usecases.NewAnalysisService(composer, completer, publisher)
	} else {
		analysisSvc = usecases.NewAnalysisService(composer, completer, nil)
	}

	var poiSvc *usecases.POIService
	if cache != nil {
		poiSvc = usecases.NewPOIService(kb, cache)
	} else {
		poiSvc = usecases.NewPOIService(kb, nil)
	}
	insightSvc := usecases.NewInsightService(kb)

	var businessSvc *usecases.BusinessService
	if db != nil {
		businessSvc = usecases.NewBusinessService(postgres.NewBusinessRepo(db))
	}

	deps := &http.Dependencies{
		Analyses:   analysisSvc,
		Locations:  locationSvc,
		POIs:       poiSvc,
		Insights:   insightSvc,
		Businesses: businessSvc,
		NATS:       natsConn,
		DB:         db,
		Cache:      cache,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    1024 * 1024, // 1 MB max request body
		AppName:      "NegosyoPlan API",
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000, http://localhost:5173, https://*.negosyoplan.ph",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	// Give in-flight requests up to 10s to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}
