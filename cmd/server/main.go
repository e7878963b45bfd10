package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/cruisehub/backend/internal/application/catalog"
	pricingapp "github.com/cruisehub/backend/internal/application/pricing"
	"github.com/cruisehub/backend/internal/domain/pricing"
	"github.com/cruisehub/backend/internal/infrastructure/cache"
	"github.com/cruisehub/backend/internal/infrastructure/config"
	"github.com/cruisehub/backend/internal/infrastructure/logger"
	"github.com/cruisehub/backend/internal/infrastructure/persistence"
	"github.com/cruisehub/backend/internal/infrastructure/scheduler"
	"github.com/cruisehub/backend/internal/infrastructure/strategy/demand"
	"github.com/cruisehub/backend/internal/infrastructure/telemetry"
	"github.com/cruisehub/backend/internal/interfaces/http/handler"
	"github.com/cruisehub/backend/internal/interfaces/http/middleware"
	"github.com/cruisehub/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting CruiseHub Pricing Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// OpenTelemetry tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Repositories
	cruiseRepo := persistence.NewGormCruiseRepository(db.DB)
	inventoryRepo := persistence.NewGormCabinInventoryRepository(db.DB)
	ruleRepo := persistence.NewGormPricingRuleRepository(db.DB)
	promoRepo := persistence.NewGormPromotionCodeRepository(db.DB)
	usageRepo := persistence.NewGormPromotionUsageRepository(db.DB)
	historyRepo := persistence.NewGormPriceHistoryRepository(db.DB)

	// Pricing engine wiring: providers adapt the repositories to the
	// engine's ports, the scorer turns booking data into a demand signal
	demandScorer := demand.NewCompositeDemandScorer(demand.DefaultWeights(), demand.Bands{
		High:   cfg.Pricing.DemandHighBand,
		Medium: cfg.Pricing.DemandMediumBand,
	}, cfg.Pricing.DemandVelocityWindow)
	catalogProvider := pricingapp.NewCatalogProvider(cruiseRepo)
	inventoryProvider := pricingapp.NewInventoryProvider(inventoryRepo)
	demandProvider := pricingapp.NewDemandProvider(cruiseRepo, inventoryRepo, demandScorer)

	promotionValidator := pricing.NewPromotionValidator(promoRepo, usageRepo)
	engine := pricing.NewEngine(
		catalogProvider,
		ruleRepo,
		pricing.NewInventoryAssessor(inventoryProvider),
		pricing.NewDemandAssessor(demandProvider),
		promotionValidator,
	)

	// Price snapshot store (Redis with in-memory fallback)
	snapshotStore := cache.NewSnapshotStore(cfg.Redis, log)

	// Application services
	priceService := pricingapp.NewPriceService(
		engine,
		cruiseRepo,
		inventoryRepo,
		historyRepo,
		snapshotStore,
		cfg.Pricing.SnapshotTTL,
		log,
	)
	ruleService := pricingapp.NewRuleService(ruleRepo)
	promotionService := pricingapp.NewPromotionService(promoRepo, usageRepo, promotionValidator)
	cruiseService := catalogapp.NewCruiseService(cruiseRepo)
	inventoryService := catalogapp.NewInventoryService(cruiseRepo, inventoryRepo)

	// Recalculation scheduler. The handler also uses it for manual
	// sweeps, so it is created even when the periodic loop is disabled.
	recalcScheduler := scheduler.NewPriceRecalculationScheduler(scheduler.Config{
		Interval:   cfg.Scheduler.Interval,
		JobTimeout: cfg.Scheduler.JobTimeout,
	}, priceService, log)
	if cfg.Scheduler.Enabled {
		if err := recalcScheduler.Start(context.Background()); err != nil {
			log.Fatal("Failed to start price recalculation scheduler", zap.Error(err))
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := recalcScheduler.Stop(stopCtx); err != nil {
				log.Error("Error stopping price recalculation scheduler", zap.Error(err))
			}
		}()
	}

	// HTTP handlers
	pricingHandler := handler.NewPricingHandler(priceService, recalcScheduler)
	ruleHandler := handler.NewPricingRuleHandler(ruleService)
	promotionHandler := handler.NewPromotionHandler(promotionService)
	cruiseHandler := handler.NewCruiseHandler(cruiseService, inventoryService)
	systemHandler := handler.NewSystemHandler(db, snapshotStore)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	ginEngine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := ginEngine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	ginEngine.Use(middleware.RequestID())
	ginEngine.Use(logger.Recovery(log))
	ginEngine.Use(logger.GinMiddleware(log))
	ginEngine.Use(middleware.Tracing(tracerProvider))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	ginEngine.Use(middleware.CORS(corsConfig))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		ginEngine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health also lives outside API versioning for load balancer probes
	ginEngine.GET("/health", systemHandler.Health)

	r := router.NewRouter(ginEngine, router.WithAPIVersion("v1"))
	r.Register(systemHandler).
		Register(cruiseHandler).
		Register(pricingHandler).
		Register(ruleHandler).
		Register(promotionHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        ginEngine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
