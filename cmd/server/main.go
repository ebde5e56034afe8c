package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pricingapp "github.com/meatrics/backend/internal/application/pricing"
	domainpricing "github.com/meatrics/backend/internal/domain/pricing"
	"github.com/meatrics/backend/internal/infrastructure/cache"
	"github.com/meatrics/backend/internal/infrastructure/config"
	"github.com/meatrics/backend/internal/infrastructure/event"
	"github.com/meatrics/backend/internal/infrastructure/logger"
	"github.com/meatrics/backend/internal/infrastructure/persistence"
	"github.com/meatrics/backend/internal/infrastructure/telemetry"
	"github.com/meatrics/backend/internal/interfaces/http/handler"
	"github.com/meatrics/backend/internal/interfaces/http/middleware"
	"github.com/meatrics/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/meatrics/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Meatrics Pricing API
//	@version		1.0
//	@description	Layered pricing rule engine for meat distribution
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	https://github.com/meatrics/backend
//	@contact.email	support@meatrics.example.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Meatrics Pricing Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Bridge zap logs to the OTEL collector when telemetry is enabled
	loggerProvider, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := loggerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down logger provider", zap.Error(err))
		}
	}()
	if loggerProvider.IsEnabled() {
		otelCore := telemetry.NewZapOTELCore(telemetry.ZapBridgeConfig{
			ServiceName:    cfg.Telemetry.ServiceName,
			LoggerProvider: loggerProvider,
			Level:          zapcore.InfoLevel,
		})
		log = telemetry.NewBridgedLogger(log.Core(), otelCore,
			zap.AddCaller(),
			zap.AddStacktrace(zapcore.ErrorLevel),
		)
	}

	// Initialize OpenTelemetry tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Initialize OpenTelemetry metrics
	meterProvider, err := telemetry.NewMeterProvider(context.Background(), telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := meterProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()

	// Initialize continuous profiling
	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:             cfg.Telemetry.ProfilingEnabled,
		ServerAddress:       cfg.Telemetry.ProfilingEndpoint,
		ApplicationName:     cfg.App.Name,
		ProfileCPU:          true,
		ProfileAllocObjects: true,
		ProfileAllocSpace:   true,
		ProfileInuseObjects: true,
		ProfileInuseSpace:   true,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}()

	// Link trace spans to profiles when both are enabled
	if cfg.Telemetry.ProfilingEnabled && tracerProvider.IsEnabled() {
		if err := tracerProvider.EnableSpanProfiles(); err != nil {
			log.Warn("Failed to enable span profiles", zap.Error(err))
		}
	}

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Register database query tracing
	if cfg.Telemetry.DBTraceEnabled {
		dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
			Enabled:         true,
			LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
			SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		}, log)
		if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	// Register database query and pool metrics
	dbMetrics, err := telemetry.RegisterDBMetrics(db.DB, meterProvider, telemetry.DefaultDBMetricsConfig(), log)
	if err != nil {
		log.Warn("Failed to register database metrics", zap.Error(err))
	} else if dbMetrics != nil {
		dbMetrics.StartPoolStatsCollection(context.Background())
		defer dbMetrics.Stop()
	}

	// Initialize repositories
	ruleRepo := persistence.NewGormRuleRepository(db.DB)
	lineItemRepo := persistence.NewGormLineItemRepository(db.DB)
	sessionRepo := persistence.NewGormSessionRepository(db.DB)

	// Initialize event bus for rule change notifications
	eventBus := event.NewInMemoryEventBus(log)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize quote cache (redis with in-memory fallback)
	cacheFactory := cache.NewQuoteCacheFactory(cfg.Pricing, cfg.Redis, cache.WithLogger(log))
	quoteCache, err := cacheFactory.CreateCache()
	if err != nil {
		log.Fatal("Failed to create quote cache", zap.Error(err))
	}

	// Invalidate cached quotes whenever the rule set changes
	invalidator := pricingapp.NewQuoteCacheInvalidator(quoteCache, log)
	eventBus.Subscribe(invalidator)

	// Initialize pricing engine and application services
	calculator := domainpricing.NewCalculator(log)
	ruleService := pricingapp.NewRuleService(ruleRepo, lineItemRepo, calculator, eventBus, log)
	calculationService := pricingapp.NewCalculationService(ruleRepo, lineItemRepo, sessionRepo, calculator, quoteCache, log)
	lineItemService := pricingapp.NewLineItemService(lineItemRepo, log)

	// Seed the system fallback rule so a fresh installation prices every item
	if cfg.Pricing.EnsureDefaultRule {
		if err := ruleService.EnsureDefaultRule(context.Background()); err != nil {
			log.Fatal("Failed to ensure default pricing rule", zap.Error(err))
		}
	}

	// Business metrics for the pricing engine
	if meterProvider.IsEnabled() {
		businessMetrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
			Meter:        meterProvider.Meter("meatrics-backend"),
			Logger:       log,
			RuleProvider: ruleRepo,
		})
		if err != nil {
			log.Fatal("Failed to initialize business metrics", zap.Error(err))
		}
		calculationService.SetBusinessMetrics(businessMetrics)
		businessMetrics.StartPeriodicCollection(context.Background(), 5*time.Minute)
		defer businessMetrics.Stop()
	}

	// Initialize HTTP handlers
	pricingRuleHandler := handler.NewPricingRuleHandler(ruleService)
	calculationHandler := handler.NewCalculationHandler(calculationService)
	lineItemHandler := handler.NewLineItemHandler(lineItemService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Tracing/Metrics/Profiling - Observability (if enabled)
	// 5. Security - Add security headers
	// 6. CORS - Handle cross-origin requests
	// 7. BodyLimit - Limit request body size
	// 8. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
			MeterProvider: meterProvider,
			ServiceName:   cfg.Telemetry.ServiceName,
			Enabled:       true,
		}))
	}
	if cfg.Telemetry.ProfilingEnabled {
		engine.Use(middleware.ProfilingWithConfig(middleware.ProfilingConfig{
			Enabled:   true,
			SkipPaths: []string{"/health"},
		}))
	}

	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Swagger documentation endpoint (IP-restricted)
	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any",
			middleware.SwaggerProtection(middleware.SwaggerConfig{
				Enabled:    cfg.Swagger.Enabled,
				AllowedIPs: cfg.Swagger.AllowedIPs,
			}),
			ginSwagger.WrapHandler(swaggerFiles.Handler),
		)
	}

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Pricing domain (rules, calculations)
	pricingRoutes := router.NewDomainGroup("pricing", "/pricing")
	pricingRoutes.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pricing service ready"})
	})

	// Rule routes
	pricingRoutes.POST("/rules", pricingRuleHandler.Create)
	pricingRoutes.GET("/rules", pricingRuleHandler.List)
	pricingRoutes.POST("/rules/preview", pricingRuleHandler.Preview)
	pricingRoutes.GET("/rules/default/exists", pricingRuleHandler.DefaultExists)
	pricingRoutes.GET("/rules/:id", pricingRuleHandler.GetByID)
	pricingRoutes.PUT("/rules/:id", pricingRuleHandler.Update)
	pricingRoutes.DELETE("/rules/:id", pricingRuleHandler.Delete)

	// Calculation routes
	pricingRoutes.POST("/calculations", calculationHandler.Calculate)
	pricingRoutes.GET("/calculations/sessions", calculationHandler.ListSessions)
	pricingRoutes.GET("/calculations/sessions/:id/snapshots", calculationHandler.GetSessionSnapshots)

	// Line item domain (cost inputs for the pricing engine)
	lineItemRoutes := router.NewDomainGroup("line-items", "/line-items")
	lineItemRoutes.GET("", lineItemHandler.List)
	lineItemRoutes.POST("/batch", lineItemHandler.UpsertBatch)
	lineItemRoutes.GET("/:id", lineItemHandler.GetByID)

	// System routes with swagger-documented handlers
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	// Register all domain groups
	r.Register(pricingRoutes).
		Register(lineItemRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
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

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
