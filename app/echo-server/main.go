package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpmetrics "eduintel/app/echo-server/metrics"
	"eduintel/app/echo-server/router"
	"eduintel/business/analytics"
	"eduintel/business/catalog"
	"eduintel/business/ingest"
	"eduintel/business/recommendation"
	"eduintel/business/review"
	"eduintel/business/student"
	"eduintel/domain"
	"eduintel/internal/middleware"
	mongoRepo "eduintel/internal/repository/mongo"
	psqlRepo "eduintel/internal/repository/postgres"
	redisRepo "eduintel/internal/repository/redis"
	"eduintel/internal/rest"
	"eduintel/pkg/config"
	"eduintel/pkg/database"
	mongodb "eduintel/pkg/database/mongo"
	redisdb "eduintel/pkg/database/redis"
	"eduintel/pkg/logger"
	"eduintel/pkg/metrics"
	"eduintel/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting EDUINTEL API", "version", cfg.App.Version, "env", cfg.App.Environment)

	utils.SetJWTSecret(cfg.JWT.SecretKey)
	metrics.Init()
	httpmetrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected successfully")

	err = database.Migrate(db,
		&domain.Student{},
		&domain.University{},
		&domain.Recommendation{},
		&domain.CounselorReview{},
		&domain.CatalogIngestRun{},
	)
	if err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	// Catalog cache is optional; without redis every request reads postgres.
	var catalogCache catalog.Cache
	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, catalog cache disabled", "error", err)
	} else {
		catalogCache = redisRepo.NewCatalogCache(redisClient, cfg.Redis.CatalogTTL)
	}

	// Mongo archive is optional as well.
	var archive *mongoRepo.ArchiveRepository
	mongoClient, mongoDatabase, err := mongodb.Connect(cfg)
	switch {
	case err != nil:
		logger.Warn("MongoDB unavailable, archive disabled", "error", err)
	case mongoDatabase != nil:
		archive = mongoRepo.NewArchiveRepository(mongoDatabase)
		logger.Info("MongoDB archive enabled", "database", cfg.Mongo.Database)
	}

	// Init repo
	studentRepo := psqlRepo.NewStudentRepository(db)
	universityRepo := psqlRepo.NewUniversityRepository(db)
	recommendationRepo := psqlRepo.NewRecommendationRepository(db)
	reviewRepo := psqlRepo.NewReviewRepository(db)
	analyticsRepo := psqlRepo.NewAnalyticsRepository(db)
	ingestRunRepo := psqlRepo.NewIngestRunRepository(db)

	// Init service
	catalogService := catalog.NewService(universityRepo, catalogCache)

	gateways := recommendation.FanOut{recommendationRepo}
	var rawArchive ingest.RawArchive
	if archive != nil {
		gateways = append(gateways, archive)
		rawArchive = archive
	}
	recommendationService := recommendation.NewService(studentRepo, catalogService, gateways)
	reviewService := review.NewService(studentRepo, reviewRepo)
	analyticsService := analytics.NewService(analyticsRepo)
	studentService := student.NewService(studentRepo, recommendationRepo)

	var source ingest.Source
	if cfg.Ingest.SourceURL != "" {
		source = ingest.NewHTTPSource(ingest.HTTPSourceConfig{
			URL:               cfg.Ingest.SourceURL,
			RequestsPerSecond: cfg.Ingest.RequestsPerSecond,
			FailureThreshold:  cfg.Ingest.FailureThreshold,
			BreakerTimeout:    cfg.Ingest.BreakerTimeout,
			FetchTimeout:      cfg.Ingest.FetchTimeout,
		}, nil)
	}
	ingestService := ingest.NewService(source, catalogService, ingestRunRepo, rawArchive)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if added, err := catalogService.Initialize(seedCtx); err != nil {
		logger.Warn("Catalog seed skipped", "error", err)
	} else if added > 0 {
		logger.Info("Catalog seeded", "universities", added)
	}
	seedCancel()

	// Init handler
	timeout := cfg.Server.RequestTimeout
	rootHandler := rest.NewRootHandler(cfg.App.Name, cfg.App.Version)
	recommendationHandler := rest.NewRecommendationHandler(recommendationService, timeout)
	reviewHandler := rest.NewReviewHandler(reviewService, timeout)
	analyticsHandler := rest.NewAnalyticsHandler(analyticsService, timeout)
	studentHandler := rest.NewStudentHandler(studentService, timeout)
	universityHandler := rest.NewUniversityHandler(catalogService, timeout)
	ingestHandler := rest.NewIngestHandler(ingestService, cfg.Ingest.FetchTimeout+timeout)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.Trace())
	e.Use(httpmetrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.HeaderRequestID},
		AllowCredentials: true,
	}))

	// Setup routes
	router.SetupRootRoutes(e, rootHandler)
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recommendationHandler)
	router.SetupReviewRoutes(api, reviewHandler)
	router.SetupAnalyticsRoutes(api, analyticsHandler)
	router.SetupStudentRoutes(api, studentHandler)
	router.SetupUniversityRoutes(api, universityHandler)
	router.SetupIngestRoutes(api, ingestHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if redisClient != nil {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Redis close error", "error", err)
		}
	}
	if mongoClient != nil {
		if err := mongodb.Disconnect(mongoClient); err != nil {
			logger.Error("MongoDB disconnect error", "error", err)
		}
	}
	if err := database.ClosePostgres(db); err != nil {
		logger.Error("Database close error", "error", err)
	}

	logger.Info("Server stopped")
}
