package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	assistantapp "github.com/synergytrade/backend/internal/application/assistant"
	"github.com/synergytrade/backend/internal/application/docproc"
	financeapp "github.com/synergytrade/backend/internal/application/finance"
	inventoryapp "github.com/synergytrade/backend/internal/application/inventory"
	planningapp "github.com/synergytrade/backend/internal/application/planning"
	postingapp "github.com/synergytrade/backend/internal/application/posting"
	reportapp "github.com/synergytrade/backend/internal/application/report"
	"github.com/synergytrade/backend/internal/infrastructure/ai"
	"github.com/synergytrade/backend/internal/infrastructure/config"
	"github.com/synergytrade/backend/internal/infrastructure/logger"
	"github.com/synergytrade/backend/internal/infrastructure/persistence"
	"github.com/synergytrade/backend/internal/infrastructure/printing"
	"github.com/synergytrade/backend/internal/infrastructure/storage"
	"github.com/synergytrade/backend/internal/interfaces/http/handler"
	"github.com/synergytrade/backend/internal/interfaces/http/middleware"
	"github.com/synergytrade/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	zapLogger, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync(zapLogger) }()

	zapLogger.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.NewGormLogger(zapLogger, gormlogger.Warn))
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		zapLogger.Fatal("failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	if cfg.Seed.Enabled {
		if err := persistence.Seed(ctx, db.DB, zapLogger); err != nil {
			zapLogger.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	// Repositories and the transaction scope used by all posting services.
	productRepo := persistence.NewGormProductRepository(db.DB)
	salesRepo := persistence.NewGormSalesOrderRepository(db.DB)
	poRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	reportRepo := persistence.NewGormReceivingReportRepository(db.DB)
	journalRepo := persistence.NewGormJournalEntryRepository(db.DB)
	scope := persistence.NewGormTransactionScope(db.DB)

	// AI boundary: without an API key every AI-backed feature reports
	// itself as disabled instead of degrading silently.
	var (
		extractor  docproc.DocumentExtractor
		auditor    postingapp.TransactionAuditor
		forecaster planningapp.DemandForecaster
		answerer   assistantapp.Assistant
	)
	if cfg.AIEnabled() {
		client, err := ai.NewClient(&ai.Config{
			APIKey:  cfg.AI.APIKey,
			Model:   cfg.AI.Model,
			BaseURL: cfg.AI.BaseURL,
			Timeout: cfg.AI.Timeout,
		})
		if err != nil {
			zapLogger.Fatal("failed to create AI client", zap.Error(err))
		}
		extractor = ai.NewExtractor(client)
		auditor = ai.NewAuditor(client)
		forecaster = ai.NewForecaster(client)
		answerer = ai.NewAssistantAdapter(client)
		zapLogger.Info("AI features enabled", zap.String("model", cfg.AI.Model))
	} else {
		disabled := ai.NewDisabled()
		extractor = disabled
		auditor = disabled
		forecaster = disabled
		answerer = disabled
		zapLogger.Warn("no AI API key configured, AI features disabled")
	}

	var archiver docproc.DocumentArchiver
	if cfg.Storage.Provider == "s3" {
		s3Archive, err := storage.NewS3DocumentArchive(&cfg.Storage, storage.WithLogger(zapLogger))
		if err != nil {
			zapLogger.Fatal("failed to create document archive", zap.Error(err))
		}
		archiver = s3Archive
	} else {
		archiver = storage.NewMemoryDocumentArchive()
	}

	docService := docproc.NewService(extractor, archiver, productRepo, poRepo, reportRepo, zapLogger)
	receiptService := postingapp.NewReceiptService(scope, zapLogger)
	salesService := postingapp.NewSalesService(scope, auditor, zapLogger)
	inventoryService := inventoryapp.NewService(productRepo)
	financeService := financeapp.NewService(journalRepo)
	planningService := planningapp.NewService(forecaster, productRepo, salesRepo, zapLogger)
	assistantService := assistantapp.NewService(answerer, productRepo, salesRepo, journalRepo, zapLogger)
	reportService := reportapp.NewService(productRepo, salesRepo, journalRepo)
	printer := printing.NewReceiptNotePrinter()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		zapLogger.Fatal("failed to set trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(zapLogger))
	engine.Use(logger.Recovery(zapLogger))
	engine.Use(middleware.CORSWithOrigins(cfg.HTTP.CORSAllowOrigins))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewHealthHandler(db, version)).
		Register(handler.NewDashboardHandler(reportService)).
		Register(handler.NewInventoryHandler(inventoryService)).
		Register(handler.NewSalesHandler(salesService)).
		Register(handler.NewPurchasingHandler(docService, receiptService, printer)).
		Register(handler.NewFinanceHandler(financeService, zapLogger)).
		Register(handler.NewPlanningHandler(planningService, zapLogger)).
		Register(handler.NewAssistantHandler(assistantService, zapLogger))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		zapLogger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("forced shutdown", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
