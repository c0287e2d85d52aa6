package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voyagr/internal/api"
	"voyagr/internal/api/handlers"
	"voyagr/internal/currency"
	"voyagr/internal/repository"
	"voyagr/internal/service"
	"voyagr/pkg/auth"
	"voyagr/pkg/config"
	"voyagr/pkg/logger"
	"voyagr/pkg/postgres"

	"go.uber.org/zap"
)

// @title Voyagr API
// @version 1.0
// @description Travel expense tracking and budget analytics service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@voyagr.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Voyagr service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	tripRepo := repository.NewTripRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	insightRepo := repository.NewInsightRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	converter := currency.NewStaticConverter(nil)

	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	tripService := service.NewTripService(tripRepo, appLogger)
	expenseService := service.NewExpenseService(expenseRepo, categoryRepo, tripService, appLogger)
	reportService := service.NewReportService(tripService, expenseRepo, categoryRepo, converter, appLogger)

	llmService, err := service.NewLLMService(&cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	insightService := service.NewInsightService(tripService, expenseRepo, insightRepo, llmService, converter, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	tripHandler := handlers.NewTripHandler(tripService, appLogger)
	expenseHandler := handlers.NewExpenseHandler(expenseService, appLogger)
	reportHandler := handlers.NewReportHandler(reportService, appLogger)
	insightHandler := handlers.NewInsightHandler(insightService, appLogger)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, tripHandler, expenseHandler, reportHandler, insightHandler, categoryHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
