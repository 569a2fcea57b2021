package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hector17rock/SeatServe/internal/handler"
	"github.com/hector17rock/SeatServe/internal/repositories"
	"github.com/hector17rock/SeatServe/internal/router"
	"github.com/hector17rock/SeatServe/internal/service"
	"github.com/hector17rock/SeatServe/pkg/envconfig"
	"github.com/hector17rock/SeatServe/pkg/flags"
	"github.com/hector17rock/SeatServe/pkg/logger"
	"github.com/hector17rock/SeatServe/pkg/metrics"
	"github.com/hector17rock/SeatServe/pkg/shutdownsetup"
)

func main() {
	// Parse command-line flags
	flagConfig := flags.Parse()

	if err := flagConfig.Validate(); err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		return
	}

	envErr := envconfig.LoadEnvFile(".env")

	loggerConfig := logger.Config{
		Level:        envconfig.GetLogLevel(),
		Format:       envconfig.GetEnv("LOG_FORMAT", "json"),
		Output:       envconfig.GetEnv("LOG_OUTPUT", "stdout"),
		EnableCaller: envconfig.GetEnv("LOG_ENABLE_CALLER", "true") == "true",
		Environment:  envconfig.GetEnv("ENVIRONMENT", "development"),
	}

	appLogger := logger.New(loggerConfig)

	if envErr != nil {
		appLogger.Warn("Failed to load .env file", "error", envErr)
	} else {
		appLogger.Debug(".env file loaded successfully")
	}

	appLogger.Info("Starting SeatServe",
		"environment", loggerConfig.Environment,
		"log_level", loggerConfig.Level,
		"store", flagConfig.Store)

	// Pick the state store backend
	var (
		store   repositories.Store
		cleanup []func()
	)
	switch flagConfig.Store {
	case flags.StoreFile:
		path := envconfig.GetEnv("STORE_FILE", "seatserve_state.json")
		fileStore, err := repositories.NewFileStore(path, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to open file store", "path", path, "error", err)
		}
		store = fileStore
	case flags.StoreRedis:
		redisURL := envconfig.GetEnv("REDIS_URL", "redis://localhost:6379/0")
		redisStore, err := repositories.NewRedisStore(redisURL, envconfig.GetEnv("REDIS_NAMESPACE", "seatserve"), appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis store", "url", redisURL, "error", err)
		}
		store = redisStore
		cleanup = append(cleanup, func() {
			if err := redisStore.Close(); err != nil {
				appLogger.Error("Failed to close Redis store", "error", err)
			}
		})
	default:
		store = repositories.NewMemoryStore()
	}

	appMetrics := metrics.New()

	// Initialize repositories
	var catalogRepo repositories.CatalogRepositoryInterface
	if menuFile := envconfig.GetEnv("MENU_FILE", ""); menuFile != "" {
		fileCatalog, err := repositories.NewCatalogRepositoryFromFile(menuFile, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to load vendor menus", "path", menuFile, "error", err)
		}
		catalogRepo = fileCatalog
	} else {
		catalogRepo = repositories.NewCatalogRepository(appLogger)
	}
	orderRepo := repositories.NewOrderRepository(store, appLogger)
	sessionRepo := repositories.NewSessionRepository(store, appLogger)

	// Initialize services
	cartService := service.NewCartService(catalogRepo, sessionRepo, appLogger, appMetrics)
	orderService := service.NewOrderService(orderRepo, cartService, sessionRepo, appLogger, appMetrics)
	orderService.SetAutoAdvanceInterval(envconfig.GetDuration("AUTO_ADVANCE_INTERVAL", service.DefaultAutoAdvanceInterval))
	authService := service.NewAuthService(sessionRepo, appLogger)
	authService.SetLoginDelay(envconfig.GetDuration("LOGIN_DELAY", service.DefaultLoginDelay))
	summaryService := service.NewSummaryService(orderRepo, appLogger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	menuHandler := handler.NewMenuHandler(catalogRepo, sessionRepo, appLogger)
	cartHandler := handler.NewCartHandler(cartService, appLogger)
	orderHandler := handler.NewOrderHandler(orderService, summaryService, appLogger)

	mux := router.NewRouter(authHandler, menuHandler, cartHandler, orderHandler, appMetrics)

	httpHandler := appLogger.HTTPMiddleware(appMetrics.Middleware(mux))

	initialPort := flagConfig.Port
	if initialPort == "" {
		initialPort = envconfig.GetEnv("PORT", "8080")
	}
	host := envconfig.GetEnv("HOST", "localhost")

	port := initialPort

	server := &http.Server{
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		server.Addr = host + ":" + port

		go func() {
			appLogger.Info("Starting HTTP server",
				"host", host,
				"port", port,
				"address", server.Addr)

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLogger.Error("Server error", "error", err)
				serverErrors <- err
			}
		}()

		select {
		case err := <-serverErrors:
			if strings.Contains(err.Error(), "address already in use") && i < maxRetries-1 {
				portNum := 8080 + i + 1
				port = fmt.Sprintf("%d", portNum)
				appLogger.Warn("Port already in use, trying alternative port",
					"current_port", server.Addr,
					"next_port", port)
				continue
			} else {
				appLogger.Error("Failed to start server after retries", "error", err)
				return
			}
		case <-time.After(200 * time.Millisecond):
			appLogger.Info("Server started successfully", "port", port)
		}

		break
	}

	cleanup = append(cleanup, orderService.StopAutoAdvance)

	select {
	case err := <-serverErrors:
		appLogger.Error("Could not start server", "error", err)
		return
	default:
		shutdownsetup.SetupGracefulShutdown(server, appLogger, cleanup...)
	}
}
