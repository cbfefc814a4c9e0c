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
	"transactions-client/internal/app/config"
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/app/delivery/http/controllers"
	"transactions-client/internal/app/delivery/http/middlewares"
	"transactions-client/internal/app/delivery/http/routers"
	"transactions-client/internal/app/drivers/database"
	"transactions-client/internal/app/drivers/logger"
	"transactions-client/internal/app/services/backend"
	"transactions-client/internal/app/services/core/dashboard"
	"transactions-client/internal/app/services/shared/cache"
	"transactions-client/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const seedTransactionCount = 48

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	err := config.Validate(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}

	var redisClient *redis.Client
	if internalConfig.Cache.Store == constvars.CacheStoreRedis {
		redisClient, err = database.NewRedisClient(context.Background(), driverConfig)
		if err != nil {
			log.Fatalf("Error while initializing redis: %v", err)
		}
	}

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("port", internalConfig.App.Port),
			zap.String("backend_mode", internalConfig.Backend.Mode),
			zap.String("cache_store", internalConfig.Cache.Store),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error while shutting down dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig

	// Cache
	var requestCache contracts.RequestCache
	switch internalConfig.Cache.Store {
	case constvars.CacheStoreRedis:
		requestCache = cache.NewRedisRequestCache(bootstrap.Redis, internalConfig.Cache.KeyPrefix, bootstrap.Logger)
	default:
		requestCache = cache.NewMemoryRequestCache(bootstrap.Logger)
	}

	// Backend
	employees := backend.SeedEmployees()
	fixtureBackend := backend.NewInMemoryBackend(
		employees,
		backend.SeedTransactions(employees, seedTransactionCount),
		internalConfig.Backend.PageSize,
		time.Duration(internalConfig.Backend.LatencyInMilliseconds)*time.Millisecond,
		bootstrap.Logger,
	)

	api := fixtureBackend
	if internalConfig.Backend.Mode == constvars.BackendModeHTTP {
		api = backend.NewTransactionsAPIClient(
			internalConfig.Backend.BaseUrl,
			time.Duration(internalConfig.App.RequestTimeoutInSeconds)*time.Second,
			internalConfig.Backend.MaxRequestsPerSecond,
			bootstrap.Logger,
		)
	}

	// Dashboard
	bootstrap.Dashboard = dashboard.BuildDashboardUsecase(requestCache, api, bootstrap.Logger)

	// Delivery
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig)
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, bootstrap.Dashboard, internalConfig)
	cacheController := controllers.NewCacheController(bootstrap.Logger, bootstrap.Dashboard)
	backendController := controllers.NewBackendController(bootstrap.Logger, fixtureBackend)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, dashboardController, cacheController, backendController)
}
