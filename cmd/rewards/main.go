package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ellio-app/rewards-bfa-go/internal/config"
	"github.com/ellio-app/rewards-bfa-go/internal/domain"
	"github.com/ellio-app/rewards-bfa-go/internal/handler"
	"github.com/ellio-app/rewards-bfa-go/internal/infra/cache"
	"github.com/ellio-app/rewards-bfa-go/internal/infra/carddata"
	"github.com/ellio-app/rewards-bfa-go/internal/infra/observability"
	"github.com/ellio-app/rewards-bfa-go/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Strings("cors_allowed_origins", cfg.AllowedOrigins),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "ellio-rewards-bfa")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Catalog ---
	catalog := service.NewCatalog()
	catalog.Initialize()
	logger.Info("card catalog initialized", zap.Int("cards", catalog.Len()))

	// --- Caches ---
	lookupCache := cache.New[*domain.CardData](cfg.CacheTTL)

	// --- Services ---
	rewardsSvc := service.NewRewardsService(catalog, metrics, logger)
	cardDataSvc := service.NewCardDataService(carddata.Default(), lookupCache, metrics, logger)

	// --- Router ---
	router := handler.NewRouter(rewardsSvc, cardDataSvc, metrics, logger, cfg.AllowedOrigins)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
