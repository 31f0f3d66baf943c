package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/fbasas/bball-playback/internal/adapter/api"
	"github.com/fbasas/bball-playback/internal/adapter/api/middleware"
	"github.com/fbasas/bball-playback/internal/adapter/metrics"
	"github.com/fbasas/bball-playback/internal/adapter/repository/postgres"
	redisrepo "github.com/fbasas/bball-playback/internal/adapter/repository/redis"
	"github.com/fbasas/bball-playback/internal/pkg/config"
	"github.com/fbasas/bball-playback/internal/pkg/logger"
	"github.com/fbasas/bball-playback/internal/usecase"

	_ "github.com/lib/pq" // Keep for postgres driver
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logger.New(cfg.LogLevel)
	slog.SetDefault(logger)

	m := metrics.NewPlaybackMetrics()

	// --- Start Ops and Metrics Server ---
	opsMux := http.NewServeMux()
	opsMux.Handle("/metrics", promhttp.Handler())

	opsServer := &http.Server{
		Addr:    cfg.OpsServerAddr,
		Handler: opsMux,
	}

	go func() {
		logger.Info("starting ops & metrics server", "addr", opsServer.Addr)
		if err := opsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("ops & metrics server failed", "error", err)
		}
	}()

	// --- Graceful Shutdown Context ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database and Redis Connections ---
	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("could not connect to redis, narrations will be computed on the fly", "error", err)
	}

	// --- Initialize Repositories ---
	apiKeyRepo := postgres.NewAPIKeyRepository(db, logger, cfg.APIKeyCacheTTL, m)
	gameRepo := postgres.NewGameRepository(db, logger)
	playRepo := postgres.NewPlayRepository(db, logger)
	narrationCache := redisrepo.NewNarrationCache(redisClient, logger, cfg.NarrationCacheTTL)

	// --- Initialize Ops API ---
	cacheAdminRepo := redisrepo.NewCacheAdminRepository(redisClient, logger)
	cacheAdminUseCase := usecase.NewCacheAdminUseCase(cacheAdminRepo)
	opsRouter := api.NewOpsRouter(cacheAdminUseCase, logger)
	opsMux.Handle("/", opsRouter) // Mount ops router at the root of the ops server

	// --- Initialize Use Cases ---
	narrateUseCase := usecase.NewNarratePlayUseCase(narrationCache, logger, m)
	replayUseCase := usecase.NewReplayGameUseCase(gameRepo, playRepo, narrateUseCase, logger)

	// --- Initialize API Server ---
	apiRouter := api.NewRouter(cfg, logger, m, apiKeyRepo, gameRepo, playRepo, narrateUseCase, replayUseCase)
	apiServer := &http.Server{
		Addr:        cfg.APIServerAddr,
		Handler:     middleware.Logging(logger)(apiRouter),
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("starting replay API server", "addr", apiServer.Addr)
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("replay API server failed", "error", err)
			stop() // Trigger shutdown on server error
		}
	}()

	// --- Wait for shutdown signal ---
	<-ctx.Done()
	logger.Info("shutting down servers...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("ops server shutdown failed", "error", err)
	}
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("replay API server shutdown failed", "error", err)
	}

	logger.Info("servers shut down gracefully")
}
