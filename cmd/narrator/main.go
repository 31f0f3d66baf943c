package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/fbasas/bball-playback/internal/adapter/metrics"
	"github.com/fbasas/bball-playback/internal/adapter/repository/postgres"
	redisrepo "github.com/fbasas/bball-playback/internal/adapter/repository/redis"
	"github.com/fbasas/bball-playback/internal/pkg/config"
	"github.com/fbasas/bball-playback/internal/pkg/logger"
	"github.com/fbasas/bball-playback/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	log.Info("starting narrator worker")

	// Create a context that we can cancel on shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stopChan
		log.Info("shutdown signal received, stopping narrator...")
		cancel()
	}()

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	log.Info("connected to redis")

	// Connect to PostgreSQL
	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		log.Error("failed to open postgres connection", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	log.Info("connected to postgres")

	// A worker name makes it easy to tell instances apart in logs.
	workerName, err := os.Hostname()
	if err != nil {
		log.Warn("could not get hostname for worker name, using default", "error", err)
		workerName = "narrator-default"
	}
	log = log.With("worker", workerName)

	m := metrics.NewPlaybackMetrics()

	// Instantiate repositories
	playRepo := postgres.NewPlayRepository(db, log)
	narrationRepo := postgres.NewNarrationRepository(db, log)
	narrationCache := redisrepo.NewNarrationCache(redisClient, log, cfg.NarrationCacheTTL)

	// Instantiate the use cases
	narrateUseCase := usecase.NewNarratePlayUseCase(narrationCache, log, m)
	precomputeUseCase := usecase.NewPrecomputeNarrationsUseCase(playRepo, narrationRepo, narrateUseCase, log, m, cfg.NarratorBatchSize)

	// Start the narration precompute loop
	ticker := time.NewTicker(cfg.NarratorInterval)
	defer ticker.Stop()

	log.Info("narrator worker started, precomputing narrations...", "batch_size", cfg.NarratorBatchSize, "interval", cfg.NarratorInterval.String())

Loop:
	for {
		select {
		case <-ticker.C:
			written, err := precomputeUseCase.ProcessBatch(ctx)
			if err != nil {
				log.Error("error processing narration batch", "error", err)
			}
			if written > 0 {
				log.Info("narration batch written", "count", written)
			}
		case <-ctx.Done():
			log.Info("context cancelled, shutting down narrator loop")
			break Loop
		}
	}

	log.Info("narrator worker shut down gracefully")
}
