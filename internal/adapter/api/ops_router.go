package api

import (
	"log/slog"
	"net/http"

	"github.com/fbasas/bball-playback/internal/adapter/api/handler"
	"github.com/fbasas/bball-playback/internal/usecase"
)

// NewOpsRouter creates and configures the HTTP router for the operational
// surface: cache administration and health. The /metrics endpoint is mounted
// alongside this router in main.
func NewOpsRouter(cacheAdmin *usecase.CacheAdminUseCase, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	adminHandler := handler.NewCacheAdminHandler(cacheAdmin, logger)

	mux.HandleFunc("GET /health", adminHandler.HealthCheck)

	// Narration cache operations
	mux.HandleFunc("GET /admin/cache/stats", adminHandler.Stats)
	mux.HandleFunc("POST /admin/cache/flush", adminHandler.Flush)

	return mux
}
