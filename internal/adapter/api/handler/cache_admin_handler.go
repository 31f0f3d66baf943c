package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fbasas/bball-playback/internal/usecase"
)

// CacheAdminHandler handles HTTP requests for narration cache administration.
type CacheAdminHandler struct {
	uc     *usecase.CacheAdminUseCase
	logger *slog.Logger
}

// NewCacheAdminHandler creates a new CacheAdminHandler.
func NewCacheAdminHandler(uc *usecase.CacheAdminUseCase, logger *slog.Logger) *CacheAdminHandler {
	return &CacheAdminHandler{uc: uc, logger: logger}
}

// HealthCheck is a simple health check endpoint.
func (h *CacheAdminHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Stats handles requests to inspect the narration cache.
// GET /admin/cache/stats
func (h *CacheAdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to get cache stats", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, stats)
}

// Flush handles requests to clear the narration cache.
// POST /admin/cache/flush
func (h *CacheAdminHandler) Flush(w http.ResponseWriter, r *http.Request) {
	removed, err := h.uc.Flush(r.Context())
	if err != nil {
		h.logger.Error("failed to flush cache", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]int64{"flushed": removed})
}
