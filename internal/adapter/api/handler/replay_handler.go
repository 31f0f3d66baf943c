package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fbasas/bball-playback/internal/adapter/metrics"
	"github.com/fbasas/bball-playback/internal/domain"
	"github.com/fbasas/bball-playback/internal/usecase"
)

// ReplayHandler streams a game's narrated plays to the client as
// server-sent events, one frame per tick.
type ReplayHandler struct {
	useCase       *usecase.ReplayGameUseCase
	logger        *slog.Logger
	metrics       *metrics.PlaybackMetrics
	frameInterval time.Duration
}

// NewReplayHandler creates a new ReplayHandler.
func NewReplayHandler(uc *usecase.ReplayGameUseCase, logger *slog.Logger, m *metrics.PlaybackMetrics, frameInterval time.Duration) *ReplayHandler {
	return &ReplayHandler{
		useCase:       uc,
		logger:        logger,
		metrics:       m,
		frameInterval: frameInterval,
	}
}

// ServeHTTP handles a replay stream request.
// GET /v1/games/{gameID}/replay
func (h *ReplayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameID")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported!", http.StatusInternalServerError)
		return
	}

	frames, err := h.useCase.Replay(r.Context(), gameID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to build replay", "game_id", gameID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	clientID := uuid.NewString()
	h.logger.Info("replay client connected", "client_id", clientID, "game_id", gameID, "frames", len(frames))

	ticker := time.NewTicker(h.frameInterval)
	defer ticker.Stop()

	ctx := r.Context()
	for _, frame := range frames {
		data, err := json.Marshal(frame)
		if err != nil {
			h.logger.Error("failed to marshal replay frame", "error", err)
			continue
		}

		fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
		if h.metrics != nil {
			h.metrics.ReplayFramesTotal.Inc()
		}

		select {
		case <-ctx.Done():
			h.logger.Info("replay client disconnected", "client_id", clientID, "game_id", gameID)
			return
		case <-ticker.C:
		}
	}

	fmt.Fprint(w, "event: end\ndata: {}\n\n")
	flusher.Flush()
	h.logger.Info("replay complete", "client_id", clientID, "game_id", gameID)
}
