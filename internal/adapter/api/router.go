package api

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/fbasas/bball-playback/internal/adapter/api/handler"
	"github.com/fbasas/bball-playback/internal/adapter/api/middleware"
	"github.com/fbasas/bball-playback/internal/adapter/metrics"
	"github.com/fbasas/bball-playback/internal/domain"
	"github.com/fbasas/bball-playback/internal/pkg/config"
	"github.com/fbasas/bball-playback/internal/usecase"
)

// NewRouter creates and configures the main HTTP router for the replay service.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	m *metrics.PlaybackMetrics,
	apiKeyRepo domain.APIKeyRepository,
	gameRepo domain.GameRepository,
	playRepo domain.PlayRepository,
	narrator *usecase.NarratePlayUseCase,
	replay *usecase.ReplayGameUseCase,
) http.Handler {
	mux := http.NewServeMux()

	// Handlers
	translateHandler := handler.NewTranslateHandler(narrator, logger, cfg.MaxRequestSize)
	gameHandler := handler.NewGameHandler(gameRepo, playRepo, narrator, logger)
	replayHandler := handler.NewReplayHandler(replay, logger, m, cfg.ReplayFrameInterval)

	// Middleware
	authMiddleware := middleware.Auth(apiKeyRepo, logger)
	throttleMiddleware := middleware.Throttle(rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst), logger)

	// Routes
	mux.Handle("POST /v1/translate", authMiddleware(throttleMiddleware(translateHandler)))
	mux.Handle("GET /v1/games", http.HandlerFunc(gameHandler.ListGames))
	mux.Handle("GET /v1/games/{gameID}", http.HandlerFunc(gameHandler.GetGame))
	mux.Handle("GET /v1/games/{gameID}/plays", http.HandlerFunc(gameHandler.ListPlays))
	mux.Handle("GET /v1/games/{gameID}/replay", replayHandler)

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return mux
}
