package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fbasas/bball-playback/internal/testutil"
	"github.com/fbasas/bball-playback/internal/usecase"
)

func TestReplayHandler_StreamsFrames(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	games, plays := newGameFixtures()
	narrator := usecase.NewNarratePlayUseCase(nil, logger, nil)
	replay := usecase.NewReplayGameUseCase(games, plays, narrator, logger)
	h := NewReplayHandler(replay, logger, nil, time.Millisecond)

	mux := http.NewServeMux()
	mux.Handle("GET /v1/games/{gameID}/replay", h)

	req := httptest.NewRequest(http.MethodGet, "/v1/games/BOS202408150/replay", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	testutil.AssertEqual(t, rr.Code, http.StatusOK)
	testutil.AssertEqual(t, rr.Header().Get("Content-Type"), "text/event-stream")

	body := rr.Body.String()
	testutil.AssertContains(t, body, `"description":"Single to center field"`)
	testutil.AssertContains(t, body, `"description":"Grounded into a 6-4-3 double play"`)
	testutil.AssertContains(t, body, "event: end")

	frames := strings.Count(body, "data: ")
	testutil.AssertEqual(t, frames, 3) // two plays plus the end marker
}

func TestReplayHandler_GameNotFound(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	games, plays := newGameFixtures()
	narrator := usecase.NewNarratePlayUseCase(nil, logger, nil)
	replay := usecase.NewReplayGameUseCase(games, plays, narrator, logger)
	h := NewReplayHandler(replay, logger, nil, time.Millisecond)

	mux := http.NewServeMux()
	mux.Handle("GET /v1/games/{gameID}/replay", h)

	req := httptest.NewRequest(http.MethodGet, "/v1/games/NOPE/replay", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	testutil.AssertEqual(t, rr.Code, http.StatusNotFound)
}
