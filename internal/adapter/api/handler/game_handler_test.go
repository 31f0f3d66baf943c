package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fbasas/bball-playback/internal/domain"
	"github.com/fbasas/bball-playback/internal/domain/mocks"
	"github.com/fbasas/bball-playback/internal/testutil"
	"github.com/fbasas/bball-playback/internal/usecase"
)

func newGameFixtures() (*mocks.MockGameRepository, *mocks.MockPlayRepository) {
	games := &mocks.MockGameRepository{
		Games: map[string]*domain.Game{
			"BOS202408150": {ID: "BOS202408150", HomeTeamID: "BOS", AwayTeamID: "NYA", Venue: "Fenway Park", Status: "final"},
		},
		Teams: map[string]*domain.Team{
			"BOS": {ID: "BOS", City: "Boston", Nickname: "Red Sox", League: "AL"},
			"NYA": {ID: "NYA", City: "New York", Nickname: "Yankees", League: "AL"},
		},
		Players: map[string]*domain.Player{
			"judga001": {ID: "judga001", FirstName: "Aaron", LastName: "Judge", Bats: "R", Throws: "R"},
		},
		Lineups: map[string][]domain.LineupSlot{
			"BOS202408150": {
				{GameID: "BOS202408150", TeamID: "NYA", PlayerID: "judga001", BattingOrder: 1, Position: 9},
			},
		},
	}
	plays := &mocks.MockPlayRepository{
		Plays: []domain.Play{
			{GameID: "BOS202408150", Index: 0, Inning: 1, TopOfInning: true, BatterID: "judga001", PitcherID: "crawk001", EventCode: "S8"},
			{GameID: "BOS202408150", Index: 1, Inning: 1, TopOfInning: true, BatterID: "sotoj001", PitcherID: "crawk001", EventCode: "643"},
		},
	}
	return games, plays
}

func TestGameHandler_GetGame(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	games, plays := newGameFixtures()
	narrator := usecase.NewNarratePlayUseCase(nil, logger, nil)
	h := NewGameHandler(games, plays, narrator, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/games/{gameID}", h.GetGame)

	req := httptest.NewRequest(http.MethodGet, "/v1/games/BOS202408150", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	testutil.AssertEqual(t, rr.Code, http.StatusOK)

	var resp gameResponse
	testutil.AssertNoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	testutil.AssertEqual(t, resp.Game.Venue, "Fenway Park")
	testutil.AssertEqual(t, resp.Home.Nickname, "Red Sox")
	testutil.AssertEqual(t, resp.Away.Nickname, "Yankees")
	testutil.AssertEqual(t, len(resp.Lineup), 1)
	testutil.AssertEqual(t, resp.Lineup[0].PlayerName, "Aaron Judge")
}

func TestGameHandler_ListGames(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	games, plays := newGameFixtures()
	narrator := usecase.NewNarratePlayUseCase(nil, logger, nil)
	h := NewGameHandler(games, plays, narrator, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/games", h.ListGames)

	req := httptest.NewRequest(http.MethodGet, "/v1/games?limit=5", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	testutil.AssertEqual(t, rr.Code, http.StatusOK)

	var resp []domain.Game
	testutil.AssertNoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	testutil.AssertEqual(t, len(resp), 1)
	testutil.AssertEqual(t, resp[0].ID, "BOS202408150")

	req = httptest.NewRequest(http.MethodGet, "/v1/games?limit=nope", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	testutil.AssertEqual(t, rr.Code, http.StatusBadRequest)
}

func TestGameHandler_GetGameNotFound(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	games, plays := newGameFixtures()
	narrator := usecase.NewNarratePlayUseCase(nil, logger, nil)
	h := NewGameHandler(games, plays, narrator, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/games/{gameID}", h.GetGame)

	req := httptest.NewRequest(http.MethodGet, "/v1/games/NOPE", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	testutil.AssertEqual(t, rr.Code, http.StatusNotFound)
}

func TestGameHandler_ListPlays(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	games, plays := newGameFixtures()
	narrator := usecase.NewNarratePlayUseCase(nil, logger, nil)
	h := NewGameHandler(games, plays, narrator, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/games/{gameID}/plays", h.ListPlays)

	req := httptest.NewRequest(http.MethodGet, "/v1/games/BOS202408150/plays", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	testutil.AssertEqual(t, rr.Code, http.StatusOK)

	var resp []playResponse
	testutil.AssertNoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	testutil.AssertEqual(t, len(resp), 2)
	testutil.AssertEqual(t, resp[0].Description, "Single to center field")
	testutil.AssertEqual(t, resp[1].Description, "Grounded into a 6-4-3 double play")
}
