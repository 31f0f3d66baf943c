package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fbasas/bball-playback/internal/domain"
	"github.com/fbasas/bball-playback/internal/usecase"
)

// GameHandler handles HTTP requests for game metadata and scored plays.
type GameHandler struct {
	games    domain.GameRepository
	plays    domain.PlayRepository
	narrator *usecase.NarratePlayUseCase
	logger   *slog.Logger
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(games domain.GameRepository, plays domain.PlayRepository, narrator *usecase.NarratePlayUseCase, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		games:    games,
		plays:    plays,
		narrator: narrator,
		logger:   logger,
	}
}

type lineupEntry struct {
	TeamID       string `json:"team_id"`
	BattingOrder int    `json:"batting_order"`
	Position     int    `json:"position"`
	PlayerID     string `json:"player_id"`
	PlayerName   string `json:"player_name,omitempty"`
}

type gameResponse struct {
	Game   *domain.Game  `json:"game"`
	Home   *domain.Team  `json:"home_team"`
	Away   *domain.Team  `json:"away_team"`
	Lineup []lineupEntry `json:"lineup"`
}

// ListGames handles requests for the most recent games.
// GET /v1/games?limit={n}
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = n
	}

	games, err := h.games.ListGames(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list games", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, games)
}

// GetGame handles requests for one game's header, teams and lineup.
// GET /v1/games/{gameID}
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameID")

	game, err := h.games.GetGame(r.Context(), gameID)
	if err != nil {
		h.respondError(w, gameID, err)
		return
	}

	home, err := h.games.GetTeam(r.Context(), game.HomeTeamID)
	if err != nil {
		h.respondError(w, gameID, err)
		return
	}
	away, err := h.games.GetTeam(r.Context(), game.AwayTeamID)
	if err != nil {
		h.respondError(w, gameID, err)
		return
	}

	slots, err := h.games.GetLineup(r.Context(), gameID)
	if err != nil {
		h.respondError(w, gameID, err)
		return
	}

	lineup := make([]lineupEntry, len(slots))
	for i, s := range slots {
		entry := lineupEntry{
			TeamID:       s.TeamID,
			BattingOrder: s.BattingOrder,
			Position:     s.Position,
			PlayerID:     s.PlayerID,
		}
		// A missing player record only costs the display name.
		player, err := h.games.GetPlayer(r.Context(), s.PlayerID)
		if err == nil {
			entry.PlayerName = player.FirstName + " " + player.LastName
		} else if !errors.Is(err, domain.ErrNotFound) {
			h.respondError(w, gameID, err)
			return
		}
		lineup[i] = entry
	}

	respondWithJSON(w, h.logger, http.StatusOK, gameResponse{
		Game:   game,
		Home:   home,
		Away:   away,
		Lineup: lineup,
	})
}

type playResponse struct {
	Index       int    `json:"index"`
	Inning      int    `json:"inning"`
	TopOfInning bool   `json:"top_of_inning"`
	BatterID    string `json:"batter_id"`
	PitcherID   string `json:"pitcher_id"`
	EventCode   string `json:"event_code"`
	Description string `json:"description"`
}

// ListPlays handles requests for a game's full play-by-play with narration.
// GET /v1/games/{gameID}/plays
func (h *GameHandler) ListPlays(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("gameID")

	// Verify the game exists so an empty play list is distinguishable from a
	// bad game id.
	if _, err := h.games.GetGame(r.Context(), gameID); err != nil {
		h.respondError(w, gameID, err)
		return
	}

	plays, err := h.plays.ListPlays(r.Context(), gameID)
	if err != nil {
		h.respondError(w, gameID, err)
		return
	}

	results := make([]playResponse, len(plays))
	for i, p := range plays {
		results[i] = playResponse{
			Index:       p.Index,
			Inning:      p.Inning,
			TopOfInning: p.TopOfInning,
			BatterID:    p.BatterID,
			PitcherID:   p.PitcherID,
			EventCode:   p.EventCode,
			Description: h.narrator.Narrate(r.Context(), p.EventCode),
		}
	}

	respondWithJSON(w, h.logger, http.StatusOK, results)
}

func (h *GameHandler) respondError(w http.ResponseWriter, gameID string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	h.logger.Error("failed to load game data", "game_id", gameID, "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
