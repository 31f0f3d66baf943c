package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fbasas/bball-playback/internal/domain"
)

// GameRepository implements domain.GameRepository against PostgreSQL.
type GameRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewGameRepository creates a new PostgreSQL game repository.
func NewGameRepository(db *sql.DB, logger *slog.Logger) *GameRepository {
	return &GameRepository{db: db, logger: logger}
}

// GetGame loads one game header. Returns domain.ErrNotFound for unknown ids.
func (r *GameRepository) GetGame(ctx context.Context, gameID string) (*domain.Game, error) {
	const query = `
		SELECT game_id, game_date, home_team_id, away_team_id, venue, status
		FROM games WHERE game_id = $1`

	var g domain.Game
	err := r.db.QueryRowContext(ctx, query, gameID).Scan(
		&g.ID, &g.Date, &g.HomeTeamID, &g.AwayTeamID, &g.Venue, &g.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying game %s: %w", gameID, err)
	}
	return &g, nil
}

// ListGames returns the most recent games, newest first.
func (r *GameRepository) ListGames(ctx context.Context, limit int) ([]domain.Game, error) {
	const query = `
		SELECT game_id, game_date, home_team_id, away_team_id, venue, status
		FROM games ORDER BY game_date DESC, game_id LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(&g.ID, &g.Date, &g.HomeTeamID, &g.AwayTeamID, &g.Venue, &g.Status); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// GetTeam loads one team profile.
func (r *GameRepository) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	const query = `SELECT team_id, city, nickname, league FROM teams WHERE team_id = $1`

	var t domain.Team
	err := r.db.QueryRowContext(ctx, query, teamID).Scan(&t.ID, &t.City, &t.Nickname, &t.League)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying team %s: %w", teamID, err)
	}
	return &t, nil
}

// GetPlayer loads one player profile.
func (r *GameRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	const query = `SELECT player_id, first_name, last_name, bats, throws FROM players WHERE player_id = $1`

	var p domain.Player
	err := r.db.QueryRowContext(ctx, query, playerID).Scan(&p.ID, &p.FirstName, &p.LastName, &p.Bats, &p.Throws)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying player %s: %w", playerID, err)
	}
	return &p, nil
}

// GetLineup returns both teams' batting orders for a game.
func (r *GameRepository) GetLineup(ctx context.Context, gameID string) ([]domain.LineupSlot, error) {
	const query = `
		SELECT game_id, team_id, player_id, batting_order, position
		FROM lineups WHERE game_id = $1
		ORDER BY team_id, batting_order`

	rows, err := r.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying lineup for game %s: %w", gameID, err)
	}
	defer rows.Close()

	var slots []domain.LineupSlot
	for rows.Next() {
		var s domain.LineupSlot
		if err := rows.Scan(&s.GameID, &s.TeamID, &s.PlayerID, &s.BattingOrder, &s.Position); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}
