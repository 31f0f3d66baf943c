package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/fbasas/bball-playback/internal/domain"
)

// PlayRepository implements domain.PlayRepository against PostgreSQL.
type PlayRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPlayRepository creates a new PostgreSQL play repository.
func NewPlayRepository(db *sql.DB, logger *slog.Logger) *PlayRepository {
	return &PlayRepository{db: db, logger: logger}
}

// ListPlays returns every play of a game in scoring order.
func (r *PlayRepository) ListPlays(ctx context.Context, gameID string) ([]domain.Play, error) {
	const query = `
		SELECT game_id, play_index, inning, top_of_inning, batter_id, pitcher_id, event_code
		FROM plays WHERE game_id = $1
		ORDER BY play_index`

	rows, err := r.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying plays for game %s: %w", gameID, err)
	}
	defer rows.Close()

	return scanPlays(rows)
}

// ListPendingNarration returns plays that have no stored narration yet,
// oldest games first, capped at limit.
func (r *PlayRepository) ListPendingNarration(ctx context.Context, limit int) ([]domain.Play, error) {
	const query = `
		SELECT p.game_id, p.play_index, p.inning, p.top_of_inning, p.batter_id, p.pitcher_id, p.event_code
		FROM plays p
		LEFT JOIN play_narrations n ON n.game_id = p.game_id AND n.play_index = p.play_index
		WHERE n.game_id IS NULL
		ORDER BY p.game_id, p.play_index
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying pending narrations: %w", err)
	}
	defer rows.Close()

	return scanPlays(rows)
}

func scanPlays(rows *sql.Rows) ([]domain.Play, error) {
	var plays []domain.Play
	for rows.Next() {
		var p domain.Play
		if err := rows.Scan(&p.GameID, &p.Index, &p.Inning, &p.TopOfInning, &p.BatterID, &p.PitcherID, &p.EventCode); err != nil {
			return nil, err
		}
		plays = append(plays, p)
	}
	return plays, rows.Err()
}
