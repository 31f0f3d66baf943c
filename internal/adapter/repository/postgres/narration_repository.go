package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/lib/pq"

	"github.com/fbasas/bball-playback/internal/domain"
)

// NarrationRepository implements domain.NarrationRepository for PostgreSQL.
type NarrationRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewNarrationRepository creates a new PostgreSQL narration repository.
func NewNarrationRepository(db *sql.DB, logger *slog.Logger) *NarrationRepository {
	return &NarrationRepository{db: db, logger: logger}
}

// WriteNarrationBatch writes a batch of narrations to PostgreSQL using the COPY
// protocol for high performance. It uses an ON CONFLICT clause to perform an
// upsert, ensuring idempotency based on (game_id, play_index).
func (r *NarrationRepository) WriteNarrationBatch(ctx context.Context, narrations []domain.PlayNarration) error {
	if len(narrations) == 0 {
		return nil
	}

	txn, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer txn.Rollback() // Rollback is a no-op if Commit() is called

	// Use a temporary table to stage the data, then merge into the main table.
	// This is a common pattern for high-performance, idempotent bulk inserts.
	tempTableName := "play_narrations_temp_import"
	_, err = txn.ExecContext(ctx, `CREATE TEMP TABLE `+tempTableName+` (LIKE play_narrations INCLUDING DEFAULTS) ON COMMIT DROP;`)
	if err != nil {
		return err
	}

	stmt, err := txn.Prepare(pq.CopyIn(tempTableName, "game_id", "play_index", "event_code", "description", "generated_at"))
	if err != nil {
		return err
	}

	for _, n := range narrations {
		_, err = stmt.ExecContext(ctx, n.GameID, n.PlayIndex, n.EventCode, n.Description, n.GeneratedAt)
		if err != nil {
			// Close the statement to avoid connection issues
			_ = stmt.Close()
			return err
		}
	}

	if err := stmt.Close(); err != nil {
		return err
	}

	// Upsert from the temp table into the main table
	upsertQuery := `
		INSERT INTO play_narrations (game_id, play_index, event_code, description, generated_at)
		SELECT game_id, play_index, event_code, description, generated_at FROM ` + tempTableName + `
		ON CONFLICT (game_id, play_index) DO UPDATE SET
			event_code = EXCLUDED.event_code,
			description = EXCLUDED.description,
			generated_at = EXCLUDED.generated_at;
	`
	_, err = txn.ExecContext(ctx, upsertQuery)
	if err != nil {
		return err
	}

	return txn.Commit()
}
