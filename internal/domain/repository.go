package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested game, team or player does not
// exist.
var ErrNotFound = errors.New("not found")

// GameRepository provides read access to games, teams, players and lineups.
type GameRepository interface {
	GetGame(ctx context.Context, gameID string) (*Game, error)
	ListGames(ctx context.Context, limit int) ([]Game, error)
	GetTeam(ctx context.Context, teamID string) (*Team, error)
	GetPlayer(ctx context.Context, playerID string) (*Player, error)
	GetLineup(ctx context.Context, gameID string) ([]LineupSlot, error)
}

// PlayRepository provides read access to play-by-play records.
type PlayRepository interface {
	// ListPlays returns a game's plays in play-index order.
	ListPlays(ctx context.Context, gameID string) ([]Play, error)

	// ListPendingNarration returns plays that have no stored narration yet,
	// up to limit.
	ListPendingNarration(ctx context.Context, limit int) ([]Play, error)
}

// NarrationRepository is the durable sink for precomputed narrations.
type NarrationRepository interface {
	// WriteNarrationBatch upserts a batch of narrations. It is idempotent on
	// (game_id, play_index) so retried batches cannot duplicate rows.
	WriteNarrationBatch(ctx context.Context, narrations []PlayNarration) error
}

// NarrationCache is the fast lookup layer keyed on the raw event code. The
// engine is deterministic, so a code's narration never goes stale.
type NarrationCache interface {
	// Get returns the cached description and whether the key was present.
	Get(ctx context.Context, code string) (string, bool, error)

	// Set stores a description under the event code.
	Set(ctx context.Context, code, description string) error
}

// APIKeyRepository validates API keys. Implementations should cache to keep
// the hot path off the database.
type APIKeyRepository interface {
	IsValid(ctx context.Context, key string) (bool, error)
}

// CacheAdminRepository exposes operational controls over the narration cache.
type CacheAdminRepository interface {
	Stats(ctx context.Context) (*CacheStats, error)
	Flush(ctx context.Context) (int64, error)
}
