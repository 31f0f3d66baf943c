package redis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/fbasas/bball-playback/internal/domain"
)

// scanBatchSize bounds how many keys a single SCAN iteration asks for.
const scanBatchSize = 500

// CacheAdminRepository implements the domain.CacheAdminRepository interface
// for Redis. It operates only on keys under the narration prefix.
type CacheAdminRepository struct {
	client *redis.Client
	logger *slog.Logger
}

// NewCacheAdminRepository creates a new Redis cache admin repository.
func NewCacheAdminRepository(client *redis.Client, logger *slog.Logger) *CacheAdminRepository {
	return &CacheAdminRepository{
		client: client,
		logger: logger,
	}
}

// Stats counts the cached narrations. It uses SCAN rather than KEYS so a
// large cache does not block the server.
func (r *CacheAdminRepository) Stats(ctx context.Context) (*domain.CacheStats, error) {
	var (
		cursor uint64
		total  int64
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, narrationKeyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, fmt.Errorf("scanning narration keys: %w", err)
		}
		total += int64(len(keys))
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return &domain.CacheStats{Keys: total}, nil
}

// Flush deletes every cached narration and returns how many keys were removed.
func (r *CacheAdminRepository) Flush(ctx context.Context) (int64, error) {
	var (
		cursor  uint64
		removed int64
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, narrationKeyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return removed, fmt.Errorf("scanning narration keys: %w", err)
		}
		if len(keys) > 0 {
			n, err := r.client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("deleting narration keys: %w", err)
			}
			removed += n
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	r.logger.Info("narration cache flushed", "keys_removed", removed)
	return removed, nil
}
