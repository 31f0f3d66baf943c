package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// narrationKeyPrefix namespaces all cached narrations so the admin
// surface can count and flush them without touching other keys.
const narrationKeyPrefix = "narration:"

// NarrationCache implements the domain.NarrationCache interface for Redis.
// Entries are keyed by the raw event code, so identical plays across games
// share one cached narration.
type NarrationCache struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// NewNarrationCache creates a new Redis narration cache.
func NewNarrationCache(client *redis.Client, logger *slog.Logger, ttl time.Duration) *NarrationCache {
	return &NarrationCache{
		client: client,
		logger: logger,
		ttl:    ttl,
	}
}

// Get returns the cached narration for an event code. A missing key is not
// an error; it is reported through the bool result.
func (c *NarrationCache) Get(ctx context.Context, eventCode string) (string, bool, error) {
	val, err := c.client.Get(ctx, narrationKeyPrefix+eventCode).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading narration cache: %w", err)
	}
	return val, true, nil
}

// Set stores a narration under the event code with the configured TTL.
func (c *NarrationCache) Set(ctx context.Context, eventCode, description string) error {
	if err := c.client.Set(ctx, narrationKeyPrefix+eventCode, description, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing narration cache: %w", err)
	}
	return nil
}
