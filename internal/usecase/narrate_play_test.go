package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/fbasas/bball-playback/internal/domain/mocks"
)

func TestNarratePlayUseCase_Narrate(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("cache miss translates and backfills", func(t *testing.T) {
		cache := &mocks.MockNarrationCache{}
		uc := NewNarratePlayUseCase(cache, logger, nil)

		got := uc.Narrate(context.Background(), "S8")
		if got != "Single to center field" {
			t.Fatalf("unexpected narration: %q", got)
		}
		if cache.Misses != 1 {
			t.Errorf("expected 1 cache miss, got %d", cache.Misses)
		}
		if cache.Entries["S8"] != "Single to center field" {
			t.Error("expected the narration to be backfilled into the cache")
		}
	})

	t.Run("cache hit skips the engine", func(t *testing.T) {
		cache := &mocks.MockNarrationCache{
			Entries: map[string]string{"S8": "cached text"},
		}
		uc := NewNarratePlayUseCase(cache, logger, nil)

		got := uc.Narrate(context.Background(), "S8")
		if got != "cached text" {
			t.Fatalf("expected the cached value, got %q", got)
		}
		if cache.Sets != 0 {
			t.Error("hit must not rewrite the cache")
		}
	})

	t.Run("cache errors are non-fatal", func(t *testing.T) {
		cache := &mocks.MockNarrationCache{
			GetErr: errors.New("redis down"),
		}
		uc := NewNarratePlayUseCase(cache, logger, nil)

		got := uc.Narrate(context.Background(), "G63")
		if got != "Groundout to shortstop, throw to first baseman" {
			t.Fatalf("expected a direct translation, got %q", got)
		}
	})

	t.Run("nil cache translates directly", func(t *testing.T) {
		uc := NewNarratePlayUseCase(nil, logger, nil)
		if got := uc.Narrate(context.Background(), "643"); got != "Grounded into a 6-4-3 double play" {
			t.Fatalf("unexpected narration: %q", got)
		}
	})
}
