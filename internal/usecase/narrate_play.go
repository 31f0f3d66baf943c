package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/fbasas/bball-playback/internal/adapter/metrics"
	"github.com/fbasas/bball-playback/internal/domain"
	"github.com/fbasas/bball-playback/internal/retrosheet"
)

// NarratePlayUseCase turns raw event codes into English descriptions through
// a cache-aside layer. The translation engine is pure and deterministic, so
// caching keyed on the raw code is always safe; cache failures degrade to a
// fresh translation rather than an error.
type NarratePlayUseCase struct {
	cache   domain.NarrationCache
	logger  *slog.Logger
	metrics *metrics.PlaybackMetrics
}

// NewNarratePlayUseCase creates a new NarratePlayUseCase. The cache and
// metrics are optional; pass nil to translate without them.
func NewNarratePlayUseCase(cache domain.NarrationCache, logger *slog.Logger, m *metrics.PlaybackMetrics) *NarratePlayUseCase {
	return &NarratePlayUseCase{
		cache:   cache,
		logger:  logger,
		metrics: m,
	}
}

// Narrate returns the English description for an event code. It never fails:
// unrecognized codes come back as degraded text from the engine.
func (uc *NarratePlayUseCase) Narrate(ctx context.Context, code string) string {
	if uc.cache != nil {
		text, ok, err := uc.cache.Get(ctx, code)
		if err != nil {
			uc.logger.Warn("narration cache read failed, translating directly", "error", err, "code", code)
		} else if ok {
			if uc.metrics != nil {
				uc.metrics.NarrationCacheHits.Inc()
			}
			return text
		} else if uc.metrics != nil {
			uc.metrics.NarrationCacheMisses.Inc()
		}
	}

	start := time.Now()
	ev := retrosheet.Parse(code)
	text := retrosheet.Render(ev)

	if uc.metrics != nil {
		uc.metrics.TranslationsTotal.WithLabelValues(categoryLabel(ev.Type)).Inc()
		uc.metrics.TranslateDuration.Observe(time.Since(start).Seconds())
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, code, text); err != nil {
			uc.logger.Warn("failed to backfill narration cache", "error", err, "code", code)
		}
	}
	return text
}

// Frame narrates a play and pairs the description with its structured parse,
// for callers that also need the on-field facts.
func (uc *NarratePlayUseCase) Frame(ctx context.Context, code string) (retrosheet.Event, string) {
	return retrosheet.Parse(code), uc.Narrate(ctx, code)
}

func categoryLabel(t retrosheet.EventType) string {
	if t == retrosheet.Unrecognized {
		return "unrecognized"
	}
	return string(t)
}
