package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/fbasas/bball-playback/internal/adapter/metrics"
	"github.com/fbasas/bball-playback/internal/domain"
)

const (
	defaultBatchSize    = 500
	defaultRetryCount   = 3
	defaultRetryBackoff = 1 * time.Second
)

// PrecomputeNarrationsUseCase fills the play_narrations table ahead of
// replay traffic: read a batch of plays that have no stored narration,
// translate them, and upsert the batch. The upsert is idempotent, so a batch
// that fails mid-write is simply retried whole.
type PrecomputeNarrationsUseCase struct {
	plays      domain.PlayRepository
	narrations domain.NarrationRepository
	narrator   *NarratePlayUseCase
	logger     *slog.Logger
	metrics    *metrics.PlaybackMetrics
	batchSize  int
}

// NewPrecomputeNarrationsUseCase creates a new use case for precomputing
// narrations. A batchSize of 0 uses the default.
func NewPrecomputeNarrationsUseCase(
	plays domain.PlayRepository,
	narrations domain.NarrationRepository,
	narrator *NarratePlayUseCase,
	logger *slog.Logger,
	m *metrics.PlaybackMetrics,
	batchSize int,
) *PrecomputeNarrationsUseCase {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &PrecomputeNarrationsUseCase{
		plays:      plays,
		narrations: narrations,
		narrator:   narrator,
		logger:     logger,
		metrics:    m,
		batchSize:  batchSize,
	}
}

// ProcessBatch narrates one batch of pending plays and writes it to the
// sink. It returns the number of narrations written; zero with a nil error
// means the backlog is empty.
func (uc *PrecomputeNarrationsUseCase) ProcessBatch(ctx context.Context) (int, error) {
	plays, err := uc.plays.ListPendingNarration(ctx, uc.batchSize)
	if err != nil {
		uc.logger.Error("failed to list plays pending narration", "error", err)
		return 0, err
	}
	if len(plays) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	narrations := make([]domain.PlayNarration, len(plays))
	for i, play := range plays {
		narrations[i] = domain.PlayNarration{
			GameID:      play.GameID,
			PlayIndex:   play.Index,
			EventCode:   play.EventCode,
			Description: uc.narrator.Narrate(ctx, play.EventCode),
			GeneratedAt: now,
		}
	}

	if err := uc.writeWithRetry(ctx, narrations); err != nil {
		uc.logger.Error("failed to write narration batch after retries", "error", err)
		return 0, err
	}

	if uc.metrics != nil {
		uc.metrics.NarrationsPrecomputed.Add(float64(len(narrations)))
	}
	uc.logger.Info("narration batch written", "count", len(narrations))
	return len(narrations), nil
}

func (uc *PrecomputeNarrationsUseCase) writeWithRetry(ctx context.Context, narrations []domain.PlayNarration) error {
	var lastErr error
	for i := 0; i < defaultRetryCount; i++ {
		err := uc.narrations.WriteNarrationBatch(ctx, narrations)
		if err == nil {
			return nil
		}
		lastErr = err
		uc.logger.Warn("narration batch write failed, retrying", "attempt", i+1, "error", err)
		select {
		case <-time.After(defaultRetryBackoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}
