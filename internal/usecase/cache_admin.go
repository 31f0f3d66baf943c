package usecase

import (
	"context"

	"github.com/fbasas/bball-playback/internal/domain"
)

// CacheAdminUseCase provides operational controls over the narration cache.
type CacheAdminUseCase struct {
	repo domain.CacheAdminRepository
}

// NewCacheAdminUseCase creates a new CacheAdminUseCase.
func NewCacheAdminUseCase(repo domain.CacheAdminRepository) *CacheAdminUseCase {
	return &CacheAdminUseCase{repo: repo}
}

// Stats reports the current size of the narration cache.
func (uc *CacheAdminUseCase) Stats(ctx context.Context) (*domain.CacheStats, error) {
	return uc.repo.Stats(ctx)
}

// Flush drops every cached narration and returns how many were removed.
// Safe at any time: narrations are recomputed on demand.
func (uc *CacheAdminUseCase) Flush(ctx context.Context) (int64, error) {
	return uc.repo.Flush(ctx)
}
