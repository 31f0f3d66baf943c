package mocks

import (
	"context"
	"sync"

	"github.com/fbasas/bball-playback/internal/domain"
)

// MockGameRepository is an in-memory implementation of domain.GameRepository
// for testing.
type MockGameRepository struct {
	Games   map[string]*domain.Game
	Teams   map[string]*domain.Team
	Players map[string]*domain.Player
	Lineups map[string][]domain.LineupSlot
	Err     error
}

func (m *MockGameRepository) GetGame(ctx context.Context, gameID string) (*domain.Game, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if g, ok := m.Games[gameID]; ok {
		return g, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockGameRepository) ListGames(ctx context.Context, limit int) ([]domain.Game, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	games := make([]domain.Game, 0, len(m.Games))
	for _, g := range m.Games {
		games = append(games, *g)
	}
	if limit > 0 && len(games) > limit {
		games = games[:limit]
	}
	return games, nil
}

func (m *MockGameRepository) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if t, ok := m.Teams[teamID]; ok {
		return t, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockGameRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if p, ok := m.Players[playerID]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockGameRepository) GetLineup(ctx context.Context, gameID string) ([]domain.LineupSlot, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Lineups[gameID], nil
}

// MockPlayRepository is an in-memory implementation of domain.PlayRepository.
type MockPlayRepository struct {
	Plays   []domain.Play
	Pending []domain.Play
	Err     error
}

func (m *MockPlayRepository) ListPlays(ctx context.Context, gameID string) ([]domain.Play, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var plays []domain.Play
	for _, p := range m.Plays {
		if p.GameID == gameID {
			plays = append(plays, p)
		}
	}
	return plays, nil
}

func (m *MockPlayRepository) ListPendingNarration(ctx context.Context, limit int) ([]domain.Play, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if limit > 0 && len(m.Pending) > limit {
		return m.Pending[:limit], nil
	}
	return m.Pending, nil
}

// MockNarrationRepository records written narration batches.
type MockNarrationRepository struct {
	mu       sync.Mutex
	Written  []domain.PlayNarration
	WriteErr error
}

func (m *MockNarrationRepository) WriteNarrationBatch(ctx context.Context, narrations []domain.PlayNarration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Written = append(m.Written, narrations...)
	return nil
}

// MockNarrationCache is a map-backed domain.NarrationCache.
type MockNarrationCache struct {
	mu      sync.Mutex
	Entries map[string]string
	GetErr  error
	SetErr  error
	Hits    int
	Misses  int
	Sets    int
}

func (m *MockNarrationCache) Get(ctx context.Context, code string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	if text, ok := m.Entries[code]; ok {
		m.Hits++
		return text, true, nil
	}
	m.Misses++
	return "", false, nil
}

func (m *MockNarrationCache) Set(ctx context.Context, code, description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.Entries == nil {
		m.Entries = make(map[string]string)
	}
	m.Entries[code] = description
	m.Sets++
	return nil
}

// MockAPIKeyRepository validates keys against a fixed set.
type MockAPIKeyRepository struct {
	ValidKeys map[string]bool
	Err       error
}

func (m *MockAPIKeyRepository) IsValid(ctx context.Context, key string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.ValidKeys[key], nil
}
