package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/fbasas/bball-playback/internal/domain"
	"github.com/fbasas/bball-playback/internal/domain/mocks"
)

func testPlays(gameID string) []domain.Play {
	codes := []struct {
		inning int
		top    bool
		code   string
	}{
		{1, true, "K"},       // 1 out
		{1, true, "S8"},      // runner on
		{1, true, "HR.1-H"},  // two runs for the away side
		{1, true, "G63"},     // 2 outs
		{1, true, "F8"},      // 3 outs
		{1, false, "W"},      // bottom half begins, outs reset
		{1, false, "643"},    // double play, 2 outs
		{1, false, "S7"},     //
		{1, false, "CS2"},    // 3 outs
		{2, true, "6"},       // new inning, outs reset to 1
	}
	plays := make([]domain.Play, len(codes))
	for i, c := range codes {
		plays[i] = domain.Play{
			GameID:      gameID,
			Index:       i + 1,
			Inning:      c.inning,
			TopOfInning: c.top,
			BatterID:    "batter",
			PitcherID:   "pitcher",
			EventCode:   c.code,
		}
	}
	return plays
}

func TestReplayGameUseCase_Replay(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	const gameID = "NYA202306150"

	games := &mocks.MockGameRepository{
		Games: map[string]*domain.Game{
			gameID: {ID: gameID, HomeTeamID: "NYA", AwayTeamID: "BOS"},
		},
	}
	plays := &mocks.MockPlayRepository{Plays: testPlays(gameID)}
	narrator := NewNarratePlayUseCase(nil, logger, nil)
	uc := NewReplayGameUseCase(games, plays, narrator, logger)

	frames, err := uc.Replay(context.Background(), gameID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 10 {
		t.Fatalf("expected 10 frames, got %d", len(frames))
	}

	assertFrame := func(i, away, home, outs int) {
		t.Helper()
		f := frames[i]
		if f.AwayRuns != away || f.HomeRuns != home || f.Outs != outs {
			t.Errorf("frame %d: got away=%d home=%d outs=%d, want away=%d home=%d outs=%d",
				i, f.AwayRuns, f.HomeRuns, f.Outs, away, home, outs)
		}
	}

	assertFrame(0, 0, 0, 1)  // strikeout
	assertFrame(2, 2, 0, 1)  // home run plus the runner from first
	assertFrame(4, 2, 0, 3)  // half inning over
	assertFrame(5, 2, 0, 0)  // bottom half, outs reset
	assertFrame(6, 2, 0, 2)  // double play
	assertFrame(8, 2, 0, 3)  // caught stealing ends the inning
	assertFrame(9, 2, 0, 1)  // next inning, outs reset

	if frames[0].Description != "Struck out" {
		t.Errorf("frame 0 narration = %q", frames[0].Description)
	}
	if frames[6].Description != "Grounded into a 6-4-3 double play" {
		t.Errorf("frame 6 narration = %q", frames[6].Description)
	}
}

func TestReplayGameUseCase_GameNotFound(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := NewReplayGameUseCase(
		&mocks.MockGameRepository{},
		&mocks.MockPlayRepository{},
		NewNarratePlayUseCase(nil, logger, nil),
		logger,
	)

	_, err := uc.Replay(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPrecomputeNarrationsUseCase_ProcessBatch(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("writes one narration per pending play", func(t *testing.T) {
		plays := &mocks.MockPlayRepository{
			Pending: []domain.Play{
				{GameID: "g1", Index: 1, EventCode: "S8"},
				{GameID: "g1", Index: 2, EventCode: "643"},
			},
		}
		sink := &mocks.MockNarrationRepository{}
		uc := NewPrecomputeNarrationsUseCase(plays, sink, NewNarratePlayUseCase(nil, logger, nil), logger, nil, 0)

		n, err := uc.ProcessBatch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 2 || len(sink.Written) != 2 {
			t.Fatalf("expected 2 narrations written, got n=%d written=%d", n, len(sink.Written))
		}
		if sink.Written[0].Description != "Single to center field" {
			t.Errorf("unexpected description: %q", sink.Written[0].Description)
		}
	})

	t.Run("empty backlog is not an error", func(t *testing.T) {
		uc := NewPrecomputeNarrationsUseCase(
			&mocks.MockPlayRepository{},
			&mocks.MockNarrationRepository{},
			NewNarratePlayUseCase(nil, logger, nil), logger, nil, 0)

		n, err := uc.ProcessBatch(context.Background())
		if err != nil || n != 0 {
			t.Fatalf("expected (0, nil), got (%d, %v)", n, err)
		}
	})
}
