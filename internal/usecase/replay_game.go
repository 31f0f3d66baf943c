package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fbasas/bball-playback/internal/domain"
	"github.com/fbasas/bball-playback/internal/retrosheet"
)

// ReplayGameUseCase rebuilds a game play by play. The translation engine is
// stateless, so the cross-play bookkeeping (running score, outs within a
// half-inning) lives here.
type ReplayGameUseCase struct {
	games    domain.GameRepository
	plays    domain.PlayRepository
	narrator *NarratePlayUseCase
	logger   *slog.Logger
}

// NewReplayGameUseCase creates a new ReplayGameUseCase.
func NewReplayGameUseCase(games domain.GameRepository, plays domain.PlayRepository, narrator *NarratePlayUseCase, logger *slog.Logger) *ReplayGameUseCase {
	return &ReplayGameUseCase{
		games:    games,
		plays:    plays,
		narrator: narrator,
		logger:   logger,
	}
}

// Replay loads a game's plays and produces the full frame sequence.
// Returns domain.ErrNotFound when the game does not exist.
func (uc *ReplayGameUseCase) Replay(ctx context.Context, gameID string) ([]domain.ReplayFrame, error) {
	game, err := uc.games.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("loading game %s: %w", gameID, err)
	}

	plays, err := uc.plays.ListPlays(ctx, game.ID)
	if err != nil {
		return nil, fmt.Errorf("loading plays for game %s: %w", gameID, err)
	}

	frames := make([]domain.ReplayFrame, 0, len(plays))
	var homeRuns, awayRuns, outs int
	inning, top := 0, false

	for _, play := range plays {
		if play.Inning != inning || play.TopOfInning != top {
			// Half-inning changed; the out count starts over.
			inning, top = play.Inning, play.TopOfInning
			outs = 0
		}

		ev, description := uc.narrator.Frame(ctx, play.EventCode)

		runs := runsScored(ev)
		if play.TopOfInning {
			awayRuns += runs
		} else {
			homeRuns += runs
		}
		outs += ev.OutCount

		frames = append(frames, domain.ReplayFrame{
			GameID:      play.GameID,
			PlayIndex:   play.Index,
			Inning:      play.Inning,
			TopOfInning: play.TopOfInning,
			BatterID:    play.BatterID,
			EventCode:   play.EventCode,
			Description: description,
			AwayRuns:    awayRuns,
			HomeRuns:    homeRuns,
			Outs:        outs,
		})
	}

	uc.logger.Debug("replay assembled", "game_id", gameID, "frames", len(frames))
	return frames, nil
}

// runsScored counts the runs a single play produced: the batter on a home
// run plus every runner who reached home without being put out.
func runsScored(ev retrosheet.Event) int {
	runs := 0
	if ev.Type == retrosheet.HomeRun {
		runs++
	}
	for _, adv := range ev.Advances {
		if adv.ToBase == "H" && !adv.IsOut {
			runs++
		}
	}
	return runs
}
