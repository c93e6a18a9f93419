package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type scoreRepository interface {
	Add(ctx context.Context, roundID string, state entity.State) error
	Standings(ctx context.Context) (entity.Standings, error)
}

// ScoreKeeper tallies finished rounds for the session.
type ScoreKeeper struct {
	logger *slog.Logger
	repo   scoreRepository
}

func NewScoreKeeper(logger *slog.Logger, repo scoreRepository) *ScoreKeeper {
	return &ScoreKeeper{
		logger: logger.With("component", "score_keeper"),
		repo:   repo,
	}
}

// RecordResult - stores the outcome of a finished round.
func (that *ScoreKeeper) RecordResult(ctx context.Context, roundID string, state entity.State) error {
	if !state.IsTerminal() {
		return fmt.Errorf("%w: round %s", apperror.ErrRoundNotFinished, roundID)
	}

	if err := that.repo.Add(ctx, roundID, state); err != nil {
		return fmt.Errorf("failed to record round %s: %w", roundID, err)
	}

	that.logger.Debug("result recorded", "round", roundID, "result", state.String())

	return nil
}

func (that *ScoreKeeper) Standings(ctx context.Context) (entity.Standings, error) {
	standings, err := that.repo.Standings(ctx)
	if err != nil {
		return entity.Standings{}, fmt.Errorf("failed to get standings: %w", err)
	}

	return standings, nil
}
