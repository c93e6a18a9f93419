package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const (
	fieldXWins = "x"
	fieldOWins = "o"
	fieldDraws = "draw"
)

// sessionTTL bounds how long a session's tally and round IDs outlive its last result.
const sessionTTL = 24 * time.Hour

type ScoreRepository interface {
	Add(ctx context.Context, roundID string, state entity.State) error
	Standings(ctx context.Context) (entity.Standings, error)
}

type dbStandings struct {
	XWins int64 `redis:"x"`
	OWins int64 `redis:"o"`
	Draws int64 `redis:"draw"`
}

type dbScore struct {
	client *redis.Client
	prefix string
}

// NewScoreRepository - keeps the tally of one session under <prefix>:<session>.
func NewScoreRepository(client *redis.Client, prefix, session string) ScoreRepository {
	return &dbScore{
		client: client,
		prefix: prefix + ":" + session,
	}
}

// Add - counts a finished round. A round ID that was already counted is ignored.
// If the count cannot be stored the round mark is removed again, so a retry counts it.
func (that *dbScore) Add(ctx context.Context, roundID string, state entity.State) error {
	field, err := resultField(state)
	if err != nil {
		return err
	}

	roundKey := that.roundKey(roundID)

	fresh, err := that.client.SetNX(ctx, roundKey, field, sessionTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to mark round: %w", err)
	}

	if !fresh {
		return nil
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, that.standingsKey(), field, 1)
		pipe.Expire(ctx, that.standingsKey(), sessionTTL)
		return nil
	})
	if err != nil {
		if delErr := that.client.Del(context.WithoutCancel(ctx), roundKey).Err(); delErr != nil {
			return fmt.Errorf("failed to increment %s: %w", field, errors.Join(err, delErr))
		}
		return fmt.Errorf("failed to increment %s: %w", field, err)
	}

	return nil
}

func (that *dbScore) Standings(ctx context.Context) (entity.Standings, error) {
	var standings dbStandings

	if err := that.client.HGetAll(ctx, that.standingsKey()).Scan(&standings); err != nil {
		return entity.Standings{}, fmt.Errorf("failed to get standings: %w", err)
	}

	return entity.Standings{
		XWins: standings.XWins,
		OWins: standings.OWins,
		Draws: standings.Draws,
	}, nil
}

func (that *dbScore) standingsKey() string {
	return that.prefix + ":standings"
}

func (that *dbScore) roundKey(roundID string) string {
	return that.prefix + ":round:" + roundID
}

func resultField(state entity.State) (string, error) {
	switch {
	case state.HasWinner() && state.Winner.Sign() == entity.X:
		return fieldXWins, nil
	case state.HasWinner() && state.Winner.Sign() == entity.O:
		return fieldOWins, nil
	case state.IsDraw():
		return fieldDraws, nil
	default:
		return "", fmt.Errorf("%w: %s", apperror.ErrRoundNotFinished, state)
	}
}
