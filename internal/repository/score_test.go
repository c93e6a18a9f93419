package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/testing/suite"
)

func testPlayers(t *testing.T) [2]entity.Player {
	t.Helper()

	players, err := entity.NewPlayers()
	require.NoError(t, err)

	return players
}

// checkScoreRepository runs the behaviour every ScoreRepository shares.
func checkScoreRepository(ctx context.Context, t *testing.T, newRepo func(t *testing.T) ScoreRepository) {
	t.Helper()

	players := testPlayers(t)

	t.Run("Empty standings", func(t *testing.T) {
		// Given: a fresh repository
		repo := newRepo(t)

		// When: reading standings
		standings, err := repo.Standings(ctx)

		// Then: everything is zero
		require.NoError(t, err)
		assert.Equal(t, entity.Standings{}, standings)
	})

	t.Run("Counts every outcome", func(t *testing.T) {
		// Given: a fresh repository
		repo := newRepo(t)

		// When: adding two X wins, one O win and one draw
		require.NoError(t, repo.Add(ctx, "r1", entity.WinnerState(players[0])))
		require.NoError(t, repo.Add(ctx, "r2", entity.WinnerState(players[0])))
		require.NoError(t, repo.Add(ctx, "r3", entity.WinnerState(players[1])))
		require.NoError(t, repo.Add(ctx, "r4", entity.DrawState()))

		// Then: the tally matches
		standings, err := repo.Standings(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.Standings{XWins: 2, OWins: 1, Draws: 1}, standings)
		assert.Equal(t, int64(4), standings.Rounds())
	})

	t.Run("Same round counts once", func(t *testing.T) {
		// Given: a fresh repository
		repo := newRepo(t)

		// When: the same round is added twice
		require.NoError(t, repo.Add(ctx, "dup", entity.DrawState()))
		require.NoError(t, repo.Add(ctx, "dup", entity.DrawState()))

		// Then: it is counted once
		standings, err := repo.Standings(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), standings.Draws)
	})

	t.Run("Rejects a round still in play", func(t *testing.T) {
		// Given: a fresh repository
		repo := newRepo(t)

		// When: adding a playing state
		err := repo.Add(ctx, "live", entity.PlayingState())

		// Then: the round is refused and nothing is counted
		require.ErrorIs(t, err, apperror.ErrRoundNotFinished)
		standings, err := repo.Standings(ctx)
		require.NoError(t, err)
		assert.Zero(t, standings.Rounds())
	})
}

func TestMemoryScoreRepository(t *testing.T) {
	checkScoreRepository(context.Background(), t, func(*testing.T) ScoreRepository {
		return NewMemoryScoreRepository()
	})
}

func TestScoreRepository_Redis(t *testing.T) {
	ctx, st := suite.New(t)

	checkScoreRepository(ctx, t, func(t *testing.T) ScoreRepository {
		return NewScoreRepository(st.Storage, st.Prefix(t), "session")
	})
}

func TestScoreRepository_Redis_Sessions(t *testing.T) {
	ctx, st := suite.New(t)
	players := testPlayers(t)

	t.Run("Sessions under one prefix are kept apart", func(t *testing.T) {
		// Given: two sessions sharing a prefix
		first := NewScoreRepository(st.Storage, "scores", "first")
		second := NewScoreRepository(st.Storage, "scores", "second")

		// When: only the first session records rounds, reusing a round ID in the second
		require.NoError(t, first.Add(ctx, "r1", entity.WinnerState(players[0])))
		require.NoError(t, first.Add(ctx, "r2", entity.DrawState()))
		require.NoError(t, second.Add(ctx, "r1", entity.WinnerState(players[1])))

		// Then: each session sees only its own tally
		standings, err := first.Standings(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.Standings{XWins: 1, Draws: 1}, standings)

		standings, err = second.Standings(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.Standings{OWins: 1}, standings)
	})

	t.Run("Session keys expire", func(t *testing.T) {
		// Given: a session with one recorded round
		repo := NewScoreRepository(st.Storage, "ttl", "session")
		require.NoError(t, repo.Add(ctx, "r1", entity.DrawState()))

		// Then: both the tally and the round mark carry a TTL
		score := repo.(*dbScore)
		for _, key := range []string{score.standingsKey(), score.roundKey("r1")} {
			ttl, err := st.Storage.TTL(ctx, key).Result()
			require.NoError(t, err)
			assert.Positive(t, ttl, key)
		}
	})

	t.Run("Failed count can be retried", func(t *testing.T) {
		// Given: the tally key holds a value of the wrong type, so incrementing fails
		repo := NewScoreRepository(st.Storage, "retry", "session")
		standingsKey := repo.(*dbScore).standingsKey()
		require.NoError(t, st.Storage.Set(ctx, standingsKey, "broken", 0).Err())

		// When: the round is added, the key repaired and the round added again
		require.Error(t, repo.Add(ctx, "r1", entity.DrawState()))
		require.NoError(t, st.Storage.Del(ctx, standingsKey).Err())
		require.NoError(t, repo.Add(ctx, "r1", entity.DrawState()))

		// Then: the round was counted exactly once
		standings, err := repo.Standings(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.Standings{Draws: 1}, standings)
	})
}
