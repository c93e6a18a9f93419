package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

func TestNewPlayer(t *testing.T) {
	t.Run("Creates valid players", func(t *testing.T) {
		// When: players 1 and 2 are created
		first, err := NewPlayer(1)
		require.NoError(t, err)

		second, err := NewPlayer(2)
		require.NoError(t, err)

		// Then: player 1 plays X, player 2 plays O and both start inactive
		assert.Equal(t, X, first.Sign())
		assert.Equal(t, O, second.Sign())
		assert.Equal(t, 1, first.Number())
		assert.Equal(t, 2, second.Number())
		assert.False(t, first.IsActive())
		assert.False(t, second.IsActive())
	})

	t.Run("Rejects numbers other than 1 and 2", func(t *testing.T) {
		for _, number := range []int{-1, 0, 3, 255} {
			// When: a player is created with an illegal number
			player, err := NewPlayer(number)

			// Then: ErrInvalidPlayerNumber is returned with a zero player
			require.ErrorIs(t, err, apperror.ErrInvalidPlayerNumber)
			assert.Equal(t, Player{}, player)
		}
	})
}

func TestPlayer_ActivateDeactivate(t *testing.T) {
	// Given: a fresh player
	player, err := NewPlayer(1)
	require.NoError(t, err)
	assert.False(t, player.IsActive())

	// When: the player is activated
	player.Activate()

	// Then: the flag is set
	assert.True(t, player.IsActive())

	// When: the player is deactivated
	player.Deactivate()

	// Then: the flag is cleared
	assert.False(t, player.IsActive())
}

func TestNewPlayers(t *testing.T) {
	// When: a pair is created for a round
	players, err := NewPlayers()

	// Then: it holds player 1 then player 2
	require.NoError(t, err)
	assert.Equal(t, X, players[0].Sign())
	assert.Equal(t, O, players[1].Sign())
}

func TestSign_String(t *testing.T) {
	assert.Equal(t, "X", X.String())
	assert.Equal(t, "O", O.String())
	assert.Equal(t, "-", Empty.String())
}
