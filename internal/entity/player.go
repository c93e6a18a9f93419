package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

const (
	FirstPlayer  = 1
	SecondPlayer = 2
)

// Player is one of the two competitors. The sign is derived from the number and never changes.
type Player struct {
	number int
	sign   Sign
	active bool
}

// NewPlayer - creates an inactive player; only numbers 1 and 2 are legal.
func NewPlayer(number int) (Player, error) {
	switch number {
	case FirstPlayer:
		return Player{number: number, sign: X}, nil
	case SecondPlayer:
		return Player{number: number, sign: O}, nil
	default:
		return Player{}, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayerNumber, number)
	}
}

// NewPlayers - creates the pair for a fresh round, player 1 first.
func NewPlayers() ([2]Player, error) {
	first, err := NewPlayer(FirstPlayer)
	if err != nil {
		return [2]Player{}, fmt.Errorf("failed to create first player: %w", err)
	}

	second, err := NewPlayer(SecondPlayer)
	if err != nil {
		return [2]Player{}, fmt.Errorf("failed to create second player: %w", err)
	}

	return [2]Player{first, second}, nil
}

func (that Player) Number() int {
	return that.number
}

func (that Player) Sign() Sign {
	return that.sign
}

func (that Player) IsActive() bool {
	return that.active
}

func (that *Player) Activate() {
	that.active = true
}

func (that *Player) Deactivate() {
	that.active = false
}
