package tictactoe

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// BoardView is the read-only side of the board handed to presenters.
type BoardView interface {
	Size() int
	Field() [][]entity.Sign
	Cell(row, col int) (entity.Sign, bool)
	State() entity.State
	ActivePlayer() entity.Player
	EmptyCells() int
}

// Presenter renders the board and turns user input into events.
type Presenter interface {
	Render(board BoardView)
	PollEvent(board BoardView) Event
}

// Driver is implemented by presenters that must own the main loop themselves.
// Drive calls step once per iteration until it reports false or an error.
type Driver interface {
	Drive(step func() (bool, error)) error
}

// ResultRecorder receives every round that reaches a terminal state, once per round.
type ResultRecorder interface {
	RecordResult(ctx context.Context, roundID string, state entity.State) error
}
