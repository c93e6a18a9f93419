package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

// frameInput is the input captured during one frame.
type frameInput struct {
	closing bool
	escape  bool
	restart bool
	clicked bool
	x       int
	y       int
}

func readFrameInput() frameInput {
	x, y := ebiten.CursorPosition()

	return frameInput{
		closing: ebiten.IsWindowBeingClosed(),
		escape:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		x:       x,
		y:       y,
	}
}

// eventFor maps a frame's input to an event. Quit beats Restart, which beats a click.
func (that *Presenter) eventFor(board tictactoe.BoardView, in frameInput) tictactoe.Event {
	if in.closing || in.escape {
		return tictactoe.Quit()
	}

	if in.restart {
		return tictactoe.Restart()
	}

	if !in.clicked {
		return tictactoe.None()
	}

	if board.State().IsTerminal() {
		return tictactoe.Restart()
	}

	row, col, ok := newGeometry(that.width, that.height, board.Size()).cellAt(in.x, in.y)
	if !ok {
		return tictactoe.None()
	}

	return tictactoe.Point(row, col)
}
