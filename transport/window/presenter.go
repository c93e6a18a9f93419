package window

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

const (
	gridStroke = 4
	markStroke = 8
)

var (
	backgroundColor = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf0, A: 0xff}
	gridColor       = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	crossColor      = color.RGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}
	noughtColor     = color.RGBA{R: 0x29, G: 0x80, B: 0xb9, A: 0xff}
)

// snapshot is the last rendered board, painted on every frame.
type snapshot struct {
	field  [][]entity.Sign
	state  entity.State
	active entity.Player
}

// Presenter is the graphical interface. It owns the main loop through ebiten and hands each frame to the controller.
type Presenter struct {
	logger *slog.Logger

	title  string
	width  int
	height int

	view snapshot
	step func() (bool, error)
}

// New - creates a window presenter. The window opens on Drive.
func New(logger *slog.Logger, title string, width, height int) *Presenter {
	return &Presenter{
		logger: logger.With("component", "window"),
		title:  title,
		width:  width,
		height: height,
	}
}

// Drive - opens the window and runs step once per frame until it stops.
func (that *Presenter) Drive(step func() (bool, error)) error {
	that.step = step

	ebiten.SetWindowSize(that.width, that.height)
	ebiten.SetWindowTitle(that.title)
	ebiten.SetWindowClosingHandled(true)

	that.logger.Info("opening window", "title", that.title, "width", that.width, "height", that.height)

	if err := ebiten.RunGame(that); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("failed to run window: %w", err)
	}

	return nil
}

// Render - stores the board so the next frame paints it.
func (that *Presenter) Render(board tictactoe.BoardView) {
	that.view = snapshot{
		field:  board.Field(),
		state:  board.State(),
		active: board.ActivePlayer(),
	}
}

// PollEvent - translates this frame's input. It never blocks.
func (that *Presenter) PollEvent(board tictactoe.BoardView) tictactoe.Event {
	return that.eventFor(board, readFrameInput())
}

// Update implements ebiten.Game.
func (that *Presenter) Update() error {
	more, err := that.step()
	if err != nil {
		return err
	}

	if !more {
		return ebiten.Termination
	}

	return nil
}

// Draw implements ebiten.Game.
func (that *Presenter) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	ebitenutil.DebugPrintAt(screen, statusLine(that.view.state, that.view.active), margin, margin/2)

	size := len(that.view.field)
	if size == 0 {
		return
	}

	geo := newGeometry(that.width, that.height, size)
	drawGrid(screen, geo)

	for row, cells := range that.view.field {
		for col, sign := range cells {
			drawMark(screen, geo, row, col, sign)
		}
	}
}

// Layout implements ebiten.Game.
func (that *Presenter) Layout(_, _ int) (int, int) {
	return that.width, that.height
}

func statusLine(state entity.State, active entity.Player) string {
	switch {
	case state.HasWinner():
		return fmt.Sprintf("%s has won! Click to play again, Esc to quit.", state.Winner.Sign())
	case state.IsDraw():
		return "It's a draw! Click to play again, Esc to quit."
	default:
		return fmt.Sprintf("It's %s's turn.", active.Sign())
	}
}

func drawGrid(screen *ebiten.Image, geo geometry) {
	left := float32(geo.originX)
	top := float32(geo.originY)
	side := float32(geo.side())

	for i := 1; i < geo.size; i++ {
		offset := float32(i * geo.cell)
		vector.StrokeLine(screen, left+offset, top, left+offset, top+side, gridStroke, gridColor, true)
		vector.StrokeLine(screen, left, top+offset, left+side, top+offset, gridStroke, gridColor, true)
	}
}

func drawMark(screen *ebiten.Image, geo geometry, row, col int, sign entity.Sign) {
	cx, cy := geo.center(row, col)
	reach := float32(geo.cell) * 0.3

	switch sign {
	case entity.X:
		vector.StrokeLine(screen, cx-reach, cy-reach, cx+reach, cy+reach, markStroke, crossColor, true)
		vector.StrokeLine(screen, cx-reach, cy+reach, cx+reach, cy-reach, markStroke, crossColor, true)
	case entity.O:
		vector.StrokeCircle(screen, cx, cy, reach, markStroke, noughtColor, true)
	case entity.Empty:
	}
}
