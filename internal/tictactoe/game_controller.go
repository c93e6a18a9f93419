package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/pkg"
)

const DefaultBoardSize = 3

type Option func(*Game)

// WithBoardSize sets the size of every board the game creates.
func WithBoardSize(size int) Option {
	return func(that *Game) {
		that.size = size
	}
}

// WithRecorder attaches a recorder for finished rounds.
func WithRecorder(recorder ResultRecorder) Option {
	return func(that *Game) {
		that.recorder = recorder
	}
}

// Game is the controller: it owns the board and drives the presenter.
type Game struct {
	logger    *slog.Logger
	presenter Presenter
	recorder  ResultRecorder

	size     int
	board    *entity.Board
	roundID  string
	recorded bool
}

// NewGame - creates the controller with a fresh board.
func NewGame(logger *slog.Logger, presenter Presenter, opts ...Option) (*Game, error) {
	game := &Game{
		logger:    logger.With("component", "game"),
		presenter: presenter,
		size:      DefaultBoardSize,
	}

	for _, opt := range opts {
		opt(game)
	}

	if err := game.newRound(); err != nil {
		return nil, fmt.Errorf("failed to start round: %w", err)
	}

	return game, nil
}

// Run - renders the opening board and loops until the presenter yields Quit.
func (that *Game) Run(ctx context.Context) error {
	that.presenter.Render(that.board)

	if driver, ok := that.presenter.(Driver); ok {
		step := func() (bool, error) {
			return that.Step(ctx)
		}
		if err := driver.Drive(step); err != nil {
			return fmt.Errorf("presenter loop failed: %w", err)
		}
		return nil
	}

	for {
		more, err := that.Step(ctx)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Step - polls one event, applies it and renders. It reports false once Quit was received
// or ctx is done.
func (that *Game) Step(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		that.logger.Info("stopping", "round", that.roundID, "reason", err.Error())
		return false, nil
	}

	event := that.presenter.PollEvent(that.board)

	more, err := that.apply(ctx, event)
	if err != nil || !more {
		return false, err
	}

	that.presenter.Render(that.board)

	return true, nil
}

// Board exposes the current board read-only.
func (that *Game) Board() BoardView {
	return that.board
}

func (that *Game) RoundID() string {
	return that.roundID
}

func (that *Game) apply(ctx context.Context, event Event) (bool, error) {
	switch event.Kind {
	case EventQuit:
		that.logger.Info("quit requested", "round", that.roundID)
		return false, nil
	case EventPoint:
		that.placeMark(ctx, event.Row, event.Col)
	case EventRestart:
		if err := that.newRound(); err != nil {
			return false, fmt.Errorf("failed to restart: %w", err)
		}
	case EventNone:
	}

	return true, nil
}

func (that *Game) placeMark(ctx context.Context, row, col int) {
	log := that.logger.With("round", that.roundID, "row", row, "col", col)

	sign := that.board.ActivePlayer().Sign()
	if !that.board.PlaceMark(row, col) {
		log.Debug("move ignored", "state", that.board.State().String())
		return
	}

	log.Debug("mark placed", "sign", sign.String())

	state := that.board.State()
	if state.IsTerminal() && !that.recorded {
		that.recorded = true
		that.finishRound(ctx, state)
	}
}

func (that *Game) finishRound(ctx context.Context, state entity.State) {
	log := that.logger.With("round", that.roundID)
	log.Info("round finished", "result", state.String())

	if that.recorder == nil {
		return
	}

	if err := that.recorder.RecordResult(ctx, that.roundID, state); err != nil {
		log.Error("failed to record result", "error", err)
	}
}

func (that *Game) newRound() error {
	players, err := entity.NewPlayers()
	if err != nil {
		return fmt.Errorf("failed to create players: %w", err)
	}

	that.board = entity.NewBoard(that.size, players)
	that.roundID = pkg.GenerateRoundID()
	that.recorded = false

	that.logger.Info("round started", "round", that.roundID, "size", that.size)

	return nil
}
