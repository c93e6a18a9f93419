package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

const (
	quitCommand    = "q"
	restartCommand = "r"
)

const (
	promptRow     = "Type in the row."
	promptColumn  = "Type in the column."
	promptNumber  = "Type in a number."
	promptNewGame = "Press enter to play again or type q to quit."
)

// Presenter is the line based text interface. Coordinates are zero based.
type Presenter struct {
	ctx    context.Context
	logger *slog.Logger
	reader *bufio.Reader
	out    io.Writer

	lines chan string
	start sync.Once
}

// New - creates a text presenter reading commands from in and printing the board to out.
// Once ctx is done every pending or future read yields Quit.
func New(ctx context.Context, logger *slog.Logger, in io.Reader, out io.Writer) *Presenter {
	return &Presenter{
		ctx:    ctx,
		logger: logger.With("component", "console"),
		reader: bufio.NewReader(in),
		out:    out,
		lines:  make(chan string),
	}
}

// Render - prints the grid followed by the status line.
func (that *Presenter) Render(board tictactoe.BoardView) {
	var sb strings.Builder

	for _, row := range board.Field() {
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	state := board.State()
	switch {
	case state.HasWinner():
		fmt.Fprintf(&sb, "%s has won!\n\n", state.Winner.Sign())
	case state.IsDraw():
		sb.WriteString("It's a draw!\n\n")
	default:
		fmt.Fprintf(&sb, "It's %s's turn.\n", board.ActivePlayer().Sign())
	}

	that.write(sb.String())
}

// PollEvent - blocks until a full command was typed in.
func (that *Presenter) PollEvent(board tictactoe.BoardView) tictactoe.Event {
	if board.State().IsTerminal() {
		return that.pollAfterRound()
	}

	that.println(promptRow)
	row, event, ok := that.readNumber()
	if !ok {
		return event
	}

	that.println(promptColumn)
	col, event, ok := that.readNumber()
	if !ok {
		return event
	}

	that.println("")

	return tictactoe.Point(row, col)
}

func (that *Presenter) pollAfterRound() tictactoe.Event {
	that.println(promptNewGame)

	line, err := that.readLine()
	if err != nil || strings.EqualFold(line, quitCommand) {
		return tictactoe.Quit()
	}

	return tictactoe.Restart()
}

// readNumber returns false together with the event to hand back when the line was a command or input ended.
func (that *Presenter) readNumber() (int, tictactoe.Event, bool) {
	for {
		line, err := that.readLine()
		if err != nil {
			return 0, tictactoe.Quit(), false
		}

		switch strings.ToLower(line) {
		case quitCommand:
			return 0, tictactoe.Quit(), false
		case restartCommand:
			return 0, tictactoe.Restart(), false
		}

		number, err := strconv.Atoi(line)
		if err != nil || number < 0 {
			that.println(promptNumber)
			continue
		}

		return number, tictactoe.None(), true
	}
}

func (that *Presenter) readLine() (string, error) {
	that.start.Do(func() {
		go that.scan()
	})

	select {
	case <-that.ctx.Done():
		return "", fmt.Errorf("input canceled: %w", that.ctx.Err())
	case line, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

// scan feeds lines until input ends. It runs at most one line ahead of the reader.
func (that *Presenter) scan() {
	defer close(that.lines)

	for {
		line, err := that.reader.ReadString('\n')
		if line != "" || err == nil {
			select {
			case that.lines <- strings.TrimSpace(line):
			case <-that.ctx.Done():
				return
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				that.logger.Error("failed to read input", "error", err)
			}
			return
		}
	}
}

func (that *Presenter) println(line string) {
	that.write(line + "\n")
}

func (that *Presenter) write(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Debug("failed to write output", "error", err)
	}
}
