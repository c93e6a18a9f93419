package entity

import "fmt"

// Board is the square game field. It owns both players and tracks whose turn it is by index,
// so the players' active flags can never disagree with each other.
type Board struct {
	cells   [][]Sign
	players [2]Player
	turn    int
}

// NewBoard - creates an empty size×size board with the first player active.
func NewBoard(size int, players [2]Player) *Board {
	if size < 1 {
		panic(fmt.Sprintf("board size must be positive, got %d", size))
	}

	cells := make([][]Sign, size)
	for row := range cells {
		cells[row] = make([]Sign, size)
	}

	board := &Board{
		cells:   cells,
		players: players,
	}
	board.syncTurn()

	return board
}

// PlaceMark - writes the active player's sign into the cell and passes the turn.
// Moves after a win, outside the grid or onto an occupied cell are ignored.
// The turn does not pass on a winning move, so the active player is the winner.
func (that *Board) PlaceMark(row, col int) bool {
	if that.HasWinner() {
		return false
	}

	if !that.inBounds(row, col) {
		return false
	}

	if that.cells[row][col] != Empty {
		return false
	}

	that.cells[row][col] = that.ActivePlayer().Sign()

	if that.HasWinner() {
		return true
	}

	that.turn = 1 - that.turn
	that.syncTurn()

	return true
}

// HasWinner reports whether any row, column or main diagonal is filled with one sign.
func (that *Board) HasWinner() bool {
	size := len(that.cells)

	for row := 0; row < size; row++ {
		if isWinningLine(that.cells[row]) {
			return true
		}
	}

	column := make([]Sign, size)
	for col := 0; col < size; col++ {
		for row := 0; row < size; row++ {
			column[row] = that.cells[row][col]
		}
		if isWinningLine(column) {
			return true
		}
	}

	topLeftBottomRight := make([]Sign, size)
	bottomLeftTopRight := make([]Sign, size)
	for i := 0; i < size; i++ {
		topLeftBottomRight[i] = that.cells[i][i]
		bottomLeftTopRight[i] = that.cells[size-i-1][i]
	}

	return isWinningLine(topLeftBottomRight) || isWinningLine(bottomLeftTopRight)
}

// IsDraw reports a full board. It does not look for a winner; State does that first.
func (that *Board) IsDraw() bool {
	return that.EmptyCells() == 0
}

// State derives the game state from the grid.
func (that *Board) State() State {
	if that.HasWinner() {
		return WinnerState(that.ActivePlayer())
	}

	if that.IsDraw() {
		return DrawState()
	}

	return PlayingState()
}

func (that *Board) ActivePlayer() Player {
	return that.players[that.turn]
}

func (that *Board) Players() [2]Player {
	return that.players
}

func (that *Board) Size() int {
	return len(that.cells)
}

// Field returns a copy of the grid, indexed [row][col].
func (that *Board) Field() [][]Sign {
	field := make([][]Sign, len(that.cells))
	for row := range that.cells {
		field[row] = append([]Sign(nil), that.cells[row]...)
	}

	return field
}

// Cell returns the sign at row, col; ok is false outside the grid.
func (that *Board) Cell(row, col int) (Sign, bool) {
	if !that.inBounds(row, col) {
		return Empty, false
	}

	return that.cells[row][col], true
}

func (that *Board) EmptyCells() int {
	count := 0
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == Empty {
				count++
			}
		}
	}

	return count
}

func (that *Board) inBounds(row, col int) bool {
	size := len(that.cells)
	return row >= 0 && row < size && col >= 0 && col < size
}

func (that *Board) syncTurn() {
	for i := range that.players {
		if i == that.turn {
			that.players[i].Activate()
		} else {
			that.players[i].Deactivate()
		}
	}
}

// isWinningLine checks for all X or all O; a line of Empty never wins.
func isWinningLine(line []Sign) bool {
	return isUniform(line, X) || isUniform(line, O)
}

func isUniform(line []Sign, sign Sign) bool {
	for _, cell := range line {
		if cell != sign {
			return false
		}
	}

	return true
}
