package window

const (
	statusHeight = 40
	margin       = 20
)

// geometry maps board cells to screen pixels. The board is a square centered below the status bar.
type geometry struct {
	originX int
	originY int
	cell    int
	size    int
}

func newGeometry(width, height, size int) geometry {
	side := min(width-2*margin, height-statusHeight-2*margin)
	if side < size {
		side = size
	}

	cell := side / size
	side = cell * size

	return geometry{
		originX: (width - side) / 2,
		originY: statusHeight + margin,
		cell:    cell,
		size:    size,
	}
}

// cellAt returns the cell under the pixel, or false when the pixel is outside the board.
func (that geometry) cellAt(x, y int) (int, int, bool) {
	if x < that.originX || y < that.originY {
		return 0, 0, false
	}

	col := (x - that.originX) / that.cell
	row := (y - that.originY) / that.cell
	if row >= that.size || col >= that.size {
		return 0, 0, false
	}

	return row, col, true
}

func (that geometry) side() int {
	return that.cell * that.size
}

// center returns the pixel center of a cell.
func (that geometry) center(row, col int) (float32, float32) {
	half := float32(that.cell) / 2

	return float32(that.originX+col*that.cell) + half, float32(that.originY+row*that.cell) + half
}
