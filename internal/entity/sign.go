package entity

// Sign is the marker occupying a board cell.
type Sign uint8

const (
	Empty Sign = iota
	X
	O
)

func (that Sign) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "-"
	}
}
