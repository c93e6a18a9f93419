package entity

import "fmt"

// Standings is the tally of finished rounds.
type Standings struct {
	XWins int64
	OWins int64
	Draws int64
}

func (that Standings) Rounds() int64 {
	return that.XWins + that.OWins + that.Draws
}

func (that Standings) String() string {
	return fmt.Sprintf("X %d, O %d, draws %d", that.XWins, that.OWins, that.Draws)
}
