package entity

// Outcome tags the derived game state.
type Outcome uint8

const (
	Playing Outcome = iota
	Draw
	Won
)

func (that Outcome) String() string {
	switch that {
	case Draw:
		return "draw"
	case Won:
		return "won"
	default:
		return "playing"
	}
}

// State is computed from the board on demand. Winner is only meaningful when Outcome is Won.
type State struct {
	Outcome Outcome
	Winner  Player
}

func PlayingState() State {
	return State{Outcome: Playing}
}

func DrawState() State {
	return State{Outcome: Draw}
}

func WinnerState(player Player) State {
	return State{Outcome: Won, Winner: player}
}

func (that State) IsPlaying() bool {
	return that.Outcome == Playing
}

func (that State) IsDraw() bool {
	return that.Outcome == Draw
}

func (that State) HasWinner() bool {
	return that.Outcome == Won
}

// IsTerminal reports whether no further marks are accepted until restart.
func (that State) IsTerminal() bool {
	return that.Outcome != Playing
}

func (that State) String() string {
	if that.HasWinner() {
		return "winner " + that.Winner.Sign().String()
	}

	return that.Outcome.String()
}
