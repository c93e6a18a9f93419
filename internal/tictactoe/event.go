package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

// EventKind tags an abstract input event.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventQuit
	EventPoint
	EventRestart
)

// Event is what a presenter hands back to the controller. Row and Col are only set for EventPoint.
type Event struct {
	Kind EventKind
	Row  int
	Col  int
}

func None() Event {
	return Event{Kind: EventNone}
}

func Quit() Event {
	return Event{Kind: EventQuit}
}

func Restart() Event {
	return Event{Kind: EventRestart}
}

func Point(row, col int) Event {
	return Event{Kind: EventPoint, Row: row, Col: col}
}

func (that Event) String() string {
	switch that.Kind {
	case EventQuit:
		return "quit"
	case EventRestart:
		return "restart"
	case EventPoint:
		return fmt.Sprintf("point(%d,%d)", that.Row, that.Col)
	default:
		return "none"
	}
}

// Mode selects the presentation at startup.
type Mode string

const (
	ModeText      Mode = "text"
	ModeGraphical Mode = "graphical"
)

// ParseMode - accepts "text"/"cli" and "graphical"/"gui", case-insensitive.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "text", "cli", "":
		return ModeText, nil
	case "graphical", "gui":
		return ModeGraphical, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}
}
