package game

import "github.com/gdamore/tcell/v2"

// ActionKind is what a key press asks the game to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionExit
	ActionToggleFullscreen
	ActionMove
)

// String returns the action name.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionExit:
		return "exit"
	case ActionToggleFullscreen:
		return "toggle_fullscreen"
	case ActionMove:
		return "move"
	default:
		return "unknown"
	}
}

// Action is a classified key press. DX and DY are set for ActionMove.
type Action struct {
	Kind   ActionKind
	DX, DY int
}

func move(dx, dy int) Action {
	return Action{Kind: ActionMove, DX: dx, DY: dy}
}

// Classify maps a key event to an action.
func Classify(ev *tcell.EventKey) Action {
	if ev == nil {
		return Action{}
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return Action{Kind: ActionToggleFullscreen}
		}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: ActionExit}

	case tcell.KeyUp:
		return move(0, -1)
	case tcell.KeyDown:
		return move(0, 1)
	case tcell.KeyLeft:
		return move(-1, 0)
	case tcell.KeyRight:
		return move(1, 0)
	}
	return Action{}
}
