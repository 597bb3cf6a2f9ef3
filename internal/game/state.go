// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateRunning renders frames and waits for input.
	StateRunning State = iota
	// StateExiting ends the loop before the next frame.
	StateExiting
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}
