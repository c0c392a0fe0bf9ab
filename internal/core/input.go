package core

// Action represents a semantic action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left while held
	ActionRight          // D, Right arrow - move right while held
	ActionJump           // Space, W, Up - jump (edge-triggered)
	ActionStart          // Enter - start from the title screen
	ActionRestart        // R - restart after game over
	ActionPause          // P, Escape - pause/unpause
	ActionScores         // S - open the scoreboard
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is the per-step input handed to the simulation.
// MoveLeft and MoveRight are levels (held); JumpRequested is an edge and
// must be true for at most one step per physical key press.
type Input struct {
	MoveLeft      bool
	MoveRight     bool
	JumpRequested bool
}
