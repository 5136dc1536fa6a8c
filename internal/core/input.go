package core

// Action represents a semantic player command, abstracted from physical key presses.
// The shell maps keys to actions and actions to simulation commands.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, W, Up - start a jump
	ActionDuck              // S, Down - start (or keep) ducking
	ActionRestart           // R - new run after game over
	ActionPause             // P, Escape - pause/unpause the tick loop
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - dump the current frame
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
