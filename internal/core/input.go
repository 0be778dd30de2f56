package core

// Action represents a semantic player intent, abstracted from physical keys.
// Terminal and browser front ends both map their key events onto it.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, A, H
	ActionRight             // Right arrow, D, L
	ActionUp                // Up arrow, W, K
	ActionDown              // Down arrow, S, J
	ActionButton            // Enter, Space - start or restart
	ActionScreenshot        // Ctrl+S
	ActionQuit              // Q, Ctrl+C
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionButton:
		return "Button"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four directions.
func (a Action) IsMove() bool {
	return a >= ActionLeft && a <= ActionDown
}
