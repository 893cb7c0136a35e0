package core

import "strings"

// Action is a semantic game action, abstracted from physical key presses,
// mouse clicks and network messages.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionPause          // P, Space, mouse click
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
)

var actionNames = [...]string{
	ActionNone:    "none",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionPause:   "pause",
	ActionRestart: "restart",
	ActionQuit:    "quit",
}

// String returns the lower-case wire name of the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// IsMove reports whether the action requests a direction change.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// ParseAction maps a wire name back to an Action. Matching ignores case.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if i != int(ActionNone) && n == name {
			return Action(i), true
		}
	}
	return ActionNone, false
}
