// internal/input/action.go
package input

// Action represents an operation the viewer performs in response to a key.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit

	// --- Scrolling ---
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionPageUp
	ActionPageDown
	ActionTop
	ActionBottom

	ActionCopy
)

var actionNames = map[Action]string{
	ActionUnknown:     "unknown",
	ActionQuit:        "quit",
	ActionScrollUp:    "scroll-up",
	ActionScrollDown:  "scroll-down",
	ActionScrollLeft:  "scroll-left",
	ActionScrollRight: "scroll-right",
	ActionPageUp:      "page-up",
	ActionPageDown:    "page-down",
	ActionTop:         "top",
	ActionBottom:      "bottom",
	ActionCopy:        "copy",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent is a decoded key event.
type ActionEvent struct {
	Action Action
	Rune   rune
}
