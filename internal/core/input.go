package core

// Action is a semantic game command, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionRotateCW
	ActionRotateCCW
	ActionDrop
	ActionPause
	ActionSpeedDown  // halve the game speed
	ActionSpeedReset // back to normal speed
	ActionSpeedUp    // double the game speed
	ActionConfirm
	ActionBack
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:       "None",
	ActionLeft:       "Left",
	ActionRight:      "Right",
	ActionRotateCW:   "RotateCW",
	ActionRotateCCW:  "RotateCCW",
	ActionDrop:       "Drop",
	ActionPause:      "Pause",
	ActionSpeedDown:  "SpeedDown",
	ActionSpeedReset: "SpeedReset",
	ActionSpeedUp:    "SpeedUp",
	ActionConfirm:    "Confirm",
	ActionBack:       "Back",
	ActionQuit:       "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame collects the actions triggered since the last frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Axis returns +1, -1 or 0 from a pair of opposing actions.
func (f InputFrame) Axis(negative, positive Action) int {
	v := 0
	if f.Has(negative) {
		v--
	}
	if f.Has(positive) {
		v++
	}
	return v
}
