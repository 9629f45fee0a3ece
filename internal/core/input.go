package core

// Action is a semantic player intent, decoupled from the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Move cursor up
	ActionDown           // Move cursor down
	ActionLeft           // Move cursor left
	ActionRight          // Move cursor right
	ActionSelect1        // Pick offered slot 1
	ActionSelect2        // Pick offered slot 2
	ActionSelect3        // Pick offered slot 3
	ActionCycle          // Select the next offered block
	ActionRotate         // Rotate the selected block
	ActionPlace          // Drop the selected block at the cursor
	ActionNewGame        // Start over
	ActionHelp           // Toggle the how-to-play overlay
	ActionBack           // Return to the menu
	ActionQuit           // Exit
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionSelect1: "Select1",
	ActionSelect2: "Select2",
	ActionSelect3: "Select3",
	ActionCycle:   "Cycle",
	ActionRotate:  "Rotate",
	ActionPlace:   "Place",
	ActionNewGame: "NewGame",
	ActionHelp:    "Help",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// SlotAction returns the select action for a zero-based offered slot.
func SlotAction(slot int) Action {
	switch slot {
	case 0:
		return ActionSelect1
	case 1:
		return ActionSelect2
	case 2:
		return ActionSelect3
	default:
		return ActionNone
	}
}

// Pointer is a mouse event in screen cells.
type Pointer struct {
	X, Y  int
	Click bool // Left button released; false means hover only
}

// InputFrame collects everything the player did during one frame.
type InputFrame struct {
	Actions map[Action]bool
	Pointer *Pointer // nil when the mouse did nothing
}

// NewInputFrame creates an empty frame.
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

// Point records a mouse position, optionally with a click. A click already
// pending in the frame is kept; later hovers do not replace it.
func (f *InputFrame) Point(x, y int, click bool) {
	if f.Pointer != nil && f.Pointer.Click && !click {
		return
	}
	f.Pointer = &Pointer{X: x, Y: y, Click: click}
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return f.Pointer == nil
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Pointer = nil
}
