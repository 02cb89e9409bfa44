package core

// Action is a semantic input, decoupled from the physical key or button.
type Action int

const (
	ActionNone            Action = iota
	ActionLeft                   // Left, H, A - move the cursor left
	ActionRight                  // Right, L, D - move the cursor right
	ActionSelect                 // Space, Enter - pick or pour at the cursor
	ActionUndo                   // U, Backspace
	ActionSkip                   // S
	ActionToggleUnlimited        // I - unlimited skips on/off
	ActionAddContainer           // +
	ActionRemoveContainer        // -
	ActionRestart                // R - new shuffle of the same level
	ActionNext                   // N - next level after a win
	ActionBack                   // Esc - leave the level
	ActionQuit                   // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:            "None",
	ActionLeft:            "Left",
	ActionRight:           "Right",
	ActionSelect:          "Select",
	ActionUndo:            "Undo",
	ActionSkip:            "Skip",
	ActionToggleUnlimited: "ToggleUnlimited",
	ActionAddContainer:    "AddContainer",
	ActionRemoveContainer: "RemoveContainer",
	ActionRestart:         "Restart",
	ActionNext:            "Next",
	ActionBack:            "Back",
	ActionQuit:            "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Click is a mouse press in screen cells.
type Click struct {
	X, Y int
}

// InputFrame collects everything the player did between two updates.
type InputFrame struct {
	Actions map[Action]bool
	Clicks  []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a mouse press.
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Empty returns true if nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
