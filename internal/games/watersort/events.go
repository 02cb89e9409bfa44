package watersort

import "time"

// Event is emitted by a Session after a state change.
// The set of events is closed; switch on the concrete type.
type Event interface {
	sessionEvent()
}

// LevelStarted is emitted when a fresh shuffle is dealt.
type LevelStarted struct {
	Level int
}

func (LevelStarted) sessionEvent() {}

// TransferCompleted is emitted after a legal pour.
type TransferCompleted struct {
	From, To int
	Units    int
}

func (TransferCompleted) sessionEvent() {}

// LevelWon is emitted once per completed level.
type LevelWon struct {
	Level          int
	Stars          int
	Moves          int
	ElapsedSeconds int
	Improved       bool
	SkipAwarded    bool
	At             time.Time
}

func (LevelWon) sessionEvent() {}

// LevelSkipped is emitted when the player skips a level.
type LevelSkipped struct {
	Level          int
	Unlimited      bool
	Remaining      int
	Moves          int
	ElapsedSeconds int
	At             time.Time
}

func (LevelSkipped) sessionEvent() {}

// UndoPerformed is emitted after a successful undo.
type UndoPerformed struct {
	Kind MoveKind
}

func (UndoPerformed) sessionEvent() {}

// ContainersChanged is emitted when a container is added or removed.
type ContainersChanged struct {
	Count int
}

func (ContainersChanged) sessionEvent() {}

// UnlimitedSkipsToggled is emitted when unlimited skips flip.
type UnlimitedSkipsToggled struct {
	Enabled bool
}

func (UnlimitedSkipsToggled) sessionEvent() {}

// ProgressReset is emitted after all progress is wiped.
type ProgressReset struct{}

func (ProgressReset) sessionEvent() {}

// SetCompleted is emitted when the player moves past the last level.
type SetCompleted struct {
	Level int
}

func (SetCompleted) sessionEvent() {}
