package watersort

import "github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/puzzle"

// MoveKind tags an undoable action.
type MoveKind int

const (
	MoveTransfer MoveKind = iota
	MoveAddContainer
	MoveRemoveContainer
)

func (k MoveKind) String() string {
	switch k {
	case MoveTransfer:
		return "transfer"
	case MoveAddContainer:
		return "add container"
	case MoveRemoveContainer:
		return "remove container"
	default:
		return "unknown"
	}
}

// MoveRecord is the puzzle state captured before a mutating action.
type MoveRecord struct {
	Kind     MoveKind
	Snapshot *puzzle.State
}

// History is the undo log for the level in play.
type History struct {
	records []MoveRecord
}

// Push appends a record. The snapshot must not be mutated afterwards.
func (h *History) Push(kind MoveKind, snapshot *puzzle.State) {
	h.records = append(h.records, MoveRecord{Kind: kind, Snapshot: snapshot})
}

// Pop removes and returns the newest record.
func (h *History) Pop() (MoveRecord, bool) {
	if len(h.records) == 0 {
		return MoveRecord{}, false
	}
	last := h.records[len(h.records)-1]
	h.records[len(h.records)-1] = MoveRecord{}
	h.records = h.records[:len(h.records)-1]
	return last, true
}

// Len returns the number of undoable actions.
func (h *History) Len() int {
	return len(h.records)
}

// Clear drops every record.
func (h *History) Clear() {
	h.records = nil
}
