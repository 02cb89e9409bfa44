package watersort

import (
	"testing"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/puzzle"
)

func TestHistory(t *testing.T) {
	var h History
	if _, ok := h.Pop(); ok {
		t.Error("Pop() on empty history should fail")
	}

	a, _ := puzzle.Compose(4, []puzzle.Color{puzzle.ColorRed})
	b, _ := puzzle.Compose(4, nil)
	h.Push(MoveTransfer, a)
	h.Push(MoveAddContainer, b)

	rec, ok := h.Pop()
	if !ok || rec.Kind != MoveAddContainer || rec.Snapshot != b {
		t.Errorf("Pop() = %+v, expected add-container record", rec)
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", h.Len())
	}

	h.Clear()
	if h.Len() != 0 {
		t.Error("Clear() should empty the log")
	}
	if MoveRemoveContainer.String() != "remove container" {
		t.Errorf("String() = %q", MoveRemoveContainer.String())
	}
}
