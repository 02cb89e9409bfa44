package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 6, 7)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 12, 12, true},
		{"top-left corner", 10, 10, true},
		{"right edge (exclusive)", 16, 12, false},
		{"bottom edge (exclusive)", 12, 17, false},
		{"left of box", 9, 12, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(1, 2, 3, 4).Translate(5, -1)
	if r != NewRect(6, 1, 3, 4) {
		t.Errorf("Translate() = %+v", r)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionUndo)
	f.Click(3, 4)
	if !f.Has(ActionUndo) || f.Has(ActionSkip) {
		t.Error("Has() mismatch")
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (Click{X: 3, Y: 4}) {
		t.Errorf("Clicks = %+v", f.Clicks)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if ActionToggleUnlimited.String() != "ToggleUnlimited" || Action(99).String() != "Unknown" {
		t.Error("Action.String() mismatch")
	}
}
