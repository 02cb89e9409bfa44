package puzzle

import (
	"errors"
	"testing"
)

func TestContainerPushPop(t *testing.T) {
	c := NewContainer(4)

	if _, err := c.Pop(); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("Pop() on empty = %v, expected ErrEmptyContainer", err)
	}

	for _, color := range []Color{R, G, G, B} {
		if err := c.Push(color); err != nil {
			t.Fatalf("Push(%v) failed: %v", color, err)
		}
	}

	if err := c.Push(Y); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Push() on full = %v, expected ErrCapacityExceeded", err)
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d after rejected push, expected 4", c.Len())
	}

	top, err := c.Pop()
	if err != nil || top != B {
		t.Errorf("Pop() = (%v, %v), expected (blue, nil)", top, err)
	}
	if c.TopRun() != 2 {
		t.Errorf("TopRun() = %d, expected 2", c.TopRun())
	}
}

func TestContainerSorted(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Color
		sorted bool
	}{
		{"empty", nil, true},
		{"full uniform", []Color{R, R, R, R}, true},
		{"full mixed", []Color{R, R, G, R}, false},
		{"partial uniform", []Color{R, R, R}, false},
		{"single token", []Color{B}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewContainer(4)
			c.Tokens = append(c.Tokens, tc.tokens...)
			if c.IsSorted() != tc.sorted {
				t.Errorf("IsSorted() = %v, expected %v", c.IsSorted(), tc.sorted)
			}
		})
	}
}

func TestContainerCloneIsIndependent(t *testing.T) {
	c := NewContainer(4)
	_ = c.Push(R)
	clone := c.Clone()
	_ = clone.Push(G)

	if c.Len() != 1 {
		t.Errorf("original Len() = %d after mutating clone, expected 1", c.Len())
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range DefaultPalette() {
		parsed, ok := ParseColor(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseColor(%q) = (%v, %v)", c.String(), parsed, ok)
		}
	}
	if _, ok := ParseColor("teal"); ok {
		t.Error("ParseColor(\"teal\") should fail")
	}
	if _, ok := ParsePalette([]string{"red", "nope"}); ok {
		t.Error("ParsePalette should reject unknown names")
	}
}
