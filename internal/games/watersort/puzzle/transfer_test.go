package puzzle

import (
	"errors"
	"testing"
)

func TestCanTransfer(t *testing.T) {
	s := mustCompose(4,
		[]Color{R, G, G},    // 0: top green run of 2
		[]Color{B, G},       // 1: top green
		[]Color{R, R, R, R}, // 2: full
		nil,                 // 3: empty
		[]Color{Y},          // 4: top yellow
	)

	tests := []struct {
		name     string
		from, to int
		want     bool
	}{
		{"same container", 0, 0, false},
		{"matching tops", 0, 1, true},
		{"into empty", 4, 3, true},
		{"from empty", 3, 0, false},
		{"into full", 1, 2, false},
		{"mismatched tops", 4, 0, false},
		{"source out of range", -1, 0, false},
		{"destination out of range", 0, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransfer(s, tc.from, tc.to); got != tc.want {
				t.Errorf("CanTransfer(%d, %d) = %v, expected %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestTransferMovesMinOfRunAndSpace(t *testing.T) {
	tests := []struct {
		name    string
		src     []Color
		dst     []Color
		moved   int
		wantSrc []Color
		wantDst []Color
	}{
		{
			name:    "whole run fits",
			src:     []Color{R, G, G},
			dst:     []Color{B, G},
			moved:   2,
			wantSrc: []Color{R},
			wantDst: []Color{B, G, G, G},
		},
		{
			name:    "run larger than free space",
			src:     []Color{G, G, G},
			dst:     []Color{B, B, G},
			moved:   1,
			wantSrc: []Color{G, G},
			wantDst: []Color{B, B, G, G},
		},
		{
			name:    "into empty",
			src:     []Color{Y, R, R, R},
			dst:     nil,
			moved:   3,
			wantSrc: []Color{Y},
			wantDst: []Color{R, R, R},
		},
		{
			name:    "single token",
			src:     []Color{M},
			dst:     []Color{M},
			moved:   1,
			wantSrc: nil,
			wantDst: []Color{M, M},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := mustCompose(4, tc.src, tc.dst, nil)
			before := s.Clone()

			next, moved, err := Transfer(s, 0, 1)
			if err != nil {
				t.Fatalf("Transfer() failed: %v", err)
			}
			if moved != tc.moved {
				t.Errorf("moved = %d, expected %d", moved, tc.moved)
			}

			want := mustCompose(4, tc.wantSrc, tc.wantDst, nil)
			if !next.Equal(want) {
				t.Errorf("Transfer() result:\n%s\nexpected:\n%s", next, want)
			}
			if !countsEqual(s.TokenCounts(), next.TokenCounts()) {
				t.Error("Transfer() changed token counts")
			}
			if !s.Equal(before) {
				t.Error("Transfer() mutated its input")
			}
		})
	}
}

func TestTransferIllegal(t *testing.T) {
	s := mustCompose(4, []Color{R}, []Color{G}, nil)

	next, moved, err := Transfer(s, 0, 1)
	if !errors.Is(err, ErrIllegalTransfer) {
		t.Fatalf("Transfer() error = %v, expected ErrIllegalTransfer", err)
	}
	if next != nil || moved != 0 {
		t.Errorf("Transfer() = (%v, %d), expected (nil, 0)", next, moved)
	}
}

// Default parameters with a scripted shuffle: 8 containers, 6 full, 2 empty.
func TestCanTransferScenarioMatrix(t *testing.T) {
	p := DefaultParams()
	s, err := NewState(p, layoutShuffler{want: flatten(scenarioLayout), palette: p.Palette, capacity: p.Capacity})
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}

	// Every filled container is full, so only pours into the two empties are legal.
	for from := 0; from < s.Len(); from++ {
		for to := 0; to < s.Len(); to++ {
			want := from < 6 && to >= 6
			if got := CanTransfer(s, from, to); got != want {
				t.Errorf("initial CanTransfer(%d, %d) = %v, expected %v", from, to, got, want)
			}
		}
	}

	// Pour yellow from 0 into 6: 0 now shows blue, 6 shows yellow.
	s, moved, err := Transfer(s, 0, 6)
	if err != nil || moved != 1 {
		t.Fatalf("Transfer(0, 6) = (%d, %v), expected (1, nil)", moved, err)
	}

	legal := map[[2]int]bool{
		{1, 6}: true, // yellow onto yellow
		{4, 0}: true, // blue onto blue
	}
	for from := 0; from < 6; from++ {
		legal[[2]int{from, 7}] = true
	}
	legal[[2]int{6, 7}] = true
	legal[[2]int{6, 0}] = false // yellow onto blue

	for from := 0; from < s.Len(); from++ {
		for to := 0; to < s.Len(); to++ {
			want := legal[[2]int{from, to}]
			if got := CanTransfer(s, from, to); got != want {
				t.Errorf("after pour CanTransfer(%d, %d) = %v, expected %v", from, to, got, want)
			}
		}
	}
}

func TestTransferConservesTokens(t *testing.T) {
	s, err := NewState(DefaultParams(), reverseShuffler{})
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	want := s.TokenCounts()

	// Pour greedily until nothing is legal or a fixed budget runs out.
	for step := 0; step < 50; step++ {
		poured := false
		for from := 0; from < s.Len() && !poured; from++ {
			for to := 0; to < s.Len() && !poured; to++ {
				if CanTransfer(s, from, to) {
					next, _, err := Transfer(s, from, to)
					if err != nil {
						t.Fatalf("Transfer(%d, %d) failed: %v", from, to, err)
					}
					s = next
					poured = true
				}
			}
		}
		if !poured {
			break
		}
		if !countsEqual(want, s.TokenCounts()) {
			t.Fatalf("token counts changed at step %d", step)
		}
		for i := range s.Containers {
			if s.Containers[i].Len() > s.Containers[i].Capacity {
				t.Fatalf("container %d over capacity at step %d", i, step)
			}
		}
	}
}
