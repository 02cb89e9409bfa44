// Package puzzle implements the water sort puzzle core: containers, the
// transfer engine and the win/score evaluator.
// This package is UI-agnostic and deterministic given a Shuffler.
package puzzle

import (
	"fmt"
	"strings"
)

// Container count bounds while the player adds or removes empty containers.
const (
	MinContainers = 3
	MaxContainers = 12
)

// Params configures level generation.
type Params struct {
	Palette   []Color // Colors to draw from, in order
	NumColors int     // Distinct colors in play
	Capacity  int     // Slots per container
	Filled    int     // Containers filled at start
	Empty     int     // Empty containers at start
}

// DefaultParams returns the standard level layout: 6 colors in 6 full
// containers plus 2 empty ones.
func DefaultParams() Params {
	return Params{
		Palette:   DefaultPalette(),
		NumColors: 6,
		Capacity:  DefaultCapacity,
		Filled:    6,
		Empty:     2,
	}
}

// Validate checks that the parameters describe a fillable level.
func (p Params) Validate() error {
	switch {
	case p.NumColors < 1:
		return fmt.Errorf("%w: need at least one color, got %d", ErrConfiguration, p.NumColors)
	case p.NumColors > len(p.Palette):
		return fmt.Errorf("%w: %d colors requested but palette has %d", ErrConfiguration, p.NumColors, len(p.Palette))
	case p.Capacity < 1:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrConfiguration, p.Capacity)
	case p.Filled != p.NumColors:
		return fmt.Errorf("%w: %d filled containers cannot hold %d colors", ErrConfiguration, p.Filled, p.NumColors)
	case p.Empty < 0:
		return fmt.Errorf("%w: negative empty container count %d", ErrConfiguration, p.Empty)
	case p.Filled+p.Empty < MinContainers || p.Filled+p.Empty > MaxContainers:
		return fmt.Errorf("%w: %d containers outside [%d, %d]", ErrConfiguration, p.Filled+p.Empty, MinContainers, MaxContainers)
	}
	return nil
}

// State is the ordered set of containers for a level attempt.
type State struct {
	Containers []Container
}

// NewState builds a shuffled starting position.
// The shuffled token sequence is cut into capacity-sized chunks; chunk k
// fills container k from the bottom up. Empty containers are appended last.
func NewState(p Params, s Shuffler) (*State, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	tokens := ShuffleTokens(BuildTokens(p.Palette, p.NumColors, p.Capacity), s)

	containers := make([]Container, 0, p.Filled+p.Empty)
	for i := 0; i < p.Filled; i++ {
		c := NewContainer(p.Capacity)
		c.Tokens = append(c.Tokens, tokens[i*p.Capacity:(i+1)*p.Capacity]...)
		containers = append(containers, c)
	}
	for i := 0; i < p.Empty; i++ {
		containers = append(containers, NewContainer(p.Capacity))
	}

	return &State{Containers: containers}, nil
}

// Compose builds a state from explicit contents, bottom to top.
// Used for fixtures and replays; rejects overfull containers.
func Compose(capacity int, contents ...[]Color) (*State, error) {
	containers := make([]Container, 0, len(contents))
	for i, tokens := range contents {
		if len(tokens) > capacity {
			return nil, fmt.Errorf("%w: container %d holds %d tokens, capacity %d", ErrConfiguration, i, len(tokens), capacity)
		}
		c := NewContainer(capacity)
		c.Tokens = append(c.Tokens, tokens...)
		containers = append(containers, c)
	}
	return &State{Containers: containers}, nil
}

// Len returns the number of containers.
func (s *State) Len() int {
	return len(s.Containers)
}

// Container returns the container at index i, or nil if out of range.
func (s *State) Container(i int) *Container {
	if i < 0 || i >= len(s.Containers) {
		return nil
	}
	return &s.Containers[i]
}

// Capacity returns the slot count shared by the containers.
func (s *State) Capacity() int {
	if len(s.Containers) == 0 {
		return DefaultCapacity
	}
	return s.Containers[0].Capacity
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	containers := make([]Container, len(s.Containers))
	for i := range s.Containers {
		containers[i] = s.Containers[i].Clone()
	}
	return &State{Containers: containers}
}

// AddContainer appends an empty container.
func (s *State) AddContainer() error {
	if len(s.Containers) >= MaxContainers {
		return fmt.Errorf("%w: already %d containers", ErrLimitExceeded, len(s.Containers))
	}
	s.Containers = append(s.Containers, NewContainer(s.Capacity()))
	return nil
}

// RemoveContainer removes the empty container with the highest index and
// returns that index.
func (s *State) RemoveContainer() (int, error) {
	if len(s.Containers) <= MinContainers {
		return -1, fmt.Errorf("%w: minimum of %d containers", ErrNoEmptyContainer, MinContainers)
	}
	for i := len(s.Containers) - 1; i >= 0; i-- {
		if s.Containers[i].IsEmpty() {
			s.Containers = append(s.Containers[:i], s.Containers[i+1:]...)
			return i, nil
		}
	}
	return -1, ErrNoEmptyContainer
}

// TokenCounts returns how many tokens of each color the state holds.
func (s *State) TokenCounts() map[Color]int {
	counts := make(map[Color]int)
	for _, c := range s.Containers {
		for _, t := range c.Tokens {
			counts[t]++
		}
	}
	return counts
}

// Equal reports whether two states hold the same contents.
func (s *State) Equal(other *State) bool {
	if other == nil || len(s.Containers) != len(other.Containers) {
		return false
	}
	for i := range s.Containers {
		a, b := s.Containers[i], other.Containers[i]
		if len(a.Tokens) != len(b.Tokens) || a.Capacity != b.Capacity {
			return false
		}
		for j := range a.Tokens {
			if a.Tokens[j] != b.Tokens[j] {
				return false
			}
		}
	}
	return true
}

// String renders the state as one line per container, bottom first.
func (s *State) String() string {
	var sb strings.Builder
	for i, c := range s.Containers {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%2d [", i)
		for j := 0; j < c.Capacity; j++ {
			if j < len(c.Tokens) {
				sb.WriteRune(c.Tokens[j].Char())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte(']')
	}
	return sb.String()
}
