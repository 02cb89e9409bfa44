package puzzle

import "fmt"

// CanTransfer returns true if pouring from one container into another is legal.
// The destination must have room and either be empty or show the same top
// color as the source.
func CanTransfer(s *State, from, to int) bool {
	if from == to {
		return false
	}
	src, dst := s.Container(from), s.Container(to)
	if src == nil || dst == nil {
		return false
	}
	if src.IsEmpty() || dst.IsFull() {
		return false
	}
	if dst.IsEmpty() {
		return true
	}
	srcTop, _ := src.Top()
	dstTop, _ := dst.Top()
	return srcTop == dstTop
}

// Transfer pours the maximal same-color run from the top of one container
// into another and returns the resulting state with the number of units moved.
// The input state is never modified.
func Transfer(s *State, from, to int) (*State, int, error) {
	if !CanTransfer(s, from, to) {
		return nil, 0, fmt.Errorf("%w: %d -> %d", ErrIllegalTransfer, from, to)
	}

	next := s.Clone()
	src, dst := &next.Containers[from], &next.Containers[to]
	color, _ := src.Top()

	moved := 0
	for !src.IsEmpty() && !dst.IsFull() {
		if top, _ := src.Top(); top != color {
			break
		}
		token, _ := src.Pop()
		_ = dst.Push(token) // room checked by the loop condition
		moved++
	}

	return next, moved, nil
}
