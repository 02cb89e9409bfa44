package puzzle

import "errors"

// Errors returned by the puzzle core. Everything except ErrConfiguration is
// recoverable: the state is left untouched and the caller may retry.
var (
	ErrConfiguration    = errors.New("puzzle: invalid level configuration")
	ErrIllegalTransfer  = errors.New("puzzle: illegal transfer")
	ErrCapacityExceeded = errors.New("puzzle: container is full")
	ErrEmptyContainer   = errors.New("puzzle: container is empty")
	ErrLimitExceeded    = errors.New("puzzle: container limit reached")
	ErrNoEmptyContainer = errors.New("puzzle: no removable empty container")
)
