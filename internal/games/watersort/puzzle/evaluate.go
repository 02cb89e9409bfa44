package puzzle

// Star bounds for a completed level.
const (
	MinStars = 1
	MaxStars = 3
)

// StarRules are the thresholds for the bonus stars.
type StarRules struct {
	MoveTarget int // Bonus star when moves <= MoveTarget
	TimeTarget int // Bonus star when elapsed seconds <= TimeTarget
}

// DefaultStarRules returns the standard thresholds: 10 moves and 60 seconds.
func DefaultStarRules() StarRules {
	return StarRules{MoveTarget: 10, TimeTarget: 60}
}

// Stars rates a win: one star for finishing plus one per met target.
func (r StarRules) Stars(moves, elapsedSeconds int) int {
	stars := MinStars
	if moves <= r.MoveTarget {
		stars++
	}
	if elapsedSeconds <= r.TimeTarget {
		stars++
	}
	if stars > MaxStars {
		stars = MaxStars
	}
	return stars
}

// ComputeStars rates a win with the default thresholds.
func ComputeStars(moves, elapsedSeconds int) int {
	return DefaultStarRules().Stars(moves, elapsedSeconds)
}

// IsWon returns true if every container is sorted.
func IsWon(s *State) bool {
	for i := range s.Containers {
		if !s.Containers[i].IsSorted() {
			return false
		}
	}
	return true
}

// SortedCount returns how many non-empty containers are complete.
func SortedCount(s *State) int {
	n := 0
	for i := range s.Containers {
		c := &s.Containers[i]
		if !c.IsEmpty() && c.IsSorted() {
			n++
		}
	}
	return n
}
