package watersort

import "github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/puzzle"

// Snapshot captures what the player sees, for tests and replays.
type Snapshot struct {
	Level          int
	Moves          int
	Elapsed        int
	Phase          Phase
	Containers     [][]puzzle.Color // Bottom to top
	Selected       int
	Cursor         int
	SkipsAvailable int
	UnlimitedSkips bool
	Hint           string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	rec := g.sess.tracker.Record()
	snap := Snapshot{
		Level:          g.sess.Level(),
		Moves:          g.sess.Moves(),
		Elapsed:        g.sess.Elapsed(),
		Phase:          g.sess.Phase(),
		Selected:       g.sess.Selected(),
		Cursor:         g.cursor,
		SkipsAvailable: rec.Skips.Available,
		UnlimitedSkips: rec.Skips.Unlimited,
		Hint:           g.hint,
	}
	if st := g.sess.state; st != nil {
		for _, c := range st.Containers {
			snap.Containers = append(snap.Containers, append([]puzzle.Color(nil), c.Tokens...))
		}
	}
	return snap
}
