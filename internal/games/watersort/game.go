package watersort

import (
	"errors"
	"fmt"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/core"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/progress"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/puzzle"
)

// Game adapts a Session to the platform loop: it turns input frames into
// session calls and draws the session onto a core.Screen.
type Game struct {
	sess    *Session
	cursor  int
	hint    string
	lastWin *LevelWon

	screenW int
	screenH int
	layout  []core.Rect // One rect per container, unlifted
}

// NewGame wraps sess.
func NewGame(sess *Session, cfg core.RuntimeConfig) *Game {
	g := &Game{sess: sess}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	sess.Subscribe(g.onEvent)
	return g
}

func (g *Game) onEvent(e Event) {
	switch e := e.(type) {
	case LevelStarted:
		g.cursor = 0
		g.lastWin = nil
	case LevelWon:
		g.lastWin = &e
	}
	if st := g.sess.state; st != nil {
		g.cursor = core.Clamp(g.cursor, 0, st.Len()-1)
	}
	g.relayout()
}

// Session returns the wrapped session.
func (g *Game) Session() *Session {
	return g.sess
}

// Cursor returns the container under the keyboard cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// Hint returns the message for the last recoverable error or notice.
func (g *Game) Hint() string {
	return g.hint
}

// Resize records the screen size and recomputes the container layout.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.relayout()
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) {
	for _, c := range in.Clicks {
		if i := g.ContainerAt(c.X, c.Y); i >= 0 {
			g.cursor = i
			g.selectAt(i)
		}
	}

	n := g.containerCount()
	if in.Has(core.ActionLeft) && n > 0 {
		g.cursor = (g.cursor - 1 + n) % n
	}
	if in.Has(core.ActionRight) && n > 0 {
		g.cursor = (g.cursor + 1) % n
	}

	switch g.sess.Phase() {
	case PhasePlaying:
		g.stepPlaying(in)
	case PhaseComplete:
		if in.Has(core.ActionNext) || in.Has(core.ActionSelect) {
			g.report(g.sess.Advance())
		}
		if in.Has(core.ActionRestart) {
			g.report(g.sess.Retry())
		}
		if in.Has(core.ActionToggleUnlimited) {
			g.toggleUnlimited()
		}
	case PhaseSetComplete:
		if in.Has(core.ActionRestart) {
			g.report(g.sess.Retry())
		}
	}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionSelect) {
		g.selectAt(g.cursor)
	}
	if in.Has(core.ActionUndo) {
		if g.sess.Undo() {
			g.hint = ""
		} else {
			g.hint = "Nothing to undo"
		}
	}
	if in.Has(core.ActionAddContainer) {
		g.report(g.sess.AddContainer())
	}
	if in.Has(core.ActionRemoveContainer) {
		g.report(g.sess.RemoveContainer())
	}
	if in.Has(core.ActionRestart) {
		g.report(g.sess.Retry())
	}
	if in.Has(core.ActionSkip) {
		out, err := g.sess.Skip()
		if err == nil {
			g.hint = skipHint(out)
		} else {
			g.report(err)
		}
	}
	if in.Has(core.ActionToggleUnlimited) {
		g.toggleUnlimited()
	}
}

func (g *Game) selectAt(i int) {
	_, err := g.sess.Select(i)
	g.report(err)
}

func (g *Game) toggleUnlimited() {
	on, err := g.sess.ToggleUnlimitedSkips()
	if err != nil {
		g.report(err)
		return
	}
	if on {
		g.hint = "Unlimited skips on"
	} else {
		g.hint = "Unlimited skips off"
	}
}

func skipHint(out progress.SkipOutcome) string {
	if out.Unlimited {
		return fmt.Sprintf("Skipped level %d (unlimited skips)", out.Level)
	}
	return fmt.Sprintf("Skipped level %d (%d left)", out.Level, out.Remaining)
}

// report turns a recoverable error into a hint. nil clears the hint.
func (g *Game) report(err error) {
	switch {
	case err == nil:
		g.hint = ""
	case errors.Is(err, puzzle.ErrIllegalTransfer):
		g.hint = "Can't pour there"
	case errors.Is(err, puzzle.ErrLimitExceeded):
		g.hint = fmt.Sprintf("At most %d containers", puzzle.MaxContainers)
	case errors.Is(err, puzzle.ErrNoEmptyContainer):
		g.hint = "No empty container to remove"
	case errors.Is(err, progress.ErrNoSkipsAvailable):
		g.hint = "No skips left. Press i for unlimited skips"
	case errors.Is(err, progress.ErrLevelLocked):
		g.hint = "Level locked"
	case errors.Is(err, ErrNotPlaying):
		g.hint = ""
	default:
		g.hint = err.Error()
	}
}

func (g *Game) containerCount() int {
	if st := g.sess.state; st != nil {
		return st.Len()
	}
	return 0
}

// ContainerAt returns the index of the container drawn at (x, y), or -1.
// The hit box covers the lifted position and the label row.
func (g *Game) ContainerAt(x, y int) int {
	for i, r := range g.layout {
		hit := core.NewRect(r.X, r.Y-1, r.W, r.H+2)
		if hit.Contains(x, y) {
			return i
		}
	}
	return -1
}
