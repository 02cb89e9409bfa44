package watersort

import (
	"fmt"
	"strings"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/core"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/puzzle"
)

const (
	tubeWidth = 6 // Two walls around a 4-cell liquid column
	tubeGap   = 2
	hudHeight = 3
	rowExtra  = 3 // Lift row, label row and gap below each tube row
	minWidth  = 40
	minHeight = 14
)

var tokenColors = map[puzzle.Color]core.Color{
	puzzle.ColorRed:     core.ColorRed,
	puzzle.ColorGreen:   core.ColorGreen,
	puzzle.ColorBlue:    core.ColorBlue,
	puzzle.ColorYellow:  core.ColorYellow,
	puzzle.ColorMagenta: core.ColorMagenta,
	puzzle.ColorCyan:    core.ColorCyan,
	puzzle.ColorOrange:  core.ColorOrange,
	puzzle.ColorLime:    core.ColorLime,
}

// relayout places the containers in as few centered rows as fit the width.
func (g *Game) relayout() {
	g.layout = g.layout[:0]
	st := g.sess.state
	if st == nil || g.screenW <= 0 {
		return
	}

	n := st.Len()
	tubeH := st.Capacity() + 2
	perRow := max(1, (g.screenW-2+tubeGap)/(tubeWidth+tubeGap))
	rows := (n + perRow - 1) / perRow
	perRow = (n + rows - 1) / rows

	for i := 0; i < n; i++ {
		row, col := i/perRow, i%perRow
		inRow := min(perRow, n-row*perRow)
		rowW := inRow*tubeWidth + (inRow-1)*tubeGap
		x := (g.screenW-rowW)/2 + col*(tubeWidth+tubeGap)
		y := hudHeight + 1 + row*(tubeH+rowExtra)
		g.layout = append(g.layout, core.NewRect(x, y, tubeWidth, tubeH))
	}
}

func (g *Game) tooSmall() bool {
	if g.screenW < minWidth || g.screenH < minHeight {
		return true
	}
	if len(g.layout) == 0 {
		return false
	}
	last := g.layout[len(g.layout)-1]
	return last.Bottom()+2 > g.screenH
}

// Render draws the session onto dst.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.Resize(dst.Width(), dst.Height())
	}
	dst.Clear()

	if g.tooSmall() {
		dst.DrawTextCentered(g.screenH/2, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(g.screenH/2+1, "Please resize terminal", core.ColorGray)
		return
	}

	st := g.sess.state
	if st == nil {
		dst.DrawTextCentered(g.screenH/2, "No level in play", core.ColorGray)
		return
	}

	g.renderHUD(dst)
	for i := range st.Containers {
		g.renderContainer(dst, i, &st.Containers[i])
	}
	if g.hint != "" {
		dst.DrawTextCentered(g.screenH-1, g.hint, core.ColorYellow)
	}

	switch g.sess.Phase() {
	case PhaseComplete:
		g.renderComplete(dst)
	case PhaseSetComplete:
		g.renderSetComplete(dst)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	rec := g.sess.tracker.Record()

	skips := fmt.Sprintf("Skips %d", rec.Skips.Available)
	if rec.Skips.Unlimited {
		skips = "Skips ∞"
	}
	hud := fmt.Sprintf("Level %d   Moves %d   Time %s   %s",
		g.sess.Level(), g.sess.Moves(), FormatSeconds(g.sess.Elapsed()), skips)
	dst.DrawTextCentered(0, hud, core.ColorWhite)

	if res, ok := rec.Result(g.sess.Level()); ok {
		best := "Best: skipped"
		if !res.Skipped {
			best = fmt.Sprintf("Best: %s  %d moves  %s", StarString(res.Stars), res.Moves, FormatSeconds(res.ElapsedSeconds))
		}
		dst.DrawTextCentered(1, best, core.ColorGold)
	}
}

func (g *Game) renderContainer(dst *core.Screen, i int, c *puzzle.Container) {
	if i >= len(g.layout) {
		return
	}
	r := g.layout[i]

	frame := core.ColorGray
	if i == g.sess.Selected() {
		r = r.Translate(0, -1)
		frame = core.ColorWhite
	}
	if c.IsSorted() && !c.IsEmpty() {
		frame = core.ColorGold
	}
	dst.DrawTube(r, frame)

	// Slot 0 sits just above the base.
	for k, token := range c.Tokens {
		y := r.Bottom() - 2 - k
		for x := r.X + 1; x < r.Right()-1; x++ {
			dst.SetCell(x, y, '█', tokenColors[token])
		}
	}

	label := fmt.Sprintf("%d", i+1)
	labelColor := core.ColorGray
	if i == g.cursor {
		label = "▲" + label
		labelColor = core.ColorWhite
	}
	lx := g.layout[i].X + (r.W-len([]rune(label)))/2
	dst.DrawTextColor(lx, g.layout[i].Bottom(), label, labelColor)
}

func (g *Game) renderComplete(dst *core.Screen) {
	lines := []string{fmt.Sprintf("Level %d Complete!", g.sess.Level())}
	if w := g.lastWin; w != nil {
		lines = append(lines,
			StarString(w.Stars),
			fmt.Sprintf("Moves %d   Time %s", w.Moves, FormatSeconds(w.ElapsedSeconds)),
		)
		if w.SkipAwarded {
			lines = append(lines, "+1 skip earned")
		}
	}
	lines = append(lines, "", "[n] next   [r] retry")
	g.renderOverlay(dst, lines)
}

func (g *Game) renderSetComplete(dst *core.Screen) {
	g.renderOverlay(dst, []string{
		"All levels complete!",
		fmt.Sprintf("Total stars: %d", g.sess.tracker.Record().Profile.TotalStarsEarned),
		"",
		"[r] replay last level",
	})
}

func (g *Game) renderOverlay(dst *core.Screen, lines []string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := core.NewRect((g.screenW-w-4)/2, (g.screenH-len(lines)-2)/2, w+4, len(lines)+2)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGold)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, core.ColorWhite)
	}
}

// StarString renders a 0-3 star rating.
func StarString(stars int) string {
	stars = core.Clamp(stars, 0, puzzle.MaxStars)
	return strings.Repeat("★", stars) + strings.Repeat("☆", puzzle.MaxStars-stars)
}

// FormatSeconds renders seconds as mm:ss.
func FormatSeconds(secs int) string {
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
