package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/core"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/progress"
)

// LevelsPerPage is how many levels the picker shows at once.
const LevelsPerPage = 50

// Level picker layout constants
const (
	levelColumns = 10
	levelCellW   = 7
)

// LevelStatus is how a level shows in the picker.
type LevelStatus int

const (
	LevelLocked LevelStatus = iota
	LevelNew
	LevelSkipped
	LevelCompleted
)

// LevelCell is one entry of the picker grid.
type LevelCell struct {
	Level  int
	Status LevelStatus
	Stars  int
}

// LevelCells builds the grid for page (0-based).
func LevelCells(page int, rec *progress.Record, playable func(int) bool, maxLevel int) []LevelCell {
	first := page*LevelsPerPage + 1
	last := min(first+LevelsPerPage-1, maxLevel)

	cells := make([]LevelCell, 0, LevelsPerPage)
	for n := first; n <= last; n++ {
		cell := LevelCell{Level: n, Status: LevelLocked}
		if res, ok := rec.Result(n); ok {
			if res.Skipped {
				cell.Status = LevelSkipped
			} else {
				cell.Status = LevelCompleted
				cell.Stars = res.Stars
			}
		} else if playable(n) {
			cell.Status = LevelNew
		}
		cells = append(cells, cell)
	}
	return cells
}

// PageOf returns the 0-based page holding level n.
func PageOf(n int) int {
	return max(0, (n-1)/LevelsPerPage)
}

// LevelsModel is the Bubble Tea model for the level picker.
type LevelsModel struct {
	sess      *watersort.Session
	rec       *progress.Record
	maxLevel  int
	cursor    int // Selected level number
	width     int
	height    int
	message   string
	keyMapper *KeyMapper
	quitting  bool
	goingBack bool
	selected  int
}

// NewLevelsModel opens the picker on the page holding the player's frontier.
func NewLevelsModel(sess *watersort.Session, cfg core.RuntimeConfig) LevelsModel {
	return LevelsModel{
		sess:      sess,
		rec:       sess.Record(),
		maxLevel:  sess.Rules().MaxLevel,
		cursor:    sess.Frontier(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the picker.
func (m LevelsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m LevelsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LevelsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.goingBack = true
	case MenuActionLeft:
		m.move(-1)
	case MenuActionRight:
		m.move(1)
	case MenuActionUp:
		m.move(-levelColumns)
	case MenuActionDown:
		m.move(levelColumns)
	case MenuActionPageUp:
		m.move(-LevelsPerPage)
	case MenuActionPageDown:
		m.move(LevelsPerPage)
	case MenuActionSelect:
		if m.sess.Playable(m.cursor) {
			m.selected = m.cursor
		} else {
			m.message = fmt.Sprintf("Level %d is locked. Finish level %d first.", m.cursor, m.sess.Frontier())
		}
	}
	return m, nil
}

func (m *LevelsModel) move(delta int) {
	m.cursor = core.Clamp(m.cursor+delta, 1, m.maxLevel)
}

// View renders the picker grid.
func (m LevelsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	page := PageOf(m.cursor)
	pages := PageOf(m.maxLevel) + 1
	cells := LevelCells(page, m.rec, m.sess.Playable, m.maxLevel)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(fmt.Sprintf("SELECT LEVEL  %d/%d", page+1, pages)), m.width))
	b.WriteString("\n\n")

	for row := 0; row*levelColumns < len(cells); row++ {
		end := min((row+1)*levelColumns, len(cells))
		var top, bottom []string
		for _, c := range cells[row*levelColumns : end] {
			t, s := m.renderCell(c)
			top = append(top, t)
			bottom = append(bottom, s)
		}
		b.WriteString(centerText(strings.Join(top, ""), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(strings.Join(bottom, ""), m.width))
		b.WriteString("\n\n")
	}

	if m.message != "" {
		b.WriteString(centerText(m.message, m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(dimStyle.Render("Arrows: Move  |  [ ]: Page  |  Enter: Play  |  Esc: Back"), m.width))
	b.WriteString("\n")

	return b.String()
}

// renderCell returns the number line and the status line of one cell.
func (m LevelsModel) renderCell(c LevelCell) (string, string) {
	style := lipgloss.NewStyle().Width(levelCellW).Align(lipgloss.Center)
	var status string

	switch c.Status {
	case LevelLocked:
		style = style.Foreground(lipgloss.Color("238"))
		status = "··"
	case LevelNew:
		style = style.Foreground(lipgloss.Color("51"))
		status = "new"
	case LevelSkipped:
		style = style.Foreground(lipgloss.Color("208"))
		status = "skip"
	case LevelCompleted:
		style = style.Foreground(lipgloss.Color("220"))
		status = watersort.StarString(c.Stars)
	}
	if c.Level == m.cursor {
		style = style.Reverse(true)
	}

	return style.Render(fmt.Sprintf("%d", c.Level)), style.Render(status)
}

// Selected returns the level chosen to play, or 0.
func (m LevelsModel) Selected() int {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LevelsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LevelsModel) IsQuitting() bool {
	return m.quitting
}
