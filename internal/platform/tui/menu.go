package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/core"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort"
)

// MenuChoice identifies a main menu entry.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceContinue
	ChoiceLevels
	ChoiceProfile
	ChoiceQuit
)

// MenuItem represents a selectable entry in the main menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	status    string
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user selects an entry
}

// NewMenuModel creates a main menu for sess.
func NewMenuModel(sess *watersort.Session, cfg core.RuntimeConfig) MenuModel {
	rec := sess.Record()

	level := rec.ResumeLevel
	if sess.Phase() == watersort.PhasePlaying {
		level = sess.Level()
	}

	skips := fmt.Sprintf("%d", rec.Skips.Available)
	if rec.Skips.Unlimited {
		skips = "∞"
	}
	name := rec.Profile.DisplayName
	if name == "" {
		name = "Player"
	}

	return MenuModel{
		items: []MenuItem{
			{Choice: ChoiceContinue, Title: fmt.Sprintf("Continue  (Level %d)", level)},
			{Choice: ChoiceLevels, Title: "Select level"},
			{Choice: ChoiceProfile, Title: "Profile"},
			{Choice: ChoiceQuit, Title: "Quit"},
		},
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		status:    fmt.Sprintf("%s   ★ %d   Skips %s", name, rec.Profile.TotalStarsEarned, skips),
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Choice == ChoiceQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &selected
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  W A T E R   S O R T  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.status, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = activeStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
