package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/progress"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/storage"
)

// Scoreboard layout constants
const (
	maxAttempts = 100 // Max attempts to load
)

// ScoreboardTab selects what the profile table lists.
type ScoreboardTab int

const (
	TabResults ScoreboardTab = iota
	TabRecent
)

// ScoreboardKeyMap defines the key bindings for the profile screen.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "switch list"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "switch list"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the player's totals with per-level results or the
// recent attempt history.
type ScoreboardModel struct {
	rec       *progress.Record
	attempts  AttemptLog
	tab       ScoreboardTab
	rows      []table.Row
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a profile screen for rec. attempts may be nil.
func NewScoreboardModel(rec *progress.Record, attempts AttemptLog, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		rec:      rec,
		attempts: attempts,
		keys:     DefaultScoreboardKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.loadRows()
	return m
}

// createTable creates a new table with columns for the current tab.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 7},
		{Title: "Result", Width: 8},
		{Title: "Moves", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "When", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Leave room for header, totals and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRows fills the table for the current tab.
func (m *ScoreboardModel) loadRows() {
	switch m.tab {
	case TabResults:
		m.rows = resultRows(m.rec)
	case TabRecent:
		m.rows = nil
		if m.attempts != nil {
			if attempts, err := m.attempts.RecentAttempts(maxAttempts); err == nil {
				m.rows = attemptRows(attempts)
			}
		}
	}
	m.table.SetRows(m.rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// resultRows lists recorded results, highest level first.
func resultRows(rec *progress.Record) []table.Row {
	levels := make([]int, 0, len(rec.Results))
	for n := range rec.Results {
		levels = append(levels, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))

	rows := make([]table.Row, 0, len(levels))
	for _, n := range levels {
		r := rec.Results[n]
		rows = append(rows, resultRow(n, r.Skipped, r.Stars, r.Moves, r.ElapsedSeconds, humanizeTime(r.RecordedAt)))
	}
	return rows
}

func attemptRows(attempts []storage.Attempt) []table.Row {
	rows := make([]table.Row, 0, len(attempts))
	for _, a := range attempts {
		rows = append(rows, resultRow(a.Level, a.Skipped, a.Stars, a.Moves, a.ElapsedSeconds, humanizeTime(a.CreatedAt)))
	}
	return rows
}

func resultRow(level int, skipped bool, stars, moves, secs int, when string) table.Row {
	result := watersort.StarString(stars)
	if skipped {
		result = "skipped"
	}
	return table.Row{
		fmt.Sprintf("%d", level),
		result,
		fmt.Sprintf("%d", moves),
		watersort.FormatSeconds(secs),
		when,
	}
}

func humanizeTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
			m.tab = 1 - m.tab
			m.loadRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the profile screen.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	name := m.rec.Profile.DisplayName
	if name == "" {
		name = "Player"
	}
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(name)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(ProfileSummary(m.rec), m.width))
	b.WriteString("\n\n")

	// Tabs
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabs := []string{"Best results", "Recent attempts"}
	for i := range tabs {
		if ScoreboardTab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(tabs[i])
		} else {
			tabs[i] = tabStyle.Render(tabs[i])
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nothing recorded yet.\nFinish a level to see it here!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// ProfileSummary renders the lifetime totals on one line.
func ProfileSummary(rec *progress.Record) string {
	skips := humanize.Comma(int64(rec.Skips.Available))
	if rec.Skips.Unlimited {
		skips = "∞"
	}
	return fmt.Sprintf("Highest level %s   ★ %s   Completed %s   Skips %s (used %s)",
		humanize.Comma(int64(rec.Profile.HighestLevelReached)),
		humanize.Comma(int64(rec.Profile.TotalStarsEarned)),
		humanize.Comma(int64(rec.Profile.AttemptsCompleted)),
		skips,
		humanize.Comma(int64(rec.Skips.Used)),
	)
}
