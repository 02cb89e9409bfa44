package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/core"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/storage"
)

// AttemptLog stores and lists one player's attempt history.
// *storage.ProfileStore implements it.
type AttemptLog interface {
	AppendAttempt(a storage.Attempt) (string, error)
	RecentAttempts(limit int) ([]storage.Attempt, error)
}

// RecordAttempts appends every win and skip of sess to attempts.
// Failures are logged and play continues.
func RecordAttempts(sess *watersort.Session, attempts AttemptLog, logger *log.Logger) {
	if attempts == nil {
		return
	}
	sess.Subscribe(func(e watersort.Event) {
		var a storage.Attempt
		switch e := e.(type) {
		case watersort.LevelWon:
			a = storage.Attempt{
				Level:          e.Level,
				Moves:          e.Moves,
				ElapsedSeconds: e.ElapsedSeconds,
				Stars:          e.Stars,
				CreatedAt:      e.At,
			}
		case watersort.LevelSkipped:
			a = storage.Attempt{
				Level:          e.Level,
				Moves:          e.Moves,
				ElapsedSeconds: e.ElapsedSeconds,
				Skipped:        true,
				CreatedAt:      e.At,
			}
		default:
			return
		}
		if _, err := attempts.AppendAttempt(a); err != nil && logger != nil {
			logger.Warn("cannot record attempt", "level", a.Level, "error", err)
		}
	})
}

type view int

const (
	viewMenu view = iota
	viewGame
	viewLevels
	viewProfile
)

// AppModel manages the full flow: menu -> level picker / profile -> game -> menu.
// It is the top-level model for local play and SSH sessions alike.
type AppModel struct {
	sess     *watersort.Session
	game     *watersort.Game
	attempts AttemptLog
	config   core.RuntimeConfig

	view       view
	menu       MenuModel
	levels     LevelsModel
	scoreboard ScoreboardModel
	play       Model
	quitting   bool
}

// NewAppModel creates the top-level model around sess. attempts may be nil.
// A session with a level in play opens straight on the level screen.
func NewAppModel(sess *watersort.Session, attempts AttemptLog, cfg core.RuntimeConfig) AppModel {
	m := AppModel{
		sess:     sess,
		game:     watersort.NewGame(sess, cfg),
		attempts: attempts,
		config:   cfg,
		menu:     NewMenuModel(sess, cfg),
	}
	if sess.Phase() == watersort.PhasePlaying {
		m.play = NewModel(m.game, cfg)
		m.view = viewGame
	}
	return m
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	title := tea.SetWindowTitle("Water Sort")
	if m.view == viewGame {
		return tea.Batch(title, m.play.Init())
	}
	return title
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewLevels:
		return m.updateLevels(msg)
	case viewProfile:
		return m.updateProfile(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		return m.quit()
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Choice {
	case ChoiceContinue:
		if m.sess.Phase() == watersort.PhasePlaying {
			m.sess.Resume()
		} else if err := m.sess.Continue(); err != nil {
			m.menu = NewMenuModel(m.sess, m.config)
			return m, nil
		}
		return m.enterGame()

	case ChoiceLevels:
		m.levels = NewLevelsModel(m.sess, m.config)
		m.view = viewLevels

	case ChoiceProfile:
		m.scoreboard = NewScoreboardModel(m.sess.Record(), m.attempts, m.config.ScreenW, m.config.ScreenH)
		m.view = viewProfile
	}
	return m, nil
}

func (m AppModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLevels, cmd := m.levels.Update(msg)
	if levelsModel, ok := newLevels.(LevelsModel); ok {
		m.levels = levelsModel
	}

	switch {
	case m.levels.IsQuitting():
		return m.quit()
	case m.levels.IsGoingBack():
		return m.backToMenu()
	case m.levels.Selected() > 0:
		if err := m.sess.StartLevel(m.levels.Selected()); err != nil {
			m.levels = NewLevelsModel(m.sess, m.config)
			return m, nil
		}
		return m.enterGame()
	}
	return m, cmd
}

func (m AppModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if playModel, ok := newModel.(Model); ok {
		m.play = playModel
	}

	if m.play.IsQuitting() {
		return m.quit()
	}
	if m.play.BackToMenu() {
		m.sess.Pause()
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) enterGame() (tea.Model, tea.Cmd) {
	m.play = NewModel(m.game, m.config)
	m.view = viewGame
	return m, m.play.Init()
}

func (m AppModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.sess, m.config)
	m.view = viewMenu
	return m, nil
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.sess.Close()
	return m, tea.Quit
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.play.View()
	case viewLevels:
		return m.levels.View()
	case viewProfile:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Run starts the Bubble Tea program for sess on the local terminal.
func Run(sess *watersort.Session, attempts AttemptLog, cfg core.RuntimeConfig) error {
	model := NewAppModel(sess, attempts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks pick and pour
	)

	_, err := p.Run()
	return err
}
