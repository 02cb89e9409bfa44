// Package watersort runs a water sort play session: it owns the puzzle state
// of the level in play, the undo log, the play timer and the player's
// progress, and reports every change as a typed Event.
package watersort

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/progress"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/puzzle"
)

// ErrNotPlaying is returned by puzzle actions when no level is in play,
// including while the level-complete screen is shown.
var ErrNotPlaying = errors.New("watersort: no level in play")

// Phase is the session's position in the level lifecycle.
type Phase int

const (
	PhaseIdle        Phase = iota // No level dealt yet
	PhasePlaying                  // Accepting moves
	PhaseComplete                 // Level won; waiting for retry or next
	PhaseSetComplete              // Past the last level
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseComplete:
		return "complete"
	case PhaseSetComplete:
		return "set_complete"
	default:
		return "unknown"
	}
}

// SelectResult says what a Select call did.
type SelectResult int

const (
	SelectIgnored SelectResult = iota // Nothing changed
	SelectPicked                      // Container became the source
	SelectCleared                     // Selection dropped
	SelectPoured                      // Transfer performed
)

// Options configure a Session. Zero fields take defaults.
type Options struct {
	Params       puzzle.Params
	Stars        puzzle.StarRules
	Rules        progress.Rules
	Shuffler     puzzle.Shuffler
	Persister    Persister
	Logger       *log.Logger
	TickInterval time.Duration
	Now          func() time.Time
	DisplayName  string // Used when no progress is stored yet
}

// DefaultOptions returns the standard puzzle, star and progression rules
// with in-memory persistence.
func DefaultOptions() Options {
	return Options{
		Params: puzzle.DefaultParams(),
		Stars:  puzzle.DefaultStarRules(),
		Rules:  progress.DefaultRules(),
	}
}

func (o *Options) applyDefaults() {
	if o.Params.Palette == nil {
		o.Params = puzzle.DefaultParams()
	}
	if o.Stars == (puzzle.StarRules{}) {
		o.Stars = puzzle.DefaultStarRules()
	}
	if o.Rules == (progress.Rules{}) {
		o.Rules = progress.DefaultRules()
	}
	if o.Shuffler == nil {
		o.Shuffler = puzzle.NewShuffler(0)
	}
	if o.Persister == nil {
		o.Persister = NewMemoryPersister(nil)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Session is one player's play context. It is not safe for concurrent use;
// only the timer ticks on its own goroutine.
type Session struct {
	opts    Options
	log     *log.Logger
	tracker *progress.Tracker
	timer   *Timer
	history History

	state    *puzzle.State
	level    int
	moves    int
	selected int
	phase    Phase

	subscribers []func(Event)
}

// NewSession loads progress and returns an idle session. A load failure is
// logged and play continues from a fresh record.
func NewSession(opts Options) (*Session, error) {
	opts.applyDefaults()
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		opts:     opts,
		log:      opts.Logger,
		timer:    NewTimer(opts.TickInterval),
		selected: -1,
	}

	rec, err := opts.Persister.Load()
	if err != nil {
		s.log.Warn("cannot load progress, starting fresh", "error", err)
		rec = nil
	}
	if rec == nil {
		rec = progress.NewRecord(opts.DisplayName)
		rec.Skips.Available = opts.Rules.InitialSkips
	}
	s.tracker = progress.NewTracker(rec, opts.Rules)
	return s, nil
}

// Subscribe registers fn to receive every event.
func (s *Session) Subscribe(fn func(Event)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Session) emit(e Event) {
	for _, fn := range s.subscribers {
		fn(e)
	}
}

func (s *Session) persist() {
	if err := s.opts.Persister.Save(s.tracker.Record()); err != nil {
		s.log.Warn("cannot save progress", "level", s.level, "error", err)
	}
}

// StartLevel deals a fresh shuffle of level n. Locked levels are refused.
func (s *Session) StartLevel(n int) error {
	if !s.tracker.Playable(n) {
		return fmt.Errorf("%w: level %d (frontier %d)", progress.ErrLevelLocked, n, s.tracker.Frontier())
	}
	return s.begin(n)
}

// Continue starts the level the resume pointer names.
func (s *Session) Continue() error {
	return s.begin(s.tracker.Record().ResumeLevel)
}

func (s *Session) begin(n int) error {
	state, err := puzzle.NewState(s.opts.Params, s.opts.Shuffler)
	if err != nil {
		return err
	}

	s.state = state
	s.level = n
	s.moves = 0
	s.selected = -1
	s.phase = PhasePlaying
	s.history.Clear()

	rec := s.tracker.Record()
	rec.CurrentLevel = n
	rec.ResumeLevel = n

	s.timer.Reset()
	s.timer.Start()
	s.persist()

	s.log.Debug("level started", "level", n)
	s.emit(LevelStarted{Level: n})
	return nil
}

// Select implements two-click play: the first click on a non-empty container
// selects it, a click on the same container clears the selection, and a click
// on another container pours into it. The selection is cleared after any
// pour attempt.
func (s *Session) Select(i int) (SelectResult, error) {
	if s.phase != PhasePlaying {
		return SelectIgnored, ErrNotPlaying
	}
	c := s.state.Container(i)
	if c == nil {
		return SelectIgnored, nil
	}

	switch {
	case s.selected < 0:
		if c.IsEmpty() {
			return SelectIgnored, nil
		}
		s.selected = i
		return SelectPicked, nil
	case s.selected == i:
		s.selected = -1
		return SelectCleared, nil
	}

	from := s.selected
	s.selected = -1
	if _, err := s.Transfer(from, i); err != nil {
		return SelectCleared, err
	}
	return SelectPoured, nil
}

// Transfer pours from one container into another and returns the units moved.
// An illegal transfer changes nothing.
func (s *Session) Transfer(from, to int) (int, error) {
	if s.phase != PhasePlaying {
		return 0, ErrNotPlaying
	}

	next, units, err := puzzle.Transfer(s.state, from, to)
	if err != nil {
		return 0, err
	}

	s.history.Push(MoveTransfer, s.state)
	s.state = next
	s.moves++
	s.selected = -1

	s.emit(TransferCompleted{From: from, To: to, Units: units})
	s.checkWin()
	return units, nil
}

func (s *Session) checkWin() {
	if !puzzle.IsWon(s.state) {
		return
	}

	s.timer.Stop()
	secs := s.timer.Elapsed()
	stars := s.opts.Stars.Stars(s.moves, secs)
	at := s.opts.Now()

	out := s.tracker.RecordWin(s.level, s.moves, secs, stars, at)
	s.history.Clear()
	s.phase = PhaseComplete
	s.persist()

	s.log.Info("level won", "level", s.level, "moves", s.moves, "seconds", secs, "stars", stars)
	s.emit(LevelWon{
		Level:          s.level,
		Stars:          stars,
		Moves:          s.moves,
		ElapsedSeconds: secs,
		Improved:       out.Improved,
		SkipAwarded:    out.SkipAwarded,
		At:             at,
	})
}

// Undo reverts the newest recorded action. It returns false when there is
// nothing to undo. Only a reverted transfer gives back a move.
func (s *Session) Undo() bool {
	if s.phase != PhasePlaying {
		return false
	}
	rec, ok := s.history.Pop()
	if !ok {
		return false
	}

	s.state = rec.Snapshot
	if rec.Kind == MoveTransfer && s.moves > 0 {
		s.moves--
	}
	s.selected = -1

	s.emit(UndoPerformed{Kind: rec.Kind})
	return true
}

// Skip records the level in play as skipped and deals the next one.
// Without skips left it returns progress.ErrNoSkipsAvailable and changes
// nothing; the caller may offer unlimited skips instead.
func (s *Session) Skip() (progress.SkipOutcome, error) {
	if s.phase != PhasePlaying {
		return progress.SkipOutcome{}, ErrNotPlaying
	}

	secs := s.timer.Elapsed()
	at := s.opts.Now()
	out, err := s.tracker.Skip(s.level, s.moves, secs, at)
	if err != nil {
		return out, err
	}

	s.timer.Stop()
	s.log.Info("level skipped", "level", s.level, "unlimited", out.Unlimited, "remaining", out.Remaining)
	s.emit(LevelSkipped{
		Level:          s.level,
		Unlimited:      out.Unlimited,
		Remaining:      out.Remaining,
		Moves:          s.moves,
		ElapsedSeconds: secs,
		At:             at,
	})

	if out.SetComplete {
		s.completeSet()
		return out, nil
	}
	if err := s.begin(out.NextLevel); err != nil {
		return out, err
	}
	return out, nil
}

// ToggleUnlimitedSkips flips unlimited skips. Turning them on while a level
// is in play also skips that level.
func (s *Session) ToggleUnlimitedSkips() (bool, error) {
	on := s.tracker.ToggleUnlimited()
	s.persist()
	s.emit(UnlimitedSkipsToggled{Enabled: on})

	if on && s.phase == PhasePlaying {
		_, err := s.Skip()
		return on, err
	}
	return on, nil
}

// AddContainer appends an empty container. It is undoable and costs no move.
func (s *Session) AddContainer() error {
	if s.phase != PhasePlaying {
		return ErrNotPlaying
	}

	before := s.state.Clone()
	if err := s.state.AddContainer(); err != nil {
		return err
	}
	s.history.Push(MoveAddContainer, before)

	s.emit(ContainersChanged{Count: s.state.Len()})
	return nil
}

// RemoveContainer drops the highest-index empty container. It is undoable
// and costs no move.
func (s *Session) RemoveContainer() error {
	if s.phase != PhasePlaying {
		return ErrNotPlaying
	}

	before := s.state.Clone()
	if _, err := s.state.RemoveContainer(); err != nil {
		return err
	}
	s.history.Push(MoveRemoveContainer, before)
	s.selected = -1

	s.emit(ContainersChanged{Count: s.state.Len()})
	return nil
}

// Retry deals a new shuffle of the current level.
func (s *Session) Retry() error {
	if s.phase == PhaseIdle {
		return ErrNotPlaying
	}
	return s.begin(s.level)
}

// Advance deals the level after the current one. Past the last level the
// session enters PhaseSetComplete.
func (s *Session) Advance() error {
	if s.phase == PhaseIdle {
		return ErrNotPlaying
	}
	next, last := s.tracker.NextLevel(s.level)
	if last {
		s.completeSet()
		return nil
	}
	return s.StartLevel(next)
}

func (s *Session) completeSet() {
	s.timer.Stop()
	s.history.Clear()
	s.phase = PhaseSetComplete
	s.persist()
	s.emit(SetCompleted{Level: s.level})
}

// ResetProgress wipes results, totals and the skip ledger. The display name
// and settings are kept. A level in play restarts at level 1.
func (s *Session) ResetProgress() error {
	wasActive := s.phase != PhaseIdle

	s.tracker.Reset()
	s.history.Clear()
	s.timer.Reset()
	s.persist()

	s.log.Info("progress reset")
	s.emit(ProgressReset{})

	if !wasActive {
		return nil
	}
	return s.begin(1)
}

// SetDisplayName renames the player.
func (s *Session) SetDisplayName(name string) {
	s.tracker.SetDisplayName(strings.TrimSpace(name))
	s.persist()
}

// Pause stops the play timer while the level is off screen.
func (s *Session) Pause() {
	s.timer.Stop()
}

// Resume restarts the play timer if a level is in play.
func (s *Session) Resume() {
	if s.phase == PhasePlaying {
		s.timer.Start()
	}
}

// Close stops the timer.
func (s *Session) Close() {
	s.timer.Stop()
}

// State returns a copy of the puzzle state, or nil before the first level.
func (s *Session) State() *puzzle.State {
	if s.state == nil {
		return nil
	}
	return s.state.Clone()
}

// Moves returns the move count of the level in play.
func (s *Session) Moves() int { return s.moves }

// Elapsed returns the seconds spent on the level in play.
func (s *Session) Elapsed() int { return s.timer.Elapsed() }

// Won reports whether the level in play is solved.
func (s *Session) Won() bool {
	return s.state != nil && puzzle.IsWon(s.state)
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Selected returns the selected container index, or -1.
func (s *Session) Selected() int { return s.selected }

// Level returns the level in play.
func (s *Session) Level() int { return s.level }

// CanUndo reports whether Undo would do something.
func (s *Session) CanUndo() bool {
	return s.phase == PhasePlaying && s.history.Len() > 0
}

// Record returns a copy of the player's progress.
func (s *Session) Record() *progress.Record {
	return s.tracker.Record().Clone()
}

// Playable reports whether level n is unlocked.
func (s *Session) Playable(n int) bool { return s.tracker.Playable(n) }

// Frontier returns the highest unlocked level.
func (s *Session) Frontier() int { return s.tracker.Frontier() }

// Rules returns the progression rules.
func (s *Session) Rules() progress.Rules { return s.opts.Rules }
