package watersort

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/progress"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/puzzle"
)

// swapShuffler applies a fixed list of swaps.
type swapShuffler [][2]int

func (s swapShuffler) Shuffle(n int, swap func(i, j int)) {
	for _, p := range s {
		swap(p[0], p[1])
	}
}

var fixedNow = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

// smallOptions deals [R R R G] [G G G R] [] every level; it is solved by
// pouring 1->2, 0->1, 2->0.
func smallOptions(p Persister) Options {
	return Options{
		Params: puzzle.Params{
			Palette:   puzzle.DefaultPalette(),
			NumColors: 2,
			Capacity:  4,
			Filled:    2,
			Empty:     1,
		},
		Stars:     puzzle.DefaultStarRules(),
		Rules:     progress.DefaultRules(),
		Shuffler:  swapShuffler{{3, 7}},
		Persister: p,
		Now:       func() time.Time { return fixedNow },
	}
}

func newSession(t *testing.T, p Persister) (*Session, *[]Event) {
	t.Helper()
	if p == nil {
		p = NewMemoryPersister(nil)
	}
	s, err := NewSession(smallOptions(p))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	t.Cleanup(s.Close)

	var events []Event
	s.Subscribe(func(e Event) { events = append(events, e) })
	return s, &events
}

func solve(t *testing.T, s *Session) {
	t.Helper()
	for _, mv := range [][2]int{{1, 2}, {0, 1}, {2, 0}} {
		if _, err := s.Transfer(mv[0], mv[1]); err != nil {
			t.Fatalf("Transfer(%d, %d) failed: %v", mv[0], mv[1], err)
		}
	}
}

func TestSessionInitialDeal(t *testing.T) {
	s, _ := newSession(t, nil)
	if s.Phase() != PhaseIdle || s.State() != nil {
		t.Fatal("new session should be idle")
	}
	if err := s.StartLevel(1); err != nil {
		t.Fatalf("StartLevel(1) failed: %v", err)
	}

	want, _ := puzzle.Compose(4,
		[]puzzle.Color{puzzle.ColorRed, puzzle.ColorRed, puzzle.ColorRed, puzzle.ColorGreen},
		[]puzzle.Color{puzzle.ColorGreen, puzzle.ColorGreen, puzzle.ColorGreen, puzzle.ColorRed},
		nil,
	)
	if !s.State().Equal(want) {
		t.Errorf("State() =\n%s\nexpected\n%s", s.State(), want)
	}
	if s.Phase() != PhasePlaying || s.Moves() != 0 || s.Selected() != -1 {
		t.Errorf("phase %v moves %d selected %d", s.Phase(), s.Moves(), s.Selected())
	}
}

func TestSessionWinFlow(t *testing.T) {
	p := NewMemoryPersister(nil)
	s, events := newSession(t, p)
	if err := s.StartLevel(1); err != nil {
		t.Fatalf("StartLevel(1) failed: %v", err)
	}

	solve(t, s)

	if !s.Won() || s.Phase() != PhaseComplete {
		t.Fatalf("Won() = %v, Phase() = %v", s.Won(), s.Phase())
	}
	if s.CanUndo() {
		t.Error("undo log should be discarded on win")
	}

	var won *LevelWon
	transfers := 0
	for _, e := range *events {
		switch e := e.(type) {
		case TransferCompleted:
			transfers++
			if e.Units != 1 {
				t.Errorf("TransferCompleted.Units = %d, expected 1", e.Units)
			}
		case LevelWon:
			won = &e
		}
	}
	if transfers != 3 {
		t.Errorf("got %d TransferCompleted events, expected 3", transfers)
	}
	if won == nil || won.Stars != 3 || won.Moves != 3 || won.Level != 1 || !won.At.Equal(fixedNow) {
		t.Fatalf("LevelWon = %+v", won)
	}

	rec, _ := p.Load()
	if rec.Profile.HighestLevelReached != 1 || rec.Profile.TotalStarsEarned != 3 || rec.Profile.AttemptsCompleted != 1 {
		t.Errorf("persisted profile = %+v", rec.Profile)
	}
	if rec.ResumeLevel != 2 {
		t.Errorf("persisted ResumeLevel = %d, expected 2", rec.ResumeLevel)
	}
	if res := rec.Results[1]; res.Moves != 3 || res.Stars != 3 || res.Skipped {
		t.Errorf("persisted Results[1] = %+v", res)
	}

	// Transfers are blocked until retry or advance.
	if _, err := s.Select(0); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("Select() after win = %v, expected ErrNotPlaying", err)
	}

	if err := s.Advance(); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	if s.Level() != 2 || s.Phase() != PhasePlaying || s.Moves() != 0 {
		t.Errorf("after Advance: level %d phase %v moves %d", s.Level(), s.Phase(), s.Moves())
	}
}

func TestSessionUndo(t *testing.T) {
	s, events := newSession(t, nil)
	_ = s.StartLevel(1)
	initial := s.State()

	if s.Undo() {
		t.Error("Undo() on empty log should return false")
	}

	if _, err := s.Transfer(1, 2); err != nil {
		t.Fatalf("Transfer() failed: %v", err)
	}
	if err := s.AddContainer(); err != nil {
		t.Fatalf("AddContainer() failed: %v", err)
	}
	if s.Moves() != 1 || s.State().Len() != 4 {
		t.Fatalf("moves %d containers %d, expected 1 and 4", s.Moves(), s.State().Len())
	}

	// Undoing the add gives back the container but not a move.
	if !s.Undo() {
		t.Fatal("Undo() failed")
	}
	if s.Moves() != 1 || s.State().Len() != 3 {
		t.Errorf("after undo add: moves %d containers %d", s.Moves(), s.State().Len())
	}

	if !s.Undo() {
		t.Fatal("Undo() failed")
	}
	if s.Moves() != 0 || !s.State().Equal(initial) {
		t.Errorf("after undo transfer: moves %d state\n%s", s.Moves(), s.State())
	}

	var kinds []MoveKind
	for _, e := range *events {
		if u, ok := e.(UndoPerformed); ok {
			kinds = append(kinds, u.Kind)
		}
	}
	if len(kinds) != 2 || kinds[0] != MoveAddContainer || kinds[1] != MoveTransfer {
		t.Errorf("UndoPerformed kinds = %v", kinds)
	}
}

func TestSessionSelect(t *testing.T) {
	s, _ := newSession(t, nil)
	_ = s.StartLevel(1)

	steps := []struct {
		name     string
		index    int
		want     SelectResult
		wantErr  error
		selected int
	}{
		{"empty container cannot be picked", 2, SelectIgnored, nil, -1},
		{"out of range", 7, SelectIgnored, nil, -1},
		{"pick", 0, SelectPicked, nil, 0},
		{"same container clears", 0, SelectCleared, nil, -1},
		{"pick again", 0, SelectPicked, nil, 0},
		{"illegal pour clears", 1, SelectCleared, puzzle.ErrIllegalTransfer, -1},
		{"pick source", 1, SelectPicked, nil, 1},
		{"pour into empty", 2, SelectPoured, nil, -1},
	}

	for _, st := range steps {
		got, err := s.Select(st.index)
		if got != st.want {
			t.Errorf("%s: Select(%d) = %v, expected %v", st.name, st.index, got, st.want)
		}
		if st.wantErr == nil && err != nil || st.wantErr != nil && !errors.Is(err, st.wantErr) {
			t.Errorf("%s: error = %v, expected %v", st.name, err, st.wantErr)
		}
		if s.Selected() != st.selected {
			t.Errorf("%s: Selected() = %d, expected %d", st.name, s.Selected(), st.selected)
		}
	}

	if s.Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", s.Moves())
	}
}

func TestSessionIllegalTransferIsNoop(t *testing.T) {
	s, events := newSession(t, nil)
	_ = s.StartLevel(1)
	before := s.State()
	n := len(*events)

	if _, err := s.Transfer(0, 1); !errors.Is(err, puzzle.ErrIllegalTransfer) {
		t.Fatalf("Transfer(0, 1) = %v, expected ErrIllegalTransfer", err)
	}
	if !s.State().Equal(before) || s.Moves() != 0 || s.CanUndo() || len(*events) != n {
		t.Error("illegal transfer changed the session")
	}
}

func TestSessionSkipWithoutSkipsThenUnlimited(t *testing.T) {
	rec := progress.NewRecord("p")
	rec.Skips.Available = 0
	p := NewMemoryPersister(rec)
	s, events := newSession(t, p)
	_ = s.StartLevel(1)

	if _, err := s.Skip(); !errors.Is(err, progress.ErrNoSkipsAvailable) {
		t.Fatalf("Skip() = %v, expected ErrNoSkipsAvailable", err)
	}
	if s.Level() != 1 || s.Record().Skips.Used != 0 {
		t.Error("failed skip should change nothing")
	}

	on, err := s.ToggleUnlimitedSkips()
	if err != nil || !on {
		t.Fatalf("ToggleUnlimitedSkips() = (%v, %v)", on, err)
	}

	got := s.Record()
	if s.Level() != 2 {
		t.Errorf("Level() = %d, expected 2 after unlimited skip", s.Level())
	}
	if got.Skips.Available != 0 || got.Skips.Used != 1 || !got.Skips.Unlimited {
		t.Errorf("Skips = %+v", got.Skips)
	}
	if res := got.Results[1]; !res.Skipped || res.Stars != 0 {
		t.Errorf("Results[1] = %+v, expected skip marker", res)
	}

	var skipped *LevelSkipped
	for _, e := range *events {
		if e, ok := e.(LevelSkipped); ok {
			skipped = &e
		}
	}
	if skipped == nil || !skipped.Unlimited || skipped.Level != 1 {
		t.Errorf("LevelSkipped = %+v", skipped)
	}

	// Turning it back off does not skip.
	on, err = s.ToggleUnlimitedSkips()
	if err != nil || on || s.Level() != 2 {
		t.Errorf("disable: on=%v err=%v level=%d", on, err, s.Level())
	}
}

func TestSessionSkipLimited(t *testing.T) {
	s, _ := newSession(t, nil)
	_ = s.StartLevel(1)
	_, _ = s.Transfer(1, 2)

	out, err := s.Skip()
	if err != nil {
		t.Fatalf("Skip() failed: %v", err)
	}
	if out.Remaining != 2 || out.NextLevel != 2 {
		t.Errorf("SkipOutcome = %+v", out)
	}
	if s.Level() != 2 || s.Moves() != 0 || s.CanUndo() {
		t.Errorf("next level not dealt fresh: level %d moves %d", s.Level(), s.Moves())
	}
	if res := s.Record().Results[1]; res.Moves != 1 || !res.Skipped {
		t.Errorf("Results[1] = %+v", res)
	}
}

func TestSessionLockedLevel(t *testing.T) {
	s, _ := newSession(t, nil)
	if err := s.StartLevel(3); !errors.Is(err, progress.ErrLevelLocked) {
		t.Errorf("StartLevel(3) = %v, expected ErrLevelLocked", err)
	}
	if s.Phase() != PhaseIdle {
		t.Error("locked start should leave the session idle")
	}
}

func TestSessionContainerLimits(t *testing.T) {
	s, _ := newSession(t, nil)
	_ = s.StartLevel(1)

	if err := s.RemoveContainer(); !errors.Is(err, puzzle.ErrNoEmptyContainer) {
		t.Errorf("RemoveContainer() at 3 = %v, expected ErrNoEmptyContainer", err)
	}

	for s.State().Len() < puzzle.MaxContainers {
		if err := s.AddContainer(); err != nil {
			t.Fatalf("AddContainer() failed: %v", err)
		}
	}
	if err := s.AddContainer(); !errors.Is(err, puzzle.ErrLimitExceeded) {
		t.Errorf("AddContainer() at 12 = %v, expected ErrLimitExceeded", err)
	}

	if err := s.RemoveContainer(); err != nil {
		t.Errorf("RemoveContainer() failed: %v", err)
	}
	if s.State().Len() != puzzle.MaxContainers-1 || s.Moves() != 0 {
		t.Errorf("containers %d moves %d", s.State().Len(), s.Moves())
	}
}

func TestSessionSaveFailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	p := NewMemoryPersister(nil)
	p.SaveErr = errors.New("disk full")

	opts := smallOptions(p)
	opts.Logger = log.New(&buf)
	s, err := NewSession(opts)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	defer s.Close()

	if err := s.StartLevel(1); err != nil {
		t.Fatalf("StartLevel(1) failed: %v", err)
	}
	solve(t, s)

	if s.Phase() != PhaseComplete || s.Record().Profile.HighestLevelReached != 1 {
		t.Error("win should be applied in memory despite save failures")
	}
	if !strings.Contains(buf.String(), "cannot save progress") {
		t.Errorf("expected a save warning, log was %q", buf.String())
	}
}

type brokenPersister struct{}

func (brokenPersister) Load() (*progress.Record, error) { return nil, errors.New("corrupt") }
func (brokenPersister) Save(*progress.Record) error     { return nil }

func TestSessionLoadFailureStartsFresh(t *testing.T) {
	s, _ := newSession(t, brokenPersister{})
	rec := s.Record()
	if rec.ResumeLevel != 1 || rec.Skips.Available != 3 {
		t.Errorf("record = %+v, expected fresh defaults", rec)
	}
}

func TestSessionContinue(t *testing.T) {
	rec := progress.NewRecord("p")
	rec.Profile.HighestLevelReached = 6
	rec.ResumeLevel = 7
	s, _ := newSession(t, NewMemoryPersister(rec))

	if err := s.Continue(); err != nil {
		t.Fatalf("Continue() failed: %v", err)
	}
	if s.Level() != 7 {
		t.Errorf("Level() = %d, expected 7", s.Level())
	}
}

func TestSessionSetComplete(t *testing.T) {
	rec := progress.NewRecord("p")
	rec.Profile.HighestLevelReached = 1999
	rec.ResumeLevel = 2000
	s, events := newSession(t, NewMemoryPersister(rec))
	_ = s.Continue()

	solve(t, s)
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	if s.Phase() != PhaseSetComplete || s.Level() != 2000 {
		t.Errorf("phase %v level %d, expected set complete at 2000", s.Phase(), s.Level())
	}
	if _, ok := (*events)[len(*events)-1].(SetCompleted); !ok {
		t.Errorf("last event = %T, expected SetCompleted", (*events)[len(*events)-1])
	}

	if err := s.Retry(); err != nil || s.Phase() != PhasePlaying || s.Level() != 2000 {
		t.Errorf("Retry() = %v, phase %v level %d", err, s.Phase(), s.Level())
	}
}

func TestSessionResetProgress(t *testing.T) {
	s, events := newSession(t, nil)
	s.SetDisplayName("  Mira  ")
	_ = s.StartLevel(1)
	solve(t, s)
	_ = s.Advance()

	if err := s.ResetProgress(); err != nil {
		t.Fatalf("ResetProgress() failed: %v", err)
	}

	rec := s.Record()
	if rec.Profile != (progress.Profile{DisplayName: "Mira"}) {
		t.Errorf("Profile = %+v", rec.Profile)
	}
	if rec.Skips != (progress.SkipLedger{Available: 3}) || len(rec.Results) != 0 {
		t.Errorf("record not reset: %+v", rec)
	}
	if s.Level() != 1 || s.Phase() != PhasePlaying {
		t.Errorf("level %d phase %v, expected a fresh level 1", s.Level(), s.Phase())
	}

	found := false
	for _, e := range *events {
		if _, ok := e.(ProgressReset); ok {
			found = true
		}
	}
	if !found {
		t.Error("ProgressReset not emitted")
	}
}

func TestNewSessionRejectsBadParams(t *testing.T) {
	opts := smallOptions(nil)
	opts.Params.NumColors = 9
	if _, err := NewSession(opts); !errors.Is(err, puzzle.ErrConfiguration) {
		t.Errorf("NewSession() = %v, expected ErrConfiguration", err)
	}
}

func TestSessionPauseResume(t *testing.T) {
	s, _ := newSession(t, nil)

	s.Resume()
	if s.timer.Running() {
		t.Error("Resume() before a level should not start the timer")
	}

	if err := s.StartLevel(1); err != nil {
		t.Fatalf("StartLevel(1) failed: %v", err)
	}
	s.Pause()
	if s.timer.Running() {
		t.Error("timer running after Pause()")
	}
	s.Resume()
	if !s.timer.Running() {
		t.Error("timer stopped after Resume()")
	}

	solve(t, s)
	s.Resume()
	if s.timer.Running() {
		t.Error("Resume() after a win should leave the timer stopped")
	}
}

func TestSessionSetDisplayName(t *testing.T) {
	p := NewMemoryPersister(nil)
	s, _ := newSession(t, p)

	s.SetDisplayName("  Ada  ")
	if got := s.Record().Profile.DisplayName; got != "Ada" {
		t.Errorf("DisplayName = %q, expected %q", got, "Ada")
	}

	rec, err := p.Load()
	if err != nil || rec == nil {
		t.Fatalf("Load() = %v, %v, expected saved record", rec, err)
	}
	if rec.Profile.DisplayName != "Ada" {
		t.Errorf("saved DisplayName = %q, expected %q", rec.Profile.DisplayName, "Ada")
	}

	if err := s.ResetProgress(); err != nil {
		t.Fatalf("ResetProgress() failed: %v", err)
	}
	if got := s.Record().Profile.DisplayName; got != "Ada" {
		t.Errorf("DisplayName after reset = %q, expected %q", got, "Ada")
	}
}
