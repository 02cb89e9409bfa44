package progress

import (
	"fmt"
	"time"
)

// Rules govern progression.
type Rules struct {
	MaxLevel       int // Last level of the set
	SkipBonusEvery int // A skip is awarded for completing every Nth level
	InitialSkips   int // Skips granted to a new or reset profile
}

// DefaultRules returns the standard progression: 2000 levels, a bonus skip
// every 5 levels, 3 skips to start.
func DefaultRules() Rules {
	return Rules{MaxLevel: 2000, SkipBonusEvery: 5, InitialSkips: 3}
}

// WinOutcome describes what a recorded win changed.
type WinOutcome struct {
	Level       int
	Stars       int
	Improved    bool // Stored result was replaced
	SkipAwarded bool
	NextLevel   int
	SetComplete bool // Level was the last of the set
}

// SkipOutcome describes a recorded skip.
type SkipOutcome struct {
	Level       int
	Unlimited   bool
	Remaining   int
	NextLevel   int
	SetComplete bool
}

// Tracker applies progression rules to a Record.
type Tracker struct {
	rec   *Record
	rules Rules
}

// NewTracker wraps rec. A nil rec starts a fresh record.
func NewTracker(rec *Record, rules Rules) *Tracker {
	if rec == nil {
		rec = NewRecord("")
		rec.Skips.Available = rules.InitialSkips
	}
	rec.Normalize(rules)
	return &Tracker{rec: rec, rules: rules}
}

// Record returns the tracked record.
func (t *Tracker) Record() *Record {
	return t.rec
}

// Rules returns the progression rules.
func (t *Tracker) Rules() Rules {
	return t.rules
}

// Playable returns true if level n is unlocked.
func (t *Tracker) Playable(n int) bool {
	return n >= 1 && n <= t.rules.MaxLevel && n <= t.rec.Profile.HighestLevelReached+1
}

// Frontier returns the highest playable level.
func (t *Tracker) Frontier() int {
	return min(t.rec.Profile.HighestLevelReached+1, t.rules.MaxLevel)
}

// NextLevel returns the level after n, clamped to the set. The bool is true
// when n is already the last level.
func (t *Tracker) NextLevel(n int) (int, bool) {
	if n >= t.rules.MaxLevel {
		return t.rules.MaxLevel, true
	}
	return n + 1, false
}

// StartLevel moves the current-level pointer to n.
func (t *Tracker) StartLevel(n int) error {
	if !t.Playable(n) {
		return fmt.Errorf("%w: level %d (frontier %d)", ErrLevelLocked, n, t.Frontier())
	}
	t.rec.CurrentLevel = n
	return nil
}

// RecordWin merges a completed level into the record.
func (t *Tracker) RecordWin(level, moves, elapsedSeconds, stars int, at time.Time) WinOutcome {
	res := LevelResult{
		Moves:          moves,
		ElapsedSeconds: elapsedSeconds,
		Stars:          stars,
		RecordedAt:     at,
	}

	out := WinOutcome{Level: level, Stars: stars}
	if prev, ok := t.rec.Results[level]; !ok || res.Better(prev) {
		t.rec.Results[level] = res
		out.Improved = true
	}

	p := &t.rec.Profile
	p.TotalStarsEarned += stars
	p.HighestLevelReached = max(p.HighestLevelReached, level)
	p.AttemptsCompleted++

	if t.rules.SkipBonusEvery > 0 && level%t.rules.SkipBonusEvery == 0 {
		t.rec.Skips.Available++
		out.SkipAwarded = true
	}

	out.NextLevel, out.SetComplete = t.NextLevel(level)
	t.rec.ResumeLevel = out.NextLevel
	return out
}

// Skip records level as skipped and moves to the next one.
// With unlimited skips on, the available count is left alone.
func (t *Tracker) Skip(level, moves, elapsedSeconds int, at time.Time) (SkipOutcome, error) {
	ledger := &t.rec.Skips
	if !ledger.Unlimited && ledger.Available <= 0 {
		return SkipOutcome{}, ErrNoSkipsAvailable
	}

	if !ledger.Unlimited {
		ledger.Available--
	}
	ledger.Used++

	// Never shadow a real completion with a skip marker.
	if _, ok := t.rec.Results[level]; !ok {
		t.rec.Results[level] = LevelResult{
			Moves:          moves,
			ElapsedSeconds: elapsedSeconds,
			Skipped:        true,
			RecordedAt:     at,
		}
	}

	out := SkipOutcome{Level: level, Unlimited: ledger.Unlimited, Remaining: ledger.Available}
	out.NextLevel, out.SetComplete = t.NextLevel(level)
	t.rec.CurrentLevel = out.NextLevel
	t.rec.ResumeLevel = out.NextLevel
	return out, nil
}

// ToggleUnlimited flips unlimited skips and returns the new value.
func (t *Tracker) ToggleUnlimited() bool {
	t.rec.Skips.Unlimited = !t.rec.Skips.Unlimited
	return t.rec.Skips.Unlimited
}

// Reset clears results and totals. The display name and settings survive.
func (t *Tracker) Reset() {
	name := t.rec.Profile.DisplayName
	t.rec.Results = make(map[int]LevelResult)
	t.rec.Profile = Profile{DisplayName: name}
	t.rec.Skips = SkipLedger{Available: t.rules.InitialSkips}
	t.rec.CurrentLevel = 1
	t.rec.ResumeLevel = 1
}

// SetDisplayName renames the player.
func (t *Tracker) SetDisplayName(name string) {
	t.rec.Profile.DisplayName = name
}
