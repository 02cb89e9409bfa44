// Package progress tracks a player's level results, profile totals and skip
// ledger across sessions. It holds no puzzle state.
package progress

import (
	"errors"
	"time"
)

var (
	ErrNoSkipsAvailable = errors.New("progress: no skips available")
	ErrLevelLocked      = errors.New("progress: level locked")
)

// DefaultTheme is the theme stored for new records.
const DefaultTheme = "default"

// LevelResult is the best outcome recorded for one level.
type LevelResult struct {
	Moves          int
	ElapsedSeconds int
	Stars          int // 0 for a skip
	Skipped        bool
	RecordedAt     time.Time
}

// Better reports whether r should replace prev.
// A completion always beats a skip; a skip never replaces anything.
// Between two completions, fewer moves or less time wins.
func (r LevelResult) Better(prev LevelResult) bool {
	if r.Skipped {
		return false
	}
	if prev.Skipped {
		return true
	}
	return r.Moves < prev.Moves || r.ElapsedSeconds < prev.ElapsedSeconds
}

// Profile holds the player's lifetime totals.
type Profile struct {
	DisplayName         string
	HighestLevelReached int
	TotalStarsEarned    int
	AttemptsCompleted   int
}

// SkipLedger counts skips.
type SkipLedger struct {
	Available int
	Used      int
	Unlimited bool
}

// Settings are presentation preferences persisted alongside progress.
type Settings struct {
	Sound     bool
	Vibration bool
	Theme     string
}

// Record is everything persisted for one player.
type Record struct {
	CurrentLevel int
	ResumeLevel  int
	Results      map[int]LevelResult
	Profile      Profile
	Skips        SkipLedger
	Settings     Settings
}

// NewRecord returns a fresh record with defaults applied.
func NewRecord(displayName string) *Record {
	return &Record{
		CurrentLevel: 1,
		ResumeLevel:  1,
		Results:      make(map[int]LevelResult),
		Profile:      Profile{DisplayName: displayName},
		Skips:        SkipLedger{Available: DefaultRules().InitialSkips},
		Settings: Settings{
			Sound:     true,
			Vibration: true,
			Theme:     DefaultTheme,
		},
	}
}

// Normalize repairs a loaded record so later code never sees zero pointers
// or out-of-range levels.
func (r *Record) Normalize(rules Rules) {
	if r.Results == nil {
		r.Results = make(map[int]LevelResult)
	}
	r.CurrentLevel = clampLevel(r.CurrentLevel, rules.MaxLevel)
	r.ResumeLevel = clampLevel(r.ResumeLevel, rules.MaxLevel)
	if r.Profile.HighestLevelReached < 0 {
		r.Profile.HighestLevelReached = 0
	}
	if r.Skips.Available < 0 {
		r.Skips.Available = 0
	}
	if r.Settings.Theme == "" {
		r.Settings.Theme = DefaultTheme
	}
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	c.Results = make(map[int]LevelResult, len(r.Results))
	for k, v := range r.Results {
		c.Results[k] = v
	}
	return &c
}

// Result returns the stored result for a level.
func (r *Record) Result(level int) (LevelResult, bool) {
	res, ok := r.Results[level]
	return res, ok
}

func clampLevel(n, maxLevel int) int {
	if n < 1 {
		return 1
	}
	if maxLevel > 0 && n > maxLevel {
		return maxLevel
	}
	return n
}
