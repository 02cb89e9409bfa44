// Package config loads the water sort game configuration from YAML or TOML,
// falling back to the embedded defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/progress"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/puzzle"
)

// ErrInvalidConfig is returned when a loaded configuration cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// WaterSortConfig contains all configuration for the game.
type WaterSortConfig struct {
	Puzzle   PuzzleConfig   `yaml:"puzzle" toml:"puzzle"`
	Scoring  ScoringConfig  `yaml:"scoring" toml:"scoring"`
	Progress ProgressConfig `yaml:"progress" toml:"progress"`
	Timer    TimerConfig    `yaml:"timer" toml:"timer"`
}

// PuzzleConfig defines the level layout.
type PuzzleConfig struct {
	Palette  []string `yaml:"palette" toml:"palette"`   // Color names, in order of use
	Colors   int      `yaml:"colors" toml:"colors"`     // Distinct colors per level
	Capacity int      `yaml:"capacity" toml:"capacity"` // Slots per container
	Filled   int      `yaml:"filled" toml:"filled"`     // Containers filled at start
	Empty    int      `yaml:"empty" toml:"empty"`       // Empty containers at start
}

// ScoringConfig defines the bonus star thresholds.
type ScoringConfig struct {
	MoveTarget int `yaml:"move_target" toml:"move_target"`
	TimeTarget int `yaml:"time_target" toml:"time_target"` // Seconds
}

// ProgressConfig defines level progression.
type ProgressConfig struct {
	MaxLevel       int `yaml:"max_level" toml:"max_level"`
	SkipBonusEvery int `yaml:"skip_bonus_every" toml:"skip_bonus_every"`
	InitialSkips   int `yaml:"initial_skips" toml:"initial_skips"`
}

// TimerConfig defines the play clock.
type TimerConfig struct {
	TickMillis int `yaml:"tick_ms" toml:"tick_ms"`
}

// Validate checks every section and reports the first bad field.
func (c WaterSortConfig) Validate() error {
	if _, err := c.Params(); err != nil {
		return fmt.Errorf("%w: puzzle: %v", ErrInvalidConfig, err)
	}
	switch {
	case c.Scoring.MoveTarget < 0:
		return fmt.Errorf("%w: scoring.move_target must not be negative", ErrInvalidConfig)
	case c.Scoring.TimeTarget < 0:
		return fmt.Errorf("%w: scoring.time_target must not be negative", ErrInvalidConfig)
	case c.Progress.MaxLevel < 1:
		return fmt.Errorf("%w: progress.max_level must be at least 1", ErrInvalidConfig)
	case c.Progress.SkipBonusEvery < 0:
		return fmt.Errorf("%w: progress.skip_bonus_every must not be negative", ErrInvalidConfig)
	case c.Progress.InitialSkips < 0:
		return fmt.Errorf("%w: progress.initial_skips must not be negative", ErrInvalidConfig)
	case c.Timer.TickMillis < 0:
		return fmt.Errorf("%w: timer.tick_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Params converts the puzzle section to generation parameters.
func (c WaterSortConfig) Params() (puzzle.Params, error) {
	palette, ok := puzzle.ParsePalette(c.Puzzle.Palette)
	if !ok {
		return puzzle.Params{}, fmt.Errorf("%w: unknown color in palette %v", puzzle.ErrConfiguration, c.Puzzle.Palette)
	}
	p := puzzle.Params{
		Palette:   palette,
		NumColors: c.Puzzle.Colors,
		Capacity:  c.Puzzle.Capacity,
		Filled:    c.Puzzle.Filled,
		Empty:     c.Puzzle.Empty,
	}
	return p, p.Validate()
}

// StarRules returns the scoring thresholds.
func (c WaterSortConfig) StarRules() puzzle.StarRules {
	return puzzle.StarRules{MoveTarget: c.Scoring.MoveTarget, TimeTarget: c.Scoring.TimeTarget}
}

// Rules returns the progression rules.
func (c WaterSortConfig) Rules() progress.Rules {
	return progress.Rules{
		MaxLevel:       c.Progress.MaxLevel,
		SkipBonusEvery: c.Progress.SkipBonusEvery,
		InitialSkips:   c.Progress.InitialSkips,
	}
}

// TickInterval returns the timer resolution. Zero means one second.
func (c WaterSortConfig) TickInterval() time.Duration {
	if c.Timer.TickMillis <= 0 {
		return time.Second
	}
	return time.Duration(c.Timer.TickMillis) * time.Millisecond
}
