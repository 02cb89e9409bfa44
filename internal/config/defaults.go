package config

import (
	_ "embed"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort/puzzle"
)

//go:embed defaults/watersort.yaml
var defaultWaterSortYAML []byte

// DefaultWaterSortConfig returns the built-in configuration.
func DefaultWaterSortConfig() WaterSortConfig {
	names := make([]string, 0, puzzle.ColorCount)
	for _, c := range puzzle.DefaultPalette() {
		names = append(names, c.String())
	}
	return WaterSortConfig{
		Puzzle: PuzzleConfig{
			Palette:  names,
			Colors:   6,
			Capacity: puzzle.DefaultCapacity,
			Filled:   6,
			Empty:    2,
		},
		Scoring: ScoringConfig{
			MoveTarget: 10,
			TimeTarget: 60,
		},
		Progress: ProgressConfig{
			MaxLevel:       2000,
			SkipBonusEvery: 5,
			InitialSkips:   3,
		},
		Timer: TimerConfig{
			TickMillis: 1000,
		},
	}
}
