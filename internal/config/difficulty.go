package config

import "fmt"

// DifficultyPreset names a fixed puzzle size.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (easy, normal, hard)", ErrInvalidConfig, s)
}

// ColorsForPreset returns how many colors a preset deals.
func ColorsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 4
	case DifficultyHard:
		return 8
	default:
		return 6
	}
}

// ApplyPreset resizes the puzzle for a preset. Every color fills one
// container and two empties are always dealt. Normal leaves the loaded
// configuration untouched.
func ApplyPreset(cfg *WaterSortConfig, preset DifficultyPreset) {
	if preset == DifficultyNormal {
		return
	}
	n := min(ColorsForPreset(preset), len(cfg.Puzzle.Palette))
	cfg.Puzzle.Colors = n
	cfg.Puzzle.Filled = n
	cfg.Puzzle.Empty = 2
}
