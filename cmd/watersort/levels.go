package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/platform/tui"
)

var flagPage int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level grid",
	Long: `Print one page of levels with their stars, skip markers and lock state.
Without --page the page holding the next unplayed level is shown.

Examples:
  watersort levels
  watersort levels --page 3`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagPage, "page", 0, "Page to show (1-based)")
}

func runLevels(_ *cobra.Command, _ []string) error {
	env, err := openSession(true)
	if err != nil {
		return err
	}
	defer env.Close()

	sess := env.session
	rec := sess.Record()
	maxLevel := sess.Rules().MaxLevel
	pages := tui.PageOf(maxLevel) + 1

	page := tui.PageOf(sess.Frontier())
	if flagPage > 0 {
		page = min(flagPage, pages) - 1
	}

	fmt.Printf("Levels - page %d/%d\n\n", page+1, pages)

	cells := tui.LevelCells(page, rec, sess.Playable, maxLevel)
	for i := 0; i < len(cells); i += 10 {
		var line strings.Builder
		for _, c := range cells[i:min(i+10, len(cells))] {
			fmt.Fprintf(&line, "%5d %-4s", c.Level, levelMark(c))
		}
		fmt.Println(strings.TrimRight(line.String(), " "))
	}

	fmt.Println()
	fmt.Printf("Next level: %d. Run 'watersort play %d' to play it.\n", sess.Frontier(), sess.Frontier())
	return nil
}

func levelMark(c tui.LevelCell) string {
	switch c.Status {
	case tui.LevelCompleted:
		return watersort.StarString(c.Stars)
	case tui.LevelSkipped:
		return "skip"
	case tui.LevelNew:
		return "new"
	default:
		return "-"
	}
}
