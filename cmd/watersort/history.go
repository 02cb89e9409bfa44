package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/games/watersort"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent wins and skips",
	Long: `Display the most recent attempts of the selected profile, newest first.

Examples:
  watersort history
  watersort history --limit 50`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of attempts to show")
}

func runHistory(_ *cobra.Command, _ []string) error {
	env, err := openSession(true)
	if err != nil {
		return err
	}
	defer env.Close()

	attempts, err := env.profile.RecentAttempts(flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Recent attempts - %s\n\n", env.profile.Profile())
	if len(attempts) == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Println("Run 'watersort play' to start!")
		return nil
	}

	// Print header
	fmt.Printf("  %-6s  %-7s  %5s  %5s  %s\n", "Level", "Result", "Moves", "Time", "When")
	fmt.Printf("  %-6s  %-7s  %5s  %5s  %s\n", "-----", "------", "-----", "----", "----")

	for _, a := range attempts {
		result := watersort.StarString(a.Stars)
		if a.Skipped {
			result = "skipped"
		}
		fmt.Printf("  %-6d  %-7s  %5d  %5s  %s\n",
			a.Level, result, a.Moves, watersort.FormatSeconds(a.ElapsedSeconds), humanize.Time(a.CreatedAt))
	}
	return nil
}
