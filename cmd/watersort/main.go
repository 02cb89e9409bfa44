// watersort is a terminal water sort puzzle: pour colored liquid between
// tubes until every tube holds a single color.
//
// Usage:
//
//	watersort play [level]   - Play (menu, or jump straight to a level)
//	watersort levels         - Show the level grid with stars and skips
//	watersort profile        - Show or rename the player profile
//	watersort history        - List recent wins and skips
//	watersort reset          - Reset all progress
//	watersort serve          - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>           - Progress database (default: ~/.watersort/progress.db)
//	--profile <name>      - Player profile (default: "default")
//	--config <path>       - Game config file (YAML or TOML)
//	--difficulty <preset> - easy, normal or hard
//	--seed <value>        - RNG seed for reproducible shuffles
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagProfile    string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "watersort",
	Short: "Water Sort - sort colored liquid in your terminal",
	Long: `Water Sort is a terminal puzzle: pour liquid between tubes until
every tube holds one color. Finish levels to earn up to three stars and
unlock the next one.

Available commands:
  play     - Play (opens the menu, or a given level)
  levels   - Show the level grid
  profile  - Show or rename the player profile
  history  - List recent wins and skips
  reset    - Reset all progress
  serve    - Start SSH server for remote play

Examples:
  watersort play
  watersort play 12 --difficulty hard
  watersort levels --page 2
  watersort profile --name "Ada"
  watersort serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.watersort/progress.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "default", "Player profile name")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}
