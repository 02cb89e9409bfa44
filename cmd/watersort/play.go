package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/core"
	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/platform/tui"
)

var flagContinue bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play water sort",
	Long: `Open the menu, or start the given level right away.

Controls:
  Left/Right, H/L   - Move the cursor
  Space/Enter       - Pick a tube, then pour into another
  Mouse click       - Pick or pour
  U/Backspace       - Undo
  + / -             - Add or remove an empty tube
  S                 - Skip the level
  I                 - Toggle unlimited skips
  R                 - Retry with a new shuffle
  N                 - Next level (after a win)
  Esc               - Back to menu
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 4 colors
  normal - config as loaded (6 colors by default)
  hard   - 8 colors

Examples:
  watersort play
  watersort play --continue
  watersort play 25
  watersort play --difficulty hard --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagContinue, "continue", false, "Resume the last played level")
}

func runPlay(_ *cobra.Command, args []string) error {
	level := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid level %q", args[0])
		}
		level = n
	}

	env, err := openSession(false)
	if err != nil {
		return err
	}
	defer env.Close()

	switch {
	case level > 0:
		if err := env.session.StartLevel(level); err != nil {
			return err
		}
	case flagContinue:
		if err := env.session.Continue(); err != nil {
			return err
		}
	}

	tui.RecordAttempts(env.session, env.attempts(), env.logger)
	return tui.Run(env.session, env.attempts(), runtimeConfig())
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
