package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var flagYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all progress",
	Long: `Clear level results, stars, the skip ledger and attempt history of the
selected profile. The display name and settings are kept.

Examples:
  watersort reset
  watersort reset --profile alice --yes`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
}

func runReset(_ *cobra.Command, _ []string) error {
	if !flagYes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("refusing to reset without --yes")
		}
		fmt.Printf("Reset all progress of profile %q? [y/N] ", flagProfile)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	env, err := openSession(true)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.session.ResetProgress(); err != nil {
		return err
	}
	if err := env.store.ClearAttempts(env.profile.Profile()); err != nil {
		return err
	}

	fmt.Printf("Progress of profile %q reset.\n", env.profile.Profile())
	return nil
}
