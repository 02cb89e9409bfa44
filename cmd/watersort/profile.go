package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/platform/tui"
)

var (
	flagName         string
	flagListProfiles bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or rename the player profile",
	Long: `Print the lifetime totals of the selected profile.

Examples:
  watersort profile
  watersort profile --name "Ada"
  watersort profile --profile alice
  watersort profile --list`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&flagName, "name", "", "Set the display name")
	profileCmd.Flags().BoolVar(&flagListProfiles, "list", false, "List every stored profile")
}

func runProfile(_ *cobra.Command, _ []string) error {
	env, err := openSession(true)
	if err != nil {
		return err
	}
	defer env.Close()

	if flagListProfiles {
		return listProfiles(env)
	}

	sess := env.session
	if name := strings.TrimSpace(flagName); name != "" {
		sess.SetDisplayName(name)
		fmt.Printf("Display name set to %q\n\n", name)
	}

	rec := sess.Record()
	name := rec.Profile.DisplayName
	if name == "" {
		name = env.profile.Profile()
	}

	fmt.Printf("Profile %s (%s)\n\n", name, env.profile.Profile())
	fmt.Println(tui.ProfileSummary(rec))
	fmt.Printf("Resume at level %s\n", humanize.Comma(int64(rec.ResumeLevel)))
	return nil
}

func listProfiles(env *gameEnv) error {
	profiles, err := env.store.Profiles()
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Println("No profiles stored yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-16s  %7s  %7s  %s\n", "Profile", "Name", "Level", "Stars", "Last played")
	fmt.Printf("  %-16s  %-16s  %7s  %7s  %s\n", "-------", "----", "-----", "-----", "-----------")
	for _, p := range profiles {
		fmt.Printf("  %-16s  %-16s  %7s  %7s  %s\n",
			p.Name,
			p.DisplayName,
			humanize.Comma(int64(p.HighestLevel)),
			humanize.Comma(int64(p.TotalStars)),
			humanize.Time(p.UpdatedAt),
		)
	}
	return nil
}
