package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagProfilesDelete string

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List or delete saved settings",
	Long: `List the settings saved per profile: the ball speed chosen with +/-
and the last explicit difficulty. Local games use the "local" profile
unless --profile is given; SSH sessions use the SSH user name.

Examples:
  pong profiles
  pong profiles --delete alice`,
	Args: cobra.NoArgs,
	RunE: runProfiles,
}

func init() {
	profilesCmd.Flags().StringVar(&flagProfilesDelete, "delete", "", "Forget the settings of this profile")
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagProfilesDelete != "" {
		if err := store.DeleteSettings(flagProfilesDelete); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted settings for %s\n", flagProfilesDelete)
		return nil
	}

	list, err := store.Profiles()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(out, "No saved profiles.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-6s  %-10s  %s\n", "Profile", "Speed", "Difficulty", "Updated")
	fmt.Fprintf(out, "  %-16s  %-6s  %-10s  %s\n", "-------", "-----", "----------", "-------")
	for _, st := range list {
		difficulty := st.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		updated := "-"
		if !st.UpdatedAt.IsZero() {
			updated = st.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "  %-16s  %-6s  %-10s  %s\n",
			st.Profile, fmt.Sprintf("%.1fx", st.SpeedMultiplier), difficulty, updated)
	}
	return nil
}
