package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"envscope/internal/profile"
)

func init() {
	profileCmd.AddCommand(profileRemoveCmd)
}

var profileRemoveCmd = &cobra.Command{
	Use:     "rm <name>...",
	Aliases: []string{"remove"},
	Short:   "Remove profiles",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, missing, err := profile.Remove(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, s := range removed {
			fmt.Fprintf(out, "✓ removed: %s\n", s)
		}
		for _, s := range missing {
			fmt.Fprintf(out, "• not found: %s\n", s)
		}
		return nil
	},
}
