package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"envscope/internal/profile"
)

func init() {
	profileCmd.AddCommand(profileAddCmd)
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name> KEY=value...",
	Short: "Create a profile or add variables to it",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vars, err := profile.ParseAssignments(args[1:])
		if err != nil {
			return err
		}
		created, err := profile.Add(args[0], vars)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if created {
			fmt.Fprintf(out, "✓ created profile %s (%d variable(s))\n", args[0], len(vars))
		} else {
			fmt.Fprintf(out, "• updated profile %s (%d variable(s))\n", args[0], len(vars))
		}
		return nil
	},
}
