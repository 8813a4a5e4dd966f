package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"envscope/internal/profile"
)

func init() {
	profileCmd.AddCommand(profileLsCmd)
}

var profileLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := profile.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(c) == 0 {
			fmt.Fprintln(out, "(none)")
		}
		for _, name := range c.Names() {
			fmt.Fprintf(out, "%s (%d)\n", name, len(c[name]))
		}
		p, err := profile.Path()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nprofiles file: %s\n", p)
		return nil
	},
}
