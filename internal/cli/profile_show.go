package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"envscope/internal/profile"
	"envscope/internal/ui"
)

func init() {
	profileCmd.AddCommand(profileShowCmd)
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the variables of a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profile.Get(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(p) == 0 {
			fmt.Fprintln(out, "(empty)")
			return nil
		}
		fmt.Fprint(out, ui.RenderTable(ui.RowsFromMap(p), isTTY(out)))
		return nil
	},
}
