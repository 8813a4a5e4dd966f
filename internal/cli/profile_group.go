package cli

import "github.com/spf13/cobra"

// profileCmd is a group command to organize profile management subcommands.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved variable profiles",
	Long:  "Add, remove and list named sets of variables applied by `envscope run --profile`.",
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
