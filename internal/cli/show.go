package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"envscope/internal/envscope"
	"envscope/internal/ui"
)

type showOptions struct {
	prefix string
	all    bool
	json   bool
}

var showOpts showOptions

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showOpts.prefix, "prefix", "", "only show variables starting with this prefix (default from config)")
	showCmd.Flags().BoolVar(&showOpts.all, "all", false, "show every variable")
	showCmd.Flags().BoolVar(&showOpts.json, "json", false, "output JSON")
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List environment variables matching the configured prefix",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := showOpts.prefix
		if prefix == "" {
			prefix = appConfig.Prefix
		}
		if showOpts.all {
			prefix = ""
		}
		rows := ui.RowsFromMap(envscope.CapturePrefix(envscope.OS(), prefix).Map())
		out := cmd.OutOrStdout()
		if showOpts.json {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		}
		if len(rows) == 0 {
			fmt.Fprintln(out, "(none)")
			return nil
		}
		fmt.Fprint(out, ui.RenderTable(rows, isTTY(out)))
		return nil
	},
}
