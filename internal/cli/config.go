package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfg "envscope/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSchemaCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Initialize and show the configuration location",
	Long:  "Creates the envscope config directory and a default config.yaml when missing, then prints where it lives.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cfg.Path()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if fileExists(p) {
			fmt.Fprintf(out, "• keeping existing config.yaml: %s\n", p)
		} else {
			if err := cfg.Save(cfg.Default()); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ created config.yaml: %s\n", p)
		}
		dir, _ := cfg.Dir()
		fmt.Fprintf(out, "\nconfig dir: %s\nprefix: %s\n", dir, appConfig.Prefix)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of config.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := cfg.MarshalSchema(cfg.Schema())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func fileExists(path string) bool {
	if st, err := os.Stat(path); err == nil && !st.IsDir() {
		return true
	}
	return false
}
