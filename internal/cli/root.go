package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfg "envscope/internal/config"
	"envscope/internal/system"
)

var (
	logLevel  string
	appConfig = cfg.Default()
)

var rootCmd = &cobra.Command{
	Use:   "envscope",
	Short: "envscope – run commands in a scoped environment",
	Long: "envscope applies, clears and inspects environment variables for the lifetime of a command,\n" +
		"restoring the previous state afterwards.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := cfg.Load()
		if err != nil {
			return err
		}
		appConfig = c
		level := c.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		return system.SetLevel(level)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// ExitError carries a child process exit code up to Execute.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
