package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"envscope/internal/envscope"
	"envscope/internal/profile"
	"envscope/internal/runner"
	"envscope/internal/system"
	"envscope/internal/ui"
)

type runOptions struct {
	sets     []string
	profiles []string
	clear    bool
	dryRun   bool
}

var runOpts runOptions

func init() {
	rootCmd.AddCommand(runCmd)
	f := runCmd.Flags()
	f.StringArrayVarP(&runOpts.sets, "set", "e", nil, "set KEY=value for the command (repeatable)")
	f.StringArrayVarP(&runOpts.profiles, "profile", "p", nil, "apply a saved profile (repeatable, later wins)")
	f.BoolVar(&runOpts.clear, "clear", false, "start the command from an empty environment")
	f.BoolVar(&runOpts.dryRun, "dry-run", false, "print the environment changes instead of running")
	// everything after the command name belongs to the command
	f.SetInterspersed(false)
}

var runCmd = &cobra.Command{
	Use:   "run [flags] [--] command [args...]",
	Short: "Run a command in a patched or cleared environment",
	Long: "Applies --profile and --set assignments (keys are upper-cased) on top of the current\n" +
		"environment, or of an empty one with --clear, runs the command and restores the environment.\n" +
		"The command's exit code becomes envscope's exit code.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vars, err := runOpts.vars()
		if err != nil {
			return err
		}
		if runOpts.dryRun {
			rows, err := planRun(os.Environ(), vars, runOpts.clear)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderDiff(rows, isTTY(cmd.OutOrStdout())))
			return nil
		}
		stdio := runner.Stdio{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
		code, err := execRun(cmd.Context(), envscope.New(envscope.OS()), vars, runOpts.clear, stdio, args)
		if err != nil {
			return err
		}
		if code != 0 {
			return &ExitError{Code: code}
		}
		return nil
	},
}

// vars merges the selected profiles in order, then the --set assignments.
func (o runOptions) vars() (map[string]any, error) {
	merged := profile.Profile{}
	for _, name := range o.profiles {
		p, err := profile.Get(name)
		if err != nil {
			return nil, err
		}
		for k, v := range p {
			merged[k] = v
		}
	}
	sets, err := profile.ParseAssignments(o.sets)
	if err != nil {
		return nil, err
	}
	for k, v := range sets {
		merged[k] = v
	}
	return merged.Vars(), nil
}

// scoped wraps body in the clear and patch scopes requested.
func scoped(s *envscope.Scope, vars map[string]any, clear bool, body func() error) func() error {
	fn := body
	if len(vars) > 0 {
		inner := fn
		fn = func() error { return s.WithPatch(vars, inner) }
	}
	if clear {
		inner := fn
		fn = func() error { return s.WithClear(inner) }
	}
	return fn
}

// execRun runs argv inside the scopes on s and checks that s's environment
// is back to its previous state afterwards.
func execRun(ctx context.Context, s *envscope.Scope, vars map[string]any, clear bool, stdio runner.Stdio, argv []string) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	// resolve against the PATH the caller has, --clear removes it
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return -1, err
	}
	before := envscope.CaptureAll(s.Env()).Map()
	code := -1
	err = scoped(s, vars, clear, func() error {
		system.Logger.Debug("starting command", "path", path, "args", argv[1:], "vars", len(vars), "clear", clear)
		var err error
		code, err = runner.Run(ctx, stdio, path, argv[1:]...)
		return err
	})()
	if leaked := ui.Diff(before, envscope.CaptureAll(s.Env()).Map()); len(leaked) > 0 {
		system.Logger.Warn("environment not restored after command", "changes", len(leaked))
	}
	if err != nil {
		return code, fmt.Errorf("run %s: %w", argv[0], err)
	}
	system.Logger.Debug("command finished", "code", code)
	return code, nil
}

// planRun replays the scopes on a copy of environ and reports what the
// command would see changed.
func planRun(environ []string, vars map[string]any, clear bool) ([]ui.DiffRow, error) {
	env := envscope.NewMapEnv(environ)
	before := env.Map()
	var rows []ui.DiffRow
	err := scoped(envscope.New(env), vars, clear, func() error {
		rows = ui.Diff(before, env.Map())
		return nil
	})()
	return rows, err
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
