package runner

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// Stdio are the streams handed to the child.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run starts name with args in the current process environment, waits for
// it and returns its exit code. A non-zero exit is not an error; failing to
// start the command is.
func Run(ctx context.Context, stdio Stdio, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// nil Env inherits the environment as it is at Start
	cmd.Stdin = stdio.In
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ctx.Err() != nil {
			return exitErr.ExitCode(), ctx.Err()
		}
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
