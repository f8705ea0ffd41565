// Package tsdetect launches the tsDetect jar and collects the report it
// leaves behind.
package tsdetect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/dfpello/smellscan/internal/testable"
)

// Process describes one subprocess invocation.
type Process struct {
	Name string
	Args []string
	Dir  string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ProcessRunner runs a Process to completion and reports its exit code. A
// non-nil error means the process could not be run or was cancelled; a
// process that ran and failed returns its code with a nil error.
type ProcessRunner interface {
	Run(ctx context.Context, p Process) (int, error)
}

// ExecRunner is the production ProcessRunner built on os/exec.
type ExecRunner struct {
	executor testable.CommandExecutor
}

// NewExecRunner returns an ExecRunner using e, or the real executor if e is nil.
func NewExecRunner(e testable.CommandExecutor) *ExecRunner {
	if e == nil {
		e = testable.DefaultExecutor()
	}
	return &ExecRunner{executor: e}
}

// Run starts p and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, p Process) (int, error) {
	cmd := r.executor.CommandContext(ctx, p.Name, p.Args...)
	cmd.Dir = p.Dir
	cmd.Stdin = p.Stdin
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, fmt.Errorf("%s interrupted: %w", p.Name, ctxErr)
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode(), nil
	}
	return -1, fmt.Errorf("%w %s: %w", ErrStartFailed, p.Name, err)
}

// Compile-time interface check.
var _ ProcessRunner = (*ExecRunner)(nil)
