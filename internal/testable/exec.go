// Package testable holds the seams smellscan uses to swap the operating
// system out in tests: process execution, the file system and git.
package testable

import (
	"context"
	"os"
	"os/exec"
)

// CommandExecutor is the slice of the process environment needed to find
// and launch the JVM.
type CommandExecutor interface {
	// LookPath resolves an executable name against PATH.
	LookPath(file string) (string, error)

	// Getenv reads an environment variable such as JAVA_HOME.
	Getenv(key string) string

	// CommandContext prepares name to run with args. The process is killed
	// when ctx is done.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// OSExecutor runs real processes.
type OSExecutor struct{}

// LookPath wraps exec.LookPath.
func (OSExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Getenv wraps os.Getenv.
func (OSExecutor) Getenv(key string) string {
	return os.Getenv(key)
}

// CommandContext wraps exec.CommandContext.
func (OSExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...) //nolint:gosec // java path and jar args come from the user
}

// DefaultExecutor returns the OSExecutor.
func DefaultExecutor() CommandExecutor {
	return OSExecutor{}
}
