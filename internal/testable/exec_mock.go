package testable

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// MockCommandExecutor is a test double for CommandExecutor.
// It can simulate java not found, non-zero exits, and predetermined output.
type MockCommandExecutor struct {
	// LookPathErr, when non-nil, is returned by LookPath for any file.
	LookPathErr error

	// LookPathResult is returned as the path when LookPathErr is nil.
	LookPathResult string

	// Env backs Getenv. Unlisted keys read as empty.
	Env map[string]string

	// CommandOutputs maps a command key (e.g., "java -version") to the
	// stdout that the resulting exec.Cmd should produce. The key is built from
	// the command name and all arguments joined by spaces.
	CommandOutputs map[string]string

	// ExitCodes maps a command key to the exit status the resulting exec.Cmd
	// terminates with. Unlisted keys exit 0 unless DefaultExitCode is set.
	ExitCodes map[string]int

	// DefaultOutput is written to stdout when no key matches CommandOutputs.
	DefaultOutput string

	// DefaultExitCode is used for commands not listed in ExitCodes.
	DefaultExitCode int

	// Calls records the command keys that were invoked, for assertion purposes.
	Calls []string
}

// LookPath returns the configured result or error.
func (m *MockCommandExecutor) LookPath(file string) (string, error) {
	if m.LookPathErr != nil {
		return "", m.LookPathErr
	}
	if m.LookPathResult != "" {
		return m.LookPathResult, nil
	}
	return "/usr/bin/" + file, nil
}

// Getenv returns the value from Env.
func (m *MockCommandExecutor) Getenv(key string) string {
	return m.Env[key]
}

// CommandContext returns an *exec.Cmd that, when executed, prints the
// configured output and exits with the configured status. It runs through
// "sh" so the real binary is never started.
func (m *MockCommandExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	key := name + " " + strings.Join(args, " ")
	m.Calls = append(m.Calls, key)

	out := m.DefaultOutput
	if o, ok := m.CommandOutputs[key]; ok {
		out = o
	}
	code := m.DefaultExitCode
	if c, ok := m.ExitCodes[key]; ok {
		code = c
	}

	script := fmt.Sprintf("printf '%%s' %q; exit %d", out, code)
	return exec.CommandContext(ctx, "sh", "-c", script) //nolint:gosec // test helper
}

// Compile-time interface check.
var _ CommandExecutor = (*MockCommandExecutor)(nil)
