package main

import (
	"errors"
	"fmt"

	"github.com/dfpello/smellscan/internal/tsdetect"
)

// Exit codes for the smellscan CLI.
const (
	ExitOK          = 0 // Report printed.
	ExitInvalidArgs = 1 // Invalid arguments, bad path, bad config, or no jar.
	ExitToolFailure = 2 // tsDetect could not be started or exited non-zero.
	ExitFatal       = 3 // No report produced, or an I/O failure.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		msg = "smellscan: error"
	}
	return &exitCodeError{code: code, msg: msg}
}

// exitCodeFor maps a pipeline error to the exit code it should produce.
func exitCodeFor(err error) int {
	var ee *tsdetect.ExitError
	switch {
	case errors.As(err, &ee), errors.Is(err, tsdetect.ErrJavaNotFound), errors.Is(err, tsdetect.ErrStartFailed):
		return ExitToolFailure
	case errors.Is(err, tsdetect.ErrJarNotFound):
		return ExitInvalidArgs
	default:
		return ExitFatal
	}
}
