package tsdetect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dfpello/smellscan/internal/testable"
)

// FS is the file system implementation used by this package.
var FS testable.FileSystem = testable.DefaultFS

// ReportName is the fixed name the tsDetect output is moved to.
const ReportName = "test-smells-report.csv"

var (
	// ErrJarNotFound is returned when the tsDetect jar cannot be read.
	ErrJarNotFound = errors.New("tsDetect jar not found")

	// ErrJavaNotFound is returned when no java launcher can be located.
	ErrJavaNotFound = errors.New("java not found on PATH")

	// ErrStartFailed is returned when the java process cannot be launched.
	ErrStartFailed = errors.New("cannot start")

	// ErrOutputNotFound is returned when tsDetect exits cleanly but leaves no
	// file matching OutputPattern behind.
	ErrOutputNotFound = errors.New("tsDetect did not produce an output file (" + OutputPattern + ")")
)

// ExitError reports a non-zero tsDetect exit status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("tsDetect exited with code %d", e.Code)
}

// Options configures one tsDetect run.
type Options struct {
	// Java is the java launcher; Jar the tsDetect jar to run.
	Java string
	Jar  string

	// Manifest is the input file and OutputDir the directory passed to
	// tsDetect and the final home of the report.
	Manifest  string
	OutputDir string

	// WorkDir is the process working directory. tsDetect drops its report
	// here, so it is also where the report is searched for.
	WorkDir string

	// Timeout bounds the subprocess. Zero means wait indefinitely.
	Timeout time.Duration

	// Stdin, Stdout and Stderr default to the parent's streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Tool runs tsDetect through a ProcessRunner and finds its report through an
// OutputLocator. Both are replaceable in tests.
type Tool struct {
	Runner  ProcessRunner
	Locator OutputLocator
}

// New returns a Tool wired to the real JVM and a GlobLocator.
func New() *Tool {
	return &Tool{
		Runner:  NewExecRunner(nil),
		Locator: GlobLocator{},
	}
}

// Command returns the process tsDetect is launched as.
func Command(opts Options) Process {
	p := Process{
		Name:   opts.Java,
		Args:   []string{"-jar", opts.Jar, opts.Manifest, opts.OutputDir},
		Dir:    opts.WorkDir,
		Stdin:  opts.Stdin,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	}
	if p.Stdin == nil {
		p.Stdin = os.Stdin
	}
	if p.Stdout == nil {
		p.Stdout = os.Stdout
	}
	if p.Stderr == nil {
		p.Stderr = os.Stderr
	}
	return p
}

// Run executes tsDetect and moves its report to OutputDir/ReportName,
// replacing any earlier report. It returns the report path. A non-zero exit
// yields an *ExitError; a clean exit without a report yields
// ErrOutputNotFound.
func (t *Tool) Run(ctx context.Context, opts Options) (string, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	slog.Info("running tsDetect", "jar", opts.Jar, "manifest", opts.Manifest)
	start := time.Now()

	code, err := t.Runner.Run(ctx, Command(opts))
	if err != nil {
		return "", fmt.Errorf("run tsDetect: %w", err)
	}
	if code != 0 {
		return "", &ExitError{Code: code}
	}
	slog.Debug("tsDetect finished", "duration", time.Since(start))

	slog.Info("looking for tsDetect output", "dir", opts.WorkDir)
	found, err := t.Locator.Locate(opts.WorkDir)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(opts.OutputDir, ReportName)
	if err := moveFile(found, dst); err != nil {
		return "", fmt.Errorf("move %s to %s: %w", filepath.Base(found), dst, err)
	}
	slog.Debug("tsDetect report collected", "from", found, "to", dst)
	return dst, nil
}
