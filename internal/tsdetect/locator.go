package tsdetect

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// OutputPattern matches the timestamped file tsDetect writes into its
// working directory.
const OutputPattern = "Output_TestSmellDetection_*.csv"

// OutputLocator finds the report tsDetect produced in dir.
type OutputLocator interface {
	Locate(dir string) (string, error)
}

// GlobLocator finds the report by matching file names in dir, without
// descending into subdirectories.
type GlobLocator struct {
	// Pattern overrides OutputPattern when set.
	Pattern string
}

// Locate returns the absolute path of the first match in lexical order, or
// ErrOutputNotFound. When several files match, a warning reports the count
// and the first one is still used.
func (l GlobLocator) Locate(dir string) (string, error) {
	pattern := l.Pattern
	if pattern == "" {
		pattern = OutputPattern
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return "", fmt.Errorf("search %s for %s: %w", dir, pattern, err)
	}
	if len(matches) == 0 {
		return "", ErrOutputNotFound
	}
	if len(matches) > 1 {
		slog.Warn("several tsDetect output files found, using the first", "count", len(matches), "file", matches[0])
	}
	return joinDir(dir, matches[0]), nil
}

// Compile-time interface check.
var _ OutputLocator = GlobLocator{}
