// Package project resolves the directory layout of the Java project being
// analyzed.
package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dfpello/smellscan/internal/config"
	"github.com/dfpello/smellscan/internal/testable"
)

// FS is the file system implementation used by this package.
var FS testable.FileSystem = testable.DefaultFS

// GitOpener is the opener used to read the project's HEAD revision.
// Defaults to testable.DefaultGitOpener. Tests can replace this to inject mocks.
var GitOpener testable.GitOpener = testable.DefaultGitOpener

// ErrNotDirectory is returned by Resolve when the base path is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Layout holds the absolute directories a run works with.
type Layout struct {
	// BaseDir is the project root. tsDetect runs here and drops its report here.
	BaseDir string

	// TestDir and MainDir are the test and production source roots.
	TestDir string
	MainDir string

	// TargetDir receives the manifest, the jar copy and the final report.
	TargetDir string
}

// Resolve builds a Layout rooted at base. Relative directories in s are
// taken relative to base; absolute ones are used as given.
func Resolve(base string, s config.Settings) (*Layout, error) {
	abs, err := FS.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q (%w)", base, err)
	}
	info, err := FS.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("path %q does not exist (%w)", base, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q: %w", base, ErrNotDirectory)
	}

	return &Layout{
		BaseDir:   abs,
		TestDir:   under(abs, s.TestDir),
		MainDir:   under(abs, s.MainDir),
		TargetDir: under(abs, s.TargetDir),
	}, nil
}

func under(base, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(base, dir)
}

// EnsureTarget creates TargetDir if it does not exist.
func (l *Layout) EnsureTarget() error {
	if err := FS.MkdirAll(l.TargetDir, 0o750); err != nil {
		return fmt.Errorf("create target dir: %w", err)
	}
	return nil
}

// Revision returns the git HEAD commit hash of the repository containing
// dir, or an empty string if dir is not inside a git repository.
func Revision(dir string) string {
	repo, err := GitOpener.PlainOpen(dir)
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	return head.Hash().String()
}
