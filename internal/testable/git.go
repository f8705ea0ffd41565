package testable

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GitOpener abstracts opening a git repository. Production code uses
// RealGitOpener; tests inject a mock to avoid filesystem dependencies.
type GitOpener interface {
	PlainOpen(path string) (GitRepository, error)
}

// GitRepository is the subset of *git.Repository used to stamp reports with
// the analyzed revision.
type GitRepository interface {
	Head() (*plumbing.Reference, error)
}

// RealGitOpener is the production implementation of GitOpener. It walks up
// from path to find the enclosing repository, so a module nested inside a
// larger checkout still resolves.
type RealGitOpener struct{}

// PlainOpen opens the git repository containing path.
func (RealGitOpener) PlainOpen(path string) (GitRepository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// DefaultGitOpener is the production GitOpener used as default.
var DefaultGitOpener GitOpener = RealGitOpener{}

// Compile-time interface checks.
var _ GitOpener = RealGitOpener{}
var _ GitRepository = (*git.Repository)(nil)
