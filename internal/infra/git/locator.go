// Package git locates the git repository enclosing a project directory.
package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/runoshun/mvnwrap/internal/domain"
)

// Ensure Locator implements domain.RepoLocator.
var _ domain.RepoLocator = (*Locator)(nil)

// Locator finds repository roots with go-git.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// RepoRoot returns the worktree root of the repository containing dir.
// Parent directories are searched, so any directory inside a repository works.
func (l *Locator) RepoRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", domain.ErrNotGitRepository
		}
		return "", fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree to build in.
		if errors.Is(err, git.ErrIsBareRepository) {
			return "", domain.ErrNotGitRepository
		}
		return "", fmt.Errorf("get worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}
