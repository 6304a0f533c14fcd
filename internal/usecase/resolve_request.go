package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/shlex"
	"github.com/runoshun/mvnwrap/internal/domain"
)

// ResolveRequestInput contains the effective settings for one invocation.
// Fields are ordered to minimize memory padding.
type ResolveRequestInput struct {
	Dir      string             // Directory mvnwrap was started in (or -C)
	Goals    []string           // Goals from the command line; config goals are used when empty
	Defines  []string           // "key=value" entries from the command line
	Projects []string           // Reactor projects
	Maven    domain.MavenConfig // Config values with command-line overrides applied
}

// ResolveRequest turns configuration and command-line input into a Request.
type ResolveRequest struct {
	repos domain.RepoLocator
}

// NewResolveRequest creates a new ResolveRequest use case.
func NewResolveRequest(repos domain.RepoLocator) *ResolveRequest {
	return &ResolveRequest{repos: repos}
}

// Execute builds the request.
// Command-line defines are layered over configured ones; a key set in both
// keeps its configured position and takes the command-line value.
func (uc *ResolveRequest) Execute(_ context.Context, in ResolveRequestInput) (*domain.Request, error) {
	dir := in.Dir
	if in.Maven.UseRepoRoot {
		root, err := uc.repos.RepoRoot(dir)
		if err != nil {
			if errors.Is(err, domain.ErrNotGitRepository) {
				return nil, fmt.Errorf("use repository root from %s: %w", dir, err)
			}
			return nil, fmt.Errorf("locate repository root: %w", err)
		}
		dir = root
	}

	goals := in.Goals
	if len(goals) == 0 && in.Maven.Goals != "" {
		split, err := shlex.Split(in.Maven.Goals)
		if err != nil {
			return nil, fmt.Errorf("%w: maven.goals %q: %v", domain.ErrInvalidGoals, in.Maven.Goals, err)
		}
		goals = split
	}

	configured, err := domain.ParseDefines(in.Maven.Defines)
	if err != nil {
		return nil, fmt.Errorf("config defines: %w", err)
	}
	flags, err := domain.ParseDefines(in.Defines)
	if err != nil {
		return nil, err
	}

	return &domain.Request{
		Options:  in.Maven.Options(dir),
		Goals:    append([]string(nil), goals...),
		Defines:  configured.Merge(flags),
		Projects: append([]string(nil), in.Projects...),
	}, nil
}
