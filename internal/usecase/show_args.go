package usecase

import (
	"context"

	"github.com/runoshun/mvnwrap/internal/domain"
)

// ShowArgsInput contains the input for the ShowArgs use case.
type ShowArgsInput struct {
	Request domain.Request
}

// ShowArgsOutput contains the resolved command line.
type ShowArgsOutput struct {
	Invocation domain.Invocation
}

// ShowArgs resolves what RunBuild would start, without starting it.
type ShowArgs struct {
	launcher domain.Launcher
}

// NewShowArgs creates a new ShowArgs use case.
func NewShowArgs(launcher domain.Launcher) *ShowArgs {
	return &ShowArgs{launcher: launcher}
}

// Execute resolves the executable and the argument vector.
func (uc *ShowArgs) Execute(_ context.Context, in ShowArgsInput) (*ShowArgsOutput, error) {
	req := in.Request
	return &ShowArgsOutput{
		Invocation: uc.launcher.Resolve(req.Options.Selection(), req.Args()),
	}, nil
}
