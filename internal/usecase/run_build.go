package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/runoshun/mvnwrap/internal/domain"
	"github.com/runoshun/mvnwrap/maven"
)

// Log categories.
const (
	categoryRun = "run"
)

// RunBuildInput contains the parameters for running Maven.
type RunBuildInput struct {
	Request domain.Request
}

// RunBuildOutput describes a finished run.
// It is returned for failed builds as well, together with the error.
// Fields are ordered to minimize memory padding.
type RunBuildOutput struct {
	Outcome    domain.Outcome // nil when the process could not be started
	RunID      string
	Invocation domain.Invocation
	Duration   time.Duration
}

// RunBuild is the use case for running Maven once.
type RunBuild struct {
	launcher domain.Launcher
	logger   domain.Logger
	clock    domain.Clock
	newID    func() string
}

// NewRunBuild creates a new RunBuild use case.
func NewRunBuild(launcher domain.Launcher, logger domain.Logger, clock domain.Clock) *RunBuild {
	return &RunBuild{
		launcher: launcher,
		logger:   logger,
		clock:    clock,
		newID:    uuid.NewString,
	}
}

// WithIDGenerator replaces the run ID generator.
func (uc *RunBuild) WithIDGenerator(newID func() string) *RunBuild {
	uc.newID = newID
	return uc
}

// Execute runs Maven and waits for it to exit.
// A non-zero exit is returned as *domain.Failure; a launch error is returned unwrapped.
func (uc *RunBuild) Execute(_ context.Context, in RunBuildInput) (*RunBuildOutput, error) {
	req := in.Request
	if len(req.Goals) == 0 {
		return nil, domain.ErrNoGoals
	}

	m, err := maven.NewWithLauncher(&req.Options, uc.launcher)
	if err != nil {
		return nil, err
	}

	runID := uc.newID()
	defer func() { _ = uc.logger.CloseRun(runID) }()

	opts := m.Options()
	inv := uc.launcher.Resolve(opts.Selection(), m.Args(req.Goals, req.Defines, req.Projects))
	uc.logger.Info(runID, categoryRun, fmt.Sprintf("start in %s: %s", inv.Dir, strings.Join(inv.Argv(), " ")))

	start := uc.clock.Now()
	outcome, err := m.Execute(req.Goals, req.Defines, req.Projects).Result()
	out := &RunBuildOutput{
		RunID:      runID,
		Invocation: inv,
		Outcome:    outcome,
		Duration:   uc.clock.Now().Sub(start),
	}

	if err != nil {
		uc.logger.Error(runID, categoryRun, fmt.Sprintf("launch failed: %v", err))
		return out, err
	}

	if failure, ok := outcome.(*domain.Failure); ok {
		uc.logger.Warn(runID, categoryRun, fmt.Sprintf("%v after %s", failure, out.Duration))
		return out, failure
	}

	uc.logger.Info(runID, categoryRun, fmt.Sprintf("succeeded after %s", out.Duration))
	return out, nil
}
