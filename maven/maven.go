// Package maven runs Apache Maven from Go.
//
// A Maven value holds an immutable set of Options. Each call to Execute
// translates the options and the request into an argument vector, starts
// mvn (or the project's ./mvnw wrapper) with the caller's standard streams,
// and returns a Future that settles when the process exits:
//
//	m, err := maven.New(&maven.Options{Quiet: true, Profiles: []string{"ci"}})
//	if err != nil {
//		return err
//	}
//	err = m.Execute([]string{"clean", "install"}, maven.NewDefines("skipTests", "true"), nil).Wait()
//
// Wait returns nil when Maven exits with code 0, a *Failure carrying the exit
// code or signal otherwise, or the error that prevented the process from starting.
package maven

import (
	"fmt"
	"os"

	"github.com/runoshun/mvnwrap/internal/domain"
	"github.com/runoshun/mvnwrap/internal/infra/executor"
)

// Re-exported domain types.
type (
	Options  = domain.Options
	Define   = domain.Define
	Defines  = domain.Defines
	Outcome  = domain.Outcome
	Success  = domain.Success
	Failure  = domain.Failure
	Future   = domain.Future
	Launcher = domain.Launcher
)

// NewDefines builds ordered defines from alternating key/value pairs.
func NewDefines(kv ...string) Defines {
	return domain.NewDefines(kv...)
}

// DefinesFromMap converts a map into defines ordered by key.
func DefinesFromMap(m map[string]string) Defines {
	return domain.DefinesFromMap(m)
}

// Maven is a configured Maven wrapper. It is safe for concurrent use.
type Maven struct {
	launcher domain.Launcher
	opts     domain.Options
}

// New creates a wrapper that launches processes on the host.
// A nil opts is allowed. An empty WorkingDirectory defaults to the current directory.
func New(opts *Options) (*Maven, error) {
	return NewWithLauncher(opts, executor.NewLauncher())
}

// Create is an alias for New.
func Create(opts *Options) (*Maven, error) {
	return New(opts)
}

// NewWithLauncher creates a wrapper that starts processes through launcher.
func NewWithLauncher(opts *Options, launcher Launcher) (*Maven, error) {
	var o domain.Options
	if opts != nil {
		o = opts.Clone()
	}
	if o.WorkingDirectory == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get current directory: %w", err)
		}
		o.WorkingDirectory = cwd
	}
	return &Maven{launcher: launcher, opts: o}, nil
}

// Options returns a copy of the wrapper's options.
func (m *Maven) Options() Options {
	return m.opts.Clone()
}

// Args returns the argument vector Execute would pass to Maven.
func (m *Maven) Args(commands []string, defines Defines, projects []string) []string {
	return domain.BuildArgs(m.opts, commands, defines, projects)
}

// Execute runs Maven with the given goals, defines and reactor projects.
// Passing a single goal is the same as a one-element slice.
func (m *Maven) Execute(commands []string, defines Defines, projects []string) *Future {
	args := m.Args(commands, defines, projects)
	return m.launcher.Launch(m.opts.Selection(), args)
}
