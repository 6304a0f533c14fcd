package domain

import (
	"time"
)

// FileChecker probes the filesystem during executable resolution.
type FileChecker interface {
	// Exists reports whether path exists. It never fails; errors count as absent.
	Exists(path string) bool
}

// Launcher starts Maven processes.
type Launcher interface {
	// Resolve applies the executable resolution policy without starting anything.
	Resolve(sel Selection, args []string) Invocation

	// Launch starts the resolved executable and returns a future that settles
	// when the process exits.
	Launch(sel Selection, args []string) *Future
}

// Logger records invocation events.
type Logger interface {
	Info(runID, category, msg string)
	Debug(runID, category, msg string)
	Warn(runID, category, msg string)
	Error(runID, category, msg string)

	// CloseRun releases resources held for a finished run.
	CloseRun(runID string) error
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- project).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions selects which sources LoadWithOptions reads.
type LoadConfigOptions struct {
	IgnoreGlobal  bool
	IgnoreProject bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetProjectConfigInfo returns information about the project config file.
	GetProjectConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitProjectConfig writes the template to the project config path.
	InitProjectConfig(force bool) (string, error)

	// InitGlobalConfig writes the template to the global config path.
	InitGlobalConfig(force bool) (string, error)
}

// ConfigInfo holds information about a config file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// RepoLocator finds the root of the version-controlled project containing a directory.
type RepoLocator interface {
	// RepoRoot returns the worktree root, or ErrNotGitRepository.
	RepoRoot(dir string) (string, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
