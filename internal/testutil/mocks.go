// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/runoshun/mvnwrap/internal/domain"
)

// MockClock is a test double for domain.Clock.
// Each call to Now advances the clock by Step.
type MockClock struct {
	NowTime time.Time
	Step    time.Duration
	mu      sync.Mutex
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.NowTime
	m.NowTime = m.NowTime.Add(m.Step)
	return now
}

// MockFileChecker is a test double for domain.FileChecker.
type MockFileChecker struct {
	Existing map[string]bool
	Checked  []string
	mu       sync.Mutex
}

// NewMockFileChecker creates a MockFileChecker reporting the given paths as existing.
func NewMockFileChecker(paths ...string) *MockFileChecker {
	m := &MockFileChecker{Existing: make(map[string]bool)}
	for _, p := range paths {
		m.Existing[p] = true
	}
	return m
}

// Exists records the probe and reports whether path was registered.
func (m *MockFileChecker) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Checked = append(m.Checked, path)
	return m.Existing[path]
}

// LaunchCall records one call to MockLauncher.Launch.
type LaunchCall struct {
	Selection domain.Selection
	Args      []string
}

// MockLauncher is a test double for domain.Launcher.
// Fields are ordered to minimize memory padding.
type MockLauncher struct {
	Outcome   domain.Outcome // Outcome every launch resolves to (default Success)
	LaunchErr error          // When set, every launch is rejected with it
	Program   string         // Program reported by Resolve (default "mvn")
	Calls     []LaunchCall
	mu        sync.Mutex
}

// NewMockLauncher creates a MockLauncher that succeeds.
func NewMockLauncher() *MockLauncher {
	return &MockLauncher{}
}

// Resolve returns an invocation running Program with args.
func (m *MockLauncher) Resolve(sel domain.Selection, args []string) domain.Invocation {
	program := m.Program
	if sel.ExecutablePath != "" {
		program = sel.ExecutablePath
	}
	if program == "" {
		program = domain.SystemExecutable
	}
	return domain.Invocation{
		Program:    program,
		Executable: program,
		Dir:        sel.WorkingDirectory,
		Args:       slices.Clone(args),
	}
}

// Launch records the call and returns an already settled future.
func (m *MockLauncher) Launch(sel domain.Selection, args []string) *domain.Future {
	m.mu.Lock()
	m.Calls = append(m.Calls, LaunchCall{Selection: sel, Args: slices.Clone(args)})
	m.mu.Unlock()

	f := domain.NewFuture()
	if m.LaunchErr != nil {
		f.Reject(m.LaunchErr)
		return f
	}
	if m.Outcome != nil {
		f.Resolve(m.Outcome)
		return f
	}
	f.Resolve(domain.Success{})
	return f
}

// LastCall returns the most recent launch.
func (m *MockLauncher) LastCall() LaunchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return LaunchCall{}
	}
	return m.Calls[len(m.Calls)-1]
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []string
	Closed  []string
	mu      sync.Mutex
}

func (m *MockLogger) add(level, runID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, fmt.Sprintf("%s %s %s %s", level, runID, category, msg))
}

// Info records an info entry.
func (m *MockLogger) Info(runID, category, msg string) { m.add("INFO", runID, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(runID, category, msg string) { m.add("DEBUG", runID, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(runID, category, msg string) { m.add("WARN", runID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(runID, category, msg string) { m.add("ERROR", runID, category, msg) }

// CloseRun records that the run was closed.
func (m *MockLogger) CloseRun(runID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = append(m.Closed, runID)
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
	Opts    domain.LoadConfigOptions
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	return m.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the configured config and records the options.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.Opts = opts
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	ProjectInfo domain.ConfigInfo
	GlobalInfo  domain.ConfigInfo
	InitErr     error
	InitForce   bool
	InitGlobal  bool
}

// GetProjectConfigInfo returns ProjectInfo.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo { return m.ProjectInfo }

// GetGlobalConfigInfo returns GlobalInfo.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.GlobalInfo }

// InitProjectConfig records the call.
func (m *MockConfigManager) InitProjectConfig(force bool) (string, error) {
	m.InitForce = force
	return m.ProjectInfo.Path, m.InitErr
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(force bool) (string, error) {
	m.InitForce = force
	m.InitGlobal = true
	return m.GlobalInfo.Path, m.InitErr
}

// MockRepoLocator is a test double for domain.RepoLocator.
type MockRepoLocator struct {
	Root string
	Err  error
}

// RepoRoot returns Root or Err.
func (m *MockRepoLocator) RepoRoot(string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Root, nil
}
