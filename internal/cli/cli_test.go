package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/runoshun/mvnwrap/internal/app"
	"github.com/runoshun/mvnwrap/internal/domain"
	"github.com/runoshun/mvnwrap/internal/testutil"
	"github.com/stretchr/testify/require"
)

const testDir = "/work/app"

// testEnv bundles a container built from mocks with the mocks themselves.
type testEnv struct {
	container *app.Container
	launcher  *testutil.MockLauncher
	loader    *testutil.MockConfigLoader
	manager   *testutil.MockConfigManager
	repos     *testutil.MockRepoLocator
	logger    *testutil.MockLogger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		launcher: testutil.NewMockLauncher(),
		loader:   &testutil.MockConfigLoader{Config: domain.NewDefaultConfig()},
		manager:  &testutil.MockConfigManager{},
		repos:    &testutil.MockRepoLocator{},
		logger:   &testutil.MockLogger{},
	}
	clock := &testutil.MockClock{
		NowTime: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Step:    2 * time.Second,
	}
	env.container = app.NewWithDeps(
		app.Config{Dir: testDir},
		env.launcher,
		env.loader,
		env.manager,
		env.repos,
		env.logger,
		clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return env
}

// execute runs the root command with args and returns stdout, stderr and the error.
func (env *testEnv) execute(args ...string) (string, string, error) {
	root := NewRootCommand(env.container, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func (env *testEnv) mustExecute(t *testing.T, args ...string) (string, string) {
	t.Helper()
	stdout, stderr, err := env.execute(args...)
	require.NoError(t, err)
	return stdout, stderr
}
