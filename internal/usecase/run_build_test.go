package usecase_test

import (
	"context"
	"errors"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/runoshun/mvnwrap/internal/domain"
	"github.com/runoshun/mvnwrap/internal/testutil"
	"github.com/runoshun/mvnwrap/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRunID = "0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0"

func newRunBuild(launcher *testutil.MockLauncher, logger *testutil.MockLogger) *usecase.RunBuild {
	clock := &testutil.MockClock{
		NowTime: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Step:    1500 * time.Millisecond,
	}
	return usecase.NewRunBuild(launcher, logger, clock).
		WithIDGenerator(func() string { return testRunID })
}

func testRequest() domain.Request {
	return domain.Request{
		Options: domain.Options{
			WorkingDirectory: "/work/app",
			Quiet:            true,
		},
		Goals:    []string{"clean", "install"},
		Defines:  domain.NewDefines("skipTests", "true"),
		Projects: []string{"core"},
	}
}

func TestRunBuild_Execute_Success(t *testing.T) {
	// Setup
	launcher := testutil.NewMockLauncher()
	logger := &testutil.MockLogger{}
	uc := newRunBuild(launcher, logger)

	// Execute
	out, err := uc.Execute(context.Background(), usecase.RunBuildInput{Request: testRequest()})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, testRunID, out.RunID)
	assert.Equal(t, domain.Success{}, out.Outcome)
	assert.Equal(t, 1500*time.Millisecond, out.Duration)
	assert.Equal(t, "/work/app", out.Invocation.Dir)

	require.Len(t, launcher.Calls, 1)
	call := launcher.LastCall()
	assert.Equal(t, "/work/app", call.Selection.WorkingDirectory)
	assert.Equal(t, []string{"-q", "-DskipTests=true", "-pl", "core", "clean", "install"}, call.Args)
	assert.Equal(t, call.Args, out.Invocation.Args)

	assert.Equal(t, []string{testRunID}, logger.Closed)
	require.Len(t, logger.Entries, 2)
	assert.True(t, strings.HasPrefix(logger.Entries[0], "INFO "+testRunID+" run start in /work/app: mvn -q"))
	assert.Contains(t, logger.Entries[1], "succeeded after 1.5s")
}

func TestRunBuild_Execute_Failure(t *testing.T) {
	tests := []struct {
		name    string
		outcome *domain.Failure
		logged  string
	}{
		{
			name:    "exit code",
			outcome: &domain.Failure{ExitCode: 1},
			logged:  "maven exited with code 1",
		},
		{
			name:    "signal",
			outcome: &domain.Failure{ExitCode: -1, Signal: syscall.SIGTERM},
			logged:  "maven terminated by signal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launcher := testutil.NewMockLauncher()
			launcher.Outcome = tt.outcome
			logger := &testutil.MockLogger{}
			uc := newRunBuild(launcher, logger)

			out, err := uc.Execute(context.Background(), usecase.RunBuildInput{Request: testRequest()})

			var failure *domain.Failure
			require.ErrorAs(t, err, &failure)
			assert.Same(t, tt.outcome, failure)
			require.NotNil(t, out)
			assert.Equal(t, tt.outcome, out.Outcome)
			require.Len(t, logger.Entries, 2)
			assert.True(t, strings.HasPrefix(logger.Entries[1], "WARN "))
			assert.Contains(t, logger.Entries[1], tt.logged)
			assert.Equal(t, []string{testRunID}, logger.Closed)
		})
	}
}

func TestRunBuild_Execute_LaunchError(t *testing.T) {
	launchErr := errors.New("exec: \"mvn\": executable file not found in $PATH")
	launcher := testutil.NewMockLauncher()
	launcher.LaunchErr = launchErr
	logger := &testutil.MockLogger{}
	uc := newRunBuild(launcher, logger)

	out, err := uc.Execute(context.Background(), usecase.RunBuildInput{Request: testRequest()})

	assert.Same(t, launchErr, err)
	require.NotNil(t, out)
	assert.Nil(t, out.Outcome)
	require.Len(t, logger.Entries, 2)
	assert.True(t, strings.HasPrefix(logger.Entries[1], "ERROR "))
	assert.Equal(t, []string{testRunID}, logger.Closed)
}

func TestRunBuild_Execute_NoGoals(t *testing.T) {
	launcher := testutil.NewMockLauncher()
	logger := &testutil.MockLogger{}
	uc := newRunBuild(launcher, logger)

	req := testRequest()
	req.Goals = nil
	_, err := uc.Execute(context.Background(), usecase.RunBuildInput{Request: req})

	assert.ErrorIs(t, err, domain.ErrNoGoals)
	assert.Empty(t, launcher.Calls)
	assert.Empty(t, logger.Entries)
}

func TestRunBuild_Execute_DefaultRunID(t *testing.T) {
	launcher := testutil.NewMockLauncher()
	uc := usecase.NewRunBuild(launcher, &testutil.MockLogger{}, domain.RealClock{})

	first, err := uc.Execute(context.Background(), usecase.RunBuildInput{Request: testRequest()})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), usecase.RunBuildInput{Request: testRequest()})
	require.NoError(t, err)

	assert.Len(t, first.RunID, 36)
	assert.NotEqual(t, first.RunID, second.RunID)
}
