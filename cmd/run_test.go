package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/goozejs/internal/adapter"
	"gooze.dev/pkg/goozejs/internal/domain"
	domainmocks "gooze.dev/pkg/goozejs/internal/domain/mocks"
	m "gooze.dev/pkg/goozejs/internal/model"
)

func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() {
		workflow = originalWorkflow
		_ = newRootCmd()
		_ = newRunCmd()
	})

	return mockWorkflow
}

func TestRunCmd_Defaults(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return len(args.Projects) == 0 &&
			args.Reports == m.Path(".goozejs-reports") &&
			args.Parallel == 1 &&
			args.Options.Timeout == adapter.DefaultJestTimeout &&
			!args.Options.Transpile &&
			args.Options.JestConfigFile == "" &&
			assert.ObjectsAreEqual([]string{"src"}, args.Options.SourceDirs) &&
			args.Options.Bundler.Silent
	})).Return(nil)

	cmd.SetArgs([]string{"run"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_FlagsArePassedThrough(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return assert.ObjectsAreEqual([]m.Path{"./web", "./cli"}, args.Projects) &&
			args.Reports == m.Path("out/reports") &&
			args.Parallel == 3 &&
			args.Options.Timeout == 90*time.Second &&
			args.Options.Transpile &&
			args.Options.JestConfigFile == "jest.config.json" &&
			assert.ObjectsAreEqual([]string{"src", "lib"}, args.Options.SourceDirs) &&
			args.Options.Bundler.ConfigFile == "webpack.config.yaml" &&
			args.Options.Bundler.ProduceSourceMaps
	})).Return(nil)

	cmd.SetArgs([]string{
		"run", "./web", "./cli",
		"--output", "out/reports",
		"-p", "3",
		"--timeout", "90s",
		"--transpile",
		"--jest-config", "jest.config.json",
		"--src", "src,lib",
		"--webpack-config", "webpack.config.yaml",
		"--source-maps",
	})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_WorkflowErrorIsReturned(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Run", mock.Anything, mock.Anything).Return(errors.New("1 of 1 project(s) did not pass (1 failed, 0 errored)"))

	cmd.SetArgs([]string{"run"})
	err := cmd.Execute()
	require.ErrorContains(t, err, "did not pass")
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run [projects...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, runLongDescription, cmd.Long)

	for _, name := range []string{runParallelFlagName, runTimeoutFlagName, runTranspileFlagName, jestConfigFlagName} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestTranspileCmd_DefaultProject(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newTranspileCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Transpile", mock.Anything, mock.MatchedBy(func(args domain.TranspileArgs) bool {
		return args.Project == "" &&
			args.OutDir == "" &&
			assert.ObjectsAreEqual([]string{"src"}, args.SourceDirs)
	})).Return(nil)

	cmd.SetArgs([]string{"transpile"})
	require.NoError(t, cmd.Execute())
}

func TestTranspileCmd_ProjectAndOutDir(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newTranspileCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Transpile", mock.Anything, mock.MatchedBy(func(args domain.TranspileArgs) bool {
		return args.Project == "./web" &&
			args.OutDir == "build" &&
			args.Bundler.Context == "app"
	})).Return(nil)

	cmd.SetArgs([]string{"transpile", "./web", "--out-dir", "build", "--webpack-context", "app"})
	require.NoError(t, cmd.Execute())
}

func TestTranspileCmd_RejectsSeveralProjects(t *testing.T) {
	withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newTranspileCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"transpile", "./web", "./cli"})
	require.Error(t, cmd.Execute())
}

func TestHistoryCmd_DefaultLimit(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newHistoryCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("History", mock.Anything, domain.HistoryArgs{Limit: domain.DefaultHistoryLimit}).Return(nil)

	cmd.SetArgs([]string{"history"})
	require.NoError(t, cmd.Execute())
}

func TestHistoryCmd_Limit(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newHistoryCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("History", mock.Anything, domain.HistoryArgs{Limit: 5}).Return(errors.New("history is not configured"))

	cmd.SetArgs([]string{"history", "-n", "5"})
	require.ErrorContains(t, cmd.Execute(), "not configured")
}
