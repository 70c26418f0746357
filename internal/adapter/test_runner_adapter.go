package adapter

import (
	"context"
	"fmt"
	"log/slog"

	m "gooze.dev/pkg/goozejs/internal/model"
)

// JestModuleID is the module identifier the Jest adapter resolves.
const JestModuleID = "jest"

// LevelTrace sits below slog.LevelDebug and carries per-invocation payloads.
const LevelTrace = slog.LevelDebug - 4

// TestRunnerAdapter abstracts test execution for a JavaScript project.
type TestRunnerAdapter interface {
	// Run executes the project's test suite with the given runner config and
	// returns the runner's raw result.
	Run(ctx context.Context, config m.RunnerConfig, projectRoot m.Path) (m.RunResult, error)
}

// JestRuntime is the programmatic surface of Jest the adapter drives.
type JestRuntime interface {
	RunCLI(ctx context.Context, argv m.JestArgv, projects []string) (m.RunResult, error)
}

// RequireFunc resolves a runner module by identifier.
type RequireFunc func(id string) (JestRuntime, error)

// JestTestAdapter forwards runs to Jest's runCLI entrypoint.
type JestTestAdapter struct {
	jest   JestRuntime
	logger *slog.Logger
}

// NewJestTestAdapter resolves Jest once through require and returns an
// adapter bound to it. A nil logger falls back to slog.Default().
func NewJestTestAdapter(require RequireFunc, logger *slog.Logger) (*JestTestAdapter, error) {
	if logger == nil {
		logger = slog.Default()
	}

	jest, err := require(JestModuleID)
	if err != nil {
		return nil, err
	}

	return &JestTestAdapter{
		jest:   jest,
		logger: logger,
	}, nil
}

// Run invokes Jest in band and silently, with reporters forced empty. The
// caller's config is left untouched and runner errors are returned as-is.
func (a *JestTestAdapter) Run(ctx context.Context, config m.RunnerConfig, projectRoot m.Path) (m.RunResult, error) {
	config = config.With("reporters", []any{})

	serialized, err := config.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("serialize jest config: %w", err)
	}

	a.logger.Log(ctx, LevelTrace, "Invoking Jest with config "+string(serialized))

	return a.jest.RunCLI(ctx, m.JestArgv{
		Config:    string(serialized),
		RunInBand: true,
		Silent:    true,
	}, []string{string(projectRoot)})
}
