package adapter

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/goozejs/internal/model"
)

const projectRoot = "/path/to/project"

type runCLICall struct {
	argv     m.JestArgv
	projects []string
}

// stubJest echoes the argv back under "config", like Jest's runCLI does with
// the config it was handed.
type stubJest struct {
	calls []runCLICall
	err   error
}

func (s *stubJest) RunCLI(_ context.Context, argv m.JestArgv, projects []string) (m.RunResult, error) {
	s.calls = append(s.calls, runCLICall{argv: argv, projects: projects})
	if s.err != nil {
		return nil, s.err
	}

	return m.RunResult{"result": "testResult", "config": argv}, nil
}

type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, r)

	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *recordingHandler) WithGroup(string) slog.Handler { return h }

func (h *recordingHandler) messagesAt(level slog.Level) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var msgs []string

	for _, r := range h.records {
		if r.Level == level {
			msgs = append(msgs, r.Message)
		}
	}

	return msgs
}

type jestFixture struct {
	adapter  *JestTestAdapter
	jest     *stubJest
	required []string
	logs     *recordingHandler
}

func newJestFixture(t *testing.T) *jestFixture {
	t.Helper()

	f := &jestFixture{
		jest: &stubJest{},
		logs: &recordingHandler{},
	}

	requireFn := func(id string) (JestRuntime, error) {
		f.required = append(f.required, id)
		return f.jest, nil
	}

	adapter, err := NewJestTestAdapter(requireFn, slog.New(f.logs))
	if err != nil {
		t.Fatalf("NewJestTestAdapter() error = %v", err)
	}

	f.adapter = adapter

	return f
}

func TestJestTestAdapter_RequiresJestOnConstruction(t *testing.T) {
	f := newJestFixture(t)

	assert.Equal(t, []string{"jest"}, f.required)

	_, err := f.adapter.Run(context.Background(), m.NewRunnerConfig("rootDir", projectRoot), projectRoot)
	require.NoError(t, err)
	assert.Len(t, f.required, 1, "jest must be resolved only once")
}

func TestJestTestAdapter_RequireFailureIsFatal(t *testing.T) {
	wantErr := errors.New("Cannot find module 'jest'")

	adapter, err := NewJestTestAdapter(func(string) (JestRuntime, error) { return nil, wantErr }, nil)

	require.ErrorIs(t, err, wantErr)
	assert.Nil(t, adapter)
}

func TestJestTestAdapter_SetsReportersToEmptyArray(t *testing.T) {
	f := newJestFixture(t)
	config := m.NewRunnerConfig("rootDir", projectRoot, "reporters", []any{"default", "jest-junit"})

	_, err := f.adapter.Run(context.Background(), config, projectRoot)
	require.NoError(t, err)

	require.Len(t, f.jest.calls, 1)
	assert.Equal(t, `{"rootDir":"/path/to/project","reporters":[]}`, f.jest.calls[0].argv.Config)

	// The caller's config is left as it was.
	reporters, _ := config.Get("reporters")
	assert.Equal(t, []any{"default", "jest-junit"}, reporters)
}

func TestJestTestAdapter_CallsRunCLIWithProjectRoot(t *testing.T) {
	f := newJestFixture(t)

	_, err := f.adapter.Run(context.Background(), m.NewRunnerConfig("rootDir", projectRoot), projectRoot)
	require.NoError(t, err)

	require.Len(t, f.jest.calls, 1)
	assert.Equal(t, m.JestArgv{
		Config:    `{"rootDir":"/path/to/project","reporters":[]}`,
		RunInBand: true,
		Silent:    true,
	}, f.jest.calls[0].argv)
	assert.Equal(t, []string{projectRoot}, f.jest.calls[0].projects)
}

func TestJestTestAdapter_ReturnsRunnerResult(t *testing.T) {
	f := newJestFixture(t)

	result, err := f.adapter.Run(context.Background(), m.NewRunnerConfig("rootDir", projectRoot), projectRoot)
	require.NoError(t, err)

	assert.Equal(t, m.RunResult{
		"result": "testResult",
		"config": m.JestArgv{
			Config:    `{"rootDir":"/path/to/project","reporters":[]}`,
			RunInBand: true,
			Silent:    true,
		},
	}, result)
}

func TestJestTestAdapter_TraceLogsInvocation(t *testing.T) {
	f := newJestFixture(t)

	_, err := f.adapter.Run(context.Background(), m.NewRunnerConfig("rootDir", projectRoot), projectRoot)
	require.NoError(t, err)

	traces := f.logs.messagesAt(LevelTrace)
	require.Len(t, traces, 1)
	assert.Regexp(t, regexp.MustCompile(`Invoking Jest with config\s.*`), traces[0])
	assert.Contains(t, traces[0], `{"rootDir":"/path/to/project","reporters":[]}`)
}

func TestJestTestAdapter_SendsConfigWithoutHTMLEscaping(t *testing.T) {
	f := newJestFixture(t)

	_, err := f.adapter.Run(context.Background(), m.NewRunnerConfig("testRegex", "a<b&c>"), projectRoot)
	require.NoError(t, err)

	want := `{"testRegex":"a<b&c>","reporters":[]}`
	require.Len(t, f.jest.calls, 1)
	assert.Equal(t, want, f.jest.calls[0].argv.Config)

	traces := f.logs.messagesAt(LevelTrace)
	require.Len(t, traces, 1)
	assert.Equal(t, "Invoking Jest with config "+want, traces[0])
}

func TestJestTestAdapter_PropagatesRunnerError(t *testing.T) {
	f := newJestFixture(t)
	wantErr := errors.New("jest crashed")
	f.jest.err = wantErr

	result, err := f.adapter.Run(context.Background(), m.NewRunnerConfig("rootDir", projectRoot), projectRoot)

	assert.Same(t, wantErr, err)
	assert.Nil(t, result)
}

func TestJestTestAdapter_ReportersAlwaysEmpty(t *testing.T) {
	inputs := []m.RunnerConfig{
		{},
		m.NewRunnerConfig("reporters", nil),
		m.NewRunnerConfig("reporters", "default"),
		m.NewRunnerConfig("verbose", true, "reporters", []any{[]any{"jest-junit", map[string]any{"outputDirectory": "out"}}}),
	}

	for _, input := range inputs {
		f := newJestFixture(t)

		_, err := f.adapter.Run(context.Background(), input, projectRoot)
		require.NoError(t, err)

		var sent m.RunnerConfig
		require.NoError(t, sent.UnmarshalJSON([]byte(f.jest.calls[0].argv.Config)))

		reporters, ok := sent.Get("reporters")
		require.True(t, ok)
		assert.Equal(t, []any{}, reporters)
	}
}
