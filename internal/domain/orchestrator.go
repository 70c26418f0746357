package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"gooze.dev/pkg/goozejs/internal/adapter"
	m "gooze.dev/pkg/goozejs/internal/model"
)

const (
	sandboxPattern = "goozejs-run-*"
	// outsideProjectDir receives transpiled files whose path is not under the
	// project root.
	outsideProjectDir = ".goozejs-out"
	outputFileMode    = 0o644
)

// DefaultSourceDirs are read as transpiler input when none are configured.
var DefaultSourceDirs = []string{"src"}

// RunOptions configures a single sandboxed project run.
type RunOptions struct {
	JestConfigFile string
	Timeout        time.Duration
	Transpile      bool
	SourceDirs     []string
	Bundler        m.BundlerOptions
}

// RunnerFactory builds a TestRunnerAdapter for a project, resolving the Jest
// installation from projectRoot.
type RunnerFactory func(projectRoot m.Path, timeout time.Duration) (adapter.TestRunnerAdapter, error)

// TranspilerFactory builds a Transpiler for the given bundler options.
type TranspilerFactory func(options m.BundlerOptions) adapter.Transpiler

// Orchestrator runs a project's Jest suite inside a temporary copy of the
// project, optionally bundling its sources into the copy first.
type Orchestrator interface {
	Run(ctx context.Context, project m.Path, options RunOptions) (m.RunReport, error)
}

type orchestrator struct {
	fsAdapter     adapter.SourceFSAdapter
	jestConfig    adapter.JestConfigLoader
	newRunner     RunnerFactory
	newTranspiler TranspilerFactory
	now           func() time.Time
	newID         func() string
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem adapter, Jest config loader and factories.
func NewOrchestrator(
	fsAdapter adapter.SourceFSAdapter,
	jestConfig adapter.JestConfigLoader,
	newRunner RunnerFactory,
	newTranspiler TranspilerFactory,
) Orchestrator {
	return &orchestrator{
		fsAdapter:     fsAdapter,
		jestConfig:    jestConfig,
		newRunner:     newRunner,
		newTranspiler: newTranspiler,
		now:           time.Now,
		newID:         func() string { return uuid.New().String() },
	}
}

// Run always returns a report. When err is non-nil the report has
// StatusError and carries the error output.
func (o *orchestrator) Run(ctx context.Context, project m.Path, options RunOptions) (m.RunReport, error) {
	startedAt := o.now()
	report := m.RunReport{
		ID:        o.newID(),
		Project:   project,
		StartedAt: startedAt,
	}

	fail := func(err error) (m.RunReport, error) {
		report.Status = m.StatusError
		report.ErrorOutput = errorOutput(err)
		report.Duration = o.now().Sub(startedAt)

		return report, err
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	projectRoot, sandbox, err := o.prepareSandbox(ctx, project)
	if sandbox != "" {
		defer o.cleanupSandbox(context.WithoutCancel(ctx), sandbox)
	}

	if projectRoot != "" {
		report.Project = projectRoot
	}

	if err != nil {
		return fail(err)
	}

	if options.Transpile {
		transpiled, err := o.transpileInto(ctx, projectRoot, sandbox, options)
		if err != nil {
			return fail(err)
		}

		report.Transpiled = transpiled
	}

	result, err := o.runTests(ctx, projectRoot, sandbox, options)
	if err != nil {
		return fail(err)
	}

	counts, success := m.SummarizeJestResult(result)
	report.Tests = counts
	report.Status = m.StatusFailed

	if success {
		report.Status = m.StatusPassed
	}

	report.Duration = o.now().Sub(startedAt)

	slog.Debug("Project run finished", "project", report.Project, "status", report.Status, "tests", counts.Total)

	return report, nil
}

func (o *orchestrator) prepareSandbox(ctx context.Context, project m.Path) (m.Path, m.Path, error) {
	projectRoot, err := o.fsAdapter.FindProjectRoot(ctx, project)
	if err != nil {
		slog.Error("Failed to find project root", "project", project, "error", err)
		return "", "", fmt.Errorf("failed to find project root: %w", err)
	}

	sandbox, err := o.fsAdapter.CreateTempDir(ctx, sandboxPattern)
	if err != nil {
		slog.Error("Failed to create sandbox", "error", err)
		return projectRoot, "", fmt.Errorf("failed to create sandbox: %w", err)
	}

	if err := o.fsAdapter.CopyDir(ctx, projectRoot, sandbox); err != nil {
		slog.Error("Failed to copy project to sandbox", "projectRoot", projectRoot, "sandbox", sandbox, "error", err)
		return projectRoot, sandbox, fmt.Errorf("failed to copy project: %w", err)
	}

	if err := o.fsAdapter.LinkNodeModules(ctx, projectRoot, sandbox); err != nil {
		slog.Error("Failed to link node_modules", "projectRoot", projectRoot, "sandbox", sandbox, "error", err)
		return projectRoot, sandbox, fmt.Errorf("failed to link node_modules: %w", err)
	}

	return projectRoot, sandbox, nil
}

// transpileInto bundles the project's sources and writes every resulting
// file into the sandbox. It returns the number of generated files.
func (o *orchestrator) transpileInto(ctx context.Context, projectRoot, sandbox m.Path, options RunOptions) (int, error) {
	inputs, outputs, err := transpileProject(ctx, o.fsAdapter, o.newTranspiler, projectRoot, options.SourceDirs, options.Bundler)
	if err != nil {
		return 0, err
	}

	for _, file := range outputs {
		target, err := relocate(ctx, o.fsAdapter, projectRoot, sandbox, file.Path)
		if err != nil {
			return 0, err
		}

		if err := o.fsAdapter.WriteFile(ctx, target, file.Content(), outputFileMode); err != nil {
			slog.Error("Failed to write transpiled file", "path", target, "error", err)
			return 0, fmt.Errorf("failed to write transpiled file: %w", err)
		}
	}

	return len(outputs) - inputs, nil
}

func (o *orchestrator) runTests(ctx context.Context, projectRoot, sandbox m.Path, options RunOptions) (m.RunResult, error) {
	config, err := o.jestConfig.LoadJestConfig(projectRoot, options.JestConfigFile)
	if err != nil {
		slog.Error("Failed to load jest config", "projectRoot", projectRoot, "error", err)
		return nil, fmt.Errorf("failed to load jest config: %w", err)
	}

	rootDir, _ := config.Get("rootDir")
	config = config.With("rootDir", string(o.sandboxRootDir(ctx, projectRoot, sandbox, rootDir)))

	runner, err := o.newRunner(sandbox, options.Timeout)
	if err != nil {
		slog.Error("Failed to load jest", "sandbox", sandbox, "error", err)
		return nil, fmt.Errorf("failed to load jest: %w", err)
	}

	result, err := runner.Run(ctx, config, sandbox)
	if err != nil {
		slog.Error("Jest run failed", "sandbox", sandbox, "error", err)
		return nil, fmt.Errorf("jest run failed: %w", err)
	}

	return result, nil
}

// sandboxRootDir re-anchors the configured Jest rootDir onto the sandbox.
// Relative values stay relative to the project root; absolute values outside
// the project are kept as they are.
func (o *orchestrator) sandboxRootDir(ctx context.Context, projectRoot, sandbox m.Path, value any) m.Path {
	dir, ok := value.(string)
	if !ok || dir == "" {
		return sandbox
	}

	if !filepath.IsAbs(dir) {
		return o.fsAdapter.JoinPath(ctx, string(sandbox), dir)
	}

	rel, err := o.fsAdapter.RelPath(ctx, projectRoot, m.Path(dir))
	if err != nil || outsideProject(rel) {
		slog.Warn("Jest rootDir is outside the project, tests run from the original tree", "rootDir", dir)
		return m.Path(dir)
	}

	return o.fsAdapter.JoinPath(ctx, string(sandbox), string(rel))
}

// cleanupSandbox removes the sandbox, logging errors if cleanup fails.
func (o *orchestrator) cleanupSandbox(ctx context.Context, sandbox m.Path) {
	if err := o.fsAdapter.RemoveAll(ctx, sandbox); err != nil {
		slog.Error("Failed to cleanup sandbox", "sandbox", sandbox, "error", err)
	}
}

// transpileProject reads the sources under dirs and bundles them. It returns
// the number of input files and the transpiler output (inputs first).
func transpileProject(
	ctx context.Context,
	fsAdapter adapter.SourceFSAdapter,
	newTranspiler TranspilerFactory,
	projectRoot m.Path,
	dirs []string,
	bundler m.BundlerOptions,
) (int, []m.File, error) {
	if len(dirs) == 0 {
		dirs = DefaultSourceDirs
	}

	files, err := fsAdapter.ReadSources(ctx, projectRoot, dirs)
	if err != nil {
		slog.Error("Failed to read sources", "projectRoot", projectRoot, "dirs", dirs, "error", err)
		return 0, nil, fmt.Errorf("failed to read sources: %w", err)
	}

	outputs, err := newTranspiler(resolveBundlerOptions(ctx, fsAdapter, projectRoot, bundler)).Transpile(ctx, files)
	if err != nil {
		slog.Error("Failed to transpile", "projectRoot", projectRoot, "error", err)
		return 0, nil, fmt.Errorf("failed to transpile: %w", err)
	}

	return len(files), outputs, nil
}

// resolveBundlerOptions anchors relative paths at the project root and falls
// back to zero-config bundling of the project itself.
func resolveBundlerOptions(ctx context.Context, fsAdapter adapter.SourceFSAdapter, projectRoot m.Path, options m.BundlerOptions) m.BundlerOptions {
	if options.ConfigFile == "" && options.Context == "" {
		options.Context = string(projectRoot)
		return options
	}

	if options.ConfigFile != "" && !filepath.IsAbs(options.ConfigFile) {
		options.ConfigFile = string(fsAdapter.JoinPath(ctx, string(projectRoot), options.ConfigFile))
	}

	if options.Context != "" && !filepath.IsAbs(options.Context) {
		options.Context = string(fsAdapter.JoinPath(ctx, string(projectRoot), options.Context))
	}

	return options
}

// relocate maps a path under projectRoot to the same relative location under
// base. Paths outside the project land under base/.goozejs-out.
func relocate(ctx context.Context, fsAdapter adapter.SourceFSAdapter, projectRoot, base, path m.Path) (m.Path, error) {
	rel, err := fsAdapter.RelPath(ctx, projectRoot, path)
	if err != nil {
		slog.Error("Failed to get relative output path", "projectRoot", projectRoot, "path", path, "error", err)
		return "", fmt.Errorf("failed to get relative output path: %w", err)
	}

	if outsideProject(rel) {
		return fsAdapter.JoinPath(ctx, string(base), outsideProjectDir, string(path)), nil
	}

	return fsAdapter.JoinPath(ctx, string(base), string(rel)), nil
}

func outsideProject(rel m.Path) bool {
	return rel == ".." || strings.HasPrefix(string(rel), ".."+string(filepath.Separator))
}

func errorOutput(err error) string {
	var jestErr *adapter.JestError
	if errors.As(err, &jestErr) && jestErr.Stderr != "" {
		return jestErr.Stderr
	}

	return err.Error()
}
