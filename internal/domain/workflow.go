package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/goozejs/internal/adapter"
	"gooze.dev/pkg/goozejs/internal/controller"
	m "gooze.dev/pkg/goozejs/internal/model"
)

// DefaultHistoryLimit is the number of history entries shown when no limit is given.
const DefaultHistoryLimit = 20

// RunArgs contains the arguments for running projects.
type RunArgs struct {
	Projects []m.Path
	Reports  m.Path
	Parallel int
	Options  RunOptions
}

// TranspileArgs contains the arguments for bundling a project.
type TranspileArgs struct {
	Project    m.Path
	OutDir     m.Path
	SourceDirs []string
	Bundler    m.BundlerOptions
}

// ViewArgs contains the arguments for viewing saved reports.
type ViewArgs struct {
	Reports m.Path
}

// HistoryArgs contains the arguments for listing run history.
type HistoryArgs struct {
	Limit int
}

// HistoryOpener opens the run history store. The caller closes it.
type HistoryOpener func() (adapter.HistoryStore, error)

// Workflow defines the user-facing operations of goozejs.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Transpile(ctx context.Context, args TranspileArgs) error
	View(ctx context.Context, args ViewArgs) error
	History(ctx context.Context, args HistoryArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	orchestrator  Orchestrator
	openHistory   HistoryOpener
	newTranspiler TranspilerFactory
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
// openHistory may be nil, in which case history is neither recorded nor listed.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orchestrator Orchestrator,
	openHistory HistoryOpener,
	newTranspiler TranspilerFactory,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		orchestrator:    orchestrator,
		openHistory:     openHistory,
		newTranspiler:   newTranspiler,
	}
}

// Run executes every project in its own sandbox, at most args.Parallel at a
// time. It fails when any project did not pass.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	projects := args.Projects
	if len(projects) == 0 {
		projects = []m.Path{"."}
	}

	parallel := max(args.Parallel, 1)

	w.DisplayRunStart(ctx, len(projects), parallel)

	reports := make([]m.RunReport, len(projects))

	var group errgroup.Group

	group.SetLimit(parallel)

	for i, project := range projects {
		group.Go(func() error {
			report, err := w.orchestrator.Run(ctx, project, args.Options)
			if err != nil {
				slog.Error("Project run failed", "project", project, "error", err)
			}

			reports[i] = report
			w.DisplayProjectResult(ctx, report)

			return nil
		})
	}

	_ = group.Wait()

	if args.Reports != "" {
		if err := w.SaveReports(ctx, args.Reports, reports); err != nil {
			slog.Error("Failed to save reports", "path", args.Reports, "error", err)
			return fmt.Errorf("save reports: %w", err)
		}
	}

	if err := w.recordHistory(ctx, reports); err != nil {
		return err
	}

	if err := w.DisplayRunReports(ctx, reports); err != nil {
		slog.Error("Failed to display reports", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return runOutcome(ctx, reports)
}

func (w *workflow) recordHistory(ctx context.Context, reports []m.RunReport) error {
	if w.openHistory == nil {
		return nil
	}

	store, err := w.openHistory()
	if err != nil {
		slog.Error("Failed to open history", "error", err)
		return fmt.Errorf("open history: %w", err)
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close history", "error", err)
		}
	}()

	for _, report := range reports {
		if err := store.Record(ctx, report); err != nil {
			slog.Error("Failed to record history", "report", report.ID, "error", err)
			return fmt.Errorf("record history: %w", err)
		}
	}

	return nil
}

func runOutcome(ctx context.Context, reports []m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var errored, failed int

	for _, report := range reports {
		switch report.Status {
		case m.StatusError:
			errored++
		case m.StatusFailed:
			failed++
		case m.StatusPassed:
		}
	}

	if errored == 0 && failed == 0 {
		return nil
	}

	return fmt.Errorf("%d of %d project(s) did not pass (%d failed, %d errored)",
		errored+failed, len(reports), failed, errored)
}

// Transpile bundles one project's sources and writes the generated files,
// either under args.OutDir or at the bundler's own output paths.
func (w *workflow) Transpile(ctx context.Context, args TranspileArgs) error {
	project := args.Project
	if project == "" {
		project = "."
	}

	projectRoot, err := w.FindProjectRoot(ctx, project)
	if err != nil {
		slog.Error("Failed to find project root", "project", project, "error", err)
		return fmt.Errorf("failed to find project root: %w", err)
	}

	inputs, outputs, err := transpileProject(ctx, w.SourceFSAdapter, w.newTranspiler, projectRoot, args.SourceDirs, args.Bundler)
	if err != nil {
		return err
	}

	generated := outputs[inputs:]

	for _, file := range generated {
		target := file.Path

		if args.OutDir != "" {
			target, err = relocate(ctx, w.SourceFSAdapter, projectRoot, args.OutDir, file.Path)
			if err != nil {
				return err
			}
		}

		if err := w.WriteFile(ctx, target, file.Content(), outputFileMode); err != nil {
			slog.Error("Failed to write transpiled file", "path", target, "error", err)
			return fmt.Errorf("failed to write transpiled file: %w", err)
		}
	}

	if err := w.DisplayTranspiled(ctx, projectRoot, generated); err != nil {
		slog.Error("Failed to display transpiled files", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// View displays the reports saved by a previous run.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(ctx, args.Reports)
	if err != nil {
		slog.Error("Failed to load reports", "path", args.Reports, "error", err)
		return fmt.Errorf("load reports: %w", err)
	}

	if len(reports) == 0 {
		return fmt.Errorf("no reports found in %s", args.Reports)
	}

	if err := w.DisplayRunReports(ctx, reports); err != nil {
		slog.Error("Failed to display reports", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// History lists the most recent runs.
func (w *workflow) History(ctx context.Context, args HistoryArgs) error {
	if w.openHistory == nil {
		return errors.New("history is not configured")
	}

	limit := args.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	store, err := w.openHistory()
	if err != nil {
		slog.Error("Failed to open history", "error", err)
		return fmt.Errorf("open history: %w", err)
	}

	defer func() { _ = store.Close() }()

	entries, err := store.Latest(ctx, limit)
	if err != nil {
		slog.Error("Failed to read history", "error", err)
		return fmt.Errorf("read history: %w", err)
	}

	if err := w.DisplayHistory(ctx, entries); err != nil {
		slog.Error("Failed to display history", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}
