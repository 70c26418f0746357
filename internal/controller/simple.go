package controller

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/goozejs/internal/model"
)

const shortIDLength = 8

// statusFormatter decorates a status label, e.g. with terminal colours.
type statusFormatter func(status m.RunStatus) string

func plainStatus(status m.RunStatus) string {
	return string(status)
}

// SimpleUI implements UI by printing plain tables to the command output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRunStart announces how many projects will run.
func (s *SimpleUI) DisplayRunStart(ctx context.Context, projects int, parallel int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Running %d project(s) with %d worker(s)\n", projects, parallel)
}

// DisplayProjectResult prints a single line per finished project.
func (s *SimpleUI) DisplayProjectResult(ctx context.Context, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", projectLine(report, plainStatus))
}

// DisplayRunReports prints the summary table of a run.
func (s *SimpleUI) DisplayRunReports(ctx context.Context, reports []m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderRunTable(reports, plainStatus))

	return nil
}

// DisplayTranspiled prints the files a bundle produced.
func (s *SimpleUI) DisplayTranspiled(ctx context.Context, root m.Path, files []m.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderTranspiledTable(root, files))

	return nil
}

// DisplayHistory prints recorded runs, newest first.
func (s *SimpleUI) DisplayHistory(ctx context.Context, entries []m.HistoryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(entries) == 0 {
		s.printf("No runs recorded yet\n")
		return nil
	}

	s.printf("%s", renderHistoryTable(entries, plainStatus))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func projectLine(report m.RunReport, status statusFormatter) string {
	line := fmt.Sprintf("%s %s", status(report.Status), report.Project)

	switch report.Status {
	case m.StatusError:
		if report.ErrorOutput != "" {
			line += ": " + firstLine(report.ErrorOutput)
		}
	default:
		line += fmt.Sprintf(" (%d/%d tests passed)", report.Tests.Passed, report.Tests.Total)
	}

	return line
}

func renderRunTable(reports []m.RunReport, status statusFormatter) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Project", "Status", "Tests", "Passed", "Failed", "Transpiled", "Duration"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	var (
		totals   m.TestCounts
		passing  int
		duration time.Duration
	)

	for _, report := range reports {
		table.Append([]string{
			string(report.Project),
			status(report.Status),
			fmt.Sprintf("%d", report.Tests.Total),
			fmt.Sprintf("%d", report.Tests.Passed),
			fmt.Sprintf("%d", report.Tests.Failed),
			fmt.Sprintf("%d", report.Transpiled),
			report.Duration.Round(time.Millisecond).String(),
		})

		totals.Total += report.Tests.Total
		totals.Passed += report.Tests.Passed
		totals.Failed += report.Tests.Failed
		duration += report.Duration

		if report.Status == m.StatusPassed {
			passing++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Projects %d", len(reports)),
		fmt.Sprintf("%d passed", passing),
		fmt.Sprintf("%d", totals.Total),
		fmt.Sprintf("%d", totals.Passed),
		fmt.Sprintf("%d", totals.Failed),
		"",
		duration.Round(time.Millisecond).String(),
	})

	table.Render()

	return tableBuffer.String()
}

func renderTranspiledTable(root m.Path, files []m.File) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Size"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	total := 0

	for _, file := range files {
		name := file.Name()
		if rel, err := filepath.Rel(string(root), name); err == nil {
			name = rel
		}

		table.Append([]string{name, formatBytes(file.Len())})
		total += file.Len()
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(files)), formatBytes(total)})
	table.Render()

	return tableBuffer.String()
}

func renderHistoryTable(entries []m.HistoryEntry, status statusFormatter) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Run", "Project", "Status", "Tests", "Failed", "Started", "Duration"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
	})

	for _, entry := range entries {
		table.Append([]string{
			shortID(entry.ID),
			string(entry.Project),
			status(entry.Status),
			fmt.Sprintf("%d", entry.Total),
			fmt.Sprintf("%d", entry.Failed),
			entry.StartedAt.Local().Format(time.DateTime),
			(time.Duration(entry.DurationMS) * time.Millisecond).String(),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}

	return id[:shortIDLength]
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}

	return s
}

func formatBytes(n int) string {
	const unit = 1024

	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	return fmt.Sprintf("%.1f KiB", float64(n)/unit)
}
