// Package controller renders run reports, transpile results and run history.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "gooze.dev/pkg/goozejs/internal/model"
)

// UI defines how the workflow reports progress and results.
// Implementations must tolerate DisplayProjectResult being called from
// several goroutines at once.
type UI interface {
	DisplayRunStart(ctx context.Context, projects int, parallel int)
	DisplayProjectResult(ctx context.Context, report m.RunReport)
	DisplayRunReports(ctx context.Context, reports []m.RunReport) error
	DisplayTranspiled(ctx context.Context, root m.Path, files []m.File) error
	DisplayHistory(ctx context.Context, entries []m.HistoryEntry) error
}

// NewUI picks the interactive TUI for terminals and the plain SimpleUI
// otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
