package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "gooze.dev/pkg/goozejs/internal/model"
)

// pagerChromeLines is the number of lines taken by the pager title and footer.
const pagerChromeLines = 4

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	passedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	subtleStyle  = lipgloss.NewStyle().Faint(true)
	statusStyles = map[m.RunStatus]lipgloss.Style{
		m.StatusPassed: passedStyle,
		m.StatusFailed: failedStyle,
		m.StatusError:  errorStyle,
	}
	statusIcons = map[m.RunStatus]string{
		m.StatusPassed: "✓",
		m.StatusFailed: "✗",
		m.StatusError:  "!",
	}
)

func styledStatus(status m.RunStatus) string {
	style, ok := statusStyles[status]
	if !ok {
		return string(status)
	}

	return style.Render(statusIcons[status] + " " + string(status))
}

// TUI implements UI with coloured output. Output taller than the terminal
// opens in a scrollable Bubble Tea pager.
type TUI struct {
	output io.Writer
	mu     sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayRunStart prints the run banner.
func (t *TUI) DisplayRunStart(ctx context.Context, projects int, parallel int) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.print(titleStyle.Render("goozejs") + " " +
		subtleStyle.Render(fmt.Sprintf("running %d project(s) with %d worker(s)", projects, parallel)) + "\n")
}

// DisplayProjectResult prints a coloured line per finished project.
func (t *TUI) DisplayProjectResult(ctx context.Context, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.print("  " + projectLine(report, styledStatus) + "\n")
}

// DisplayRunReports shows the run summary table.
func (t *TUI) DisplayRunReports(ctx context.Context, reports []m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.show("Run summary", renderRunTable(reports, styledStatus))
}

// DisplayTranspiled shows the files a bundle produced.
func (t *TUI) DisplayTranspiled(ctx context.Context, root m.Path, files []m.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.show("Transpiled "+string(root), renderTranspiledTable(root, files))
}

// DisplayHistory shows recorded runs, newest first.
func (t *TUI) DisplayHistory(ctx context.Context, entries []m.HistoryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(entries) == 0 {
		t.print(subtleStyle.Render("No runs recorded yet") + "\n")
		return nil
	}

	return t.show("Run history", renderHistoryTable(entries, styledStatus))
}

// show prints content directly when it fits the terminal and pages it
// otherwise.
func (t *TUI) show(title, content string) error {
	width, height := t.terminalSize()

	if !needsPager(content, height) {
		t.print("\n" + titleStyle.Render(title) + "\n\n" + content)
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	program := tea.NewProgram(newPagerModel(title, content, width, height),
		tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (t *TUI) terminalSize() (int, int) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

func (t *TUI) print(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = fmt.Fprint(t.output, s)
}

func needsPager(content string, height int) bool {
	if height <= 0 {
		return false
	}

	return strings.Count(content, "\n")+pagerChromeLines > height
}

// pagerModel is a minimal scrollable view over pre-rendered content.
type pagerModel struct {
	title    string
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(1, height-pagerChromeLines))
	vp.SetContent(content)

	return pagerModel{title: title, viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(1, msg.Height-pagerChromeLines)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", subtleStyle.Render(fmt.Sprintf(
		"%3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit", pm.viewport.ScrollPercent()*100)))

	return b.String()
}
