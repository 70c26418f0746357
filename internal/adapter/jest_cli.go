package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	m "gooze.dev/pkg/goozejs/internal/model"
)

// waitDelay bounds how long a killed jest may keep its output pipes open.
const waitDelay = 2 * time.Second

// JestError reports a Jest process that exited without producing results.
type JestError struct {
	ExitCode int
	Stderr   string
}

func (e *JestError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("jest exited with code %d", e.ExitCode)
	}

	return fmt.Sprintf("jest exited with code %d: %s", e.ExitCode, msg)
}

// JestCLI implements JestRuntime by executing the jest binary with --json.
type JestCLI struct {
	bin     string
	timeout time.Duration
}

// NewJestCLI constructs a JestCLI for the given executable.
func NewJestCLI(bin string, timeout time.Duration) *JestCLI {
	return &JestCLI{bin: bin, timeout: timeout}
}

// Bin returns the resolved executable path.
func (j *JestCLI) Bin() string {
	return j.bin
}

// RunCLI runs jest in the first project directory. The parsed --json report
// is returned under "results" and the argv is echoed under "config".
func (j *JestCLI) RunCLI(ctx context.Context, argv m.JestArgv, projects []string) (m.RunResult, error) {
	if j.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, j.bin, j.args(argv, projects)...)
	cmd.WaitDelay = waitDelay

	if len(projects) > 0 {
		cmd.Dir = projects[0]
	}

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		return nil, fmt.Errorf("executing %s: %w", j.bin, runErr)
	}

	var results map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(stdout.Bytes()), &results); err != nil {
		if exitErr != nil {
			return nil, &JestError{ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}
		}

		return nil, fmt.Errorf("parse jest output: %w", err)
	}

	// A non-zero exit with a JSON report means failing tests, not a broken run.
	return m.RunResult{
		"results": results,
		"config":  argv,
	}, nil
}

func (j *JestCLI) args(argv m.JestArgv, projects []string) []string {
	args := []string{"--config", argv.Config, "--json"}

	if argv.RunInBand {
		args = append(args, "--runInBand")
	}

	if argv.Silent {
		args = append(args, "--silent")
	}

	if len(projects) > 1 {
		args = append(args, "--projects")
		args = append(args, projects...)
	}

	return args
}
