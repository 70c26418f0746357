package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/goozejs/internal/model"
)

// writeFakeJest writes an executable shell script standing in for jest.
func writeFakeJest(t *testing.T, dir, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake jest scripts need a POSIX shell")
	}

	bin := filepath.Join(dir, "jest")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"+body+"\n"), 0o755))

	return bin
}

func TestJestCLI_RunCLI_ParsesJSONReport(t *testing.T) {
	dir := t.TempDir()
	// The script records its arguments and working directory, then prints a report.
	bin := writeFakeJest(t, dir, `echo "$@" > "`+filepath.Join(dir, "args.txt")+`"
pwd > "`+filepath.Join(dir, "pwd.txt")+`"
echo '{"success":true,"numTotalTests":3,"numPassedTests":3,"numFailedTests":0}'`)

	project := t.TempDir()
	argv := m.JestArgv{Config: `{"rootDir":"x","reporters":[]}`, RunInBand: true, Silent: true}

	result, err := NewJestCLI(bin, 10*time.Second).RunCLI(context.Background(), argv, []string{project})
	require.NoError(t, err)

	assert.Equal(t, argv, result["config"])

	counts, success := m.SummarizeJestResult(result)
	assert.True(t, success)
	assert.Equal(t, m.TestCounts{Total: 3, Passed: 3}, counts)

	args, err := os.ReadFile(filepath.Join(dir, "args.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(args), "--config")
	assert.Contains(t, string(args), "--runInBand")
	assert.Contains(t, string(args), "--silent")
	assert.Contains(t, string(args), "--json")
	assert.NotContains(t, string(args), "--projects")

	pwd, err := os.ReadFile(filepath.Join(dir, "pwd.txt"))
	require.NoError(t, err)

	wantDir, err := filepath.EvalSymlinks(project)
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(strings.TrimSpace(string(pwd)))
	require.NoError(t, err)
	assert.Equal(t, wantDir, gotDir)
}

func TestJestCLI_RunCLI_FailingTestsAreNotAnError(t *testing.T) {
	bin := writeFakeJest(t, t.TempDir(), `echo '{"success":false,"numTotalTests":2,"numPassedTests":1,"numFailedTests":1}'
exit 1`)

	result, err := NewJestCLI(bin, 10*time.Second).RunCLI(context.Background(), m.JestArgv{Config: "{}"}, []string{t.TempDir()})
	require.NoError(t, err)

	counts, success := m.SummarizeJestResult(result)
	assert.False(t, success)
	assert.Equal(t, 1, counts.Failed)
}

func TestJestCLI_RunCLI_CrashIsJestError(t *testing.T) {
	bin := writeFakeJest(t, t.TempDir(), `echo "Error: Cannot find module 'babel-jest'" >&2
exit 2`)

	_, err := NewJestCLI(bin, 10*time.Second).RunCLI(context.Background(), m.JestArgv{Config: "{}"}, []string{t.TempDir()})
	require.Error(t, err)

	var jestErr *JestError
	require.True(t, errors.As(err, &jestErr))
	assert.Equal(t, 2, jestErr.ExitCode)
	assert.Contains(t, jestErr.Error(), "babel-jest")
}

func TestJestCLI_RunCLI_MultipleProjects(t *testing.T) {
	dir := t.TempDir()
	bin := writeFakeJest(t, dir, `echo "$@" > "`+filepath.Join(dir, "args.txt")+`"
echo '{}'`)

	first, second := t.TempDir(), t.TempDir()

	_, err := NewJestCLI(bin, 10*time.Second).RunCLI(context.Background(), m.JestArgv{Config: "{}"}, []string{first, second})
	require.NoError(t, err)

	args, err := os.ReadFile(filepath.Join(dir, "args.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(args), "--projects "+first+" "+second)
}

func TestJestCLI_RunCLI_Timeout(t *testing.T) {
	bin := writeFakeJest(t, t.TempDir(), `exec sleep 5
echo '{}'`)

	_, err := NewJestCLI(bin, 100*time.Millisecond).RunCLI(context.Background(), m.JestArgv{Config: "{}"}, []string{t.TempDir()})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestJestCLI_RunCLI_MissingBinary(t *testing.T) {
	_, err := NewJestCLI(filepath.Join(t.TempDir(), "nope"), time.Second).RunCLI(context.Background(), m.JestArgv{Config: "{}"}, nil)
	require.Error(t, err)

	var jestErr *JestError
	assert.False(t, errors.As(err, &jestErr))
}
