package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	if strings.Contains(output, "version: unknown") {
		return
	}

	assert.Contains(t, output, "goozejs version")
	assert.Contains(t, output, "esbuild version")
	assert.Contains(t, output, "go version")
}

func TestModuleVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Deps: []*debug.Module{
			{Path: "github.com/spf13/cobra", Version: "v1.10.2"},
			{Path: esbuildModulePath, Version: "v0.27.2"},
			{Path: "example.com/replaced", Version: "v1.0.0", Replace: &debug.Module{Version: "v1.0.1"}},
		},
	}

	assert.Equal(t, "v0.27.2", moduleVersion(info, esbuildModulePath))
	assert.Equal(t, "v1.0.1", moduleVersion(info, "example.com/replaced"))
	assert.Equal(t, "unknown", moduleVersion(info, "example.com/missing"))
}
