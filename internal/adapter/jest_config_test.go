package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/goozejs/internal/model"
)

func writeProjectFile(t *testing.T, root, name, content string) {
	t.Helper()

	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLocalJestConfigLoader_PackageJSON(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "package.json", `{"name":"demo","jest":{"testEnvironment":"node","verbose":true}}`)

	cfg, err := NewLocalJestConfigLoader().LoadJestConfig(m.Path(root), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"testEnvironment", "verbose", "rootDir"}, cfg.Keys())

	rootDir, _ := cfg.Get("rootDir")
	assert.Equal(t, root, rootDir)
}

func TestLocalJestConfigLoader_NoJestKey(t *testing.T) {
	tests := []struct {
		name string
		pkg  string
	}{
		{"missing key", `{"name":"demo"}`},
		{"null key", `{"name":"demo","jest":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeProjectFile(t, root, "package.json", tt.pkg)

			cfg, err := NewLocalJestConfigLoader().LoadJestConfig(m.Path(root), "")
			require.NoError(t, err)
			assert.Equal(t, []string{"rootDir"}, cfg.Keys())
		})
	}
}

func TestLocalJestConfigLoader_NoPackageJSON(t *testing.T) {
	root := t.TempDir()

	cfg, err := NewLocalJestConfigLoader().LoadJestConfig(m.Path(root), "")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Len())
}

func TestLocalJestConfigLoader_ConfigFiles(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "jest.config.json", `{"rootDir":"/elsewhere","testMatch":["**/*.spec.js"]}`)
	writeProjectFile(t, root, "config/jest.yaml", "testEnvironment: jsdom\nbail: 1\n")

	cfg, err := NewLocalJestConfigLoader().LoadJestConfig(m.Path(root), "jest.config.json")
	require.NoError(t, err)

	rootDir, _ := cfg.Get("rootDir")
	assert.Equal(t, "/elsewhere", rootDir, "an explicit rootDir is kept")

	cfg, err = NewLocalJestConfigLoader().LoadJestConfig(m.Path(root), filepath.Join(root, "config", "jest.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"testEnvironment", "bail", "rootDir"}, cfg.Keys())
}

func TestLocalJestConfigLoader_Errors(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "jest.config.js", "module.exports = {};")
	writeProjectFile(t, root, "broken.json", `["not", "an", "object"]`)

	loader := NewLocalJestConfigLoader()

	_, err := loader.LoadJestConfig(m.Path(root), "jest.config.js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported jest config format")

	_, err = loader.LoadJestConfig(m.Path(root), "broken.json")
	require.Error(t, err)

	_, err = loader.LoadJestConfig(m.Path(root), "missing.json")
	require.ErrorIs(t, err, os.ErrNotExist)

	broken := t.TempDir()
	writeProjectFile(t, broken, "package.json", `{"jest":`)

	_, err = loader.LoadJestConfig(m.Path(broken), "")
	require.Error(t, err)
}
