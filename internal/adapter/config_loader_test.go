package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/goozejs/internal/model"
)

func TestLocalConfigLoader_ConfigFile(t *testing.T) {
	root := testResourcePath(t, "gettingStarted")

	cfg, err := NewLocalConfigLoader().Load(context.Background(), ConfigRequest{
		ConfigFile: filepath.Join(root, "webpack.config.yaml"),
		Silent:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, m.BundleConfig{
		Context:        root,
		Entries:        []m.Entry{{Name: "main", Path: "./src/index.js"}},
		OutputPath:     filepath.Join(root, "dist"),
		OutputFilename: "my-first-webpack.bundle.js",
		Mode:           m.ModeDevelopment,
		Target:         m.TargetWeb,
		Silent:         true,
	}, cfg)
}

func TestLocalConfigLoader_JSONEntryMap(t *testing.T) {
	root := testResourcePath(t, "multiEntry")

	cfg, err := NewLocalConfigLoader().Load(context.Background(), ConfigRequest{
		ConfigFile: filepath.Join(root, "webpack.config.json"),
	})
	require.NoError(t, err)

	assert.Equal(t, []m.Entry{
		{Name: "adminPanel", Path: "./src/admin.js"},
		{Name: "mainApp", Path: "./src/app.js"},
	}, cfg.Entries)
	assert.Equal(t, filepath.Join(root, "build"), cfg.OutputPath)
	assert.Equal(t, "[name].bundle.js", cfg.OutputFilename)
	assert.Equal(t, m.ModeNone, cfg.Mode)
	assert.Equal(t, m.TargetNode, cfg.Target)
	assert.Equal(t, "source-map", cfg.Devtool)
}

func TestLocalConfigLoader_EntryNamesKeepTheirCase(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "webpack.config.yaml", "entry:\n  myApp: ./src/app.js\n  adminPanel: ./src/admin.js\n"},
		{"toml", "webpack.config.toml", "[entry]\nmyApp = \"./src/app.js\"\nadminPanel = \"./src/admin.js\"\n"},
		{"json with tabs", "webpack.config.json", "{\n\t\"entry\": {\n\t\t\"myApp\": \"./src/app.js\",\n\t\t\"adminPanel\": \"./src/admin.js\"\n\t}\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			cfg, err := NewLocalConfigLoader().Load(context.Background(), ConfigRequest{ConfigFile: path})
			require.NoError(t, err)

			assert.Equal(t, []m.Entry{
				{Name: "adminPanel", Path: "./src/admin.js"},
				{Name: "myApp", Path: "./src/app.js"},
			}, cfg.Entries)
			assert.Equal(t, "[name].js", cfg.OutputFilename)
		})
	}
}

func TestLocalConfigLoader_ZeroConfig(t *testing.T) {
	root := testResourcePath(t, "zeroConfig")

	cfg, err := NewLocalConfigLoader().Load(context.Background(), ConfigRequest{Context: root})
	require.NoError(t, err)

	assert.Equal(t, m.BundleConfig{
		Context:        root,
		Entries:        []m.Entry{{Name: "main", Path: "./src"}},
		OutputPath:     filepath.Join(root, "dist"),
		OutputFilename: "main.js",
		Mode:           m.ModeProduction,
		Target:         m.TargetWeb,
	}, cfg)
}

func TestLocalConfigLoader_Errors(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	tests := []struct {
		name string
		req  ConfigRequest
	}{
		{"no config file and no context", ConfigRequest{}},
		{"missing config file", ConfigRequest{ConfigFile: filepath.Join(dir, "missing.yaml")}},
		{"unknown mode", ConfigRequest{ConfigFile: write("mode.yaml", "mode: turbo\n")}},
		{"unknown target", ConfigRequest{ConfigFile: write("target.yaml", "target: electron\n")}},
		{"empty entry list", ConfigRequest{ConfigFile: write("list.json", `{"entry": []}`)}},
		{"non string entry", ConfigRequest{ConfigFile: write("num.json", `{"entry": 42}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocalConfigLoader().Load(context.Background(), tt.req)
			require.Error(t, err)
		})
	}
}

func TestLocalConfigLoader_RelativeContextAndEntryList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("context: app\nentry:\n  - ./one.js\n  - ./two.ts\nexternals:\n  - react\n"), 0o600))

	cfg, err := NewLocalConfigLoader().Load(context.Background(), ConfigRequest{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "app"), cfg.Context)
	assert.Equal(t, []m.Entry{{Name: "one", Path: "./one.js"}, {Name: "two", Path: "./two.ts"}}, cfg.Entries)
	assert.Equal(t, "[name].js", cfg.OutputFilename)
	assert.Equal(t, []string{"react"}, cfg.Externals)
}

func TestLocalConfigLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalConfigLoader().Load(ctx, ConfigRequest{Context: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}
