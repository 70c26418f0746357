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

func TestLocalSourceFSAdapter_FindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "package.json", `{}`)
	writeProjectFile(t, root, "src/deep/file.js", "")

	fs := NewLocalSourceFSAdapter()

	t.Run("from nested directory", func(t *testing.T) {
		got, err := fs.FindProjectRoot(context.Background(), m.Path(filepath.Join(root, "src", "deep")))
		require.NoError(t, err)
		assert.Equal(t, m.Path(root), got)
	})

	t.Run("from a file", func(t *testing.T) {
		got, err := fs.FindProjectRoot(context.Background(), m.Path(filepath.Join(root, "src", "deep", "file.js")))
		require.NoError(t, err)
		assert.Equal(t, m.Path(root), got)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := fs.FindProjectRoot(context.Background(), m.Path(t.TempDir()))
		require.Error(t, err)
	})
}

func TestLocalSourceFSAdapter_ReadSources(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "src/b.ts", "export const b = 1;")
	writeProjectFile(t, root, "src/a.js", "export const a = 1;")
	writeProjectFile(t, root, "src/readme.md", "# docs")
	writeProjectFile(t, root, "src/node_modules/dep/index.js", "")
	writeProjectFile(t, root, "lib/c.jsx", "export default () => null;")

	files, err := NewLocalSourceFSAdapter().ReadSources(context.Background(), m.Path(root), []string{"src", "lib"})
	require.NoError(t, err)

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name())
	}

	assert.Equal(t, []string{
		filepath.Join(root, "lib", "c.jsx"),
		filepath.Join(root, "src", "a.js"),
		filepath.Join(root, "src", "b.ts"),
	}, names)
	assert.Equal(t, "export const a = 1;", files[1].TextContent())
}

func TestLocalSourceFSAdapter_ReadSourcesMissingDir(t *testing.T) {
	_, err := NewLocalSourceFSAdapter().ReadSources(context.Background(), m.Path(t.TempDir()), []string{"src"})
	require.Error(t, err)
}

func TestLocalSourceFSAdapter_CopyDirAndLink(t *testing.T) {
	src := t.TempDir()
	writeProjectFile(t, src, "package.json", `{}`)
	writeProjectFile(t, src, "src/index.js", "console.log(1);")
	writeProjectFile(t, src, ".git/HEAD", "ref: refs/heads/main")
	writeProjectFile(t, src, "node_modules/jest/package.json", `{}`)

	fs := NewLocalSourceFSAdapter()
	ctx := context.Background()

	dst, err := fs.CreateTempDir(ctx, "goozejs-test-")
	require.NoError(t, err)
	t.Cleanup(func() { _ = fs.RemoveAll(ctx, dst) })

	require.NoError(t, fs.CopyDir(ctx, m.Path(src), dst))
	require.NoError(t, fs.LinkNodeModules(ctx, m.Path(src), dst))

	content, err := os.ReadFile(filepath.Join(string(dst), "src", "index.js"))
	require.NoError(t, err)
	assert.Equal(t, "console.log(1);", string(content))

	_, err = os.Stat(filepath.Join(string(dst), ".git"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	info, err := os.Lstat(filepath.Join(string(dst), "node_modules"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	_, err = os.Stat(filepath.Join(string(dst), "node_modules", "jest", "package.json"))
	assert.NoError(t, err)
}

func TestLocalSourceFSAdapter_LinkNodeModulesWithoutModules(t *testing.T) {
	dst := t.TempDir()

	require.NoError(t, NewLocalSourceFSAdapter().LinkNodeModules(context.Background(), m.Path(t.TempDir()), m.Path(dst)))

	_, err := os.Lstat(filepath.Join(dst, "node_modules"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalSourceFSAdapter_WriteFileCreatesParents(t *testing.T) {
	fs := NewLocalSourceFSAdapter()
	ctx := context.Background()
	root := t.TempDir()

	target := fs.JoinPath(ctx, root, "dist", "nested", "main.js")
	require.NoError(t, fs.WriteFile(ctx, target, []byte("bundle"), 0o644))

	content, err := os.ReadFile(string(target))
	require.NoError(t, err)
	assert.Equal(t, "bundle", string(content))

	rel, err := fs.RelPath(ctx, m.Path(root), target)
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("dist", "nested", "main.js")), rel)
}

func TestLocalSourceFSAdapter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fs := NewLocalSourceFSAdapter()

	_, err := fs.FindProjectRoot(ctx, m.Path(t.TempDir()))
	require.ErrorIs(t, err, context.Canceled)

	_, err = fs.CreateTempDir(ctx, "goozejs-")
	require.ErrorIs(t, err, context.Canceled)
}
