// Package adapter contains the infrastructure adapters goozejs drives: the
// Jest runner, the bundler, the filesystem and the report stores.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "gooze.dev/pkg/goozejs/internal/model"
)

// sourceExtensions are the file types read as transpiler input.
var sourceExtensions = map[string]struct{}{
	".js": {}, ".jsx": {}, ".ts": {}, ".tsx": {}, ".mjs": {}, ".cjs": {}, ".json": {}, ".css": {},
}

// skippedDirs are never copied into a sandbox nor read as sources.
var skippedDirs = map[string]struct{}{
	".git": {}, "node_modules": {},
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when preparing sandboxes. It hides direct `os` access so the
// orchestration logic can be tested against a temp dir.
//
//nolint:interfacebloat // A richer interface keeps orchestration decoupled from os/fs.
type SourceFSAdapter interface {
	// FindProjectRoot searches for package.json walking up from startPath.
	FindProjectRoot(ctx context.Context, startPath m.Path) (m.Path, error)

	// ReadSources loads every source file under the given project-relative
	// directories, sorted by path.
	ReadSources(ctx context.Context, root m.Path, dirs []string) ([]m.File, error)

	// CreateTempDir creates a temporary directory for a sandbox.
	CreateTempDir(ctx context.Context, pattern string) (m.Path, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// CopyDir recursively copies a project, skipping .git and node_modules.
	CopyDir(ctx context.Context, src, dst m.Path) error

	// LinkNodeModules symlinks src/node_modules into dst when it exists.
	LinkNodeModules(ctx context.Context, src, dst m.Path) error

	// WriteFile writes content, creating parent directories as needed.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the orchestrator.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FindProjectRoot searches for package.json walking up the directory tree.
// startPath may be a file or a directory.
func (a *LocalSourceFSAdapter) FindProjectRoot(ctx context.Context, startPath m.Path) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir, err := filepath.Abs(string(startPath))
	if err != nil {
		return "", err
	}

	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
			return m.Path(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("package.json not found in any parent directory of %s", startPath)
		}

		dir = parent
	}
}

// ReadSources implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) ReadSources(ctx context.Context, root m.Path, dirs []string) ([]m.File, error) {
	var files []m.File

	for _, dir := range dirs {
		base := filepath.Join(string(root), dir)

		err := filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			if info.IsDir() {
				if _, skip := skippedDirs[info.Name()]; skip {
					return filepath.SkipDir
				}

				return nil
			}

			if _, ok := sourceExtensions[strings.ToLower(filepath.Ext(path))]; !ok {
				return nil
			}

			// #nosec G304 - path comes from walking the project under test
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			files = append(files, m.NewFile(m.Path(path), content))

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("read sources in %s: %w", base, err)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	return files, nil
}

// CreateTempDir creates a temporary directory for a sandbox.
func (a *LocalSourceFSAdapter) CreateTempDir(ctx context.Context, pattern string) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}

// CopyDir recursively copies a directory tree.
func (a *LocalSourceFSAdapter) CopyDir(ctx context.Context, src, dst m.Path) error {
	return filepath.Walk(string(src), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		relPath, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if _, skip := skippedDirs[info.Name()]; skip && path != string(src) {
				return filepath.SkipDir
			}
		}

		targetPath := filepath.Join(string(dst), relPath)

		if info.IsDir() {
			return os.MkdirAll(targetPath, info.Mode().Perm()|0o700)
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		return a.copyFile(path, targetPath, info.Mode())
	})
}

// copyFile copies a single file.
func (a *LocalSourceFSAdapter) copyFile(src, dst string, mode os.FileMode) error {
	// #nosec G304 - src is internal project file path, not user input
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is internal destination path, not user input
	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(dst, mode)
}

// LinkNodeModules symlinks the project's node_modules into the sandbox so the
// runner and the bundler resolve installed packages without copying them.
func (a *LocalSourceFSAdapter) LinkNodeModules(ctx context.Context, src, dst m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	source, err := filepath.Abs(filepath.Join(string(src), "node_modules"))
	if err != nil {
		return err
	}

	if _, err := os.Stat(source); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}

	return os.Symlink(source, filepath.Join(string(dst), "node_modules"))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(_ context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
