package adapter

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// DefaultJestTimeout bounds a single Jest invocation.
const DefaultJestTimeout = 5 * time.Minute

// LocalModuleLoader resolves runner modules to executables installed in a
// project's node_modules or on $PATH.
type LocalModuleLoader struct {
	SearchDir string
	Timeout   time.Duration
}

// NewLocalModuleLoader constructs a loader that searches upwards from dir.
func NewLocalModuleLoader(dir string, timeout time.Duration) *LocalModuleLoader {
	if timeout <= 0 {
		timeout = DefaultJestTimeout
	}

	return &LocalModuleLoader{
		SearchDir: dir,
		Timeout:   timeout,
	}
}

// Require resolves the module id. Only "jest" is supported.
func (l *LocalModuleLoader) Require(id string) (JestRuntime, error) {
	if id != JestModuleID {
		return nil, fmt.Errorf("unsupported module %q", id)
	}

	bin, err := l.resolveBin(id)
	if err != nil {
		return nil, err
	}

	return NewJestCLI(bin, l.Timeout), nil
}

// resolveBin looks for node_modules/.bin/<name> walking up from SearchDir,
// then falls back to $PATH.
func (l *LocalModuleLoader) resolveBin(name string) (string, error) {
	if l.SearchDir != "" {
		dir, err := filepath.Abs(l.SearchDir)
		if err != nil {
			return "", fmt.Errorf("resolve search dir: %w", err)
		}

		for {
			candidate := filepath.Join(dir, "node_modules", ".bin", name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}

			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}

			dir = parent
		}
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("cannot find module %q: %w", name, err)
	}

	return path, nil
}
