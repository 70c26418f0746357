package adapter

import (
	"context"
	"log/slog"
	"sort"

	m "gooze.dev/pkg/goozejs/internal/model"
)

// Transpiler turns a set of source files into the files tests should run
// against.
type Transpiler interface {
	Transpile(ctx context.Context, files []m.File) ([]m.File, error)
}

// WebpackTranspiler bundles files with a webpack-style configuration and
// returns the inputs followed by the generated bundle files.
type WebpackTranspiler struct {
	options m.BundlerOptions
	loader  ConfigLoader
	bundler Bundler
	logger  *slog.Logger
}

// NewWebpackTranspiler constructs a WebpackTranspiler. A nil logger falls back
// to slog.Default().
func NewWebpackTranspiler(options m.BundlerOptions, loader ConfigLoader, bundler Bundler, logger *slog.Logger) *WebpackTranspiler {
	if logger == nil {
		logger = slog.Default()
	}

	return &WebpackTranspiler{
		options: options,
		loader:  loader,
		bundler: bundler,
		logger:  logger,
	}
}

// Transpile implements Transpiler. Loader and bundler errors are returned
// unchanged and no partial output is produced.
func (t *WebpackTranspiler) Transpile(ctx context.Context, files []m.File) ([]m.File, error) {
	req := ConfigRequest{Silent: t.options.Silent}
	if t.options.ConfigFile != "" {
		req.ConfigFile = t.options.ConfigFile
	} else {
		req.Context = t.options.Context
	}

	cfg, err := t.loader.Load(ctx, req)
	if err != nil {
		return nil, err
	}

	cfg.SourceMaps = cfg.SourceMaps || t.options.ProduceSourceMaps

	generated, err := t.bundler.Bundle(ctx, cfg, files)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(generated, func(i, j int) bool {
		return generated[i].Path < generated[j].Path
	})

	out := make([]m.File, 0, len(files)+len(generated))
	out = append(out, files...)
	out = append(out, generated...)

	t.logger.Debug("transpiled files", "inputs", len(files), "generated", len(generated), "context", cfg.Context)

	return out, nil
}
