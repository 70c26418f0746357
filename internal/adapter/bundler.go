package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	m "gooze.dev/pkg/goozejs/internal/model"
)

// resolveExtensions are tried, in order, when an import omits its extension.
var resolveExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs", ".json"}

// BundleError lists the messages of a failed bundle.
type BundleError struct {
	Messages []string
}

func (e *BundleError) Error() string {
	return "bundle failed: " + strings.Join(e.Messages, "; ")
}

// Bundler produces bundle artifacts for a set of in-memory source files.
type Bundler interface {
	// Bundle returns only the generated files, never the inputs.
	Bundle(ctx context.Context, cfg m.BundleConfig, files []m.File) ([]m.File, error)
}

// EsbuildBundler bundles in-process with esbuild. Input files are served from
// memory and shadow their on-disk counterparts; everything else (packages,
// files that were not passed in) resolves from disk.
type EsbuildBundler struct {
	logger *slog.Logger
}

// NewEsbuildBundler constructs an EsbuildBundler. A nil logger falls back to
// slog.Default().
func NewEsbuildBundler(logger *slog.Logger) *EsbuildBundler {
	if logger == nil {
		logger = slog.Default()
	}

	return &EsbuildBundler{logger: logger}
}

// Bundle implements Bundler.
func (b *EsbuildBundler) Bundle(ctx context.Context, cfg m.BundleConfig, files []m.File) ([]m.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	options, err := b.buildOptions(cfg, files)
	if err != nil {
		return nil, err
	}

	result := api.Build(options)

	if !cfg.Silent {
		for _, warning := range result.Warnings {
			b.logger.Warn("bundler warning", "message", formatMessage(warning))
		}
	}

	if len(result.Errors) > 0 {
		messages := make([]string, 0, len(result.Errors))
		for _, msg := range result.Errors {
			messages = append(messages, formatMessage(msg))
		}

		return nil, &BundleError{Messages: messages}
	}

	outputs := make([]m.File, 0, len(result.OutputFiles))
	for _, out := range result.OutputFiles {
		outputs = append(outputs, m.NewFile(m.Path(out.Path), out.Contents))
	}

	return outputs, nil
}

func (b *EsbuildBundler) buildOptions(cfg m.BundleConfig, files []m.File) (api.BuildOptions, error) {
	if cfg.Context == "" {
		return api.BuildOptions{}, fmt.Errorf("bundle config has no context")
	}

	if len(cfg.Entries) == 0 {
		return api.BuildOptions{}, fmt.Errorf("bundle config has no entries")
	}

	filename := cfg.OutputFilename
	if filename == "" {
		filename = defaultOutputFilename
	}

	if len(cfg.Entries) > 1 && !strings.Contains(filename, "[name]") {
		return api.BuildOptions{}, fmt.Errorf("output filename %q must contain [name] for %d entries", filename, len(cfg.Entries))
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	entries := make([]api.EntryPoint, 0, len(cfg.Entries))
	for _, entry := range cfg.Entries {
		input := entry.Path
		if !filepath.IsAbs(input) {
			input = filepath.Join(cfg.Context, input)
		}

		entries = append(entries, api.EntryPoint{
			InputPath:  input,
			OutputPath: strings.ReplaceAll(stem, "[name]", entry.Name),
		})
	}

	memory, err := memoryFiles(files)
	if err != nil {
		return api.BuildOptions{}, err
	}

	options := api.BuildOptions{
		EntryPointsAdvanced: entries,
		Bundle:              true,
		Write:               false,
		Outdir:              cfg.OutputPath,
		AbsWorkingDir:       cfg.Context,
		External:            cfg.Externals,
		LogLevel:            api.LogLevelSilent,
		Plugins:             []api.Plugin{memoryPlugin(memory)},
	}

	if ext != "" && ext != ".js" {
		options.OutExtension = map[string]string{".js": ext}
	}

	switch cfg.Target {
	case m.TargetNode:
		options.Platform = api.PlatformNode
		options.Format = api.FormatCommonJS
	default:
		options.Platform = api.PlatformBrowser
		options.Format = api.FormatIIFE
	}

	if cfg.Mode == m.ModeProduction {
		options.MinifyWhitespace = true
		options.MinifyIdentifiers = true
		options.MinifySyntax = true
	}

	if cfg.SourceMaps || strings.Contains(cfg.Devtool, "source-map") {
		options.Sourcemap = api.SourceMapExternal
	}

	return options, nil
}

func memoryFiles(files []m.File) (map[string]string, error) {
	memory := make(map[string]string, len(files))

	for _, file := range files {
		abs, err := filepath.Abs(string(file.Path))
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", file.Path, err)
		}

		memory[abs] = file.TextContent()
	}

	return memory, nil
}

// memoryPlugin serves input files from memory. Resolution that misses the
// in-memory set falls through to esbuild's own resolver.
func memoryPlugin(files map[string]string) api.Plugin {
	return api.Plugin{
		Name: "goozejs-memory",
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: `^(\.|/)`},
				func(args api.OnResolveArgs) (api.OnResolveResult, error) {
					target := args.Path
					if !filepath.IsAbs(target) {
						if args.ResolveDir == "" {
							return api.OnResolveResult{}, nil
						}

						target = filepath.Join(args.ResolveDir, target)
					}

					if resolved, ok := lookupMemory(files, target); ok {
						return api.OnResolveResult{Path: resolved, Namespace: "file"}, nil
					}

					return api.OnResolveResult{}, nil
				})

			build.OnLoad(api.OnLoadOptions{Filter: `.*`, Namespace: "file"},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					contents, ok := files[args.Path]
					if !ok {
						return api.OnLoadResult{}, nil
					}

					return api.OnLoadResult{
						Contents:   &contents,
						ResolveDir: filepath.Dir(args.Path),
						Loader:     loaderFor(args.Path),
					}, nil
				})
		},
	}
}

func lookupMemory(files map[string]string, target string) (string, bool) {
	target = filepath.Clean(target)

	if _, ok := files[target]; ok {
		return target, true
	}

	for _, ext := range resolveExtensions {
		if _, ok := files[target+ext]; ok {
			return target + ext, true
		}
	}

	for _, ext := range resolveExtensions {
		index := filepath.Join(target, "index"+ext)
		if _, ok := files[index]; ok {
			return index, true
		}
	}

	return "", false
}

func loaderFor(path string) api.Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return api.LoaderTS
	case ".tsx":
		return api.LoaderTSX
	case ".jsx":
		return api.LoaderJSX
	case ".json":
		return api.LoaderJSON
	case ".css":
		return api.LoaderCSS
	default:
		return api.LoaderJS
	}
}

func formatMessage(msg api.Message) string {
	if msg.Location == nil {
		return msg.Text
	}

	return fmt.Sprintf("%s:%d:%d: %s", msg.Location.File, msg.Location.Line, msg.Location.Column, msg.Text)
}
