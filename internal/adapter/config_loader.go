package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/goozejs/internal/model"
)

// Zero-config defaults, applied when no config file is given.
const (
	defaultEntry          = "./src"
	defaultOutputPath     = "dist"
	defaultOutputFilename = "main.js"
	defaultEntryName      = "main"
)

// ConfigRequest asks a ConfigLoader for a bundler configuration. Exactly one
// of ConfigFile and Context is expected to be set.
type ConfigRequest struct {
	ConfigFile string
	Context    string
	Silent     bool
}

// ConfigLoader resolves a bundler configuration from a config file or from a
// context directory.
type ConfigLoader interface {
	Load(ctx context.Context, req ConfigRequest) (m.BundleConfig, error)
}

// LocalConfigLoader reads webpack-style config files (json, yaml or toml)
// with viper.
type LocalConfigLoader struct{}

// NewLocalConfigLoader constructs a LocalConfigLoader.
func NewLocalConfigLoader() *LocalConfigLoader {
	return &LocalConfigLoader{}
}

// Load implements ConfigLoader.
func (l *LocalConfigLoader) Load(ctx context.Context, req ConfigRequest) (m.BundleConfig, error) {
	if err := ctx.Err(); err != nil {
		return m.BundleConfig{}, err
	}

	var (
		cfg m.BundleConfig
		err error
	)

	switch {
	case req.ConfigFile != "":
		cfg, err = l.loadFile(req.ConfigFile)
	case req.Context != "":
		cfg, err = zeroConfig(req.Context)
	default:
		return m.BundleConfig{}, errors.New("bundler config requires a config file or a context directory")
	}

	if err != nil {
		return m.BundleConfig{}, err
	}

	cfg.Silent = req.Silent

	return cfg, nil
}

func zeroConfig(contextDir string) (m.BundleConfig, error) {
	abs, err := filepath.Abs(contextDir)
	if err != nil {
		return m.BundleConfig{}, fmt.Errorf("resolve context: %w", err)
	}

	return m.BundleConfig{
		Context:        abs,
		Entries:        []m.Entry{{Name: defaultEntryName, Path: defaultEntry}},
		OutputPath:     filepath.Join(abs, defaultOutputPath),
		OutputFilename: defaultOutputFilename,
		Mode:           m.ModeProduction,
		Target:         m.TargetWeb,
	}, nil
}

func (l *LocalConfigLoader) loadFile(path string) (m.BundleConfig, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return m.BundleConfig{}, fmt.Errorf("resolve config file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(abs)

	if err := v.ReadInConfig(); err != nil {
		return m.BundleConfig{}, fmt.Errorf("read bundler config %s: %w", abs, err)
	}

	configDir := filepath.Dir(abs)

	contextDir := v.GetString("context")
	switch {
	case contextDir == "":
		contextDir = configDir
	case !filepath.IsAbs(contextDir):
		contextDir = filepath.Join(configDir, contextDir)
	}

	rawEntry, err := readRawEntry(abs)
	if err != nil {
		return m.BundleConfig{}, fmt.Errorf("read bundler config %s: %w", abs, err)
	}

	entries, err := parseEntries(rawEntry)
	if err != nil {
		return m.BundleConfig{}, fmt.Errorf("bundler config %s: %w", abs, err)
	}

	outputPath := v.GetString("output.path")
	switch {
	case outputPath == "":
		outputPath = filepath.Join(contextDir, defaultOutputPath)
	case !filepath.IsAbs(outputPath):
		outputPath = filepath.Join(contextDir, outputPath)
	}

	filename := v.GetString("output.filename")
	if filename == "" {
		filename = defaultOutputFilename
		if len(entries) > 1 {
			filename = "[name].js"
		}
	}

	mode := strings.ToLower(v.GetString("mode"))
	switch mode {
	case "":
		mode = m.ModeProduction
	case m.ModeDevelopment, m.ModeProduction, m.ModeNone:
	default:
		return m.BundleConfig{}, fmt.Errorf("bundler config %s: unknown mode %q", abs, mode)
	}

	target := strings.ToLower(v.GetString("target"))
	switch target {
	case "":
		target = m.TargetWeb
	case m.TargetWeb, m.TargetNode:
	default:
		return m.BundleConfig{}, fmt.Errorf("bundler config %s: unknown target %q", abs, target)
	}

	externals := v.GetStringSlice("externals")
	if len(externals) == 0 {
		externals = nil
	}

	return m.BundleConfig{
		Context:        contextDir,
		Entries:        entries,
		OutputPath:     outputPath,
		OutputFilename: filename,
		Mode:           mode,
		Target:         target,
		Externals:      externals,
		Devtool:        v.GetString("devtool"),
	}, nil
}

// readRawEntry decodes the "entry" key without viper, which lowercases map
// keys and would rename the bundles.
func readRawEntry(path string) (any, error) {
	// #nosec G304 - path is the bundler config the user pointed at
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Entry any `json:"entry" yaml:"entry" toml:"entry"`
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	case ".json":
		err = json.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}

	if err != nil {
		return nil, err
	}

	return doc.Entry, nil
}

// parseEntries accepts the three webpack entry shapes: a string, a list of
// strings, or a name to path mapping.
func parseEntries(raw any) ([]m.Entry, error) {
	switch entry := raw.(type) {
	case nil:
		return []m.Entry{{Name: defaultEntryName, Path: defaultEntry}}, nil
	case string:
		return []m.Entry{{Name: defaultEntryName, Path: entry}}, nil
	case []any:
		if len(entry) == 0 {
			return nil, errors.New("entry list is empty")
		}

		entries := make([]m.Entry, 0, len(entry))

		for _, item := range entry {
			path, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("entry %v is not a string", item)
			}

			entries = append(entries, m.Entry{Name: entryName(path), Path: path})
		}

		return entries, nil
	case map[string]any:
		if len(entry) == 0 {
			return nil, errors.New("entry map is empty")
		}

		names := make([]string, 0, len(entry))
		for name := range entry {
			names = append(names, name)
		}

		sort.Strings(names)

		entries := make([]m.Entry, 0, len(entry))

		for _, name := range names {
			path, ok := entry[name].(string)
			if !ok {
				return nil, fmt.Errorf("entry %q is not a string", name)
			}

			entries = append(entries, m.Entry{Name: name, Path: path})
		}

		return entries, nil
	default:
		return nil, fmt.Errorf("unsupported entry type %T", raw)
	}
}

func entryName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
