package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/goozejs/internal/model"
)

// JestConfigLoader reads a project's Jest configuration.
type JestConfigLoader interface {
	// LoadJestConfig reads configFile when given, otherwise the "jest" key of
	// the project's package.json. rootDir defaults to projectRoot.
	LoadJestConfig(projectRoot m.Path, configFile string) (m.RunnerConfig, error)
}

// LocalJestConfigLoader loads Jest configuration from disk.
type LocalJestConfigLoader struct{}

// NewLocalJestConfigLoader constructs a LocalJestConfigLoader.
func NewLocalJestConfigLoader() *LocalJestConfigLoader {
	return &LocalJestConfigLoader{}
}

// LoadJestConfig implements JestConfigLoader.
func (l *LocalJestConfigLoader) LoadJestConfig(projectRoot m.Path, configFile string) (m.RunnerConfig, error) {
	var (
		cfg m.RunnerConfig
		err error
	)

	if configFile != "" {
		if !filepath.IsAbs(configFile) {
			configFile = filepath.Join(string(projectRoot), configFile)
		}

		cfg, err = readRunnerConfigFile(configFile)
	} else {
		cfg, err = readPackageJSONJestConfig(filepath.Join(string(projectRoot), "package.json"))
	}

	if err != nil {
		return m.RunnerConfig{}, err
	}

	if _, ok := cfg.Get("rootDir"); !ok {
		cfg = cfg.With("rootDir", string(projectRoot))
	}

	return cfg, nil
}

func readRunnerConfigFile(path string) (m.RunnerConfig, error) {
	// #nosec G304 - config path comes from the user's own configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return m.RunnerConfig{}, fmt.Errorf("read jest config: %w", err)
	}

	var cfg m.RunnerConfig

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return m.RunnerConfig{}, fmt.Errorf("unsupported jest config format %q (use .json, .yaml or .yml)", ext)
	}

	if err != nil {
		return m.RunnerConfig{}, fmt.Errorf("parse jest config %s: %w", path, err)
	}

	return cfg, nil
}

func readPackageJSONJestConfig(path string) (m.RunnerConfig, error) {
	// #nosec G304 - package.json of the project under test
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.RunnerConfig{}, nil
		}

		return m.RunnerConfig{}, fmt.Errorf("read package.json: %w", err)
	}

	var pkg struct {
		Jest json.RawMessage `json:"jest"`
	}

	if err := json.Unmarshal(data, &pkg); err != nil {
		return m.RunnerConfig{}, fmt.Errorf("parse package.json: %w", err)
	}

	raw := bytes.TrimSpace(pkg.Jest)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return m.RunnerConfig{}, nil
	}

	var cfg m.RunnerConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return m.RunnerConfig{}, fmt.Errorf("parse package.json jest config: %w", err)
	}

	return cfg, nil
}
