package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/goozejs/internal/model"
)

const reportFileSuffix = ".report.yaml"

// ReportStore persists run reports under a reports directory.
type ReportStore interface {
	SaveReports(ctx context.Context, path m.Path, reports []m.RunReport) error
	LoadReports(ctx context.Context, path m.Path) ([]m.RunReport, error)
}

// YAMLReportStore writes one YAML file per report.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReports writes each report to <path>/<id>.report.yaml.
func (s *YAMLReportStore) SaveReports(ctx context.Context, path m.Path, reports []m.RunReport) error {
	if err := os.MkdirAll(string(path), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, report := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}

		if report.ID == "" {
			return errors.New("report has no id")
		}

		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encode report %s: %w", report.ID, err)
		}

		target := filepath.Join(string(path), report.ID+reportFileSuffix)
		if err := os.WriteFile(target, data, 0o600); err != nil {
			return fmt.Errorf("write report %s: %w", report.ID, err)
		}
	}

	return nil
}

// LoadReports reads every report under path, ordered by start time.
func (s *YAMLReportStore) LoadReports(ctx context.Context, path m.Path) ([]m.RunReport, error) {
	entries, err := os.ReadDir(string(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var reports []m.RunReport

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportFileSuffix) {
			continue
		}

		// #nosec G304 - reports dir is configured by the user
		data, err := os.ReadFile(filepath.Join(string(path), entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", entry.Name(), err)
		}

		var report m.RunReport
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", entry.Name(), err)
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].StartedAt.Before(reports[j].StartedAt)
	})

	return reports, nil
}
