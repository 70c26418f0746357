package model

import "time"

// JestArgv is the payload handed to Jest's programmatic entrypoint.
type JestArgv struct {
	Config    string `json:"config"`
	RunInBand bool   `json:"runInBand"`
	Silent    bool   `json:"silent"`
}

// RunResult is the raw value returned by the test runner. Adapters never
// reshape it.
type RunResult map[string]any

// RunStatus is the outcome of a project run.
type RunStatus string

const (
	// StatusPassed indicates every test passed.
	StatusPassed RunStatus = "passed"
	// StatusFailed indicates the runner completed but some tests failed.
	StatusFailed RunStatus = "failed"
	// StatusError indicates the run could not complete.
	StatusError RunStatus = "error"
)

// TestCounts holds the test totals reported by the runner.
type TestCounts struct {
	Total  int `yaml:"total"`
	Passed int `yaml:"passed"`
	Failed int `yaml:"failed"`
}

// RunReport summarizes a single sandboxed project run.
type RunReport struct {
	ID          string        `yaml:"id"`
	Project     Path          `yaml:"project"`
	Status      RunStatus     `yaml:"status"`
	Tests       TestCounts    `yaml:"tests"`
	Transpiled  int           `yaml:"transpiled"`
	StartedAt   time.Time     `yaml:"started_at"`
	Duration    time.Duration `yaml:"duration"`
	ErrorOutput string        `yaml:"error,omitempty"`
}

// HistoryEntry is a persisted RunReport summary.
type HistoryEntry struct {
	ID         string
	Project    Path
	Status     RunStatus
	Total      int
	Failed     int
	StartedAt  time.Time
	DurationMS int64
}

// SummarizeJestResult extracts test counts and success from the aggregated
// results Jest prints with --json. The aggregated results may sit at the top
// level or under a "results" key.
func SummarizeJestResult(result RunResult) (TestCounts, bool) {
	aggregated := map[string]any(result)
	if nested, ok := result["results"].(map[string]any); ok {
		aggregated = nested
	}

	counts := TestCounts{
		Total:  intField(aggregated, "numTotalTests"),
		Passed: intField(aggregated, "numPassedTests"),
		Failed: intField(aggregated, "numFailedTests"),
	}

	success, ok := aggregated["success"].(bool)
	if !ok {
		success = counts.Failed == 0
	}

	return counts, success
}

func intField(values map[string]any, key string) int {
	switch v := values[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}
