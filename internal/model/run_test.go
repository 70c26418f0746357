package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeJestResult(t *testing.T) {
	tests := []struct {
		name        string
		result      RunResult
		wantCounts  TestCounts
		wantSuccess bool
	}{
		{
			name: "nested aggregated results",
			result: RunResult{
				"results": map[string]any{
					"numTotalTests":  float64(4),
					"numPassedTests": float64(3),
					"numFailedTests": float64(1),
					"success":        false,
				},
			},
			wantCounts:  TestCounts{Total: 4, Passed: 3, Failed: 1},
			wantSuccess: false,
		},
		{
			name: "top level aggregated results",
			result: RunResult{
				"numTotalTests":  2,
				"numPassedTests": 2,
				"numFailedTests": 0,
				"success":        true,
			},
			wantCounts:  TestCounts{Total: 2, Passed: 2},
			wantSuccess: true,
		},
		{
			name:        "missing success falls back to failures",
			result:      RunResult{"numFailedTests": float64(0)},
			wantCounts:  TestCounts{},
			wantSuccess: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts, success := SummarizeJestResult(tt.result)
			assert.Equal(t, tt.wantCounts, counts)
			assert.Equal(t, tt.wantSuccess, success)
		})
	}
}

func TestFile_IsImmutable(t *testing.T) {
	content := []byte("console.log('Hello world!');")
	file := NewFile("/src/index.js", content)

	content[0] = 'X'
	assert.Equal(t, "console.log('Hello world!');", file.TextContent())

	got := file.Content()
	got[0] = 'Y'
	assert.Equal(t, "console.log('Hello world!');", file.TextContent())
	assert.Equal(t, "/src/index.js", file.Name())
	assert.Equal(t, Path("/src"), file.Path.Dir())
}
