// Package results loads benchmark curves, either from the JSON files the
// benchmark harness exports or from its run database.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Point is one sample of a benchmark curve.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series holds the curve measured for one method.
type Series struct {
	Method string  `json:"method"`
	Points []Point `json:"points"`
}

// ResultSet is one benchmark run: a curve per method for a single dataset
// and metric, plus the axis labels the harness exported alongside them.
type ResultSet struct {
	Dataset string   `json:"dataset"`
	Metric  string   `json:"metric"`
	XLabel  string   `json:"x_label,omitempty"`
	YLabel  string   `json:"y_label,omitempty"`
	Series  []Series `json:"series"`
}

// Result exports stay small; anything larger is a harness bug.
const maxFileSize = 8 * 1024 * 1024 // 8MB

// Load reads a ResultSet from a JSON file. The file must have a .json
// extension and be under the max file size, and the decoded set must pass
// Validate.
func Load(path string) (*ResultSet, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("results file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat results file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("results file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}

	var rs ResultSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse results JSON: %w", err)
	}

	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid results: %w", err)
	}

	return &rs, nil
}

// Validate checks that the result set is complete enough to plot.
func (rs *ResultSet) Validate() error {
	if rs.Dataset == "" {
		return fmt.Errorf("dataset is required")
	}
	if rs.Metric == "" {
		return fmt.Errorf("metric is required")
	}
	if len(rs.Series) == 0 {
		return fmt.Errorf("at least one series is required")
	}

	seen := make(map[string]bool, len(rs.Series))
	for i, s := range rs.Series {
		if s.Method == "" {
			return fmt.Errorf("series %d: method id is required", i)
		}
		if seen[s.Method] {
			return fmt.Errorf("duplicate series for method %q", s.Method)
		}
		seen[s.Method] = true
		if len(s.Points) == 0 {
			return fmt.Errorf("series %q has no points", s.Method)
		}
	}
	return nil
}

// Methods returns the method ids present in the set, in file order.
func (rs *ResultSet) Methods() []string {
	ids := make([]string, len(rs.Series))
	for i, s := range rs.Series {
		ids[i] = s.Method
	}
	return ids
}

// MethodSeries returns the series recorded for a method id.
func (rs *ResultSet) MethodSeries(id string) (*Series, bool) {
	for i := range rs.Series {
		if rs.Series[i].Method == id {
			return &rs.Series[i], true
		}
	}
	return nil, false
}
