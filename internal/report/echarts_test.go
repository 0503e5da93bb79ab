package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stereoglue/bench.report/internal/results"
)

func htmlSet() *results.ResultSet {
	return &results.ResultSet{
		Dataset: "phototourism",
		Metric:  "auc@10",
		XLabel:  "Inlier threshold (px)",
		YLabel:  "AUC@10",
		Series: []results.Series{
			{Method: "stereoglue", Points: []results.Point{{X: 0.5, Y: 0.61}, {X: 1, Y: 0.67}}},
			{Method: "RANSAC OpenCV", Points: []results.Point{{X: 0.5, Y: 0.42}, {X: 1, Y: 0.48}}},
			{Method: "mystery method", Points: []results.Point{{X: 0.5, Y: 0.1}}},
		},
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, "Essential matrix estimation", htmlSet()); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"Essential matrix estimation",
		"StereoGlue",
		"RANSAC [OpenCV]",
		"#1f77b4", // RANSAC family colour from the shared palette
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
	if strings.Contains(html, "mystery method") {
		t.Error("unlisted method leaked into the HTML chart")
	}
}

func TestWriteHTML_NoChartedMethods(t *testing.T) {
	rs := &results.ResultSet{
		Dataset: "phototourism",
		Metric:  "auc@10",
		Series: []results.Series{
			{Method: "mystery method", Points: []results.Point{{X: 1, Y: 1}}},
		},
	}
	var buf bytes.Buffer
	if err := WriteHTML(&buf, "t", rs); err == nil {
		t.Error("WriteHTML() with no charted methods = nil, want error")
	}
}

func TestWriteHTML_InvalidSet(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHTML(&buf, "t", &results.ResultSet{Dataset: "d", Metric: "m"})
	if err == nil || !strings.Contains(err.Error(), "invalid results") {
		t.Errorf("WriteHTML() = %v, want validation error", err)
	}
}
