package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/stereoglue/bench.report/internal/results"
	"github.com/stereoglue/bench.report/internal/style"
)

// WriteHTML renders the result set as an interactive line chart for the
// report pages. Series keep the colours of the static charts and appear in
// table order; series whose method id has no display name are omitted.
func WriteHTML(w io.Writer, title string, rs *results.ResultSet) error {
	if err := rs.Validate(); err != nil {
		return fmt.Errorf("invalid results: %w", err)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1100px", Height: "650px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("dataset=%s metric=%s", rs.Dataset, rs.Metric)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: rs.XLabel, NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: rs.YLabel, NameLocation: "middle", NameGap: 40}),
	)

	added := 0
	for _, id := range style.MethodIDs() {
		s, ok := rs.MethodSeries(id)
		if !ok {
			continue
		}
		label, _ := style.DisplayName(id)

		data := make([]opts.LineData, len(s.Points))
		for i, pt := range s.Points {
			data[i] = opts.LineData{Value: []interface{}{pt.X, pt.Y}}
		}

		var seriesOpts []charts.SeriesOpts
		if col, ok := style.MethodColor(id); ok {
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: style.Hex(col)}))
		}
		line.AddSeries(label, data, seriesOpts...)
		added++
	}
	if added == 0 {
		return fmt.Errorf("result set names no charted methods")
	}

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}
