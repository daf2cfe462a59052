// Package graphing renders a record as a self-contained HTML chart page.
package graphing

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"sysinfo/pkg/metrics"
)

// usageSeries maps chart labels to the record keys they plot.
var usageSeries = []struct {
	Label string
	Key   string
}{
	{"cpu", metrics.KeyCPUUsage},
	{"memory", metrics.KeyMemoryUsage},
	{"disk", metrics.KeyDiskUsage},
}

// Render produces an HTML page with a bar chart of the record's usage
// percentages. Fields degraded to "unknown" are skipped.
func Render(r *metrics.Record) ([]byte, error) {
	var labels []string
	var data []opts.BarData

	for _, s := range usageSeries {
		val, ok := r.Get(s.Key)
		if !ok {
			continue
		}
		pct, ok := val.(float64)
		if !ok {
			continue
		}
		labels = append(labels, s.Label)
		data = append(data, opts.BarData{Value: pct})
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("no numeric usage fields to chart")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "System usage",
			Subtitle: subtitle(r),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "percent"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "400px"}),
	)
	bar.SetXAxis(labels).AddSeries("usage %", data)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func subtitle(r *metrics.Record) string {
	var parts []string
	for _, key := range []string{metrics.KeySystem, metrics.KeyNodeName} {
		if v, ok := r.Get(key); ok {
			parts = append(parts, fmt.Sprintf("%v", v))
		}
	}
	return strings.Join(parts, " ")
}
