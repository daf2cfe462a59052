package exporting

import (
	"sysinfo/pkg/graphing"
	"sysinfo/pkg/metrics"
)

func init() {
	Register(&HTMLFormat{})
}

// HTMLFormat serializes a record as a usage chart page.
type HTMLFormat struct{}

func (f *HTMLFormat) Name() string         { return "html" }
func (f *HTMLFormat) Extensions() []string { return []string{".html"} }

func (f *HTMLFormat) Marshal(r *metrics.Record) ([]byte, error) {
	return graphing.Render(r)
}
