package exporting

import (
	"encoding/json"

	"sysinfo/pkg/metrics"
)

func init() {
	Register(&JSONFormat{})
}

// JSONFormat serializes a record as a single flat, indented JSON object.
// Field order follows the record.
type JSONFormat struct{}

func (f *JSONFormat) Name() string         { return "json" }
func (f *JSONFormat) Extensions() []string { return []string{".json"} }

func (f *JSONFormat) Marshal(r *metrics.Record) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
