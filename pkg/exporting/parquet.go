package exporting

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/parquet-go/parquet-go"

	"sysinfo/pkg/metrics"
)

func init() {
	Register(&ParquetFormat{})
}

// ParquetFormat serializes a record as a single-row parquet file with a
// schema derived from the record's values. Parquet schemas order fields
// alphabetically, so row values are laid out over the sorted key list.
type ParquetFormat struct{}

func (f *ParquetFormat) Name() string         { return "parquet" }
func (f *ParquetFormat) Extensions() []string { return []string{".parquet"} }

func (f *ParquetFormat) Marshal(r *metrics.Record) ([]byte, error) {
	columns := r.Keys()
	sort.Strings(columns)

	group := make(parquet.Group, len(columns))
	for _, name := range columns {
		val, _ := r.Get(name)
		group[name] = valueToParquetNode(val)
	}
	schema := parquet.NewSchema("record", group)

	var buf bytes.Buffer
	writer := parquet.NewWriter(&buf, schema, parquet.Compression(&parquet.Snappy))

	row := make(parquet.Row, len(columns))
	for i, name := range columns {
		val, _ := r.Get(name)
		row[i] = goToParquetValue(val, i)
	}

	if _, err := writer.WriteRows([]parquet.Row{row}); err != nil {
		return nil, fmt.Errorf("write parquet row: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close parquet writer: %w", err)
	}

	return buf.Bytes(), nil
}

// Record values are strings, ints, and float64s, so the schema only needs
// those three leaves.
func valueToParquetNode(val any) parquet.Node {
	switch val.(type) {
	case int, int64:
		return parquet.Optional(parquet.Int(64))
	case float64:
		return parquet.Optional(parquet.Leaf(parquet.DoubleType))
	default:
		return parquet.Optional(parquet.String())
	}
}

func goToParquetValue(val any, columnIndex int) parquet.Value {
	switch v := val.(type) {
	case int:
		return parquet.Int64Value(int64(v)).Level(0, 1, columnIndex)
	case int64:
		return parquet.Int64Value(v).Level(0, 1, columnIndex)
	case float64:
		return parquet.DoubleValue(v).Level(0, 1, columnIndex)
	case string:
		return parquet.ByteArrayValue([]byte(v)).Level(0, 1, columnIndex)
	default:
		return parquet.ByteArrayValue([]byte(fmt.Sprintf("%v", v))).Level(0, 1, columnIndex)
	}
}
