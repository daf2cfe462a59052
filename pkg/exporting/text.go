package exporting

import (
	"fmt"
	"strconv"
	"strings"

	"sysinfo/pkg/metrics"
)

func init() {
	Register(&TextFormat{})
}

// TextFormat serializes a record as "key : value" lines in record order.
// Values are written raw, without display decoration, so parsing a line
// recovers the original value.
type TextFormat struct{}

func (f *TextFormat) Name() string         { return "txt" }
func (f *TextFormat) Extensions() []string { return []string{".txt"} }

func (f *TextFormat) Marshal(r *metrics.Record) ([]byte, error) {
	var b strings.Builder
	for _, k := range r.Keys() {
		val, _ := r.Get(k)
		b.WriteString(k)
		b.WriteString(" : ")
		b.WriteString(plainValue(val))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func plainValue(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
