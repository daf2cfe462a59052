// Package formatting renders records for the console.
package formatting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sysinfo/pkg/metrics"
)

// Usage coloring thresholds, in percent.
const (
	DefaultWarnThreshold = 70.0
	DefaultCritThreshold = 90.0
)

const banner = "SYSTEM INFORMATION"

// Options configures display rendering. Thresholds and styling are explicit
// so rendering stays a pure function of record and options.
type Options struct {
	Color         bool
	WarnThreshold float64
	CritThreshold float64
}

// DefaultOptions returns colored rendering with the standard thresholds.
func DefaultOptions() Options {
	return Options{
		Color:         true,
		WarnThreshold: DefaultWarnThreshold,
		CritThreshold: DefaultCritThreshold,
	}
}

// Level classifies a usage percentage against the thresholds.
type Level int

const (
	LevelOK Level = iota
	LevelWarn
	LevelCrit
)

// UsageLevel returns the level for a usage percentage.
func (o Options) UsageLevel(v float64) Level {
	switch {
	case v >= o.CritThreshold:
		return LevelCrit
	case v >= o.WarnThreshold:
		return LevelWarn
	default:
		return LevelOK
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	critStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var usageKeys = map[string]bool{
	metrics.KeyCPUUsage:    true,
	metrics.KeyMemoryUsage: true,
	metrics.KeyDiskUsage:   true,
}

// Render produces the banner-framed display block for a record, one
// "key : value" line per field in record order.
func Render(r *metrics.Record, o Options) string {
	keys := r.Keys()

	width := 0
	for _, k := range keys {
		if len(k) > width {
			width = len(k)
		}
	}

	header := fmt.Sprintf("=== %s ===", banner)
	if o.Color {
		header = headerStyle.Render(header)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')

	for _, k := range keys {
		val, _ := r.Get(k)
		key := fmt.Sprintf("%-*s", width, k)
		if o.Color {
			key = keyStyle.Render(key)
		}
		b.WriteString(fmt.Sprintf("%s : %s\n", key, o.styledValue(k, val)))
	}

	footer := strings.Repeat("=", len(banner)+8)
	if o.Color {
		footer = headerStyle.Render(footer)
	}
	b.WriteString(footer)
	b.WriteByte('\n')

	return b.String()
}

// FormatValue renders a record value as plain text. Usage percentages get a
// "%" suffix with one decimal.
func FormatValue(key string, val any) string {
	switch v := val.(type) {
	case float64:
		if usageKeys[key] {
			return fmt.Sprintf("%.1f%%", v)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// UsageString renders a usage percentage, threshold-colored when enabled.
func (o Options) UsageString(v float64) string {
	s := fmt.Sprintf("%.1f%%", v)
	if !o.Color {
		return s
	}
	switch o.UsageLevel(v) {
	case LevelCrit:
		return critStyle.Render(s)
	case LevelWarn:
		return warnStyle.Render(s)
	default:
		return okStyle.Render(s)
	}
}

func (o Options) styledValue(key string, val any) string {
	if usageKeys[key] {
		if pct, ok := val.(float64); ok {
			return o.UsageString(pct)
		}
	}
	return FormatValue(key, val)
}
