// Package monitoring implements the live CPU/memory polling loop.
package monitoring

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"sysinfo/pkg/formatting"
	"sysinfo/pkg/metrics"
)

// DefaultInterval is the polling interval when none is configured.
const DefaultInterval = 2 * time.Second

// Sample is one tick's worth of dynamic metrics.
type Sample struct {
	CPUPercent float64
	MemPercent float64
}

// Sampler produces one Sample per tick. It is an interface so tests can run
// the loop without touching the OS.
type Sampler interface {
	Sample() (Sample, error)
}

// Summary describes a finished monitoring session.
type Summary struct {
	Ticks   int
	Elapsed time.Duration
}

// Monitor reprints a cpu/memory block at a fixed interval until its context
// is canceled. Each tick is independent; a failed tick logs and continues.
type Monitor struct {
	interval time.Duration
	sampler  Sampler
	out      io.Writer
	opts     formatting.Options
	log      zerolog.Logger
}

// New creates a Monitor. A negative interval is treated as zero.
func New(interval time.Duration, sampler Sampler, out io.Writer, opts formatting.Options, log zerolog.Logger) *Monitor {
	if interval < 0 {
		interval = 0
	}
	return &Monitor{
		interval: interval,
		sampler:  sampler,
		out:      out,
		opts:     opts,
		log:      log,
	}
}

// blockLines is the height of the reprinted output block.
const blockLines = 3

// Run executes the poll-format-print loop until ctx is canceled, then prints
// a closing message and returns the session summary. The first sample is
// taken immediately; cancellation is honored even with a zero interval
// because every wait goes through the timer select.
func (m *Monitor) Run(ctx context.Context) Summary {
	m.log.Info().Dur("interval", m.interval).Msg("live monitoring started")

	start := time.Now()
	ticks := 0
	printed := false

	for {
		if sample, err := m.sampler.Sample(); err != nil {
			m.log.Warn().Err(err).Msg("tick failed")
		} else {
			m.print(sample, printed)
			printed = true
			ticks++
		}

		timer := time.NewTimer(m.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			summary := Summary{Ticks: ticks, Elapsed: time.Since(start)}
			fmt.Fprintf(m.out, "\nLive monitoring stopped: %d samples in %s.\n",
				summary.Ticks, summary.Elapsed.Round(time.Millisecond))
			m.log.Info().Int("ticks", summary.Ticks).Dur("elapsed", summary.Elapsed).
				Msg("live monitoring stopped")
			return summary
		case <-timer.C:
		}
	}
}

// print writes the block, rewinding the cursor over the previous one after
// the first tick.
func (m *Monitor) print(s Sample, rewind bool) {
	if rewind {
		fmt.Fprintf(m.out, "\x1b[%dA", blockLines)
	}

	header := "=== LIVE MONITORING ==="
	fmt.Fprintf(m.out, "%s\x1b[K\n", header)
	fmt.Fprintf(m.out, "%-12s : %s\x1b[K\n", metrics.KeyCPUUsage, m.opts.UsageString(s.CPUPercent))
	fmt.Fprintf(m.out, "%-12s : %s\x1b[K\n", metrics.KeyMemoryUsage, m.opts.UsageString(s.MemPercent))
}
