package collecting

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"sysinfo/pkg/metrics"
)

// CPU collects processor identity, core counts and usage.
type CPU struct {
	// sampleWindow is the blocking window for the usage measurement.
	// Zero means "since the previous call" (or since boot on the first one),
	// which is what the live monitor wants for per-tick deltas.
	sampleWindow time.Duration
}

func NewCPU() *CPU { return &CPU{} }

// NewCPUWithWindow returns a CPU collector that blocks for the given window
// when measuring usage, trading latency for a meaningful one-shot sample.
func NewCPUWithWindow(window time.Duration) *CPU {
	return &CPU{sampleWindow: window}
}

func (c *CPU) Name() string { return "cpu" }
func (c *CPU) Close() error { return nil }

func (c *CPU) StaticKeys() []string {
	return []string{
		metrics.KeyProcessor,
		metrics.KeyPhysicalCores,
		metrics.KeyCPUCores,
		metrics.KeyCPUMhz,
	}
}

func (c *CPU) DynamicKeys() []string {
	return []string{metrics.KeyCPUUsage}
}

func (c *CPU) CollectStatic(r Setter) error {
	var firstErr error

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		r.Set(metrics.KeyProcessor, infos[0].ModelName)
		r.Set(metrics.KeyCPUMhz, round2(infos[0].Mhz))
	} else if err != nil {
		firstErr = fmt.Errorf("cpu info: %w", err)
	}

	if physical, err := cpu.Counts(false); err == nil {
		r.Set(metrics.KeyPhysicalCores, physical)
	} else if firstErr == nil {
		firstErr = fmt.Errorf("physical core count: %w", err)
	}

	if logical, err := cpu.Counts(true); err == nil {
		r.Set(metrics.KeyCPUCores, logical)
	} else if firstErr == nil {
		firstErr = fmt.Errorf("logical core count: %w", err)
	}

	return firstErr
}

func (c *CPU) CollectDynamic(r Setter) error {
	percents, err := cpu.Percent(c.sampleWindow, false)
	if err != nil {
		return fmt.Errorf("cpu usage: %w", err)
	}
	if len(percents) == 0 {
		return fmt.Errorf("cpu usage: no data")
	}
	r.Set(metrics.KeyCPUUsage, round1(percents[0]))
	return nil
}
