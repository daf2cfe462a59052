package collecting

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"

	"sysinfo/pkg/metrics"
)

// Memory collects virtual memory totals and usage.
type Memory struct{}

func NewMemory() *Memory { return &Memory{} }

func (c *Memory) Name() string { return "memory" }
func (c *Memory) Close() error { return nil }

func (c *Memory) StaticKeys() []string {
	return []string{
		metrics.KeyTotalRAM,
		metrics.KeyAvailableRAM,
		metrics.KeyUsedRAM,
	}
}

func (c *Memory) DynamicKeys() []string {
	return []string{metrics.KeyMemoryUsage}
}

func (c *Memory) CollectStatic(r Setter) error {
	vmem, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("virtual memory: %w", err)
	}
	r.Set(metrics.KeyTotalRAM, gigabytes(vmem.Total))
	r.Set(metrics.KeyAvailableRAM, gigabytes(vmem.Available))
	r.Set(metrics.KeyUsedRAM, gigabytes(vmem.Used))
	return nil
}

func (c *Memory) CollectDynamic(r Setter) error {
	vmem, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("virtual memory: %w", err)
	}
	r.Set(metrics.KeyMemoryUsage, round1(vmem.UsedPercent))
	return nil
}
