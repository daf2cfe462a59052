package collecting

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"

	"sysinfo/pkg/metrics"
)

// DefaultDiskPath is the mount point reported on by default.
const DefaultDiskPath = "/"

// Disk collects usage of a single volume.
type Disk struct {
	path string
}

func NewDisk() *Disk { return &Disk{path: DefaultDiskPath} }

// NewDiskForPath reports on the volume containing path.
func NewDiskForPath(path string) *Disk { return &Disk{path: path} }

func (c *Disk) Name() string { return "disk" }
func (c *Disk) Close() error { return nil }

func (c *Disk) StaticKeys() []string {
	return []string{
		metrics.KeyDiskTotal,
		metrics.KeyDiskUsed,
		metrics.KeyDiskFree,
	}
}

func (c *Disk) DynamicKeys() []string {
	return []string{metrics.KeyDiskUsage}
}

func (c *Disk) CollectStatic(r Setter) error {
	usage, err := disk.Usage(c.path)
	if err != nil {
		return fmt.Errorf("disk usage %s: %w", c.path, err)
	}
	r.Set(metrics.KeyDiskTotal, gigabytes(usage.Total))
	r.Set(metrics.KeyDiskUsed, gigabytes(usage.Used))
	r.Set(metrics.KeyDiskFree, gigabytes(usage.Free))
	return nil
}

func (c *Disk) CollectDynamic(r Setter) error {
	usage, err := disk.Usage(c.path)
	if err != nil {
		return fmt.Errorf("disk usage %s: %w", c.path, err)
	}
	r.Set(metrics.KeyDiskUsage, round1(usage.UsedPercent))
	return nil
}
