package collecting

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"golang.org/x/sys/unix"

	"sysinfo/pkg/metrics"
)

// Host collects OS identity, uptime and boot time.
type Host struct{}

func NewHost() *Host { return &Host{} }

func (c *Host) Name() string { return "host" }
func (c *Host) Close() error { return nil }

func (c *Host) StaticKeys() []string {
	return []string{
		metrics.KeySystem,
		metrics.KeyNodeName,
		metrics.KeyRelease,
		metrics.KeyVersion,
		metrics.KeyMachine,
		metrics.KeyUptime,
		metrics.KeyBootTime,
	}
}

func (c *Host) DynamicKeys() []string { return nil }

func (c *Host) CollectStatic(r Setter) error {
	var uname unix.Utsname
	unameErr := unix.Uname(&uname)
	if unameErr == nil {
		r.Set(metrics.KeySystem, unix.ByteSliceToString(uname.Sysname[:]))
		r.Set(metrics.KeyNodeName, unix.ByteSliceToString(uname.Nodename[:]))
		r.Set(metrics.KeyRelease, unix.ByteSliceToString(uname.Release[:]))
		r.Set(metrics.KeyVersion, unix.ByteSliceToString(uname.Version[:]))
		r.Set(metrics.KeyMachine, unix.ByteSliceToString(uname.Machine[:]))
	}

	info, infoErr := host.Info()
	if infoErr == nil {
		r.Set(metrics.KeyUptime, formatUptime(info.Uptime))
		r.Set(metrics.KeyBootTime, time.Unix(int64(info.BootTime), 0).Format("2006-01-02 15:04:05"))
	}

	if unameErr != nil && infoErr != nil {
		return fmt.Errorf("host queries failed: %v; %v", unameErr, infoErr)
	}
	if unameErr != nil {
		return fmt.Errorf("uname: %w", unameErr)
	}
	if infoErr != nil {
		return fmt.Errorf("host info: %w", infoErr)
	}
	return nil
}

func (c *Host) CollectDynamic(r Setter) error { return nil }

// formatUptime renders seconds as "3d 7h 42m". Sub-minute uptimes show "0m".
func formatUptime(seconds uint64) string {
	d := time.Duration(seconds) * time.Second
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
