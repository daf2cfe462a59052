// Package metrics defines the record type shared by collectors and exporters.
package metrics

import (
	"bytes"
	"encoding/json"
)

// Unknown is substituted for any field the OS refuses to provide.
const Unknown = "unknown"

// Metric keys, in canonical display order.
const (
	KeySystem        = "system"
	KeyNodeName      = "node_name"
	KeyRelease       = "release"
	KeyVersion       = "version"
	KeyMachine       = "machine"
	KeyUptime        = "uptime"
	KeyBootTime      = "boot_time"
	KeyProcessor     = "processor"
	KeyPhysicalCores = "physical_cores"
	KeyCPUCores      = "cpu_cores"
	KeyCPUMhz        = "cpu_mhz"
	KeyCPUUsage      = "cpu_usage"
	KeyTotalRAM      = "total_ram"
	KeyAvailableRAM  = "available_ram"
	KeyUsedRAM       = "used_ram"
	KeyMemoryUsage   = "memory_usage"
	KeyDiskTotal     = "disk_total"
	KeyDiskUsed      = "disk_used"
	KeyDiskFree      = "disk_free"
	KeyDiskUsage     = "disk_usage"
	KeyLocalIP       = "local_ip"
)

// Record is a flat mapping from metric name to a string or numeric value.
// Insertion order is preserved and defines display and export order.
type Record struct {
	keys []string
	vals map[string]any
}

// New creates an empty Record.
func New() *Record {
	return &Record{vals: make(map[string]any)}
}

// Set stores a value under key. An existing key keeps its position.
func (r *Record) Set(key string, val any) {
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = val
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.vals[key]
	return ok
}

// Keys returns the keys in insertion order. The slice is a copy.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// MarshalJSON serializes the record as a single flat object, preserving
// insertion order. The stdlib encoder is used per value, so strings and
// numbers come out exactly as encoding/json would produce them.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
