package monitoring

import (
	"sysinfo/pkg/metrics"
)

// DynamicCollector is the slice of the collector manager the monitor needs.
type DynamicCollector interface {
	CollectDynamic() (*metrics.Record, error)
}

// CollectorSampler adapts a collector manager to the Sampler interface, so
// live ticks go through the same collectors as one-shot collection. Usage
// fields degraded to "unknown" read as zero.
type CollectorSampler struct {
	collector DynamicCollector
}

func NewCollectorSampler(c DynamicCollector) *CollectorSampler {
	return &CollectorSampler{collector: c}
}

func (s *CollectorSampler) Sample() (Sample, error) {
	record, err := s.collector.CollectDynamic()
	if err != nil {
		return Sample{}, err
	}
	return Sample{
		CPUPercent: percentField(record, metrics.KeyCPUUsage),
		MemPercent: percentField(record, metrics.KeyMemoryUsage),
	}, nil
}

func percentField(r *metrics.Record, key string) float64 {
	v, ok := r.Get(key)
	if !ok {
		return 0
	}
	pct, _ := v.(float64)
	return pct
}
