package collecting

import (
	"github.com/rs/zerolog"

	apperrors "sysinfo/pkg/errors"
	"sysinfo/pkg/metrics"
)

// Manager runs collectors in declared order into a single record.
type Manager struct {
	collectors []Collector
	log        zerolog.Logger
}

// NewManager creates a manager over the given collectors.
func NewManager(log zerolog.Logger, collectors ...Collector) *Manager {
	return &Manager{collectors: collectors, log: log}
}

// Default returns a manager with the standard collector set. The collector
// order fixes the record's field order.
func Default(log zerolog.Logger) *Manager {
	return NewManager(log,
		NewHost(),
		NewCPU(),
		NewMemory(),
		NewDisk(),
		NewNetwork(),
	)
}

// Collect builds a full record: static and dynamic fields from every
// collector. A failing collector degrades its fields to "unknown"; only when
// every collector fails does Collect return a CollectionError.
func (m *Manager) Collect() (*metrics.Record, error) {
	record := metrics.New()

	var firstErr error
	failed := 0

	for _, c := range m.collectors {
		staticErr := c.CollectStatic(record)
		backfill(record, c.StaticKeys())

		dynamicErr := c.CollectDynamic(record)
		backfill(record, c.DynamicKeys())

		err := firstOf(staticErr, dynamicErr)
		if err != nil {
			m.log.Warn().Err(err).Str("collector", c.Name()).Msg("collection degraded")
		}

		// A collector counts as failed when every phase it actually
		// queries errored. A no-op dynamic phase does not rescue it.
		hasDynamic := len(c.DynamicKeys()) > 0
		if staticErr != nil && (!hasDynamic || dynamicErr != nil) {
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if failed == len(m.collectors) {
		return nil, apperrors.CollectionError{Cause: firstErr}
	}
	return record, nil
}

// CollectDynamic builds a record holding only the dynamic fields, the subset
// the live monitor reprints every tick.
func (m *Manager) CollectDynamic() (*metrics.Record, error) {
	record := metrics.New()

	var firstErr error
	failed := 0
	queried := 0

	for _, c := range m.collectors {
		if len(c.DynamicKeys()) == 0 {
			continue
		}
		queried++

		if err := c.CollectDynamic(record); err != nil {
			m.log.Warn().Err(err).Str("collector", c.Name()).Msg("collection degraded")
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
		backfill(record, c.DynamicKeys())
	}

	if queried > 0 && failed == queried {
		return nil, apperrors.CollectionError{Cause: firstErr}
	}
	return record, nil
}

// Close releases resources from all collectors.
func (m *Manager) Close() {
	for _, c := range m.collectors {
		if err := c.Close(); err != nil {
			m.log.Warn().Err(err).Str("collector", c.Name()).Msg("error closing collector")
		}
	}
}

// backfill fills declared keys a collector did not set. The record never ends
// up with a key missing entirely.
func backfill(r *metrics.Record, keys []string) {
	for _, k := range keys {
		if !r.Has(k) {
			r.Set(k, metrics.Unknown)
		}
	}
}

func firstOf(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
