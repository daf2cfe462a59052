// Package collecting queries the OS for system metrics.
package collecting

// Collector defines the interface for all metric collectors.
//
// StaticKeys and DynamicKeys declare every record key the collector is
// responsible for, so the manager can backfill "unknown" when a query fails.
type Collector interface {
	Name() string
	StaticKeys() []string
	DynamicKeys() []string
	CollectStatic(r Setter) error
	CollectDynamic(r Setter) error
	Close() error
}

// Setter is the write surface collectors see on a record.
type Setter interface {
	Set(key string, val any)
	Has(key string) bool
}
