package collecting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysinfo/pkg/metrics"
)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{0, "0m"},
		{59, "0m"},
		{60, "1m"},
		{3600, "1h 0m"},
		{3660, "1h 1m"},
		{90000, "1d 1h 0m"},
		{273906, "3d 4h 5m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatUptime(tt.seconds), "seconds %d", tt.seconds)
	}
}

func TestGigabytes(t *testing.T) {
	assert.Equal(t, 1.0, gigabytes(1<<30))
	assert.Equal(t, 1.5, gigabytes(3<<29))
	assert.Equal(t, 0.0, gigabytes(0))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 12.5, round1(12.46))
	assert.Equal(t, 15.29, round2(15.289))
}

// Declared keys are the contract the manager backfills against, so they must
// stay aligned with the record constants.
func TestDeclaredKeys(t *testing.T) {
	assert.Equal(t, []string{
		metrics.KeySystem,
		metrics.KeyNodeName,
		metrics.KeyRelease,
		metrics.KeyVersion,
		metrics.KeyMachine,
		metrics.KeyUptime,
		metrics.KeyBootTime,
	}, NewHost().StaticKeys())

	assert.Equal(t, []string{metrics.KeyCPUUsage}, NewCPU().DynamicKeys())
	assert.Equal(t, []string{metrics.KeyMemoryUsage}, NewMemory().DynamicKeys())
	assert.Equal(t, []string{metrics.KeyDiskUsage}, NewDisk().DynamicKeys())
	assert.Equal(t, []string{metrics.KeyLocalIP}, NewNetwork().StaticKeys())
	assert.Empty(t, NewNetwork().DynamicKeys())
}

// Smoke tests against the real OS. They only assert on success paths so they
// hold in constrained environments where a query may legitimately fail.

func TestHostCollectStaticSmoke(t *testing.T) {
	r := metrics.New()
	if err := NewHost().CollectStatic(r); err != nil {
		t.Skipf("host queries unavailable: %v", err)
	}

	v, ok := r.Get(metrics.KeySystem)
	require.True(t, ok)
	assert.NotEmpty(t, v)
}

func TestMemoryCollectSmoke(t *testing.T) {
	r := metrics.New()
	c := NewMemory()
	if err := c.CollectStatic(r); err != nil {
		t.Skipf("memory queries unavailable: %v", err)
	}
	require.NoError(t, c.CollectDynamic(r))

	usage, ok := r.Get(metrics.KeyMemoryUsage)
	require.True(t, ok)
	pct, ok := usage.(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, pct, 0.0)
	assert.LessOrEqual(t, pct, 100.0)
}

func TestCPUCollectStaticSmoke(t *testing.T) {
	r := metrics.New()
	if err := NewCPU().CollectStatic(r); err != nil {
		t.Skipf("cpu queries unavailable: %v", err)
	}

	cores, ok := r.Get(metrics.KeyCPUCores)
	require.True(t, ok)
	assert.Greater(t, cores.(int), 0)
}
