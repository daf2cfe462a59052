package graphing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysinfo/pkg/metrics"
)

func TestRenderProducesChartPage(t *testing.T) {
	r := metrics.New()
	r.Set(metrics.KeySystem, "Linux")
	r.Set(metrics.KeyNodeName, "testhost")
	r.Set(metrics.KeyCPUUsage, 12.5)
	r.Set(metrics.KeyMemoryUsage, 45.0)
	r.Set(metrics.KeyDiskUsage, 80.2)

	data, err := Render(r)
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "System usage")
	assert.Contains(t, html, "Linux testhost")
}

func TestRenderSkipsUnknownFields(t *testing.T) {
	r := metrics.New()
	r.Set(metrics.KeyCPUUsage, metrics.Unknown)
	r.Set(metrics.KeyMemoryUsage, 45.0)

	data, err := Render(r)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderNoNumericUsage(t *testing.T) {
	r := metrics.New()
	r.Set(metrics.KeySystem, "Linux")
	r.Set(metrics.KeyCPUUsage, metrics.Unknown)

	_, err := Render(r)
	assert.Error(t, err)
}
