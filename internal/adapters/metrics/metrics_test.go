package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bim/internal/adapters/metrics"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.CacheHit()
	m.CacheHit()
	m.CacheMiss()
	m.Degraded()
	m.Invocation()
	m.Invocation()
	m.Invocation()

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, fam := range families {
		values[fam.GetName()] = fam.GetMetric()[0].GetCounter().GetValue()
	}

	assert.Equal(t, 2.0, values["bim_aspect_cache_hits_total"])
	assert.Equal(t, 1.0, values["bim_aspect_cache_misses_total"])
	assert.Equal(t, 1.0, values["bim_aspect_cache_degraded_total"])
	assert.Equal(t, 3.0, values["bim_aspect_cache_invocations_total"])
}

func TestPrometheusMetrics_RegistersAllCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
