// Package metrics implements cache observability counters on Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.trai.ch/bim/internal/core/ports"
)

var _ ports.Metrics = (*PrometheusMetrics)(nil)

// PrometheusMetrics counts cache and invocation events on a Prometheus
// registry. The counters feed dashboards only; no code path reads them
// back.
type PrometheusMetrics struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	degraded    prometheus.Counter
	invocations prometheus.Counter
}

// New registers the bim counters on the given registerer.
func New(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "bim",
			Subsystem: "aspect_cache",
			Name:      "hits_total",
			Help:      "Number of dependency records served from the cache.",
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "bim",
			Subsystem: "aspect_cache",
			Name:      "misses_total",
			Help:      "Number of cache misses that triggered a build tool run.",
		}),
		degraded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "bim",
			Subsystem: "aspect_cache",
			Name:      "degraded_total",
			Help:      "Number of last-known-good fallbacks served.",
		}),
		invocations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "bim",
			Subsystem: "aspect_cache",
			Name:      "invocations_total",
			Help:      "Number of external build tool invocations.",
		}),
	}
}

func (m *PrometheusMetrics) CacheHit() { m.hits.Inc() }

func (m *PrometheusMetrics) CacheMiss() { m.misses.Inc() }

func (m *PrometheusMetrics) Degraded() { m.degraded.Inc() }

func (m *PrometheusMetrics) Invocation() { m.invocations.Inc() }
