package ports

// Metrics counts cache and invocation events for observability. Counters
// are never consulted for eviction decisions.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// CacheHit records a cache hit, literal or resolved from a wildcard.
	CacheHit()
	// CacheMiss records a cache miss that triggers a tool invocation.
	CacheMiss()
	// Degraded records a last-known-good fallback being served.
	Degraded()
	// Invocation records one external build tool run.
	Invocation()
}
