package aspect

import (
	"context"
	"sync"

	"go.trai.ch/bim/internal/core/domain"
	"go.trai.ch/bim/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager owns the three aspect caches for one workspace-import session and
// serializes every aspect invocation. All public operations run under a
// single mutex: the build tool holds workspace-wide locks of its own, so two
// logical resolutions must never reach it concurrently, and cache reads must
// be linearizable with the invocations that populate them.
type Manager struct {
	workDir string
	variant Variant
	invoker ports.Invoker
	parser  ports.AspectParser
	logger  ports.Logger
	metrics ports.Metrics

	mu sync.Mutex

	// current holds the authoritative record per label since the last
	// flush touching it.
	current map[domain.Label]*domain.PackageInfo

	// wildcards remembers which literal labels each wildcard most
	// recently expanded to, in resolution order.
	wildcards map[domain.Label][]domain.Label

	// lastGood holds the most recent record ever produced per label. It
	// survives every flush and serves as the fallback when a fresh run
	// produces nothing for a target, typically because the package no
	// longer compiles.
	lastGood map[domain.Label]*domain.PackageInfo

	hits int
}

// NewManager creates a cache manager for the workspace rooted at workDir.
func NewManager(
	workDir string,
	variant Variant,
	invoker ports.Invoker,
	parser ports.AspectParser,
	logger ports.Logger,
	metrics ports.Metrics,
) *Manager {
	return &Manager{
		workDir:   workDir,
		variant:   variant,
		invoker:   invoker,
		parser:    parser,
		logger:    logger,
		metrics:   metrics,
		current:   make(map[domain.Label]*domain.PackageInfo),
		wildcards: make(map[domain.Label][]domain.Label),
		lastGood:  make(map[domain.Label]*domain.PackageInfo),
	}
}

var _ ports.AspectFlusher = (*Manager)(nil)

// Resolve returns the aspect records for the requested targets, in request
// order. Targets are resolved independently: cached records are reused,
// missed literals trigger one invocation each, and wildcards are resolved
// through their memoized expansion when available.
//
// A target whose fresh invocation yields no record is served from lastGood
// when possible and otherwise omitted; neither case fails the call. An
// invocation that cannot run at all returns an error together with the
// records accumulated so far — successes already cached are not rolled back.
func (m *Manager) Resolve(ctx context.Context, targets []domain.Label, mon ports.Monitor) (*domain.AspectInfos, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mon.SubTask("Load Bazel dependency information")
	result := domain.NewAspectInfos()

	for _, target := range targets {
		if target.IsWildcard() {
			if err := m.resolveWildcard(ctx, target, result, mon); err != nil {
				return result, err
			}
		} else {
			if err := m.resolveTarget(ctx, target, result, mon); err != nil {
				return result, err
			}
		}
	}

	mon.Worked(result.Len())
	return result, nil
}

// resolveWildcard resolves a wildcard target through its memoized expansion
// set, or invokes the tool for the wildcard itself and records the set of
// literal labels it produced.
func (m *Manager) resolveWildcard(ctx context.Context, target domain.Label, result *domain.AspectInfos, mon ports.Monitor) error {
	if expansion, seen := m.wildcards[target]; seen {
		// The sub-targets may individually hit or miss.
		for _, sub := range expansion {
			if err := m.resolveTarget(ctx, sub, result, mon); err != nil {
				return err
			}
		}
		return nil
	}

	wildcardResult := domain.NewAspectInfos()
	if err := m.resolveTarget(ctx, target, wildcardResult, mon); err != nil {
		return err
	}
	for info := range wildcardResult.Walk() {
		result.Put(info)
	}
	m.wildcards[target] = wildcardResult.Labels()
	return nil
}

// resolveTarget resolves one target from cache or by invocation, applying
// the last-known-good fallback when the invocation produced no record for
// it. Caller must hold m.mu.
func (m *Manager) resolveTarget(ctx context.Context, target domain.Label, result *domain.AspectInfos, mon ports.Monitor) error {
	if info := m.current[target]; info != nil {
		m.logger.Info("aspect cache hit: " + target.String())
		result.Put(info)
		m.hits++
		m.metrics.CacheHit()
		mon.Worked(result.Len())
		return nil
	}

	m.logger.Info("aspect cache miss: " + target.String())
	m.metrics.CacheMiss()

	paths, err := m.generateArtifacts(ctx, target)
	if err != nil {
		return err
	}

	infos, err := m.parser.LoadFiles(paths)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse aspect artifacts"), "target", target.String())
	}

	for info := range infos.Walk() {
		m.logger.Info("aspect cache load: " + info.Label().String())
		result.Put(info)
		m.current[info.Label()] = info
		m.lastGood[info.Label()] = info
	}

	if result.Get(target) == nil {
		// The tool produced nothing for the requested target, usually a
		// compile error in the package. Serve the last record that ever
		// computed and hope it is still close enough.
		if stale := m.lastGood[target]; stale != nil {
			m.logger.Warn("aspect cache degraded, serving stale record: " + target.String())
			m.metrics.Degraded()
			result.Put(stale)
		} else {
			m.logger.Warn("aspect cache fail, omitting target: " + target.String())
		}
	}

	mon.Worked(result.Len())
	return nil
}

// generateArtifacts runs the aspect for a single target and returns the
// consumable artifact paths. Caller must hold m.mu.
func (m *Manager) generateArtifacts(ctx context.Context, target domain.Label) ([]string, error) {
	m.metrics.Invocation()

	paths, err := m.invoker.Run(ctx, m.workDir, m.variant.BuildArgs(target), m.variant.LineFilter())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "aspect invocation failed"), "target", target.String())
	}

	if transform := m.variant.Transform(); transform != nil {
		paths = transform(ctx, paths)
	}
	return paths, nil
}

// Flush clears the current and wildcard-expansion caches. The
// last-known-good cache is deliberately untouched.
func (m *Manager) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.current)
	clear(m.wildcards)
}

// FlushTargets removes the given labels from the current and
// wildcard-expansion caches. Labels absent from either are a no-op. The
// last-known-good cache is deliberately untouched.
func (m *Manager) FlushTargets(labels []domain.Label) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, label := range labels {
		delete(m.current, label)
		delete(m.wildcards, label)
	}
}

// FlushPackage removes every cached label owned by the given
// workspace-relative package path, literals and wildcards alike.
func (m *Manager) FlushPackage(pkgPath string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for label := range m.current {
		if label.PackagePath() == pkgPath {
			delete(m.current, label)
		}
	}
	for label := range m.wildcards {
		if label.PackagePath() == pkgPath {
			delete(m.wildcards, label)
		}
	}
}

// Hits returns the number of cache hits since the manager was created.
func (m *Manager) Hits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits
}
