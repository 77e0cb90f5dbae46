package ports

import "go.trai.ch/bim/internal/core/domain"

// AspectFlusher invalidates cached aspect data. Implemented by the aspect
// cache manager; consumed by collaborators that observe workspace changes.
type AspectFlusher interface {
	// FlushTargets removes the given labels from the refreshable caches.
	// Unknown labels are a no-op.
	FlushTargets(labels []domain.Label)

	// FlushPackage removes every cached label owned by the given
	// workspace-relative package path.
	FlushPackage(pkgPath string)
}
