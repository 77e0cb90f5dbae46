package ports

import (
	"context"

	"go.trai.ch/bim/internal/core/domain"
)

// BuildWatcher observes BUILD file changes in discovered packages and
// invalidates affected cached data.
type BuildWatcher interface {
	// Start begins watching the package directories of the tree. It
	// returns once watching is established; events are processed in the
	// background until the context is cancelled or Stop is called.
	Start(ctx context.Context, tree *domain.PackageNode) error

	// Stop stops the watcher and releases all resources.
	Stop() error
}
