// Package watcher invalidates cached aspect data when BUILD files change.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/bim/internal/core/domain"
	"go.trai.ch/bim/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildWatcher = (*Watcher)(nil)

// Watcher observes the BUILD files of discovered packages and flushes the
// aspect cache for a package whose definition actually changed. Editor
// noise (saves that leave the file identical, temp file churn) is filtered
// by hashing the file content.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	flusher   ports.AspectFlusher
	logger    ports.Logger

	mu     sync.Mutex
	root   string
	hashes map[string]uint64
}

// New creates a watcher that reports changes to the given flusher.
func New(flusher ports.AspectFlusher, logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		flusher:   flusher,
		logger:    logger,
		hashes:    make(map[string]uint64),
	}, nil
}

// Start watches every package directory of the tree. Event processing runs
// until the context is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context, tree *domain.PackageNode) error {
	if !tree.IsWorkspaceRoot() {
		return zerr.With(domain.ErrNotWorkspaceRoot, "package", tree.Path())
	}

	w.mu.Lock()
	w.root = tree.WorkspaceRoot()
	w.mu.Unlock()

	for node := range tree.Walk() {
		dir := filepath.Join(tree.WorkspaceRoot(), filepath.FromSlash(node.Path()))
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch package directory"), "dir", dir)
		}
		w.prime(dir)
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// prime records the current BUILD file hashes so the first event after
// Start is compared against real content, not an empty baseline.
func (w *Watcher) prime(dir string) {
	for _, name := range []string{"BUILD", "BUILD.bazel"} {
		path := filepath.Join(dir, name)
		if sum, err := hashFile(path); err == nil {
			w.mu.Lock()
			w.hashes[path] = sum
			w.mu.Unlock()
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error: " + err.Error())
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	name := filepath.Base(event.Name)
	if name != "BUILD" && name != "BUILD.bazel" {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if !w.contentChanged(event.Name) {
		return
	}

	w.mu.Lock()
	root := w.root
	w.mu.Unlock()

	rel, err := filepath.Rel(root, filepath.Dir(event.Name))
	if err != nil {
		return
	}
	pkgPath := filepath.ToSlash(rel)

	w.logger.Info("BUILD file changed, flushing package " + pkgPath)
	w.flusher.FlushPackage(pkgPath)
}

// contentChanged reports whether the file content differs from the last
// observed hash, updating the recorded hash. A deleted file counts as
// changed once.
func (w *Watcher) contentChanged(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	previous, seen := w.hashes[path]

	sum, err := hashFile(path)
	if err != nil {
		if !seen {
			return false
		}
		delete(w.hashes, path)
		return true
	}

	w.hashes[path] = sum
	return !seen || sum != previous
}

func hashFile(path string) (uint64, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the watch list
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}
