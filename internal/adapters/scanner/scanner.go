// Package scanner discovers Bazel packages in a workspace directory tree.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/bim/internal/core/domain"
	"go.trai.ch/bim/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkspaceScanner = (*FileScanner)(nil)

// skipDirs are directory names never descended into. bazel-* prefixed
// entries are the convenience symlinks Bazel drops in the workspace root.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// FileScanner walks a workspace directory and reports every directory
// holding a BUILD file as a package.
type FileScanner struct {
	ignore []string
	logger ports.Logger
}

// New creates a scanner. The ignore patterns are doublestar globs matched
// against workspace-relative directory paths.
func New(ignore []string, logger ports.Logger) *FileScanner {
	return &FileScanner{
		ignore: ignore,
		logger: logger,
	}
}

// Scan verifies that dir is a workspace root and returns the package tree.
// Packages become direct children of the root in walk order.
func (s *FileScanner) Scan(dir string) (*domain.PackageNode, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve workspace directory")
	}
	if !isWorkspaceRoot(abs) {
		return nil, zerr.With(domain.ErrWorkspaceNotFound, "dir", abs)
	}

	root := domain.NewWorkspaceRoot(abs)
	err = filepath.WalkDir(abs, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("skipping unreadable directory: " + path)
			return fs.SkipDir
		}
		if !entry.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(abs, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if s.skip(rel, entry.Name()) {
			return fs.SkipDir
		}
		if hasBuildFile(path) {
			root.AddChild(rel)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to scan workspace")
	}
	return root, nil
}

func (s *FileScanner) skip(relPath, name string) bool {
	if skipDirs[name] || strings.HasPrefix(name, "bazel-") || strings.HasPrefix(name, ".") {
		return true
	}
	for _, pattern := range s.ignore {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

func isWorkspaceRoot(dir string) bool {
	for _, marker := range []string{"WORKSPACE", "WORKSPACE.bazel", "MODULE.bazel"} {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func hasBuildFile(dir string) bool {
	for _, name := range []string{"BUILD.bazel", "BUILD"} {
		if stat, err := os.Stat(filepath.Join(dir, name)); err == nil && !stat.IsDir() {
			return true
		}
	}
	return false
}
