package domain

import (
	"iter"
	"path"
	"strings"
)

// PackageNode is one discovered Bazel package in the workspace tree. The
// root node represents the workspace itself (the directory holding the
// WORKSPACE file); children are packages found beneath it. The tree is
// read-only input to the import order resolver.
type PackageNode struct {
	workspaceRoot string
	relPath       string
	parent        *PackageNode
	children      []*PackageNode
}

// NewWorkspaceRoot creates the root node for a workspace rooted at the given
// absolute directory path.
func NewWorkspaceRoot(dir string) *PackageNode {
	return &PackageNode{workspaceRoot: dir}
}

// AddChild adds a package at the given workspace-relative path and returns
// the new node. Paths use forward slashes regardless of platform.
func (n *PackageNode) AddChild(relPath string) *PackageNode {
	child := &PackageNode{
		workspaceRoot: n.workspaceRoot,
		relPath:       strings.Trim(relPath, "/"),
		parent:        n,
	}
	n.children = append(n.children, child)
	return child
}

// IsWorkspaceRoot reports whether this node is the workspace root.
func (n *PackageNode) IsWorkspaceRoot() bool {
	return n.parent == nil
}

// WorkspaceRoot returns the absolute path of the workspace root directory.
func (n *PackageNode) WorkspaceRoot() string {
	return n.workspaceRoot
}

// Path returns the workspace-relative package path, empty for the root.
func (n *PackageNode) Path() string {
	return n.relPath
}

// Name returns the last path segment, used as the project name. For the
// root it returns the workspace directory name.
func (n *PackageNode) Name() string {
	if n.IsWorkspaceRoot() {
		return path.Base(strings.ReplaceAll(n.workspaceRoot, "\\", "/"))
	}
	return path.Base(n.relPath)
}

// Label returns the package-default label for this package, //path. The
// root has no meaningful label and returns the zero Label.
func (n *PackageNode) Label() Label {
	if n.IsWorkspaceRoot() {
		return Label{}
	}
	return Label{v: NewInternedString("//" + n.relPath)}
}

// Children returns the direct child packages in discovery order.
func (n *PackageNode) Children() []*PackageNode {
	return append([]*PackageNode(nil), n.children...)
}

// Walk returns an iterator over the subtree in depth-first discovery order,
// excluding the node itself.
func (n *PackageNode) Walk() iter.Seq[*PackageNode] {
	return func(yield func(*PackageNode) bool) {
		var visit func(node *PackageNode) bool
		visit = func(node *PackageNode) bool {
			for _, child := range node.children {
				if !yield(child) {
					return false
				}
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(n)
	}
}
