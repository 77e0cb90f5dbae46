package ports

import "go.trai.ch/bim/internal/core/domain"

// WorkspaceScanner discovers the Bazel packages of a workspace.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type WorkspaceScanner interface {
	// Scan walks the workspace rooted at dir and returns the package tree.
	Scan(dir string) (*domain.PackageNode, error)
}
