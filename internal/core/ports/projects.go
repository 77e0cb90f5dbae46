package ports

import (
	"context"

	"go.trai.ch/bim/internal/core/domain"
)

// ProjectCreator materializes ordered packages as IDE-visible projects. It
// is a pure boundary: all caching and ordering decisions happen before it is
// called.
//
//go:generate go run go.uber.org/mock/mockgen -source=projects.go -destination=mocks/mock_projects.go -package=mocks
type ProjectCreator interface {
	// CreateWorkspaceProject creates the container project for the
	// workspace root node. It is always called before any package project.
	CreateWorkspaceProject(ctx context.Context, root *domain.PackageNode) error

	// CreateProject creates one package project. Projects are created in
	// dependency-first order; spec.References names only projects that
	// already exist.
	CreateProject(ctx context.Context, spec domain.ProjectSpec) error
}
