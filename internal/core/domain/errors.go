package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidLabel is returned when a target label cannot be parsed.
	ErrInvalidLabel = zerr.New("invalid target label")

	// ErrCycleDetected is returned when the selected packages form a dependency cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrNotWorkspaceRoot is returned when an import is started from a node that is not the workspace root.
	ErrNotWorkspaceRoot = zerr.New("package node is not the workspace root")

	// ErrNoPackagesSelected is returned when an import is requested with an empty selection.
	ErrNoPackagesSelected = zerr.New("no packages selected")

	// ErrNoPackageSources is returned when a selected package has no recognizable source directories.
	ErrNoPackageSources = zerr.New("no source directories found for package")

	// ErrWorkspaceNotFound is returned when a directory holds no WORKSPACE or MODULE file.
	ErrWorkspaceNotFound = zerr.New("not a bazel workspace")

	// ErrToolNotConfigured is returned when the build tool executable cannot be located.
	ErrToolNotConfigured = zerr.New("bazel executable not found")
)
