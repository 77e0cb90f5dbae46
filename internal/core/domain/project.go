package domain

// ProjectSpec describes one IDE project to be created for a package. It is
// assembled by the import orchestrator after aspect resolution and ordering.
type ProjectSpec struct {
	// Name is the project name, the last segment of the package path.
	Name string

	// PackagePath is the workspace-relative package path.
	PackagePath string

	// SourceDirs are the workspace-relative source directories.
	SourceDirs []string

	// GeneratedSourceDirs are the workspace-relative generated source
	// directories reported by the aspect records.
	GeneratedSourceDirs []string

	// Targets are the build labels associated with the project.
	Targets []Label

	// References are the names of dependency projects, created earlier in
	// the import sequence.
	References []string
}
