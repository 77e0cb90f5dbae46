// Package app implements the application layer for bim.
package app

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"slices"

	"go.trai.ch/bim/internal/adapters/config"
	"go.trai.ch/bim/internal/core/domain"
	"go.trai.ch/bim/internal/core/ports"
	"go.trai.ch/bim/internal/engine/aspect"
	"go.trai.ch/zerr"
)

// App drives the import of a Bazel workspace into IDE projects.
type App struct {
	cfg     *config.Config
	scanner ports.WorkspaceScanner
	manager *aspect.Manager
	creator ports.ProjectCreator
	watcher ports.BuildWatcher
	monitor ports.Monitor
	logger  ports.Logger
}

// New creates a new App instance.
func New(
	cfg *config.Config,
	scanner ports.WorkspaceScanner,
	manager *aspect.Manager,
	creator ports.ProjectCreator,
	watcher ports.BuildWatcher,
	monitor ports.Monitor,
	logger ports.Logger,
) *App {
	return &App{
		cfg:     cfg,
		scanner: scanner,
		manager: manager,
		creator: creator,
		watcher: watcher,
		monitor: monitor,
		logger:  logger,
	}
}

// Import discovers the workspace packages, resolves their dependency
// metadata and creates one project per selected package, in an order where
// every project's dependencies exist before the project itself. With an
// empty selection every discovered package is imported.
func (a *App) Import(ctx context.Context, selection []string) error {
	tree, err := a.scanner.Scan(a.cfg.Workspace)
	if err != nil {
		return zerr.Wrap(err, "failed to scan workspace")
	}

	selected, err := selectPackages(tree, selection)
	if err != nil {
		return err
	}

	targets := make([]domain.Label, 0, len(selected))
	for _, node := range selected {
		targets = append(targets, node.Label().ToWildcard())
	}

	infos, err := a.manager.Resolve(ctx, targets, a.monitor)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve dependency metadata")
	}

	ordered, err := domain.ResolveImportOrder(tree, selected, infos)
	if err != nil {
		return err
	}

	return a.createProjects(ctx, ordered, infos)
}

// Flush drops the refreshable aspect caches so the next import re-reads
// everything from the build tool.
func (a *App) Flush() {
	a.manager.Flush()
}

// Watch imports the workspace and then keeps the aspect caches in sync
// with BUILD file edits until the context is cancelled.
func (a *App) Watch(ctx context.Context, selection []string) error {
	if err := a.Import(ctx, selection); err != nil {
		return err
	}

	tree, err := a.scanner.Scan(a.cfg.Workspace)
	if err != nil {
		return zerr.Wrap(err, "failed to scan workspace")
	}
	if err := a.watcher.Start(ctx, tree); err != nil {
		return zerr.Wrap(err, "failed to start build file watcher")
	}
	defer func() { _ = a.watcher.Stop() }()

	a.logger.Info("watching workspace for BUILD file changes")
	<-ctx.Done()
	return nil
}

// createProjects materializes the ordered nodes. The workspace root comes
// first and every later project references only already created ones.
func (a *App) createProjects(ctx context.Context, ordered []*domain.PackageNode, infos *domain.AspectInfos) error {
	a.monitor.SubTask("Create projects")

	created := map[string]string{}
	for i, node := range ordered {
		if node.IsWorkspaceRoot() {
			if err := a.creator.CreateWorkspaceProject(ctx, node); err != nil {
				return zerr.Wrap(err, "failed to create workspace project")
			}
			a.monitor.Worked(i + 1)
			continue
		}

		spec, err := a.projectSpec(node, infos, created)
		if err != nil {
			return err
		}
		if err := a.creator.CreateProject(ctx, spec); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create project"), "project", spec.Name)
		}
		created[node.Path()] = spec.Name
		a.monitor.Worked(i + 1)
	}
	return nil
}

// projectSpec builds the descriptor for one package from its aspect
// records and the set of already created projects.
func (a *App) projectSpec(node *domain.PackageNode, infos *domain.AspectInfos, created map[string]string) (domain.ProjectSpec, error) {
	sourceDirs, err := a.sourceDirs(node)
	if err != nil {
		return domain.ProjectSpec{}, err
	}

	var generated []string
	var references []string
	seenRefs := map[string]bool{}
	for _, info := range infos.ByPackage(node.Path()) {
		generated = append(generated, info.GeneratedSources()...)
		for _, dep := range info.Deps() {
			name, ok := created[dep.PackagePath()]
			if !ok || dep.PackagePath() == node.Path() {
				continue
			}
			if !seenRefs[name] {
				seenRefs[name] = true
				references = append(references, name)
			}
		}
	}
	slices.Sort(generated)
	generated = slices.Compact(generated)

	return domain.ProjectSpec{
		Name:                node.Name(),
		PackagePath:         node.Path(),
		SourceDirs:          sourceDirs,
		GeneratedSourceDirs: generated,
		Targets:             []domain.Label{node.Label().ToWildcard()},
		References:          references,
	}, nil
}

// sourceDirs returns the package-relative source directories that exist on
// disk for the given package.
func (a *App) sourceDirs(node *domain.PackageNode) ([]string, error) {
	var dirs []string
	for _, rel := range []string{a.cfg.Import.SrcPath, a.cfg.Import.TestPath} {
		candidate := filepath.Join(node.WorkspaceRoot(), filepath.FromSlash(node.Path()), filepath.FromSlash(rel))
		if stat, err := os.Stat(candidate); err == nil && stat.IsDir() {
			dirs = append(dirs, path.Join(node.Path(), rel))
		}
	}
	if len(dirs) == 0 {
		return nil, zerr.With(domain.ErrNoPackageSources, "package", node.Path())
	}
	return dirs, nil
}

// selectPackages maps the requested package paths onto discovered nodes.
// An empty selection selects every discovered package.
func selectPackages(tree *domain.PackageNode, selection []string) ([]*domain.PackageNode, error) {
	byPath := map[string]*domain.PackageNode{}
	var all []*domain.PackageNode
	for node := range tree.Walk() {
		byPath[node.Path()] = node
		all = append(all, node)
	}

	if len(selection) == 0 {
		if len(all) == 0 {
			return nil, domain.ErrNoPackagesSelected
		}
		return all, nil
	}

	selected := make([]*domain.PackageNode, 0, len(selection))
	for _, raw := range selection {
		pkg := filepath.ToSlash(raw)
		node, ok := byPath[pkg]
		if !ok {
			return nil, zerr.With(zerr.New("package not found in workspace"), "package", pkg)
		}
		selected = append(selected, node)
	}
	return selected, nil
}
