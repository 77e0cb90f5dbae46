// Package project materializes packages as IDE project descriptors.
package project

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/bim/internal/core/domain"
	"go.trai.ch/bim/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectCreator = (*DescriptorCreator)(nil)

// descriptor is the on-disk form of one project.
type descriptor struct {
	Name                string   `json:"name"`
	PackagePath         string   `json:"packagePath,omitempty"`
	Workspace           bool     `json:"workspace,omitempty"`
	SourceDirs          []string `json:"sourceDirs,omitempty"`
	GeneratedSourceDirs []string `json:"generatedSourceDirs,omitempty"`
	Targets             []string `json:"targets,omitempty"`
	References          []string `json:"references,omitempty"`
}

// DescriptorCreator writes one JSON descriptor per project into a target
// directory. Descriptors are consumed by the IDE integration that owns the
// actual project model.
type DescriptorCreator struct {
	dir    string
	logger ports.Logger
}

// New creates a creator writing descriptors into dir.
func New(dir string, logger ports.Logger) *DescriptorCreator {
	return &DescriptorCreator{
		dir:    dir,
		logger: logger,
	}
}

// CreateWorkspaceProject writes the container project for the workspace
// root.
func (c *DescriptorCreator) CreateWorkspaceProject(ctx context.Context, root *domain.PackageNode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !root.IsWorkspaceRoot() {
		return zerr.With(domain.ErrNotWorkspaceRoot, "package", root.Path())
	}
	c.logger.Info("creating workspace project " + root.Name())
	return c.write(root.Name(), descriptor{
		Name:      root.Name(),
		Workspace: true,
	})
}

// CreateProject writes one package project descriptor.
func (c *DescriptorCreator) CreateProject(ctx context.Context, spec domain.ProjectSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	targets := make([]string, 0, len(spec.Targets))
	for _, target := range spec.Targets {
		targets = append(targets, target.String())
	}

	c.logger.Info("creating project " + spec.Name)
	return c.write(spec.Name, descriptor{
		Name:                spec.Name,
		PackagePath:         spec.PackagePath,
		SourceDirs:          spec.SourceDirs,
		GeneratedSourceDirs: spec.GeneratedSourceDirs,
		Targets:             targets,
		References:          spec.References,
	})
}

func (c *DescriptorCreator) write(name string, desc descriptor) error {
	if err := os.MkdirAll(c.dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create projects directory")
	}

	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode project descriptor")
	}

	path := filepath.Join(c.dir, name+".project.json")
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write project descriptor"), "path", path)
	}
	return nil
}
