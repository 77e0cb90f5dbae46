// Package config provides the configuration loader for bim.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/bim/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the configuration file looked up in the workspace root.
const Filename = "bim.yaml"

// EnvConfigPath overrides configuration discovery when set.
const EnvConfigPath = "BIM_CONFIG"

// Config is the resolved bim configuration. Workspace is always an
// absolute path and every other field carries its default when the file
// omits it.
type Config struct {
	// Workspace is the Bazel workspace root the tool operates on.
	Workspace string `yaml:"workspace"`
	Aspect    Aspect `yaml:"aspect"`
	Import    Import `yaml:"import"`
	Projects  Projects `yaml:"projects"`
}

// Aspect configures how dependency metadata is extracted from the build.
type Aspect struct {
	// Dir is the directory holding the packaged aspect definition. Only
	// the legacy variant needs it.
	Dir string `yaml:"dir"`
	// Variant selects the extraction strategy, "legacy" or "modern".
	Variant string `yaml:"variant"`
}

// Import configures how packages are mapped to projects.
type Import struct {
	// SrcPath is the package-relative directory holding main sources.
	SrcPath string `yaml:"srcPath"`
	// TestPath is the package-relative directory holding test sources.
	TestPath string `yaml:"testPath"`
	// Ignore lists glob patterns for directories excluded from the scan.
	Ignore []string `yaml:"ignore"`
}

// Projects configures where project descriptors are written.
type Projects struct {
	Dir string `yaml:"dir"`
}

const (
	defaultVariant  = "modern"
	defaultSrcPath  = "src/main/java"
	defaultTestPath = "src/test/java"
	defaultProjDir  = ".bim/projects"
)

// Load reads a configuration file and resolves relative paths against the
// file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	base := filepath.Dir(path)
	if cfg.Workspace == "" {
		cfg.Workspace = base
	} else if !filepath.IsAbs(cfg.Workspace) {
		cfg.Workspace = filepath.Join(base, cfg.Workspace)
	}

	applyDefaults(&cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Discover walks upward from startDir looking for a bim.yaml and loads it.
// When no file exists the workspace root itself still identifies the
// workspace, so a default configuration anchored at the first directory
// carrying a workspace marker is returned instead.
func Discover(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve start directory")
	}

	for {
		candidate := filepath.Join(dir, Filename)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
		if hasWorkspaceMarker(dir) {
			cfg := &Config{Workspace: dir}
			applyDefaults(cfg)
			return cfg, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, zerr.With(domain.ErrWorkspaceNotFound, "start_dir", startDir)
		}
		dir = parent
	}
}

func hasWorkspaceMarker(dir string) bool {
	for _, marker := range []string{"WORKSPACE", "WORKSPACE.bazel", "MODULE.bazel"} {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func applyDefaults(cfg *Config) {
	if cfg.Aspect.Variant == "" {
		cfg.Aspect.Variant = defaultVariant
	}
	if cfg.Import.SrcPath == "" {
		cfg.Import.SrcPath = defaultSrcPath
	}
	if cfg.Import.TestPath == "" {
		cfg.Import.TestPath = defaultTestPath
	}
	if cfg.Projects.Dir == "" {
		cfg.Projects.Dir = filepath.Join(cfg.Workspace, defaultProjDir)
	} else if !filepath.IsAbs(cfg.Projects.Dir) {
		cfg.Projects.Dir = filepath.Join(cfg.Workspace, cfg.Projects.Dir)
	}
}

func (c *Config) validate() error {
	switch c.Aspect.Variant {
	case "legacy", "modern":
	default:
		return zerr.With(zerr.New("unknown aspect variant"), "variant", c.Aspect.Variant)
	}
	if c.Aspect.Variant == "legacy" && c.Aspect.Dir == "" {
		return zerr.New("legacy aspect variant requires aspect.dir")
	}
	return nil
}
