package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bim/internal/adapters/config"
	"go.trai.ch/bim/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, config.Filename)
	writeFile(t, path, "{}\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, tmpDir, cfg.Workspace)
	assert.Equal(t, "modern", cfg.Aspect.Variant)
	assert.Equal(t, "src/main/java", cfg.Import.SrcPath)
	assert.Equal(t, "src/test/java", cfg.Import.TestPath)
	assert.Equal(t, filepath.Join(tmpDir, ".bim", "projects"), cfg.Projects.Dir)
}

func TestLoad_ExplicitValues(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, config.Filename)
	writeFile(t, path, `
aspect:
  variant: legacy
  dir: tools/aspects
import:
  srcPath: src
  testPath: test
  ignore: ["third_party/**"]
projects:
  dir: out/projects
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "legacy", cfg.Aspect.Variant)
	assert.Equal(t, "tools/aspects", cfg.Aspect.Dir)
	assert.Equal(t, "src", cfg.Import.SrcPath)
	assert.Equal(t, "test", cfg.Import.TestPath)
	assert.Equal(t, []string{"third_party/**"}, cfg.Import.Ignore)
	assert.Equal(t, filepath.Join(tmpDir, "out", "projects"), cfg.Projects.Dir)
}

func TestLoad_UnknownVariant(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, config.Filename)
	writeFile(t, path, "aspect:\n  variant: experimental\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown aspect variant")
}

func TestLoad_LegacyRequiresAspectDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, config.Filename)
	writeFile(t, path, "aspect:\n  variant: legacy\n")

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestDiscover_FindsConfigUpward(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, config.Filename), "{}\n")
	deep := filepath.Join(tmpDir, "module1", "src", "main", "java")
	require.NoError(t, os.MkdirAll(deep, 0o750))

	cfg, err := config.Discover(deep)
	require.NoError(t, err)
	assert.Equal(t, tmpDir, cfg.Workspace)
}

func TestDiscover_WorkspaceMarkerWithoutConfig(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "MODULE.bazel"), "")
	deep := filepath.Join(tmpDir, "module1")
	require.NoError(t, os.MkdirAll(deep, 0o750))

	cfg, err := config.Discover(deep)
	require.NoError(t, err)
	assert.Equal(t, tmpDir, cfg.Workspace)
	assert.Equal(t, "modern", cfg.Aspect.Variant)
}

func TestDiscover_NoWorkspace(t *testing.T) {
	_, err := config.Discover(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrWorkspaceNotFound))
}
