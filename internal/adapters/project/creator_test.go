package project_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bim/internal/adapters/project"
	"go.trai.ch/bim/internal/core/domain"
	"go.trai.ch/bim/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func looseLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return log
}

func readDescriptor(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test fixture
	require.NoError(t, err)
	var desc map[string]any
	require.NoError(t, json.Unmarshal(data, &desc))
	return desc
}

func TestCreateWorkspaceProject(t *testing.T) {
	ws := filepath.Join(t.TempDir(), "myws")
	require.NoError(t, os.MkdirAll(ws, 0o750))
	outDir := filepath.Join(t.TempDir(), "projects")

	creator := project.New(outDir, looseLogger(t))
	root := domain.NewWorkspaceRoot(ws)

	require.NoError(t, creator.CreateWorkspaceProject(context.Background(), root))

	desc := readDescriptor(t, filepath.Join(outDir, "myws.project.json"))
	assert.Equal(t, "myws", desc["name"])
	assert.Equal(t, true, desc["workspace"])
}

func TestCreateWorkspaceProject_RejectsPackageNode(t *testing.T) {
	root := domain.NewWorkspaceRoot(t.TempDir())
	child := root.AddChild("module1")

	creator := project.New(t.TempDir(), looseLogger(t))
	err := creator.CreateWorkspaceProject(context.Background(), child)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotWorkspaceRoot))
}

func TestCreateProject(t *testing.T) {
	outDir := t.TempDir()
	creator := project.New(outDir, looseLogger(t))

	spec := domain.ProjectSpec{
		Name:                "module1",
		PackagePath:         "module1",
		SourceDirs:          []string{"module1/src/main/java"},
		GeneratedSourceDirs: []string{"bazel-out/gen/module1"},
		Targets:             []domain.Label{domain.MustParseLabel("//module1:*")},
		References:          []string{"module2", "module3"},
	}
	require.NoError(t, creator.CreateProject(context.Background(), spec))

	desc := readDescriptor(t, filepath.Join(outDir, "module1.project.json"))
	assert.Equal(t, "module1", desc["name"])
	assert.Equal(t, []any{"//module1:*"}, desc["targets"])
	assert.Equal(t, []any{"module2", "module3"}, desc["references"])
}

func TestCreateProject_CancelledContext(t *testing.T) {
	creator := project.New(t.TempDir(), looseLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := creator.CreateProject(ctx, domain.ProjectSpec{Name: "module1"})
	require.Error(t, err)
}
