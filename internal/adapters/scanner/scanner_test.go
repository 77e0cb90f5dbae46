package scanner_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bim/internal/adapters/scanner"
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
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func makeWorkspace(t *testing.T, packages ...string) string {
	t.Helper()
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "WORKSPACE"), nil, 0o600))
	for _, pkg := range packages {
		dir := filepath.Join(tmpDir, filepath.FromSlash(pkg))
		require.NoError(t, os.MkdirAll(dir, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "BUILD"), nil, 0o600))
	}
	return tmpDir
}

func packagePaths(root *domain.PackageNode) []string {
	var paths []string
	for node := range root.Walk() {
		paths = append(paths, node.Path())
	}
	return paths
}

func TestScan_FindsPackages(t *testing.T) {
	ws := makeWorkspace(t, "module1", "module2", "module3/nested")

	root, err := scanner.New(nil, looseLogger(t)).Scan(ws)
	require.NoError(t, err)

	assert.True(t, root.IsWorkspaceRoot())
	assert.Equal(t, ws, root.WorkspaceRoot())
	assert.ElementsMatch(t, []string{"module1", "module2", "module3/nested"}, packagePaths(root))
}

func TestScan_BuildBazelToo(t *testing.T) {
	ws := makeWorkspace(t)
	dir := filepath.Join(ws, "lib")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "BUILD.bazel"), nil, 0o600))

	root, err := scanner.New(nil, looseLogger(t)).Scan(ws)
	require.NoError(t, err)
	assert.Equal(t, []string{"lib"}, packagePaths(root))
}

func TestScan_SkipsToolDirsAndSymlinkTargets(t *testing.T) {
	ws := makeWorkspace(t, "module1")
	for _, dir := range []string{".git", "bazel-out", "bazel-myws", "node_modules"} {
		path := filepath.Join(ws, dir, "sub")
		require.NoError(t, os.MkdirAll(path, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(path, "BUILD"), nil, 0o600))
	}

	root, err := scanner.New(nil, looseLogger(t)).Scan(ws)
	require.NoError(t, err)
	assert.Equal(t, []string{"module1"}, packagePaths(root))
}

func TestScan_IgnoreGlobs(t *testing.T) {
	ws := makeWorkspace(t, "module1", "third_party/grpc", "third_party/proto/wkt")

	root, err := scanner.New([]string{"third_party/**"}, looseLogger(t)).Scan(ws)
	require.NoError(t, err)
	assert.Equal(t, []string{"module1"}, packagePaths(root))
}

func TestScan_NotAWorkspace(t *testing.T) {
	_, err := scanner.New(nil, looseLogger(t)).Scan(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrWorkspaceNotFound))
}
