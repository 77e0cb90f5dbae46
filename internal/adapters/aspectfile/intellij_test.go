package aspectfile_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bim/internal/adapters/aspectfile"
	"go.trai.ch/bim/internal/core/domain"
	"go.trai.ch/bim/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestIntellijTransform_ConvertsArtifacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	tmpDir := t.TempDir()
	info := writeArtifact(t, tmpDir, "module1.intellij-info.txt", `
label: "//module1:module1"
source: "module1/src/main/java/App.java"
source: "module1/src/main/java/Util.java"
dep: "//module2:module2"
generated: "bazel-out/gen/Api.java"
build_file_path: "module1/BUILD"
`)

	transform := aspectfile.NewIntellijTransform(mockLogger)
	out := transform(context.Background(), []string{info})

	expected := filepath.Join(tmpDir, "module1.bim-build.json")
	require.Equal(t, []string{expected}, out)

	parser, err := aspectfile.NewFileParser()
	require.NoError(t, err)
	infos, err := parser.LoadFiles(out)
	require.NoError(t, err)

	rec := infos.Get(domain.MustParseLabel("//module1:module1"))
	require.NotNil(t, rec)
	assert.Equal(t, []string{"module1/src/main/java/App.java", "module1/src/main/java/Util.java"}, rec.Sources())
	assert.Equal(t, []domain.Label{domain.MustParseLabel("//module2:module2")}, rec.Deps())
	assert.Equal(t, []string{"bazel-out/gen/Api.java"}, rec.GeneratedSources())
}

func TestIntellijTransform_DropsBrokenArtifacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(2)

	tmpDir := t.TempDir()
	good := writeArtifact(t, tmpDir, "ok.intellij-info.txt", "label: \"//module1:module1\"\n")
	noLabel := writeArtifact(t, tmpDir, "empty.intellij-info.txt", "source: \"a/App.java\"\n")
	missing := filepath.Join(tmpDir, "absent.intellij-info.txt")

	transform := aspectfile.NewIntellijTransform(mockLogger)
	out := transform(context.Background(), []string{good, noLabel, missing})

	require.Equal(t, []string{filepath.Join(tmpDir, "ok.bim-build.json")}, out)
}

func TestIntellijTransform_PreservesInputOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	tmpDir := t.TempDir()
	var in []string
	for _, name := range []string{"c", "a", "b"} {
		in = append(in, writeArtifact(t, tmpDir, name+".intellij-info.txt",
			"label: \"//"+name+":"+name+"\"\n"))
	}

	transform := aspectfile.NewIntellijTransform(mockLogger)
	out := transform(context.Background(), in)

	require.Len(t, out, 3)
	for i, name := range []string{"c", "a", "b"} {
		assert.Equal(t, filepath.Join(tmpDir, name+".bim-build.json"), out[i])
	}
}
