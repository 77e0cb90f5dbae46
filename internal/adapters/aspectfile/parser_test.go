package aspectfile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bim/internal/adapters/aspectfile"
	"go.trai.ch/bim/internal/core/domain"
)

func writeArtifact(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileParser_LoadFiles(t *testing.T) {
	tmpDir := t.TempDir()
	a := writeArtifact(t, tmpDir, "module1.bim-build.json",
		`{"label":"//module1:module1","sources":["module1/src/main/java/App.java"],"deps":["//module2:module2"]}`)
	b := writeArtifact(t, tmpDir, "module2.bim-build.json",
		`{"label":"//module2:module2","generated_sources":["bazel-out/gen/Api.java"]}`)

	parser, err := aspectfile.NewFileParser()
	require.NoError(t, err)

	infos, err := parser.LoadFiles([]string{a, b})
	require.NoError(t, err)
	require.Equal(t, 2, infos.Len())

	first := infos.Get(domain.MustParseLabel("//module1:module1"))
	require.NotNil(t, first)
	assert.Equal(t, []string{"module1/src/main/java/App.java"}, first.Sources())
	assert.Equal(t, []domain.Label{domain.MustParseLabel("//module2:module2")}, first.Deps())

	second := infos.Get(domain.MustParseLabel("//module2:module2"))
	require.NotNil(t, second)
	assert.Equal(t, []string{"bazel-out/gen/Api.java"}, second.GeneratedSources())
}

func TestFileParser_MissingFileIsError(t *testing.T) {
	parser, err := aspectfile.NewFileParser()
	require.NoError(t, err)

	_, err = parser.LoadFiles([]string{filepath.Join(t.TempDir(), "absent.bim-build.json")})
	require.Error(t, err)
}

func TestFileParser_MalformedFileIsError(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeArtifact(t, tmpDir, "broken.bim-build.json", "{not json")

	parser, err := aspectfile.NewFileParser()
	require.NoError(t, err)

	_, err = parser.LoadFiles([]string{path})
	require.Error(t, err)
}

func TestFileParser_InvalidLabelIsError(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeArtifact(t, tmpDir, "bad.bim-build.json", `{"label":"module1:module1"}`)

	parser, err := aspectfile.NewFileParser()
	require.NoError(t, err)

	_, err = parser.LoadFiles([]string{path})
	require.Error(t, err)
}

func TestFileParser_CacheRevalidatesOnChange(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeArtifact(t, tmpDir, "module1.bim-build.json",
		`{"label":"//module1:module1","sources":["a/Old.java"]}`)

	parser, err := aspectfile.NewFileParser()
	require.NoError(t, err)

	infos, err := parser.LoadFiles([]string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{"a/Old.java"}, infos.Get(domain.MustParseLabel("//module1:module1")).Sources())

	// Rewrite with a different size so the stat check invalidates the entry.
	require.NoError(t, os.WriteFile(path, []byte(`{"label":"//module1:module1","sources":["a/NewName.java"]}`), 0o600))
	newTime := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, newTime, newTime))

	infos, err = parser.LoadFiles([]string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{"a/NewName.java"}, infos.Get(domain.MustParseLabel("//module1:module1")).Sources())
}
