package pkgwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackage_MissingOutputDir(t *testing.T) {
	_, _, _, err := Package(filepath.Join(t.TempDir(), "does-not-exist"), "gen")
	assert.ErrorIs(t, err, ErrOutputDirMissing)
}

func TestPackage_CreatesSubdirAndFlushes(t *testing.T) {
	outputDir := t.TempDir()
	s, b, closeFunc, err := Package(outputDir, "gen")
	require.NoError(t, err)
	require.NotNil(t, s)

	b.WL("var X = 1")
	require.NoError(t, closeFunc("out.go"))

	path := filepath.Join(outputDir, "gen", "out.go")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package gen")
	assert.Contains(t, string(data), "var X = 1")
}

func TestPackage_BaseNameOfNestedSubdir(t *testing.T) {
	outputDir := t.TempDir()
	_, _, closeFunc, err := Package(outputDir, filepath.Join("internal", "gen"))
	require.NoError(t, err)
	require.NoError(t, closeFunc("out.go"))

	data, err := os.ReadFile(filepath.Join(outputDir, "internal", "gen", "out.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package gen")
}
