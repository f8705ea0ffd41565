package tsdetect

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("App,TestPath,ProdPath\n"), 0o600))
	return path
}

func TestGlobLocator_NoMatch(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "pom.xml")
	touch(t, dir, "Output_TestSmellDetection_1.txt")

	_, err := GlobLocator{}.Locate(dir)
	assert.ErrorIs(t, err, ErrOutputNotFound)
}

func TestGlobLocator_SingleMatch(t *testing.T) {
	dir := t.TempDir()
	want := touch(t, dir, "Output_TestSmellDetection_20240101.csv")
	touch(t, dir, "pom.xml")

	got, err := GlobLocator{}.Locate(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGlobLocator_IgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "target/Output_TestSmellDetection_20240101.csv")

	_, err := GlobLocator{}.Locate(dir)
	assert.ErrorIs(t, err, ErrOutputNotFound)
}

func TestGlobLocator_IgnoresDirectoryNamedLikeOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Output_TestSmellDetection_x.csv"), 0o750))

	_, err := GlobLocator{}.Locate(dir)
	assert.ErrorIs(t, err, ErrOutputNotFound)
}

func TestGlobLocator_SeveralMatchesTakesFirst(t *testing.T) {
	var logs bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	defer slog.SetDefault(old)

	dir := t.TempDir()
	first := touch(t, dir, "Output_TestSmellDetection_1700000000.csv")
	touch(t, dir, "Output_TestSmellDetection_1800000000.csv")

	got, err := GlobLocator{}.Locate(dir)
	require.NoError(t, err)
	assert.Equal(t, first, got)
	assert.Contains(t, logs.String(), "count=2")
}

func TestGlobLocator_CustomPattern(t *testing.T) {
	dir := t.TempDir()
	want := touch(t, dir, "smells-latest.csv")

	got, err := GlobLocator{Pattern: "smells-*.csv"}.Locate(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGlobLocator_BadPattern(t *testing.T) {
	_, err := GlobLocator{Pattern: "[unclosed"}.Locate(t.TempDir())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrOutputNotFound)
}
