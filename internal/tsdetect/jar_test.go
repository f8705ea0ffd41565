package tsdetect

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfpello/smellscan/internal/testable"
)

func TestExtractJar_Unset(t *testing.T) {
	_, err := ExtractJar("", t.TempDir())
	require.ErrorIs(t, err, ErrJarNotFound)
	assert.Contains(t, err.Error(), "SMELLSCAN_JAR")
}

func TestExtractJar_Missing(t *testing.T) {
	_, err := ExtractJar(filepath.Join(t.TempDir(), "nope.jar"), t.TempDir())
	assert.ErrorIs(t, err, ErrJarNotFound)
}

func TestExtractJar_Directory(t *testing.T) {
	_, err := ExtractJar(t.TempDir(), t.TempDir())
	assert.ErrorIs(t, err, ErrJarNotFound)
}

func TestExtractJar_CopiesAndOverwrites(t *testing.T) {
	src := filepath.Join(t.TempDir(), "TestSmellDetector.jar")
	require.NoError(t, os.WriteFile(src, []byte("PK\x03\x04new"), 0o600))

	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(out, ExtractedJarName), []byte("stale contents that are longer"), 0o600))

	got, err := ExtractJar(src, out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, ExtractedJarName), got)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "PK\x03\x04new", string(data))
}

func TestExtractJar_SourceIsExistingCopy(t *testing.T) {
	out := t.TempDir()
	jar := filepath.Join(out, ExtractedJarName)
	content := []byte("PK\x03\x04previous run")
	require.NoError(t, os.WriteFile(jar, content, 0o600))

	got, err := ExtractJar(jar, out)
	require.NoError(t, err)
	assert.Equal(t, jar, got)

	data, err := os.ReadFile(jar) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestExtractJar_SourceIsSymlinkToCopy(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	out := t.TempDir()
	jar := filepath.Join(out, ExtractedJarName)
	content := []byte("PK\x03\x04previous run")
	require.NoError(t, os.WriteFile(jar, content, 0o600))
	link := filepath.Join(t.TempDir(), "tsdetect.jar")
	require.NoError(t, os.Symlink(jar, link))

	_, err := ExtractJar(link, out)
	require.NoError(t, err)

	data, err := os.ReadFile(jar) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestExtractJar_CreateError(t *testing.T) {
	oldFS := FS
	defer func() { FS = oldFS }()

	src := filepath.Join(t.TempDir(), "tsDetect.jar")
	require.NoError(t, os.WriteFile(src, []byte("jar"), 0o600))

	FS = &testable.MockFileSystem{
		CreateFn: func(_ string) (*os.File, error) {
			return nil, fmt.Errorf("disk full")
		},
	}

	_, err := ExtractJar(src, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract tsDetect jar")
	assert.Contains(t, err.Error(), "disk full")
}

func TestMoveFile_FallsBackToCopy(t *testing.T) {
	oldFS := FS
	defer func() { FS = oldFS }()

	dir := t.TempDir()
	src := filepath.Join(dir, "a.csv")
	dst := filepath.Join(dir, "b.csv")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0o600))

	FS = &testable.MockFileSystem{
		RenameFn: func(_, _ string) error {
			return errors.New("invalid cross-device link")
		},
	}

	require.NoError(t, moveFile(src, dst))
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
}
