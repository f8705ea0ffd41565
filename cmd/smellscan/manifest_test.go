package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestCmd_WritesManifest(t *testing.T) {
	resetFlags(manifestCmd)
	isolateConfig(t)
	dir := newJavaProject(t)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"manifest", dir, "--quiet", "--project", "shop"})
	require.NoError(t, cmd.Execute())

	path := filepath.Join(dir, "target", "tsDetect-input.csv")
	assert.Contains(t, stdout.String(), path)
	assert.Contains(t, stdout.String(), "(2 tests, 1 without a production class)")

	data, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	cart := filepath.ToSlash(filepath.Join(dir, "src/test/java/shop/CartTest.java"))
	prod := filepath.ToSlash(filepath.Join(dir, "src/main/java/shop/Cart.java"))
	price := filepath.ToSlash(filepath.Join(dir, "src/test/java/shop/PriceTest.java"))
	assert.Equal(t, "shop,"+cart+","+prod+"\nshop,"+price+",\n", string(data))
}

func TestManifestCmd_CustomDirs(t *testing.T) {
	resetFlags(manifestCmd)
	isolateConfig(t)
	dir := t.TempDir()
	writeTestFile(t, dir, "tests/FooTest.java", "class FooTest {}\n")
	writeTestFile(t, dir, "src/Foo.java", "class Foo {}\n")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"manifest", dir, "--quiet", "--test-dir", "tests", "--main-dir", "src", "--target-dir", "out"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "(1 tests, 0 without a production class)")
	assert.FileExists(t, filepath.Join(dir, "out", "tsDetect-input.csv"))
}

func TestManifestCmd_ConfigFile(t *testing.T) {
	resetFlags(manifestCmd)
	isolateConfig(t)
	dir := t.TempDir()
	writeTestFile(t, dir, "tests/FooTest.java", "class FooTest {}\n")
	writeTestFile(t, dir, ".smellscan.yaml", "test_dir: tests\ntarget_dir: build\nproject: demo\n")

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"manifest", dir, "--quiet"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "build", "tsDetect-input.csv")) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Contains(t, string(data), "demo,")
}

func TestManifestCmd_InvalidConfig(t *testing.T) {
	resetFlags(manifestCmd)
	isolateConfig(t)
	dir := t.TempDir()
	writeTestFile(t, dir, ".smellscan.yaml", "timeout: soon\n")

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"manifest", dir, "--quiet"})
	err := cmd.Execute()

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitInvalidArgs, ece.code)
	assert.Contains(t, ece.Error(), "timeout")
}

func TestManifestCmd_ProjectWithComma(t *testing.T) {
	resetFlags(manifestCmd)
	isolateConfig(t)
	dir := newJavaProject(t)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"manifest", dir, "--quiet", "--project", "a,b"})
	err := cmd.Execute()

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitInvalidArgs, ece.code)
	assert.NoFileExists(t, filepath.Join(dir, "target", "tsDetect-input.csv"))
}
