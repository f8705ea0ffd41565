package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfpello/smellscan/internal/config"
	"github.com/dfpello/smellscan/internal/testable"
)

func resetConfigFlags() {
	resetFlags(configInitCmd)
}

func TestConfigInit_WritesDefaults(t *testing.T) {
	resetConfigFlags()
	isolateConfig(t)
	dir := t.TempDir()

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "init", dir, "--quiet"})
	require.NoError(t, cmd.Execute())

	path := filepath.Join(dir, config.FileName)
	assert.Contains(t, stdout.String(), path)

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.NoError(t, config.Validate(cfg))
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	resetConfigFlags()
	isolateConfig(t)
	dir := t.TempDir()
	writeTestFile(t, dir, config.FileName, "project: mine\n")

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "init", dir, "--quiet"})
	err := cmd.Execute()

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitInvalidArgs, ece.code)
	assert.Contains(t, ece.Error(), "--force")

	data, err := os.ReadFile(filepath.Join(dir, config.FileName)) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, "project: mine\n", string(data))
}

func TestConfigInit_Force(t *testing.T) {
	resetConfigFlags()
	isolateConfig(t)
	dir := t.TempDir()
	writeTestFile(t, dir, config.FileName, "project: mine\n")

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "init", dir, "--quiet", "--force"})
	require.NoError(t, cmd.Execute())

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultProject, cfg.Project)
}

func TestConfigInit_Global(t *testing.T) {
	resetConfigFlags()
	isolateConfig(t)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "init", "--quiet", "--global"})
	require.NoError(t, cmd.Execute())

	cfg, err := config.LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTestDir, cfg.TestDir)
}

func TestConfigInit_NotADirectory(t *testing.T) {
	resetConfigFlags()
	isolateConfig(t)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "init", filepath.Join(t.TempDir(), "missing"), "--quiet"})
	err := cmd.Execute()

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitInvalidArgs, ece.code)
}

func TestConfigInit_CreateFails(t *testing.T) {
	resetConfigFlags()
	isolateConfig(t)
	orig := cmdFS
	t.Cleanup(func() { cmdFS = orig })
	cmdFS = &testable.MockFileSystem{
		CreateFn: func(string) (*os.File, error) { return nil, os.ErrPermission },
	}

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "init", t.TempDir(), "--quiet"})
	err := cmd.Execute()

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitFatal, ece.code)
}
