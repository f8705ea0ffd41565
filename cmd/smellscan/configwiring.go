package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dfpello/smellscan/internal/config"
)

// Layout flag values shared by run and manifest.
var (
	flagTestDir   string
	flagMainDir   string
	flagTargetDir string
	flagProject   string
	flagExclude   []string
)

// addLayoutFlags registers the project layout flags on cmd.
func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagTestDir, "test-dir", "", "test source root, relative to the project (default src/test/java)")
	cmd.Flags().StringVar(&flagMainDir, "main-dir", "", "production source root, relative to the project (default src/main/java)")
	cmd.Flags().StringVar(&flagTargetDir, "target-dir", "", "build output directory for the manifest and report (default target)")
	cmd.Flags().StringVar(&flagProject, "project", "", "project label written into the manifest (default App)")
	cmd.Flags().StringSliceVarP(&flagExclude, "exclude", "e", nil, "glob patterns of test files to skip, relative to the test root (e.g. \"it/**\")")
}

// layoutSettings returns the CLI layer of the configuration.
func layoutSettings() config.Settings {
	return config.Settings{
		TestDir:   flagTestDir,
		MainDir:   flagMainDir,
		TargetDir: flagTargetDir,
		Project:   flagProject,
		Exclude:   flagExclude,
	}
}

// loadSettings merges cli with the project's .env, config file and the
// global config file. Any problem is an invalid-arguments error.
func loadSettings(base string, cli config.Settings) (config.Settings, error) {
	loadDotEnv(base)

	projectCfg, err := config.Load(base)
	if err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "smellscan: failed to load %s (%v)", config.FileName, err)
	}
	if err := config.Validate(projectCfg); err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "smellscan: %v", err)
	}

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "smellscan: failed to load %s (%v)", config.GlobalConfigPath(), err)
	}
	if err := config.Validate(globalCfg); err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "smellscan: global config: %v", err)
	}

	s := config.Merge(cli, projectCfg, globalCfg)
	if err := config.ValidateSettings(s); err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "smellscan: %v", err)
	}
	return s, nil
}

// loadDotEnv loads base/.env into the environment without overriding
// variables that are already set.
func loadDotEnv(base string) {
	path := filepath.Join(base, ".env")
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("ignoring unreadable .env file", "path", path, "error", err)
	}
}
