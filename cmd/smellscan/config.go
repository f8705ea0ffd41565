package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dfpello/smellscan/internal/config"
)

// Config command flags.
var (
	configGlobal bool
	configForce  bool
)

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage smellscan configuration",
	Long: `Manage smellscan configuration.

Smellscan reads .smellscan.yaml (or .smellscan.toml) from the project root.
A global config at ~/.config/smellscan/config.yaml provides defaults.
Project settings override global settings; flags override both.`,
}

// configInitCmd writes a config file holding the built-in defaults.
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a config file with the default settings",
	Long: `Write .smellscan.yaml with the built-in defaults into the project at path
(default: current directory), ready to be edited.

Use --global to write ~/.config/smellscan/config.yaml instead. An existing
file is left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configGlobal, "global", false, "write the global config (~/.config/smellscan/config.yaml)")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
}

// defaultConfig is the content written by config init.
func defaultConfig() *config.Config {
	return &config.Config{
		TestDir:   config.DefaultTestDir,
		MainDir:   config.DefaultMainDir,
		TargetDir: config.DefaultTargetDir,
		Format:    config.DefaultFormat,
		Project:   config.DefaultProject,
	}
}

func runConfigInit(cmd *cobra.Command, args []string) (err error) {
	path := config.GlobalConfigPath()
	if !configGlobal {
		base := "."
		if len(args) > 0 {
			base = args[0]
		}
		info, statErr := cmdFS.Stat(base)
		if statErr != nil || !info.IsDir() {
			return exitError(ExitInvalidArgs, "smellscan: %q is not a directory", base)
		}
		path = filepath.Join(base, config.FileName)
	}

	if _, statErr := cmdFS.Stat(path); statErr == nil && !configForce {
		return exitError(ExitInvalidArgs, "smellscan: %s already exists (use --force to overwrite)", path)
	}

	if err := cmdFS.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return exitError(ExitFatal, "smellscan: cannot create %s (%v)", filepath.Dir(path), err)
	}
	f, err := cmdFS.Create(path)
	if err != nil {
		return exitError(ExitFatal, "smellscan: cannot create %s (%v)", path, err)
	}
	defer closeOutput(f, path, &err)

	if err := config.Write(f, defaultConfig()); err != nil {
		return exitError(ExitFatal, "smellscan: cannot write %s (%v)", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
