package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dfpello/smellscan/internal/manifest"
	"github.com/dfpello/smellscan/internal/project"
)

// manifestCmd writes the tsDetect input manifest without running tsDetect.
var manifestCmd = &cobra.Command{
	Use:   "manifest [path]",
	Short: "Write the tsDetect input manifest only",
	Long: `Pair every test file with its production class and write the manifest
tsDetect reads, without running tsDetect. Useful for checking which tests
have no matching production class.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runManifest,
}

func init() {
	addLayoutFlags(manifestCmd)
}

func runManifest(cmd *cobra.Command, args []string) error {
	base := "."
	if len(args) > 0 {
		base = args[0]
	}

	s, err := loadSettings(base, layoutSettings())
	if err != nil {
		return err
	}

	layout, err := project.Resolve(base, s)
	if err != nil {
		return exitError(ExitInvalidArgs, "smellscan: %v", err)
	}
	if err := layout.EnsureTarget(); err != nil {
		return exitError(ExitFatal, "smellscan: %v", err)
	}

	res, err := manifest.Generate(manifest.Options{
		TestDir: layout.TestDir,
		MainDir: layout.MainDir,
		Output:  filepath.Join(layout.TargetDir, manifest.FileName),
		Project: s.Project,
		Exclude: s.Exclude,
	})
	if err != nil {
		return exitError(ExitFatal, "smellscan: %v", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d tests, %d without a production class)\n",
		res.Path, len(res.Rows), res.Missing)
	return nil
}
