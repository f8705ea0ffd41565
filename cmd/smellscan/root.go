package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	smellscanlog "github.com/dfpello/smellscan/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for smellscan.
var rootCmd = &cobra.Command{
	Use:   "smellscan",
	Short: "Detect test smells in a Java project with tsDetect",
	Long: `Smellscan runs the tsDetect test smell detector over a Java project.
It pairs every test under src/test/java with the production class it covers,
hands the list to tsDetect, and prints the smells found in each test.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		smellscanlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
