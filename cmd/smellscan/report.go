package main

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/dfpello/smellscan/internal/report"
	"github.com/dfpello/smellscan/internal/smells"
)

// Report-specific flag values.
var (
	reportFormat string
	reportOutput string
)

// reportCmd prints a tsDetect report that already exists on disk.
var reportCmd = &cobra.Command{
	Use:   "report <csv>",
	Short: "Print an existing tsDetect report",
	Long: `Parse a tsDetect CSV report (for example target/test-smells-report.csv
from an earlier run) and print it without running tsDetect again.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "report format (json, text)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file path (default: stdout)")
}

func runReport(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := report.Get(reportFormat); err != nil {
		return exitError(ExitInvalidArgs, "smellscan: %v", err)
	}

	rep, err := smells.ParseFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return exitError(ExitInvalidArgs, "smellscan: report %q does not exist", path)
		}
		return exitError(ExitFatal, "smellscan: %v", err)
	}

	doc := report.Document{Report: rep, Meta: report.Meta{Source: path}}
	return writeReport(cmd, reportFormat, doc, reportOutput)
}
