package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dfpello/smellscan/internal/report"
)

// writeReport renders doc in the named format to the output file, or to the
// command's stdout when outputPath is empty.
func writeReport(cmd *cobra.Command, format string, doc report.Document, outputPath string) (err error) {
	r, err := report.Get(format)
	if err != nil {
		return exitError(ExitInvalidArgs, "smellscan: %v", err)
	}

	w := cmd.OutOrStdout()
	if outputPath != "" {
		f, createErr := cmdFS.Create(outputPath)
		if createErr != nil {
			return exitError(ExitFatal, "smellscan: cannot create output file %q (%v)", outputPath, createErr)
		}
		defer closeOutput(f, outputPath, &err)
		color.NoColor = true
		w = f
	}

	if err := r.Render(doc, w); err != nil {
		return exitError(ExitFatal, "smellscan: %v", err)
	}
	return nil
}

// closeOutput closes a written output file and reports a failed close
// through err unless an earlier error is already set.
func closeOutput(c io.Closer, path string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = exitError(ExitFatal, "smellscan: cannot write output file %q (%v)", path, cerr)
	}
}
