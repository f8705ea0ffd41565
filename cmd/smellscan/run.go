package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dfpello/smellscan/internal/pipeline"
	"github.com/dfpello/smellscan/internal/project"
	"github.com/dfpello/smellscan/internal/report"
)

// Run-specific flag values.
var (
	runJar     string
	runJava    string
	runTimeout time.Duration
	runFormat  string
	runOutput  string
)

// runCmd is the subcommand that performs a full analysis.
var runCmd = &cobra.Command{
	Use:     "run [path]",
	Aliases: []string{"list-smells"},
	Short:   "Run tsDetect over a project and print its test smells",
	Long: `Generate the tsDetect input manifest for a Java project, run tsDetect,
collect its report into the target directory, and print the smells found in
each test. The path defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	addLayoutFlags(runCmd)
	runCmd.Flags().StringVar(&runJar, "jar", "", "path to the tsDetect jar (default $SMELLSCAN_JAR)")
	runCmd.Flags().StringVar(&runJava, "java", "", "java launcher (default $JAVA_HOME/bin/java or java on PATH)")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "stop tsDetect after this long (e.g. 10m); 0 waits indefinitely")
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "", "report format (json, text) (default text)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "output file path (default: stdout)")
}

// analysis is the part of *pipeline.Pipeline the run command needs.
type analysis interface {
	Run(ctx context.Context) (*pipeline.Result, error)
}

// newPipeline builds the pipeline for a run. Tests replace it to avoid
// starting a JVM.
var newPipeline = func(layout *project.Layout, opts pipeline.Options) analysis {
	return pipeline.New(layout, opts)
}

func runRun(cmd *cobra.Command, args []string) error {
	base := "."
	if len(args) > 0 {
		base = args[0]
	}

	cli := layoutSettings()
	cli.Jar = runJar
	cli.Java = runJava
	cli.Timeout = runTimeout
	cli.Format = runFormat

	s, err := loadSettings(base, cli)
	if err != nil {
		return err
	}

	layout, err := project.Resolve(base, s)
	if err != nil {
		return exitError(ExitInvalidArgs, "smellscan: %v", err)
	}

	p := newPipeline(layout, pipeline.Options{
		Jar:     s.Jar,
		Java:    s.Java,
		Project: s.Project,
		Exclude: s.Exclude,
		Timeout: s.Timeout,
	})
	res, err := p.Run(cmd.Context())
	if err != nil {
		return exitError(exitCodeFor(err), "smellscan: analysis failed (%v)", err)
	}

	if res.Manifest != nil && res.Manifest.Missing > 0 {
		slog.Warn("some tests have no matching production class", "count", res.Manifest.Missing)
	}

	doc := report.Document{
		Report: res.Report,
		Meta: report.Meta{
			RunID:    res.RunID,
			Project:  s.Project,
			Revision: project.Revision(layout.BaseDir),
			Source:   res.ReportPath,
		},
	}
	return writeReport(cmd, s.Format, doc, runOutput)
}
