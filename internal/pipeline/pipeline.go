// Package pipeline runs the four smellscan steps in order: write the
// manifest, run tsDetect, collect its report, and parse it.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dfpello/smellscan/internal/manifest"
	"github.com/dfpello/smellscan/internal/project"
	"github.com/dfpello/smellscan/internal/smells"
	"github.com/dfpello/smellscan/internal/testable"
	"github.com/dfpello/smellscan/internal/tsdetect"
)

// Options configures a Pipeline run beyond the directory layout.
type Options struct {
	// Jar is the tsDetect jar to copy into the target dir and run.
	Jar string

	// Java is the java launcher. Empty means look it up.
	Java string

	// Project is the label written into the manifest.
	Project string

	// Exclude lists doublestar globs of test files to leave out.
	Exclude []string

	// Timeout bounds the tsDetect subprocess. Zero waits indefinitely.
	Timeout time.Duration

	// Stdout and Stderr receive tsDetect's own output. Nil inherits the
	// parent's streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Result is the outcome of a successful run.
type Result struct {
	RunID      string
	Manifest   *manifest.Result
	ReportPath string
	Report     *smells.Report
	Duration   time.Duration
}

// Pipeline orchestrates one analysis of a project.
type Pipeline struct {
	layout   *project.Layout
	opts     Options
	tool     *tsdetect.Tool
	executor testable.CommandExecutor
}

// New creates a Pipeline that runs the real tsDetect.
func New(layout *project.Layout, opts Options) *Pipeline {
	return NewWithTool(layout, opts, tsdetect.New())
}

// NewWithTool creates a Pipeline with an explicit tool, bypassing the JVM.
// This is primarily useful for testing.
func NewWithTool(layout *project.Layout, opts Options, tool *tsdetect.Tool) *Pipeline {
	return &Pipeline{
		layout:   layout,
		opts:     opts,
		tool:     tool,
		executor: testable.DefaultExecutor(),
	}
}

// Run executes the steps sequentially. Recoverable conditions (no test
// sources, unmatched production classes, bad report rows) are logged and the
// run continues; anything else stops the run with the failing step named in
// the error.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{RunID: uuid.NewString()}
	log := slog.With("run", res.RunID)

	if err := p.layout.EnsureTarget(); err != nil {
		return nil, err
	}

	log.Info("generating manifest", "tests", p.layout.TestDir)
	m, err := manifest.Generate(manifest.Options{
		TestDir: p.layout.TestDir,
		MainDir: p.layout.MainDir,
		Output:  filepath.Join(p.layout.TargetDir, manifest.FileName),
		Project: p.opts.Project,
		Exclude: p.opts.Exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("generate manifest: %w", err)
	}
	res.Manifest = m

	jar, err := tsdetect.ExtractJar(p.opts.Jar, p.layout.TargetDir)
	if err != nil {
		return nil, err
	}

	java, err := tsdetect.LookupJava(p.executor, p.opts.Java)
	if err != nil {
		return nil, err
	}

	reportPath, err := p.tool.Run(ctx, tsdetect.Options{
		Java:      java,
		Jar:       jar,
		Manifest:  m.Path,
		OutputDir: p.layout.TargetDir,
		WorkDir:   p.layout.BaseDir,
		Timeout:   p.opts.Timeout,
		Stdout:    p.opts.Stdout,
		Stderr:    p.opts.Stderr,
	})
	if err != nil {
		return nil, err
	}
	res.ReportPath = reportPath

	rep, err := smells.ParseFile(reportPath)
	if err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	if rep.Skipped > 0 {
		log.Warn("skipped malformed report rows", "rows", rep.Skipped)
	}
	res.Report = rep
	res.Duration = time.Since(start)

	log.Info("analysis complete", "tests", len(rep.Entries), "duration", res.Duration)
	return res, nil
}
