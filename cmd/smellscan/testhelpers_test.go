package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/dfpello/smellscan/internal/manifest"
	"github.com/dfpello/smellscan/internal/pipeline"
	"github.com/dfpello/smellscan/internal/project"
	"github.com/dfpello/smellscan/internal/tsdetect"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

func resetFlags(cmds ...*cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	}
	for _, c := range cmds {
		c.Flags().VisitAll(reset)
		if h := c.Flags().Lookup("help"); h != nil {
			_ = h.Value.Set("false")
		}
	}
	rootCmd.PersistentFlags().VisitAll(reset)

	// Reset slices AFTER VisitAll: pflag's StringSlice.Set("[]") appends a
	// literal "[]" entry rather than clearing.
	flagExclude = nil
}

// isolateConfig points the global config and the jar env var away from the
// developer's machine.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SMELLSCAN_JAR", "")
}

func writeTestFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// newJavaProject creates a project with two tests, one of which has a
// matching production class.
func newJavaProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, "src/test/java/shop/CartTest.java", "class CartTest {}\n")
	writeTestFile(t, dir, "src/test/java/shop/PriceTest.java", "class PriceTest {}\n")
	writeTestFile(t, dir, "src/main/java/shop/Cart.java", "class Cart {}\n")
	return dir
}

func newJar(t *testing.T) string {
	t.Helper()
	jar := filepath.Join(t.TempDir(), "TestSmellDetector.jar")
	require.NoError(t, os.WriteFile(jar, []byte("PK"), 0o600))
	return jar
}

// fakeTsDetect stands in for the JVM. It writes one report row per manifest
// line, giving every test the same smell counts.
type fakeTsDetect struct {
	header string
	values string
	code   int
	noFile bool
	procs  []tsdetect.Process
}

func (f *fakeTsDetect) Run(_ context.Context, p tsdetect.Process) (int, error) {
	f.procs = append(f.procs, p)
	if f.code != 0 || f.noFile {
		return f.code, nil
	}

	rows, err := manifest.Read(p.Args[2])
	if err != nil {
		return -1, err
	}
	var b strings.Builder
	b.WriteString("App,TestFilePath,ProductionFilePath," + f.header + "\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%s,%s,%s,%s\n", r.Project, r.TestFile, r.ProductionFile, f.values)
	}
	out := filepath.Join(p.Dir, "Output_TestSmellDetection_1700000000.csv")
	return 0, os.WriteFile(out, []byte(b.String()), 0o600)
}

// useFakeTsDetect routes the run command through fake for the duration of t.
func useFakeTsDetect(t *testing.T, fake *fakeTsDetect) {
	t.Helper()
	orig := newPipeline
	t.Cleanup(func() { newPipeline = orig })
	newPipeline = func(layout *project.Layout, opts pipeline.Options) analysis {
		opts.Stdout = new(bytes.Buffer)
		opts.Stderr = new(bytes.Buffer)
		return pipeline.NewWithTool(layout, opts, &tsdetect.Tool{
			Runner:  fake,
			Locator: tsdetect.GlobLocator{},
		})
	}
}
