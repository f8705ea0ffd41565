// Package manifest builds the input file tsDetect reads: one line per test
// file pairing it with the production class it exercises.
package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dfpello/smellscan/internal/testable"
)

// FS is the file system implementation used by this package.
var FS testable.FileSystem = testable.DefaultFS

// FileName is the name of the manifest inside the output directory.
const FileName = "tsDetect-input.csv"

const (
	sourceExt  = ".java"
	testSuffix = "Test" + sourceExt
)

// Row is one manifest line.
type Row struct {
	Project        string
	TestFile       string
	ProductionFile string // empty when no production class was found
}

// String renders r in the comma-separated form tsDetect expects.
func (r Row) String() string {
	return r.Project + "," + r.TestFile + "," + r.ProductionFile
}

// Options configures Generate.
type Options struct {
	// TestDir and MainDir are the test and production source roots.
	TestDir string
	MainDir string

	// Output is the manifest path to write.
	Output string

	// Project is the label written in the first column of every row.
	Project string

	// Exclude holds doublestar globs matched against paths relative to
	// TestDir. Matching test files are left out of the manifest.
	Exclude []string
}

// Result describes a generated manifest.
type Result struct {
	Path    string
	Rows    []Row
	Missing int  // rows whose production file was not found
	Skipped bool // true when TestDir did not exist
}

// Generate discovers test files under opts.TestDir and writes the manifest
// to opts.Output. A missing test directory is not an error: a warning is
// logged and an empty manifest is written. A test whose production class is
// missing gets an empty production field and a warning.
func Generate(opts Options) (*Result, error) {
	res := &Result{Path: opts.Output}

	testDir, err := FS.Abs(opts.TestDir)
	if err != nil {
		return nil, fmt.Errorf("resolve test dir: %w", err)
	}
	mainDir, err := FS.Abs(opts.MainDir)
	if err != nil {
		return nil, fmt.Errorf("resolve main dir: %w", err)
	}

	if info, statErr := FS.Stat(testDir); statErr != nil || !info.IsDir() {
		slog.Warn("test source directory not found, writing empty manifest", "dir", testDir)
		res.Skipped = true
		return res, write(opts.Output, nil)
	}

	tests, err := discover(testDir, opts.Exclude)
	if err != nil {
		return nil, err
	}

	for _, tf := range tests {
		row := Row{Project: opts.Project, TestFile: filepath.ToSlash(tf)}

		prod, err := ProductionPath(testDir, mainDir, tf)
		if err != nil {
			return nil, err
		}
		if _, statErr := FS.Stat(prod); statErr == nil {
			row.ProductionFile = filepath.ToSlash(prod)
		} else {
			slog.Warn("production class not found", "test", filepath.Base(tf), "expected", prod)
			res.Missing++
		}
		res.Rows = append(res.Rows, row)
	}

	if err := write(opts.Output, res.Rows); err != nil {
		return nil, err
	}
	slog.Info("manifest written", "path", opts.Output, "tests", len(res.Rows), "unmatched", res.Missing)
	return res, nil
}

// ProductionPath maps a test file to the production file it is expected to
// cover: the path relative to testDir is re-rooted under mainDir and a
// trailing "Test" is stripped from the file name. Both dirs must be absolute.
func ProductionPath(testDir, mainDir, testFile string) (string, error) {
	rel, err := filepath.Rel(testDir, testFile)
	if err != nil {
		return "", fmt.Errorf("relativize %s: %w", testFile, err)
	}
	prod := filepath.Join(mainDir, rel)
	if strings.HasSuffix(prod, testSuffix) {
		prod = strings.TrimSuffix(prod, testSuffix) + sourceExt
	}
	return prod, nil
}

// discover returns absolute paths of Java sources under root, sorted.
func discover(root string, exclude []string) ([]string, error) {
	var files []string
	err := FS.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, sourceExt) {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if excluded(filepath.ToSlash(rel), exclude) {
			slog.Debug("excluded test file", "path", rel)
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk test sources: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func excluded(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

func write(path string, rows []Row) (err error) {
	f, err := FS.Create(path)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close manifest: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Read loads a manifest written by Generate.
func Read(path string) ([]Row, error) {
	data, err := FS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var rows []Row
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("read manifest: line %d: %w", i+1, ErrMalformedRow)
		}
		rows = append(rows, Row{Project: parts[0], TestFile: parts[1], ProductionFile: parts[2]})
	}
	return rows, nil
}

// ErrMalformedRow is returned by Read for a line without three fields.
var ErrMalformedRow = errors.New("malformed manifest row")
