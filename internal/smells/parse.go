package smells

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/dfpello/smellscan/internal/testable"
)

// FS is the file system implementation used by this package.
var FS testable.FileSystem = testable.DefaultFS

// minFields is the smallest row tsDetect emits: app, test path, prod path.
const minFields = 3

// Column positions of the path fields in a tsDetect row.
const (
	testPathField = 1
	prodPathField = 2
)

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Report, error) {
	f, err := FS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open smell report: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return Parse(f)
}

// maxLineSize bounds a single report line.
const maxLineSize = 1 << 20

// Parse reads a tsDetect CSV report. The first line is the header; every
// later line becomes an Entry. Each line is decoded on its own, so a broken
// quote cannot run into the next row. Rows with fewer than three fields and
// rows the CSV reader rejects are skipped individually. Metric cells that do
// not parse as numbers are ignored. An empty input yields an empty Report.
func Parse(r io.Reader) (*Report, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	rep := &Report{}
	var (
		headers []string
		cols    []int
		lineNo  int
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		row, err := parseLine(line)
		if headers == nil {
			if err != nil {
				return nil, fmt.Errorf("read smell report header: %w", err)
			}
			headers = row
			cols = SmellColumns(headers)
			for _, i := range cols {
				rep.Columns = append(rep.Columns, headers[i])
			}
			continue
		}

		if err != nil {
			slog.Debug("skipping malformed smell report row", "line", lineNo, "error", err)
			rep.Skipped++
			continue
		}
		if len(row) < minFields {
			rep.Skipped++
			continue
		}
		rep.Entries = append(rep.Entries, parseRow(headers, cols, row))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read smell report: %w", err)
	}

	return rep, nil
}

// parseLine decodes one CSV record from a single line.
func parseLine(line string) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1
	row, err := cr.Read()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, perr.Err
		}
		return nil, err
	}
	return row, nil
}

func parseRow(headers []string, cols []int, row []string) Entry {
	e := Entry{
		Name:           testName(row),
		TestFile:       row[testPathField],
		ProductionFile: row[prodPathField],
		Smells:         make(map[string]int),
	}

	for _, idx := range cols {
		if idx >= len(row) || row[idx] == "" {
			continue
		}
		n, ok := parseCount(row[idx])
		if ok && n > 0 {
			e.Smells[headers[idx]] = n
		}
	}
	return e
}

func testName(row []string) string {
	if name := fileName(row[testPathField]); name != "" {
		return name
	}
	if name := fileName(row[prodPathField]); name != "" {
		return name
	}
	return UnnamedTest
}

// fileName returns the last element of p, accepting either separator since
// tsDetect echoes whatever paths it was given.
func fileName(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		p = p[i+1:]
	}
	return p
}

// parseCount parses a decimal metric and rounds half up.
func parseCount(s string) (int, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	r := math.Floor(v + 0.5)
	if r <= 0 {
		return 0, true
	}
	if r > math.MaxInt32 {
		return math.MaxInt32, true
	}
	return int(r), true
}
