// Package smells parses the CSV report produced by tsDetect into per-test
// smell counts.
package smells

import (
	"sort"
	"strings"
)

// UnnamedTest is the name given to a row whose path fields are both empty.
const UnnamedTest = "unnamed"

// nonMetricKeywords mark identifier columns. A header containing any of them
// (case-insensitively) is not a smell count.
var nonMetricKeywords = []string{"path", "class", "app", "numberofmethods"}

// Entry is the smell summary for one analyzed test file.
type Entry struct {
	// Name is the test file name, derived from the row's path fields.
	Name string `json:"name"`

	// TestFile and ProductionFile are the raw path fields of the row.
	TestFile       string `json:"test_file,omitempty"`
	ProductionFile string `json:"production_file,omitempty"`

	// Smells maps a smell label to its occurrence count. Only counts greater
	// than zero are present.
	Smells map[string]int `json:"smells"`
}

// Labels returns the smell labels of e in sorted order.
func (e Entry) Labels() []string {
	labels := make([]string, 0, len(e.Smells))
	for l := range e.Smells {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Total returns the sum of all smell counts in e.
func (e Entry) Total() int {
	n := 0
	for _, c := range e.Smells {
		n += c
	}
	return n
}

// Report is the parsed content of a tsDetect output file.
type Report struct {
	// Columns holds the headers classified as smell metrics, in file order.
	Columns []string `json:"columns"`

	// Entries holds one entry per accepted data row, in row order.
	Entries []Entry `json:"entries"`

	// Skipped counts data rows that were dropped as malformed.
	Skipped int `json:"skipped"`
}

// SmellColumns returns the indexes of headers that hold smell counts. Any
// header containing path, class, app, or numberofmethods is excluded.
func SmellColumns(headers []string) []int {
	var cols []int
	for i, h := range headers {
		if isMetric(h) {
			cols = append(cols, i)
		}
	}
	return cols
}

func isMetric(header string) bool {
	h := strings.ToLower(header)
	for _, kw := range nonMetricKeywords {
		if strings.Contains(h, kw) {
			return false
		}
	}
	return true
}

// SmellCount pairs a smell label with an aggregated figure.
type SmellCount struct {
	Smell       string `json:"smell"`
	Tests       int    `json:"tests"`
	Occurrences int    `json:"occurrences"`
}

// Totals aggregates entries per smell: how many tests show it and how often
// it occurs overall. The result is sorted by occurrences, highest first, with
// ties broken by label.
func Totals(entries []Entry) []SmellCount {
	byLabel := make(map[string]*SmellCount)
	for _, e := range entries {
		for label, n := range e.Smells {
			sc, ok := byLabel[label]
			if !ok {
				sc = &SmellCount{Smell: label}
				byLabel[label] = sc
			}
			sc.Tests++
			sc.Occurrences += n
		}
	}

	out := make([]SmellCount, 0, len(byLabel))
	for _, sc := range byLabel {
		out = append(out, *sc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Occurrences != out[j].Occurrences {
			return out[i].Occurrences > out[j].Occurrences
		}
		return out[i].Smell < out[j].Smell
	})
	return out
}
