package report

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dfpello/smellscan/internal/smells"
)

func init() {
	Register(&Text{})
}

// Messages printed by the text report.
const (
	NoSmellsMessage  = "no test smells detected"
	NoResultsMessage = "WARNING: the analysis produced no results"
)

var rule = strings.Repeat("-", 55)

// Text is the console renderer. Entries are printed in report order; the
// smells of one entry are printed sorted by label.
type Text struct{}

// Compile-time interface check.
var _ Renderer = (*Text)(nil)

// Name returns the format name.
func (*Text) Name() string { return "text" }

// Render writes the human-readable report. An empty report prints a single
// warning between the banner rules instead of any entries.
func (*Text) Render(doc Document, w io.Writer) error {
	tw := &errWriter{w: w}

	tw.println(rule)
	tw.println(SectionTitle("TEST SMELL ANALYSIS RESULTS"))
	if doc.Meta.Project != "" || doc.Meta.Revision != "" {
		tw.println(metaLine(doc.Meta))
	}
	tw.println(rule)

	var entries []smells.Entry
	if doc.Report != nil {
		entries = doc.Report.Entries
	}

	if len(entries) == 0 {
		slog.Warn("the analysis produced no results")
		tw.println(colorWarn(NoResultsMessage))
		tw.println(rule)
		return tw.err
	}

	for _, e := range entries {
		tw.println(colorBold.Sprint(e.Name))
		if len(e.Smells) == 0 {
			tw.println("  " + colorClean(NoSmellsMessage))
			continue
		}
		for _, label := range e.Labels() {
			tw.println(fmt.Sprintf("  %s: %s", label, colorCount(e.Smells[label])))
		}
	}
	tw.println(rule)
	if tw.err != nil {
		return tw.err
	}

	return renderSummary(entries, w)
}

func metaLine(m Meta) string {
	var parts []string
	if m.Project != "" {
		parts = append(parts, "project: "+m.Project)
	}
	if m.Revision != "" {
		rev := m.Revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		parts = append(parts, "revision: "+rev)
	}
	return strings.Join(parts, "  ")
}

// renderSummary prints totals per smell. Nothing is printed when no entry
// has a smell.
func renderSummary(entries []smells.Entry, w io.Writer) error {
	totals := smells.Totals(entries)

	affected := 0
	occurrences := 0
	for _, e := range entries {
		if len(e.Smells) > 0 {
			affected++
		}
		occurrences += e.Total()
	}

	if _, err := fmt.Fprintf(w, "%d tests analyzed, %d with smells, %d occurrences\n",
		len(entries), affected, occurrences); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	if len(totals) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	tbl := NewTable(
		Column{Header: "SMELL"},
		Column{Header: "TESTS", Align: AlignRight},
		Column{Header: "OCCURRENCES", Align: AlignRight},
	)
	for _, sc := range totals {
		tbl.AddRow(sc.Smell, fmt.Sprintf("%d", sc.Tests), fmt.Sprintf("%d", sc.Occurrences))
	}
	return tbl.Render(w)
}

// errWriter remembers the first write error so the banner code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	if _, err := fmt.Fprintln(ew.w, s); err != nil {
		ew.err = fmt.Errorf("render report: %w", err)
	}
}
