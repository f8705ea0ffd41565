package report

import (
	"fmt"
	"io"
	"strings"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
}

// Table renders aligned text tables to an io.Writer.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Values beyond the column count are silently ignored;
// missing values are treated as empty strings.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Render writes the table to w with computed column widths. The header is
// bold; padding is computed on raw text so colors never skew alignment.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		widths[i] = len(col.Header)
		headers[i] = col.Header
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	if err := t.line(w, headers, widths, SectionTitle); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, n := range widths {
		sep[i] = strings.Repeat("-", n)
	}
	if err := t.line(w, sep, widths, nil); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := t.line(w, row, widths, nil); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) line(w io.Writer, cells []string, widths []int, style func(string) string) error {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		pad := strings.Repeat(" ", widths[i]-len(cells[i]))
		display := cells[i]
		if style != nil {
			display = style(display)
		}
		if col.Align == AlignRight {
			parts[i] = pad + display
		} else {
			parts[i] = display + pad
		}
	}
	if _, err := fmt.Fprintf(w, "  %s\n", strings.TrimRight(strings.Join(parts, "  "), " ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
