package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dfpello/smellscan/internal/smells"
)

func init() {
	Register(NewJSON())
}

// JSONEnvelope is the top-level JSON document.
type JSONEnvelope struct {
	Metadata JSONMetadata        `json:"metadata"`
	Entries  []smells.Entry      `json:"entries"`
	Totals   []smells.SmellCount `json:"totals"`
}

// JSONMetadata carries run details alongside the results.
type JSONMetadata struct {
	Meta
	Columns []string `json:"columns"`
	Tests   int      `json:"tests"`
	Skipped int      `json:"skipped_rows"`
}

// JSON writes the report as a single JSON document.
type JSON struct {
	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Renderer = (*JSON)(nil)

// NewJSON returns a JSON renderer with default settings.
func NewJSON() *JSON {
	return &JSON{}
}

// Name returns the format name.
func (*JSON) Name() string { return "json" }

// Render writes doc as JSON. Empty collections are written as [] rather
// than null.
func (j *JSON) Render(doc Document, w io.Writer) error {
	rep := doc.Report
	if rep == nil {
		rep = &smells.Report{}
	}

	meta := doc.Meta
	if meta.GeneratedAt.IsZero() {
		now := time.Now()
		if j.nowFunc != nil {
			now = j.nowFunc()
		}
		meta.GeneratedAt = now.UTC()
	}

	env := JSONEnvelope{
		Metadata: JSONMetadata{
			Meta:    meta,
			Columns: nonNil(rep.Columns),
			Tests:   len(rep.Entries),
			Skipped: rep.Skipped,
		},
		Entries: rep.Entries,
		Totals:  smells.Totals(rep.Entries),
	}
	if env.Entries == nil {
		env.Entries = []smells.Entry{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
