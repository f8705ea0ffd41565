// Package report renders parsed tsDetect results for people (text) and
// machines (json).
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dfpello/smellscan/internal/smells"
)

// Meta describes the run that produced a report.
type Meta struct {
	RunID       string    `json:"run_id,omitempty"`
	Project     string    `json:"project,omitempty"`
	Revision    string    `json:"revision,omitempty"`
	Source      string    `json:"source,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Document is what a Renderer writes: the parsed report plus run metadata.
type Document struct {
	Report *smells.Report
	Meta   Meta
}

// Renderer writes a Document in one output format.
type Renderer interface {
	// Name returns the format name (e.g., "text", "json").
	Name() string

	// Render writes doc to w.
	Render(doc Document, w io.Writer) error
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Renderer)
)

// Register adds a renderer to the global registry.
// It panics if a renderer with the same name is already registered.
func Register(r Renderer) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[r.Name()]; exists {
		panic(fmt.Sprintf("report format already registered: %s", r.Name()))
	}
	registry[r.Name()] = r
}

// Get returns the renderer with the given name, or an error if not found.
func Get(name string) (Renderer, error) {
	mu.RLock()
	defer mu.RUnlock()
	r, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, strings.Join(namesLocked(), ", "))
	}
	return r, nil
}

// Names returns the registered format names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
