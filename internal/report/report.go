// Package report carries detected violations from the scanner to the output.
package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirkon/stylecheck/internal/rules"
)

// Violation represents a single diagnostic entry.
type Violation struct {
	Path    string
	Line    int
	Rule    rules.Rule
	Message string
}

// String renders the violation in the "<path>: Line <n>: <CODE> <message>" form.
func (v Violation) String() string {
	return fmt.Sprintf("%s: Line %d: %s %s", v.Path, v.Line, v.Rule, v.Message)
}

// Sink receives scan results as soon as they are detected.
type Sink interface {
	// Report records a rule violation.
	Report(v Violation)

	// Missing records a file that does not exist.
	Missing(path string)
}

// Printer is a Sink writing every record to the underlying writer right away.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter is [Printer] constructor.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Report writes the violation line.
func (p *Printer) Report(v Violation) {
	p.println(v.String())
}

// Missing writes the file not found line.
func (p *Printer) Missing(path string) {
	p.println(fmt.Sprintf("File %s not found", path))
}

// Err returns the first write error, if any. Output stops after it.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) println(line string) {
	if p.err != nil {
		return
	}
	if _, err := io.WriteString(p.w, line+"\n"); err != nil {
		p.err = fmt.Errorf("write report: %w", err)
	}
}

// Collector keeps everything it was given in memory.
type Collector struct {
	mu         sync.Mutex
	violations []Violation
	missing    []string
}

// Report adds a new violation to the collector.
func (c *Collector) Report(v Violation) {
	c.mu.Lock()
	c.violations = append(c.violations, v)
	c.mu.Unlock()
}

// Missing adds a missing file path to the collector.
func (c *Collector) Missing(path string) {
	c.mu.Lock()
	c.missing = append(c.missing, path)
	c.mu.Unlock()
}

// Violations returns a snapshot of all collected violations.
func (c *Collector) Violations() []Violation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Violation, len(c.violations))
	copy(out, c.violations)
	return out
}

// MissingPaths returns a snapshot of all collected missing paths.
func (c *Collector) MissingPaths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.missing))
	copy(out, c.missing)
	return out
}
