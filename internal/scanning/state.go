package scanning

import (
	"github.com/sirkon/stylecheck/internal/checks"
	"github.com/sirkon/stylecheck/internal/rules"
)

// MaxBlankRun is the longest run of blank lines allowed before a code line.
const MaxBlankRun = 2

// State of a single file scan.
type State struct {
	blankRun int
	seenCode bool
}

// BlankRun returns the number of consecutive blank lines consumed last.
func (s State) BlankRun() int {
	return s.blankRun
}

// SeenCode reports whether a non-blank line was consumed already.
func (s State) SeenCode() bool {
	return s.seenCode
}

// Step consumes the next line of a file and returns the state for the line after it.
// Every finding on the line is passed to emit immediately.
//
// Blank lines only extend the current blank run. A code line is checked by every
// predicate, then the blank run preceding it is inspected and reset. Blank lines
// before the first code line of a file are never reported.
func (s State) Step(ln checks.Line, emit func(checks.Finding)) State {
	if checks.IsBlank(ln.Text) {
		s.blankRun++
		return s
	}

	for _, check := range checks.All() {
		if f, ok := check(ln); ok {
			emit(f)
		}
	}

	if s.blankRun > MaxBlankRun && s.seenCode {
		emit(checks.Finding{
			Rule:    rules.BlankLines(),
			Message: rules.BlankLines().Description(),
		})
	}

	return State{seenCode: true}
}
