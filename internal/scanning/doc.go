// Package scanning drives the line predicates over files.
//
// A file is scanned as a sequential fold over its lines: [State] is the
// accumulator carrying the blank-line run between lines, [State.Step]
// consumes one line and returns the next state. Findings are handed to the
// caller while the line is being processed, nothing is buffered across
// lines, so output appears in line order and, within a line, in rule order.
//
// Lines are split on "\n", "\r\n" and a lone "\r", and have all trailing
// whitespace removed before any check runs.
package scanning
