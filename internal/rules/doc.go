// Package rules defines the canonical S-series rule codes enforced by stylecheck.
//
// Every rule has a stable code ("S001".."S006"), a short name and a
// human-readable description which doubles as the violation message.
// Codes never depend on message text: two violations of the same rule
// always carry the same code.
//
// # Structure
//
//	S001  TooLong               line is longer than 79 characters
//	S002  Indentation           leading spaces are not a multiple of four
//	S003  Semicolon             statement terminated with a semicolon
//	S004  InlineCommentSpacing  less than two spaces before an inline comment
//	S005  Todo                  TODO marker inside a comment
//	S006  BlankLines            more than two blank lines before a code line
//
// Example:
//
//	rules.S001TooLong.String()      → "S001"
//	rules.S001TooLong.Description() → "Too long"
//
// # Notes
//
//   - Rule identifiers are stable; never renumber existing codes.
//   - Unknown or invalid codes render as "rule-unknown(N)".
package rules
