// Package checks implements the per-line style predicates.
//
// Predicates operate on raw line text with simple heuristics, there is no
// tokenizer behind them. Each one is pure and safe to call on any input:
// absence of the character it looks for is a normal "no violation" case.
package checks

import (
	"strings"
	"unicode/utf8"

	"github.com/sirkon/stylecheck/internal/rules"
)

// MaxLineLength is the longest line S001 accepts.
const MaxLineLength = 79

// IndentWidth is the indentation step S002 demands.
const IndentWidth = 4

// Line is a single physical line of a file with trailing whitespace removed.
type Line struct {
	Text   string
	Number int
}

// Finding is a rule breach detected on a line.
type Finding struct {
	Rule    rules.Rule
	Message string
}

func found(r rules.Rule) (Finding, bool) {
	return Finding{Rule: r, Message: r.Description()}, true
}

// Predicate checks a single line against one rule.
type Predicate func(ln Line) (Finding, bool)

// All returns predicates in the order they must be applied: S001 to S005.
func All() []Predicate {
	return []Predicate{
		TooLong,
		Indentation,
		Semicolon,
		InlineCommentSpacing,
		Todo,
	}
}

// TooLong reports lines with more than MaxLineLength characters.
func TooLong(ln Line) (Finding, bool) {
	if utf8.RuneCountInString(ln.Text) > MaxLineLength {
		return found(rules.TooLong())
	}

	return Finding{}, false
}

// Indentation reports a leading run of spaces whose length is not a
// multiple of IndentWidth. Tabs do not count as indentation here.
func Indentation(ln Line) (Finding, bool) {
	n := len(ln.Text) - len(strings.TrimLeft(ln.Text, " "))
	if n > 0 && n%IndentWidth != 0 {
		return found(rules.Indentation())
	}

	return Finding{}, false
}

// Semicolon reports statements terminated with a semicolon.
//
// String literals are recognized naively: a semicolon is treated as quoted
// when the first quote of a kind appears before the first semicolon and
// another quote of the same kind follows it. Lines such as
//
//	a = "x"; b = "y"
//
// are therefore not reported.
func Semicolon(ln Line) (Finding, bool) {
	text := ln.Text
	if !strings.Contains(text, ";") {
		return Finding{}, false
	}
	text = strings.TrimRightFunc(text, isSpace)

	if hash := strings.Index(text, "#"); hash >= 0 && strings.LastIndex(text, ";") > hash {
		// Semicolon lives in a comment.
		return Finding{}, false
	}

	if strings.HasSuffix(text, ";") {
		return found(rules.Semicolon())
	}

	if quotedSemicolon(text, '"') || quotedSemicolon(text, '\'') {
		return Finding{}, false
	}

	return found(rules.Semicolon())
}

// quotedSemicolon checks if the first semicolon of s lies between the first
// occurrence of quote and the next one.
func quotedSemicolon(s string, quote byte) bool {
	semicolon := strings.IndexByte(s, ';')
	if semicolon < 0 {
		return false
	}

	open := strings.IndexByte(s, quote)
	if open < 0 || open >= semicolon {
		return false
	}

	return strings.IndexByte(s[semicolon:], quote) >= 0
}

// InlineCommentSpacing reports inline comments having less than two spaces
// before the comment marker.
//
// Any character before '#' makes a comment inline, so an indented full-line
// comment needs at least two spaces of indentation to pass.
func InlineCommentSpacing(ln Line) (Finding, bool) {
	if strings.LastIndex(ln.Text, "#") < 1 {
		return Finding{}, false
	}

	if strings.Contains(ln.Text, "  #") {
		return Finding{}, false
	}

	return found(rules.InlineCommentSpacing())
}

// Todo reports a case-insensitive TODO placed after the first comment marker.
func Todo(ln Line) (Finding, bool) {
	if !strings.Contains(ln.Text, "#") {
		return Finding{}, false
	}

	upper := strings.ToUpper(ln.Text)
	todo := strings.Index(upper, "TODO")
	if todo < 0 {
		return Finding{}, false
	}

	if strings.Index(upper, "#") < todo {
		return found(rules.Todo())
	}

	return Finding{}, false
}
