package rules

import (
	"encoding"
	"fmt"
)

// Rule represents a stylecheck rule code (S-series).
type Rule int

const (
	ruleInvalid Rule = iota

	S001TooLong
	S002Indentation
	S003Semicolon
	S004InlineCommentSpacing
	S005Todo
	S006BlankLines
)

// All returns every valid rule in code order.
func All() []Rule {
	return []Rule{
		S001TooLong,
		S002Indentation,
		S003Semicolon,
		S004InlineCommentSpacing,
		S005Todo,
		S006BlankLines,
	}
}

// String returns the canonical code of the rule.
// Example: "S001"
func (r Rule) String() string {
	switch r {
	case S001TooLong:
		return "S001"
	case S002Indentation:
		return "S002"
	case S003Semicolon:
		return "S003"
	case S004InlineCommentSpacing:
		return "S004"
	case S005Todo:
		return "S005"
	case S006BlankLines:
		return "S006"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Name returns the short name of the rule.
func (r Rule) Name() string {
	switch r {
	case S001TooLong:
		return "TooLong"
	case S002Indentation:
		return "Indentation"
	case S003Semicolon:
		return "Semicolon"
	case S004InlineCommentSpacing:
		return "InlineCommentSpacing"
	case S005Todo:
		return "Todo"
	case S006BlankLines:
		return "BlankLines"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the message printed for a violation of the rule.
func (r Rule) Description() string {
	switch r {
	case S001TooLong:
		return "Too long"
	case S002Indentation:
		return "Indentation is not a multiple of four"
	case S003Semicolon:
		return "Unnecessary semicolon after a statement"
	case S004InlineCommentSpacing:
		return "Less than two spaces before inline comments"
	case S005Todo:
		return "TODO found"
	case S006BlankLines:
		return "More than two blank lines preceding a code line"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Valid reports whether r is one of the known rules.
func (r Rule) Valid() bool {
	return r > ruleInvalid && r <= S006BlankLines
}

var (
	_ encoding.TextMarshaler   = Rule(0)
	_ encoding.TextUnmarshaler = (*Rule)(nil)
)

// MarshalText renders the rule as its code.
func (r Rule) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid Rule(%d)", r)
	}

	return []byte(r.String()), nil
}

// UnmarshalText parses rule code like "S003".
func (r *Rule) UnmarshalText(b []byte) error {
	text := string(b)
	for _, rule := range All() {
		if rule.String() == text {
			*r = rule
			return nil
		}
	}

	return fmt.Errorf("unknown rule code %q", text)
}

// Canonical constructors — for readability and stable call sites.

func TooLong() Rule              { return S001TooLong }
func Indentation() Rule          { return S002Indentation }
func Semicolon() Rule            { return S003Semicolon }
func InlineCommentSpacing() Rule { return S004InlineCommentSpacing }
func Todo() Rule                 { return S005Todo }
func BlankLines() Rule           { return S006BlankLines }
