package checks

import (
	"strings"
	"unicode"
)

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsBlank checks if the line consists of whitespace only.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// TrimTrailing removes trailing whitespace the same way every predicate expects.
func TrimTrailing(text string) string {
	return strings.TrimRightFunc(text, isSpace)
}
