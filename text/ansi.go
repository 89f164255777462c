// Package text has small helpers for measuring and cleaning styled
// terminal strings.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// VisibleWidth returns the display width of a string, excluding ANSI codes.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}
