package tui

import (
	"strings"
	"unicode"
)

// sanitize removes escape sequences and control characters from text to be
// laid out, whose width must be known. Tabs become a single space.
func sanitize(s string) string {
	if !strings.ContainsFunc(s, unicode.IsControl) {
		return s
	}
	var (
		b      strings.Builder
		escape bool
	)
	for _, r := range s {
		switch {
		case r == '\x1B':
			escape = true
		case escape:
			// CSI sequences run until a final letter
			if r != '[' && isTerminator(r) {
				escape = false
			}
		case r == '\t':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isTerminator(r rune) bool {
	return (r >= 0x40 && r <= 0x5a) || (r >= 0x61 && r <= 0x7a)
}
