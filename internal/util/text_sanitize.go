package util

import (
	"strings"
	"unicode"
)

// SanitizeText drops control characters other than common whitespace and
// folds Unicode space separators (NBSP, thin space) to ASCII space so the
// segmenter sees ordinary word boundaries.
func SanitizeText(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, ch := range s {
		switch {
		case ch == '\n' || ch == '\r' || ch == '\t':
			b.WriteRune(ch)
		case ch < 0x20 || ch == 0x7f:
		case ch != ' ' && unicode.Is(unicode.Zs, ch):
			b.WriteByte(' ')
		default:
			b.WriteRune(ch)
		}
	}
	return strings.TrimSpace(b.String())
}
