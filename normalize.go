package strnat

//go:generate go run -tags gen gen.go

import (
	"strings"
	"unicode/utf8"
)

// foldRune returns the plain ASCII equivalent of r, or r itself if r has
// no entry in the fold table.
func foldRune(r rune) rune {
	if _foldMin <= r && r <= _foldMax {
		if c := _fold[r-_foldMin]; c != 0 {
			return rune(c)
		}
	}
	return r
}

// Normalize returns s with accented Latin letters replaced by their plain
// ASCII equivalents: Normalize("café") is "cafe" and Normalize("ÀÉÎ") is
// "AEI". Case is preserved; only the diacritic is stripped. Characters
// without a table entry (digits, punctuation, whitespace, non-Latin
// scripts) pass through verbatim, so the result always has the same number
// of characters as the input. Normalize is idempotent.
func Normalize(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			goto hasUnicode
		}
	}
	// ASCII strings have no table entries.
	return s

hasUnicode:
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for _, r := range s[i:] {
		b.WriteRune(foldRune(r))
	}
	return b.String()
}
