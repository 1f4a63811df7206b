package strnat

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordRun matches a run of ASCII letters or a run of digits.
var wordRun = regexp.MustCompile(`[A-Za-z]+|[0-9]+`)

// CamelToSnake converts a camelCase identifier to snake_case: an
// underscore is inserted before each interior uppercase letter and the
// result is lowercased, so CamelToSnake("myVarName") is "my_var_name".
func CamelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SnakeToCamel converts a snake_case identifier to camelCase: each
// underscore that precedes another character is removed and that
// character is uppercased, so SnakeToCamel("my_var_name") is "myVarName".
// A trailing underscore has nothing following it and is kept.
func SnakeToCamel(s string) string {
	return delimitedToCamel(s, '_')
}

// KebabToCamel converts a kebab-case identifier to camelCase, following
// the same rules as SnakeToCamel with '-' as the delimiter.
func KebabToCamel(s string) string {
	return delimitedToCamel(s, '-')
}

func delimitedToCamel(s string, delim rune) string {
	var b strings.Builder
	b.Grow(len(s))
	up := false
	for i, r := range s {
		if up {
			// The delimiter consumed the char that follows it, even if
			// that char is another delimiter.
			b.WriteRune(unicode.ToUpper(r))
			up = false
			continue
		}
		if r == delim && i+1 < len(s) {
			up = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Humanize extracts the letter-runs and digit-runs of s, lowercases them,
// and joins them with single spaces: Humanize("userID42") is "userid 42".
func Humanize(s string) string {
	runs := wordRun.FindAllString(s, -1)
	for i, w := range runs {
		runs[i] = strings.ToLower(w)
	}
	return strings.Join(runs, " ")
}

// Capitalize uppercases the first character of s and lowercases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// CapitalizeWords applies Capitalize to each space-separated word of s.
// Runs of spaces are preserved.
func CapitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}
