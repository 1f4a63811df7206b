package strnat

import "unicode/utf8"

// Pad pads s with pad until it is abs(n) characters long. A negative n
// pads at the start, a positive n at the end. Strings already at least
// abs(n) characters long are returned unchanged; Pad never truncates.
// An empty pad string is a no-op. Multi-character pad strings are
// repeated and cut to fit, as in Pad("ab", 5, "xy") == "abxyx".
func Pad(s string, n int, pad string) string {
	if pad == "" {
		return s
	}
	width := n
	if width < 0 {
		width = -width
	}
	count := utf8.RuneCountInString(s)
	if count >= width {
		return s
	}
	pr := []rune(pad)
	padding := make([]rune, width-count)
	for i := range padding {
		padding[i] = pr[i%len(pr)]
	}
	if n < 0 {
		return string(padding) + s
	}
	return s + string(padding)
}
