package strnat

import (
	"regexp"
	"strings"
)

var (
	alphaRx   = regexp.MustCompile(`^[A-Za-z]+$`)
	numericRx = regexp.MustCompile(`^[1-9]+$`)
	digitsRx  = regexp.MustCompile(`^[0-9]+$`)
)

// IsAlpha reports whether s is non-empty and consists only of ASCII
// letters.
func IsAlpha(s string) bool {
	return alphaRx.MatchString(s)
}

// IsNumeric reports whether s is non-empty and consists only of the
// digits 1 through 9. Note that the digit 0 is excluded, so
// IsNumeric("0") and IsNumeric("100") are both false. This matches the
// long-standing behavior of the original pattern; use IsDigits for the
// conventional check.
func IsNumeric(s string) bool {
	return numericRx.MatchString(s)
}

// IsDigits reports whether s is non-empty and consists only of the
// digits 0 through 9.
func IsDigits(s string) bool {
	return digitsRx.MatchString(s)
}

// IsEmpty reports whether s is the empty string.
func IsEmpty(s string) bool {
	return s == ""
}

// IsBlank reports whether s is nil or points to the empty string.
func IsBlank(s *string) bool {
	return s == nil || *s == ""
}

// Equal reports whether a and b are equal after trimming leading and
// trailing whitespace from both.
func Equal(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// ParseBool parses the literals "true" and "false", ignoring case. The
// second return value reports whether s was one of the two literals;
// anything else, including "1", "yes", and the empty string, is not a
// boolean and returns false, false.
func ParseBool(s string) (value, ok bool) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	}
	return false, false
}

// ValueOrEmpty returns the empty string when s is nil, and the pointed-to
// value otherwise.
func ValueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IsString reports whether v's dynamic type is string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}
