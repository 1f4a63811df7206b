package strnat

import (
	"regexp"
	"strings"
)

var (
	emailDomainRx = regexp.MustCompile(`^[^@\s]+@([^@\s]+)\.[^.@\s]+$`)
	emailRx       = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ExtractEmailDomain returns the lowercased domain of email, excluding the
// final dot-separated label: ExtractEmailDomain("User@Example.com") is
// "example", true and ExtractEmailDomain("user@mail.example.com") is
// "mail.example", true. The second return value is false when email does
// not have the expected local@domain.tld shape.
func ExtractEmailDomain(email string) (string, bool) {
	m := emailDomainRx.FindStringSubmatch(email)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// IsValidEmail reports whether s looks like a valid email address.
func IsValidEmail(s string) bool {
	return emailRx.MatchString(s)
}
