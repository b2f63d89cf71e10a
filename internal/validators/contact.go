package validators

import (
	"regexp"
	"strings"
	"unicode"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether s looks like local@domain.tld.
func IsEmail(s string) bool {
	return emailShape.MatchString(s)
}

// PhoneDigits counts the digits left after stripping everything else.
func PhoneDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// TrimmedLen is the rune length of s without surrounding whitespace.
func TrimmedLen(s string) int {
	return len([]rune(strings.TrimFunc(s, unicode.IsSpace)))
}
